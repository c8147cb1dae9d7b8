package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundEat     SoundType = iota // Fruit eaten
	SoundLevelUp                  // Delay dropped a step
	SoundCrash                    // Session ended
	soundTypeCount
)

func (st SoundType) String() string {
	switch st {
	case SoundEat:
		return "eat"
	case SoundLevelUp:
		return "levelup"
	case SoundCrash:
		return "crash"
	default:
		return "unknown"
	}
}

// Sentinel errors
var (
	ErrDisabled      = errors.New("audio disabled")
	ErrAlreadyClosed = errors.New("audio player closed")
)
