package input

import (
	"fmt"

	"github.com/lixenwraith/vi-snake/engine"
)

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone        IntentType = iota // No key pending
	IntentMove                          // w, a, s, d
	IntentQuit                          // q, Esc, Ctrl+C
	IntentPauseToggle                   // p
	IntentOther                         // Any other key, a no-op while playing
)

// Intent is a parsed key press
type Intent struct {
	Type      IntentType
	Direction engine.Direction // Valid only for IntentMove
}

// Move returns a movement intent
func Move(d engine.Direction) Intent {
	return Intent{Type: IntentMove, Direction: d}
}

// Pressed reports whether the intent came from a key
func (i Intent) Pressed() bool {
	return i.Type != IntentNone
}

func (i Intent) String() string {
	switch i.Type {
	case IntentNone:
		return "none"
	case IntentMove:
		return fmt.Sprintf("move %s", i.Direction)
	case IntentQuit:
		return "quit"
	case IntentPauseToggle:
		return "pause"
	case IntentOther:
		return "other"
	default:
		return "unknown"
	}
}
