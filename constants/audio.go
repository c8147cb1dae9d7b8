package constants

import "time"

// Audio Device
const (
	// DefaultSampleRate is used when no override is configured
	DefaultSampleRate = 44100

	// DefaultMasterVolume is the master gain in [0, 1]
	DefaultMasterVolume = 0.5

	// SpeakerBufferDuration sizes the speaker buffer
	SpeakerBufferDuration = 100 * time.Millisecond
)

// Eat Sound Timing
const (
	EatSoundDuration           = 300 * time.Millisecond
	EatSoundAttack             = 5 * time.Millisecond
	EatSoundFundamentalRelease = 250 * time.Millisecond
	EatSoundOvertoneRelease    = 120 * time.Millisecond
)

// Level Up Sound Timing
const (
	LevelUpNote1Duration = 80 * time.Millisecond
	LevelUpNote2Duration = 280 * time.Millisecond
	LevelUpAttack        = 5 * time.Millisecond
	LevelUpNote1Release  = 40 * time.Millisecond
	LevelUpNote2Release  = 200 * time.Millisecond
)

// Crash Sound Timing
const (
	CrashSoundDuration = 400 * time.Millisecond
	CrashSoundAttack   = 5 * time.Millisecond
	CrashSoundRelease  = 300 * time.Millisecond
)
