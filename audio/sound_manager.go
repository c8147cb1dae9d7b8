package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-snake/constants"
)

// Player plays one-shot effects through the default audio device
type Player struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	initialized bool
	closed      bool
	muted       bool
}

// NewPlayer creates a player; nothing touches the device until Init
func NewPlayer(cfg *Config) *Player {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Player{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		muted: !cfg.Enabled,
	}
}

// Init opens the speaker and starts the mixer
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrAlreadyClosed
	}
	if !p.cfg.Enabled {
		return ErrDisabled
	}
	if p.initialized {
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.SpeakerBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues an effect; returns false when the player is silent
func (p *Player) Play(st SoundType) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.closed || p.muted {
		return false
	}

	s := GetSoundEffect(st, p.cfg)
	if s == nil {
		return false
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	return true
}

// ToggleMute flips mute state, returns true if sound is now on
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return !p.muted
}

// IsEnabled returns true if the device is open and unmuted
func (p *Player) IsEnabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized && !p.closed && !p.muted
}

// Close drops queued effects and releases the device
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}
