package audio

import (
	"testing"
)

// TestDefaultConfig verifies default configuration
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("Expected default master volume 0.5, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate 44100, got %d", cfg.SampleRate)
	}
	for st := SoundType(0); st < soundTypeCount; st++ {
		if _, ok := cfg.EffectVolumes[st]; !ok {
			t.Errorf("Expected volume for sound type %v to be set", st)
		}
	}
}

// TestLoadConfigFromEnv verifies environment overrides and clamping
func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("VI_SNAKE_AUDIO_ENABLED", "false")
	t.Setenv("VI_SNAKE_MASTER_VOLUME", "150")
	t.Setenv("VI_SNAKE_SFX_VOLUMES", `{"eat": 0.25, "crash": 0.1}`)
	t.Setenv("VI_SNAKE_SAMPLE_RATE", "22050")

	cfg := LoadConfig()

	if cfg.Enabled {
		t.Error("Expected audio disabled")
	}
	if cfg.MasterVolume != 1.0 {
		t.Errorf("Expected master volume clamped to 1.0, got %f", cfg.MasterVolume)
	}
	if cfg.EffectVolumes[SoundEat] != 0.25 {
		t.Errorf("Expected eat volume 0.25, got %f", cfg.EffectVolumes[SoundEat])
	}
	if cfg.EffectVolumes[SoundCrash] != 0.1 {
		t.Errorf("Expected crash volume 0.1, got %f", cfg.EffectVolumes[SoundCrash])
	}
	if cfg.EffectVolumes[SoundLevelUp] != 0.6 {
		t.Errorf("Expected level up volume untouched at 0.6, got %f", cfg.EffectVolumes[SoundLevelUp])
	}
	if cfg.SampleRate != 22050 {
		t.Errorf("Expected sample rate 22050, got %d", cfg.SampleRate)
	}
}

// TestLoadConfigIgnoresGarbage verifies malformed values keep defaults
func TestLoadConfigIgnoresGarbage(t *testing.T) {
	t.Setenv("VI_SNAKE_AUDIO_ENABLED", "maybe")
	t.Setenv("VI_SNAKE_MASTER_VOLUME", "loud")
	t.Setenv("VI_SNAKE_SFX_VOLUMES", "{not json")
	t.Setenv("VI_SNAKE_SAMPLE_RATE", "-1")

	cfg := LoadConfig()
	def := DefaultConfig()

	if cfg.Enabled != def.Enabled || cfg.MasterVolume != def.MasterVolume || cfg.SampleRate != def.SampleRate {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

// TestPlayerSilentBeforeInit verifies a player never touches the device until opened
func TestPlayerSilentBeforeInit(t *testing.T) {
	p := NewPlayer(nil)
	if p.Play(SoundEat) {
		t.Error("Expected Play to report silence before Init")
	}
	if p.IsEnabled() {
		t.Error("Expected player disabled before Init")
	}

	cfg := DefaultConfig()
	cfg.Enabled = false
	muted := NewPlayer(cfg)
	if err := muted.Init(); err != ErrDisabled {
		t.Errorf("Expected ErrDisabled, got %v", err)
	}

	p.Close()
	if err := p.Init(); err != ErrAlreadyClosed {
		t.Errorf("Expected ErrAlreadyClosed, got %v", err)
	}
}
