package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/vi-snake/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a streamer producing duration worth of samples
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s over duration with the given attack and release ramps
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; math.Log2(0) is -Inf so zero maps to silence
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateEatSound generates a short bell for a fruit
func CreateEatSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// Fundamental (E6)
	fund := NewOscillator(1318.51, constants.EatSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, constants.EatSoundDuration, constants.EatSoundAttack, constants.EatSoundFundamentalRelease, rate)

	// Octave up
	over := NewOscillator(2637.02, constants.EatSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, constants.EatSoundDuration, constants.EatSoundAttack, constants.EatSoundOvertoneRelease, rate)

	// Mix never drains on its own, Take bounds it
	mixed := beep.Take(rate.N(constants.EatSoundDuration), beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	))

	return newVolume(mixed, cfg.EffectVolumes[SoundEat]*cfg.MasterVolume)
}

// CreateLevelUpSound generates a rising two-note chime
func CreateLevelUpSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// B5
	n1 := NewOscillator(987.77, constants.LevelUpNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.LevelUpNote1Duration, constants.LevelUpAttack, constants.LevelUpNote1Release, rate)

	// E6
	n2 := NewOscillator(1318.51, constants.LevelUpNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constants.LevelUpNote2Duration, constants.LevelUpAttack, constants.LevelUpNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), cfg.EffectVolumes[SoundLevelUp]*cfg.MasterVolume)
}

// CreateCrashSound generates a low buzz with a noise burst
func CreateCrashSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	buzz := NewOscillator(90.0, constants.CrashSoundDuration, WaveSaw, rate)
	buzzShaped := NewEnvelope(buzz, constants.CrashSoundDuration, constants.CrashSoundAttack, constants.CrashSoundRelease, rate)

	noise := NewOscillator(0, constants.CrashSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, constants.CrashSoundDuration, constants.CrashSoundAttack, constants.CrashSoundRelease, rate)

	mixed := beep.Take(rate.N(constants.CrashSoundDuration), beep.Mix(
		newVolume(buzzShaped, 0.6),
		newVolume(noiseShaped, 0.4),
	))

	return newVolume(mixed, cfg.EffectVolumes[SoundCrash]*cfg.MasterVolume)
}

// GetSoundEffect returns the streamer for a sound type, nil when unknown
func GetSoundEffect(soundType SoundType, cfg *Config) beep.Streamer {
	switch soundType {
	case SoundEat:
		return CreateEatSound(cfg)
	case SoundLevelUp:
		return CreateLevelUpSound(cfg)
	case SoundCrash:
		return CreateCrashSound(cfg)
	default:
		return nil
	}
}
