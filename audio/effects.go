package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/fireworks/parameter"
)

// sweep is a sine oscillator whose frequency and gain both move exponentially
// from their start to end values over its duration
type sweep struct {
	rate      beep.SampleRate
	duration  int
	position  int
	phase     float64
	freqStart float64
	freqEnd   float64
	gainStart float64
	gainEnd   float64
}

// NewSweep creates an exponential sine sweep, all four endpoints must be positive
func NewSweep(freqStart, freqEnd, gainStart, gainEnd float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		rate:      rate,
		duration:  rate.N(duration),
		freqStart: freqStart,
		freqEnd:   freqEnd,
		gainStart: gainStart,
		gainEnd:   gainEnd,
	}
}

// expRamp moves from a to b exponentially as t goes 0..1
func expRamp(a, b, t float64) float64 {
	return a * math.Pow(b/a, t)
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}

		t := float64(s.position) / float64(s.duration)
		freq := expRamp(s.freqStart, s.freqEnd, t)
		gain := expRamp(s.gainStart, s.gainEnd, t)

		val := gain * math.Sin(2*math.Pi*s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateExplosionSound generates a low boom falling from 100 Hz to 20 Hz
func CreateExplosionSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	boom := NewSweep(
		parameter.ExplosionFreqStart, parameter.ExplosionFreqEnd,
		parameter.ExplosionGainStart, parameter.ExplosionGainEnd,
		parameter.ExplosionDuration, rate,
	)

	vol := cfg.EffectVolumes[SoundExplosion] * cfg.MasterVolume
	return newVolume(boom, vol)
}

// CreateLaunchSound generates a whistle rising from 200 Hz to 800 Hz
func CreateLaunchSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	whistle := NewSweep(
		parameter.LaunchFreqStart, parameter.LaunchFreqEnd,
		parameter.LaunchGainStart, parameter.LaunchGainEnd,
		parameter.LaunchDuration, rate,
	)

	vol := cfg.EffectVolumes[SoundLaunch] * cfg.MasterVolume
	return newVolume(whistle, vol)
}

// GetSoundEffect returns the appropriate sound effect streamer for the given type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundExplosion:
		return CreateExplosionSound(cfg)
	case SoundLaunch:
		return CreateLaunchSound(cfg)
	default:
		return nil
	}
}
