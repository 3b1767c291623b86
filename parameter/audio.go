package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 48000

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// MaxConcurrentExplosions limits simultaneous explosion voices to avoid clipping
	MaxConcurrentExplosions = 4
)

// Explosion Sound: exponential sine sweep with exponential gain decay
const (
	ExplosionDuration  = 500 * time.Millisecond
	ExplosionFreqStart = 100.0
	ExplosionFreqEnd   = 20.0
	ExplosionGainStart = 0.3
	ExplosionGainEnd   = 0.01
)

// Launch Sound: rising whistle
const (
	LaunchDuration  = 300 * time.Millisecond
	LaunchFreqStart = 200.0
	LaunchFreqEnd   = 800.0
	LaunchGainStart = 0.1
	LaunchGainEnd   = 0.01
)
