package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundExplosion SoundType = iota // Detonation boom
	SoundLaunch                     // Rising whistle
	soundTypeCount
)

var soundTypeNames = [soundTypeCount]string{
	SoundExplosion: "explosion",
	SoundLaunch:    "launch",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundTypeNames[s]
}

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio not initialized")
	ErrUnknownSound   = errors.New("unknown sound type")
)
