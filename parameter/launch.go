package parameter

import "time"

// Launch Timers
const (
	// LaunchInterval is the period of regular ground launches
	LaunchInterval = 600 * time.Millisecond

	// SpecialInterval is the period of the special launch gate
	SpecialInterval = 2 * time.Second
	// SpecialChance is the probability a special gate check launches
	SpecialChance = 0.3

	// Special launches start inside a band of the surface, as fractions of width/height
	SpecialBandX      = 0.1
	SpecialBandWidth  = 0.8
	SpecialBandY      = 0.3
	SpecialBandHeight = 0.4
)

// Catch Burst
const (
	// CatchCount is the number of ground launches queued by a catch
	CatchCount = 8
	// CatchSpacing is the delay between queued catch launches
	CatchSpacing = 100 * time.Millisecond
)
