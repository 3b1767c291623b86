package engine

// SoundNotifier receives fire-and-forget sound cues from the simulation
// Implementations must not block the frame loop
type SoundNotifier interface {
	PlayExplosion()
	PlayLaunch()
}

// SoundEvent identifies a cue
type SoundEvent int

const (
	SoundExplosion SoundEvent = iota
	SoundLaunch
)

func (e SoundEvent) String() string {
	switch e {
	case SoundExplosion:
		return "explosion"
	case SoundLaunch:
		return "launch"
	default:
		return "unknown"
	}
}
