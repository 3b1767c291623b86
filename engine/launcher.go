package engine

import (
	"slices"
	"time"

	"github.com/lixenwraith/fireworks/parameter"
)

// Launcher decides when new fireworks enter the registry
//
// Three sources: the periodic ground launch, the gated special launch inside a
// central band, and catch volleys queued by pointer clicks
type Launcher struct {
	cfg *Config
	rng *Rand

	armed       bool
	nextLaunch  time.Time
	nextSpecial time.Time

	// pending catch launches, ascending by time
	pending []time.Time
}

func NewLauncher(cfg *Config, rng *Rand) *Launcher {
	return &Launcher{
		cfg: cfg,
		rng: rng,
	}
}

// Update fires every timer due at now and returns the number of fireworks launched
// The first call arms the periodic timers without launching
func (l *Launcher) Update(now time.Time, reg *Registry, w, h float64) int {
	if !l.armed {
		l.armed = true
		l.nextLaunch = now.Add(l.cfg.LaunchInterval)
		l.nextSpecial = now.Add(l.cfg.SpecialInterval)
	}

	launched := 0

	if l.cfg.LaunchInterval > 0 && due(&l.nextLaunch, now, l.cfg.LaunchInterval) {
		reg.Spawn(l.rng.Float64()*w, h)
		launched++
	}

	if l.cfg.SpecialInterval > 0 && due(&l.nextSpecial, now, l.cfg.SpecialInterval) {
		if l.rng.Chance(l.cfg.SpecialChance) {
			x := w * l.rng.Range(parameter.SpecialBandX, parameter.SpecialBandWidth)
			y := h * l.rng.Range(parameter.SpecialBandY, parameter.SpecialBandHeight)
			reg.Launch(x, y)
			launched++
		}
	}

	n := 0
	for n < len(l.pending) && !l.pending[n].After(now) {
		reg.Launch(l.rng.Float64()*w, h)
		n++
	}
	if n > 0 {
		l.pending = append(l.pending[:0], l.pending[n:]...)
		launched += n
	}

	return launched
}

// due reports whether the timer at next has elapsed and advances it by one interval
// A timer more than two intervals behind is reset to avoid a burst of catch-up launches
func due(next *time.Time, now time.Time, interval time.Duration) bool {
	if now.Before(*next) {
		return false
	}

	*next = next.Add(interval)
	if now.Sub(*next) > interval*2 {
		*next = now.Add(interval)
	}
	return true
}

// Catch queues a volley of ground launches starting at now
func (l *Launcher) Catch(now time.Time) {
	for i := range l.cfg.CatchCount {
		l.pending = append(l.pending, now.Add(time.Duration(i)*l.cfg.CatchSpacing))
	}
	if len(l.pending) > l.cfg.CatchCount {
		slices.SortFunc(l.pending, time.Time.Compare)
	}
}

// Pending returns the number of queued catch launches
func (l *Launcher) Pending() int {
	return len(l.pending)
}
