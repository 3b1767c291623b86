package scene

import (
	"time"

	"github.com/lixenwraith/fireworks/engine"
	"github.com/lixenwraith/fireworks/render"
	"github.com/lixenwraith/fireworks/vmath"
)

// Floater is a decoration crossing the surface vertically in a fixed time
// It waits from Born until Start, then travels for Duration
type Floater struct {
	X, Y     float64
	Size     float64
	Color    render.RGB
	Born     time.Time
	Start    time.Time
	Duration time.Duration
	Visible  bool
}

// progress returns the completed fraction of the trip, negative before Start
func (f *Floater) progress(now time.Time) float64 {
	if f.Duration <= 0 {
		return 1
	}
	return float64(now.Sub(f.Start)) / float64(f.Duration)
}

// advanceFloaters places each floater between fromY and toY and drops the
// ones that finished their trip or outlived life, order is preserved
func advanceFloaters(items []*Floater, now time.Time, life time.Duration, fromY, toY func(*Floater) float64) []*Floater {
	kept := items[:0]
	for _, f := range items {
		t := f.progress(now)
		if t >= 1 || now.Sub(f.Born) >= life {
			continue
		}
		f.Visible = t >= 0
		f.Y = vmath.Lerp(fromY(f), toY(f), vmath.Clamp01(t))
		kept = append(kept, f)
	}
	clear(items[len(kept):])
	return kept
}

// randDuration returns lo plus a uniform share of span
func randDuration(rng *engine.Rand, lo, span time.Duration) time.Duration {
	return lo + time.Duration(rng.Float64()*float64(span))
}
