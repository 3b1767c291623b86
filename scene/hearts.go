package scene

import (
	"time"

	"github.com/lixenwraith/fireworks/engine"
	"github.com/lixenwraith/fireworks/parameter"
	"github.com/lixenwraith/fireworks/render"
)

var (
	heartPink = render.RGB{R: 255, G: 105, B: 180}
	heartRed  = render.RGB{R: 230, G: 20, B: 60}
)

// Hearts releases a heart every HeartInterval that floats from the bottom edge past the top
type Hearts struct {
	rng   *engine.Rand
	items []*Floater
	next  time.Time
}

func NewHearts(rng *engine.Rand) *Hearts {
	return &Hearts{rng: rng}
}

func (l *Hearts) spawn(now time.Time, w float64) {
	l.items = append(l.items, &Floater{
		X:        l.rng.Float64() * w,
		Size:     l.rng.Range(parameter.HeartSizeMin, parameter.HeartSizeRange),
		Color:    render.Lerp(heartPink, heartRed, l.rng.Float64()),
		Born:     now,
		Start:    now.Add(randDuration(l.rng, 0, parameter.HeartDelayMax)),
		Duration: randDuration(l.rng, parameter.HeartDurationMin, parameter.HeartDurationRange),
	})
}

// Update releases a heart on the first call and every interval after, then moves all of them
func (l *Hearts) Update(now time.Time, w, h float64) {
	if l.next.IsZero() || !now.Before(l.next) {
		l.spawn(now, w)
		l.next = now.Add(parameter.HeartInterval)
	}

	l.items = advanceFloaters(l.items, now, parameter.HeartLife,
		func(*Floater) float64 { return h },
		func(f *Floater) float64 { return -f.Size },
	)
}

func (l *Hearts) Draw(s render.Surface) {
	s.Save()
	defer s.Restore()

	s.SetAlpha(parameter.HeartAlpha)
	for _, f := range l.items {
		if !f.Visible {
			continue
		}
		s.SetFill(f.Color)
		s.FillPath(render.HeartPath(f.X, f.Y, f.Size))
	}
}

// Items returns live hearts, including those still waiting to rise
func (l *Hearts) Items() []*Floater {
	return l.items
}
