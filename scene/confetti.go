package scene

import (
	"time"

	"github.com/lixenwraith/fireworks/engine"
	"github.com/lixenwraith/fireworks/parameter"
	"github.com/lixenwraith/fireworks/render"
)

// ConfettiColors is the confetti palette
var ConfettiColors = []render.RGB{
	{R: 0xFF, G: 0xD7, B: 0x00},
	{R: 0xFF, G: 0x69, B: 0xB4},
	{R: 0x00, G: 0xCE, B: 0xD1},
	{R: 0xFF, G: 0x63, B: 0x47},
	{R: 0x98, G: 0xFB, B: 0x98},
	{R: 0xFF, G: 0x14, B: 0x93},
}

// Confetti drops volleys of square pieces from the top edge
// Pieces of one volley appear ConfettiStagger apart
type Confetti struct {
	rng   *engine.Rand
	items []*Floater
	next  time.Time
}

func NewConfetti(rng *engine.Rand) *Confetti {
	return &Confetti{rng: rng}
}

func (l *Confetti) volley(now time.Time, w float64) {
	for i := range parameter.ConfettiVolley {
		born := now.Add(time.Duration(i) * parameter.ConfettiStagger)
		l.items = append(l.items, &Floater{
			X:        l.rng.Float64() * w,
			Size:     l.rng.Range(parameter.ConfettiSizeMin, parameter.ConfettiSizeRange),
			Color:    ConfettiColors[l.rng.Intn(len(ConfettiColors))],
			Born:     born,
			Start:    born.Add(randDuration(l.rng, 0, parameter.ConfettiDelayMax)),
			Duration: randDuration(l.rng, parameter.ConfettiDurationMin, parameter.ConfettiDurationRange),
		})
	}
}

// Update drops a volley on the first call and every interval after, then moves all pieces
func (l *Confetti) Update(now time.Time, w, h float64) {
	if l.next.IsZero() || !now.Before(l.next) {
		l.volley(now, w)
		l.next = now.Add(parameter.ConfettiInterval)
	}

	l.items = advanceFloaters(l.items, now, parameter.ConfettiLife,
		func(f *Floater) float64 { return -f.Size },
		func(*Floater) float64 { return h },
	)
}

func (l *Confetti) Draw(s render.Surface) {
	s.Save()
	defer s.Restore()

	for _, f := range l.items {
		if !f.Visible {
			continue
		}
		s.SetFill(f.Color)
		s.FillRect(f.X, f.Y, f.Size, f.Size)
	}
}

// Items returns live pieces, including those not yet released
func (l *Confetti) Items() []*Floater {
	return l.items
}
