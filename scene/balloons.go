package scene

import (
	"math"
	"time"

	"github.com/lixenwraith/fireworks/engine"
	"github.com/lixenwraith/fireworks/parameter"
	"github.com/lixenwraith/fireworks/render"
)

var (
	highlightColor = render.RGBWhite
	stringColor    = render.RGBBlack
)

// Balloon drifts upward with a sine wobble
type Balloon struct {
	X, Y        float64
	Size        float64
	Speed       float64
	Wobble      float64
	WobbleSpeed float64
	Opacity     float64
	Color       render.RGB
}

// Balloons is the rising balloon layer, populated on the first update
type Balloons struct {
	rng   *engine.Rand
	count int
	items []*Balloon
}

func NewBalloons(rng *engine.Rand, count int) *Balloons {
	return &Balloons{rng: rng, count: count}
}

// reset places b just below the bottom edge with fresh motion
func (l *Balloons) reset(b *Balloon, w, h float64) {
	b.X = l.rng.Float64() * w
	b.Y = h + l.rng.Float64()*parameter.BalloonRespawnDepth
	b.Speed = l.rng.Range(parameter.BalloonSpeedMin, parameter.BalloonSpeedRange)
	b.Wobble = 0
	b.WobbleSpeed = l.rng.Range(parameter.BalloonWobbleMin, parameter.BalloonWobbleRange)
	b.Opacity = l.rng.Range(parameter.BalloonOpacityMin, parameter.BalloonOpacityRange)
}

func (l *Balloons) Update(now time.Time, w, h float64) {
	if l.items == nil {
		l.items = make([]*Balloon, l.count)
		for i := range l.items {
			b := &Balloon{
				Color: render.HSL(l.rng.Float64()*360, 0.7, 0.6),
				Size:  l.rng.Range(parameter.BalloonSizeMin, parameter.BalloonSizeRange),
			}
			l.reset(b, w, h)
			l.items[i] = b
		}
	}

	for _, b := range l.items {
		b.Y -= b.Speed
		b.Wobble += b.WobbleSpeed
		b.X += math.Sin(b.Wobble) * parameter.BalloonWobbleAmp

		if b.Y < -parameter.BalloonRespawnDepth {
			l.reset(b, w, h)
		}
	}
}

func (l *Balloons) Draw(s render.Surface) {
	for _, b := range l.items {
		s.Save()
		s.SetAlpha(b.Opacity)

		s.SetFill(b.Color)
		s.FillCircle(b.X, b.Y, b.Size)

		s.SetAlpha(b.Opacity * 0.3)
		s.SetFill(highlightColor)
		s.FillCircle(b.X-b.Size*0.3, b.Y-b.Size*0.3, b.Size*0.3)

		s.SetFill(stringColor)
		s.FillRect(b.X-0.5, b.Y+b.Size, 1, parameter.BalloonStringLength)

		s.Restore()
	}
}

// Items returns the live balloons, nil before the first update
func (l *Balloons) Items() []*Balloon {
	return l.items
}
