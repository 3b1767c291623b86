package scene

import (
	"math"
	"time"

	"github.com/lixenwraith/fireworks/engine"
	"github.com/lixenwraith/fireworks/parameter"
	"github.com/lixenwraith/fireworks/render"
	"github.com/lixenwraith/fireworks/vmath"
)

// Messages are the catch banner captions
var Messages = []string{
	"CAUGHT!",
	"MAGIC!",
	"AMAZING!",
	"CAUGHT YOU!",
	"SURPRISE!",
	"LOVE!",
	"BDAY!",
}

// Spark is one radial fragment of a catch burst
type Spark struct {
	Pos, Vel vmath.Vec2
	Opacity  float64
	Color    render.RGB
	Heart    bool
}

// Banner is a caption shown at the catch point for a fixed time
type Banner struct {
	Text string
	X, Y float64
	Born time.Time
}

// Bursts renders catch sparks and tracks banners, text is drawn by the frontend
type Bursts struct {
	rng     *engine.Rand
	sparks  []*Spark
	banners []Banner
}

func NewBursts(rng *engine.Rand) *Bursts {
	return &Bursts{rng: rng}
}

// Catch fires a ring of sparks at (x, y) and posts a banner, returning its text
func (b *Bursts) Catch(now time.Time, x, y float64) string {
	origin := vmath.Vec2{X: x, Y: y}
	for i := range parameter.BurstSparks {
		angle := 2 * math.Pi * float64(i) / parameter.BurstSparks
		speed := b.rng.Range(parameter.BurstSpeedMin, parameter.BurstSpeedRange)
		b.sparks = append(b.sparks, &Spark{
			Pos:     origin,
			Vel:     vmath.FromAngle(angle, speed),
			Opacity: 1,
			Color:   render.HSL(b.rng.Float64()*360, 1, 0.5),
			Heart:   b.rng.Chance(parameter.BurstHeartChance),
		})
	}

	text := Messages[b.rng.Intn(len(Messages))]
	b.banners = append(b.banners, Banner{Text: text, X: x, Y: y, Born: now})
	return text
}

func (b *Bursts) Update(now time.Time, w, h float64) {
	kept := b.sparks[:0]
	for _, sp := range b.sparks {
		sp.Pos = sp.Pos.Add(sp.Vel)
		sp.Opacity -= parameter.BurstFade
		if sp.Opacity > 0 {
			kept = append(kept, sp)
		}
	}
	clear(b.sparks[len(kept):])
	b.sparks = kept

	live := b.banners[:0]
	for _, bn := range b.banners {
		if now.Sub(bn.Born) < parameter.BannerLife {
			live = append(live, bn)
		}
	}
	b.banners = live
}

func (b *Bursts) Draw(s render.Surface) {
	for _, sp := range b.sparks {
		s.Save()
		s.SetAlpha(sp.Opacity)
		s.SetFill(sp.Color)
		if sp.Heart {
			s.FillPath(render.HeartPath(sp.Pos.X, sp.Pos.Y, parameter.BurstSparkRadius*3))
		} else {
			s.FillCircle(sp.Pos.X, sp.Pos.Y, parameter.BurstSparkRadius)
		}
		s.Restore()
	}
}

// Sparks returns the live sparks
func (b *Bursts) Sparks() []*Spark {
	return b.sparks
}

// Banners returns the live captions, oldest first
func (b *Bursts) Banners() []Banner {
	return b.banners
}
