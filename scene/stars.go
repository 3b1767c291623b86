package scene

import (
	"time"

	"github.com/aquilax/go-perlin"

	"github.com/lixenwraith/fireworks/engine"
	"github.com/lixenwraith/fireworks/parameter"
	"github.com/lixenwraith/fireworks/render"
	"github.com/lixenwraith/fireworks/vmath"
)

var starColor = render.RGB{R: 255, G: 236, B: 160}

// Star is a fixed twinkling sparkle, position is a fraction of the surface
type Star struct {
	FX, FY     float64
	Size       float64
	Brightness float64
	// seed offsets the star in noise space
	seed float64
}

// Stars twinkles a fixed field of four-point stars with Perlin noise
type Stars struct {
	noise *perlin.Perlin
	items []*Star
	start time.Time
}

func NewStars(rng *engine.Rand, count int, seed int64) *Stars {
	items := make([]*Star, count)
	for i := range items {
		items[i] = &Star{
			FX:         rng.Float64(),
			FY:         rng.Float64(),
			Size:       rng.Range(parameter.StarSizeMin, parameter.StarSizeRange),
			Brightness: 1,
			seed:       float64(i)*7.31 + 0.5,
		}
	}
	return &Stars{
		noise: perlin.NewPerlin(2, 2, 3, seed),
		items: items,
	}
}

func (l *Stars) Update(now time.Time, w, h float64) {
	if l.start.IsZero() {
		l.start = now
	}
	t := now.Sub(l.start).Seconds() * parameter.StarTwinkleRate

	for _, st := range l.items {
		st.Brightness = vmath.Clamp01(0.55 + l.noise.Noise2D(st.seed, t))
	}
}

// Draw places stars at their fractional positions, so they follow resizes
func (l *Stars) Draw(s render.Surface) {
	w, h := s.Size()

	s.Save()
	defer s.Restore()

	s.SetFill(starColor)
	for _, st := range l.items {
		s.SetAlpha(st.Brightness)
		s.FillPath(render.StarPath(st.FX*w, st.FY*h, st.Size/2))
	}
}

func (l *Stars) Items() []*Star {
	return l.items
}
