package engine

import (
	"github.com/lixenwraith/fireworks/parameter"
	"github.com/lixenwraith/fireworks/physics"
	"github.com/lixenwraith/fireworks/render"
	"github.com/lixenwraith/fireworks/vmath"
)

// Shape is the glyph a spark is drawn with
type Shape uint8

const (
	ShapeCircle Shape = iota
	ShapeHeart
)

func (s Shape) String() string {
	if s == ShapeHeart {
		return "heart"
	}
	return "circle"
}

// Particle is one spark of a detonation, owned by exactly one Firework
type Particle struct {
	physics.Kinetic

	// Opacity starts at 1, the particle is spent once it reaches 0
	Opacity float64
	// Hue in degrees, not wrapped
	Hue      float64
	Size     float64
	Shape    Shape
	FadeRate float64
}

// newParticle creates a spark at pos inheriting hue (with jitter) and shape
func newParticle(pos vmath.Vec2, hue float64, shape Shape, cfg *Config, rng *Rand) *Particle {
	return &Particle{
		Kinetic: physics.Kinetic{
			Pos: pos,
			Vel: vmath.Vec2{
				X: rng.Spread(cfg.ParticleSpeed),
				Y: rng.Spread(cfg.ParticleSpeed),
			},
			Gravity: cfg.ParticleGravity,
		},
		Opacity:  1,
		Hue:      hue + rng.Spread(2*cfg.HueJitter),
		Size:     rng.Range(cfg.ParticleSizeMin, cfg.ParticleSizeRange),
		Shape:    shape,
		FadeRate: rng.Range(cfg.FadeMin, cfg.FadeRange),
	}
}

// Update advances one frame: integrate, fade, maybe twinkle, drag
func (p *Particle) Update(cfg *Config, rng *Rand) {
	physics.Integrate(&p.Kinetic)
	p.Opacity -= p.FadeRate
	if rng.Chance(cfg.TwinkleChance) {
		p.Opacity = min(1, p.Opacity+cfg.TwinkleBoost)
	}
	physics.ApplyDrag(&p.Kinetic, cfg.ParticleDrag)
}

// Expired reports whether the spark has faded out
func (p *Particle) Expired() bool {
	return p.Opacity <= 0
}

// Draw renders the spark at its opacity without changing state
func (p *Particle) Draw(s render.Surface) {
	s.Save()
	defer s.Restore()

	s.SetAlpha(p.Opacity)
	s.SetFill(render.HSL(p.Hue, 1, 0.5))

	if p.Shape == ShapeHeart {
		s.FillPath(render.HeartPath(p.Pos.X, p.Pos.Y, p.Size*parameter.ParticleHeartScale))
		return
	}
	s.FillCircle(p.Pos.X, p.Pos.Y, p.Size)
}
