package engine

import (
	"github.com/lixenwraith/fireworks/physics"
	"github.com/lixenwraith/fireworks/render"
	"github.com/lixenwraith/fireworks/vmath"
)

// Firework is a rocket that rises until its apex and then bursts into particles
//
// Lifecycle: ascending -> exploded with particles -> exploded and empty (removable)
// Particles is empty while ascending and only shrinks after detonation
type Firework struct {
	physics.Kinetic

	// Opacity stays at 1 while ascending
	Opacity   float64
	Hue       float64
	Shape     Shape
	Exploded  bool
	Particles []*Particle

	cfg *Config
	rng *Rand
}

// NewFirework creates an ascending rocket at (x, y)
func NewFirework(x, y float64, cfg *Config, rng *Rand) *Firework {
	shape := ShapeCircle
	if rng.Chance(cfg.HeartChance) {
		shape = ShapeHeart
	}
	return &Firework{
		Kinetic: physics.Kinetic{
			Pos: vmath.Vec2{X: x, Y: y},
			Vel: vmath.Vec2{
				X: rng.Spread(cfg.LaunchDrift),
				Y: -rng.Range(cfg.LaunchSpeedMin, cfg.LaunchSpeedRange),
			},
			Gravity: cfg.FireworkGravity,
		},
		Opacity: 1,
		Hue:     rng.Float64() * 360,
		Shape:   shape,
		cfg:     cfg,
		rng:     rng,
	}
}

// Update advances one frame and reports whether the rocket detonated on this frame
// Ascending rockets detonate once vertical velocity turns non-negative
func (f *Firework) Update() (detonated bool) {
	if !f.Exploded {
		physics.Integrate(&f.Kinetic)
		if !physics.Rising(&f.Kinetic) {
			return f.detonate()
		}
		return false
	}

	// Stable in-place compaction, every particle is visited exactly once
	kept := f.Particles[:0]
	for _, p := range f.Particles {
		p.Update(f.cfg, f.rng)
		if !p.Expired() {
			kept = append(kept, p)
		}
	}
	clear(f.Particles[len(kept):])
	f.Particles = kept

	return false
}

// detonate spawns the burst, a no-op once exploded
func (f *Firework) detonate() bool {
	if f.Exploded {
		return false
	}
	f.Exploded = true

	f.Particles = make([]*Particle, 0, f.cfg.ParticleCount)
	for range f.cfg.ParticleCount {
		f.Particles = append(f.Particles, newParticle(f.Pos, f.Hue, f.Shape, f.cfg, f.rng))
	}
	return true
}

// Draw renders the rocket dot while ascending, the particles afterwards
func (f *Firework) Draw(s render.Surface) {
	if f.Exploded {
		for _, p := range f.Particles {
			p.Draw(s)
		}
		return
	}

	s.Save()
	s.SetAlpha(f.Opacity)
	s.SetFill(render.HSL(f.Hue, 1, 0.5))
	s.FillCircle(f.Pos.X, f.Pos.Y, f.cfg.RocketRadius)
	s.Restore()
}

// Removable reports whether the firework is spent
func (f *Firework) Removable() bool {
	return f.Exploded && len(f.Particles) == 0
}
