package engine

import (
	"math"
	"testing"

	"github.com/lixenwraith/fireworks/vmath"
)

// TestFireworkLaunchVelocity verifies the upward launch speed range
func TestFireworkLaunchVelocity(t *testing.T) {
	cfg := testConfig()
	rng := NewRand(cfg.Seed)

	for i := 0; i < 500; i++ {
		fw := NewFirework(400, 600, cfg, rng)
		if fw.Vel.Y > -cfg.LaunchSpeedMin || fw.Vel.Y <= -(cfg.LaunchSpeedMin+cfg.LaunchSpeedRange) {
			t.Fatalf("Expected vertical velocity in (-25,-10], got %v", fw.Vel.Y)
		}
		if math.Abs(fw.Vel.X) > cfg.LaunchDrift/2 {
			t.Fatalf("Expected horizontal drift within ±1, got %v", fw.Vel.X)
		}
		if fw.Hue < 0 || fw.Hue >= 360 {
			t.Fatalf("Expected hue in [0,360), got %v", fw.Hue)
		}
		if fw.Opacity != 1 || fw.Exploded || len(fw.Particles) != 0 {
			t.Fatalf("Expected fresh ascending firework, got %+v", fw)
		}
	}
}

// TestFireworkNoParticlesWhileAscending verifies detonation happens only at the apex
func TestFireworkNoParticlesWhileAscending(t *testing.T) {
	cfg := testConfig()
	rng := NewRand(cfg.Seed)
	fw := NewFirework(400, 600, cfg, rng)

	for i := 0; i < 1000; i++ {
		rising := fw.Vel.Y+cfg.FireworkGravity < 0
		detonated := fw.Update()

		if rising {
			if detonated || fw.Exploded || len(fw.Particles) != 0 {
				t.Fatalf("Expected no detonation while rising at update %d", i)
			}
			continue
		}

		if !detonated || !fw.Exploded {
			t.Fatalf("Expected detonation at apex on update %d", i)
		}
		return
	}
	t.Fatal("Expected firework to reach its apex")
}

// TestFireworkDetonation verifies particle count, hue jitter and inherited shape
func TestFireworkDetonation(t *testing.T) {
	cfg := testConfig()
	rng := NewRand(cfg.Seed)

	for _, shape := range []Shape{ShapeCircle, ShapeHeart} {
		fw := NewFirework(400, 600, cfg, rng)
		fw.Shape = shape

		for !fw.Update() {
		}

		if len(fw.Particles) != cfg.ParticleCount {
			t.Fatalf("Expected %d particles, got %d", cfg.ParticleCount, len(fw.Particles))
		}
		for _, p := range fw.Particles {
			if vmath.DegreeDistance(p.Hue, fw.Hue) > cfg.HueJitter+1e-9 {
				t.Errorf("Expected hue within ±%v of %v, got %v", cfg.HueJitter, fw.Hue, p.Hue)
			}
			if p.Shape != shape {
				t.Errorf("Expected particle shape %v, got %v", shape, p.Shape)
			}
			if p.Pos != fw.Pos {
				t.Errorf("Expected particle at detonation point %v, got %v", fw.Pos, p.Pos)
			}
		}
	}
}

// TestFireworkDetonateIdempotent verifies a second detonation adds nothing
func TestFireworkDetonateIdempotent(t *testing.T) {
	cfg := testConfig()
	rng := NewRand(cfg.Seed)
	fw := NewFirework(100, 100, cfg, rng)

	if !fw.detonate() {
		t.Fatal("Expected first detonation to succeed")
	}
	if fw.detonate() {
		t.Error("Expected second detonation to be a no-op")
	}
	if len(fw.Particles) != cfg.ParticleCount {
		t.Errorf("Expected %d particles, got %d", cfg.ParticleCount, len(fw.Particles))
	}
}

// TestFireworkParticlesOnlyShrink verifies the particle set is monotonically decreasing
func TestFireworkParticlesOnlyShrink(t *testing.T) {
	cfg := testConfig()
	rng := NewRand(cfg.Seed)
	fw := NewFirework(400, 600, cfg, rng)

	for !fw.Update() {
	}

	prev := len(fw.Particles)
	for i := 0; i < 100000 && !fw.Removable(); i++ {
		fw.Update()
		if len(fw.Particles) > prev {
			t.Fatalf("Expected particle count to only decrease, %d -> %d", prev, len(fw.Particles))
		}
		for _, p := range fw.Particles {
			if p.Expired() {
				t.Fatalf("Expected expired particles to be compacted away at update %d", i)
			}
		}
		prev = len(fw.Particles)
	}

	if !fw.Removable() {
		t.Fatalf("Expected firework to become removable, %d particles left", len(fw.Particles))
	}
}

// TestFireworkCompactionNoSkip verifies adjacent expiring particles are all removed in one pass
func TestFireworkCompactionNoSkip(t *testing.T) {
	cfg := testConfig()
	cfg.TwinkleChance = 0
	rng := NewRand(cfg.Seed)
	fw := NewFirework(0, 0, cfg, rng)
	fw.cfg = cfg
	fw.detonate()

	// Every other pair expires on the next update
	for i, p := range fw.Particles {
		if i%4 < 2 {
			p.Opacity = p.FadeRate / 2
		}
	}
	survivors := make([]*Particle, 0, len(fw.Particles))
	for i, p := range fw.Particles {
		if i%4 >= 2 {
			survivors = append(survivors, p)
		}
	}

	fw.Update()

	if len(fw.Particles) != len(survivors) {
		t.Fatalf("Expected %d survivors, got %d", len(survivors), len(fw.Particles))
	}
	for i := range survivors {
		if fw.Particles[i] != survivors[i] {
			t.Fatalf("Expected stable order at %d", i)
		}
	}
}

// TestFireworkRemovable verifies removal only for exploded and empty fireworks
func TestFireworkRemovable(t *testing.T) {
	cfg := testConfig()
	rng := NewRand(cfg.Seed)
	fw := NewFirework(0, 0, cfg, rng)

	if fw.Removable() {
		t.Error("Expected ascending firework to not be removable")
	}

	fw.detonate()
	if fw.Removable() {
		t.Error("Expected exploded firework with particles to not be removable")
	}

	fw.Particles = fw.Particles[:0]
	if !fw.Removable() {
		t.Error("Expected exploded empty firework to be removable")
	}
}

// TestFireworkDrawRocket verifies the ascending rocket draws a single dot
func TestFireworkDrawRocket(t *testing.T) {
	cfg := testConfig()
	rng := NewRand(cfg.Seed)
	fw := NewFirework(10, 10, cfg, rng)
	s := newDiscardSurface(100, 100)

	fw.Draw(s)
	if s.fills != 1 {
		t.Errorf("Expected 1 fill for ascending rocket, got %d", s.fills)
	}

	fw.detonate()
	s.fills = 0
	fw.Draw(s)
	if s.fills != cfg.ParticleCount {
		t.Errorf("Expected %d fills after detonation, got %d", cfg.ParticleCount, s.fills)
	}
	if s.Depth() != 0 {
		t.Errorf("Expected balanced save/restore, depth %d", s.Depth())
	}
}
