package engine

import (
	"log"

	"github.com/lixenwraith/fireworks/render"
)

// Stats counts registry lifecycle events since creation or Reset
type Stats struct {
	Spawned   int
	Detonated int
	Pruned    int
	Evicted   int
}

// Registry owns the ordered set of live fireworks
// All methods must be called from the frame loop goroutine
type Registry struct {
	cfg *Config
	rng *Rand

	fireworks []*Firework

	sound        SoundNotifier
	soundEnabled bool

	stats Stats
}

// NewRegistry creates an empty registry, sound may be nil
func NewRegistry(cfg *Config, rng *Rand, sound SoundNotifier) *Registry {
	return &Registry{
		cfg:          cfg,
		rng:          rng,
		fireworks:    make([]*Firework, 0, 32),
		sound:        sound,
		soundEnabled: cfg.SoundEnabled,
	}
}

// Spawn appends a new ascending firework at (x, y)
// When a cap is configured and reached, one live firework is evicted first
func (r *Registry) Spawn(x, y float64) *Firework {
	if r.cfg.MaxFireworks > 0 && len(r.fireworks) >= r.cfg.MaxFireworks {
		r.evict()
	}

	fw := NewFirework(x, y, r.cfg, r.rng)
	r.fireworks = append(r.fireworks, fw)
	r.stats.Spawned++
	return fw
}

// Launch spawns a firework and plays the launch cue
func (r *Registry) Launch(x, y float64) *Firework {
	fw := r.Spawn(x, y)
	r.notify(SoundLaunch)
	return fw
}

func (r *Registry) evict() {
	if len(r.fireworks) == 0 {
		return
	}

	idx := 0
	if r.cfg.Eviction == EvictRandom {
		idx = r.rng.Intn(len(r.fireworks))
	}

	copy(r.fireworks[idx:], r.fireworks[idx+1:])
	r.fireworks[len(r.fireworks)-1] = nil
	r.fireworks = r.fireworks[:len(r.fireworks)-1]
	r.stats.Evicted++
	log.Printf("[REGISTRY] Cap %d reached, evicted firework %d (%s)", r.cfg.MaxFireworks, idx, r.cfg.Eviction)
}

// Tick advances and draws every live firework, then drops the spent ones
// Fireworks that are removable after this tick are not visited again
func (r *Registry) Tick(s render.Surface) {
	for _, fw := range r.fireworks {
		if fw.Update() {
			r.stats.Detonated++
			r.notify(SoundExplosion)
		}
		fw.Draw(s)
	}

	kept := r.fireworks[:0]
	for _, fw := range r.fireworks {
		if !fw.Removable() {
			kept = append(kept, fw)
		}
	}
	r.stats.Pruned += len(r.fireworks) - len(kept)
	clear(r.fireworks[len(kept):])
	r.fireworks = kept
}

// notify forwards a cue to the sound collaborator, never propagating its failures
func (r *Registry) notify(ev SoundEvent) {
	if !r.soundEnabled || r.sound == nil {
		return
	}

	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("[REGISTRY] Sound %s panicked: %v", ev, rec)
		}
	}()

	switch ev {
	case SoundExplosion:
		r.sound.PlayExplosion()
	case SoundLaunch:
		r.sound.PlayLaunch()
	}
}

// SetSoundEnabled gates all sound notifications
func (r *Registry) SetSoundEnabled(enabled bool) {
	r.soundEnabled = enabled
}

// ToggleSound flips the sound gate and returns the new state
func (r *Registry) ToggleSound() bool {
	r.soundEnabled = !r.soundEnabled
	return r.soundEnabled
}

func (r *Registry) SoundEnabled() bool {
	return r.soundEnabled
}

// Len returns the number of live fireworks
func (r *Registry) Len() int {
	return len(r.fireworks)
}

// Fireworks returns the live set in spawn order, callers must not modify it
func (r *Registry) Fireworks() []*Firework {
	return r.fireworks
}

// ParticleCount returns the number of live particles across all fireworks
func (r *Registry) ParticleCount() int {
	n := 0
	for _, fw := range r.fireworks {
		n += len(fw.Particles)
	}
	return n
}

func (r *Registry) Stats() Stats {
	return r.stats
}

// Reset drops every live firework and clears the counters
func (r *Registry) Reset() {
	clear(r.fireworks)
	r.fireworks = r.fireworks[:0]
	r.stats = Stats{}
}
