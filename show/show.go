// Package show wires the simulation, launcher and decorations into one controller
// that frontends drive with frames and pointer input
package show

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/fireworks/engine"
	"github.com/lixenwraith/fireworks/render"
	"github.com/lixenwraith/fireworks/scene"
)

// Status is a snapshot for status lines and debug overlays
type Status struct {
	Fireworks int
	Particles int
	Sound     bool
	Frames    uint64
	Stats     engine.Stats
	Banners   []scene.Banner
}

func (s Status) String() string {
	sound := "on"
	if !s.Sound {
		sound = "off"
	}
	return fmt.Sprintf("fireworks %d  particles %d  sound %s", s.Fireworks, s.Particles, sound)
}

// Show owns one running fireworks display
// Methods must be called from the goroutine that runs frames
type Show struct {
	cfg      *engine.Config
	rng      *engine.Rand
	surface  render.Surface
	registry *engine.Registry
	launcher *engine.Launcher
	scene    *scene.Scene
	sched    *engine.Scheduler
}

// New validates cfg and builds a show drawing onto surface, sound may be nil
func New(cfg *engine.Config, surface render.Surface, sound engine.SoundNotifier, decor bool) (*Show, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := engine.NewRand(cfg.Seed)
	reg := engine.NewRegistry(cfg, rng, sound)
	launcher := engine.NewLauncher(cfg, rng)
	sched := engine.NewScheduler(reg, launcher, surface, cfg.TrailAlpha)

	sc := scene.New(rng, int64(rng.Intn(1<<30)), decor)
	sc.Attach(sched)

	log.Printf("[SHOW] Created: seed=%d cap=%d eviction=%s sound=%t decor=%t",
		cfg.Seed, cfg.MaxFireworks, cfg.Eviction, reg.SoundEnabled(), decor)

	return &Show{
		cfg:      cfg,
		rng:      rng,
		surface:  surface,
		registry: reg,
		launcher: launcher,
		scene:    sc,
		sched:    sched,
	}, nil
}

// SetPresenter sets the per-frame flush target
func (s *Show) SetPresenter(p engine.Presenter) {
	s.sched.SetPresenter(p)
}

// Frame runs one frame at now
func (s *Show) Frame(now time.Time) {
	s.sched.Frame(now)
}

// Run drives frames until ctx is cancelled, inbox callbacks run between frames
func (s *Show) Run(ctx context.Context, driver engine.FrameDriver, inbox <-chan func()) {
	s.sched.Run(ctx, driver, inbox)
}

// Click catches at (x, y): a spark burst with a banner and a volley of launches
func (s *Show) Click(now time.Time, x, y float64) string {
	s.launcher.Catch(now)
	text := s.scene.Catch(now, x, y)
	log.Printf("[SHOW] Catch at (%.0f,%.0f): %s", x, y, text)
	return text
}

// Pointer feeds pointer motion to the trail
func (s *Show) Pointer(x, y float64) {
	s.scene.Pointer(x, y)
}

// LaunchAt launches one firework from the ground at x
func (s *Show) LaunchAt(x float64) *engine.Firework {
	_, h := s.surface.Size()
	return s.registry.Launch(x, h)
}

// LaunchRandom launches one firework from the ground at a random x
func (s *Show) LaunchRandom() *engine.Firework {
	w, _ := s.surface.Size()
	return s.LaunchAt(s.rng.Float64() * w)
}

// ToggleSound flips sound and returns the new state
func (s *Show) ToggleSound() bool {
	on := s.registry.ToggleSound()
	log.Printf("[SHOW] Sound %t", on)
	return on
}

// Status returns a snapshot of the show
func (s *Show) Status() Status {
	return Status{
		Fireworks: s.registry.Len(),
		Particles: s.registry.ParticleCount(),
		Sound:     s.registry.SoundEnabled(),
		Frames:    s.sched.Frames(),
		Stats:     s.registry.Stats(),
		Banners:   s.scene.Banners(),
	}
}

// Registry exposes the live fireworks
func (s *Show) Registry() *engine.Registry {
	return s.registry
}

func (s *Show) Scene() *scene.Scene {
	return s.scene
}
