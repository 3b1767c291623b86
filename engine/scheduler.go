package engine

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/fireworks/render"
)

// Layer is a decoration updated and drawn once per frame around the fireworks
type Layer interface {
	Update(now time.Time, w, h float64)
	Draw(s render.Surface)
}

// LayerOrder places a layer below or above the fireworks
type LayerOrder int

const (
	LayerBelow LayerOrder = iota
	LayerAbove
)

// Presenter flushes the surface to the output device
type Presenter interface {
	Present() error
}

// FrameDriver schedules the next frame
// Each receive from the returned channel runs one frame
type FrameDriver interface {
	RequestFrame() <-chan time.Time
}

// TickerDriver drives frames from a time.Ticker
type TickerDriver struct {
	ticker *time.Ticker
}

func NewTickerDriver(interval time.Duration) *TickerDriver {
	return &TickerDriver{ticker: time.NewTicker(interval)}
}

func (d *TickerDriver) RequestFrame() <-chan time.Time {
	return d.ticker.C
}

func (d *TickerDriver) Stop() {
	d.ticker.Stop()
}

// Scheduler runs the per-frame cycle: launch timers, trail fade, layers below,
// fireworks, layers above, present
// Not safe for concurrent use, Run owns all state for its lifetime
type Scheduler struct {
	registry   *Registry
	launcher   *Launcher
	surface    render.Surface
	presenter  Presenter
	trailAlpha float64

	below []Layer
	above []Layer

	frames atomic.Uint64
}

// NewScheduler binds the registry and launcher to a surface, launcher may be nil
func NewScheduler(reg *Registry, launcher *Launcher, surface render.Surface, trailAlpha float64) *Scheduler {
	return &Scheduler{
		registry:   reg,
		launcher:   launcher,
		surface:    surface,
		trailAlpha: trailAlpha,
	}
}

func (s *Scheduler) SetPresenter(p Presenter) {
	s.presenter = p
}

// AddLayer registers a decoration layer, layers draw in insertion order
func (s *Scheduler) AddLayer(order LayerOrder, l Layer) {
	if order == LayerAbove {
		s.above = append(s.above, l)
		return
	}
	s.below = append(s.below, l)
}

// Frame runs one frame at now
func (s *Scheduler) Frame(now time.Time) {
	w, h := s.surface.Size()

	if s.launcher != nil {
		s.launcher.Update(now, s.registry, w, h)
	}

	render.FadeTrail(s.surface, s.trailAlpha)

	for _, l := range s.below {
		l.Update(now, w, h)
		l.Draw(s.surface)
	}

	s.registry.Tick(s.surface)

	for _, l := range s.above {
		l.Update(now, w, h)
		l.Draw(s.surface)
	}

	if s.presenter != nil {
		if err := s.presenter.Present(); err != nil {
			log.Printf("[SCHEDULER] Present failed: %v", err)
		}
	}

	s.frames.Add(1)
}

// Run loops until ctx is cancelled, running a frame on each driver tick and
// executing inbox callbacks on the same goroutine between frames
func (s *Scheduler) Run(ctx context.Context, driver FrameDriver, inbox <-chan func()) {
	for {
		select {
		case <-ctx.Done():
			return
		case fn := <-inbox:
			if fn != nil {
				fn()
			}
		case now := <-driver.RequestFrame():
			s.Frame(now)
		}
	}
}

// Frames returns the number of frames run, safe from any goroutine
func (s *Scheduler) Frames() uint64 {
	return s.frames.Load()
}

func (s *Scheduler) Registry() *Registry {
	return s.registry
}
