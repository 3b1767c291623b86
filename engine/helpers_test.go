package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/fireworks/render"
)

// testConfig returns the stock config with a fixed seed
func testConfig() *Config {
	cfg := DefaultConfig()
	cfg.Seed = 42
	return cfg
}

// fastConfig fades particles quickly and without twinkle
// With FadeMin above TwinkleChance*TwinkleBoost every particle dies within 1/FadeMin frames
func fastConfig() *Config {
	cfg := testConfig()
	cfg.FadeMin = 0.05
	cfg.FadeRange = 0.05
	cfg.TwinkleChance = 0
	return cfg
}

// countingSound records every cue
type countingSound struct {
	explosions atomic.Int64
	launches   atomic.Int64
}

func (c *countingSound) PlayExplosion() { c.explosions.Add(1) }
func (c *countingSound) PlayLaunch()    { c.launches.Add(1) }

// panickingSound fails on every cue
type panickingSound struct{}

func (panickingSound) PlayExplosion() { panic("speaker gone") }
func (panickingSound) PlayLaunch()    { panic("speaker gone") }

// discardSurface tracks style balance and draw calls without rasterizing
type discardSurface struct {
	render.StyleStack
	w, h  float64
	fills int
	rects int
}

func newDiscardSurface(w, h float64) *discardSurface {
	return &discardSurface{StyleStack: render.NewStyleStack(), w: w, h: h}
}

func (d *discardSurface) Size() (float64, float64) { return d.w, d.h }
func (d *discardSurface) FillRect(x, y, w, h float64) { d.rects++ }
func (d *discardSurface) FillCircle(cx, cy, r float64) { d.fills++ }
func (d *discardSurface) FillPath(p *render.Path) { d.fills++ }

// manualDriver hands frames to Run on demand
type manualDriver struct {
	ch chan time.Time
}

func newManualDriver() *manualDriver {
	return &manualDriver{ch: make(chan time.Time)}
}

func (d *manualDriver) RequestFrame() <-chan time.Time {
	return d.ch
}

// tickUntilEmpty ticks until the registry drains or limit is hit, returns ticks run
func tickUntilEmpty(reg *Registry, s render.Surface, limit int) int {
	for i := 1; i <= limit; i++ {
		reg.Tick(s)
		if reg.Len() == 0 {
			return i
		}
	}
	return limit
}
