package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/fireworks/render"
)

// recordingLayer logs update and draw order
type recordingLayer struct {
	name string
	log  *[]string
}

func (l *recordingLayer) Update(now time.Time, w, h float64) {
	*l.log = append(*l.log, l.name+".update")
}

func (l *recordingLayer) Draw(s render.Surface) {
	*l.log = append(*l.log, l.name+".draw")
}

type countingPresenter struct {
	calls int
	err   error
}

func (p *countingPresenter) Present() error {
	p.calls++
	return p.err
}

// TestSchedulerFrameOrder verifies layers draw around the fireworks in order
func TestSchedulerFrameOrder(t *testing.T) {
	cfg := testConfig()
	rng := NewRand(cfg.Seed)
	reg := NewRegistry(cfg, rng, nil)
	s := newDiscardSurface(800, 600)

	var calls []string
	sched := NewScheduler(reg, nil, s, cfg.TrailAlpha)
	sched.AddLayer(LayerAbove, &recordingLayer{name: "above", log: &calls})
	sched.AddLayer(LayerBelow, &recordingLayer{name: "below", log: &calls})
	p := &countingPresenter{}
	sched.SetPresenter(p)

	sched.Frame(epoch)

	want := []string{"below.update", "below.draw", "above.update", "above.draw"}
	if len(calls) != len(want) {
		t.Fatalf("Expected %v, got %v", want, calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("Expected %s at %d, got %s", want[i], i, calls[i])
		}
	}
	if s.rects != 1 {
		t.Errorf("Expected one trail fade rect, got %d", s.rects)
	}
	if p.calls != 1 || sched.Frames() != 1 {
		t.Errorf("Expected one present and one frame, got %d / %d", p.calls, sched.Frames())
	}
}

// TestSchedulerPresentErrorLogged verifies present failures do not stop frames
func TestSchedulerPresentErrorLogged(t *testing.T) {
	cfg := testConfig()
	reg := NewRegistry(cfg, NewRand(cfg.Seed), nil)
	sched := NewScheduler(reg, nil, newDiscardSurface(10, 10), cfg.TrailAlpha)
	p := &countingPresenter{err: errors.New("screen gone")}
	sched.SetPresenter(p)

	sched.Frame(epoch)
	sched.Frame(epoch.Add(16 * time.Millisecond))

	if p.calls != 2 || sched.Frames() != 2 {
		t.Errorf("Expected 2 frames despite present error, got %d / %d", p.calls, sched.Frames())
	}
}

// TestSchedulerFadeUsesCurrentSize verifies the trail overlay follows surface resizes
func TestSchedulerFadeUsesCurrentSize(t *testing.T) {
	cfg := testConfig()
	reg := NewRegistry(cfg, NewRand(cfg.Seed), nil)
	c := render.NewCanvas(4, 4, 1)
	sched := NewScheduler(reg, nil, c, 1)

	c.SetFill(render.RGBWhite)
	c.FillRect(0, 0, 4, 4)
	c.Resize(8, 8)
	c.SetFill(render.RGBWhite)
	c.FillRect(0, 0, 8, 8)

	sched.Frame(epoch)

	if got := c.At(7, 7); got != render.RGBBlack {
		t.Errorf("Expected full-size fade to reach corner, got %v", got)
	}
}

// TestSchedulerRunInboxAndCancel verifies inbox callbacks and frames share the loop until cancel
func TestSchedulerRunInboxAndCancel(t *testing.T) {
	cfg := testConfig()
	rng := NewRand(cfg.Seed)
	reg := NewRegistry(cfg, rng, nil)
	sched := NewScheduler(reg, NewLauncher(cfg, rng), newDiscardSurface(800, 600), cfg.TrailAlpha)

	driver := newManualDriver()
	inbox := make(chan func())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		sched.Run(ctx, driver, inbox)
		close(done)
	}()

	inbox <- func() { reg.Spawn(100, 600) }
	driver.ch <- epoch
	driver.ch <- epoch.Add(16 * time.Millisecond)

	spawned := make(chan int)
	inbox <- func() { spawned <- reg.Stats().Spawned }
	if n := <-spawned; n != 1 {
		t.Errorf("Expected 1 spawned firework, got %d", n)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Expected Run to return after cancel")
	}

	if sched.Frames() != 2 {
		t.Errorf("Expected 2 frames, got %d", sched.Frames())
	}
}

// TestTickerDriver verifies the ticker delivers frames
func TestTickerDriver(t *testing.T) {
	d := NewTickerDriver(time.Millisecond)
	defer d.Stop()

	select {
	case <-d.RequestFrame():
	case <-time.After(time.Second):
		t.Fatal("Expected a frame from ticker driver")
	}
}
