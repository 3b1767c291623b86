package main

import (
	"context"
	"log"

	"github.com/lixenwraith/fireworks/core"
	"github.com/lixenwraith/fireworks/engine"
	"github.com/lixenwraith/fireworks/parameter"
	"github.com/lixenwraith/fireworks/render"
	"github.com/lixenwraith/fireworks/show"
	"github.com/lixenwraith/fireworks/terminal"
)

var bannerColor = render.RGB{R: 255, G: 215, B: 0}

const keyHelp = "  [s]ound [space] launch [c]atch [q]uit"

// runTerminal runs the show on the controlling terminal until quit or ctx ends
func runTerminal(ctx context.Context, cfg *engine.Config, opts *options) error {
	scr, err := terminal.New(opts.scale)
	if err != nil {
		return err
	}
	core.SetCrashCleanup(scr.Fini)
	defer func() {
		core.SetCrashCleanup(nil)
		scr.Fini()
	}()

	sound := openSound()
	defer sound.Cleanup()

	sh, err := show.New(cfg, scr.Canvas(), sound, !opts.noDecor)
	if err != nil {
		return err
	}
	sh.SetPresenter(scr)
	scr.SetStatus(func() string { return sh.Status().String() + keyHelp })
	scr.SetLabels(func() []terminal.Label {
		banners := sh.Status().Banners
		labels := make([]terminal.Label, len(banners))
		for i, b := range banners {
			labels[i] = terminal.Label{X: b.X, Y: b.Y, Text: b.Text, Color: bannerColor}
		}
		return labels
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	inbox := make(chan func(), 64)
	core.Go(func() { pumpInput(ctx, cancel, scr, sh, inbox) })

	driver := engine.NewTickerDriver(parameter.FrameInterval)
	defer driver.Stop()

	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	log.Printf("[TERMINAL] Running")
	sh.Run(ctx, driver, inbox)
	log.Printf("[TERMINAL] Stopped after %d frames", sh.Status().Frames)
	return nil
}

// pumpInput translates terminal events into closures run on the frame loop
func pumpInput(ctx context.Context, cancel context.CancelFunc, scr *terminal.Screen, sh *show.Show, inbox chan<- func()) {
	var mapper terminal.InputMapper

	post := func(fn func()) {
		select {
		case inbox <- fn:
		case <-ctx.Done():
		}
	}

	for ev := range scr.Events(ctx) {
		in := mapper.Translate(ev)
		switch in.Action {
		case terminal.ActionQuit:
			cancel()
			return
		case terminal.ActionToggleSound:
			post(func() { sh.ToggleSound() })
		case terminal.ActionLaunch:
			post(func() { sh.LaunchRandom() })
		case terminal.ActionCatchCenter:
			post(func() {
				w, h := scr.Canvas().Size()
				sh.Click(ev.When(), w/2, h/2)
			})
		case terminal.ActionClick:
			x, y := scr.ToLogical(in.Col, in.Row)
			post(func() { sh.Click(ev.When(), x, y) })
		case terminal.ActionPointer:
			x, y := scr.ToLogical(in.Col, in.Row)
			post(func() { sh.Pointer(x, y) })
		case terminal.ActionResize:
			post(func() { scr.Resize() })
		}
	}
}
