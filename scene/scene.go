// Package scene holds the decorations drawn around the fireworks:
// balloons, floating hearts, confetti, twinkling stars, the pointer trail and catch bursts
package scene

import (
	"time"

	"github.com/lixenwraith/fireworks/engine"
	"github.com/lixenwraith/fireworks/parameter"
)

// Scene groups every decoration layer
type Scene struct {
	Stars    *Stars
	Balloons *Balloons
	Hearts   *Hearts
	Confetti *Confetti
	Trail    *Trail
	Bursts   *Bursts

	// decor false leaves out balloons, hearts, confetti and stars
	decor bool
}

// New builds the decorations from rng, noiseSeed drives star twinkle
func New(rng *engine.Rand, noiseSeed int64, decor bool) *Scene {
	sc := &Scene{
		Trail:  NewTrail(rng),
		Bursts: NewBursts(rng),
		decor:  decor,
	}
	if decor {
		sc.Stars = NewStars(rng, parameter.StarCount, noiseSeed)
		sc.Balloons = NewBalloons(rng, parameter.BalloonCount)
		sc.Hearts = NewHearts(rng)
		sc.Confetti = NewConfetti(rng)
	}
	return sc
}

// Attach registers layers on the scheduler: stars below the fireworks,
// the other decorations above
func (sc *Scene) Attach(sched *engine.Scheduler) {
	if sc.decor {
		sched.AddLayer(engine.LayerBelow, sc.Stars)
		sched.AddLayer(engine.LayerAbove, sc.Balloons)
		sched.AddLayer(engine.LayerAbove, sc.Hearts)
		sched.AddLayer(engine.LayerAbove, sc.Confetti)
	}
	sched.AddLayer(engine.LayerAbove, sc.Trail)
	sched.AddLayer(engine.LayerAbove, sc.Bursts)
}

// Catch plays the burst at (x, y) and returns the banner text
func (sc *Scene) Catch(now time.Time, x, y float64) string {
	return sc.Bursts.Catch(now, x, y)
}

// Pointer feeds a pointer move to the trail
func (sc *Scene) Pointer(x, y float64) {
	sc.Trail.Pointer(x, y)
}

// Banners returns live catch captions
func (sc *Scene) Banners() []Banner {
	return sc.Bursts.Banners()
}
