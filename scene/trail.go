package scene

import (
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/lixenwraith/fireworks/engine"
	"github.com/lixenwraith/fireworks/parameter"
	"github.com/lixenwraith/fireworks/render"
	"github.com/lixenwraith/fireworks/vmath"
)

// TrailDot is one fading pointer mark
type TrailDot struct {
	Pos   vmath.Vec2
	Born  time.Time
	Color render.RGB
}

// Trail leaves shrinking pink dots behind the pointer
// The head follows the pointer through a critically damped spring
type Trail struct {
	rng    *engine.Rand
	spring harmonica.Spring

	head, vel, target vmath.Vec2
	tracking          bool
	moved             bool

	dots []TrailDot
	// now is the time of the last update, dots shrink relative to it
	now  time.Time
}

func NewTrail(rng *engine.Rand) *Trail {
	return &Trail{
		rng:    rng,
		spring: harmonica.NewSpring(harmonica.FPS(60), parameter.TrailSpringFrequency, parameter.TrailSpringDamping),
		dots:   make([]TrailDot, 0, parameter.TrailMaxDots),
	}
}

// Pointer records a pointer move to (x, y)
func (t *Trail) Pointer(x, y float64) {
	t.target = vmath.Vec2{X: x, Y: y}
	if !t.tracking {
		t.head = t.target
		t.tracking = true
	}
	t.moved = true
}

func (t *Trail) Update(now time.Time, w, h float64) {
	t.now = now

	live := t.dots[:0]
	for _, d := range t.dots {
		if now.Sub(d.Born) < parameter.TrailDotLife {
			live = append(live, d)
		}
	}
	t.dots = live

	if !t.tracking {
		return
	}

	t.head.X, t.vel.X = t.spring.Update(t.head.X, t.vel.X, t.target.X)
	t.head.Y, t.vel.Y = t.spring.Update(t.head.Y, t.vel.Y, t.target.Y)

	if !t.moved {
		return
	}
	t.moved = false

	if len(t.dots) >= parameter.TrailMaxDots {
		copy(t.dots, t.dots[1:])
		t.dots = t.dots[:len(t.dots)-1]
	}
	pink := render.RGB{R: 255, G: uint8(155 + t.rng.Intn(100)), B: uint8(155 + t.rng.Intn(100))}
	t.dots = append(t.dots, TrailDot{Pos: t.head, Born: now, Color: pink})
}

func (t *Trail) Draw(s render.Surface) {
	if len(t.dots) == 0 {
		return
	}

	s.Save()
	defer s.Restore()

	s.SetAlpha(parameter.TrailDotAlpha)
	for _, d := range t.dots {
		life := 1 - float64(t.now.Sub(d.Born))/float64(parameter.TrailDotLife)
		if life <= 0 {
			continue
		}
		s.SetFill(d.Color)
		s.FillCircle(d.Pos.X, d.Pos.Y, parameter.TrailDotRadius*life)
	}
}

// Dots returns the live marks, oldest first
func (t *Trail) Dots() []TrailDot {
	return t.dots
}

// Head returns the spring-smoothed pointer position
func (t *Trail) Head() vmath.Vec2 {
	return t.head
}
