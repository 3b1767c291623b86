package physics

import (
	"github.com/lixenwraith/fireworks/vmath"
)

// Kinetic is the motion state shared by rockets and sparks
type Kinetic struct {
	// Pos is the position in surface units
	Pos vmath.Vec2
	// Vel is the velocity in surface units per frame
	Vel vmath.Vec2
	// Gravity is added to Vel.Y every frame
	Gravity float64
}

// Integrate performs explicit Euler integration: v.y += g; p = p + v
func Integrate(k *Kinetic) {
	k.Vel.Y += k.Gravity
	k.Pos.X += k.Vel.X
	k.Pos.Y += k.Vel.Y
}

// ApplyDrag decays velocity on both axes by a multiplicative factor
func ApplyDrag(k *Kinetic, factor float64) {
	k.Vel.X *= factor
	k.Vel.Y *= factor
}

// Rising reports whether the body still moves upward
func Rising(k *Kinetic) bool {
	return k.Vel.Y < 0
}
