package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/fireworks/vmath"
)

// TestIntegrateAppliesGravityBeforeMove verifies velocity is updated before position
func TestIntegrateAppliesGravityBeforeMove(t *testing.T) {
	k := Kinetic{
		Pos:     vmath.Vec2{X: 10, Y: 100},
		Vel:     vmath.Vec2{X: 1, Y: -5},
		Gravity: 0.5,
	}

	Integrate(&k)

	if k.Vel.Y != -4.5 {
		t.Errorf("Expected Vel.Y -4.5, got %f", k.Vel.Y)
	}
	if k.Pos.X != 11 || k.Pos.Y != 95.5 {
		t.Errorf("Expected position {11 95.5}, got %v", k.Pos)
	}
}

// TestIntegrateReachesApex verifies a rising body eventually stops rising
func TestIntegrateReachesApex(t *testing.T) {
	k := Kinetic{Vel: vmath.Vec2{Y: -10}, Gravity: 0.3}

	frames := 0
	for Rising(&k) {
		Integrate(&k)
		frames++
		if frames > 1000 {
			t.Fatal("Body never reached apex")
		}
	}

	// 10 / 0.3 = 33.3 frames to cancel the launch speed
	if frames != 34 {
		t.Errorf("Expected apex after 34 frames, got %d", frames)
	}
}

// TestApplyDrag verifies both axes decay
func TestApplyDrag(t *testing.T) {
	k := Kinetic{Vel: vmath.Vec2{X: 10, Y: -20}}

	ApplyDrag(&k, 0.98)

	if math.Abs(k.Vel.X-9.8) > 1e-9 || math.Abs(k.Vel.Y+19.6) > 1e-9 {
		t.Errorf("Expected {9.8 -19.6}, got %v", k.Vel)
	}
}
