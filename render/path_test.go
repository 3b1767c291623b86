package render

import (
	"math"
	"testing"
)

// TestHeartOps verifies the heart is one closed subpath of four cubic curves
func TestHeartOps(t *testing.T) {
	ops := HeartPath(0, 0, 10).Ops()

	if len(ops) != 6 {
		t.Fatalf("Expected 6 commands, got %d", len(ops))
	}
	if ops[0].Kind != OpMoveTo || ops[5].Kind != OpClose {
		t.Errorf("Expected MoveTo ... Close, got %v ... %v", ops[0].Kind, ops[5].Kind)
	}
	for i := 1; i <= 4; i++ {
		if ops[i].Kind != OpCubicTo {
			t.Errorf("Expected cubic at %d, got %v", i, ops[i].Kind)
		}
	}

	end := ops[4].Pts[2]
	if math.Abs(end.X) > 1e-9 || math.Abs(end.Y) > 1e-9 {
		t.Errorf("Expected outline to return to origin, got %v", end)
	}
}

// TestHeartBounds verifies glyph extents follow size
func TestHeartBounds(t *testing.T) {
	minX, minY, maxX, maxY := HeartPath(100, 100, 10).Bounds()

	if math.Abs(minX-93) > 1e-9 || math.Abs(maxX-107) > 1e-9 {
		t.Errorf("Expected x extent [93,107], got [%v,%v]", minX, maxX)
	}
	if math.Abs(minY-93) > 1e-9 || math.Abs(maxY-110) > 1e-9 {
		t.Errorf("Expected y extent [93,110], got [%v,%v]", minY, maxY)
	}
}

// TestStarPathFill verifies the star covers its center but not its box corners
func TestStarPathFill(t *testing.T) {
	c := NewCanvas(40, 40, 1)
	c.SetFill(RGBWhite)
	c.FillPath(StarPath(20, 20, 15))

	if got := c.At(19, 19); got != RGBWhite {
		t.Errorf("Expected star center filled, got %v", got)
	}
	if got := c.At(32, 32); got != RGBBlack {
		t.Errorf("Expected box corner outside star, got %v", got)
	}
}

// TestPathEmpty verifies an unused path reports empty and fills nothing
func TestPathEmpty(t *testing.T) {
	p := &Path{}
	if !p.Empty() {
		t.Error("Expected new path to be empty")
	}

	c := NewCanvas(4, 4, 1)
	c.FillPath(p)
	c.FillPath(nil)
	if got := c.At(1, 1); got != RGBBlack {
		t.Errorf("Expected no change, got %v", got)
	}

	p.MoveTo(0, 0)
	if p.Empty() {
		t.Error("Path with commands reported empty")
	}
}
