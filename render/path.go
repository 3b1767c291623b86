package render

import (
	"math"

	"github.com/lixenwraith/fireworks/vmath"
)

// OpKind identifies a path command
type OpKind uint8

const (
	OpMoveTo OpKind = iota
	OpLineTo
	OpCubicTo
	OpClose
)

// PathOp is one path command
// MoveTo/LineTo use Pts[0]; CubicTo uses Pts[0], Pts[1] as control points and Pts[2] as end point
type PathOp struct {
	Kind OpKind
	Pts  [3]vmath.Vec2
}

// Path is a sequence of subpaths built from lines and cubic bezier curves
type Path struct {
	ops []PathOp
}

// MoveTo starts a new subpath
func (p *Path) MoveTo(x, y float64) {
	p.ops = append(p.ops, PathOp{Kind: OpMoveTo, Pts: [3]vmath.Vec2{{X: x, Y: y}}})
}

// LineTo adds a straight segment
func (p *Path) LineTo(x, y float64) {
	p.ops = append(p.ops, PathOp{Kind: OpLineTo, Pts: [3]vmath.Vec2{{X: x, Y: y}}})
}

// CubicTo adds a cubic bezier segment
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.ops = append(p.ops, PathOp{Kind: OpCubicTo, Pts: [3]vmath.Vec2{{X: c1x, Y: c1y}, {X: c2x, Y: c2y}, {X: x, Y: y}}})
}

// Close ends the current subpath
func (p *Path) Close() {
	p.ops = append(p.ops, PathOp{Kind: OpClose})
}

// Ops returns the recorded commands
func (p *Path) Ops() []PathOp {
	return p.ops
}

// Empty reports whether the path has no commands
func (p *Path) Empty() bool {
	return len(p.ops) == 0
}

// Bounds returns the axis-aligned box of all path points including control points
func (p *Path) Bounds() (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, op := range p.ops {
		n := 1
		switch op.Kind {
		case OpClose:
			continue
		case OpCubicTo:
			n = 3
		}
		for _, pt := range op.Pts[:n] {
			minX = math.Min(minX, pt.X)
			minY = math.Min(minY, pt.Y)
			maxX = math.Max(maxX, pt.X)
			maxY = math.Max(maxY, pt.Y)
		}
	}
	return minX, minY, maxX, maxY
}

// HeartPath returns the heart glyph with its top notch at (x, y) and tip at (x, y+size)
func HeartPath(x, y, size float64) *Path {
	k := size * 0.7
	h := size * 0.5
	p := &Path{}
	p.MoveTo(x, y)
	p.CubicTo(x, y-k, x-k, y-k, x-k, y)
	p.CubicTo(x-k, y+h, x, y+h, x, y+size)
	p.CubicTo(x, y+h, x+k, y+h, x+k, y)
	p.CubicTo(x+k, y-k, x, y-k, x, y)
	p.Close()
	return p
}

// StarPath returns a four-point star centered at (x, y) with outer radius r
func StarPath(x, y, r float64) *Path {
	in := r * 0.3
	p := &Path{}
	p.MoveTo(x, y-r)
	p.LineTo(x+in, y-in)
	p.LineTo(x+r, y)
	p.LineTo(x+in, y+in)
	p.LineTo(x, y+r)
	p.LineTo(x-in, y+in)
	p.LineTo(x-r, y)
	p.LineTo(x-in, y-in)
	p.Close()
	return p
}
