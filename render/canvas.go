package render

import (
	"image"
	"math"

	"github.com/fogleman/gg"
)

// Canvas is a software Surface rasterized by gg into an RGBA image
// Logical coordinates are divided by scale to address pixels, so physics tuned
// for a large window stays proportionate on a small grid such as a terminal
type Canvas struct {
	StyleStack

	img *image.RGBA
	dc  *gg.Context
	// pushed counts gg states saved on the current context
	pushed int
	scale  float64
}

// NewCanvas creates a black canvas of width x height pixels
// scale is logical units per pixel, values <= 0 mean 1
func NewCanvas(width, height int, scale float64) *Canvas {
	if scale <= 0 {
		scale = 1
	}
	c := &Canvas{
		StyleStack: NewStyleStack(),
		scale:      scale,
	}
	c.Resize(width, height)
	return c
}

// Resize adjusts pixel dimensions, the image is reallocated only when the size changes
// Content is cleared, stored logical coordinates of callers are untouched
func (c *Canvas) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)

	if c.img == nil || c.img.Bounds().Dx() != width || c.img.Bounds().Dy() != height {
		c.img = image.NewRGBA(image.Rect(0, 0, width, height))
		c.dc = gg.NewContextForRGBA(c.img)
		c.dc.Scale(1/c.scale, 1/c.scale)
		c.pushed = 0
	}
	c.Clear()
}

// Clear resets all pixels to opaque black
func (c *Canvas) Clear() {
	c.dc.SetColor(RGBBlack.NRGBA(1))
	c.dc.Clear()
}

// Size returns logical dimensions
func (c *Canvas) Size() (w, h float64) {
	pw, ph := c.PixelSize()
	return float64(pw) * c.scale, float64(ph) * c.scale
}

// PixelSize returns grid dimensions in pixels
func (c *Canvas) PixelSize() (w, h int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Scale returns logical units per pixel
func (c *Canvas) Scale() float64 {
	return c.scale
}

// At returns the pixel at grid position, black when out of bounds
func (c *Canvas) At(x, y int) RGB {
	if !(image.Point{X: x, Y: y}).In(c.img.Bounds()) {
		return RGBBlack
	}
	px := c.img.RGBAAt(x, y)
	return RGB{R: px.R, G: px.G, B: px.B}
}

// Save pushes the style and the gg state
func (c *Canvas) Save() {
	c.StyleStack.Save()
	c.dc.Push()
	c.pushed++
}

// Restore pops the style and the gg state, unbalanced calls are ignored
func (c *Canvas) Restore() {
	if c.pushed > 0 {
		c.dc.Pop()
		c.pushed--
	}
	c.StyleStack.Restore()
}

// drawable reports whether a fill can change any pixel
func (c *Canvas) drawable() bool {
	pw, ph := c.PixelSize()
	return c.cur.Alpha > 0 && pw > 0 && ph > 0
}

// minRadius is half a pixel in logical units
func (c *Canvas) minRadius() float64 {
	return c.scale / 2
}

// paint fills the pending gg path with the current style
func (c *Canvas) paint() {
	c.dc.SetColor(c.cur.Fill.NRGBA(c.cur.Alpha))
	c.dc.Fill()
}

func (c *Canvas) FillRect(x, y, w, h float64) {
	if w <= 0 || h <= 0 || !c.drawable() {
		return
	}
	c.dc.DrawRectangle(x, y, w, h)
	c.paint()
}

// FillCircle fills an anti-aliased circle
// Circles smaller than a pixel are drawn at half-pixel radius so sparks stay visible
func (c *Canvas) FillCircle(cx, cy, r float64) {
	if r <= 0 || !c.drawable() {
		return
	}
	c.dc.DrawCircle(cx, cy, math.Max(r, c.minRadius()))
	c.paint()
}

// FillPath fills the path with the non-zero winding rule
// Paths smaller than a pixel collapse to a half-pixel dot at their center
func (c *Canvas) FillPath(p *Path) {
	if p == nil || p.Empty() || !c.drawable() {
		return
	}

	minX, minY, maxX, maxY := p.Bounds()
	if maxX-minX < c.scale && maxY-minY < c.scale {
		c.dc.DrawCircle((minX+maxX)/2, (minY+maxY)/2, c.minRadius())
		c.paint()
		return
	}

	c.dc.NewSubPath()
	for _, op := range p.Ops() {
		switch op.Kind {
		case OpMoveTo:
			c.dc.MoveTo(op.Pts[0].X, op.Pts[0].Y)
		case OpLineTo:
			c.dc.LineTo(op.Pts[0].X, op.Pts[0].Y)
		case OpCubicTo:
			c.dc.CubicTo(op.Pts[0].X, op.Pts[0].Y, op.Pts[1].X, op.Pts[1].Y, op.Pts[2].X, op.Pts[2].Y)
		case OpClose:
			c.dc.ClosePath()
		}
	}
	c.dc.SetFillRule(gg.FillRuleWinding)
	c.paint()
}
