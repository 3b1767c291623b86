// Package window runs the show in a desktop window through ebiten
package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/fireworks/render"
)

var whiteSubImage *ebiten.Image

// fillSource returns a one-pixel white source image for solid triangles
func fillSource() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// Surface is a persistent offscreen ebiten image implementing render.Surface
// Logical units are window pixels
type Surface struct {
	render.StyleStack

	img           *ebiten.Image
	width, height int

	vertices []ebiten.Vertex
	indices  []uint16
}

func NewSurface(width, height int) *Surface {
	s := &Surface{StyleStack: render.NewStyleStack()}
	s.Resize(width, height)
	return s
}

// Resize replaces the backing image when the size changes, dropping the trail
func (s *Surface) Resize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	if s.img != nil && width == s.width && height == s.height {
		return
	}
	if s.img != nil {
		s.img.Deallocate()
	}
	s.img = ebiten.NewImage(width, height)
	s.img.Fill(color.Black)
	s.width, s.height = width, height
}

// Image returns the backing image to blit onto the screen
func (s *Surface) Image() *ebiten.Image {
	return s.img
}

func (s *Surface) Size() (w, h float64) {
	return float64(s.width), float64(s.height)
}

func (s *Surface) color() color.NRGBA {
	st := s.Current()
	return st.Fill.NRGBA(st.Alpha)
}

func (s *Surface) visible() bool {
	return s.Current().Alpha > 0
}

func (s *Surface) FillRect(x, y, w, h float64) {
	if !s.visible() {
		return
	}
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), s.color(), false)
}

func (s *Surface) FillCircle(cx, cy, r float64) {
	if !s.visible() || r <= 0 {
		return
	}
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), s.color(), true)
}

// FillPath triangulates p and fills it with the non-zero rule
func (s *Surface) FillPath(p *render.Path) {
	if !s.visible() || p.Empty() {
		return
	}

	var path vector.Path
	for _, op := range p.Ops() {
		switch op.Kind {
		case render.OpMoveTo:
			path.MoveTo(float32(op.Pts[0].X), float32(op.Pts[0].Y))
		case render.OpLineTo:
			path.LineTo(float32(op.Pts[0].X), float32(op.Pts[0].Y))
		case render.OpCubicTo:
			path.CubicTo(
				float32(op.Pts[0].X), float32(op.Pts[0].Y),
				float32(op.Pts[1].X), float32(op.Pts[1].Y),
				float32(op.Pts[2].X), float32(op.Pts[2].Y),
			)
		case render.OpClose:
			path.Close()
		}
	}

	s.vertices, s.indices = path.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	r, g, b, a := vertexColor(s.Current())
	for i := range s.vertices {
		s.vertices[i].SrcX = 1
		s.vertices[i].SrcY = 1
		s.vertices[i].ColorR = r
		s.vertices[i].ColorG = g
		s.vertices[i].ColorB = b
		s.vertices[i].ColorA = a
	}

	s.img.DrawTriangles(s.vertices, s.indices, fillSource(), &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.FillRuleNonZero,
		AntiAlias: true,
	})
}

// vertexColor converts a style to straight-alpha vertex color components
func vertexColor(st render.Style) (r, g, b, a float32) {
	return float32(st.Fill.R) / 255, float32(st.Fill.G) / 255, float32(st.Fill.B) / 255, float32(st.Alpha)
}
