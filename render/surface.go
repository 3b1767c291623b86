package render

import "github.com/lixenwraith/fireworks/vmath"

// Surface is a persistent 2D drawing target in logical units
// Implementations keep pixels between frames; callers fade instead of clearing
type Surface interface {
	// Size returns current logical dimensions, callers must not cache them across frames
	Size() (w, h float64)

	// Save pushes the current style, Restore pops it
	Save()
	Restore()

	// SetAlpha sets global opacity for subsequent fills, clamped to [0,1]
	SetAlpha(a float64)
	// SetFill sets the fill color for subsequent fills
	SetFill(c RGB)

	FillRect(x, y, w, h float64)
	FillCircle(cx, cy, r float64)
	FillPath(p *Path)
}

// Style is the drawing state scoped by Save/Restore
type Style struct {
	Alpha float64
	Fill  RGB
}

// DefaultStyle is opaque white, the state of a fresh surface
var DefaultStyle = Style{Alpha: 1, Fill: RGBWhite}

// StyleStack implements the Save/Restore and setter half of Surface
// Embed it in a surface implementation
type StyleStack struct {
	cur   Style
	saved []Style
}

// NewStyleStack returns a stack holding DefaultStyle
func NewStyleStack() StyleStack {
	return StyleStack{cur: DefaultStyle}
}

// Save pushes the current style
func (s *StyleStack) Save() {
	s.saved = append(s.saved, s.cur)
}

// Restore pops the last saved style, unbalanced calls are ignored
func (s *StyleStack) Restore() {
	n := len(s.saved)
	if n == 0 {
		return
	}
	s.cur = s.saved[n-1]
	s.saved = s.saved[:n-1]
}

// SetAlpha sets global opacity clamped to [0,1]
func (s *StyleStack) SetAlpha(a float64) {
	s.cur.Alpha = vmath.Clamp01(a)
}

// SetFill sets the fill color
func (s *StyleStack) SetFill(c RGB) {
	s.cur.Fill = c
}

// Current returns the active style
func (s *StyleStack) Current() Style {
	return s.cur
}

// Depth returns the number of saved styles
func (s *StyleStack) Depth() int {
	return len(s.saved)
}

// FadeTrail paints the whole surface black at alpha instead of clearing it,
// leaving fading motion trails behind moving shapes
func FadeTrail(s Surface, alpha float64) {
	w, h := s.Size()
	s.Save()
	s.SetAlpha(alpha)
	s.SetFill(RGBBlack)
	s.FillRect(0, 0, w, h)
	s.Restore()
}
