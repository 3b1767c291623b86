package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/fireworks/vmath"
)

// RGB is an opaque 24-bit color, alpha is carried by the drawing style
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// clamp converts float to uint8 efficiently
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// HSL converts hue in degrees (any range), saturation and lightness in [0,1]
// Matches the CSS hsl() notation used for spark colors
func HSL(h, s, l float64) RGB {
	c := colorful.Hsl(vmath.WrapDegrees(h), vmath.Clamp01(s), vmath.Clamp01(l)).Clamped()
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}
}

// NRGBA converts to a non-premultiplied image color with the given opacity
func (c RGB) NRGBA(alpha float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: clamp(vmath.Clamp01(alpha)*255.0 + 0.5)}
}

// Lerp linearly interpolates between two colors
// t=0 returns a, t=1 returns b
func Lerp(a, b RGB, t float64) RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return RGB{
		R: uint8(float64(a.R) + t*float64(int(b.R)-int(a.R))),
		G: uint8(float64(a.G) + t*float64(int(b.G)-int(a.G))),
		B: uint8(float64(a.B) + t*float64(int(b.B)-int(a.B))),
	}
}
