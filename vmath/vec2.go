package vmath

import "math"

// Vec2 is a 2D vector in surface coordinates, Y grows downward
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// FromAngle returns a vector of length mag pointing at angle radians
func FromAngle(angle, mag float64) Vec2 {
	return Vec2{math.Cos(angle) * mag, math.Sin(angle) * mag}
}

// Lerp interpolates between a and b, t in [0,1]
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 limits v to [0,1]
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// WrapDegrees maps an angle in degrees into [0,360)
func WrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// DegreeDistance returns the shortest angular distance between two hues in degrees
func DegreeDistance(a, b float64) float64 {
	d := math.Abs(WrapDegrees(a) - WrapDegrees(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}
