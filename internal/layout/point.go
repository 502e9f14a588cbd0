package layout

import "github.com/chewxy/math32"

// Vec2 is a 2D point or extent in pixels.
type Vec2 struct {
	X, Y float32
}

// V2 is shorthand for Vec2{x, y}.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns a new Vec2 offset by other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns a new Vec2 with other subtracted.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale multiplies both components by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Mul multiplies component-wise.
func (v Vec2) Mul(other Vec2) Vec2 {
	return Vec2{X: v.X * other.X, Y: v.Y * other.Y}
}

// Get returns the component on axis a.
func (v Vec2) Get(a Axis) float32 {
	a.mustBeValid()
	if a == Horizontal {
		return v.X
	}
	return v.Y
}

// Set stores value in the component on axis a.
func (v *Vec2) Set(a Axis, value float32) {
	a.mustBeValid()
	if a == Horizontal {
		v.X = value
	} else {
		v.Y = value
	}
}

// With returns a copy of v with the component on axis a replaced.
func (v Vec2) With(a Axis, value float32) Vec2 {
	v.Set(a, value)
	return v
}

// LengthSq returns the squared length.
func (v Vec2) LengthSq() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Max returns the component-wise maximum.
func (v Vec2) Max(other Vec2) Vec2 {
	return Vec2{X: math32.Max(v.X, other.X), Y: math32.Max(v.Y, other.Y)}
}

// Clamp constrains each component of v to [lo, hi]. When hi < lo the
// lower bound wins.
func (v Vec2) Clamp(lo, hi Vec2) Vec2 {
	return Vec2{X: Clamp(v.X, lo.X, hi.X), Y: Clamp(v.Y, lo.Y, hi.Y)}
}

// Clamp restricts v to [lo, hi]. If lo > hi, lo wins.
func Clamp(v, lo, hi float32) float32 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Finite replaces NaN and infinities with 0.
func Finite(v float32) float32 {
	if math32.IsNaN(v) || math32.IsInf(v, 0) {
		return 0
	}
	return v
}
