// Package math provides the small float32 vector and matrix types used by the
// collision core and the renderer.
package math

import "math"

// Vec2 is a 2D vector. In world space it holds horizontal X/Z components.
type Vec2 struct {
	X, Y float32
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product.
func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// Normalize returns a unit vector, or the zero vector for zero input.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Distance returns the distance to another point.
func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).Length()
}

// Angle returns the facing angle of a horizontal direction, atan2(x, z).
func (v Vec2) Angle() float32 {
	return float32(math.Atan2(float64(v.X), float64(v.Y)))
}

// Heading returns the unit horizontal direction for a facing angle.
// It is the inverse of Angle: Heading(v.Angle()) == v.Normalize().
func Heading(angle float32) Vec2 {
	s, c := math.Sincos(float64(angle))
	return Vec2{float32(s), float32(c)}
}
