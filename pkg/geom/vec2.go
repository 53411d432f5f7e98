// pkg/geom/vec2.go
package geom

import "math"

// Epsilon is the length below which a vector is treated as zero.
const Epsilon = 1e-9

// Vec2 is a 2D vector in world units (y up).
type Vec2 struct {
	X, Y float64
}

// Zero is the zero vector.
var Zero = Vec2{}

func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// FromAngle returns the unit vector pointing at angle radians (counter-clockwise from +X).
func FromAngle(angle float64) Vec2 {
	return Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the 3D cross product.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Len()
}

// IsZero reports whether the vector is too short to carry a direction.
func (v Vec2) IsZero() bool {
	return v.LenSq() < Epsilon*Epsilon
}

// Normalize returns the unit vector, or Zero for a degenerate input.
func (v Vec2) Normalize() Vec2 {
	return v.NormalizeOr(Zero)
}

// NormalizeOr returns the unit vector, or fallback for a degenerate input.
func (v Vec2) NormalizeOr(fallback Vec2) Vec2 {
	l := v.Len()
	if l < Epsilon {
		return fallback
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Rotate rotates the vector counter-clockwise by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	s, c := math.Sincos(angle)
	return Vec2{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c}
}

// Perp returns the vector rotated by +90 degrees.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Angle returns the heading of the vector in (-pi, pi].
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{X: v.X + (o.X-v.X)*t, Y: v.Y + (o.Y-v.Y)*t}
}

// MaxAbs returns the largest absolute component.
func (v Vec2) MaxAbs() float64 {
	return math.Max(math.Abs(v.X), math.Abs(v.Y))
}

// AngleBetween returns the signed angle from a to b in (-pi, pi].
// Degenerate inputs yield 0.
func AngleBetween(a, b Vec2) float64 {
	if a.IsZero() || b.IsZero() {
		return 0
	}
	return math.Atan2(a.Cross(b), a.Dot(b))
}

// Reflect mirrors d about the line with unit normal n: d - 2(d.n)n.
func Reflect(d, n Vec2) Vec2 {
	return d.Sub(n.Scale(2 * d.Dot(n)))
}
