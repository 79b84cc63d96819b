package tryouts

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultTolerance is the relative tolerance used by ApproxEqual when the
// caller passes a non-positive tolerance: the square root of the machine epsilon.
var DefaultTolerance = math.Sqrt(0x1p-52)

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// FlushingNaNs returns a copy of p with every NaN component replaced by zero.
// Infinite components are kept as they are.
func (p Point) FlushingNaNs() Point {
	x, y := p.X, p.Y
	if math.IsNaN(x) {
		x = 0
	}
	if math.IsNaN(y) {
		y = 0
	}
	return Point{X: x, Y: y}
}

// IsNaN reports whether any component of p is NaN.
func (p Point) IsNaN() bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y)
}

// ApproxEqual reports whether p and q are equal within the relative
// tolerance tol on each axis. Values close to zero are compared with tol as
// an absolute tolerance. A non-positive tol selects DefaultTolerance.
func (p Point) ApproxEqual(q Point, tol float64) bool {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	return scalar.EqualWithinAbsOrRel(p.X, q.X, tol, tol) &&
		scalar.EqualWithinAbsOrRel(p.Y, q.Y, tol, tol)
}

// Size is a width and height pair.
type Size struct {
	Width, Height float64
}

// Sz is a convenience function to create a Size.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

// IsNaN reports whether either dimension is NaN.
func (s Size) IsNaN() bool {
	return math.IsNaN(s.Width) || math.IsNaN(s.Height)
}

// Max returns the larger of the two dimensions.
func (s Size) Max() float64 {
	return math.Max(s.Width, s.Height)
}
