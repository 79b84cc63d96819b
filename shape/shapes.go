package shape

import (
	"math"

	"github.com/gogpu/tryouts"
)

// Rectangle fills its bounds.
type Rectangle struct{}

// Path implements tryouts.Shape.
func (Rectangle) Path(bounds tryouts.Rect) *tryouts.Path {
	return tryouts.RectPath(bounds)
}

// Ellipse is the ellipse inscribed in its bounds.
type Ellipse struct{}

// Path implements tryouts.Shape.
func (Ellipse) Path(bounds tryouts.Rect) *tryouts.Path {
	return tryouts.EllipsePath(bounds)
}

// Circle is the largest circle centered in its bounds.
type Circle struct{}

// Path implements tryouts.Shape.
func (Circle) Path(bounds tryouts.Rect) *tryouts.Path {
	r := math.Min(bounds.Width(), bounds.Height()) / 2
	return tryouts.CirclePath(bounds.Center(), r)
}

// Capsule is a rounded rectangle whose shorter sides are half circles.
type Capsule struct{}

// Path implements tryouts.Shape.
func (Capsule) Path(bounds tryouts.Rect) *tryouts.Path {
	return tryouts.RoundedRectPath(bounds, math.Min(bounds.Width(), bounds.Height())/2)
}

// RoundedRectangle is a rectangle with rounded corners. The radius is
// clamped to half the shorter side.
type RoundedRectangle struct {
	CornerRadius float64
}

// Path implements tryouts.Shape.
func (s RoundedRectangle) Path(bounds tryouts.Rect) *tryouts.Path {
	return tryouts.RoundedRectPath(bounds, math.Max(s.CornerRadius, 0))
}

// Named returns the shape registered under name, for configuration files.
// Known names are rectangle, ellipse, circle, capsule, rounded-rectangle
// and app-figure.
func Named(name string) (tryouts.Shape, bool) {
	switch name {
	case "rectangle":
		return Rectangle{}, true
	case "ellipse":
		return Ellipse{}, true
	case "circle":
		return Circle{}, true
	case "capsule":
		return Capsule{}, true
	case "rounded-rectangle":
		return RoundedRectangle{CornerRadius: 4}, true
	case "app-figure":
		return AppFigure{}, true
	default:
		return nil, false
	}
}
