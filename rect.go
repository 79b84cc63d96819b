package tryouts

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle described by its origin and size.
//
// A Rect may carry a negative size; every accessor works on the
// standardized form, where width and height are non-negative.
type Rect struct {
	Origin Point
	Size   Size
}

// Infinite is the unbounded rectangle. It is distinct from every finite
// rectangle and geometric helpers return it unchanged or short-circuit on it.
var Infinite = Rect{
	Origin: Point{X: -math.MaxFloat64 / 2, Y: -math.MaxFloat64 / 2},
	Size:   Size{Width: math.MaxFloat64, Height: math.MaxFloat64},
}

// ZeroRect is the rectangle at the origin with zero size.
var ZeroRect = Rect{}

// R is a convenience function to create a Rect.
func R(x, y, w, h float64) Rect {
	return Rect{Origin: Pt(x, y), Size: Sz(w, h)}
}

// Standardized returns r with a non-negative width and height.
func (r Rect) Standardized() Rect {
	if r.Size.Width < 0 {
		r.Origin.X += r.Size.Width
		r.Size.Width = -r.Size.Width
	}
	if r.Size.Height < 0 {
		r.Origin.Y += r.Size.Height
		r.Size.Height = -r.Size.Height
	}
	return r
}

// Width returns the standardized width.
func (r Rect) Width() float64 { return math.Abs(r.Size.Width) }

// Height returns the standardized height.
func (r Rect) Height() float64 { return math.Abs(r.Size.Height) }

// MinX returns the smallest x coordinate.
func (r Rect) MinX() float64 { return r.Standardized().Origin.X }

// MidX returns the x coordinate of the center.
func (r Rect) MidX() float64 { return r.MinX() + r.Width()/2 }

// MaxX returns the largest x coordinate.
func (r Rect) MaxX() float64 { return r.MinX() + r.Width() }

// MinY returns the smallest y coordinate.
func (r Rect) MinY() float64 { return r.Standardized().Origin.Y }

// MidY returns the y coordinate of the center.
func (r Rect) MidY() float64 { return r.MinY() + r.Height()/2 }

// MaxY returns the largest y coordinate.
func (r Rect) MaxY() float64 { return r.MinY() + r.Height() }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Pt(r.MidX(), r.MidY())
}

// IsEmpty reports whether the rectangle has a zero width or height.
func (r Rect) IsEmpty() bool {
	return r.Size.Width == 0 || r.Size.Height == 0
}

// IsInfinite reports whether r is the Infinite sentinel.
func (r Rect) IsInfinite() bool {
	return r == Infinite
}

// Contains reports whether p lies inside r or on its boundary.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX() && p.X <= r.MaxX() && p.Y >= r.MinY() && p.Y <= r.MaxY()
}

// Offset returns r moved by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	s := r.Standardized()
	s.Origin.X += dx
	s.Origin.Y += dy
	return s
}

// Inset returns r shrunk by dx on the left and right and by dy on the top
// and bottom. Negative values grow the rectangle. An inset that would
// produce a negative size collapses to ZeroRect.
func (r Rect) Inset(dx, dy float64) Rect {
	s := r.Standardized()
	w := s.Size.Width - 2*dx
	h := s.Size.Height - 2*dy
	if w < 0 || h < 0 {
		return ZeroRect
	}
	return R(s.Origin.X+dx, s.Origin.Y+dy, w, h)
}

// CenteredAt returns a rectangle of the same size as r whose center is p.
// The Infinite rectangle is returned unchanged.
func (r Rect) CenteredAt(p Point) Rect {
	if r.IsInfinite() {
		return r
	}
	return r.Offset(p.X-r.MidX(), p.Y-r.MidY())
}

// ScaledBy returns r scaled around its center by s.
// A negative scale and the Infinite rectangle leave r unchanged.
func (r Rect) ScaledBy(s float64) Rect {
	if r.IsInfinite() || s < 0 {
		return r
	}
	w := r.Width() * s
	h := r.Height() * s
	return r.Inset((r.Width()-w)/2, (r.Height()-h)/2)
}

// AspectRatio returns the largest rectangle with the given width/height
// ratio that fits inside bounds, centered in it.
func (r Rect) AspectRatio(ratio float64, bounds Rect) Rect {
	return AspectFitSize(Sz(ratio, 1), bounds)
}

// AspectRatioInside is AspectRatio using r's own width/height ratio.
func (r Rect) AspectRatioInside(bounds Rect) Rect {
	return r.AspectRatio(r.Width()/r.Height(), bounds)
}

// AspectFitSize scales size uniformly so that it fits inside bounds and
// returns it centered in bounds.
func AspectFitSize(size Size, bounds Rect) Rect {
	target := size.Width / size.Height
	bounding := bounds.Width() / bounds.Height()

	var scale float64
	if target > bounding {
		scale = bounds.Width() / size.Width
	} else {
		scale = bounds.Height() / size.Height
	}

	w := size.Width * scale
	h := size.Height * scale
	x := bounds.MinX() + (bounds.Width()-w)/2
	y := bounds.MinY() + (bounds.Height()-h)/2
	return R(x, y, w, h)
}

// String implements fmt.Stringer.
func (r Rect) String() string {
	if r.IsInfinite() {
		return "Rect(infinite)"
	}
	return fmt.Sprintf("Rect(%g, %g, %g, %g)", r.Origin.X, r.Origin.Y, r.Size.Width, r.Size.Height)
}
