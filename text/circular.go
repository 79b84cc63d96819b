package text

import (
	"iter"
	"math"

	"github.com/gogpu/tryouts"
)

// TypographicBounds describes the ring occupied by a line of text bent into
// a circle.
type TypographicBounds struct {
	// LineSize is the size of the text laid out on a single line.
	LineSize tryouts.Size
}

// Descender returns the radius of the circle tangent to the bottom of the
// slices: the radius whose circumference is the line width.
func (b TypographicBounds) Descender() float64 {
	return b.LineSize.Width / (2 * math.Pi)
}

// Ascender returns the radius of the circle tangent to the top of the slices.
func (b TypographicBounds) Ascender() float64 {
	return b.Descender() + b.LineSize.Height
}

// Rect returns the square bounding the whole ring, anchored at the origin.
func (b TypographicBounds) Rect() tryouts.Rect {
	d := 2 * b.Ascender()
	return tryouts.R(0, 0, d, d)
}

// InnerRect returns the square bounding the inner circle of the ring.
func (b TypographicBounds) InnerRect() tryouts.Rect {
	return b.Rect().Inset(b.LineSize.Height, b.LineSize.Height)
}

// CircularLayout places run slices around a circle, starting at StartAngle
// and turning clockwise with y pointing down. The first slice is centered on
// the start angle.
type CircularLayout struct {
	slices     []RunSlice
	startAngle float64
	bounds     TypographicBounds
}

// NewCircularLayout returns a layout of slices starting at startAngle
// radians. The slices are read on every traversal and must not change
// between traversals that are expected to agree.
func NewCircularLayout(slices []RunSlice, startAngle float64) *CircularLayout {
	return &CircularLayout{
		slices:     slices,
		startAngle: startAngle,
		bounds:     TypographicBounds{LineSize: LineSize(slices)},
	}
}

// StartAngle returns the angle at which the text starts, in radians.
func (l *CircularLayout) StartAngle() float64 {
	return l.startAngle
}

// Bounds returns the typographic bounds of the layout.
func (l *CircularLayout) Bounds() TypographicBounds {
	return l.bounds
}

// Len returns the number of slices the layout yields.
func (l *CircularLayout) Len() int {
	return len(l.slices)
}

// All returns the positioned slices in input order. The sequence is lazy and
// restartable.
func (l *CircularLayout) All() iter.Seq[Slice] {
	return func(yield func(Slice) bool) {
		radius := l.bounds.Ascender()
		lineWidth := l.bounds.LineSize.Width

		var offset float64
		for i, s := range l.slices {
			b := s.TypographicBounds()
			width, height := b.Width(), b.Height()
			if i == 0 {
				offset -= width / 2
			}

			// Position along the hypothetical single line; a line without
			// width keeps every slice at the start angle.
			var progress float64
			if lineWidth != 0 {
				progress = (offset + width/2) / lineWidth
			}
			angle := l.startAngle + 2*math.Pi*progress

			transform := tryouts.Concat(
				tryouts.Translate(-b.MidX(), -b.MidY()),
				tryouts.Translate(0, -(radius-height/2)),
				tryouts.Rotate(angle),
				tryouts.Translate(radius, radius),
			)
			if !yield(Slice{Run: s, Transform: transform}) {
				return
			}
			offset += width
		}
	}
}

// Slices collects All into a slice.
func (l *CircularLayout) Slices() []Slice {
	out := make([]Slice, 0, len(l.slices))
	for s := range l.All() {
		out = append(out, s)
	}
	return out
}

// Guides returns the debug guides of the layout: the bounding square, the
// outer and inner circles of the ring, and the vertical and horizontal axes
// through the center.
func (l *CircularLayout) Guides() []*tryouts.Path {
	rect := l.bounds.Rect()
	return []*tryouts.Path{
		tryouts.RectPath(rect),
		tryouts.EllipsePath(rect),
		tryouts.EllipsePath(l.bounds.InnerRect()),
		tryouts.LineSegmentPath(tryouts.Pt(rect.MidX(), rect.MinY()), tryouts.Pt(rect.MidX(), rect.MaxY())),
		tryouts.LineSegmentPath(tryouts.Pt(rect.MinX(), rect.MidY()), tryouts.Pt(rect.MaxX(), rect.MidY())),
	}
}
