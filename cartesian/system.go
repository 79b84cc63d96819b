package cartesian

import (
	"image/color"
	"iter"

	"github.com/gogpu/tryouts"
	"github.com/gogpu/tryouts/shape"
)

// GridOpacity is the opacity grid lines are drawn with.
const GridOpacity = 0.24

// System is a Cartesian grid of unit cells covering Bounds.
type System struct {
	UnitSize tryouts.Size
	Bounds   tryouts.Rect
}

// New returns a system of unitSize cells covering bounds.
func New(unitSize tryouts.Size, bounds tryouts.Rect) System {
	return System{UnitSize: unitSize, Bounds: bounds}
}

// Center returns the middle of the system relative to its own origin.
func (s System) Center() tryouts.Point {
	return tryouts.Pt(s.Bounds.Width()/2, s.Bounds.Height()/2)
}

// HorizontalCursor marks the x positions of the vertical grid lines.
func (s System) HorizontalCursor() Cursor {
	return NewCursor(s.Bounds.Width(), s.UnitSize.Width)
}

// VerticalCursor marks the y positions of the horizontal grid lines.
func (s System) VerticalCursor() Cursor {
	return NewCursor(s.Bounds.Height(), s.UnitSize.Height)
}

// Line is a straight segment.
type Line struct {
	Start, End tryouts.Point
}

// Path returns the segment as a path.
func (l Line) Path() *tryouts.Path {
	return tryouts.LineSegmentPath(l.Start, l.End)
}

// verticalLine is the full-height line at x from the leading edge.
func (s System) verticalLine(x float64) Line {
	o := s.Bounds.Standardized().Origin
	return Line{
		Start: tryouts.Pt(o.X+x, o.Y),
		End:   tryouts.Pt(o.X+x, o.Y+s.Bounds.Height()),
	}
}

// horizontalLine is the full-width line at y from the top edge.
func (s System) horizontalLine(y float64) Line {
	o := s.Bounds.Standardized().Origin
	return Line{
		Start: tryouts.Pt(o.X, o.Y+y),
		End:   tryouts.Pt(o.X+s.Bounds.Width(), o.Y+y),
	}
}

// GridLines yields the vertical grid lines from left to right, then the
// horizontal ones from top to bottom.
func (s System) GridLines() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for x := range s.HorizontalCursor().All() {
			if !yield(s.verticalLine(x)) {
				return
			}
		}
		for y := range s.VerticalCursor().All() {
			if !yield(s.horizontalLine(y)) {
				return
			}
		}
	}
}

// Axes returns the y axis and the x axis through the center.
func (s System) Axes() (y, x Line) {
	c := s.Center()
	return s.verticalLine(c.X), s.horizontalLine(c.Y)
}

// RotationAbout returns the matrix rotating by angle radians around point.
func RotationAbout(angle float64, point tryouts.Point) tryouts.Matrix {
	return tryouts.Concat(
		tryouts.Translate(-point.X, -point.Y),
		tryouts.Rotate(angle),
		tryouts.Translate(point.X, point.Y),
	)
}

// RotationDebug holds the clues drawn to debug a rotation of a path.
type RotationDebug struct {
	// Anchor marks the rotation point.
	Anchor *tryouts.Path
	// Initial is the path before rotation, drawn dashed.
	Initial *tryouts.Path
	// Orbit is the circle the path origin travels on, drawn at GridOpacity.
	Orbit *tryouts.Path
	// Matrix rotates Initial into Current.
	Matrix tryouts.Matrix
	// Current is the rotated path.
	Current *tryouts.Path
}

// AnchorRadius is the radius of the circle marking a rotation point.
const AnchorRadius = 2

// InitialStroke is the stroke of the unrotated path.
var InitialStroke = tryouts.DashedStroke(1, 4, 2)

// DebugRotation computes the clues of rotating path by angle around point.
func DebugRotation(angle float64, point tryouts.Point, path *tryouts.Path) RotationDebug {
	origin := path.Bounds().Origin
	m := RotationAbout(angle, point)
	return RotationDebug{
		Anchor:  tryouts.CirclePath(point, AnchorRadius),
		Initial: path,
		Orbit:   tryouts.CirclePath(point, point.Distance(origin)),
		Matrix:  m,
		Current: path.Transform(m),
	}
}

// Entry is a sample path rotated about a point, in a given color.
type Entry struct {
	Path          *tryouts.Path
	RotationPoint tryouts.Point
	Color         color.RGBA
}

var (
	blue  = color.RGBA{R: 0x00, G: 0x7a, B: 0xff, A: 0xff}
	red   = color.RGBA{R: 0xff, G: 0x3b, B: 0x30, A: 0xff}
	green = color.RGBA{R: 0x34, G: 0xc7, B: 0x59, A: 0xff}
)

// DebugRotationEntries returns sample entries laid out in unit cells around
// the center of the bounds: a blue rounded rectangle rotating around the
// center, a red capsule and a green circle rotating around nearby points.
func (s System) DebugRotationEntries() []Entry {
	c := s.Bounds.Center()
	u := s.UnitSize

	square := tryouts.R(c.X+u.Width, c.Y+u.Height*2, u.Height*2, u.Height*2)
	capsule := tryouts.R(c.X+u.Width*3, c.Y-u.Height*9, u.Width, u.Height*3)
	circle := tryouts.R(c.X-u.Width*6, c.Y-u.Height*10, u.Width*2, u.Height*2)

	return []Entry{
		{
			Path:          shape.RoundedRectangle{CornerRadius: 4}.Path(square),
			RotationPoint: c,
			Color:         blue,
		},
		{
			Path:          shape.Capsule{}.Path(capsule),
			RotationPoint: capsule.Center().Add(tryouts.Pt(0, u.Height)),
			Color:         red,
		},
		{
			Path:          shape.Circle{}.Path(circle),
			RotationPoint: circle.Center().Add(tryouts.Pt(u.Width, u.Height)),
			Color:         green,
		},
	}
}
