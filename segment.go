package tryouts

import (
	"math"
)

// Edge names one side of a rectangle.
type Edge int

const (
	// MinXEdge is the side at the smallest x coordinate.
	MinXEdge Edge = iota
	// MinYEdge is the side at the smallest y coordinate.
	MinYEdge
	// MaxXEdge is the side at the largest x coordinate.
	MaxXEdge
	// MaxYEdge is the side at the largest y coordinate.
	MaxYEdge
)

// String implements fmt.Stringer.
func (e Edge) String() string {
	switch e {
	case MinXEdge:
		return "MinX"
	case MinYEdge:
		return "MinY"
	case MaxXEdge:
		return "MaxX"
	case MaxYEdge:
		return "MaxY"
	default:
		return "Unknown"
	}
}

// Divided splits r into a slice of the given thickness measured from edge
// and the remainder. The distance is clamped to [0, extent of r along the
// axis perpendicular to edge].
func (r Rect) Divided(distance float64, edge Edge) (slice, remainder Rect) {
	s := r.Standardized()
	x, y, w, h := s.Origin.X, s.Origin.Y, s.Size.Width, s.Size.Height

	extent := w
	if edge == MinYEdge || edge == MaxYEdge {
		extent = h
	}
	d := math.Min(math.Max(distance, 0), extent)

	switch edge {
	case MinXEdge:
		return R(x, y, d, h), R(x+d, y, w-d, h)
	case MaxXEdge:
		return R(x+w-d, y, d, h), R(x, y, w-d, h)
	case MinYEdge:
		return R(x, y, w, d), R(x, y+d, w, h-d)
	case MaxYEdge:
		return R(x, y+h-d, w, d), R(x, y, w, h-d)
	default:
		return ZeroRect, s
	}
}

// SegmentAtDistance returns the end points of the line that cuts r at the
// given distance from edge.
//
// Vertical cuts (MinXEdge, MaxXEdge) run from minY to maxY; horizontal cuts
// (MinYEdge, MaxYEdge) run from minX to maxX.
func (r Rect) SegmentAtDistance(distance float64, edge Edge) (start, end Point) {
	slice, _ := r.Divided(distance, edge)

	switch edge {
	case MinXEdge:
		start = Pt(slice.MaxX(), slice.MinY())
		end = Pt(slice.MaxX(), slice.MaxY())
	case MinYEdge:
		start = Pt(slice.MinX(), slice.MaxY())
		end = Pt(slice.MaxX(), slice.MaxY())
	case MaxXEdge:
		start = Pt(slice.MinX(), slice.MinY())
		end = Pt(slice.MinX(), slice.MaxY())
	case MaxYEdge:
		start = Pt(slice.MinX(), slice.MinY())
		end = Pt(slice.MaxX(), slice.MinY())
	}

	return start.FlushingNaNs(), end.FlushingNaNs()
}

// SegmentAtAngle returns the points where the line through the center of r,
// at angle radians from the positive x-axis, crosses the boundary of r.
//
// Empty and infinite rectangles, NaN and infinite angles yield two zero
// points. Angles where the tangent is zero or undefined are answered with
// the horizontal or vertical diameter without evaluating the tangent.
func (r Rect) SegmentAtAngle(angle float64) (start, end Point) {
	switch {
	case r.IsEmpty(), r.IsInfinite():
		return Point{}, Point{}
	case math.IsNaN(angle), math.IsInf(angle, 0):
		return Point{}, Point{}
	}

	horizontal := func() (Point, Point) {
		return Pt(r.MinX(), r.MidY()), Pt(r.MaxX(), r.MidY())
	}
	vertical := func() (Point, Point) {
		return Pt(r.MidX(), r.MinY()), Pt(r.MidX(), r.MaxY())
	}

	switch {
	case angle == 0:
		return horizontal()
	case IsOddMultiple(angle, math.Pi):
		return horizontal()
	case IsEvenMultiple(angle, math.Pi/2):
		return horizontal()
	case IsOddMultiple(angle, math.Pi/2):
		return vertical()
	}

	// y - midY = m(x - midX)
	m := math.Tan(angle)
	minX, midX, maxX := r.MinX(), r.MidX(), r.MaxX()
	minY, midY, maxY := r.MinY(), r.MidY(), r.MaxY()

	hits := make([]Point, 0, 4)
	hasX := func(x float64) bool {
		for _, p := range hits {
			if p.X == x {
				return true
			}
		}
		return false
	}
	hasY := func(y float64) bool {
		for _, p := range hits {
			if p.Y == y {
				return true
			}
		}
		return false
	}

	for _, x := range [2]float64{minX, maxX} {
		y := m*(x-midX) + midY
		if y >= minY && y <= maxY && !hasY(y) {
			hits = append(hits, Pt(x, y))
		}
	}
	for _, y := range [2]float64{minY, maxY} {
		x := (y-midY)/m + midX
		if x >= minX && x <= maxX && !hasX(x) {
			hits = append(hits, Pt(x, y))
		}
	}

	// Slopes too close to an axis lose one of the hits to rounding.
	nearest := horizontal
	if math.Abs(m) >= 1 {
		nearest = vertical
	}
	return resolveHits(hits, nearest)
}

// resolveHits turns the boundary intersections into a segment. Exactly two
// hits is the expected outcome; anything else is logged and answered with
// the longest chord among the hits, or the nearest diameter when fewer than
// two hits were found.
func resolveHits(hits []Point, nearest func() (Point, Point)) (start, end Point) {
	if len(hits) == 2 {
		return hits[0].FlushingNaNs(), hits[1].FlushingNaNs()
	}

	Logger().Warn("tryouts: unexpected segment intersection count",
		"count", len(hits), "hits", hits)

	if len(hits) < 2 {
		return nearest()
	}

	best := -1.0
	for i := range hits {
		for j := i + 1; j < len(hits); j++ {
			if d := hits[i].Distance(hits[j]); d > best {
				best = d
				start, end = hits[i], hits[j]
			}
		}
	}
	return start.FlushingNaNs(), end.FlushingNaNs()
}
