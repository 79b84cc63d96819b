// Package blueprint lays out a debug drawing of a shape: a sheet, a grid of
// construction guides and the plan of the shape fitted inside the grid.
//
// Drawing is delegated to a Renderer passed explicitly to Draw.
package blueprint

import (
	"math"

	"github.com/gogpu/tryouts"
)

// Grid marks, as fractions of the grid side.
const (
	OuterMark = 0.000
	InnerMark = 0.285
)

// GridScale is the size of the grid relative to the largest square that fits
// the sheet.
const GridScale = 0.7

// Sheet is the background of a blueprint.
type Sheet struct {
	Bounds tryouts.Rect
}

// Guide is a construction line or circle.
type Guide struct {
	Path  *tryouts.Path
	Style tryouts.StrokeStyle
}

// Bounds returns the bounding rectangle of the guide path.
func (g Guide) Bounds() tryouts.Rect {
	return g.Path.Bounds()
}

// SlantedGuide returns the chord of rect through its center at angle
// radians.
func SlantedGuide(angle float64, rect tryouts.Rect, style tryouts.StrokeStyle) Guide {
	start, end := rect.SegmentAtAngle(angle)
	return Guide{Path: tryouts.LineSegmentPath(start, end), Style: style}
}

// HorizontalGuide returns the horizontal line of rect at distance from its
// top edge.
func HorizontalGuide(distance float64, rect tryouts.Rect, style tryouts.StrokeStyle) Guide {
	start, end := rect.SegmentAtDistance(distance, tryouts.MinYEdge)
	return Guide{Path: tryouts.LineSegmentPath(start, end), Style: style}
}

// VerticalGuide returns the vertical line of rect at distance from its left
// edge.
func VerticalGuide(distance float64, rect tryouts.Rect, style tryouts.StrokeStyle) Guide {
	start, end := rect.SegmentAtDistance(distance, tryouts.MinXEdge)
	return Guide{Path: tryouts.LineSegmentPath(start, end), Style: style}
}

// CircleGuide returns the circle of radius around center.
func CircleGuide(center tryouts.Point, radius float64, style tryouts.StrokeStyle) Guide {
	return Guide{Path: tryouts.CirclePath(center, radius), Style: style}
}

// Grid is the ordered set of construction guides.
type Grid []Guide

// GridTemplate returns the guides fitting gridBounds, with lines spanning
// bounds: the horizontal, vertical and diagonal chords of bounds, dashed
// lines at the outer and inner marks of the grid and their mirrors, and the
// circles of the grid.
func GridTemplate(gridBounds, bounds tryouts.Rect) Grid {
	solid := tryouts.SolidStroke(1)
	dashed := tryouts.DashedStroke(1, 4, 2)

	grid := Grid{
		SlantedGuide(math.Pi, bounds, solid),
		SlantedGuide(math.Pi/2, bounds, solid),
		SlantedGuide(math.Pi/4, bounds, solid),
		SlantedGuide(-math.Pi/4, bounds, solid),
	}

	marks := []float64{OuterMark, InnerMark, 1 - OuterMark, 1 - InnerMark}
	for _, mark := range marks {
		offsetX := gridBounds.MinX() + gridBounds.Height()*mark
		offsetY := gridBounds.MinY() + gridBounds.Width()*mark
		grid = append(grid,
			VerticalGuide(offsetX, bounds, dashed),
			HorizontalGuide(offsetY, bounds, dashed),
		)
	}

	center := gridBounds.Center()
	outer := gridBounds.Height() / 2
	innerInscribed := outer * (1 - 2*InnerMark)
	innerCircumscribed := innerInscribed * math.Sqrt2
	for _, radius := range []float64{outer, innerInscribed, innerCircumscribed} {
		if radius > 0 {
			grid = append(grid, CircleGuide(center, radius, solid))
		}
	}
	return grid
}

// Plan is the outline of the shape drawn on the blueprint.
type Plan struct {
	Path *tryouts.Path
	// Stroke is set for shapes drawn as a stroked outline; nil plans are
	// filled.
	Stroke *tryouts.StrokeStyle
}

// Bounds returns the bounding rectangle of the plan path.
func (p Plan) Bounds() tryouts.Rect {
	return p.Path.Bounds()
}

// IsEmpty reports whether the plan has nothing to draw.
func (p Plan) IsEmpty() bool {
	return p.Path == nil || len(p.Path.Elements()) == 0
}

// PlanOf returns the plan of shape fitted in bounds. A nil shape gives an
// empty plan.
func PlanOf(shape tryouts.Shape, bounds tryouts.Rect) Plan {
	if shape == nil {
		return Plan{Path: tryouts.NewPath()}
	}
	plan := Plan{Path: shape.Path(bounds)}
	if s, ok := shape.(tryouts.Stroker); ok {
		style := s.StrokeStyle(bounds)
		plan.Stroke = &style
	}
	return plan
}

// Layout is a complete blueprint.
type Layout struct {
	Sheet Sheet
	Grid  Grid
	Plan  Plan
}

// NewLayout lays out a blueprint of shape on bounds. The grid is the
// largest square fitting bounds, scaled by GridScale and centered.
func NewLayout(shape tryouts.Shape, bounds tryouts.Rect) Layout {
	outer := bounds.AspectRatio(1, bounds)
	gridBounds := outer.ScaledBy(GridScale)

	return Layout{
		Sheet: Sheet{Bounds: bounds},
		Grid:  GridTemplate(gridBounds, bounds),
		Plan:  PlanOf(shape, gridBounds),
	}
}
