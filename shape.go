package tryouts

// Shape computes an outline that fits a bounding rectangle.
type Shape interface {
	Path(bounds Rect) *Path
}

// ShapeFunc adapts a function to the Shape interface.
type ShapeFunc func(bounds Rect) *Path

// Path implements Shape.
func (f ShapeFunc) Path(bounds Rect) *Path {
	return f(bounds)
}

// Stroker is implemented by shapes whose outline is meant to be stroked
// rather than filled.
type Stroker interface {
	StrokeStyle(bounds Rect) StrokeStyle
}
