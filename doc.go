// Package tryouts is a small computational-geometry kernel for 2D drawing
// experiments.
//
// # Overview
//
// The root package holds the value types shared by every tryout: Point,
// Size, Rect, the 2D affine Matrix and Path. On top of them it implements
// the rectangle dividing segments used to draw guides:
//
//	r := tryouts.R(-10, -10, 20, 20)
//	start, end := r.SegmentAtAngle(math.Pi / 3)   // chord through the center
//	start, end = r.SegmentAtDistance(1, tryouts.MaxXEdge)
//
// Sub-packages build on these types:
//   - transform3d: 4x4 affine and projective matrices for 3D-style effects
//   - text: circular text layout over measured run slices, shaping with go-text
//   - shape: path data parsing and ready-made shapes
//   - blueprint: the blueprint debug layout and its pluggable Renderer
//   - cartesian: a Cartesian grid for debugging 2D transforms
//   - render/canvas: output to SVG, PNG and PDF through tdewolff/canvas
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, measured from the positive x-axis
//
// All geometry functions are pure and safe for concurrent use.
// Degenerate input (NaN angles, empty or infinite rectangles) is answered
// with documented neutral values instead of errors.
package tryouts
