package text

import (
	"math"

	"github.com/gogpu/tryouts"
)

// RunSlice is a measured, indivisible unit of laid-out text.
type RunSlice interface {
	// TypographicBounds returns the slice bounds in line coordinates: the
	// baseline is y=0 and y grows downward.
	TypographicBounds() tryouts.Rect
}

// Slice pairs a run slice with the transform placing it in a layout.
type Slice struct {
	Run       RunSlice
	Transform tryouts.Matrix
}

// LineSize returns the size of slices laid out on a single line: the sum of
// the widths, rounded to the nearest integer, and the tallest height.
func LineSize(slices []RunSlice) tryouts.Size {
	var width, height float64
	for _, s := range slices {
		b := s.TypographicBounds()
		width += b.Width()
		height = max(height, b.Height())
	}
	return tryouts.Sz(math.Round(width), height)
}
