package text

import (
	"math"

	"github.com/gogpu/tryouts"
)

// DefaultStackSpacing is the gap between stacked copies when none is given.
const DefaultStackSpacing = 8.0

const stackTrimUnit = 2.0

// StackedCopy is one copy of a line in a stacked layout.
type StackedCopy struct {
	// Offset is the vertical step from the previous copy.
	Offset float64
	// Y is the accumulated vertical offset of the copy from the line origin.
	Y float64
	// Trim is the height cut from the top of the copy.
	Trim float64
}

// StackedLayout returns the copies of a line of the given size stacked
// below each other. Each copy loses two more units from its top until only
// the lower part of the glyphs would remain. The first copy is untrimmed and
// sits at the line origin.
func StackedLayout(lineSize tryouts.Size, spacing float64) []StackedCopy {
	lineHeight := math.Round(lineSize.Height) * 0.625

	var copies []StackedCopy
	var offset, y, trim float64
	for trim < lineHeight-stackTrimUnit*2 {
		if trim > 0 {
			offset = lineHeight - trim + spacing
		}
		y += offset
		copies = append(copies, StackedCopy{Offset: offset, Y: y, Trim: trim})
		trim += stackTrimUnit
	}
	return copies
}

// StackedSize returns the size needed to draw every copy of a stacked line.
func StackedSize(lineSize tryouts.Size, spacing float64) tryouts.Size {
	size := lineSize
	for _, c := range StackedLayout(lineSize, spacing) {
		size.Height += c.Offset
	}
	return size
}
