package cartesian

import (
	"iter"
	"math"
)

// Cursor strides a length so that one mark falls exactly on its middle.
type Cursor struct {
	Length float64
	Stride float64
}

// NewCursor returns a cursor over length by stride.
func NewCursor(length, stride float64) Cursor {
	return Cursor{Length: length, Stride: stride}
}

// All yields the marks from the first one at or after zero up to Length
// included. The sequence can be ranged over any number of times. A stride
// that is not positive and finite, or a length that is not finite, yields
// nothing.
func (c Cursor) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if !(c.Stride > 0) || math.IsInf(c.Stride, 0) || math.IsNaN(c.Length) || math.IsInf(c.Length, 0) {
			return
		}
		for offset := math.Mod(c.Length/2, c.Stride); offset <= c.Length; offset += c.Stride {
			if !yield(offset) {
				return
			}
		}
	}
}

// Marks collects the marks of c.
func (c Cursor) Marks() []float64 {
	var marks []float64
	for m := range c.All() {
		marks = append(marks, m)
	}
	return marks
}
