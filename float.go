package tryouts

import "math"

// IsEvenMultiple reports whether v is an even multiple of of, using the
// IEEE 754 remainder of v divided by 2*of.
func IsEvenMultiple(v, of float64) bool {
	return math.Remainder(v, 2*of) == 0
}

// IsOddMultiple reports whether v is an odd multiple of of, using the
// IEEE 754 remainder of v divided by 2*of.
func IsOddMultiple(v, of float64) bool {
	return math.Abs(math.Remainder(v, 2*of)) == of
}
