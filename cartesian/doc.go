// Package cartesian provides a 2D Cartesian grid used to debug transforms:
// grid lines marked at unit intervals, the two axes and the construction
// clues of a rotation about an arbitrary point.
//
// The grid is computed here; drawing it is left to a renderer.
package cartesian
