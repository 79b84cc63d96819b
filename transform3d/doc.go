// Package transform3d builds 4x4 homogeneous matrices for 3D-style affine and
// projective effects on flat content.
//
// Matrices are column-major and act on column vectors: m[col][row] holds the
// coefficient for row row of column col, translation lives in column 3 and
// the perspective divisor lives in row 3. a.Mul(b) applies b first.
//
// An effect composes the scale, rotation and translation of a [Transform]
// about an anchor expressed as a fraction of the content size:
//
//	anchor · [perspective ·] translation · rotation · scale · anchor⁻¹
//
// With the identity transform and no perspective the result is the identity
// matrix for every anchor and size.
//
// # Usage
//
//	effect := transform3d.PerspectiveRotation(math.Pi/6, transform3d.Vec3{Y: 1},
//		tryouts.Pt(0.5, 0.5), 0, 0.25)
//	m := effect.MatrixValue(tryouts.Sz(200, 200))
//	proj := m.Projection()
//	p := proj.TransformPoint(tryouts.Pt(0, 0))
package transform3d
