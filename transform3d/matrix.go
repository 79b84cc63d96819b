package transform3d

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// ErrSingular is returned when a matrix has no inverse.
var ErrSingular = errors.New("transform3d: matrix is singular")

// Matrix4 is a column-major 4x4 matrix: m[col][row].
type Matrix4 [4][4]float64

// Identity4 returns the 4x4 identity matrix.
func Identity4() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Rotation returns the rotation matrix of q. The quaternion is normalized
// first, so any non-zero quaternion of the same orientation gives the same
// matrix.
func Rotation(q Quaternion) Matrix4 {
	q = q.Normalized()
	x, y, z, w := q.X, q.Y, q.Z, q.W
	return Matrix4{
		{1 - 2*(y*y+z*z), 2 * (x*y + w*z), 2 * (x*z - w*y), 0},
		{2 * (x*y - w*z), 1 - 2*(x*x+z*z), 2 * (y*z + w*x), 0},
		{2 * (x*z + w*y), 2 * (y*z - w*x), 1 - 2*(x*x+y*y), 0},
		{0, 0, 0, 1},
	}
}

// ScaleMatrix returns the matrix scaling each axis by the matching
// component of v.
func ScaleMatrix(v Vec3) Matrix4 {
	return Matrix4{
		{v.X, 0, 0, 0},
		{0, v.Y, 0, 0},
		{0, 0, v.Z, 0},
		{0, 0, 0, 1},
	}
}

// Translation returns the matrix translating by v.
func Translation(v Vec3) Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{v.X, v.Y, v.Z, 1},
	}
}

// Perspective returns the matrix whose bottom row carries the perspective
// divisor v, so w' = v.X*x + v.Y*y + v.Z*z + w.
func Perspective(v Vec3) Matrix4 {
	return Matrix4{
		{1, 0, 0, v.X},
		{0, 1, 0, v.Y},
		{0, 0, 1, v.Z},
		{0, 0, 0, 1},
	}
}

// Mul returns m·n. Applied to a vector, n acts first.
func (m Matrix4) Mul(n Matrix4) Matrix4 {
	var out Matrix4
	for c := range 4 {
		for r := range 4 {
			var sum float64
			for k := range 4 {
				sum += m[k][r] * n[c][k]
			}
			out[c][r] = sum
		}
	}
	return out
}

// Transform applies m to the homogeneous vector (x, y, z, w).
func (m Matrix4) Transform(v [4]float64) [4]float64 {
	var out [4]float64
	for r := range 4 {
		for c := range 4 {
			out[r] += m[c][r] * v[c]
		}
	}
	return out
}

// TransformPoint applies m to the point v and performs the homogeneous
// divide.
func (m Matrix4) TransformPoint(v Vec3) Vec3 {
	h := m.Transform([4]float64{v.X, v.Y, v.Z, 1})
	return Vec3{h[0] / h[3], h[1] / h[3], h[2] / h[3]}
}

// Transpose returns the transpose of m.
func (m Matrix4) Transpose() Matrix4 {
	var out Matrix4
	for c := range 4 {
		for r := range 4 {
			out[r][c] = m[c][r]
		}
	}
	return out
}

// Inverse returns the inverse of m.
func (m Matrix4) Inverse() (Matrix4, error) {
	rows := m.Transpose()
	dense := mat.NewDense(4, 4, slices.Concat(rows[0][:], rows[1][:], rows[2][:], rows[3][:]))

	var inv mat.Dense
	if err := inv.Inverse(dense); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			return Matrix4{}, fmt.Errorf("%w: %v", ErrSingular, err)
		}
	}

	var out Matrix4
	for r := range 4 {
		mat.Row(out[r][:], r, &inv)
	}
	return out.Transpose(), nil
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix4) IsIdentity() bool {
	return m == Identity4()
}

// ApproxEqual reports whether every coefficient of m and n differs by at most
// tol.
func (m Matrix4) ApproxEqual(n Matrix4, tol float64) bool {
	for c := range 4 {
		for r := range 4 {
			if math.Abs(m[c][r]-n[c][r]) > tol {
				return false
			}
		}
	}
	return true
}
