package transform3d

import (
	"math"

	"github.com/gogpu/tryouts"
)

// Projection is a 3x3 projective transform of the plane, in row-vector
// layout:
//
//	[x' y' w'] = [x y 1] · | M11 M12 M13 |
//	                       | M21 M22 M23 |
//	                       | M31 M32 M33 |
//
// The projected point is (x'/w', y'/w').
type Projection struct {
	M11, M12, M13 float64
	M21, M22, M23 float64
	M31, M32, M33 float64
}

// Projection flattens m onto the z=0 plane, dropping the z row and column.
func (m Matrix4) Projection() Projection {
	return Projection{
		M11: m[0][0], M12: m[0][1], M13: m[0][3],
		M21: m[1][0], M22: m[1][1], M23: m[1][3],
		M31: m[3][0], M32: m[3][1], M33: m[3][3],
	}
}

// IsAffine reports whether p needs no homogeneous divide.
func (p Projection) IsAffine() bool {
	return p.M13 == 0 && p.M23 == 0 && p.M33 == 1
}

// Affine returns the affine part of p as a 2D matrix. It is exact when
// IsAffine reports true.
func (p Projection) Affine() tryouts.Matrix {
	return tryouts.Matrix{
		A: p.M11, B: p.M21, C: p.M31,
		D: p.M12, E: p.M22, F: p.M32,
	}
}

// TransformPoint projects pt. Points mapped to infinity come back with
// infinite or NaN components.
func (p Projection) TransformPoint(pt tryouts.Point) tryouts.Point {
	x := pt.X*p.M11 + pt.Y*p.M21 + p.M31
	y := pt.X*p.M12 + pt.Y*p.M22 + p.M32
	w := pt.X*p.M13 + pt.Y*p.M23 + p.M33
	if w == 1 {
		return tryouts.Pt(x, y)
	}
	return tryouts.Pt(x/w, y/w)
}

// TransformPath projects every point of path. Curves are mapped by their
// control points, which is exact only for affine projections.
func (p Projection) TransformPath(path *tryouts.Path) *tryouts.Path {
	if p.IsAffine() {
		return path.Transform(p.Affine())
	}
	return path.Map(p.TransformPoint)
}

// IsFinite reports whether every coefficient of p is finite.
func (p Projection) IsFinite() bool {
	for _, v := range [...]float64{p.M11, p.M12, p.M13, p.M21, p.M22, p.M23, p.M31, p.M32, p.M33} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}
