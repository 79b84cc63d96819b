package transform3d

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Quaternion is a rotation quaternion with vector part (X, Y, Z) and scalar
// part W.
type Quaternion struct {
	X, Y, Z, W float64
}

// IdentityQuaternion is the rotation that leaves every vector unchanged.
var IdentityQuaternion = Quaternion{W: 1}

// FromAxisAngle returns the unit quaternion rotating by angle radians about
// axis. The axis is normalized; a zero axis yields the identity.
func FromAxisAngle(angle float64, axis Vec3) Quaternion {
	axis = axis.Normalized()
	if axis == (Vec3{}) {
		return IdentityQuaternion
	}
	s, c := math.Sincos(angle / 2)
	v := axis.Mul(s)
	return Quaternion{X: v.X, Y: v.Y, Z: v.Z, W: c}
}

func fromNumber(n quat.Number) Quaternion {
	return Quaternion{X: n.Imag, Y: n.Jmag, Z: n.Kmag, W: n.Real}
}

func (q Quaternion) number() quat.Number {
	return quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}
}

// Mul returns the Hamilton product q·r, the rotation applying r first.
func (q Quaternion) Mul(r Quaternion) Quaternion {
	return fromNumber(quat.Mul(q.number(), r.number()))
}

// Length returns the norm of q.
func (q Quaternion) Length() float64 {
	return quat.Abs(q.number())
}

// Normalized returns q scaled to unit length. The zero quaternion has no
// orientation and normalizes to the identity.
func (q Quaternion) Normalized() Quaternion {
	l := q.Length()
	if l == 0 || math.IsNaN(l) {
		return IdentityQuaternion
	}
	return fromNumber(quat.Scale(1/l, q.number()))
}

// Conjugate returns the conjugate of q, the inverse rotation of a unit
// quaternion.
func (q Quaternion) Conjugate() Quaternion {
	return fromNumber(quat.Conj(q.number()))
}

// Rotate applies the rotation of q to v.
func (q Quaternion) Rotate(v Vec3) Vec3 {
	u := q.Normalized()
	p := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	r := quat.Mul(quat.Mul(u.number(), p), u.Conjugate().number())
	return Vec3{r.Imag, r.Jmag, r.Kmag}
}

// Lerp interpolates the raw components of q and r. The result is not
// normalized; Rotation normalizes before use.
func (q Quaternion) Lerp(r Quaternion, t float64) Quaternion {
	return fromNumber(quat.Add(q.number(), quat.Scale(t, quat.Sub(r.number(), q.number()))))
}
