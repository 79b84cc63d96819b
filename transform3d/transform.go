package transform3d

// Transform is the scale, rotation and translation of an effect.
type Transform struct {
	Scale       Vec3
	Rotation    Quaternion
	Translation Vec3
}

// IdentityTransform returns the transform that changes nothing: unit scale,
// identity rotation, zero translation.
func IdentityTransform() Transform {
	return Transform{Scale: One, Rotation: IdentityQuaternion}
}

// EulerTransform returns a rotation-only transform built from rotations about
// the x (pitch), y (yaw) and z (roll) axes, composed as x·y·z.
func EulerTransform(pitch, yaw, roll float64) Transform {
	x := FromAxisAngle(pitch, Vec3{X: 1})
	y := FromAxisAngle(yaw, Vec3{Y: 1})
	z := FromAxisAngle(roll, Vec3{Z: 1})

	t := IdentityTransform()
	t.Rotation = x.Mul(y).Mul(z)
	return t
}

// AxisAngleTransform returns a rotation-only transform turning angle radians
// about axis.
func AxisAngleTransform(angle float64, axis Vec3) Transform {
	t := IdentityTransform()
	t.Rotation = FromAxisAngle(angle, axis)
	return t
}

// Lerp interpolates every component of t and u. An animation driver calls it
// per frame and rebuilds the effect matrix from the result.
func (t Transform) Lerp(u Transform, f float64) Transform {
	return Transform{
		Scale:       t.Scale.Lerp(u.Scale, f),
		Rotation:    t.Rotation.Lerp(u.Rotation, f),
		Translation: t.Translation.Lerp(u.Translation, f),
	}
}

// UnitPoint3D is a pivot expressed as a fraction of the content size on x
// and y, and as an absolute depth on z.
type UnitPoint3D struct {
	X, Y, Z float64
}

// Common anchors.
var (
	UnitZero = UnitPoint3D{}
	Front    = UnitPoint3D{X: 0.5, Y: 0.5, Z: 0}
	Center   = UnitPoint3D{X: 0.5, Y: 0.5, Z: 0.5}
)

// Lerp interpolates between p (t=0) and q (t=1).
func (p UnitPoint3D) Lerp(q UnitPoint3D, t float64) UnitPoint3D {
	return UnitPoint3D{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
		Z: p.Z + (q.Z-p.Z)*t,
	}
}

func (p UnitPoint3D) vector() Vec3 {
	return Vec3{p.X, p.Y, p.Z}
}
