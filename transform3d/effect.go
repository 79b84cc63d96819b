package transform3d

import (
	"math"

	"github.com/gogpu/tryouts"
)

// Effect computes the matrix that projects content of a given size.
type Effect interface {
	MatrixValue(size tryouts.Size) Matrix4
}

// AffineEffect scales, rotates and translates content about an anchor.
type AffineEffect struct {
	Transform Transform
	Anchor    UnitPoint3D
}

// NewAffineEffect returns an identity effect anchored at Front.
func NewAffineEffect() AffineEffect {
	return AffineEffect{Transform: IdentityTransform(), Anchor: Front}
}

// MatrixValue implements Effect.
func (e AffineEffect) MatrixValue(size tryouts.Size) Matrix4 {
	return BuildMatrix(e.Transform, e.Anchor, size, nil)
}

// ProjectiveEffect is an AffineEffect viewed through a perspective along z.
type ProjectiveEffect struct {
	Transform   Transform
	Anchor      UnitPoint3D
	Perspective float64
}

// NewProjectiveEffect returns an identity effect anchored at Front with a
// perspective of 1.
func NewProjectiveEffect() ProjectiveEffect {
	return ProjectiveEffect{Transform: IdentityTransform(), Anchor: Front, Perspective: 1}
}

// PerspectiveRotation rotates content by angle about axis, pivoting on the
// 2D anchor lifted to depth anchorZ.
func PerspectiveRotation(angle float64, axis Vec3, anchor tryouts.Point, anchorZ, perspective float64) ProjectiveEffect {
	return ProjectiveEffect{
		Transform:   AxisAngleTransform(angle, axis),
		Anchor:      UnitPoint3D{X: anchor.X, Y: anchor.Y, Z: anchorZ},
		Perspective: perspective,
	}
}

// MatrixValue implements Effect.
func (e ProjectiveEffect) MatrixValue(size tryouts.Size) Matrix4 {
	p := e.Perspective
	return BuildMatrix(e.Transform, e.Anchor, size, &p)
}

// Lerp interpolates every component of e and f.
func (e ProjectiveEffect) Lerp(f ProjectiveEffect, t float64) ProjectiveEffect {
	return ProjectiveEffect{
		Transform:   e.Transform.Lerp(f.Transform, t),
		Anchor:      e.Anchor.Lerp(f.Anchor, t),
		Perspective: e.Perspective + (f.Perspective-e.Perspective)*t,
	}
}

// OffsetEffect translates content by a fixed amount.
type OffsetEffect struct {
	Offset tryouts.Point
}

// MatrixValue implements Effect.
func (e OffsetEffect) MatrixValue(tryouts.Size) Matrix4 {
	return Translation(Vec3{X: e.Offset.X, Y: e.Offset.Y})
}

// BuildMatrix composes the effect matrix of t pivoting on anchor for content
// of the given size:
//
//	anchor · [perspective ·] translation · rotation · scale · anchor⁻¹
//
// The anchor offset is (anchor.X·width, anchor.Y·height, anchor.Z). A nil
// perspective selects the affine variant; otherwise the perspective divisor
// on z is -perspective / max(width, height, 1).
func BuildMatrix(t Transform, anchor UnitPoint3D, size tryouts.Size, perspective *float64) Matrix4 {
	offset := anchor.vector().MulComponents(Vec3{size.Width, size.Height, 1})
	anchorOffset := Translation(offset)

	m := Identity4()
	if perspective != nil {
		z := -*perspective / math.Max(math.Max(size.Width, size.Height), 1)
		m = m.Mul(Perspective(Vec3{Z: z}))
	}
	m = m.Mul(Translation(t.Translation))
	m = anchorOffset.Mul(m)
	m = m.Mul(Rotation(t.Rotation))
	m = m.Mul(ScaleMatrix(t.Scale))
	return m.Mul(Translation(offset.Neg()))
}
