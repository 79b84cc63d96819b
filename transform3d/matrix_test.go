package transform3d

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/tryouts"
)

func TestBuildMatrix_IdentityForAnyAnchorAndSize(t *testing.T) {
	zero := 0.0
	anchors := []UnitPoint3D{UnitZero, Front, Center, {X: 1, Y: 1, Z: 1}, {X: -0.25, Y: 2, Z: 7}}
	sizes := []tryouts.Size{tryouts.Sz(0, 0), tryouts.Sz(100, 50), tryouts.Sz(1e6, 3), tryouts.Sz(0.5, 0.25)}

	for _, anchor := range anchors {
		for _, size := range sizes {
			if m := BuildMatrix(IdentityTransform(), anchor, size, nil); !m.IsIdentity() {
				t.Errorf("affine BuildMatrix(identity, %v, %v) = %v, want identity", anchor, size, m)
			}
			if m := BuildMatrix(IdentityTransform(), anchor, size, &zero); !m.IsIdentity() {
				t.Errorf("projective BuildMatrix(identity, %v, %v, 0) = %v, want identity", anchor, size, m)
			}
		}
	}
}

func TestRotation_NormalizesQuaternion(t *testing.T) {
	tests := []struct {
		name  string
		q     Quaternion
		scale float64
	}{
		{"about z", FromAxisAngle(0.8, Vec3{Z: 1}), 2.5},
		{"about y", FromAxisAngle(-2.1, Vec3{Y: 1}), 0.01},
		{"oblique", FromAxisAngle(1.3, Vec3{1, 2, 3}), 40},
		{"identity", IdentityQuaternion, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scaled := Quaternion{tt.q.X * tt.scale, tt.q.Y * tt.scale, tt.q.Z * tt.scale, tt.q.W * tt.scale}
			want := Rotation(tt.q)
			if got := Rotation(scaled); !got.ApproxEqual(want, 1e-12) {
				t.Errorf("Rotation(%v) = %v, want %v", scaled, got, want)
			}
		})
	}
}

func TestRotation_ZeroQuaternion(t *testing.T) {
	if m := Rotation(Quaternion{}); !m.IsIdentity() {
		t.Errorf("Rotation(zero) = %v, want identity", m)
	}
}

func TestConstructors(t *testing.T) {
	const epsilon = 1e-12

	tests := []struct {
		name string
		m    Matrix4
		in   Vec3
		want Vec3
	}{
		{"scale", ScaleMatrix(V3(2, 3, 4)), V3(1, 1, 1), V3(2, 3, 4)},
		{"translation", Translation(V3(5, -6, 7)), V3(1, 1, 1), V3(6, -5, 8)},
		{"rotation quarter about z", Rotation(FromAxisAngle(math.Pi/2, Vec3{Z: 1})), V3(1, 0, 0), V3(0, 1, 0)},
		{"rotation half about y", Rotation(FromAxisAngle(math.Pi, Vec3{Y: 1})), V3(1, 0, 0), V3(-1, 0, 0)},
		{"perspective", Perspective(V3(0, 0, -0.5)), V3(4, 2, -2), V3(2, 1, -1)},
		{"translate after scale", Translation(V3(1, 0, 0)).Mul(ScaleMatrix(V3(2, 2, 2))), V3(1, 1, 0), V3(3, 2, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.in)
			if got.Sub(tt.want).Length() > epsilon {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPerspective_BottomRow(t *testing.T) {
	m := Perspective(V3(1, 2, 3))
	if m[0][3] != 1 || m[1][3] != 2 || m[2][3] != 3 || m[3][3] != 1 {
		t.Errorf("Perspective bottom row = (%v, %v, %v, %v), want (1, 2, 3, 1)", m[0][3], m[1][3], m[2][3], m[3][3])
	}
}

func TestBuildMatrix_RotatesAboutAnchor(t *testing.T) {
	const epsilon = 1e-9
	size := tryouts.Sz(100, 100)
	m := BuildMatrix(AxisAngleTransform(math.Pi/2, Vec3{Z: 1}), Front, size, nil)

	tests := []struct {
		in, want Vec3
	}{
		{V3(50, 50, 0), V3(50, 50, 0)},
		{V3(100, 50, 0), V3(50, 100, 0)},
		{V3(50, 0, 0), V3(100, 50, 0)},
	}

	for _, tt := range tests {
		if got := m.TransformPoint(tt.in); got.Sub(tt.want).Length() > epsilon {
			t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBuildMatrix_TranslationAndScale(t *testing.T) {
	const epsilon = 1e-9
	tr := IdentityTransform()
	tr.Translation = V3(10, 20, 0)
	tr.Scale = V3(2, 2, 1)

	m := BuildMatrix(tr, Front, tryouts.Sz(100, 100), nil)
	// (60, 50) is 10 right of the anchor, scaled to 20 and moved by (10, 20).
	want := V3(80, 70, 0)
	if got := m.TransformPoint(V3(60, 50, 0)); got.Sub(want).Length() > epsilon {
		t.Errorf("TransformPoint = %v, want %v", got, want)
	}
}

func TestPerspectiveRotation_Foreshortens(t *testing.T) {
	const epsilon = 1e-9
	angle := math.Pi / 6
	size := tryouts.Sz(100, 100)
	effect := PerspectiveRotation(angle, Vec3{Y: 1}, tryouts.Pt(0.5, 0.5), 0, 1)
	proj := effect.MatrixValue(size).Projection()

	if got := proj.TransformPoint(tryouts.Pt(50, 50)); !got.ApproxEqual(tryouts.Pt(50, 50), epsilon) {
		t.Errorf("anchor moved to %v", got)
	}

	// The right edge turns away by angle and is divided by w = 1 + 50·sin(angle)/100.
	w := 1 + 0.5*math.Sin(angle)
	want := tryouts.Pt(50+50*math.Cos(angle)/w, 50)
	if got := proj.TransformPoint(tryouts.Pt(100, 50)); !got.ApproxEqual(want, epsilon) {
		t.Errorf("TransformPoint(100, 50) = %v, want %v", got, want)
	}
	if proj.IsAffine() {
		t.Error("a perspective rotation about y should not be affine")
	}
}

func TestProjection_AffineMatchesMatrix(t *testing.T) {
	const epsilon = 1e-12
	angle := 0.7
	got := Rotation(FromAxisAngle(angle, Vec3{Z: 1})).Mul(Translation(V3(3, 4, 0))).Projection()

	if !got.IsAffine() {
		t.Fatal("rotation about z should project to an affine transform")
	}
	want := tryouts.Translate(3, 4).Then(tryouts.Rotate(angle))
	if !got.Affine().ApproxEqual(want, epsilon) {
		t.Errorf("Affine() = %+v, want %+v", got.Affine(), want)
	}
}

func TestMatrix4_Inverse(t *testing.T) {
	effect := ProjectiveEffect{
		Transform:   EulerTransform(0.3, -0.4, 1.2),
		Anchor:      Center,
		Perspective: 0.25,
	}
	m := effect.MatrixValue(tryouts.Sz(320, 240))

	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("Inverse() error = %v", err)
	}
	if got := m.Mul(inv); !got.ApproxEqual(Identity4(), 1e-9) {
		t.Errorf("m·m⁻¹ = %v, want identity", got)
	}

	// Rotations are orthogonal.
	rot := Rotation(FromAxisAngle(0.7, V3(1, 2, 3)))
	rotInv, err := rot.Inverse()
	if err != nil {
		t.Fatalf("Inverse() error = %v", err)
	}
	if !rotInv.ApproxEqual(rot.Transpose(), 1e-12) {
		t.Errorf("rotation inverse = %v, want transpose %v", rotInv, rot.Transpose())
	}

	if _, err := ScaleMatrix(V3(0, 1, 1)).Inverse(); !errors.Is(err, ErrSingular) {
		t.Errorf("Inverse() of a singular matrix error = %v, want ErrSingular", err)
	}
}

func TestEulerTransform(t *testing.T) {
	const epsilon = 1e-12

	roll := EulerTransform(0, 0, 0.9)
	want := AxisAngleTransform(0.9, Vec3{Z: 1})
	if !Rotation(roll.Rotation).ApproxEqual(Rotation(want.Rotation), epsilon) {
		t.Errorf("roll-only Euler rotation differs from axis-angle rotation")
	}

	e := EulerTransform(0.1, 0.2, 0.3)
	composed := Rotation(FromAxisAngle(0.1, Vec3{X: 1})).
		Mul(Rotation(FromAxisAngle(0.2, Vec3{Y: 1}))).
		Mul(Rotation(FromAxisAngle(0.3, Vec3{Z: 1})))
	if !Rotation(e.Rotation).ApproxEqual(composed, epsilon) {
		t.Errorf("EulerTransform rotation = %v, want %v", Rotation(e.Rotation), composed)
	}
}

func TestOffsetEffect(t *testing.T) {
	m := OffsetEffect{Offset: tryouts.Pt(-30, 12)}.MatrixValue(tryouts.Sz(10, 10))
	if got := m.Projection().TransformPoint(tryouts.Pt(1, 1)); got != tryouts.Pt(-29, 13) {
		t.Errorf("TransformPoint = %v, want (-29, 13)", got)
	}
}

func TestEffectLerp(t *testing.T) {
	a := NewProjectiveEffect()
	b := PerspectiveRotation(1, Vec3{Y: 1}, tryouts.Pt(0, 1), 1, 0)

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %+v, want %+v", got, a)
	}
	mid := a.Lerp(b, 0.5)
	if mid.Perspective != 0.5 || mid.Anchor != (UnitPoint3D{X: 0.25, Y: 0.75, Z: 0.5}) {
		t.Errorf("Lerp(0.5) = %+v", mid)
	}
}
