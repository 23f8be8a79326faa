package math

import (
	"math"
	"testing"
)

func approxVec3(a, b Vec3, eps float32) bool {
	return abs32(a.X-b.X) <= eps && abs32(a.Y-b.Y) <= eps && abs32(a.Z-b.Z) <= eps
}

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	id := Identity()
	result := m.Mul(id)

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translate(10, 20, 30)
	got := m.TransformPoint(Vec3{1, 2, 3})
	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("TransformPoint: got %v, want %v", got, want)
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	m := Translate(10, 20, 30)
	got := m.TransformDirection(Vec3{0, 0, 1})
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("TransformDirection: got %v, want %v", got, want)
	}
}

func TestRotateY(t *testing.T) {
	m := RotateY(float32(math.Pi / 2))
	got := m.TransformPoint(Vec3{1, 0, 0})
	want := Vec3{0, 0, -1}
	if !approxVec3(got, want, 1e-6) {
		t.Errorf("RotateY(90deg) * +X = %v, want %v", got, want)
	}
}

func TestRotateAxisMatchesRotateY(t *testing.T) {
	angle := float32(0.7)
	a := RotateAxis(Vec3{0, 1, 0}, angle)
	b := RotateY(angle)
	p := Vec3{1, 2, 3}
	if got, want := a.TransformPoint(p), b.TransformPoint(p); !approxVec3(got, want, 1e-5) {
		t.Errorf("RotateAxis(Y) = %v, RotateY = %v", got, want)
	}
}

func TestFromBasis(t *testing.T) {
	x := Vec3{0, 0, -1}
	y := Vec3{0, 1, 0}
	z := Vec3{1, 0, 0}
	origin := Vec3{5, 0, 0}
	m := FromBasis(x, y, z, origin)

	// Basis-local +X lands on the world x axis direction, offset by origin.
	got := m.TransformPoint(Vec3{1, 0, 0})
	want := Vec3{5, 0, -1}
	if !approxVec3(got, want, 1e-6) {
		t.Errorf("FromBasis point: got %v, want %v", got, want)
	}
	if got := m.TransformPoint(Vec3{}); got != origin {
		t.Errorf("FromBasis origin: got %v, want %v", got, origin)
	}
}

func TestInverseRoundTrip(t *testing.T) {
	m := Translate(3, -2, 7).Mul(RotateY(0.6)).Mul(Scale(2, 2, 2))
	inv := m.Inverse()

	p := Vec3{1.5, -4, 2}
	got := inv.TransformPoint(m.TransformPoint(p))
	if !approxVec3(got, p, 1e-4) {
		t.Errorf("Inverse round trip: got %v, want %v", got, p)
	}
}

func TestInverseSingular(t *testing.T) {
	m := Scale(0, 0, 0)
	if got := m.Inverse(); got != Identity() {
		t.Errorf("singular Inverse should be identity, got %v", got)
	}
}

func TestRadians(t *testing.T) {
	got := Radians(180)
	want := float32(math.Pi)
	if abs32(got-want) > 1e-6 {
		t.Errorf("Radians(180) = %v, want %v", got, want)
	}
}
