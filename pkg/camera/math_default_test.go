package camera

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-5

func assertVec3(t *testing.T, want, got Vec3, delta float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, "X")
	assert.InDelta(t, want.Y, got.Y, delta, "Y")
	assert.InDelta(t, want.Z, got.Z, delta, "Z")
}

func assertQuat(t *testing.T, want, got Quat, delta float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, "X")
	assert.InDelta(t, want.Y, got.Y, delta, "Y")
	assert.InDelta(t, want.Z, got.Z, delta, "Z")
	assert.InDelta(t, want.W, got.W, delta, "W")
}

func TestStdMathVectorOps(t *testing.T) {
	m := StdMath{}

	assertVec3(t, Vec3{1, 1, 1}, m.Add(Vec3{1, 2, 3}, Vec3{0, -1, -2}), tol)
	assertVec3(t, Vec3{2, -4, 6}, m.Scale(Vec3{1, -2, 3}, 2), tol)
	assertVec3(t, Vec3{-1, 2, -3}, m.Negate(Vec3{1, -2, 3}), tol)

	// The world axes form a consistent basis: up x forward = right.
	assertVec3(t, WorldRight, m.Cross(WorldUp, WorldForward), tol)
	assertVec3(t, WorldUp, m.Cross(WorldForward, WorldRight), tol)

	assertVec3(t, Vec3{1, 0, 0}, m.NormalizeVec3(Vec3{5, 0, 0}), tol)
	n := m.NormalizeVec3(Vec3{1, 2, -2})
	assert.InDelta(t, 1, math.Sqrt(float64(n.X*n.X+n.Y*n.Y+n.Z*n.Z)), tol)
}

func TestStdMathHamiltonProduct(t *testing.T) {
	m := StdMath{}

	i := Quat{X: 1}
	j := Quat{Y: 1}
	k := Quat{Z: 1}

	// i * j = k, j * i = -k: the product must not be commutative.
	assertQuat(t, k, m.Mul(i, j), tol)
	assertQuat(t, Quat{Z: -1}, m.Mul(j, i), tol)

	// The identity is neutral on both sides.
	q := Quat{X: 0.18, Y: -0.54, Z: 0.3, W: 0.76}
	assertQuat(t, q, m.Mul(q, QuatIdent()), tol)
	assertQuat(t, q, m.Mul(QuatIdent(), q), tol)
}

func TestStdMathFromAxisAngle(t *testing.T) {
	m := StdMath{}

	half := float32(math.Sqrt2 / 2)
	assertQuat(t, Quat{Y: half, W: half}, m.FromAxisAngle(WorldUp, math.Pi/2), tol)
	assertQuat(t, QuatIdent(), m.FromAxisAngle(WorldRight, 0), tol)
}

func TestStdMathRotate(t *testing.T) {
	m := StdMath{}

	// Rotate applies the inverse rotation, so a +90 degree yaw quaternion
	// takes world forward to -X.
	yaw := m.FromAxisAngle(WorldUp, math.Pi/2)
	assertVec3(t, Vec3{-1, 0, 0}, m.Rotate(WorldForward, yaw), tol)

	// Composing with the conjugate applies the forward rotation instead.
	assertVec3(t, Vec3{1, 0, 0}, m.Rotate(WorldForward, m.Invert(yaw)), tol)

	// Rotation preserves length.
	q := m.NormalizeQuat(Quat{X: 0.3, Y: -0.2, Z: 0.9, W: 0.4})
	v := m.Rotate(Vec3{1, 2, 3}, q)
	assert.InDelta(t, math.Sqrt(14), math.Sqrt(float64(v.X*v.X+v.Y*v.Y+v.Z*v.Z)), tol)
}

func TestStdMathNormalizeQuat(t *testing.T) {
	m := StdMath{}

	// Degenerate input falls back to the identity instead of dividing by
	// zero.
	assertQuat(t, QuatIdent(), m.NormalizeQuat(Quat{}), tol)

	assertQuat(t, Quat{X: 1}, m.NormalizeQuat(Quat{X: 2}), tol)

	n := m.NormalizeQuat(Quat{X: 1, Y: 2, Z: 3, W: 4})
	norm := n.X*n.X + n.Y*n.Y + n.Z*n.Z + n.W*n.W
	assert.InDelta(t, 1, norm, tol)
}

func TestStdMathToEulerRoundTrip(t *testing.T) {
	m := StdMath{}

	tests := []struct {
		name  string
		axis  Vec3
		angle float32
		want  Vec3
	}{
		{"pitch", WorldRight, 0.7, Vec3{X: 0.7}},
		{"negative pitch", WorldRight, -1.2, Vec3{X: -1.2}},
		{"yaw", WorldUp, 2.1, Vec3{Y: 2.1}},
		{"roll", WorldForward, 0.5, Vec3{Z: 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := m.FromAxisAngle(tt.axis, tt.angle)
			assertVec3(t, tt.want, m.ToEuler(q), 1e-4)
		})
	}
}

func TestStdMathMatrixFromQuat(t *testing.T) {
	m := StdMath{}

	ident := [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	assert.Equal(t, ident, m.MatrixFromQuat(QuatIdent()))

	// A +90 degree yaw produces the inverse (view style) rotation matrix:
	// column 0 maps world +X to view +Z.
	got := m.MatrixFromQuat(m.FromAxisAngle(WorldUp, math.Pi/2))
	want := [16]float32{
		0, 0, 1, 0,
		0, 1, 0, 0,
		-1, 0, 0, 0,
		0, 0, 0, 1,
	}
	for i := range want {
		require.InDelta(t, want[i], got[i], tol, "element %d", i)
	}
}
