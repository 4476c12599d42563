package camera

import "math"

// StdMath implements Math using only the standard library. It is the backend
// a fresh camera starts with; see the mglmath package for a mathgl-backed
// alternative.
type StdMath struct{}

// Add returns a + b.
func (StdMath) Add(a, b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Scale returns v * s.
func (StdMath) Scale(v Vec3, s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Negate returns -v.
func (StdMath) Negate(v Vec3) Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Cross returns the cross product a x b.
func (StdMath) Cross(a, b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// NormalizeVec3 returns v scaled to unit length.
func (StdMath) NormalizeVec3(v Vec3) Vec3 {
	invLen := 1 / sqrtf(v.X*v.X+v.Y*v.Y+v.Z*v.Z)
	return Vec3{v.X * invLen, v.Y * invLen, v.Z * invLen}
}

// Mul returns the Hamilton product a * b.
func (StdMath) Mul(a, b Quat) Quat {
	return Quat{
		a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
		a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
	}
}

// Invert returns the conjugate of q. q is assumed to be unit length.
func (StdMath) Invert(q Quat) Quat {
	return Quat{-q.X, -q.Y, -q.Z, q.W}
}

// Rotate applies q^-1 * (v, 0) * q.
func (m StdMath) Rotate(v Vec3, q Quat) Vec3 {
	qv := Quat{v.X, v.Y, v.Z, 0}
	r := m.Mul(m.Mul(m.Invert(q), qv), q)
	return Vec3{r.X, r.Y, r.Z}
}

// NormalizeQuat returns q scaled to unit length, or the identity quaternion
// when q has zero norm.
func (StdMath) NormalizeQuat(q Quat) Quat {
	norm := q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
	if norm <= 0 {
		return QuatIdent()
	}
	invNorm := 1 / sqrtf(norm)
	return Quat{q.X * invNorm, q.Y * invNorm, q.Z * invNorm, q.W * invNorm}
}

// FromAxisAngle builds the rotation of angle radians around the unit axis.
func (StdMath) FromAxisAngle(axis Vec3, angle float32) Quat {
	ha := float64(angle) * 0.5
	sa := float32(math.Sin(ha))
	return Quat{
		axis.X * sa,
		axis.Y * sa,
		axis.Z * sa,
		float32(math.Cos(ha)),
	}
}

// ToEuler decomposes q into (pitch, yaw, roll) radians.
func (StdMath) ToEuler(q Quat) Vec3 {
	xsq := q.X * q.X
	ysq := q.Y * q.Y
	zsq := q.Z * q.Z

	return Vec3{
		atan2f(2*(q.X*q.W-q.Y*q.Z), 1-2*(xsq+zsq)),
		atan2f(2*(q.Y*q.W+q.X*q.Z), 1-2*(ysq+zsq)),
		float32(math.Asin(float64(2 * (q.X*q.Y + q.Z*q.W)))),
	}
}

// MatrixFromQuat returns the column-major 4x4 rotation matrix of q.
func (StdMath) MatrixFromQuat(q Quat) [16]float32 {
	x2 := q.X + q.X
	y2 := q.Y + q.Y
	z2 := q.Z + q.Z
	x2x := x2 * q.X
	x2y := x2 * q.Y
	x2z := x2 * q.Z
	x2w := x2 * q.W
	y2y := y2 * q.Y
	y2z := y2 * q.Z
	y2w := y2 * q.W
	z2z := z2 * q.Z
	z2w := z2 * q.W

	return [16]float32{
		1 - (y2y + z2z), x2y - z2w, x2z + y2w, 0,
		x2y + z2w, 1 - (x2x + z2z), y2z - x2w, 0,
		x2z - y2w, y2z + x2w, 1 - (x2x + y2y), 0,
		0, 0, 0, 1,
	}
}

func sqrtf(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}

func atan2f(y, x float32) float32 {
	return float32(math.Atan2(float64(y), float64(x)))
}
