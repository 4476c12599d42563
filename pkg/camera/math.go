package camera

// Vec3 is a plain 3-component vector. It carries no methods so that any math
// backend can operate on it without conversions at the API boundary.
type Vec3 struct {
	X, Y, Z float32
}

// Quat is a quaternion in (x, y, z, w) layout with w as the scalar part.
// The camera keeps its orientation as a unit quaternion; see Camera.Orientation.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdent returns the identity quaternion (no rotation).
func QuatIdent() Quat {
	return Quat{W: 1}
}

// World axes. The defaults form a left-handed, Y-up system with the camera
// looking along +Z. For a right-handed system set WorldForward to (0, 0, -1).
// Note: LookAt assumes the default axes.
var (
	WorldForward = Vec3{0, 0, 1}
	WorldUp      = Vec3{0, 1, 0}
	WorldRight   = Vec3{1, 0, 0}
)

// Math is the set of vector/quaternion operations the camera needs.
// Implementations must provide Hamilton-product semantics for Mul, treat the
// axis passed to FromAxisAngle as unit length, and return the identity
// quaternion from NormalizeQuat when the input has zero norm. Any conforming
// implementation can be swapped in via Camera.Math; StdMath is the default.
type Math interface {
	// Add returns a + b.
	Add(a, b Vec3) Vec3
	// Scale returns v * s.
	Scale(v Vec3, s float32) Vec3
	// Negate returns -v.
	Negate(v Vec3) Vec3
	// Cross returns the cross product a x b.
	Cross(a, b Vec3) Vec3
	// NormalizeVec3 returns v scaled to unit length. The zero vector is
	// outside the contract; callers must not pass it.
	NormalizeVec3(v Vec3) Vec3

	// Mul returns the Hamilton product a * b.
	Mul(a, b Quat) Quat
	// Invert returns the conjugate of q. q is assumed to be unit length.
	Invert(q Quat) Quat
	// Rotate applies q^-1 * (v, 0) * q, rotating v into the frame defined
	// by q.
	Rotate(v Vec3, q Quat) Vec3
	// NormalizeQuat returns q scaled to unit length, or the identity
	// quaternion when q has zero norm.
	NormalizeQuat(q Quat) Quat
	// FromAxisAngle builds the rotation of angle radians around axis.
	// axis is assumed to be unit length.
	FromAxisAngle(axis Vec3, angle float32) Quat
	// ToEuler decomposes q into (pitch, yaw, roll) radians. The
	// decomposition is lossy near roll = +-pi/2 and is used for angle
	// clamping only, never to store orientation.
	ToEuler(q Quat) Vec3
	// MatrixFromQuat returns the column-major 4x4 rotation matrix of q
	// with an identity translation column.
	MatrixFromQuat(q Quat) [16]float32
}
