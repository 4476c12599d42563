// Package mglmath provides a camera math backend implemented on top of
// github.com/go-gl/mathgl. Engines that already use mgl32 can install it with
//
//	cam.Math = mglmath.Backend{}
//
// to route all camera arithmetic through the same library.
package mglmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/crydev/quatcam/pkg/camera"
)

// Backend implements camera.Math using mgl32.
type Backend struct{}

func vec(v camera.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

func unvec(v mgl32.Vec3) camera.Vec3 {
	return camera.Vec3{X: v.X(), Y: v.Y(), Z: v.Z()}
}

func quat(q camera.Quat) mgl32.Quat {
	return mgl32.Quat{W: q.W, V: mgl32.Vec3{q.X, q.Y, q.Z}}
}

func unquat(q mgl32.Quat) camera.Quat {
	return camera.Quat{X: q.V[0], Y: q.V[1], Z: q.V[2], W: q.W}
}

// Add returns a + b.
func (Backend) Add(a, b camera.Vec3) camera.Vec3 {
	return unvec(vec(a).Add(vec(b)))
}

// Scale returns v * s.
func (Backend) Scale(v camera.Vec3, s float32) camera.Vec3 {
	return unvec(vec(v).Mul(s))
}

// Negate returns -v.
func (Backend) Negate(v camera.Vec3) camera.Vec3 {
	return unvec(vec(v).Mul(-1))
}

// Cross returns the cross product a x b.
func (Backend) Cross(a, b camera.Vec3) camera.Vec3 {
	return unvec(vec(a).Cross(vec(b)))
}

// NormalizeVec3 returns v scaled to unit length.
func (Backend) NormalizeVec3(v camera.Vec3) camera.Vec3 {
	return unvec(vec(v).Normalize())
}

// Mul returns the Hamilton product a * b.
func (Backend) Mul(a, b camera.Quat) camera.Quat {
	return unquat(quat(a).Mul(quat(b)))
}

// Invert returns the conjugate of q.
func (Backend) Invert(q camera.Quat) camera.Quat {
	return unquat(quat(q).Conjugate())
}

// Rotate applies q^-1 * (v, 0) * q. mgl32's Quat.Rotate applies q * v * q^-1,
// so the quaternion is conjugated first.
func (Backend) Rotate(v camera.Vec3, q camera.Quat) camera.Vec3 {
	return unvec(quat(q).Conjugate().Rotate(vec(v)))
}

// NormalizeQuat returns q scaled to unit length. mgl32 already returns the
// identity quaternion for a zero-norm input.
func (Backend) NormalizeQuat(q camera.Quat) camera.Quat {
	return unquat(quat(q).Normalize())
}

// FromAxisAngle builds the rotation of angle radians around the unit axis.
func (Backend) FromAxisAngle(axis camera.Vec3, angle float32) camera.Quat {
	return unquat(mgl32.QuatRotate(angle, vec(axis)))
}

// ToEuler decomposes q into (pitch, yaw, roll) radians. mgl32 has no
// quaternion Euler decomposition with this axis convention, so it is computed
// directly.
func (Backend) ToEuler(q camera.Quat) camera.Vec3 {
	xsq := float64(q.X * q.X)
	ysq := float64(q.Y * q.Y)
	zsq := float64(q.Z * q.Z)

	return camera.Vec3{
		X: float32(math.Atan2(2*float64(q.X*q.W-q.Y*q.Z), 1-2*(xsq+zsq))),
		Y: float32(math.Atan2(2*float64(q.Y*q.W+q.X*q.Z), 1-2*(ysq+zsq))),
		Z: float32(math.Asin(2 * float64(q.X*q.Y+q.Z*q.W))),
	}
}

// MatrixFromQuat returns the column-major 4x4 rotation matrix of q. mgl32's
// Quat.Mat4 uses the transposed convention, so the result is transposed back.
func (Backend) MatrixFromQuat(q camera.Quat) [16]float32 {
	return [16]float32(quat(q).Mat4().Transpose())
}
