// Package camera implements a quaternion-based 3D camera for games and other
// 3D graphics applications.
//
// The camera is engine agnostic: it is driven with angles and offsets rather
// than input device events, and all vector/quaternion arithmetic goes through
// the pluggable Math backend. Movement and rotation commands are accumulated
// and only applied when ViewMatrix is called, which is expected to happen once
// per rendered frame. Query functions (Forward, Up, Right, Eye) therefore
// reflect the state as of the last ViewMatrix call; pending commands are
// invisible until the next one.
//
// All Camera fields can be safely manipulated at any time. The camera performs
// no locking; callers sharing one camera across goroutines must serialize
// access themselves.
package camera

// Mode is a bitset of behaviour flags. Flags combine freely with bitwise OR
// and can be changed at runtime, which makes transitions such as first person
// to third person seamless.
type Mode uint32

const (
	// ModeDisableRoll disables the roll axis and keeps pitch/yaw rotations
	// from inducing roll.
	ModeDisableRoll Mode = 1 << iota
	// ModeMoveInWorldplane projects forward/right movement onto the world
	// plane, locking travel to the ground plane regardless of pitch.
	ModeMoveInWorldplane
	// ModeClampPitch limits the pitch angle to [MinPitch, MaxPitch].
	// Typically used in first/third person to prevent somersaults.
	ModeClampPitch
	// ModeClampYaw limits the yaw angle to [MinYaw, MaxYaw].
	ModeClampYaw
	// ModeClampRoll limits the roll angle to [MinRoll, MaxRoll].
	ModeClampRoll
)

// Pre-defined mode combinations. These are plain bit combinations, not
// distinct camera types.
const (
	// ModeFree applies no restrictions.
	ModeFree Mode = 0
	// ModeFirstPerson is a walking camera. Set MinPitch = -pi/2 and
	// MaxPitch = pi/2.
	ModeFirstPerson = ModeDisableRoll | ModeMoveInWorldplane | ModeClampPitch
	// ModeThirdPerson is ModeFirstPerson with a TargetDistance > 0.
	ModeThirdPerson = ModeFirstPerson
	// ModeOrbital orbits around TargetPosition, useful for inspecting
	// models. Set MinPitch = -pi/2 and MaxPitch = pi/2.
	ModeOrbital = ModeDisableRoll | ModeClampPitch
)

// epsilon guards the world-plane projection against degenerate, straight
// up/down look directions.
const epsilon = 0.0001

// Camera holds the complete camera state. Every field may be read or written
// directly at any time; the angle limits are only consulted when the
// corresponding clamp flag is set and must then satisfy Min <= Max, both in
// [-pi, pi]. That contract is the caller's to uphold, it is not validated.
type Camera struct {
	// TargetPosition is the point the camera looks at. It is also the eye
	// position when TargetDistance is zero.
	TargetPosition Vec3
	// TargetDistance is the distance from eye to target. Negative values
	// create zoom-like behaviour.
	TargetDistance float32
	// Orientation is the camera rotation. It is unit length after every
	// ViewMatrix call.
	Orientation Quat
	// Mode controls camera behaviour. See the Mode constants.
	Mode Mode

	// Pending command accumulators, cleared on ViewMatrix.
	MovementAccumulator Vec3
	RotationAccumulator Vec3

	// Angle clamping limits, radians in [-pi, pi].
	MinPitch float32
	MaxPitch float32
	MinYaw   float32
	MaxYaw   float32
	MinRoll  float32
	MaxRoll  float32

	// Math is the arithmetic backend. New installs StdMath; any Math
	// implementation can be substituted.
	Math Math
}

// New returns a camera at the origin with identity orientation, free mode and
// the standard library math backend.
func New() *Camera {
	return &Camera{
		Orientation: QuatIdent(),
		Math:        StdMath{},
	}
}

// Forward returns the camera's current forward direction (normalized).
func (c *Camera) Forward() Vec3 {
	return c.Math.Rotate(WorldForward, c.Math.Invert(c.Orientation))
}

// Up returns the camera's current up direction (normalized).
func (c *Camera) Up() Vec3 {
	return c.Math.Rotate(WorldUp, c.Math.Invert(c.Orientation))
}

// Right returns the camera's current right direction (normalized).
func (c *Camera) Right() Vec3 {
	return c.Math.Rotate(WorldRight, c.Math.Invert(c.Orientation))
}

// Eye returns the camera's current eye position.
func (c *Camera) Eye() Vec3 {
	return c.Math.Add(c.TargetPosition, c.Math.Scale(c.Forward(), -c.TargetDistance))
}

// Move queues a movement in the camera's local frame.
// offset is (forward, up, right).
func (c *Camera) Move(offset Vec3) {
	c.MovementAccumulator = c.Math.Add(c.MovementAccumulator, offset)
}

// Rotate queues a rotation of the camera view.
// angles is (pitch, yaw, roll) in radians: pitch looks up/down, yaw looks
// left/right, roll turns the head left/right.
func (c *Camera) Rotate(angles Vec3) {
	c.RotationAccumulator = c.Math.Add(c.RotationAccumulator, angles)
}

// LookAt orients the camera to look along forward. Only Orientation changes;
// the camera still faces TargetPosition. forward and up are expected to be
// normalized but need not be orthogonal.
func (c *Camera) LookAt(forward, up Vec3) {
	// Build an orthonormal basis, then convert it to a quaternion with the
	// trace-based matrix conversion.
	// Ref.: https://www.euclideanspace.com/maths/geometry/rotations/conversions/matrixToQuaternion/
	right := c.Math.NormalizeVec3(c.Math.Cross(up, forward))
	up = c.Math.Cross(forward, right)

	m0, m1, m2 := right.X, right.Y, right.Z
	m4, m5, m6 := up.X, up.Y, up.Z
	m8, m9, m10 := forward.X, forward.Y, forward.Z

	// Branch on the dominant diagonal term to keep the divisor away from
	// zero near trace ~ 0.
	trace := m0 + m5 + m10
	switch {
	case trace > 0:
		s := 0.5 / sqrtf(trace+1)
		c.Orientation.W = 0.25 / s
		c.Orientation.X = (m6 - m9) * s
		c.Orientation.Y = (m8 - m2) * s
		c.Orientation.Z = (m1 - m4) * s
	case m0 > m5 && m0 > m10:
		s := 2 * sqrtf(1+m0-m5-m10)
		c.Orientation.W = (m6 - m9) / s
		c.Orientation.X = 0.25 * s
		c.Orientation.Y = (m4 + m1) / s
		c.Orientation.Z = (m8 + m2) / s
	case m5 > m10:
		s := 2 * sqrtf(1+m5-m0-m10)
		c.Orientation.W = (m8 - m2) / s
		c.Orientation.X = (m4 + m1) / s
		c.Orientation.Y = 0.25 * s
		c.Orientation.Z = (m9 + m6) / s
	default:
		s := 2 * sqrtf(1+m10-m0-m5)
		c.Orientation.W = (m1 - m4) / s
		c.Orientation.X = (m8 + m2) / s
		c.Orientation.Y = (m9 + m6) / s
		c.Orientation.Z = 0.25 * s
	}
}

// ViewMatrix applies the pending movement and rotation commands and returns
// the resulting view matrix as a column-major 4x4. Call it once per frame;
// it is the only operation that mutates Orientation and TargetPosition.
func (c *Camera) ViewMatrix() [16]float32 {
	c.applyRotation()
	c.applyMovement()

	// Rotation part straight from the orientation, translation rotated
	// into the camera frame.
	out := c.Math.MatrixFromQuat(c.Orientation)
	translation := c.Math.Rotate(c.Math.Negate(c.Eye()), c.Orientation)
	out[12] = translation.X
	out[13] = translation.Y
	out[14] = translation.Z
	return out
}

// applyRotation clamps the pending rotation, merges it into Orientation and
// clears the rotation accumulator.
func (c *Camera) applyRotation() {
	if c.Mode&(ModeClampPitch|ModeClampYaw|ModeClampRoll) != 0 {
		// Clamp the pending deltas so the resulting world-space angles
		// stay inside their limits. Deltas already in range pass
		// through unchanged.
		angles := c.Math.ToEuler(c.Orientation)

		if c.Mode&ModeClampPitch != 0 {
			c.RotationAccumulator.X = maxf(c.MinPitch-angles.X, c.RotationAccumulator.X)
			c.RotationAccumulator.X = minf(c.MaxPitch-angles.X, c.RotationAccumulator.X)
		}
		if c.Mode&ModeClampYaw != 0 {
			c.RotationAccumulator.Y = maxf(c.MinYaw-angles.Y, c.RotationAccumulator.Y)
			c.RotationAccumulator.Y = minf(c.MaxYaw-angles.Y, c.RotationAccumulator.Y)
		}
		if c.Mode&ModeClampRoll != 0 {
			c.RotationAccumulator.Z = maxf(c.MinRoll-angles.Z, c.RotationAccumulator.Z)
			c.RotationAccumulator.Z = minf(c.MaxRoll-angles.Z, c.RotationAccumulator.Z)
		}
	}

	pitch := c.Math.FromAxisAngle(WorldRight, c.RotationAccumulator.X)
	yaw := c.Math.FromAxisAngle(WorldUp, c.RotationAccumulator.Y)

	if c.Mode&ModeDisableRoll != 0 {
		// The multiplication order matters: yaw in world space, pitch
		// in local space, so pitch+yaw cannot induce roll.
		c.Orientation = c.Math.Mul(c.Orientation, pitch)
		c.Orientation = c.Math.Mul(yaw, c.Orientation)
	} else {
		roll := c.Math.FromAxisAngle(WorldForward, c.RotationAccumulator.Z)
		c.Orientation = c.Math.Mul(c.Orientation, pitch)
		c.Orientation = c.Math.Mul(c.Orientation, yaw)
		c.Orientation = c.Math.Mul(c.Orientation, roll)
	}

	// Repeated composition accumulates floating point drift.
	c.Orientation = c.Math.NormalizeQuat(c.Orientation)

	c.RotationAccumulator = Vec3{}
}

// applyMovement moves TargetPosition along the (possibly world-plane
// projected) camera basis and clears the movement accumulator.
func (c *Camera) applyMovement() {
	forward := c.Forward()
	up := c.Up()
	right := c.Right()

	if c.Mode&ModeMoveInWorldplane != 0 {
		// forward is normalized, so checking .Y is sufficient.
		switch {
		case forward.Y > 1-epsilon:
			// Looking straight up.
			forward = c.Math.Negate(up)
		case forward.Y < -1+epsilon:
			// Looking straight down.
			forward = up
		case right.Y > 1-epsilon:
			right = up
		case right.Y < -1+epsilon:
			right = c.Math.Negate(up)
		}

		// Project forward and right into the world plane.
		forward.Y = 0
		forward = c.Math.NormalizeVec3(forward)
		right.Y = 0
		right = c.Math.NormalizeVec3(right)
		up = WorldUp
	}

	forward = c.Math.Scale(forward, c.MovementAccumulator.X)
	up = c.Math.Scale(up, c.MovementAccumulator.Y)
	right = c.Math.Scale(right, c.MovementAccumulator.Z)

	c.TargetPosition = c.Math.Add(c.TargetPosition, forward)
	c.TargetPosition = c.Math.Add(c.TargetPosition, up)
	c.TargetPosition = c.Math.Add(c.TargetPosition, right)

	c.MovementAccumulator = Vec3{}
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
