package controller

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/milk9111/firstperson/common"
	"github.com/milk9111/firstperson/input"
	"github.com/milk9111/firstperson/physics"
)

// fastFrictionScale halves friction above FastSpeed so carried momentum
// bleeds off more slowly than low-speed residual motion.
const fastFrictionScale = 0.5

const zeroDirEpsilon = 1e-7

// LocomotionModel converts move input, view yaw and ground state into the
// body's horizontal velocity. It owns the previous-tick move direction
// and the sticky direction-change timer; everything else it needs is
// passed in per tick.
type LocomotionModel struct {
	prevDir    mgl32.Vec3
	hasPrevDir bool

	// The direction-change flag is a tiny timer state machine: armedAt
	// records when the flag was last set, and the flag reads as active
	// while now-armedAt is inside the decay window.
	armed   bool
	armedAt float64
}

// Step runs the full locomotion pass for one tick. groundJump signals
// that the arbiter initiated a ground jump this tick, making the forward
// boost eligible exactly once.
func (m *LocomotionModel) Step(st *CharacterState, body *physics.Body, in input.Snapshot, now float64, dt float32, p LocomotionParams, groundJump bool) {
	if in.Zero() {
		m.applyFriction(body, dt, p)
		return
	}

	moveDir := m.moveDirection(st, in)
	if common.HzLenSqr(moveDir) < zeroDirEpsilon {
		m.applyFriction(body, dt, p)
		return
	}

	if m.hasPrevDir && moveDir.Dot(m.prevDir) < p.DirChangeCos {
		m.armed = true
		m.armedAt = now
	}
	if m.armed && now-m.armedAt > p.DirChangeWindow {
		m.armed = false
	}

	targetSpeed := p.WalkSpeed
	if st.Sprinting {
		targetSpeed = p.RunSpeed
	}
	target := moveDir.Mul(targetSpeed)

	cur := mgl32.Vec3{body.Vel.X(), 0, body.Vel.Z()}
	speed := cur.Len()

	var next mgl32.Vec3
	if m.armed && speed > p.MinMomentumSpeed {
		// Momentum regime: keep most of the carried velocity instead of
		// snapping toward the new target.
		next = cur.Mul(p.MomentumRetention).Add(target.Mul(1 - p.MomentumRetention))
	} else {
		accel := p.GroundAccel
		if !st.OnGround {
			accel = p.AirAccel
		}
		if speed < p.MinMomentumSpeed || m.armed {
			accel *= p.DirChangeBoost
		}
		if !st.OnGround {
			accel *= p.AirControl
		}

		// Move toward the target at the acceleration rate without ever
		// overshooting it within a tick.
		delta := target.Sub(cur)
		if dist := delta.Len(); dist > zeroDirEpsilon {
			step := math32.Min(accel*dt, dist)
			next = cur.Add(delta.Mul(step / dist))
		} else {
			next = cur
		}
	}

	if sp := next.Len(); sp > p.MaxSpeed {
		next = next.Mul(p.MaxSpeed / sp)
	}

	if groundJump {
		next = next.Add(moveDir.Mul(p.JumpForwardBoost * p.WalkSpeed))
	}

	body.Vel = common.WithHz(body.Vel, next.X(), next.Z())
	m.prevDir = moveDir
	m.hasPrevDir = true
}

// moveDirection projects the input axes onto the yaw-derived horizontal
// basis and normalizes. The -Z input axis is forward.
func (m *LocomotionModel) moveDirection(st *CharacterState, in input.Snapshot) mgl32.Vec3 {
	forward, right := st.Basis()
	dir := forward.Mul(-in.MoveZ).Add(right.Mul(in.MoveX))
	if l := dir.Len(); l > zeroDirEpsilon {
		return dir.Mul(1 / l)
	}
	return mgl32.Vec3{}
}

// applyFriction is the idle decay model: an exponential-style damping on
// the horizontal components, with an exact snap to zero below StopSpeed
// so residual motion never creeps asymptotically.
func (m *LocomotionModel) applyFriction(body *physics.Body, dt float32, p LocomotionParams) {
	speed := common.HzLen(body.Vel)
	if speed < p.StopSpeed {
		body.Vel = common.WithHz(body.Vel, 0, 0)
		return
	}

	friction := p.GroundFriction
	if !body.OnGround {
		friction = p.AirFriction
	}
	if speed > p.FastSpeed {
		friction *= fastFrictionScale
	}

	damp := math32.Max(0, 1-friction*dt)
	body.Vel = common.WithHz(body.Vel, body.Vel.X()*damp, body.Vel.Z()*damp)
}
