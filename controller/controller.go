// Package controller implements the first-person movement and jump state
// machine. Each simulation tick it decides what velocity the character's
// physics body should have and whether a buffered jump request is honored.
//
// The controller is a pure function of (state, input snapshot, tick time,
// dt, params): it never reads the wall clock and never blocks, which keeps
// a tick's decisions internally consistent and replayable.
package controller

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/milk9111/firstperson/input"
	"github.com/milk9111/firstperson/physics"
)

// Controller owns one character's movement state and runs the jump
// arbiter followed by the locomotion model once per tick.
type Controller struct {
	params LocomotionParams
	tuning JumpTuning

	state CharacterState
	jump  JumpArbiter
	loco  LocomotionModel

	impulse    mgl32.Vec3
	hasImpulse bool
}

func New(params LocomotionParams, tuning JumpTuning) *Controller {
	return &Controller{
		params: params,
		tuning: tuning,
		state:  newCharacterState(),
	}
}

// State returns the authoritative movement state, mirrored from the
// physics body after the last tick.
func (c *Controller) State() *CharacterState {
	return &c.state
}

// Params returns the active tuning bundle.
func (c *Controller) Params() LocomotionParams {
	return c.params
}

// Retune swaps the tuning bundles. Callers must do this between ticks,
// on the simulation goroutine.
func (c *Controller) Retune(params LocomotionParams, tuning JumpTuning) {
	c.params = params
	c.tuning = tuning
}

// Rotate feeds a look delta into the view angles.
func (c *Controller) Rotate(dYaw, dPitch float32) {
	c.state.Rotate(dYaw, dPitch)
}

// ApplyImpulse queues an external velocity impulse (knockback, explosion
// push) that is added to the body at the start of the next tick, where
// the momentum model can then carry it.
func (c *Controller) ApplyImpulse(v mgl32.Vec3) {
	c.impulse = c.impulse.Add(v)
	c.hasImpulse = true
}

// Tick runs one simulation step. now is the injected tick timestamp in
// seconds; dt is the clamped, non-negative tick delta. The snapshot is
// treated as a consistent point-in-time value for the whole tick.
func (c *Controller) Tick(now float64, dt float32, snap input.Snapshot, body *physics.Body) {
	if dt < 0 {
		dt = 0
	}
	snap = snap.Sanitize()
	st := &c.state

	st.Sprinting = snap.Sprint
	if snap.JumpPressed {
		// A fresh press always re-latches the request with its own
		// timestamp, even if an earlier one expired unconsumed.
		st.JumpRequested = true
		st.JumpRequestedAt = snap.JumpPressedAt
	}

	if c.hasImpulse {
		body.Vel = body.Vel.Add(c.impulse)
		c.impulse = mgl32.Vec3{}
		c.hasImpulse = false
	}

	// Ground edge bookkeeping runs before the arbiter so a landing and a
	// buffered press can resolve into a ground jump on the same tick.
	if body.OnGround && !st.OnGround {
		st.JumpCount = 0
	}
	if !body.OnGround && st.OnGround {
		st.LastGroundedAt = now
	}
	st.OnGround = body.OnGround

	groundJump := c.jump.Decide(st, body, now, c.tuning, c.params.JumpForce)
	c.loco.Step(st, body, snap, now, dt, c.params, groundJump)

	st.Pos = body.Pos
	st.Vel = body.Vel
}
