package controller

import "github.com/milk9111/firstperson/physics"

// AirJumpForceScale weakens every air jump relative to a ground jump.
const AirJumpForceScale = 0.9

// JumpArbiter decides, once per tick, whether the pending jump request
// becomes an actual jump. None of its outcomes are errors: a request that
// cannot be consumed stays pending until its buffer window expires.
type JumpArbiter struct{}

// Decide attempts to consume the state's pending jump request at tick
// time now. On a ground jump it reports true, signalling forward-boost
// eligibility to the locomotion model; air jumps never boost.
func (JumpArbiter) Decide(st *CharacterState, body *physics.Body, now float64, tun JumpTuning, jumpForce float32) bool {
	if !st.JumpRequested {
		return false
	}

	// Stale requests expire unconsumed, silently.
	if now-st.JumpRequestedAt >= tun.JumpBuffer {
		st.JumpRequested = false
		return false
	}

	// The cooldown blocks consumption, not expiry; the request is
	// retried next tick.
	if now-st.LastJumpAt < tun.JumpCooldown {
		return false
	}

	inCoyote := now-st.LastGroundedAt < tun.CoyoteTime
	canGroundJump := st.OnGround || inCoyote

	switch {
	case canGroundJump && st.JumpCount == 0:
		body.Vel[1] = jumpForce
		st.JumpCount = 1
		st.LastJumpAt = now
		st.JumpRequested = false
		return true
	case !canGroundJump && st.JumpCount < tun.MaxJumps:
		body.Vel[1] = jumpForce * AirJumpForceScale
		st.JumpCount++
		st.LastJumpAt = now
		st.JumpRequested = false
		return false
	}

	// Not consumable this tick; the request stays pending and will be
	// retried until the buffer drops it.
	return false
}
