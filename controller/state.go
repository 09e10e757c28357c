package controller

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// pitchLimit keeps the pitch strictly inside (-π/2, π/2) so the view
// basis never degenerates at the poles.
const pitchLimit = math32.Pi/2 - 0.01

// CharacterState is the character's authoritative movement state. The
// physics body is the source of truth for position and velocity;
// Pos and Vel mirror it after every tick.
type CharacterState struct {
	Pos mgl32.Vec3
	Vel mgl32.Vec3

	Yaw   float32
	Pitch float32

	OnGround  bool
	Sprinting bool

	// JumpCount runs 0..MaxJumps and resets to zero on the tick a landing
	// edge is detected.
	JumpCount      int
	LastJumpAt     float64
	LastGroundedAt float64

	JumpRequested   bool
	JumpRequestedAt float64
}

func newCharacterState() CharacterState {
	return CharacterState{
		LastJumpAt:     math.Inf(-1),
		LastGroundedAt: math.Inf(-1),
	}
}

// Rotate applies a look delta, wrapping yaw and clamping pitch.
func (s *CharacterState) Rotate(dYaw, dPitch float32) {
	s.Yaw = math32.Mod(s.Yaw+dYaw, 2*math32.Pi)
	s.Pitch += dPitch
	if s.Pitch > pitchLimit {
		s.Pitch = pitchLimit
	}
	if s.Pitch < -pitchLimit {
		s.Pitch = -pitchLimit
	}
}

// Basis returns the horizontal-plane forward and right unit vectors
// derived from yaw alone. Pitch never affects movement; looking up or
// down keeps the character on the horizontal plane. Yaw zero faces -Z.
func (s *CharacterState) Basis() (forward, right mgl32.Vec3) {
	sin, cos := math32.Sin(s.Yaw), math32.Cos(s.Yaw)
	forward = mgl32.Vec3{-sin, 0, -cos}
	right = mgl32.Vec3{cos, 0, -sin}
	return forward, right
}

// LookDirection returns the full 3D view direction, for camera placement.
func (s *CharacterState) LookDirection() mgl32.Vec3 {
	cp := math32.Cos(s.Pitch)
	return mgl32.Vec3{
		-math32.Sin(s.Yaw) * cp,
		math32.Sin(s.Pitch),
		-math32.Cos(s.Yaw) * cp,
	}
}
