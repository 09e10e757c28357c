package input

import "github.com/milk9111/firstperson/common"

// Snapshot is the per-tick view of the player's movement intent. It is
// produced once at the start of a simulation tick and treated as a
// consistent point-in-time value for the whole tick.
type Snapshot struct {
	// MoveX/MoveZ are the raw move axes in [-1, 1]. Negative Z is forward.
	// The pair may exceed unit length before sanitization (e.g. diagonal
	// keyboard input); the locomotion model normalizes it.
	MoveX float32
	MoveZ float32

	Sprint bool

	// JumpPressed is the press edge latched since the previous tick.
	// JumpPressedAt is the tick timestamp, in seconds, the edge was seen.
	JumpPressed   bool
	JumpPressedAt float64
}

// Zero reports whether the snapshot carries no move intent on either axis.
func (s Snapshot) Zero() bool {
	return s.MoveX == 0 && s.MoveZ == 0
}

// Sanitize defends the controller boundary against a misbehaving input
// layer: non-finite axes become zero and each axis is clamped to [-1, 1].
func (s Snapshot) Sanitize() Snapshot {
	if !common.Finite(s.MoveX) {
		s.MoveX = 0
	}
	if !common.Finite(s.MoveZ) {
		s.MoveZ = 0
	}
	s.MoveX = common.Clamp(s.MoveX, -1, 1)
	s.MoveZ = common.Clamp(s.MoveZ, -1, 1)
	return s
}
