package controller

import (
	"fmt"

	"github.com/milk9111/firstperson/common"
)

// LocomotionParams is the flat bundle of movement tuning constants. It is
// read-only during a session; hot-tuning swaps the whole bundle between
// ticks rather than mutating it in place.
type LocomotionParams struct {
	WalkSpeed float32 `yaml:"walk_speed"`
	RunSpeed  float32 `yaml:"run_speed"`
	MaxSpeed  float32 `yaml:"max_speed"`

	GroundAccel float32 `yaml:"ground_accel"`
	AirAccel    float32 `yaml:"air_accel"`

	GroundFriction float32 `yaml:"ground_friction"`
	AirFriction    float32 `yaml:"air_friction"`

	// MomentumRetention is the fraction of existing velocity kept when a
	// sharp direction change lands while moving faster than
	// MinMomentumSpeed.
	MomentumRetention float32 `yaml:"momentum_retention"`
	// DirChangeBoost multiplies acceleration when starting from a near
	// standstill or while the direction-change flag is armed.
	DirChangeBoost float32 `yaml:"dir_change_boost"`
	// AirControl scales acceleration while airborne.
	AirControl float32 `yaml:"air_control"`

	JumpForce float32 `yaml:"jump_force"`
	// JumpForwardBoost, times WalkSpeed, is added along the move direction
	// when a ground jump is initiated.
	JumpForwardBoost float32 `yaml:"jump_forward_boost"`

	// DirChangeCos is the dot-product threshold below which an input
	// direction change arms the momentum regime.
	DirChangeCos float32 `yaml:"dir_change_cos"`
	// DirChangeWindow is how long, in seconds, the direction-change flag
	// stays armed after it was last set.
	DirChangeWindow float64 `yaml:"dir_change_window"`

	// MinMomentumSpeed separates "standing start" from "carrying speed".
	MinMomentumSpeed float32 `yaml:"min_momentum_speed"`
	// StopSpeed is the negligible speed under which idle friction snaps
	// horizontal velocity to exactly zero.
	StopSpeed float32 `yaml:"stop_speed"`
	// FastSpeed is the speed above which the friction coefficient halves,
	// so carried momentum bleeds off more slowly.
	FastSpeed float32 `yaml:"fast_speed"`
}

// JumpTuning gathers the jump state machine windows. All windows are in
// seconds.
type JumpTuning struct {
	JumpCooldown float64 `yaml:"jump_cooldown"`
	JumpBuffer   float64 `yaml:"jump_buffer"`
	CoyoteTime   float64 `yaml:"coyote_time"`
	MaxJumps     int     `yaml:"max_jumps"`
}

func DefaultLocomotionParams() LocomotionParams {
	return LocomotionParams{
		WalkSpeed:         6.0,
		RunSpeed:          10.0,
		MaxSpeed:          14.0,
		GroundAccel:       150.0,
		AirAccel:          60.0,
		GroundFriction:    8.0,
		AirFriction:       1.5,
		MomentumRetention: 0.9,
		DirChangeBoost:    4.0,
		AirControl:        0.4,
		JumpForce:         8.0,
		JumpForwardBoost:  0.2,
		DirChangeCos:      -0.1,
		DirChangeWindow:   0.1,
		MinMomentumSpeed:  4.0,
		StopSpeed:         0.05,
		FastSpeed:         8.0,
	}
}

func DefaultJumpTuning() JumpTuning {
	return JumpTuning{
		JumpCooldown: 0.1,
		JumpBuffer:   0.2,
		CoyoteTime:   0.15,
		MaxJumps:     2,
	}
}

// Validate rejects bundles that would make the movement math degenerate.
func (p LocomotionParams) Validate() error {
	fields := []struct {
		name string
		v    float32
	}{
		{"walk_speed", p.WalkSpeed},
		{"run_speed", p.RunSpeed},
		{"max_speed", p.MaxSpeed},
		{"ground_accel", p.GroundAccel},
		{"air_accel", p.AirAccel},
		{"jump_force", p.JumpForce},
	}
	for _, f := range fields {
		if !common.Finite(f.v) || f.v <= 0 {
			return fmt.Errorf("locomotion params: %s must be a positive finite number, got %v", f.name, f.v)
		}
	}
	if !common.Finite(p.GroundFriction, p.AirFriction, p.MomentumRetention, p.DirChangeBoost,
		p.AirControl, p.JumpForwardBoost, p.DirChangeCos, p.MinMomentumSpeed, p.StopSpeed, p.FastSpeed) {
		return fmt.Errorf("locomotion params: non-finite value in bundle")
	}
	if p.MomentumRetention < 0 || p.MomentumRetention > 1 {
		return fmt.Errorf("locomotion params: momentum_retention must be in [0, 1], got %v", p.MomentumRetention)
	}
	if p.DirChangeCos < -1 || p.DirChangeCos > 1 {
		return fmt.Errorf("locomotion params: dir_change_cos must be in [-1, 1], got %v", p.DirChangeCos)
	}
	if p.DirChangeWindow < 0 {
		return fmt.Errorf("locomotion params: dir_change_window must not be negative, got %v", p.DirChangeWindow)
	}
	if p.MaxSpeed < p.RunSpeed {
		return fmt.Errorf("locomotion params: max_speed %v is below run_speed %v", p.MaxSpeed, p.RunSpeed)
	}
	return nil
}

func (t JumpTuning) Validate() error {
	if t.JumpCooldown < 0 || t.JumpBuffer < 0 || t.CoyoteTime < 0 {
		return fmt.Errorf("jump tuning: windows must not be negative (cooldown=%v buffer=%v coyote=%v)",
			t.JumpCooldown, t.JumpBuffer, t.CoyoteTime)
	}
	// MaxJumps of zero is a valid tuning: it disables air jumps entirely.
	if t.MaxJumps < 0 {
		return fmt.Errorf("jump tuning: max_jumps must not be negative, got %d", t.MaxJumps)
	}
	return nil
}
