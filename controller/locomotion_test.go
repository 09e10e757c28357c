package controller

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/milk9111/firstperson/common"
	"github.com/milk9111/firstperson/input"
	"github.com/milk9111/firstperson/physics"
)

func approx(t *testing.T, got, want, tol float32, what string) {
	t.Helper()
	if math32.Abs(got-want) > tol {
		t.Fatalf("%s = %v, want %v (±%v)", what, got, want, tol)
	}
}

func TestMoveDirectionIsUnitLength(t *testing.T) {
	cases := []struct {
		name         string
		moveX, moveZ float32
		yaw          float32
		wantZero     bool
	}{
		{"forward", 0, -1, 0, false},
		{"diagonal_exceeds_unit", 1, -1, 0, false},
		{"oversized_input", 5, -5, 0, false},
		{"diagonal_rotated", 1, 1, 1.3, false},
		{"non_finite_axes", float32(math.NaN()), float32(math.Inf(1)), 0, true},
		{"zero", 0, 0, 0.7, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := &CharacterState{Yaw: tc.yaw}
			snap := input.Snapshot{MoveX: tc.moveX, MoveZ: tc.moveZ}.Sanitize()

			var m LocomotionModel
			dir := m.moveDirection(st, snap)

			if tc.wantZero {
				if dir.Len() != 0 {
					t.Fatalf("expected zero direction, got %v", dir)
				}
				return
			}
			approx(t, dir.Len(), 1, 1e-5, "move direction length")
			if dir.Y() != 0 {
				t.Fatalf("move direction must stay on the horizontal plane, got Y=%v", dir.Y())
			}
		})
	}
}

func TestFirstTickAccelerationFromRest(t *testing.T) {
	// walk 6.0, ground accel 150, direction-change boost 4 from a
	// standstill: one tick at 1/120 moves speed by min(150*4/120, 6) = 5,
	// not straight to the 6.0 target.
	p := DefaultLocomotionParams()
	p.WalkSpeed = 6.0
	p.GroundAccel = 150.0
	p.DirChangeBoost = 4.0

	c := New(p, DefaultJumpTuning())
	b := physics.NewBody(mgl32.Vec3{}, 0.8, 1.8)
	b.OnGround = true

	c.Tick(0, testDT, input.Snapshot{MoveZ: -1}, b)

	approx(t, common.HzLen(b.Vel), 5.0, 1e-3, "speed after one tick")
}

func TestConvergesToTargetSpeedWithoutExceedingCap(t *testing.T) {
	cases := []struct {
		name   string
		sprint bool
		want   float32
	}{
		{"walk", false, DefaultLocomotionParams().WalkSpeed},
		{"sprint", true, DefaultLocomotionParams().RunSpeed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, b := newTestRig()
			b.OnGround = true

			now := 0.0
			for i := 0; i < 600; i++ {
				c.Tick(now, testDT, input.Snapshot{MoveZ: -1, Sprint: tc.sprint}, b)
				now += float64(testDT)
				if sp := common.HzLen(b.Vel); sp > c.Params().MaxSpeed+1e-4 {
					t.Fatalf("tick %d: speed %v exceeds max %v", i, sp, c.Params().MaxSpeed)
				}
			}
			approx(t, common.HzLen(b.Vel), tc.want, 1e-2, "converged speed")
		})
	}
}

func TestIdleFrictionDecaysToExactZero(t *testing.T) {
	c, b := newTestRig()
	b.OnGround = true
	b.Vel = mgl32.Vec3{7, 0, 3}

	prev := common.HzLen(b.Vel)
	now := 0.0
	for i := 0; i < 2000 && common.HzLen(b.Vel) > 0; i++ {
		c.Tick(now, testDT, input.Snapshot{}, b)
		now += float64(testDT)

		sp := common.HzLen(b.Vel)
		if sp > prev {
			t.Fatalf("tick %d: speed increased from %v to %v while idle", i, prev, sp)
		}
		// Once speed falls under the stop threshold, the next tick snaps
		// it to exactly zero instead of creeping asymptotically.
		if prev < c.Params().StopSpeed && sp != 0 {
			t.Fatalf("tick %d: residual speed %v below stop threshold was not snapped to zero", i, sp)
		}
		prev = sp
	}

	if b.Vel.X() != 0 || b.Vel.Z() != 0 {
		t.Fatalf("horizontal velocity should decay to exactly zero, got %v", b.Vel)
	}
}

func TestMomentumRegimeOnSharpDirectionChange(t *testing.T) {
	p := DefaultLocomotionParams()
	c := New(p, DefaultJumpTuning())
	b := physics.NewBody(mgl32.Vec3{}, 0.8, 1.8)
	b.OnGround = true

	// Tick once heading +X so the model records the previous direction.
	b.Vel = mgl32.Vec3{8, 0, 0}
	c.Tick(0, testDT, input.Snapshot{MoveX: 1}, b)

	// Restore the carried speed, then flip the input to -X.
	b.Vel = mgl32.Vec3{8, 0, 0}
	now := float64(testDT)
	c.Tick(now, testDT, input.Snapshot{MoveX: -1}, b)

	cur := mgl32.Vec3{8, 0, 0}
	target := mgl32.Vec3{-p.WalkSpeed, 0, 0}
	want := cur.Mul(p.MomentumRetention).Add(target.Mul(1 - p.MomentumRetention))

	approx(t, b.Vel.X(), want.X(), 1e-4, "blended X velocity")
	approx(t, b.Vel.Z(), want.Z(), 1e-4, "blended Z velocity")

	// The plain accelerated regime would have pulled much harder toward
	// the new target; the blend must keep most of the carried momentum.
	if b.Vel.X() < 6 {
		t.Fatalf("momentum regime should retain carried speed, got X velocity %v", b.Vel.X())
	}
}

func TestGroundJumpForwardBoost(t *testing.T) {
	c, b := newTestRig()
	p := c.Params()
	b.OnGround = true

	c.Tick(0, testDT, input.Snapshot{MoveZ: -1, JumpPressed: true, JumpPressedAt: 0}, b)

	if b.Vel.Y() != p.JumpForce {
		t.Fatalf("vertical velocity = %v, want %v", b.Vel.Y(), p.JumpForce)
	}
	// First-tick acceleration (5.0) plus the one-shot forward boost.
	wantSpeed := float32(5.0) + p.JumpForwardBoost*p.WalkSpeed
	approx(t, common.HzLen(b.Vel), wantSpeed, 1e-3, "boosted horizontal speed")

	// The boost is one-shot: the next tick accelerates normally from the
	// boosted speed without adding another boost.
	b.OnGround = false
	before := common.HzLen(b.Vel)
	c.Tick(float64(testDT), testDT, input.Snapshot{MoveZ: -1}, b)
	if sp := common.HzLen(b.Vel); sp > before {
		t.Fatalf("no second boost expected; speed went from %v to %v", before, sp)
	}
}

func TestSpeedCapPreservesDirection(t *testing.T) {
	c, b := newTestRig()
	p := c.Params()
	b.OnGround = true
	b.Vel = mgl32.Vec3{20, 0, 0}

	c.Tick(0, testDT, input.Snapshot{MoveX: 1}, b)

	approx(t, common.HzLen(b.Vel), p.MaxSpeed, 1e-4, "capped speed")
	if b.Vel.X() <= 0 || b.Vel.Z() != 0 {
		t.Fatalf("cap must preserve direction, got %v", b.Vel)
	}
}
