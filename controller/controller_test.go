package controller

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/milk9111/firstperson/input"
)

func TestPitchStaysClamped(t *testing.T) {
	c, _ := newTestRig()

	c.Rotate(0, 10)
	if p := c.State().Pitch; p >= math.Pi/2 {
		t.Fatalf("pitch %v not clamped below +π/2", p)
	}
	c.Rotate(0, -20)
	if p := c.State().Pitch; p <= -math.Pi/2 {
		t.Fatalf("pitch %v not clamped above -π/2", p)
	}
}

func TestNonFiniteInputIsDefendedAtBoundary(t *testing.T) {
	c, b := newTestRig()
	b.OnGround = true
	b.Vel = mgl32.Vec3{3, 0, 0}

	c.Tick(0, testDT, input.Snapshot{
		MoveX: float32(math.NaN()),
		MoveZ: float32(math.Inf(-1)),
	}, b)

	for i, v := range b.Vel {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			t.Fatalf("velocity component %d is non-finite: %v", i, v)
		}
	}
}

func TestApplyImpulseIsOneShot(t *testing.T) {
	c, b := newTestRig()
	b.OnGround = true

	c.ApplyImpulse(mgl32.Vec3{5, 0, 0})
	c.Tick(0, testDT, input.Snapshot{MoveX: 1}, b)
	if b.Vel.X() <= 0 {
		t.Fatalf("impulse should push the body, got %v", b.Vel)
	}

	// The impulse is consumed; with idle input friction takes over and
	// speed only decays from here.
	before := b.Vel.X()
	c.Tick(float64(testDT), testDT, input.Snapshot{}, b)
	if b.Vel.X() > before {
		t.Fatalf("impulse applied twice: %v -> %v", before, b.Vel.X())
	}
}

func TestStateMirrorsBodyAfterTick(t *testing.T) {
	c, b := newTestRig()
	b.OnGround = true
	b.Pos = mgl32.Vec3{1, 2, 3}

	c.Tick(0, testDT, input.Snapshot{MoveZ: -1}, b)

	st := c.State()
	if st.Pos != b.Pos {
		t.Fatalf("state position %v does not mirror body %v", st.Pos, b.Pos)
	}
	if st.Vel != b.Vel {
		t.Fatalf("state velocity %v does not mirror body %v", st.Vel, b.Vel)
	}
	if !st.OnGround {
		t.Fatalf("state should mirror the ground flag")
	}
}

func TestNegativeDeltaTimeIsTreatedAsZero(t *testing.T) {
	c, b := newTestRig()
	b.OnGround = true

	c.Tick(0, -testDT, input.Snapshot{MoveZ: -1}, b)
	if sp := b.Vel.Len(); sp != 0 {
		t.Fatalf("negative dt must not move velocity, got speed %v", sp)
	}
}
