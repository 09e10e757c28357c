package physics

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// DefaultGravity is the downward acceleration applied to airborne
	// bodies, in units per second squared.
	DefaultGravity = 24.0
	// DefaultTerminalSpeed caps downward fall speed.
	DefaultTerminalSpeed = 60.0

	axisEpsilon = 1e-5
)

// World integrates bodies against a flat floor plane and a set of static
// axis-aligned platform boxes. Collision response is a per-axis clip in
// Y-X-Z order; it recomputes each body's OnGround flag every step, before
// the movement controller runs.
type World struct {
	Gravity       float32
	TerminalSpeed float32
	FloorY        float32

	boxes []cube.BBox
}

func NewWorld() *World {
	return &World{
		Gravity:       DefaultGravity,
		TerminalSpeed: DefaultTerminalSpeed,
	}
}

// AddBox registers a static collider.
func (w *World) AddBox(b cube.BBox) {
	w.boxes = append(w.boxes, b)
}

// Boxes returns the registered static colliders.
func (w *World) Boxes() []cube.BBox {
	return w.boxes
}

// Step advances a body by dt seconds: gravity, axis-clipped movement
// against the static boxes and the floor plane, and ground recomputation.
func (w *World) Step(b *Body, dt float32) {
	if dt <= 0 {
		return
	}

	b.Vel[1] -= w.Gravity * dt
	if b.Vel[1] < -w.TerminalSpeed {
		b.Vel[1] = -w.TerminalSpeed
	}

	delta := b.Vel.Mul(dt)
	bb := b.BBox()
	nearby := w.nearbyBoxes(bb.Extend(delta))

	dy := delta.Y()
	for _, box := range nearby {
		dy = bb.YOffset(box, dy)
	}
	// The floor plane clips downward movement like an unbounded box top.
	if floor := w.FloorY - bb.Min().Y(); dy < floor {
		dy = floor
	}
	bb = bb.Translate(mgl32.Vec3{0, dy, 0})

	dx := delta.X()
	for _, box := range nearby {
		dx = bb.XOffset(box, dx)
	}
	bb = bb.Translate(mgl32.Vec3{dx, 0, 0})

	dz := delta.Z()
	for _, box := range nearby {
		dz = bb.ZOffset(box, dz)
	}

	landed := delta.Y() < dy-axisEpsilon
	b.OnGround = landed || (b.Vel.Y() <= 0 && bb.Min().Y() <= w.FloorY+axisEpsilon)

	if dx != delta.X() {
		b.Vel[0] = 0
	}
	if dy != delta.Y() {
		b.Vel[1] = 0
	}
	if dz != delta.Z() {
		b.Vel[2] = 0
	}

	b.Pos = b.Pos.Add(mgl32.Vec3{dx, dy, dz})
}

func (w *World) nearbyBoxes(swept cube.BBox) []cube.BBox {
	out := make([]cube.BBox, 0, len(w.boxes))
	for _, box := range w.boxes {
		if box.IntersectsWith(swept) {
			out = append(out, box)
		}
	}
	return out
}
