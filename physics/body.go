package physics

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// Body is a character-sized rigid body. Pos is the center of the feet.
// The controller owns Vel's horizontal components (and Y on a jump); the
// world owns Pos, gravity and OnGround.
type Body struct {
	Pos mgl32.Vec3
	Vel mgl32.Vec3

	Width  float32
	Height float32

	OnGround bool
}

func NewBody(pos mgl32.Vec3, width, height float32) *Body {
	return &Body{Pos: pos, Width: width, Height: height}
}

// BBox returns the body's bounding box translated to its position.
func (b *Body) BBox() cube.BBox {
	half := b.Width / 2
	return cube.Box(
		b.Pos.X()-half, b.Pos.Y(), b.Pos.Z()-half,
		b.Pos.X()+half, b.Pos.Y()+b.Height, b.Pos.Z()+half,
	)
}
