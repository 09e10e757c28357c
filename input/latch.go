package input

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const stickDeadzone = 0.2

// Latch turns ebiten's polled keyboard/mouse/gamepad state into per-tick
// snapshots. Press edges are accumulated between Take calls so a press is
// never dropped even if a frame is skipped.
type Latch struct {
	moveX, moveZ float32
	sprint       bool

	jumpPending   bool
	jumpPendingAt float64

	lookDX, lookDY float32
	prevCX, prevCY int
	cursorPrimed   bool
}

func NewLatch() *Latch {
	return &Latch{}
}

// Update polls the devices once per frame. now is the current tick
// timestamp in seconds and is recorded with any jump press edge.
func (l *Latch) Update(now float64) {
	moveX, moveZ := float32(0), float32(0)
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		moveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		moveZ -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		moveZ += 1
	}

	sprint := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	jumpPressed := inpututil.IsKeyJustPressed(ebiten.KeySpace)

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > stickDeadzone {
			moveX = float32(lx)
			moveZ = float32(ly)
		}
		jumpPressed = jumpPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		sprint = sprint || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftStick)
	}

	l.moveX = moveX
	l.moveZ = moveZ
	l.sprint = sprint
	if jumpPressed {
		l.jumpPending = true
		l.jumpPendingAt = now
	}

	cx, cy := ebiten.CursorPosition()
	if l.cursorPrimed {
		l.lookDX += float32(cx - l.prevCX)
		l.lookDY += float32(cy - l.prevCY)
	}
	l.prevCX, l.prevCY = cx, cy
	l.cursorPrimed = true
}

// Take returns the latched snapshot and clears the one-shot edges. The
// held axes and sprint state survive across calls.
func (l *Latch) Take() Snapshot {
	s := Snapshot{
		MoveX:         l.moveX,
		MoveZ:         l.moveZ,
		Sprint:        l.sprint,
		JumpPressed:   l.jumpPending,
		JumpPressedAt: l.jumpPendingAt,
	}
	l.jumpPending = false
	return s.Sanitize()
}

// LookDelta returns and clears the accumulated cursor movement.
func (l *Latch) LookDelta() (dx, dy float32) {
	dx, dy = l.lookDX, l.lookDY
	l.lookDX, l.lookDY = 0, 0
	return dx, dy
}
