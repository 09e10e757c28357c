package main

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/firstperson/common"
)

// The playground draws two debug projections instead of a real 3D view:
// a top-down X/Z panel on the left and a Z/Y elevation panel on the
// right, both centered on the character.
const (
	panelW      = baseWidth / 2
	pixelsPerU  = 12.0
	velScale    = 0.5 * pixelsPerU
	headingSize = 2.0 * pixelsPerU
)

var (
	panelBG   = color.RGBA{0x14, 0x16, 0x1a, 0xff}
	gridColor = color.RGBA{0x24, 0x28, 0x30, 0xff}
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(panelBG)
	vector.StrokeLine(screen, panelW, 0, panelW, baseHeight, 1, gridColor, false)

	g.drawTopDown(screen)
	g.drawElevation(screen)
	g.drawReadout(screen)
}

func (g *Game) drawTopDown(screen *ebiten.Image) {
	cx, cy := float32(panelW)/2, float32(baseHeight)/2
	toScreen := func(x, z float32) (float32, float32) {
		return cx + (x-g.body.Pos.X())*pixelsPerU, cy + (z-g.body.Pos.Z())*pixelsPerU
	}

	for _, box := range g.world.Boxes() {
		x0, y0 := toScreen(box.Min().X(), box.Min().Z())
		x1, y1 := toScreen(box.Max().X(), box.Max().Z())
		if x1 < 0 || x0 > panelW || y1 < 0 || y0 > baseHeight {
			continue
		}
		vector.DrawFilledRect(screen, x0, y0, x1-x0, y1-y0, colornames.Darkslategray, false)
	}

	// Heading from yaw (yaw zero faces -Z, i.e. up on this panel).
	forward, _ := g.ctrl.State().Basis()
	hx := cx + forward.X()*headingSize
	hy := cy + forward.Z()*headingSize
	vector.StrokeLine(screen, cx, cy, hx, hy, 2, colornames.Gold, true)

	// Horizontal velocity vector.
	vx := cx + g.body.Vel.X()*velScale
	vz := cy + g.body.Vel.Z()*velScale
	vector.StrokeLine(screen, cx, cy, vx, vz, 1, colornames.Skyblue, true)

	bodyColor := colornames.Crimson
	if g.body.OnGround {
		bodyColor = colornames.Limegreen
	}
	vector.DrawFilledCircle(screen, cx, cy, g.body.Width/2*pixelsPerU, bodyColor, true)
}

func (g *Game) drawElevation(screen *ebiten.Image) {
	cx, cy := float32(panelW)+float32(panelW)/2, float32(baseHeight)/2
	toScreen := func(z, y float32) (float32, float32) {
		return cx + (z-g.body.Pos.Z())*pixelsPerU, cy - (y-g.body.Pos.Y())*pixelsPerU
	}

	// Floor plane.
	_, fy := toScreen(0, g.world.FloorY)
	vector.StrokeLine(screen, panelW, fy, baseWidth, fy, 1, colornames.Darkslategray, false)

	for _, box := range g.world.Boxes() {
		x0, y1 := toScreen(box.Min().Z(), box.Min().Y())
		x1, y0 := toScreen(box.Max().Z(), box.Max().Y())
		if x1 < panelW || x0 > baseWidth {
			continue
		}
		vector.DrawFilledRect(screen, x0, y0, x1-x0, y1-y0, colornames.Darkslategray, false)
	}

	x0, y0 := toScreen(g.body.Pos.Z()-g.body.Width/2, g.body.Pos.Y()+g.body.Height)
	x1, y1 := toScreen(g.body.Pos.Z()+g.body.Width/2, g.body.Pos.Y())
	vector.DrawFilledRect(screen, x0, y0, x1-x0, y1-y0, colornames.Crimson, true)

	// Pitch indicator from the eye position.
	eyeX, eyeY := toScreen(g.body.Pos.Z(), g.body.Pos.Y()+g.body.Height*0.9)
	pitch := g.ctrl.State().Pitch
	vector.StrokeLine(screen, eyeX, eyeY,
		eyeX-math32.Cos(pitch)*headingSize, eyeY-math32.Sin(pitch)*headingSize,
		2, colornames.Gold, true)
}

func (g *Game) drawReadout(screen *ebiten.Image) {
	st := g.ctrl.State()
	mode := "air"
	if st.OnGround {
		mode = "ground"
	}
	if g.paused {
		mode = "paused (P resumes)"
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS %.1f  |  %s\nspeed %.2f  vy %.2f  jumps %d\nyaw %.2f pitch %.2f\nWASD move, Space jump, Shift sprint, R respawn, P pause",
		ebiten.ActualFPS(),
		mode,
		common.HzLen(g.body.Vel),
		g.body.Vel.Y(),
		st.JumpCount,
		st.Yaw, st.Pitch,
	))
}
