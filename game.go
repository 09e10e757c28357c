package main

import (
	"log"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/firstperson/config"
	"github.com/milk9111/firstperson/controller"
	"github.com/milk9111/firstperson/input"
	"github.com/milk9111/firstperson/physics"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	lookSensitivity = 0.0025
)

var spawnPos = mgl32.Vec3{0, 2, 0}

// Game is the playtest harness: one character, a handful of platforms,
// and a live-reloaded tuning file.
type Game struct {
	world *physics.World
	body  *physics.Body
	ctrl  *controller.Controller
	latch *input.Latch

	watcher *config.Watcher

	now    float64
	paused bool
}

func NewGame(tuningPath string) *Game {
	tuning, err := config.Load(tuningPath)
	if err != nil {
		log.Printf("using default tuning (%v)", err)
		tuning = config.Default()
	}

	world := physics.NewWorld()
	for _, box := range testCourse() {
		world.AddBox(box)
	}

	g := &Game{
		world: world,
		body:  physics.NewBody(spawnPos, 0.8, 1.8),
		ctrl:  controller.New(tuning.Locomotion, tuning.Jump),
		latch: input.NewLatch(),
	}

	if w, err := config.Watch(tuningPath); err != nil {
		log.Printf("tuning hot-reload disabled: %v", err)
	} else {
		g.watcher = w
	}
	return g
}

// testCourse is a small set of platforms for exercising jumps, ledges
// and momentum turns.
func testCourse() []cube.BBox {
	return []cube.BBox{
		cube.Box(-4, 0, -14, 4, 1, -6),
		cube.Box(6, 0, -22, 12, 2, -16),
		cube.Box(-12, 0, -24, -6, 3, -18),
		cube.Box(-2, 0, -32, 2, 4, -28),
	}
}

func (g *Game) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))
	g.now += float64(dt)

	g.drainTuning()

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
		if g.paused {
			ebiten.SetCursorMode(ebiten.CursorModeVisible)
		} else {
			ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		}
	}

	g.latch.Update(g.now)
	if g.paused {
		// Drop look movement accumulated while paused.
		g.latch.LookDelta()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.respawn()
	}

	dx, dy := g.latch.LookDelta()
	g.ctrl.Rotate(dx*lookSensitivity, -dy*lookSensitivity)

	// The physics layer recomputes position and ground contact first;
	// the controller then decides this tick's velocity.
	g.world.Step(g.body, dt)
	g.ctrl.Tick(g.now, dt, g.latch.Take(), g.body)

	if g.body.Pos.Y() < -30 {
		g.respawn()
	}
	return nil
}

func (g *Game) drainTuning() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case t := <-g.watcher.Events:
			g.ctrl.Retune(t.Locomotion, t.Jump)
			log.Printf("tuning reloaded")
		case err := <-g.watcher.Errors:
			log.Printf("tuning reload failed: %v", err)
		default:
			return
		}
	}
}

func (g *Game) respawn() {
	g.body.Pos = spawnPos
	g.body.Vel = mgl32.Vec3{}
	g.body.OnGround = false
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
