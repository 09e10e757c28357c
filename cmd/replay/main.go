// Command replay runs an input script through the movement simulation
// headlessly and prints the trajectory as CSV. Useful for comparing
// tuning files without launching the playground.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/milk9111/firstperson/common"
	"github.com/milk9111/firstperson/config"
	"github.com/milk9111/firstperson/controller"
	"github.com/milk9111/firstperson/input"
	"github.com/milk9111/firstperson/physics"
)

// scriptStep holds the input for a run of ticks. Jump is a press edge
// on the step's first tick only.
type scriptStep struct {
	Ticks  int     `yaml:"ticks"`
	MoveX  float32 `yaml:"move_x"`
	MoveZ  float32 `yaml:"move_z"`
	Sprint bool    `yaml:"sprint"`
	Jump   bool    `yaml:"jump"`
	Yaw    float32 `yaml:"yaw"`
	Pitch  float32 `yaml:"pitch"`
}

type script struct {
	Spawn [3]float32   `yaml:"spawn"`
	Boxes [][6]float32 `yaml:"boxes"`
	Steps []scriptStep `yaml:"steps"`
}

func loadScript(path string) (script, error) {
	var s script
	data, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse script %s: %w", path, err)
	}
	if len(s.Steps) == 0 {
		return s, fmt.Errorf("script %s has no steps", path)
	}
	return s, nil
}

func main() {
	var (
		scriptPath string
		tuningPath string
		tps        int
	)
	flag.StringVar(&scriptPath, "script", "", "input script yaml (required)")
	flag.StringVar(&tuningPath, "tuning", "", "movement tuning file (defaults when empty)")
	flag.IntVar(&tps, "tps", 60, "simulation ticks per second")
	flag.Parse()

	if scriptPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	if tps <= 0 {
		log.Fatalf("tps must be positive, got %d", tps)
	}

	s, err := loadScript(scriptPath)
	if err != nil {
		log.Fatal(err)
	}

	tuning := config.Default()
	if tuningPath != "" {
		tuning, err = config.Load(tuningPath)
		if err != nil {
			log.Fatalf("load tuning: %v", err)
		}
	}

	world := physics.NewWorld()
	for _, b := range s.Boxes {
		world.AddBox(cube.Box(b[0], b[1], b[2], b[3], b[4], b[5]))
	}
	body := physics.NewBody(mgl32.Vec3{s.Spawn[0], s.Spawn[1], s.Spawn[2]}, 0.8, 1.8)
	ctrl := controller.New(tuning.Locomotion, tuning.Jump)

	dt := float32(1.0 / float64(tps))
	now := 0.0
	tick := 0

	fmt.Println("tick,time,x,y,z,vx,vy,vz,speed,on_ground,jumps")
	for _, step := range s.Steps {
		ctrl.State().Yaw = step.Yaw
		ctrl.State().Pitch = step.Pitch
		for i := 0; i < step.Ticks; i++ {
			now += float64(dt)
			tick++

			snap := input.Snapshot{
				MoveX:  step.MoveX,
				MoveZ:  step.MoveZ,
				Sprint: step.Sprint,
			}
			if step.Jump && i == 0 {
				snap.JumpPressed = true
				snap.JumpPressedAt = now
			}

			world.Step(body, dt)
			ctrl.Tick(now, dt, snap, body)

			st := ctrl.State()
			fmt.Printf("%d,%.4f,%.4f,%.4f,%.4f,%.4f,%.4f,%.4f,%.4f,%t,%d\n",
				tick, now,
				st.Pos.X(), st.Pos.Y(), st.Pos.Z(),
				st.Vel.X(), st.Vel.Y(), st.Vel.Z(),
				common.HzLen(st.Vel),
				st.OnGround, st.JumpCount)
		}
	}
}
