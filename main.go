package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/firstperson/config"
)

func main() {
	tuningPath := flag.String("tuning", "tuning.yaml", "movement tuning file (hot-reloaded while running)")
	writeTuning := flag.Bool("write-tuning", false, "write the default tuning file and exit")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *writeTuning {
		if err := config.Save(*tuningPath, config.Default()); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", *tuningPath)
		return
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	game := NewGame(*tuningPath)
	defer game.Close()

	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("firstperson playground")
	// Captured cursor drives the mouse look; P pauses and releases it.
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
