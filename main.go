package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/flagpole/config"
	"github.com/automoto/flagpole/fonts"
	"github.com/automoto/flagpole/scenes"
	"github.com/automoto/flagpole/systems"
	"github.com/automoto/flagpole/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewPlatformerScene(g, ui.NewTouchControls(config.Touch.Enabled))
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout keeps a fixed logical canvas; Ebiten scales it to the window and
// letterboxes the rest.
func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	tuningPath := flag.String("tuning", "", "optional YAML file overriding gameplay values")
	debug := flag.Bool("debug", false, "draw collider outlines and frame rates")
	touch := flag.Bool("touch", false, "show on-screen touch controls from the start")
	flag.Parse()

	if *tuningPath != "" {
		tuning, err := config.LoadTuning(*tuningPath)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		tuning.Apply()
		systems.SetSFXVolume(config.Audio.DefaultSFXVol)
	}
	if *debug {
		config.Debug.Hitboxes = true
	}
	if *touch {
		config.Touch.Enabled = true
	}

	if err := fonts.LoadDefaults(config.HUD.ScoreSize, config.HUD.LivesSize, config.HUD.BannerSize, config.HUD.SignSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Flagpole")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
