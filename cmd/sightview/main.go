package main

import (
	"log"

	"chosenoffset.com/sightline/internal/config"
	ebitenrender "chosenoffset.com/sightline/internal/render/ebiten"
	"chosenoffset.com/sightline/internal/viewer"
	"chosenoffset.com/sightline/internal/world/layout"
)

func main() {
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	gameMap, err := layout.Named(cfg.Layout)
	if err != nil {
		log.Fatalf("Failed to build layout: %v", err)
	}
	if err := cfg.Validate(gameMap); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	opts := viewer.Options{
		CellSize: cfg.Viewer.CellSize,
		Palette:  viewer.DefaultPalette(),
	}
	v, err := viewer.New(gameMap, cfg.Origin.Point(), opts, renderer, inputMgr)
	if err != nil {
		log.Fatalf("Failed to create viewer: %v", err)
	}

	screenWidth, screenHeight := v.Layout(0, 0)
	engine.SetWindowSize(screenWidth, screenHeight)
	engine.SetWindowTitle(cfg.Viewer.Title)
	engine.SetWindowResizable(true)

	log.Printf("Observer at (%d, %d), %d cells visible", v.Origin().X, v.Origin().Y, v.Marked())
	if err := engine.RunGame(v); err != nil {
		log.Fatal(err)
	}
}
