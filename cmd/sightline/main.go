package main

import (
	"log"
	"os"

	"chosenoffset.com/sightline/internal/config"
	"chosenoffset.com/sightline/internal/core/sight"
	"chosenoffset.com/sightline/internal/render/text"
	"chosenoffset.com/sightline/internal/world/grid"
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

	origin := cfg.Origin.Point()
	border := gameMap.Border()
	log.Printf("Tracing %q (%dx%d) from (%d, %d) to %d border cells",
		cfg.Layout, gameMap.Width(), gameMap.Height(), origin.X, origin.Y, len(border))

	sight.Sweep(gameMap, origin)
	log.Printf("%d cells visible", gameMap.Count(grid.Marked))

	if err := text.Dump(os.Stdout, gameMap, cfg.Output.Delimiter); err != nil {
		log.Fatalf("Failed to print grid: %v", err)
	}
}
