//go:build ebiten

package main

import (
	"errors"
	"log"

	"lifebox/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/integrii/flaggy"
)

func main() {
	cfg := app.NewConfig()
	parser := flaggy.NewParser("lifebox")
	parser.Description = "Game of Life sprite viewer"
	cfg.Register(parser)
	if err := parser.Parse(); err != nil {
		log.Fatal(err)
	}

	driver, err := app.NewDriver(cfg)
	if err != nil {
		log.Fatalf("building entity: %v", err)
	}

	game := app.New(driver, cfg.Scale)
	side := driver.Entity.Dims.PixelWidth * cfg.Scale

	ebiten.SetWindowTitle("lifebox — " + driver.Entity.Meta.Pattern)
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(side, side)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
