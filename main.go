package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"

	"isozombie/internal/config"
	"isozombie/internal/game"
	"isozombie/internal/graphics"
	"isozombie/internal/world"
)

func main() {
	// Load configuration
	cfg := config.MustLoadConfig("config.yaml")

	legend := world.DefaultTileLegend()
	if err := legend.LoadTileConfig(cfg.World.TilesFile); err != nil {
		log.Printf("Warning: Failed to load tile config: %v", err)
	}

	md, err := world.NewMapLoader(legend).LoadMap(cfg.World.MapFile)
	if err != nil {
		log.Fatal(err)
	}

	// Settings persist through gdata; without it the game runs memory-only.
	var store *gdata.Manager
	if m, err := gdata.Open(gdata.Config{AppName: cfg.Storage.AppName}); err != nil {
		log.Printf("Warning: settings will not be saved: %v", err)
	} else {
		store = m
	}
	settings := game.NewSettingsStore(store, game.Settings{CameraDistance: cfg.Camera.Distance})

	sprites := graphics.NewSpriteManager("assets/sprites", cfg.Animation.CellSize, int(cfg.World.TileSize))

	ebiten.SetTPS(cfg.GetTPS())
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g := game.NewGame(game.Deps{
		Config:   cfg,
		Map:      md,
		Legend:   legend,
		Sprites:  sprites,
		Settings: settings,
		Seed:     time.Now().UnixNano(),
	})
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
