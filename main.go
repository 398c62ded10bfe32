package main

import (
	_ "embed"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"fightkokaton/assets"
	"fightkokaton/game"
)

//go:embed config.yaml
var defaultConfig []byte

func main() {
	configPath := flag.String("config", "", "YAML config file (default: built-in config.yaml)")
	assetDir := flag.String("assets", "", "directory with the original fig/ images (overrides assets.dir)")
	flag.Parse()

	config, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *assetDir != "" {
		config.Assets.Dir = *assetDir
	}

	sprites, err := assets.Load(config)
	if err != nil {
		log.Fatalf("Failed to load assets: %v", err)
	}

	g := game.NewGame(config, sprites, game.NewKeyboardInput(config.Keys), game.NewRand())

	ebiten.SetWindowSize(config.Field.Width, config.Field.Height)
	ebiten.SetWindowTitle(config.Title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(config.TPS)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// loadConfig reads path, or the embedded defaults when path is empty
func loadConfig(path string) (game.Config, error) {
	if path == "" {
		return game.ParseConfig(defaultConfig)
	}
	log.Printf("Using config %s", path)
	return game.LoadConfig(path)
}
