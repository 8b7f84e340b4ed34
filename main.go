package main

import (
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/ConnorK747/RetroGame/client"
	"github.com/ConnorK747/RetroGame/utils"
	"github.com/ConnorK747/RetroGame/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/segmentio/ksuid"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Llongfile)

	configPath := "config.toml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}
	cfg, loaded, err := utils.LoadConfig(configPath)
	if err != nil {
		log.Fatal(err)
	}
	if !loaded {
		log.Printf("%s not found, using defaults", configPath)
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	level := world.GenerateLevel(rand.New(rand.NewSource(seed)), cfg.Level, cfg.Physics.ViewportHeight)
	player := world.NewPlayer(ksuid.New().String(), cfg.Player)
	w := world.NewWorld(cfg.Physics, level, player, float64(cfg.UI.Viewport.X))
	log.Printf("player %s, seed %d, %d ground sections, flag at x=%0.0f", player.ID, seed, len(level.Ground), level.Flag.X)

	assets, err := client.LoadAssets(cfg.Audio)
	if err != nil {
		// The game is playable without sound.
		log.Printf("audio disabled: %v", err)
		assets = &client.Assets{}
	}

	ebiten.SetWindowSize(cfg.UI.Resolution.X, cfg.UI.Resolution.Y)
	ebiten.SetWindowTitle(cfg.UI.Title)

	if err := ebiten.RunGame(client.NewGame(w, assets, cfg.UI)); err != nil {
		log.Fatal(err)
	}
}
