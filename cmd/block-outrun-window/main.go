// Command block-outrun-window plays the game in a desktop window
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/lixenwraith/block-outrun/config"
	"github.com/lixenwraith/block-outrun/core"
	"github.com/lixenwraith/block-outrun/engine"
	"github.com/lixenwraith/block-outrun/logging"
	"github.com/lixenwraith/block-outrun/window"
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "block-outrun-window: %v\n", err)
		return 1
	}

	funnel := core.NewFunnel(os.Stderr)
	exit := core.Quit()
	defer func() { code = funnel.Shutdown(exit) }()
	defer core.Recover(&exit)

	logFile, err := logging.Setup(cfg.Log.File, cfg.Log.Dir, os.Stderr)
	if err != nil {
		log.Printf("logging: %v", err)
	}
	if logFile != nil {
		funnel.Register("log", logFile)
	}

	player := window.OpenAudio(cfg.AudioConfig())
	funnel.Register("audio", player)

	rng, seed := engine.NewRand(cfg.Game.Seed)
	log.Printf("game: seed=%d scale=%d", seed, cfg.Window.Scale)

	game := engine.NewGame(player, rng, engine.NewMonotonicTimeProvider(), engine.Settings{Volume: cfg.Volume()})
	exit = core.FromError(window.Run(window.NewGame(game), cfg.Window.Scale))
	return
}
