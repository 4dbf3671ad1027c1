// Command block-outrun plays the game in the terminal
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/lixenwraith/block-outrun/audio"
	"github.com/lixenwraith/block-outrun/config"
	"github.com/lixenwraith/block-outrun/core"
	"github.com/lixenwraith/block-outrun/engine"
	"github.com/lixenwraith/block-outrun/input"
	"github.com/lixenwraith/block-outrun/logging"
	"github.com/lixenwraith/block-outrun/terminal"
)

var errNotTerminal = errors.New("stdout is not a terminal")

func main() {
	os.Exit(run())
}

func run() (code int) {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "block-outrun: %v\n", err)
		return 1
	}

	funnel := core.NewFunnel(os.Stderr)
	exit := core.Quit()
	defer func() { code = funnel.Shutdown(exit) }()
	defer core.Recover(&exit)

	// stderr would draw over the game screen
	logFile, err := logging.Setup(cfg.Log.File, cfg.Log.Dir, io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "block-outrun: logging disabled: %v\n", err)
	}
	if logFile != nil {
		funnel.Register("log", logFile)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		exit = core.Fault(errNotTerminal)
		return
	}

	player := audio.Open(cfg.AudioConfig())
	funnel.Register("audio", player)

	screen, err := terminal.OpenScreen()
	if err != nil {
		exit = core.Fault(err)
		return
	}
	funnel.Register("screen", screen)

	rng, seed := engine.NewRand(cfg.Game.Seed)
	log.Printf("game: seed=%d hold_window=%v", seed, cfg.Terminal.HoldWindow)

	tp := engine.NewMonotonicTimeProvider()
	game := engine.NewGame(player, rng, tp, engine.Settings{Volume: cfg.Volume()})
	tracker := input.NewTracker(tp, cfg.Terminal.HoldWindow)
	host := terminal.NewHost(screen, game, tracker, engine.NewFrameClock(tp, nil))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	exit = core.FromError(host.Run(ctx))
	return
}
