package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fruit-arcade/internal/assets"
	"github.com/vovakirdan/fruit-arcade/internal/platform/tui"
)

func runPlay(cmd *cobra.Command, args []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: stdout is not a terminal; try 'fruitninja window'")
		os.Exit(1)
	}

	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer a.close()

	cfg := a.cfg
	cache := assets.NewCache(cfg.Assets, int(cfg.Gameplay.FruitSize), cfg.Window.Width, cfg.Window.Height, a.logger)
	cache.Preload(cfg.Gameplay.FruitKinds)

	game := a.newGame(cache)
	a.logger.Info("starting terminal session", "fps", flagFPS)

	if err := tui.Run(game, tui.NewRenderer(cache), flagFPS); err != nil {
		a.logger.Error("terminal session failed", "err", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
