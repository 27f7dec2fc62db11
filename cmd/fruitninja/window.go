package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-arcade/internal/assets"
	"github.com/vovakirdan/fruit-arcade/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window sized to the configured resolution.
The resolution can be changed from the SETTINGS screen.

Examples:
  fruitninja window
  fruitninja window --difficulty easy
  fruitninja window --config ./my-fruitninja.yaml`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(cmd *cobra.Command, args []string) {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer a.close()

	cfg := a.cfg
	cache := assets.NewCache(cfg.Assets, int(cfg.Gameplay.FruitSize), cfg.Window.Width, cfg.Window.Height, a.logger)
	cache.Preload(cfg.Gameplay.FruitKinds)

	display := window.NewDisplay(cache)
	game := a.newGame(display)
	face := window.LoadFace(cfg.Assets.AssetPath(cfg.Assets.Font), cfg.Assets.FontSize, a.logger)

	err = window.Run(window.New(game, display, face, a.logger), window.Options{
		Title:    cfg.Window.Title,
		TickRate: flagFPS,
	})
	if err != nil {
		a.logger.Error("window session failed", "err", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
