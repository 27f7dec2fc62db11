package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fruit-arcade/internal/audio"
	"github.com/vovakirdan/fruit-arcade/internal/config"
	"github.com/vovakirdan/fruit-arcade/internal/core"
	"github.com/vovakirdan/fruit-arcade/internal/games/fruitninja"
	"github.com/vovakirdan/fruit-arcade/internal/leaderboard"
	"github.com/vovakirdan/fruit-arcade/internal/storage"
)

// app holds everything a play session needs. close releases it.
type app struct {
	cfg     config.Config
	logger  *log.Logger
	board   *leaderboard.Board
	history *storage.Store
	sounds  fruitninja.Sounds
	player  *audio.Player
	logFile io.Closer
}

// newLogger opens the log destination. The terminal belongs to the game
// while it runs, so logs go to a file unless path is "-".
func newLogger(path string) (*log.Logger, io.Closer, error) {
	opts := log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "fruitninja",
	}
	if path == "-" {
		return log.NewWithOptions(os.Stderr, opts), nil, nil
	}

	expanded, err := config.ExpandHome(path)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(expanded, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return log.NewWithOptions(f, opts), f, nil
}

// loadConfig reads the config file and applies the difficulty flag.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}

// openLeaderboard opens the top-5 file, recreating it when missing or corrupt.
func openLeaderboard(cfg config.Config, logger *log.Logger) (*leaderboard.Board, error) {
	path, err := config.ExpandHome(cfg.Leaderboard.Path)
	if err != nil {
		return nil, err
	}
	board, err := leaderboard.Open(leaderboard.NewFileStore(path, logger))
	if err != nil {
		// The board still holds the default table; only the write failed.
		logger.Error("leaderboard file unavailable", "path", path, "err", err)
	}
	return board, nil
}

// newApp wires configuration, logging, persistence and sound.
func newApp() (*app, error) {
	logger, logFile, err := newLogger(flagLogPath)
	if err != nil {
		return nil, err
	}

	a := &app{logger: logger, logFile: logFile}

	a.cfg, err = loadConfig()
	if err != nil {
		a.close()
		return nil, fmt.Errorf("loading config: %w", err)
	}

	a.board, err = openLeaderboard(a.cfg, logger)
	if err != nil {
		a.close()
		return nil, err
	}

	// Run history is optional; play continues without it.
	if store, err := storage.Open(flagDBPath); err != nil {
		logger.Warn("could not open run history database", "err", err)
	} else {
		a.history = store
	}

	if flagMute {
		a.sounds = nil
	} else {
		p := audio.NewPlayer(logger)
		if err := p.Init(); err != nil {
			a.close()
			return nil, fmt.Errorf("%w (use --mute to play without sound)", err)
		}
		p.Load(a.cfg.Assets)
		a.player = p
		a.sounds = p
	}

	return a, nil
}

// runtime returns the engine runtime config for the configured window.
func (a *app) runtime() core.RuntimeConfig {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  a.cfg.Window.Width,
		ScreenH:  a.cfg.Window.Height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}

// newGame builds the engine with the app's collaborators and display.
func (a *app) newGame(display fruitninja.Display) *fruitninja.Game {
	opts := []fruitninja.Option{
		fruitninja.WithLogger(a.logger),
		fruitninja.WithDisplay(display),
	}
	if a.sounds != nil {
		opts = append(opts, fruitninja.WithSounds(a.sounds))
	}
	if a.history != nil {
		opts = append(opts, fruitninja.WithRecorder(a.history))
	}
	return fruitninja.New(a.cfg, a.runtime(), a.board, opts...)
}

func (a *app) close() {
	if a.player != nil {
		a.player.Close()
	}
	if a.history != nil {
		a.history.Close()
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}
