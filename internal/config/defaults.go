package config

import (
	_ "embed"
)

//go:embed defaults/fruitninja.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded default configuration.
// It mirrors defaults/fruitninja.yaml and is used if the embed cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  1400,
			Height: 800,
			Title:  "Fruit Ninja",
			Resolutions: []Resolution{
				{Width: 1280, Height: 720},
				{Width: 1400, Height: 800},
				{Width: 1920, Height: 1080},
			},
		},
		Gameplay: GameplayConfig{
			Lives:            3,
			FruitKinds:       []string{"watermelon", "apple", "banana"},
			FruitSize:        100,
			SpawnOdds:        41,
			SpawnMargin:      100,
			InitialFallSpeed: -1,
			LifeAlertMS:      200,
		},
		Difficulty: DifficultyConfig{
			Enabled:    true,
			IntervalMS: 5000,
			Step:       1.05,
		},
		Assets: AssetsConfig{
			Dir:             "assets",
			Font:            "fonts/comic.ttf",
			FontSize:        30,
			WelcomeBackdrop: "background/WelcomeScreen.jpg",
			ArenaBackdrop:   "background/background.jpg",
			FruitsDir:       "fruits",
			SliceSound:      "sounds/slash.mp3",
			LifeLostSound:   "sounds/losing_life.mp3",
			SliceVolume:     0.25,
			LifeLostVolume:  0.4,
		},
		Leaderboard: LeaderboardConfig{
			Path: "best_scores.json",
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for writing a starter file.
func DefaultYAML() []byte {
	return defaultYAML
}
