// Package config provides YAML-based game configuration loading and
// difficulty management for the fruit arcade.
package config

import (
	"fmt"
	"time"
)

// Config contains all configuration for the Fruit Ninja game.
type Config struct {
	Window      WindowConfig      `yaml:"window"`
	Gameplay    GameplayConfig    `yaml:"gameplay"`
	Difficulty  DifficultyConfig  `yaml:"difficulty"`
	Assets      AssetsConfig      `yaml:"assets"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
}

// Resolution is a selectable window size in world units.
type Resolution struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// String formats the resolution as "WxH".
func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// WindowConfig defines the initial window and the settings-screen options.
type WindowConfig struct {
	Width       int          `yaml:"width"`
	Height      int          `yaml:"height"`
	Title       string       `yaml:"title"`
	Resolutions []Resolution `yaml:"resolutions"`
}

// GameplayConfig defines session and entity parameters.
type GameplayConfig struct {
	Lives            int      `yaml:"lives"`
	FruitKinds       []string `yaml:"fruit_kinds"`
	FruitSize        float64  `yaml:"fruit_size"`         // Hit-box side in world units
	SpawnOdds        int      `yaml:"spawn_odds"`         // One spawn per SpawnOdds outcomes
	SpawnMargin      int      `yaml:"spawn_margin"`       // Horizontal inset for spawn x
	InitialFallSpeed float64  `yaml:"initial_fall_speed"` // Negative = upward
	LifeAlertMS      int      `yaml:"life_alert_ms"`
}

// LifeAlert returns the red overlay duration after a missed fruit.
func (g GameplayConfig) LifeAlert() time.Duration {
	return time.Duration(g.LifeAlertMS) * time.Millisecond
}

// DifficultyConfig defines the fall-speed ramp.
type DifficultyConfig struct {
	Enabled    bool    `yaml:"enabled"`
	IntervalMS int     `yaml:"interval_ms"` // Time between speed steps
	Step       float64 `yaml:"step"`        // Subtracted from fall speed per step
}

// Interval returns the ramp interval as a duration.
func (d DifficultyConfig) Interval() time.Duration {
	return time.Duration(d.IntervalMS) * time.Millisecond
}

// AssetsConfig lists asset files relative to Dir.
type AssetsConfig struct {
	Dir             string  `yaml:"dir"`
	Font            string  `yaml:"font"`
	FontSize        float64 `yaml:"font_size"`
	WelcomeBackdrop string  `yaml:"welcome_backdrop"`
	ArenaBackdrop   string  `yaml:"arena_backdrop"`
	FruitsDir       string  `yaml:"fruits_dir"`
	SliceSound      string  `yaml:"slice_sound"`
	LifeLostSound   string  `yaml:"life_lost_sound"`
	SliceVolume     float64 `yaml:"slice_volume"`
	LifeLostVolume  float64 `yaml:"life_lost_volume"`
}

// LeaderboardConfig locates the persisted top-5 table.
type LeaderboardConfig struct {
	Path string `yaml:"path"`
}

// Validate checks the values the engine relies on.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Gameplay.Lives <= 0 {
		return fmt.Errorf("config: lives must be positive, got %d", c.Gameplay.Lives)
	}
	if len(c.Gameplay.FruitKinds) == 0 {
		return fmt.Errorf("config: at least one fruit kind is required")
	}
	if c.Gameplay.SpawnOdds <= 0 {
		return fmt.Errorf("config: spawn_odds must be positive, got %d", c.Gameplay.SpawnOdds)
	}
	if c.Gameplay.FruitSize <= 0 {
		return fmt.Errorf("config: fruit_size must be positive, got %v", c.Gameplay.FruitSize)
	}
	if c.Gameplay.InitialFallSpeed >= 0 {
		return fmt.Errorf("config: initial_fall_speed must be negative, got %v", c.Gameplay.InitialFallSpeed)
	}
	for _, r := range append([]Resolution{{Width: c.Window.Width, Height: c.Window.Height}}, c.Window.Resolutions...) {
		if r.Width <= 2*c.Gameplay.SpawnMargin {
			return fmt.Errorf("config: resolution %s too narrow for spawn margin %d", r, c.Gameplay.SpawnMargin)
		}
	}
	if c.Difficulty.Enabled && (c.Difficulty.IntervalMS <= 0 || c.Difficulty.Step <= 0) {
		return fmt.Errorf("config: difficulty needs positive interval and step")
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means "keep the config as is".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// IntervalForPreset returns the ramp interval in milliseconds for a preset.
func IntervalForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 7000
	case DifficultyHard:
		return 3000
	default:
		return 5000
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.IntervalMS = IntervalForPreset(preset)
	}
}
