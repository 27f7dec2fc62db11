package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(defaultYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	def := DefaultConfig()

	if cfg.Window.Width != def.Window.Width || cfg.Window.Height != def.Window.Height {
		t.Errorf("window = %dx%d, expected %dx%d", cfg.Window.Width, cfg.Window.Height, def.Window.Width, def.Window.Height)
	}
	if len(cfg.Window.Resolutions) != 3 {
		t.Errorf("expected 3 resolutions, got %d", len(cfg.Window.Resolutions))
	}
	if cfg.Gameplay.SpawnOdds != 41 || cfg.Gameplay.Lives != 3 {
		t.Errorf("gameplay = %+v", cfg.Gameplay)
	}
	if cfg.Difficulty.Step != 1.05 || cfg.Difficulty.IntervalMS != 5000 {
		t.Errorf("difficulty = %+v", cfg.Difficulty)
	}
	if cfg.Assets.SliceVolume != 0.25 || cfg.Assets.LifeLostVolume != 0.4 {
		t.Errorf("assets volumes = %v / %v", cfg.Assets.SliceVolume, cfg.Assets.LifeLostVolume)
	}
}

func TestLoadCustomPathPartialOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("gameplay:\n  lives: 5\n  fruit_kinds: [kiwi]\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Gameplay.Lives != 5 {
		t.Errorf("Lives = %d, expected 5", cfg.Gameplay.Lives)
	}
	if len(cfg.Gameplay.FruitKinds) != 1 || cfg.Gameplay.FruitKinds[0] != "kiwi" {
		t.Errorf("FruitKinds = %v, expected [kiwi]", cfg.Gameplay.FruitKinds)
	}
	if cfg.Gameplay.SpawnOdds != 41 {
		t.Errorf("unspecified SpawnOdds should keep default, got %d", cfg.Gameplay.SpawnOdds)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("gameplay:\n  lives: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected validation error for zero lives")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no kinds", func(c *Config) { c.Gameplay.FruitKinds = nil }},
		{"zero odds", func(c *Config) { c.Gameplay.SpawnOdds = 0 }},
		{"positive speed", func(c *Config) { c.Gameplay.InitialFallSpeed = 1 }},
		{"narrow resolution", func(c *Config) { c.Window.Resolutions = []Resolution{{Width: 150, Height: 100}} }},
		{"bad ramp", func(c *Config) { c.Difficulty.Step = 0 }},
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		enabled  bool
		interval int
	}{
		{"", true, 5000},
		{DifficultyEasy, true, 7000},
		{DifficultyNormal, true, 5000},
		{DifficultyHard, true, 3000},
		{DifficultyFixed, false, 5000},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.IntervalMS != tc.interval {
				t.Errorf("IntervalMS = %d, expected %d", cfg.Difficulty.IntervalMS, tc.interval)
			}
			if cfg.Difficulty.Step != 1.05 {
				t.Errorf("Step = %v, presets must not change the step", cfg.Difficulty.Step)
			}
		})
	}

	if _, err := ParsePreset("insane"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestAssetPaths(t *testing.T) {
	a := DefaultConfig().Assets
	if got := a.FruitPath("apple"); got != filepath.Join("assets", "fruits", "apple.png") {
		t.Errorf("FruitPath = %q", got)
	}
	if got := a.AssetPath("/abs/x.png"); got != "/abs/x.png" {
		t.Errorf("absolute paths should pass through, got %q", got)
	}
}
