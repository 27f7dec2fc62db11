package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the user and local directories.
const FileName = "fruitninja.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.fruitninja/configs/fruitninja.yaml ->
// ./configs/fruitninja.yaml -> embedded default.
// Only an explicit customPath produces an error; unreadable or invalid files
// found on the search path are skipped.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := parse(defaultYAML); err == nil {
		return cfg, nil
	}
	return DefaultConfig(), nil // Fallback to hardcoded if embed fails
}

// parse overlays YAML onto the defaults so partial files keep sane values,
// then validates the result.
func parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir, err := HomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}

// HomeDir returns ~/.fruitninja, the root for user configs, logs and the
// run history database.
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot resolve home directory: %w", err)
	}
	return filepath.Join(home, ".fruitninja"), nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// AssetPath joins an asset-relative path with the configured asset directory.
func (a AssetsConfig) AssetPath(rel string) string {
	if rel == "" || filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(a.Dir, rel)
}

// FruitPath returns the image path for a fruit kind.
func (a AssetsConfig) FruitPath(kind string) string {
	return a.AssetPath(filepath.Join(a.FruitsDir, kind+".png"))
}
