package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
// The result is validated.
func Load() (*Config, error) {
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "NeonMaze")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "NeonMaze")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "neonmaze")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "neonmaze")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
// A file that lists enemies replaces the default enemy list.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	for i := range cfg.Enemies {
		fillCharacterDefaults(&cfg.Enemies[i])
	}
	fillCharacterDefaults(&cfg.Player)
	return nil
}

// fillCharacterDefaults fills fields a partial YAML entry left zero.
func fillCharacterDefaults(cc *CharacterConfig) {
	if cc.Scale == 0 {
		cc.Scale = 0.8
	}
	if cc.Radius == 0 {
		cc.Radius = 0.4
	}
	if cc.Collider == "" {
		cc.Collider = "circle"
	}
	if cc.Mesh == "" && cc.Name != "" {
		cc.Mesh = cc.Name + ".obj"
	}
}
