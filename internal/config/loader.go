package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTetris loads the Tetris configuration.
// Search order: customPath -> ~/.termtris/configs/tetris.yaml ->
// ./configs/tetris.yaml -> embedded default. Every result is normalized,
// and any unreadable or unparsable file falls through to the next
// candidate, so the game always starts with a playable config.
func LoadTetris(customPath string) TetrisConfig {
	var cfg TetrisConfig

	if customPath != "" {
		if data, err := os.ReadFile(customPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				cfg.Normalize()
				return cfg
			}
		}
	}

	if userCfgPath := userConfigPath("tetris.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				cfg.Normalize()
				return cfg
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "tetris.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			cfg.Normalize()
			return cfg
		}
	}

	if err := yaml.Unmarshal(defaultTetrisYAML, &cfg); err != nil {
		return DefaultTetrisConfig() // Fallback to hardcoded if embed fails
	}
	cfg.Normalize()
	return cfg
}

// userConfigPath returns the path to a user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".termtris", "configs", filename)
}
