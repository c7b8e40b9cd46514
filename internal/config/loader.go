package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalConfigPath is checked relative to the working directory.
const LocalConfigPath = "configs/tetris.yaml"

// Load loads the game configuration and validates it.
// Search order: customPath -> ~/.tetris/config.yaml -> ./configs/tetris.yaml -> embedded default.
// Files are overlaid on the defaults, so a file only needs the keys it changes.
// A missing or broken customPath is an error; the other locations are best effort.
func Load(customPath string) (TetrisConfig, error) {
	cfg, _, err := LoadWithSource(customPath)
	return cfg, err
}

// LoadWithSource is Load that also reports where the configuration came from
// ("embedded" when no file was used).
func LoadWithSource(customPath string) (TetrisConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TetrisConfig{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return TetrisConfig{}, "", fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, customPath, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, userCfgPath, cfg.Validate()
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(LocalConfigPath); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, LocalConfigPath, cfg.Validate()
		}
	}

	return defaults(), "embedded", nil
}

// Parse decodes YAML on top of the default configuration.
func Parse(data []byte) (TetrisConfig, error) {
	cfg := defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TetrisConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg TetrisConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// defaults decodes the embedded YAML, falling back to the hardcoded values.
func defaults() TetrisConfig {
	var cfg TetrisConfig
	if err := yaml.Unmarshal(defaultTetrisYAML, &cfg); err != nil {
		return DefaultTetrisConfig()
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", filename)
}
