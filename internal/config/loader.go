package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// localConfigPath is the project-local override, relative to the working directory.
const localConfigPath = "configs/wallbreaker.yaml"

// Load loads the wallbreaker configuration.
// Search order: customPath -> ~/.wallbreaker/config.yaml -> ./configs/wallbreaker.yaml -> embedded default.
// Keys missing from a file keep their default value.
func Load(customPath string) (WallbreakerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return WallbreakerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return WallbreakerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(localConfigPath); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultWallbreakerYAML)
	if err != nil {
		return DefaultWallbreakerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parse(data []byte) (WallbreakerConfig, error) {
	cfg := DefaultWallbreakerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return WallbreakerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return WallbreakerConfig{}, err
	}
	return cfg, nil
}

// Marshal renders cfg as YAML, for `wallbreaker config` style dumps.
func Marshal(cfg WallbreakerConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to a file in the user config directory,
// or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wallbreaker", filename)
}

// UserDir returns ~/.wallbreaker, or "." when home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".wallbreaker")
}
