package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const arkanoidFile = "arkanoid.yaml"

// LoadArkanoid loads the Arkanoid configuration.
// Search order: customPath -> ~/.arkanoid/configs/arkanoid.yaml -> ./configs/arkanoid.yaml -> embedded default.
// Files are decoded over the defaults, so they only need the keys they change.
func LoadArkanoid(customPath string) (ArkanoidConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ArkanoidConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := ParseArkanoid(data)
		if err != nil {
			return ArkanoidConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(arkanoidFile), filepath.Join("configs", arkanoidFile)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := ParseArkanoid(data); err == nil {
				return cfg, nil
			}
		}
	}

	cfg, err := ParseArkanoid(defaultArkanoidYAML)
	if err != nil {
		return DefaultArkanoidConfig(), nil
	}
	return cfg, nil
}

// ParseArkanoid decodes YAML over DefaultArkanoidConfig and validates the result.
func ParseArkanoid(data []byte) (ArkanoidConfig, error) {
	cfg := DefaultArkanoidConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ArkanoidConfig{}, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return ArkanoidConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arkanoid", "configs", filename)
}

// ApplyArkanoidPreset modifies the config based on a difficulty preset.
func ApplyArkanoidPreset(cfg *ArkanoidConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Ball.Count = 5
		cfg.Ball.Speed = 4
		cfg.Paddle.Width = 140
	case DifficultyHard:
		cfg.Ball.Count = 2
		cfg.Ball.Speed = 6
		cfg.Paddle.Width = 70
	}
}
