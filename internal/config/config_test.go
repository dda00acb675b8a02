package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultArkanoidConfigIsValid(t *testing.T) {
	if err := DefaultArkanoidConfig().Validate(); err != nil {
		t.Fatalf("DefaultArkanoidConfig().Validate() = %v", err)
	}
}

func TestEmbeddedDefaultsMatchCode(t *testing.T) {
	cfg, err := ParseArkanoid(DefaultYAML())
	if err != nil {
		t.Fatalf("ParseArkanoid(embedded) error = %v", err)
	}
	if cfg != DefaultArkanoidConfig() {
		t.Errorf("embedded YAML = %+v\nexpected %+v", cfg, DefaultArkanoidConfig())
	}
}

func TestLoadArkanoidCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("ball:\n  count: 1\n  speed: 8\nlayout: wall\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadArkanoid(path)
	if err != nil {
		t.Fatalf("LoadArkanoid() error = %v", err)
	}
	if cfg.Ball.Count != 1 || cfg.Ball.Speed != 8 || cfg.Layout != "wall" {
		t.Errorf("overrides not applied: %+v", cfg.Ball)
	}
	if cfg.Ball.Radius != 5 || cfg.Paddle.Width != 100 {
		t.Error("unspecified keys should keep their defaults")
	}
}

func TestLoadArkanoidErrors(t *testing.T) {
	if _, err := LoadArkanoid(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadArkanoid(missing) should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("field:\n  width: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadArkanoid(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadArkanoid(negative width) error = %v, expected ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ArkanoidConfig)
	}{
		{"zero width", func(c *ArkanoidConfig) { c.Field.Width = 0 }},
		{"no balls", func(c *ArkanoidConfig) { c.Ball.Count = 0 }},
		{"oversized ball", func(c *ArkanoidConfig) { c.Ball.Radius = 400 }},
		{"death region outside", func(c *ArkanoidConfig) { c.Field.DeathRegionTop = 700 }},
		{"negative points", func(c *ArkanoidConfig) { c.Scoring.BlockPoints = -5 }},
		{"zero paddle step", func(c *ArkanoidConfig) { c.Paddle.Step = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultArkanoidConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplyArkanoidPreset(t *testing.T) {
	cfg := DefaultArkanoidConfig()
	ApplyArkanoidPreset(&cfg, DifficultyHard)
	if cfg.Ball.Count != 2 || cfg.Paddle.Width != 70 || !cfg.Difficulty.Enabled {
		t.Errorf("hard preset not applied: %+v", cfg)
	}
	if cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("InitialLevel = %v, expected 0.7", cfg.Difficulty.InitialLevel)
	}

	cfg = DefaultArkanoidConfig()
	ApplyArkanoidPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
	if cfg.Ball.Count != 3 {
		t.Error("fixed preset should keep the classic setup")
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("ParsePreset(insane) should fail")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 1},
	}
	dm := NewDifficultyManager(cfg)

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.5},
		{50, 0.75},
		{100, 1},
		{500, 1},
	}
	for _, tc := range tests {
		if got := dm.Level(tc.score, 0); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}

	if got := dm.Speed(5, 100, 0); math.Abs(got-10) > 1e-9 {
		t.Errorf("Speed(5) at max level = %v, expected 10", got)
	}

	off := NewDifficultyManager(DefaultArkanoidConfig().Difficulty)
	if off.IsEnabled() {
		t.Error("default difficulty should be disabled")
	}
	if got := off.Speed(5, 1000, 1000); got != 5 {
		t.Errorf("disabled Speed(5) = %v, expected 5", got)
	}
}
