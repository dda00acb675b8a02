// Package config provides YAML-based configuration loading and difficulty
// management for the Arkanoid game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid")

// ArkanoidConfig contains all configuration for the Arkanoid game.
// Distances are in playfield units, not terminal cells.
type ArkanoidConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Ball       BallConfig       `yaml:"ball"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Blocks     BlocksConfig     `yaml:"blocks"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Layout     string           `yaml:"layout"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the playfield and its fixed obstacles.
type FieldConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	BorderThickness float64 `yaml:"border_thickness"`
	ScoreBarHeight  float64 `yaml:"score_bar_height"`
	DeathRegionTop  float64 `yaml:"death_region_top"`
}

// BallConfig defines how many balls are served and how they move.
type BallConfig struct {
	Count  int     `yaml:"count"`
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
	Color  string  `yaml:"color"`
}

// PaddleConfig defines the paddle's starting rectangle and movement.
type PaddleConfig struct {
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Step        float64 `yaml:"step"`
	BounceSpeed float64 `yaml:"bounce_speed"`
}

// BlocksConfig defines the brick grid used by layouts.
type BlocksConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Columns   int     `yaml:"columns"`
	Rows      int     `yaml:"rows"`
	RightEdge float64 `yaml:"right_edge"`
	Top       float64 `yaml:"top"`
}

// ScoringConfig defines point values.
type ScoringConfig struct {
	BlockPoints int `yaml:"block_points"`
	ClearBonus  int `yaml:"clear_bonus"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to the bounce speed multiplier at max difficulty
}

// Validate reports the first setting that cannot produce a playable game.
func (c ArkanoidConfig) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"field.width", c.Field.Width},
		{"field.height", c.Field.Height},
		{"ball.radius", c.Ball.Radius},
		{"ball.speed", c.Ball.Speed},
		{"paddle.width", c.Paddle.Width},
		{"paddle.height", c.Paddle.Height},
		{"paddle.step", c.Paddle.Step},
		{"paddle.bounce_speed", c.Paddle.BounceSpeed},
		{"blocks.width", c.Blocks.Width},
		{"blocks.height", c.Blocks.Height},
		{"ball.count", float64(c.Ball.Count)},
		{"blocks.columns", float64(c.Blocks.Columns)},
		{"blocks.rows", float64(c.Blocks.Rows)},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, p.name, p.value)
		}
	}

	if c.Field.BorderThickness < 0 || c.Field.ScoreBarHeight < 0 {
		return fmt.Errorf("%w: border and score bar sizes must not be negative", ErrInvalidConfig)
	}
	if c.Field.DeathRegionTop <= 0 || c.Field.DeathRegionTop >= c.Field.Height {
		return fmt.Errorf("%w: field.death_region_top must lie inside the field", ErrInvalidConfig)
	}
	if 2*c.Ball.Radius > min(c.Field.Width, c.Field.Height) {
		return fmt.Errorf("%w: ball.radius %v does not fit the field", ErrInvalidConfig, c.Ball.Radius)
	}
	if c.Scoring.BlockPoints < 0 || c.Scoring.ClearBonus < 0 {
		return fmt.Errorf("%w: scoring values must not be negative", ErrInvalidConfig)
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

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
