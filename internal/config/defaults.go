package config

import (
	_ "embed"
)

//go:embed defaults/arkanoid.yaml
var defaultArkanoidYAML []byte

// DefaultArkanoidConfig returns the classic 800x600 Arkanoid setup.
func DefaultArkanoidConfig() ArkanoidConfig {
	return ArkanoidConfig{
		Field: FieldConfig{
			Width:           800,
			Height:          600,
			BorderThickness: 5,
			ScoreBarHeight:  20,
			DeathRegionTop:  595,
		},
		Ball: BallConfig{
			Count:  3,
			Radius: 5,
			Speed:  5,
			Color:  "red",
		},
		Paddle: PaddleConfig{
			X:           400,
			Y:           590,
			Width:       100,
			Height:      10,
			Step:        5,
			BounceSpeed: 5,
		},
		Blocks: BlocksConfig{
			Width:     50,
			Height:    15,
			Columns:   12,
			Rows:      6,
			RightEdge: 795,
			Top:       150,
		},
		Scoring: ScoringConfig{
			BlockPoints: 5,
			ClearBonus:  100,
		},
		Layout: "classic",
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.6,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultArkanoidYAML
}
