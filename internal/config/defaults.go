package config

import (
	_ "embed"
)

//go:embed defaults/dino.yaml
var defaultDinoYAML []byte

// DefaultDinoConfig returns the default runner configuration.
// It mirrors defaults/dino.yaml and is the last fallback of the loader.
func DefaultDinoConfig() DinoConfig {
	return DinoConfig{
		World: WorldConfig{
			Width:   800,
			Height:  450,
			GroundY: 350,
		},
		Runner: RunnerConfig{
			X:              50,
			Width:          60,
			StandingHeight: 70,
			DuckingHeight:  35,
			Gravity:        0.8,
			JumpVelocity:   -15,
		},
		Obstacles: ObstacleConfig{
			SpawnX:       800,
			MinGap:       500,
			CullMargin:   50,
			AerialChance: 0.4,
			AerialOffset: 50,
			PassMargin:   10,
			Ground: []SizeEntry{
				{Width: 30, Height: 60},
				{Width: 50, Height: 50},
				{Width: 40, Height: 70},
			},
			Aerial: []SizeEntry{
				{Width: 40, Height: 40},
				{Width: 50, Height: 30},
			},
		},
		Scroll: ScrollConfig{
			BaseSpeed:    300,
			MaxSpeed:     720,
			Acceleration: 60,
		},
		Collision: CollisionConfig{
			RunnerInsetX: 10,
			RunnerInsetY: 5,
		},
		Scoring: ScoringConfig{
			MsPerPoint: 100,
		},
		Assets: AssetConfig{
			Runner: "runner",
			Ground: "cactus",
			Aerial: "bird",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultDinoYAML
}
