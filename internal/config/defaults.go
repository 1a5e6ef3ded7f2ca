package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Playfield: Playfield{
			Width:  700,
			Height: 900,
		},
		Bird: BirdConfig{
			X:           100,
			StartY:      450,
			Radius:      13,
			Width:       70,
			Height:      70,
			FlapImpulse: -8,
		},
		Obstacles: ObstacleConfig{
			Width:     80,
			GapHeight: 320,
			MinHeight: 40,
		},
		Difficulty: DifficultyConfig{
			ScoreStep:     100,
			MaxMultiplier: 2.0,
			Default:       DifficultyEasy,
			Presets: map[Difficulty]Preset{
				DifficultyEasy:   {SpawnInterval: 250, Speed: 2.5, Gravity: 0.2},
				DifficultyMedium: {SpawnInterval: 200, Speed: 3.5, Gravity: 0.25},
				DifficultyHard:   {SpawnInterval: 160, Speed: 5, Gravity: 0.35},
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
