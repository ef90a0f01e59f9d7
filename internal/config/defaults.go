package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the hardcoded default configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Gravity: GravityConfig{
			IntervalMS: 500,
		},
		Scoring: ScoringConfig{
			PointsPerLine: 100,
		},
		Randomizer: RandomizerUniform,
		Storage: StorageConfig{
			Path: "~/.tetris/replays.db",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
