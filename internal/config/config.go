// Package config provides YAML-based game configuration loading with
// embedded defaults and environment overrides.
package config

import (
	"fmt"
	"time"
)

// Randomizer names accepted in configuration.
const (
	RandomizerUniform = "uniform"
	RandomizerBag     = "bag"
)

// TetrisConfig contains all configuration for the game.
type TetrisConfig struct {
	Gravity    GravityConfig `yaml:"gravity"`
	Scoring    ScoringConfig `yaml:"scoring"`
	Randomizer string        `yaml:"randomizer"` // Mode preselected in the menu: "uniform" or "bag"
	Storage    StorageConfig `yaml:"storage"`
}

// GravityConfig defines the fall cadence.
type GravityConfig struct {
	IntervalMS int `yaml:"interval_ms"`
}

// ScoringConfig defines how cleared rows are scored.
type ScoringConfig struct {
	PointsPerLine int `yaml:"points_per_line"`
}

// StorageConfig locates the replay database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// Interval returns the gravity cadence as a duration.
func (c TetrisConfig) Interval() time.Duration {
	return time.Duration(c.Gravity.IntervalMS) * time.Millisecond
}

// Validate checks that the configuration can drive a game.
func (c TetrisConfig) Validate() error {
	if c.Gravity.IntervalMS <= 0 {
		return fmt.Errorf("config: gravity.interval_ms must be positive, got %d", c.Gravity.IntervalMS)
	}
	if c.Scoring.PointsPerLine <= 0 {
		return fmt.Errorf("config: scoring.points_per_line must be positive, got %d", c.Scoring.PointsPerLine)
	}
	switch c.Randomizer {
	case RandomizerUniform, RandomizerBag:
	default:
		return fmt.Errorf("config: unknown randomizer %q", c.Randomizer)
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("config: storage.path must not be empty")
	}
	return nil
}
