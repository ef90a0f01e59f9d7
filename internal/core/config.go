package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW int           // Screen width in characters
	ScreenH int           // Screen height in characters
	Gravity time.Duration // Interval between gravity ticks
	Seed    int64         // RNG seed for deterministic gameplay
}

// DefaultGravity is the fixed fall cadence.
const DefaultGravity = 500 * time.Millisecond

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Gravity: DefaultGravity,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// Running reports whether gravity should be applied.
func (s GameState) Running() bool {
	return !s.GameOver && !s.Paused
}

// StepResult is returned by Game.Step() and Game.Handle() after each command.
type StepResult struct {
	State GameState
	// Lines is the number of rows cleared by this command (0 for most commands).
	Lines int
	// Locked is true when the command locked the active piece into the board.
	Locked bool
}
