package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW    int   // Screen width in characters
	ScreenH    int   // Screen height in characters
	TickRate   int   // Simulation ticks per second (default 60)
	Seed       int64 // RNG seed for deterministic gameplay
	StartLevel int   // Level to start on (1-based, 0 means 1)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		Seed:       0, // 0 means use current time in platform layer
		StartLevel: 1,
	}
}

// TickDuration returns the simulated time covered by one tick.
func (c RuntimeConfig) TickDuration() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level number
	Lives    int  // Remaining lives
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
