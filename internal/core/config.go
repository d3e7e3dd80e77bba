package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic generation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic question generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TicksFor converts seconds into simulation ticks at this config's rate.
func (c RuntimeConfig) TicksFor(seconds float64) uint64 {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	if seconds <= 0 {
		return 0
	}
	return uint64(seconds*float64(rate) + 0.5)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the session has ended
	Paused   bool // Whether the game is paused
}

// Attempt reports one counted answer so the platform can record it.
type Attempt struct {
	Kind    string        // question kind, e.g. "plot"
	Level   int           // level number within the session
	Verdict string        // "correct", "incorrect", "partial-slope", ...
	Elapsed time.Duration // time spent on the question
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State    GameState
	Attempts []Attempt // answers counted during this tick
}
