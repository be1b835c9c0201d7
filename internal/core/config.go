package core

// RuntimeConfig is what the platform hands a game on every Reset.
type RuntimeConfig struct {
	ScreenW  int   // Terminal columns
	ScreenH  int   // Terminal rows
	TickRate int   // Fixed steps per second
	Seed     int64 // Zero lets the platform pick one from the clock
}

// DefaultConfig is an 80x24 terminal stepped at 60 Hz.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// TickSeconds returns the length of one step, falling back to 60 Hz.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(c.TickRate)
}

// GameState is the part of a game the platform watches after each step.
type GameState struct {
	Score    int
	GameOver bool // The round ended and its score is final
	Paused   bool
	Exit     bool // The player left; the platform tears the game down
}

// StepResult wraps the state reported by Game.Step.
type StepResult struct {
	State GameState
}
