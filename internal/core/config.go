package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to size the grid and for deterministic generation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Platform ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic puzzles

	// Progress is the number of puzzles solved so far. The host owns and
	// persists it; games only read it to scale difficulty.
	Progress int
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a puzzle session.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Moves  int  // Moves that changed the grid
	Solved bool // Whether the grid is complete
	Paused bool // Whether input is suspended
}

// StepResult is returned by Game.Step() after each platform tick.
type StepResult struct {
	State GameState

	// Solve is set only on the tick the grid became complete.
	Solve *SolveInfo
}

// SolveInfo describes a puzzle at the moment it was solved.
type SolveInfo struct {
	Width        int
	Height       int
	Moves        int
	Ticks        uint64 // Ticks between dealing and solving
	JumbleChance float64
}
