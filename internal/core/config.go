package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to lay themselves out on the available screen.
type RuntimeConfig struct {
	ScreenW int // Screen width in characters
	ScreenH int // Screen height in characters
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Status   string // Human-readable status line
	GameOver bool   // Whether the current match has ended
}

// Event describes something that happened during a step.
// KeyVals are structured logging pairs.
type Event struct {
	Msg     string
	KeyVals []any
	Detail  bool // Routine event, logged at debug level
}

// StepResult is returned by Game.Step() after each input frame.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
