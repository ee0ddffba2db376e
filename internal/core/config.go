package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Platform ticks per second (default 30)
	Seed     int64 // RNG seed for outcomes and decoration
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

// GameState is the coarse status a game reports to the platform.
type GameState struct {
	Complete bool // Terminal state reached; only "back to menu" remains
	Busy     bool // A transient transition is running (feedback, spin)
}

// EventKind classifies notable moments reported by a game.
type EventKind string

const (
	EventCompleted EventKind = "completed" // Game reached its final screen
	EventRevealed  EventKind = "revealed"  // A wheel outcome was revealed
	EventProgress  EventKind = "progress"  // A stage or target was cleared
)

// Event is something the platform may want to journal.
type Event struct {
	Kind   EventKind
	Detail string
}

// StepResult is returned by Game.Step() after each platform tick.
type StepResult struct {
	State  GameState
	Events []Event
}
