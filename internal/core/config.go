package core

// RuntimeConfig contains configuration passed to the game at initialization.
// Clock and Rand are optional; nil selects the wall clock and a source seeded
// from Seed, so tests can inject both for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int          // Screen width in characters
	ScreenH int          // Screen height in characters
	Seed    int64        // RNG seed for deterministic gameplay
	Clock   Clock        // Time source for gravity; nil means SystemClock
	Rand    RandomSource // Piece randomizer; nil means NewRandom(Seed)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lines    int  // Total lines cleared
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventKind classifies something that happened during a tick.
type EventKind int

const (
	EventMoved EventKind = iota
	EventRotated
	EventRejected
	EventDropped
	EventMerged
	EventSpawned
	EventPaused
	EventResumed
	EventGameOver
)

// String returns a short name used in log lines.
func (k EventKind) String() string {
	switch k {
	case EventMoved:
		return "moved"
	case EventRotated:
		return "rotated"
	case EventRejected:
		return "rejected"
	case EventDropped:
		return "dropped"
	case EventMerged:
		return "merged"
	case EventSpawned:
		return "spawned"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a single simulation event. Fields not relevant to Kind are zero.
type Event struct {
	Kind   EventKind
	Action Action // input that caused Moved/Rotated/Rejected/Dropped
	Lines  int    // rows removed by a merge
	Score  int    // score after the event
	Detail string // piece kind for Spawned, reason for GameOver
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
