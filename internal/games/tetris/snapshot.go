package tetris

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Score   int
	Lines   int
	Pieces  int
	Kind    Kind
	Shape   string // active matrix, '#' and '.'
	X, Y    int
	Next    Kind
	Filled  int    // settled cells
	Board   string // settled cells, one letter per cell
	State   GameStateType
	EndedBy string
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.over:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:    g.tick,
		Score:   g.score,
		Lines:   g.lines,
		Pieces:  g.pieces,
		Kind:    g.current.Kind,
		Shape:   g.current.Shape.String(),
		X:       g.current.X,
		Y:       g.current.Y,
		Next:    g.next,
		Filled:  g.board.FilledCount(),
		Board:   g.board.String(),
		State:   state,
		EndedBy: g.reason,
	}
}
