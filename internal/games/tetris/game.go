package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// End reasons reported in the game over event.
const (
	ReasonQuit         = "quit"
	ReasonSpawnBlocked = "spawn_blocked"
)

// Game is the falling-block simulation.
// It owns the board, the active piece and the counters; all mutation
// happens inside Step, one tick at a time.
type Game struct {
	cfg config.TetrisConfig

	clock core.Clock
	rng   core.RandomSource

	board   *Board
	current Piece
	next    Kind

	score  int
	lines  int
	pieces int
	tick   uint64

	lastFall time.Time
	pausedAt time.Time
	paused   bool
	over     bool
	reason   string

	events []core.Event
}

// New creates a game from a validated configuration.
// Call Reset before the first Step.
func New(cfg config.TetrisConfig) *Game {
	return &Game{cfg: cfg}
}

// Reset starts a fresh game: empty board, zero score, a new active piece
// at the spawn position and the gravity timer anchored at the current time.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.clock = rc.Clock
	if g.clock == nil {
		g.clock = core.SystemClock{}
	}
	g.rng = rc.Rand
	if g.rng == nil {
		g.rng = core.NewRandom(rc.Seed)
	}

	g.board = NewBoard(g.cfg.Board.Width, g.cfg.Board.Height)
	g.score = 0
	g.lines = 0
	g.pieces = 0
	g.tick = 0
	g.paused = false
	g.over = false
	g.reason = ""
	g.events = nil

	g.next = g.randomKind()
	g.lastFall = g.clock.Now()
	g.spawn()
}

// Config returns the configuration the game was created with.
func (g *Game) Config() config.TetrisConfig {
	return g.cfg
}

// Step advances the game by one tick using at most one polled action.
// After game over it changes nothing.
func (g *Game) Step(in core.Poll) core.StepResult {
	g.events = nil
	if g.over {
		return g.result()
	}
	g.tick++

	now := g.clock.Now()

	if in.Ok {
		switch in.Action {
		case core.ActionQuit:
			g.end(ReasonQuit)
			return g.result()
		case core.ActionPause:
			g.togglePause(now)
		default:
			if !g.paused {
				g.handleAction(in.Action)
			}
		}
	}

	if g.paused {
		return g.result()
	}

	if now.Sub(g.lastFall) > g.cfg.Timing.GravityInterval {
		g.applyGravity()
		// The timer restarts whether the piece moved or locked.
		g.lastFall = now
	}

	return g.result()
}

func (g *Game) handleAction(a core.Action) {
	switch a {
	case core.ActionLeft:
		g.tryMove(-1, 0, a)
	case core.ActionRight:
		g.tryMove(1, 0, a)
	case core.ActionDown:
		g.tryMove(0, 1, a)
	case core.ActionRotate:
		g.tryRotate()
	case core.ActionDrop:
		g.hardDrop()
	}
}

// tryMove applies the offset and reverts it if the piece would collide.
func (g *Game) tryMove(dx, dy int, a core.Action) {
	g.current.X += dx
	g.current.Y += dy
	if Collides(g.board, g.current) {
		g.current.X -= dx
		g.current.Y -= dy
		g.emit(core.Event{Kind: core.EventRejected, Action: a})
		return
	}
	g.emit(core.Event{Kind: core.EventMoved, Action: a})
}

// tryRotate rotates clockwise in place. There are no wall kicks: a blocked
// rotation restores the previous matrix.
func (g *Game) tryRotate() {
	prev := g.current.Shape
	g.current.Shape = g.current.RotatedClockwise()
	if Collides(g.board, g.current) {
		g.current.Shape = prev
		g.emit(core.Event{Kind: core.EventRejected, Action: core.ActionRotate})
		return
	}
	g.emit(core.Event{Kind: core.EventRotated, Action: core.ActionRotate})
}

// hardDrop moves the piece to its landing row. Locking is left to gravity,
// so the piece can still slide on the tick it lands.
func (g *Game) hardDrop() {
	y := LandingY(g.board, g.current)
	if y == g.current.Y {
		g.emit(core.Event{Kind: core.EventRejected, Action: core.ActionDrop})
		return
	}
	g.current.Y = y
	g.emit(core.Event{Kind: core.EventDropped, Action: core.ActionDrop})
}

func (g *Game) togglePause(now time.Time) {
	if g.paused {
		// Shift the timer by the paused span so gravity resumes where it left off.
		g.lastFall = g.lastFall.Add(now.Sub(g.pausedAt))
		g.paused = false
		g.emit(core.Event{Kind: core.EventResumed, Action: core.ActionPause})
		return
	}
	g.paused = true
	g.pausedAt = now
	g.emit(core.Event{Kind: core.EventPaused, Action: core.ActionPause})
}

// applyGravity moves the piece down one row, or locks it if it cannot move.
func (g *Game) applyGravity() {
	g.current.Y++
	if !Collides(g.board, g.current) {
		return
	}
	g.current.Y--
	g.lock()
}

// lock merges the active piece, clears full rows, scores them and spawns
// the next piece.
func (g *Game) lock() {
	g.board.Merge(g.current)
	g.pieces++

	cleared := g.board.ClearCompletedLines()
	g.lines += cleared
	g.score += cleared * g.cfg.Scoring.PointsPerLine

	g.emit(core.Event{Kind: core.EventMerged, Lines: cleared, Score: g.score})
	g.spawn()
}

// spawn promotes the queued kind to the active piece at the spawn position.
// A spawn that collides ends the game.
func (g *Game) spawn() {
	g.current = NewPiece(g.next, g.spawnX(), 0)
	g.next = g.randomKind()

	if Collides(g.board, g.current) {
		g.end(ReasonSpawnBlocked)
		return
	}
	g.emit(core.Event{Kind: core.EventSpawned, Detail: g.current.Kind.String()})
}

func (g *Game) spawnX() int {
	return g.cfg.Board.Width/2 - 1
}

func (g *Game) randomKind() Kind {
	return Kind(g.rng.Intn(KindCount) + 1)
}

func (g *Game) end(reason string) {
	g.over = true
	g.reason = reason
	g.paused = false
	g.emit(core.Event{Kind: core.EventGameOver, Score: g.score, Detail: reason})
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// State returns the public counters and flags.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lines:    g.lines,
		GameOver: g.over,
		Paused:   g.paused,
	}
}

// Reason returns why the game ended, or "" while it is running.
func (g *Game) Reason() string {
	return g.reason
}

// View returns a read-only copy of everything the renderer needs.
func (g *Game) View() View {
	v := View{
		Width:       g.board.Width(),
		Height:      g.board.Height(),
		Cells:       g.board.Rows(),
		Piece:       g.current.Clone(),
		Next:        g.next,
		ShowPreview: g.cfg.Features.Preview,
		Score:       g.score,
		Lines:       g.lines,
		Pieces:      g.pieces,
		Paused:      g.paused,
		Over:        g.over,
	}
	if g.cfg.Features.Ghost && !g.over {
		v.ShowGhost = true
		v.GhostY = LandingY(g.board, g.current)
	}
	return v
}

// Render draws the current frame into dst.
func (g *Game) Render(dst *core.Screen) {
	Draw(dst, g.View())
}
