package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// Model is the Bubble Tea model driving one game session.
type Model struct {
	game     *tetris.Game
	cfg      config.TetrisConfig
	runtime  core.RuntimeConfig
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	queue    *InputQueue
	logger   *log.Logger
	state    core.GameState
	width    int
	height   int
	holding  bool // final screen is up, input ignored
	quitting bool

	screenshotDir string
}

// NewModel creates a Bubble Tea model for the given game.
// A nil logger discards log output.
func NewModel(game *tetris.Game, rc core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg := game.Config()
	w, h := tetris.CanvasSize(cfg.Board.Width, cfg.Board.Height)

	return Model{
		game:          game,
		cfg:           cfg,
		runtime:       rc,
		screen:        core.NewScreen(w, h),
		keys:          NewKeyMap(cfg.Controls),
		help:          help.New(),
		queue:         NewInputQueue(DefaultQueueLimit),
		logger:        logger,
		width:         rc.ScreenW,
		height:        rc.ScreenH,
		screenshotDir: defaultScreenshotDir(),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.runtime)
	m.logger.Info("game started",
		"board", fmt.Sprintf("%dx%d", m.cfg.Board.Width, m.cfg.Board.Height),
		"seed", m.runtime.Seed,
	)
	return tickCmd(m.cfg.Timing.PollInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case holdDoneMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey queues game actions. Interrupt exits at once, without the hold.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Interrupt):
		m.logger.Info("interrupted", "score", m.state.Score)
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.holding {
		return m, nil
	}

	if a := m.keys.Action(msg); a != core.ActionNone {
		if !m.queue.Push(a) {
			m.logger.Debug("input dropped", "action", a)
		}
	}
	return m, nil
}

// handleResize records the terminal size. The board never scales; a terminal
// smaller than the frame holds the simulation until it grows.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	wasSmall := m.tooSmall()
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width

	// Clip the side panel rather than let narrow terminals wrap frame lines.
	cw, ch := tetris.CanvasSize(m.cfg.Board.Width, m.cfg.Board.Height)
	m.screen.Resize(min(cw, max(msg.Width, 1)), ch)

	if small := m.tooSmall(); small != wasSmall {
		fw, fh := m.frameSize()
		m.logger.Warn("terminal size changed",
			"width", msg.Width, "height", msg.Height,
			"need", fmt.Sprintf("%dx%d", fw, fh),
			"fits", !small,
		)
	}
	return m, nil
}

// handleTick runs one simulation step with at most one queued action.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.holding || m.quitting {
		return m, nil
	}
	if m.tooSmall() {
		return m, tickCmd(m.cfg.Timing.PollInterval)
	}

	result := m.game.Step(m.queue.Poll())
	m.state = result.State
	m.logEvents(result.Events)

	if m.state.GameOver {
		m.holding = true
		m.queue.Clear()
		return m, holdCmd(m.cfg.Timing.GameOverHold)
	}

	return m, tickCmd(m.cfg.Timing.PollInterval)
}

func (m Model) logEvents(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventMerged:
			if e.Lines > 0 {
				m.logger.Info("lines cleared", "lines", e.Lines, "score", e.Score)
			} else {
				m.logger.Debug("piece locked", "score", e.Score)
			}
		case core.EventGameOver:
			m.logger.Info("game over", "reason", e.Detail, "score", e.Score, "lines", m.state.Lines)
		case core.EventPaused, core.EventResumed:
			m.logger.Info(e.Kind.String())
		case core.EventSpawned:
			m.logger.Debug("spawned", "kind", e.Detail)
		default:
			m.logger.Debug(e.Kind.String(), "action", e.Action)
		}
	}
}

func (m Model) frameSize() (int, int) {
	return tetris.FrameSize(m.cfg.Board.Width, m.cfg.Board.Height)
}

// tooSmall reports whether the known terminal size cannot fit the frame.
// An unknown size (zero) is assumed to fit.
func (m Model) tooSmall() bool {
	if m.width <= 0 || m.height <= 0 {
		return false
	}
	fw, fh := m.frameSize()
	return m.width < fw || m.height < fh
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.state
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("tetris_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(m.screenshotDir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "tetris-screenshots")
	}
	return filepath.Join(home, ".tetris", "screenshots")
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall() {
		fw, fh := m.frameSize()
		return warningStyle.Render(fmt.Sprintf(
			"Terminal too small: need %dx%d, have %dx%d.\nEnlarge the window or use a smaller board.",
			fw, fh, m.width, m.height,
		))
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))

	_, fh := m.frameSize()
	if !m.holding && (m.height == 0 || m.height > fh) {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	}
	return b.String()
}

// Run starts the Bubble Tea program and returns the final game state.
func Run(game *tetris.Game, rc core.RuntimeConfig, logger *log.Logger) (core.GameState, error) {
	model := NewModel(game, rc, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return core.GameState{}, fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(Model); ok {
		return m.state, nil
	}
	return game.State(), nil
}
