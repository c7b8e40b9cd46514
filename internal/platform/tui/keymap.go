package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// KeyMap translates Bubble Tea key messages to game actions.
// Game bindings come from the configuration; Interrupt and Screenshot are fixed.
type KeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Down   key.Binding
	Rotate key.Binding
	Drop   key.Binding
	Pause  key.Binding
	Quit   key.Binding

	Interrupt  key.Binding
	Screenshot key.Binding
}

// NewKeyMap builds the key map from configured key names.
func NewKeyMap(c config.ControlsConfig) KeyMap {
	return KeyMap{
		Left:   binding(c.Left, "left"),
		Right:  binding(c.Right, "right"),
		Down:   binding(c.Down, "down"),
		Rotate: binding(c.Rotate, "rotate"),
		Drop:   binding(c.Drop, "drop"),
		Pause:  binding(c.Pause, "pause"),
		Quit:   binding(c.Quit, "quit"),
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKeys(keys), desc),
	)
}

// helpKeys joins key names for the help bar, spelling out the space key.
func helpKeys(keys []string) string {
	var names []string
	seen := make(map[string]bool)
	for _, k := range keys {
		if k == " " {
			k = "space"
		}
		if seen[k] {
			continue
		}
		seen[k] = true
		names = append(names, k)
	}
	return strings.Join(names, "/")
}

// ShortHelp returns bindings for the compact help bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Down, k.Rotate, k.Drop, k.Pause, k.Quit}
}

// FullHelp returns all bindings grouped by column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Down, k.Rotate},
		{k.Drop, k.Pause, k.Quit},
		{k.Screenshot, k.Interrupt},
	}
}

// Action maps a key message to a game action, or ActionNone if unbound.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Rotate):
		return core.ActionRotate
	case key.Matches(msg, k.Drop):
		return core.ActionDrop
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	}
	return core.ActionNone
}
