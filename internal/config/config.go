// Package config provides YAML-based game configuration loading and
// validation for the falling-block game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// TetrisConfig contains all tunable settings of the game.
type TetrisConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Timing   TimingConfig   `yaml:"timing"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Features FeaturesConfig `yaml:"features"`
	Controls ControlsConfig `yaml:"controls"`
}

// BoardConfig defines the well dimensions in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the loop cadence.
type TimingConfig struct {
	PollInterval    time.Duration `yaml:"poll_interval"`    // One tick: input poll + render
	GravityInterval time.Duration `yaml:"gravity_interval"` // Time between automatic drops
	GameOverHold    time.Duration `yaml:"game_over_hold"`   // How long the final screen stays up
}

// ScoringConfig defines the score reward.
type ScoringConfig struct {
	PointsPerLine int `yaml:"points_per_line"`
}

// FeaturesConfig toggles optional render aids.
type FeaturesConfig struct {
	Ghost   bool `yaml:"ghost"`   // Outline of the landing position
	Preview bool `yaml:"preview"` // Next piece panel
}

// ControlsConfig lists the key names bound to each action.
// Key names follow Bubble Tea's KeyMsg.String() ("left", "ctrl+c", " ").
type ControlsConfig struct {
	Left   []string `yaml:"left"`
	Right  []string `yaml:"right"`
	Down   []string `yaml:"down"`
	Rotate []string `yaml:"rotate"`
	Drop   []string `yaml:"drop"`
	Pause  []string `yaml:"pause"`
	Quit   []string `yaml:"quit"`
}

// Minimum board size that fits every piece at the spawn column in every orientation.
const (
	MinBoardWidth  = 5
	MinBoardHeight = 4
)

// Validate checks the configuration and returns every problem found.
func (c TetrisConfig) Validate() error {
	var errs []error

	if c.Board.Width < MinBoardWidth {
		errs = append(errs, fmt.Errorf("board.width must be at least %d, got %d", MinBoardWidth, c.Board.Width))
	}
	if c.Board.Height < MinBoardHeight {
		errs = append(errs, fmt.Errorf("board.height must be at least %d, got %d", MinBoardHeight, c.Board.Height))
	}
	if c.Timing.PollInterval <= 0 {
		errs = append(errs, fmt.Errorf("timing.poll_interval must be positive, got %v", c.Timing.PollInterval))
	}
	if c.Timing.GravityInterval <= 0 {
		errs = append(errs, fmt.Errorf("timing.gravity_interval must be positive, got %v", c.Timing.GravityInterval))
	}
	if c.Timing.GameOverHold < 0 {
		errs = append(errs, fmt.Errorf("timing.game_over_hold must not be negative, got %v", c.Timing.GameOverHold))
	}
	if c.Scoring.PointsPerLine < 0 {
		errs = append(errs, fmt.Errorf("scoring.points_per_line must not be negative, got %d", c.Scoring.PointsPerLine))
	}

	bindings := []struct {
		name string
		keys []string
	}{
		{"left", c.Controls.Left},
		{"right", c.Controls.Right},
		{"down", c.Controls.Down},
		{"rotate", c.Controls.Rotate},
		{"drop", c.Controls.Drop},
		{"pause", c.Controls.Pause},
		{"quit", c.Controls.Quit},
	}
	seen := make(map[string]string)
	for _, b := range bindings {
		if len(b.keys) == 0 {
			errs = append(errs, fmt.Errorf("controls.%s must bind at least one key", b.name))
		}
		for _, k := range b.keys {
			if prev, dup := seen[k]; dup && prev != b.name {
				errs = append(errs, fmt.Errorf("controls: key %q bound to both %s and %s", k, prev, b.name))
				continue
			}
			seen[k] = b.name
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
}
