package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration.
// It matches defaults/tetris.yaml and is used if the embedded file cannot be parsed.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:  20,
			Height: 40,
		},
		Timing: TimingConfig{
			PollInterval:    100 * time.Millisecond,
			GravityInterval: 500 * time.Millisecond,
			GameOverHold:    3 * time.Second,
		},
		Scoring: ScoringConfig{
			PointsPerLine: 10,
		},
		Features: FeaturesConfig{
			Ghost:   true,
			Preview: true,
		},
		Controls: ControlsConfig{
			Left:   []string{"left", "h"},
			Right:  []string{"right", "l"},
			Down:   []string{"down", "j"},
			Rotate: []string{"up", "k"},
			Drop:   []string{" ", "space"},
			Pause:  []string{"p"},
			Quit:   []string{"q"},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
