// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris                   - Play a game
//	tetris config            - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>     - Custom config YAML (default search: ~/.tetris/config.yaml, ./configs/tetris.yaml)
//	--seed <value>      - Set RNG seed for reproducible piece order
//	--log <path>        - Write a log file (default: no logging)
//	--log-level <level> - Log level: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogPath  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - falling blocks in your terminal",
	Long: `Tetris drops tetrominoes into a well. Steer and rotate them to fill
rows; every full row is cleared and scores points. The game ends when a
new piece has no room to appear.

Controls (default):
  Left/H, Right/L   - Move
  Down/J            - Soft drop one row
  Up/K              - Rotate clockwise
  Space             - Hard drop
  P                 - Pause
  Q                 - Quit (shows the final score)
  Ctrl+S            - Save a screenshot to ~/.tetris/screenshots
  Ctrl+C            - Exit immediately

Examples:
  tetris
  tetris --seed 42
  tetris --config ./small-board.yaml
  tetris --log tetris.log --log-level debug
  tetris config > ~/.tetris/config.yaml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Path to log file (empty = no logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(configCmd)
}
