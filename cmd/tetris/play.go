package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

func runPlay(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(flagLogPath, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, source, err := config.LoadWithSource(flagConfig)
	if err != nil {
		return err
	}
	logger.Info("configuration loaded", "source", source)

	// Get terminal size early so the first frame can warn about a small window
	width, height := 0, 0
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	} else {
		logger.Debug("terminal size unavailable", "error", termErr)
	}

	rc := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	game := tetris.New(cfg)
	state, err := tui.Run(game, rc, logger)
	if err != nil {
		logger.Error("game aborted", "error", err)
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Final Score: %d (lines: %d)\n", state.Score, state.Lines)
	return nil
}
