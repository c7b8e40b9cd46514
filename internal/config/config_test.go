package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

// isolate points HOME and the working directory at empty temp dirs so the
// search order only sees files the test writes.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	if got := defaults(); !reflect.DeepEqual(got, DefaultTetrisConfig()) {
		t.Errorf("embedded YAML and DefaultTetrisConfig differ:\n%+v\n%+v", got, DefaultTetrisConfig())
	}
}

func TestDefaultValues(t *testing.T) {
	cfg := DefaultTetrisConfig()

	if cfg.Board.Width != 20 || cfg.Board.Height != 40 {
		t.Errorf("board = %dx%d, expected 20x40", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Timing.PollInterval != 100*time.Millisecond {
		t.Errorf("poll interval = %v, expected 100ms", cfg.Timing.PollInterval)
	}
	if cfg.Timing.GravityInterval != 500*time.Millisecond {
		t.Errorf("gravity interval = %v, expected 500ms", cfg.Timing.GravityInterval)
	}
	if cfg.Timing.GameOverHold != 3*time.Second {
		t.Errorf("game over hold = %v, expected 3s", cfg.Timing.GameOverHold)
	}
	if cfg.Scoring.PointsPerLine != 10 {
		t.Errorf("points per line = %d, expected 10", cfg.Scoring.PointsPerLine)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadWithoutFilesUsesEmbedded(t *testing.T) {
	isolate(t)

	cfg, source, err := LoadWithSource("")
	if err != nil {
		t.Fatalf("LoadWithSource() failed: %v", err)
	}
	if source != "embedded" {
		t.Errorf("source = %q, expected embedded", source)
	}
	if !reflect.DeepEqual(cfg, DefaultTetrisConfig()) {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadCustomPartialOverlay(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "small.yaml")
	data := "board:\n  width: 10\ntiming:\n  gravity_interval: 250ms\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Board.Width != 10 {
		t.Errorf("width = %d, expected 10", cfg.Board.Width)
	}
	if cfg.Board.Height != 40 {
		t.Errorf("height should keep default 40, got %d", cfg.Board.Height)
	}
	if cfg.Timing.GravityInterval != 250*time.Millisecond {
		t.Errorf("gravity = %v, expected 250ms", cfg.Timing.GravityInterval)
	}
	if cfg.Timing.PollInterval != 100*time.Millisecond {
		t.Errorf("poll interval should keep default, got %v", cfg.Timing.PollInterval)
	}
	if !reflect.DeepEqual(cfg.Controls, DefaultTetrisConfig().Controls) {
		t.Errorf("controls should keep defaults, got %+v", cfg.Controls)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	dir := isolate(t)

	if err := os.MkdirAll(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, LocalConfigPath), []byte("scoring:\n  points_per_line: 25\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadWithSource("")
	if err != nil {
		t.Fatalf("LoadWithSource() failed: %v", err)
	}
	if source != LocalConfigPath {
		t.Errorf("source = %q, expected %q", source, LocalConfigPath)
	}
	if cfg.Scoring.PointsPerLine != 25 {
		t.Errorf("points per line = %d, expected 25", cfg.Scoring.PointsPerLine)
	}

	// A user config takes precedence over the local one.
	home := os.Getenv("HOME")
	userPath := filepath.Join(home, ".tetris", "config.yaml")
	if err := os.MkdirAll(filepath.Dir(userPath), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(userPath, []byte("scoring:\n  points_per_line: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err = LoadWithSource("")
	if err != nil {
		t.Fatalf("LoadWithSource() failed: %v", err)
	}
	if source != userPath {
		t.Errorf("source = %q, expected %q", source, userPath)
	}
	if cfg.Scoring.PointsPerLine != 7 {
		t.Errorf("points per line = %d, expected 7", cfg.Scoring.PointsPerLine)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := isolate(t)

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("board: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(broken); err == nil {
		t.Error("expected parse error for broken YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  width: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil || !strings.Contains(err.Error(), "board.width") {
		t.Errorf("expected board.width validation error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*TetrisConfig)
		wantErr string
	}{
		{"defaults", func(*TetrisConfig) {}, ""},
		{"narrow board", func(c *TetrisConfig) { c.Board.Width = 3 }, "board.width"},
		{"short board", func(c *TetrisConfig) { c.Board.Height = 0 }, "board.height"},
		{"zero poll", func(c *TetrisConfig) { c.Timing.PollInterval = 0 }, "timing.poll_interval"},
		{"negative gravity", func(c *TetrisConfig) { c.Timing.GravityInterval = -time.Second }, "timing.gravity_interval"},
		{"negative hold", func(c *TetrisConfig) { c.Timing.GameOverHold = -1 }, "timing.game_over_hold"},
		{"negative points", func(c *TetrisConfig) { c.Scoring.PointsPerLine = -10 }, "scoring.points_per_line"},
		{"unbound quit", func(c *TetrisConfig) { c.Controls.Quit = nil }, "controls.quit"},
		{"duplicate key", func(c *TetrisConfig) { c.Controls.Pause = []string{"h"} }, `key "h" bound to both left and pause`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultTetrisConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "gravity_interval: 500ms") {
		t.Errorf("durations should encode as strings, got:\n%s", data)
	}

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultTetrisConfig()) {
		t.Errorf("round trip changed config: %+v", cfg)
	}
}
