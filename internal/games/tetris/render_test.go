package tetris

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

func smallConfig() config.TetrisConfig {
	cfg := config.DefaultTetrisConfig()
	cfg.Board.Width = 8
	cfg.Board.Height = 10
	return cfg
}

func renderGame(g *Game) *core.Screen {
	w, h := CanvasSize(g.cfg.Board.Width, g.cfg.Board.Height)
	scr := core.NewScreen(w, h)
	g.Render(scr)
	return scr
}

func TestCanvasSize(t *testing.T) {
	w, h := FrameSize(20, 40)
	if w != 42 || h != 43 {
		t.Errorf("FrameSize(20,40) = %dx%d, expected 42x43", w, h)
	}
	w, h = CanvasSize(20, 40)
	if w != 42+2+PanelWidth || h != 43 {
		t.Errorf("CanvasSize(20,40) = %dx%d", w, h)
	}
}

func TestDrawFrame(t *testing.T) {
	g, _ := newTestGameWith(t, smallConfig(), KindO, KindT)
	scr := renderGame(g)

	if !strings.HasPrefix(scr.Row(0), "Score: 0") {
		t.Errorf("row 0 = %q, expected score line", scr.Row(0))
	}

	// 8x10 board: frame is 18 wide and spans rows 1..12.
	corners := []struct {
		x, y int
		r    rune
	}{
		{0, 1, '┌'}, {17, 1, '┐'}, {0, 12, '└'}, {17, 12, '┘'},
	}
	for _, c := range corners {
		if got := scr.Get(c.x, c.y); got != c.r {
			t.Errorf("(%d,%d) = %q, expected %q", c.x, c.y, got, c.r)
		}
	}
	for y := 2; y <= 11; y++ {
		if scr.Get(0, y) != '│' || scr.Get(17, y) != '│' {
			t.Errorf("row %d missing side borders: %q", y, scr.Row(y))
		}
	}
}

func TestDrawActivePiece(t *testing.T) {
	g, _ := newTestGameWith(t, smallConfig(), KindO, KindT)
	scr := renderGame(g)

	// O spawns at x=3: board columns 3-4 map to screen columns 7-10.
	for _, y := range []int{2, 3} {
		for x := 7; x <= 10; x++ {
			cell := scr.GetCell(x, y)
			if cell.Rune != blockRune || cell.Color != core.ColorGreen {
				t.Errorf("(%d,%d) = %q/%v, expected green block", x, y, cell.Rune, cell.Color)
			}
		}
	}
	if scr.Get(2, 2) != gridRune {
		t.Errorf("empty cell should show the grid marker, got %q", scr.Get(2, 2))
	}
}

func TestDrawSettledCells(t *testing.T) {
	g, _ := newTestGameWith(t, smallConfig(), KindO, KindT)
	g.board.Set(0, 9, KindZ)
	scr := renderGame(g)

	// Board cell (0,9) covers screen columns 1-2 on row 11.
	for _, x := range []int{1, 2} {
		cell := scr.GetCell(x, 11)
		if cell.Rune != blockRune || cell.Color != core.ColorMagenta {
			t.Errorf("(%d,11) = %q/%v, expected magenta block", x, cell.Rune, cell.Color)
		}
	}
}

func TestDrawGhost(t *testing.T) {
	g, _ := newTestGameWith(t, smallConfig(), KindO, KindT)
	scr := renderGame(g)

	// The O lands on board rows 8-9, drawn on screen rows 10-11.
	for _, y := range []int{10, 11} {
		if got := scr.Get(7, y); got != ghostRune {
			t.Errorf("ghost missing at (7,%d), got %q", y, got)
		}
	}

	cfg := smallConfig()
	cfg.Features.Ghost = false
	g, _ = newTestGameWith(t, cfg, KindO, KindT)
	scr = renderGame(g)
	if strings.ContainsRune(scr.String(), ghostRune) {
		t.Error("ghost drawn with the feature disabled")
	}
}

func TestDrawPanel(t *testing.T) {
	g, _ := newTestGameWith(t, smallConfig(), KindO, KindT)
	scr := renderGame(g)

	if !strings.Contains(scr.Row(1), "Next") {
		t.Errorf("row 1 = %q, expected next label", scr.Row(1))
	}
	// T preview: top row has one block in the middle column.
	x0 := 20
	if cell := scr.GetCell(x0+2, 2); cell.Rune != blockRune || cell.Color != core.ColorYellow {
		t.Errorf("preview cell = %q/%v", cell.Rune, cell.Color)
	}
	if !strings.Contains(scr.Row(5), "Lines: 0") || !strings.Contains(scr.Row(6), "Pieces: 0") {
		t.Errorf("counters missing: %q %q", scr.Row(5), scr.Row(6))
	}

	cfg := smallConfig()
	cfg.Features.Preview = false
	g, _ = newTestGameWith(t, cfg, KindO, KindT)
	scr = renderGame(g)
	if strings.Contains(scr.String(), "Next") {
		t.Error("preview drawn with the feature disabled")
	}
	if !strings.Contains(scr.Row(1), "Lines: 0") {
		t.Errorf("counters should move up, row 1 = %q", scr.Row(1))
	}
}

func TestDrawPaused(t *testing.T) {
	g, _ := newTestGameWith(t, smallConfig(), KindO, KindT)
	press(g, core.ActionPause)
	scr := renderGame(g)

	if !strings.Contains(scr.String(), "PAUSED") {
		t.Error("paused banner missing")
	}
}

func TestDrawGameOver(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	g, _ := newTestGameWith(t, cfg, KindO)
	g.score = 120
	press(g, core.ActionQuit)
	scr := renderGame(g)

	row := scr.Row(20)
	if !strings.Contains(row, "Game Over!") {
		t.Errorf("row 20 = %q, expected game over text", row)
	}
	idx := strings.Index(row, "Game Over!")
	if col := utf8.RuneCountInString(row[:max(idx, 0)]); col != 16 {
		t.Errorf("game over text at column %d, expected 16", col)
	}
	if !strings.Contains(scr.Row(21), "Final Score: 120") {
		t.Errorf("row 21 = %q, expected final score", scr.Row(21))
	}
	if strings.ContainsRune(scr.String(), ghostRune) {
		t.Error("ghost drawn after game over")
	}
}
