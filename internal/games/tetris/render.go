package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Render glyphs.
const (
	blockRune = '█'
	ghostRune = '░'
	gridRune  = '·'
)

// PanelWidth is the width of the side panel right of the frame.
const PanelWidth = 14

// View is a read-only snapshot of the game for drawing.
type View struct {
	Width, Height int
	Cells         [][]Kind // settled cells, top row first

	Piece     Piece
	ShowGhost bool
	GhostY    int // landing row of Piece when ShowGhost is set

	Next        Kind
	ShowPreview bool

	Score  int
	Lines  int
	Pieces int
	Paused bool
	Over   bool
}

// FrameSize returns the size of the score line plus the bordered board.
func FrameSize(boardW, boardH int) (w, h int) {
	return boardW*2 + 2, boardH + 3
}

// CanvasSize returns the screen size Draw needs including the side panel.
func CanvasSize(boardW, boardH int) (w, h int) {
	fw, fh := FrameSize(boardW, boardH)
	return fw + 2 + PanelWidth, fh
}

// Draw renders the view. Layout in character cells:
//
//	row 0            "Score: N"
//	row 1            top border
//	rows 2..H+1      board rows, cell (x, y) at columns 2x+1 and 2x+2
//	row H+2          bottom border
//
// The side panel starts two columns right of the frame.
func Draw(dst *core.Screen, v View) {
	dst.Clear()

	dst.DrawText(0, 0, fmt.Sprintf("Score: %d", v.Score))

	fw, fh := FrameSize(v.Width, v.Height)
	dst.DrawBox(core.NewRect(0, 1, fw, fh-1), core.ColorWhite)

	for y := 0; y < v.Height; y++ {
		for x := 1; x < v.Width; x++ {
			dst.SetColored(x*2, y+2, gridRune, core.ColorGray)
		}
	}

	for y, row := range v.Cells {
		for x, k := range row {
			if k != KindNone {
				drawCell(dst, x, y, blockRune, k.Color())
			}
		}
	}

	if !v.Over {
		if v.ShowGhost && v.GhostY != v.Piece.Y {
			ghost := v.Piece
			ghost.Y = v.GhostY
			for _, c := range ghost.Cells() {
				if cellEmpty(v, c.X, c.Y) {
					drawCell(dst, c.X, c.Y, ghostRune, core.ColorGray)
				}
			}
		}
		for _, c := range v.Piece.Cells() {
			drawCell(dst, c.X, c.Y, blockRune, v.Piece.Kind.Color())
		}
	}

	drawPanel(dst, v, fw+2)

	switch {
	case v.Over:
		drawCentered(dst, fw, v.Height/2, "Game Over!", core.ColorBrightWhite)
		drawCentered(dst, fw, v.Height/2+1, fmt.Sprintf("Final Score: %d", v.Score), core.ColorBrightWhite)
	case v.Paused:
		drawCentered(dst, fw, v.Height/2+2, " PAUSED ", core.ColorBrightWhite)
	}
}

// drawCell paints one board cell as two screen columns.
func drawCell(dst *core.Screen, x, y int, r rune, c core.Color) {
	dst.SetColored(x*2+1, y+2, r, c)
	dst.SetColored(x*2+2, y+2, r, c)
}

func cellEmpty(v View, x, y int) bool {
	if !core.NewRect(0, 0, v.Width, v.Height).Contains(x, y) {
		return false
	}
	return v.Cells[y][x] == KindNone
}

func drawPanel(dst *core.Screen, v View, x0 int) {
	row := 1
	if v.ShowPreview && v.Next != KindNone {
		dst.DrawText(x0, row, "Next")
		for _, c := range CanonicalShape(v.Next).Occupancy() {
			dst.SetColored(x0+c.X*2, row+1+c.Y, blockRune, v.Next.Color())
			dst.SetColored(x0+c.X*2+1, row+1+c.Y, blockRune, v.Next.Color())
		}
		row += 4
	}
	dst.DrawText(x0, row, fmt.Sprintf("Lines: %d", v.Lines))
	dst.DrawText(x0, row+1, fmt.Sprintf("Pieces: %d", v.Pieces))
}

// drawCentered writes text horizontally centered within width columns.
func drawCentered(dst *core.Screen, width, y int, text string, c core.Color) {
	n := len([]rune(text))
	dst.DrawTextColored(max(0, (width-n)/2), y, text, c)
}
