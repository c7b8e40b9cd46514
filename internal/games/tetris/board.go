package tetris

import "strings"

// Board is the settled geometry of the well.
// Rows are indexed top to bottom; row 0 is where pieces spawn.
type Board struct {
	width  int
	height int
	rows   [][]Kind
}

// NewBoard creates an empty board.
func NewBoard(width, height int) *Board {
	b := &Board{width: width, height: height}
	b.rows = make([][]Kind, height)
	for y := range b.rows {
		b.rows[y] = make([]Kind, width)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// inBounds reports whether (x, y) is a board cell.
func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the cell at (x, y), or KindNone outside the board.
func (b *Board) At(x, y int) Kind {
	if !b.inBounds(x, y) {
		return KindNone
	}
	return b.rows[y][x]
}

// Set writes a cell. Writes outside the board are ignored.
func (b *Board) Set(x, y int, k Kind) {
	if b.inBounds(x, y) {
		b.rows[y][x] = k
	}
}

// IsInsideAndEmpty reports whether (x, y) lies on the board and holds no block.
func (b *Board) IsInsideAndEmpty(x, y int) bool {
	return b.inBounds(x, y) && b.rows[y][x] == KindNone
}

// Merge writes the piece's kind into every cell it covers.
// The caller guarantees the piece does not collide; no validation is done.
func (b *Board) Merge(p Piece) {
	for _, c := range p.Cells() {
		b.Set(c.X, c.Y, p.Kind)
	}
}

// RowFull reports whether every cell of row y is occupied.
func (b *Board) RowFull(y int) bool {
	if y < 0 || y >= b.height {
		return false
	}
	for _, k := range b.rows[y] {
		if k == KindNone {
			return false
		}
	}
	return true
}

// ClearCompletedLines removes every full row, keeps the remaining rows in
// their original order at the bottom and fills the top with empty rows.
// Returns the number of rows removed.
func (b *Board) ClearCompletedLines() int {
	kept := make([][]Kind, 0, b.height)
	for y := 0; y < b.height; y++ {
		if !b.RowFull(y) {
			kept = append(kept, b.rows[y])
		}
	}

	cleared := b.height - len(kept)
	if cleared == 0 {
		return 0
	}

	rows := make([][]Kind, 0, b.height)
	for i := 0; i < cleared; i++ {
		rows = append(rows, make([]Kind, b.width))
	}
	b.rows = append(rows, kept...)
	return cleared
}

// FilledCount returns the number of occupied cells.
func (b *Board) FilledCount() int {
	n := 0
	for _, row := range b.rows {
		for _, k := range row {
			if k != KindNone {
				n++
			}
		}
	}
	return n
}

// Rows returns a deep copy of the cells, top row first.
func (b *Board) Rows() [][]Kind {
	out := make([][]Kind, b.height)
	for y, row := range b.rows {
		out[y] = append([]Kind(nil), row...)
	}
	return out
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	return &Board{width: b.width, height: b.height, rows: b.Rows()}
}

// Equal returns true if both boards have the same size and contents.
func (b *Board) Equal(other *Board) bool {
	if b.width != other.width || b.height != other.height {
		return false
	}
	for y := range b.rows {
		for x := range b.rows[y] {
			if b.rows[y][x] != other.rows[y][x] {
				return false
			}
		}
	}
	return true
}

// String renders the board with kind letters and '.' for empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for y, row := range b.rows {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, k := range row {
			sb.WriteString(k.String())
		}
	}
	return sb.String()
}
