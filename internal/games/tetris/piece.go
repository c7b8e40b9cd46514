// Package tetris implements the falling-block simulation: the board, the
// active piece, the collision rule and the tick-driven game loop.
// It has no terminal dependencies; the platform feeds it input polls and
// draws the read-only View it exposes.
package tetris

import (
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Kind identifies a tetromino. KindNone marks an empty board cell.
type Kind uint8

const (
	KindNone Kind = iota
	KindI
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// KindCount is the number of playable kinds.
const KindCount = 7

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "."
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return "?"
	}
}

// Color returns the render color. Kinds 1..7 map onto colors 1..7.
func (k Kind) Color() core.Color {
	if k == KindNone || k > KindL {
		return core.ColorDefault
	}
	return core.Color(k)
}

// Shape is an occupancy matrix in row-major order.
// Rows may differ in count from columns; rotation swaps the two.
type Shape [][]bool

// canonical holds the spawn orientation of each kind, indexed by Kind.
var canonical = [KindCount + 1]Shape{
	KindI: mustShape("####"),
	KindO: mustShape("##", "##"),
	KindT: mustShape(".#.", "###"),
	KindS: mustShape("##.", ".##"),
	KindZ: mustShape(".##", "##."),
	KindJ: mustShape("#..", "###"),
	KindL: mustShape("..#", "###"),
}

// mustShape builds a shape from rows of '#' (filled) and '.' (empty).
func mustShape(rows ...string) Shape {
	s := make(Shape, len(rows))
	for y, row := range rows {
		if len(row) != len(rows[0]) {
			panic("tetris: ragged shape literal")
		}
		s[y] = make([]bool, len(row))
		for x, ch := range row {
			s[y][x] = ch == '#'
		}
	}
	return s
}

// CanonicalShape returns a fresh copy of the spawn orientation for kind.
func CanonicalShape(kind Kind) Shape {
	if kind == KindNone || kind > KindL {
		return nil
	}
	return canonical[kind].Clone()
}

// Rows returns the matrix height.
func (s Shape) Rows() int {
	return len(s)
}

// Cols returns the matrix width.
func (s Shape) Cols() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Clone returns a deep copy.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	for y, row := range s {
		out[y] = append([]bool(nil), row...)
	}
	return out
}

// Rotated returns the 90 degree clockwise rotation:
// out[i][j] = s[rows-1-j][i]. A rows x cols matrix becomes cols x rows.
func (s Shape) Rotated() Shape {
	rows, cols := s.Rows(), s.Cols()
	out := make(Shape, cols)
	for i := 0; i < cols; i++ {
		out[i] = make([]bool, rows)
		for j := 0; j < rows; j++ {
			out[i][j] = s[rows-1-j][i]
		}
	}
	return out
}

// Equal reports whether both shapes have the same dimensions and occupancy.
func (s Shape) Equal(other Shape) bool {
	if s.Rows() != other.Rows() || s.Cols() != other.Cols() {
		return false
	}
	for y := range s {
		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// Occupancy returns the filled cells relative to the top-left corner, row by row.
func (s Shape) Occupancy() []core.Point {
	var pts []core.Point
	for y, row := range s {
		for x, filled := range row {
			if filled {
				pts = append(pts, core.Point{X: x, Y: y})
			}
		}
	}
	return pts
}

// String renders the shape with '#' and '.', one row per line.
func (s Shape) String() string {
	var b strings.Builder
	for y, row := range s {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, filled := range row {
			if filled {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

// Piece is the falling tetromino: its kind, its own shape matrix and the
// board position of the matrix's top-left cell.
type Piece struct {
	Kind  Kind
	Shape Shape
	X, Y  int
}

// NewPiece creates a piece of the given kind in its canonical orientation.
func NewPiece(kind Kind, x, y int) Piece {
	return Piece{
		Kind:  kind,
		Shape: CanonicalShape(kind),
		X:     x,
		Y:     y,
	}
}

// RotatedClockwise returns the rotated shape without touching the piece.
func (p Piece) RotatedClockwise() Shape {
	return p.Shape.Rotated()
}

// Cells returns the board coordinates covered by the piece.
func (p Piece) Cells() []core.Point {
	pts := p.Shape.Occupancy()
	origin := core.Point{X: p.X, Y: p.Y}
	for i := range pts {
		pts[i] = pts[i].Add(origin)
	}
	return pts
}

// CellCount returns the number of occupied cells (4 for every tetromino).
func (p Piece) CellCount() int {
	return len(p.Shape.Occupancy())
}

// Width returns the current matrix width.
func (p Piece) Width() int {
	return p.Shape.Cols()
}

// Height returns the current matrix height.
func (p Piece) Height() int {
	return p.Shape.Rows()
}

// Clone returns a copy that shares no memory with p.
func (p Piece) Clone() Piece {
	p.Shape = p.Shape.Clone()
	return p
}
