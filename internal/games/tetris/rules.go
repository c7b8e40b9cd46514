package tetris

// Collides reports whether any occupied cell of p falls outside the board or
// onto a settled block. It is the only gate for moves, drops and rotations.
func Collides(b *Board, p Piece) bool {
	for y, row := range p.Shape {
		for x, filled := range row {
			if filled && !b.IsInsideAndEmpty(p.X+x, p.Y+y) {
				return true
			}
		}
	}
	return false
}

// LandingY returns the lowest row the piece can reach by falling straight down
// from its current position. A piece that already collides stays where it is.
func LandingY(b *Board, p Piece) int {
	if Collides(b, p) {
		return p.Y
	}
	for {
		p.Y++
		if Collides(b, p) {
			return p.Y - 1
		}
	}
}
