package chess

// Position is a coordinate on the board. X is the column (0..7, left to
// right) and Y is the row (0..7, top to bottom as rendered). Off-board
// values are representable; callers filter with InBounds before indexing.
type Position struct {
	X int
	Y int
}

// InBounds reports whether p addresses one of the 64 board cells.
func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < Size && p.Y >= 0 && p.Y < Size
}

func (p Position) add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}
