package chess

// Direction vectors and jump offsets, expressed as (dx,dy) pairs.
var (
	orthogonalDirs = []Position{
		{X: 1, Y: 0},
		{X: -1, Y: 0},
		{X: 0, Y: 1},
		{X: 0, Y: -1},
	}
	diagonalDirs = []Position{
		{X: 1, Y: 1},
		{X: 1, Y: -1},
		{X: -1, Y: 1},
		{X: -1, Y: -1},
	}
	allDirs = append(append([]Position{}, orthogonalDirs...), diagonalDirs...)

	knightOffsets = []Position{
		{X: 1, Y: 2},
		{X: 2, Y: 1},
		{X: 2, Y: -1},
		{X: 1, Y: -2},
		{X: -1, Y: -2},
		{X: -2, Y: -1},
		{X: -2, Y: 1},
		{X: -1, Y: 2},
	}
)

// PotentialMoves returns the pseudo-legal destinations for the piece at
// from: basic movement and capture only, with no check awareness. The result
// is empty when from is off-board or unoccupied. Every returned position is
// on the board; ordering is unspecified. The board is never mutated.
func (b *Board) PotentialMoves(from Position) []Position {
	p := b.PieceAt(from)
	if p == nil {
		return nil
	}

	switch p.Type {
	case Pawn:
		return b.pawnMoves(from, p)
	case Knight:
		return b.offsetMoves(from, p.Color, knightOffsets)
	case King:
		return b.offsetMoves(from, p.Color, allDirs)
	case Rook:
		return b.slidingMoves(from, p.Color, orthogonalDirs)
	case Bishop:
		return b.slidingMoves(from, p.Color, diagonalDirs)
	case Queen:
		return b.slidingMoves(from, p.Color, allDirs)
	default:
		return nil
	}
}

// slidingMoves walks each direction one cell at a time, stopping at the
// board edge, stopping before an allied piece, and including then stopping
// at the first opposing piece.
func (b *Board) slidingMoves(from Position, us Color, dirs []Position) []Position {
	var moves []Position
	for _, d := range dirs {
		for cur := from.add(d.X, d.Y); cur.InBounds(); cur = cur.add(d.X, d.Y) {
			occ := b.PieceAt(cur)
			if occ == nil {
				moves = append(moves, cur)
				continue
			}
			if occ.Color != us {
				moves = append(moves, cur)
			}
			break
		}
	}
	return moves
}

// offsetMoves filters a fixed offset table to on-board cells that are empty
// or hold an opposing piece.
func (b *Board) offsetMoves(from Position, us Color, offsets []Position) []Position {
	var moves []Position
	for _, d := range offsets {
		cur := from.add(d.X, d.Y)
		if !cur.InBounds() {
			continue
		}
		if occ := b.PieceAt(cur); occ != nil && occ.Color == us {
			continue
		}
		moves = append(moves, cur)
	}
	return moves
}

// pawnMoves: one step toward the opposing side if empty, two steps from the
// start if unmoved and both cells are empty, and diagonal capture onto an
// opposing piece. No en-passant, no promotion.
func (b *Board) pawnMoves(from Position, p *Piece) []Position {
	dy := -1 // White advances toward row 0
	if p.Color == Black {
		dy = 1
	}

	var moves []Position
	one := from.add(0, dy)
	if one.InBounds() && b.PieceAt(one) == nil {
		moves = append(moves, one)
		two := one.add(0, dy)
		if !p.HasMoved && two.InBounds() && b.PieceAt(two) == nil {
			moves = append(moves, two)
		}
	}
	for _, dx := range []int{-1, 1} {
		diag := from.add(dx, dy)
		if occ := b.PieceAt(diag); occ != nil && occ.Color != p.Color {
			moves = append(moves, diag)
		}
	}
	return moves
}
