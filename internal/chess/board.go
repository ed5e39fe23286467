package chess

import "fmt"

// Size is the board edge length.
const Size = 8

// Board is an 8x8 grid of optional pieces, indexed cells[y][x]. The zero
// value is an empty board. The board accepts any placement; it does not
// enforce legal chess configurations.
type Board struct {
	cells [Size][Size]*Piece
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewBoardInitial returns a board holding the 32 standard starting pieces.
func NewBoardInitial() *Board {
	b := NewBoard()
	b.PlaceInitialSetup()
	return b
}

// PieceAt returns the piece at pos, or nil if pos is off-board or the cell
// is empty.
func (b *Board) PieceAt(pos Position) *Piece {
	if !pos.InBounds() {
		return nil
	}
	return b.cells[pos.Y][pos.X]
}

// SetPieceAt places p at pos, replacing any occupant. Passing nil clears the
// cell. Placement is setup and test plumbing, not a user-facing operation,
// so an off-board position is a programmer error and panics.
func (b *Board) SetPieceAt(pos Position, p *Piece) {
	if !pos.InBounds() {
		panic(fmt.Sprintf("chess: placement off board: (%d,%d)", pos.X, pos.Y))
	}
	b.cells[pos.Y][pos.X] = p
}

// PlaceInitialSetup clears the board and populates the standard starting
// position: Black's back rank on row 0 with pawns on row 1, White's pawns on
// row 6 with the back rank on row 7.
func (b *Board) PlaceInitialSetup() {
	b.cells = [Size][Size]*Piece{}

	backRank := [Size]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for x, t := range backRank {
		b.SetPieceAt(Position{X: x, Y: 0}, &Piece{Type: t, Color: Black})
		b.SetPieceAt(Position{X: x, Y: Size - 1}, &Piece{Type: t, Color: White})
	}
	for x := 0; x < Size; x++ {
		b.SetPieceAt(Position{X: x, Y: 1}, &Piece{Type: Pawn, Color: Black})
		b.SetPieceAt(Position{X: x, Y: Size - 2}, &Piece{Type: Pawn, Color: White})
	}
}

// MovePiece relocates the piece at from to target. The target is
// re-validated against the piece's potential moves, recomputed here so
// callers never depend on a stale candidate list. On success any occupant of
// target is discarded, the origin cell becomes empty, and nil is returned.
// The board is left unchanged on error.
func (b *Board) MovePiece(from, target Position) error {
	p := b.PieceAt(from)
	if p == nil {
		return ErrNoPiece
	}

	legal := false
	for _, m := range b.PotentialMoves(from) {
		if m == target {
			legal = true
			break
		}
	}
	if !legal {
		return ErrIllegalMove
	}

	b.cells[target.Y][target.X] = p
	b.cells[from.Y][from.X] = nil
	p.HasMoved = true
	return nil
}
