package chess

// Color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposite color.
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

// String returns the color name.
func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// PieceType is one of the six standard chess piece variants.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the piece type name.
func (t PieceType) String() string {
	switch t {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "Unknown"
	}
}

// Piece is a single chess piece. A piece does not know its own square; the
// Board is the sole authority for piece locations.
type Piece struct {
	Type  PieceType
	Color Color

	// HasMoved gates the pawn's two-square opening step. It is set by
	// Board.MovePiece on the first successful move and never cleared.
	HasMoved bool
}

// DisplayName returns the color-qualified piece name, e.g. "White Rook".
func (p *Piece) DisplayName() string {
	return p.Color.String() + " " + p.Type.String()
}
