package tui

import "chess-tui/internal/chess"

// GlyphSet maps piece color and type to a fixed-width two-character cell
// glyph, indexed by chess.PieceType.
type GlyphSet struct {
	Empty string
	White [6]string
	Black [6]string
}

// UnicodeGlyphs uses the chess symbols. The trailing space keeps terminals
// that draw these at 1.5 cell width from overlapping adjacent cells. The
// filled symbols read better on dark backgrounds, so White gets the filled
// set.
var UnicodeGlyphs = GlyphSet{
	Empty: ". ",
	White: [6]string{
		chess.Pawn:   "♟ ",
		chess.Knight: "♞ ",
		chess.Bishop: "♝ ",
		chess.Rook:   "♜ ",
		chess.Queen:  "♛ ",
		chess.King:   "♚ ",
	},
	Black: [6]string{
		chess.Pawn:   "♙ ",
		chess.Knight: "♘ ",
		chess.Bishop: "♗ ",
		chess.Rook:   "♖ ",
		chess.Queen:  "♕ ",
		chess.King:   "♔ ",
	},
}

// ASCIIGlyphs is the fallback set: lowercase White, uppercase Black.
var ASCIIGlyphs = GlyphSet{
	Empty: ". ",
	White: [6]string{
		chess.Pawn:   "p ",
		chess.Knight: "n ",
		chess.Bishop: "b ",
		chess.Rook:   "r ",
		chess.Queen:  "q ",
		chess.King:   "k ",
	},
	Black: [6]string{
		chess.Pawn:   "P ",
		chess.Knight: "N ",
		chess.Bishop: "B ",
		chess.Rook:   "R ",
		chess.Queen:  "Q ",
		chess.King:   "K ",
	},
}

// Cell returns the glyph for p, or the empty-cell glyph for nil.
func (g GlyphSet) Cell(p *chess.Piece) string {
	if p == nil {
		return g.Empty
	}
	if p.Color == chess.White {
		return g.White[p.Type]
	}
	return g.Black[p.Type]
}
