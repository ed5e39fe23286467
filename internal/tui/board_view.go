package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"chess-tui/internal/chess"
)

// Cell backgrounds. Highlight precedence when layers overlap the same cell:
// selection beats candidate beats cursor.
var (
	boardStyle     = lipgloss.NewStyle().Background(lipgloss.Color("0"))
	cursorStyle    = lipgloss.NewStyle().Background(lipgloss.Color("8"))
	selectedStyle  = lipgloss.NewStyle().Background(lipgloss.Color("2"))
	candidateStyle = lipgloss.NewStyle().Background(lipgloss.Color("1"))
)

// renderBoard produces the 8x8 grid, row by row, one two-character glyph per
// cell with its highlight background applied.
func (m Model) renderBoard() string {
	var b strings.Builder
	for y := 0; y < chess.Size; y++ {
		for x := 0; x < chess.Size; x++ {
			pos := chess.Position{X: x, Y: y}
			cell := m.glyphs.Cell(m.board.PieceAt(pos))
			b.WriteString(m.cellStyle(pos).Render(cell))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (m Model) cellStyle(pos chess.Position) lipgloss.Style {
	switch {
	case m.selected != nil && *m.selected == pos:
		return selectedStyle
	case m.isCandidate(pos):
		return candidateStyle
	case pos == m.cursor:
		return cursorStyle
	}
	return boardStyle
}

func (m Model) isCandidate(pos chess.Position) bool {
	for _, mv := range m.moves {
		if mv == pos {
			return true
		}
	}
	return false
}
