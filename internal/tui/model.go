package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"chess-tui/internal/chess"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Select, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultKeys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
	Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
	Left:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
	Right:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
	Select: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space/enter", "select")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Model is the whole UI session: the board plus the cursor/selection state
// driven by the two-phase select interaction. Selection is created on a
// select over an occupied cell and consumed by the next select regardless of
// outcome.
type Model struct {
	board  *chess.Board
	cursor chess.Position

	selected *chess.Position  // nil when no piece is selected
	moves    []chess.Position // candidate destinations for the selection

	status string
	keys   keyMap
	help   help.Model
	glyphs GlyphSet
}

func NewModel(ascii bool) Model {
	glyphs := UnicodeGlyphs
	if ascii {
		glyphs = ASCIIGlyphs
	}
	return Model{
		board:  chess.NewBoardInitial(),
		keys:   defaultKeys,
		help:   help.New(),
		glyphs: glyphs,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.moveCursor(0, -1)
		case key.Matches(msg, m.keys.Down):
			m.moveCursor(0, 1)
		case key.Matches(msg, m.keys.Left):
			m.moveCursor(-1, 0)
		case key.Matches(msg, m.keys.Right):
			m.moveCursor(1, 0)
		case key.Matches(msg, m.keys.Select):
			m.handleSelect()
		}
	}
	return m, nil
}

// moveCursor shifts the cursor, clamped to the board. Moving the cursor does
// not touch the selection; a held selection is re-announced in the status
// line.
func (m *Model) moveCursor(dx, dy int) {
	m.cursor.X = clamp(m.cursor.X+dx, 0, chess.Size-1)
	m.cursor.Y = clamp(m.cursor.Y+dy, 0, chess.Size-1)

	m.status = ""
	if m.selected != nil {
		if p := m.board.PieceAt(*m.selected); p != nil {
			m.status = p.DisplayName() + " selected"
		}
	}
}

// handleSelect drives the Idle/Selected state machine. In Idle, selecting an
// occupied cell computes that piece's candidate moves; selecting an empty
// cell only reports it. In Selected, a cell in the candidate set applies the
// move and anything else discards the selection. Either way the selection is
// consumed.
func (m *Model) handleSelect() {
	if m.selected != nil {
		from := *m.selected
		name := m.board.PieceAt(from).DisplayName()
		if err := m.board.MovePiece(from, m.cursor); err != nil {
			m.status = "Deselected"
		} else {
			m.status = "Moved " + name
		}
		m.selected = nil
		m.moves = nil
		return
	}

	p := m.board.PieceAt(m.cursor)
	if p == nil {
		m.status = "Empty space selected"
		return
	}
	sel := m.cursor
	m.selected = &sel
	m.moves = m.board.PotentialMoves(sel)
	m.status = p.DisplayName() + " selected"
}

func (m Model) View() string {
	title := lipgloss.NewStyle().Bold(true).Render("chess-tui")

	return title + "\n\n" +
		m.renderBoard() + "\n" +
		m.status + "\n" +
		m.help.View(m.keys) + "\n"
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
