package tui

import tea "github.com/charmbracelet/bubbletea"

// Run starts the interactive board. The alternate screen buffer and raw
// input mode are acquired by bubbletea and restored on every exit path,
// including abnormal termination.
func Run(ascii bool) error {
	p := tea.NewProgram(NewModel(ascii), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
