package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive terminal UI and blocks until the user quits.
func Run(deps Deps) error {
	p := tea.NewProgram(NewAppModel(deps), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
