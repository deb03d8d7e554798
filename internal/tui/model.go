// Package tui implements an interactive terminal browser for amortization
// schedules.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/loanworks/loancalc/internal/domain"
)

// keyMap defines the key bindings for the schedule browser.
type keyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "scroll up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "scroll down"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Model holds the browser state: the computed result and a viewport over the
// rendered schedule.
type Model struct {
	result   *domain.LoanResult
	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

// NewModel creates a browser over a calculation result.
func NewModel(result *domain.LoanResult) Model {
	return Model{
		result: result,
		width:  80,
		height: 24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Run renders the result in an interactive terminal session and blocks until
// the user quits.
func Run(result *domain.LoanResult) error {
	program := tea.NewProgram(NewModel(result), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
