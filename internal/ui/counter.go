package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CounterView shows a number with buttons to decrement and increment it.
type CounterView struct {
	Count int
}

// Ensure CounterView implements View.
var _ View = (*CounterView)(nil)

// NewCounterView creates a counter at zero.
func NewCounterView() *CounterView {
	return &CounterView{}
}

// Init implements View.
func (v *CounterView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *CounterView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case ResetCounterMsg:
		v.Count = 0
	case tea.KeyMsg:
		switch msg.String() {
		case "+", "=", "right", "l":
			v.Count++
		case "-", "left", "h":
			v.Count--
		}
	}
	return v, nil
}

// View implements View.
func (v *CounterView) View() string {
	row := lipgloss.JoinHorizontal(lipgloss.Center,
		Styles.Button.Render("-"),
		Styles.Normal.Render(fmt.Sprintf("  %d  ", v.Count)),
		Styles.Button.Render("+"),
	)
	return Styles.Title.Render("Counter App") + "\n" + row + "\n" +
		Styles.Hint.Render("-/+ or ←/→ to change")
}
