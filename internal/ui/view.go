package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
// Each View represents a screen with its own model, update, and view.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// Unmounter is implemented by views that hold resources past their lifetime
// on screen (in-flight requests). The app calls Unmount before discarding the view.
type Unmounter interface {
	Unmount()
}

// InputCapturer is implemented by views with a text field. While
// CapturingInput returns true, keys go to the view before app keybinds.
type InputCapturer interface {
	CapturingInput() bool
}
