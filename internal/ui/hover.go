package ui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const hoverButtonLabel = "This will have hover and click events assigned!"

// HoverView tracks whether its button has been hovered and clicked.
// Both flags are sticky. Mouse coordinates are relative to the view's top-left corner.
type HoverView struct {
	Hovered bool
	Clicked bool
}

// Ensure HoverView implements View.
var _ View = (*HoverView)(nil)

// NewHoverView creates the screen with both flags unset.
func NewHoverView() *HoverView {
	return &HoverView{}
}

// Init implements View.
func (v *HoverView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *HoverView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if !v.inButton(msg.X, msg.Y) {
			return v, nil
		}
		switch msg.Action {
		case tea.MouseActionMotion:
			v.Hovered = true
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft {
				v.click()
			}
		}
	case tea.KeyMsg:
		if msg.String() == "enter" {
			v.click()
		}
	}
	return v, nil
}

// click marks the button clicked; a pointer that clicks has also hovered.
func (v *HoverView) click() {
	v.Clicked = true
	v.Hovered = true
}

func (v *HoverView) button() string {
	return buttonStyle(v.Hovered, true).Render(hoverButtonLabel)
}

// inButton reports whether (x, y) falls on the button, which is drawn first.
func (v *HoverView) inButton(x, y int) bool {
	b := v.button()
	return x >= 0 && y >= 0 && x < lipgloss.Width(b) && y < lipgloss.Height(b)
}

// View implements View.
func (v *HoverView) View() string {
	return v.button() + "\n" +
		Styles.Muted.Render("hovered: ") + Styles.Normal.Render(strconv.FormatBool(v.Hovered)) + "\n" +
		Styles.Muted.Render("clicked: ") + Styles.Normal.Render(strconv.FormatBool(v.Clicked))
}
