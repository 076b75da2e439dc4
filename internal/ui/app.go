package ui

import (
	"fmt"
	"strings"

	"widgetlab/internal/news"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AppModel is the root model. It owns the active screen's view and mounts a
// fresh view each time the screen changes.
type AppModel struct {
	Screen     Screen
	Current    View
	KeyHandler *KeyHandler
	Fetcher    news.Fetcher
	Users      UserSource

	width, height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model showing start.
func NewAppModel(fetcher news.Fetcher, users UserSource, start Screen) *AppModel {
	a := &AppModel{
		Fetcher:    fetcher,
		Users:      users,
		KeyHandler: NewKeyHandler(newRegistry()),
	}
	a.mount(start)
	return a
}

// newRegistry binds the app-wide and screen-scoped key sequences.
func newRegistry() *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	for i, s := range Screens {
		reg.BindWithDesc(fmt.Sprintf("SPC %d", i+1), switchScreenCmd(s), s.String())
	}
	reg.BindForScreens("SPC f", func() tea.Msg { return TriggerFetchMsg{} }, "Fetch stories", []Screen{ScreenNews})
	reg.BindForScreens("SPC r", func() tea.Msg { return ResetCounterMsg{} }, "Reset counter", []Screen{ScreenCounter})
	return reg
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// newView creates the view for s.
func (a *AppModel) newView(s Screen) View {
	switch s {
	case ScreenComments:
		return NewCommentsView()
	case ScreenCounter:
		return NewCounterView()
	case ScreenHover:
		return NewHoverView()
	case ScreenSearch:
		return NewSearchView(a.Users)
	default:
		return NewNewsView(a.Fetcher)
	}
}

// mount unmounts the current view and replaces it with a fresh view for s.
func (a *AppModel) mount(s Screen) tea.Cmd {
	if u, ok := a.Current.(Unmounter); ok {
		u.Unmount()
	}
	a.Screen = s
	a.Current = a.newView(s)
	a.KeyHandler.Screen = s
	a.KeyHandler.Reset()
	if a.width > 0 {
		a.Current.Update(tea.WindowSizeMsg{Width: a.width, Height: a.bodyHeight()})
	}
	return a.Current.Init()
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Current.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SwitchScreenMsg:
		return a, a.mount(msg.Screen)
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, a.forward(tea.WindowSizeMsg{Width: msg.Width, Height: a.bodyHeight()})
	case tea.MouseMsg:
		// Views see coordinates relative to their own origin, below the header.
		msg.Y -= a.bodyTop()
		return a, a.forward(msg)
	case tea.KeyMsg:
		if consumed, cmd := a.handleKey(msg); consumed {
			return a, cmd
		}
	}
	return a, a.forward(msg)
}

// handleKey applies app keybinds. While the view captures text input, only
// ctrl-chords reach the keybind system so typing is never swallowed.
func (a *AppModel) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	s := msg.String()
	switch s {
	case "ctrl+n":
		return true, switchScreenCmd(a.Screen.next())
	case "ctrl+p":
		return true, switchScreenCmd(a.Screen.prev())
	}
	if c, ok := a.Current.(InputCapturer); ok && c.CapturingInput() && !a.KeyHandler.LeaderWaiting {
		if strings.HasPrefix(s, "ctrl+") {
			return a.KeyHandler.Handle(msg)
		}
		return false, nil
	}
	return a.KeyHandler.Handle(msg)
}

func (a *AppModel) forward(msg tea.Msg) tea.Cmd {
	v, cmd := a.Current.Update(msg)
	a.Current = v
	return cmd
}

// header renders the tab bar.
func (a *AppModel) header() string {
	tabs := make([]string, 0, len(Screens))
	for i, s := range Screens {
		label := fmt.Sprintf("%d %s", i+1, s)
		if s == a.Screen {
			tabs = append(tabs, Styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, Styles.Tab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// bodyTop is the first terminal row of the view: the header plus a blank line.
func (a *AppModel) bodyTop() int {
	return lipgloss.Height(a.header()) + 1
}

// bodyHeight is the height left for the view below the header and footer.
func (a *AppModel) bodyHeight() int {
	return max(a.height-a.bodyTop()-2, 0)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var b strings.Builder
	b.WriteString(a.header() + "\n\n")
	b.WriteString(a.Current.View())
	b.WriteString("\n\n" + Styles.Hint.Render("Press [SPC] for commands, ctrl+n/ctrl+p to switch"))
	if a.KeyHandler.LeaderWaiting {
		b.WriteString("\n" + RenderKeybindHelp(a.KeyHandler))
	}
	return b.String()
}
