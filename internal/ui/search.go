package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// User is the signed-in user shown on the search screen.
type User struct {
	ID   string
	Name string
}

// UserSource loads the signed-in user.
type UserSource interface {
	CurrentUser(ctx context.Context) (User, error)
}

// StaticUserSource always returns the same user.
type StaticUserSource User

// CurrentUser implements UserSource.
func (s StaticUserSource) CurrentUser(context.Context) (User, error) {
	return User(s), nil
}

// DefaultUser is returned by the default UserSource.
var DefaultUser = StaticUserSource{ID: "1", Name: "Robin"}

// Search is a labelled text input that emits a SearchChangedMsg for every
// change of its value.
type Search struct {
	Label string
	input textinput.Model
}

// NewSearch creates a focused search input with the given label.
func NewSearch(label string) *Search {
	ti := textinput.New()
	ti.Width = 30
	ti.Prompt = ""
	ti.Focus()
	return &Search{Label: label, input: ti}
}

// Value returns the current text.
func (s *Search) Value() string {
	return s.input.Value()
}

// Focused reports whether the input has focus.
func (s *Search) Focused() bool {
	return s.input.Focused()
}

// Update passes msg to the input and reports a value change, if any.
func (s *Search) Update(msg tea.Msg) tea.Cmd {
	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	after := s.input.Value()
	if after == before {
		return cmd
	}
	return tea.Batch(cmd, func() tea.Msg { return SearchChangedMsg{Value: after} })
}

// View renders the label and input.
func (s *Search) View() string {
	return Styles.Normal.Render(s.Label) + " " + s.input.View()
}

// SearchView shows the signed-in user and a search box echoing its query.
type SearchView struct {
	Search *Search
	users  UserSource
	user   *User
	query  string
}

// Ensure SearchView implements View.
var (
	_ View          = (*SearchView)(nil)
	_ InputCapturer = (*SearchView)(nil)
)

// NewSearchView creates the screen; the user is loaded by Init.
func NewSearchView(users UserSource) *SearchView {
	return &SearchView{Search: NewSearch("Search:"), users: users}
}

// Init implements View.
func (v *SearchView) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, loadUserCmd(v.users))
}

// CapturingInput implements InputCapturer.
func (v *SearchView) CapturingInput() bool {
	return v.Search.Focused()
}

// Query returns the last value reported by the search input.
func (v *SearchView) Query() string {
	return v.query
}

// Update implements View.
func (v *SearchView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case UserLoadedMsg:
		if msg.Err == nil && msg.User.Name != "" {
			u := msg.User
			v.user = &u
		}
		return v, nil
	case SearchChangedMsg:
		v.query = msg.Value
		return v, nil
	case tea.KeyMsg:
		if v.Search.Focused() {
			if msg.String() == "esc" {
				v.Search.input.Blur()
				return v, nil
			}
		} else {
			if msg.String() == "/" || msg.String() == "enter" {
				return v, v.Search.input.Focus()
			}
			return v, nil
		}
	}
	return v, v.Search.Update(msg)
}

// View implements View.
func (v *SearchView) View() string {
	var b strings.Builder
	if v.user != nil {
		b.WriteString(Styles.Status.Render("Signed in as "+v.user.Name) + "\n\n")
	}
	b.WriteString(v.Search.View() + "\n")
	if v.query != "" {
		b.WriteString("\n" + Styles.Normal.Render("Searches for "+v.query) + "\n")
	}
	if !v.Search.Focused() {
		b.WriteString("\n" + Styles.Hint.Render("/ to search"))
	}
	return b.String()
}
