package ui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// Comment form field IDs, in focus order.
const (
	fieldCommentInput = "input"
	fieldAgreeBox     = "checkbox"
	fieldCommentBtn   = "button"
)

const (
	commentPlaceholder = "write your comment here"
	agreeLabel         = "I agree to terms and conditions"
	commentButtonLabel = "comment"
	noCommentsText     = "No Comments"
)

// Comment is one submitted comment.
type Comment struct {
	ID   string
	Text string
}

// CommentForm collects a comment: a text input, a terms checkbox and a submit button.
// The button is enabled only when the text is non-empty and the box is checked.
type CommentForm struct {
	input   textinput.Model
	checked bool
	focus   *FocusManager
}

// NewCommentForm creates a form with focus on the text input.
func NewCommentForm() *CommentForm {
	ti := textinput.New()
	ti.Placeholder = commentPlaceholder
	ti.Width = 40
	ti.Focus()
	f := &CommentForm{input: ti}
	f.focus = &FocusManager{
		Current: fieldCommentInput,
		Order:   []string{fieldCommentInput, fieldAgreeBox, fieldCommentBtn},
		OnChange: func(_, to string) {
			if to == fieldCommentInput {
				f.input.Focus()
			} else {
				f.input.Blur()
			}
		},
	}
	return f
}

// Text returns the current input value.
func (f *CommentForm) Text() string {
	return f.input.Value()
}

// Checked reports whether the terms box is checked.
func (f *CommentForm) Checked() bool {
	return f.checked
}

// CanSubmit reports whether the comment button is enabled.
func (f *CommentForm) CanSubmit() bool {
	return f.checked && strings.TrimSpace(f.input.Value()) != ""
}

// Focused returns the ID of the focused field.
func (f *CommentForm) Focused() string {
	return f.focus.Current
}

// submit emits the comment and resets the form. No-op while disabled.
func (f *CommentForm) submit() tea.Cmd {
	if !f.CanSubmit() {
		return nil
	}
	text := strings.TrimSpace(f.input.Value())
	f.input.SetValue("")
	f.checked = false
	return func() tea.Msg { return CommentSubmittedMsg{Text: text} }
}

// Update handles keys for the form.
func (f *CommentForm) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab", "down":
			f.focus.Next()
			return nil
		case "shift+tab", "up":
			f.focus.Prev()
			return nil
		}
		switch f.focus.Current {
		case fieldAgreeBox:
			switch msg.String() {
			case " ", "enter", "x":
				f.checked = !f.checked
			}
			return nil
		case fieldCommentBtn:
			switch msg.String() {
			case " ", "enter":
				return f.submit()
			}
			return nil
		case fieldCommentInput:
			if msg.String() == "enter" {
				f.focus.Next()
				return nil
			}
			if msg.String() == "esc" {
				f.focus.SetFocus(fieldAgreeBox)
				return nil
			}
		}
	}
	if !f.focus.Is(fieldCommentInput) {
		return nil
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

// View renders the form.
func (f *CommentForm) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("comment form") + "\n")
	b.WriteString(f.marker(fieldCommentInput) + f.input.View() + "\n")

	box := "[ ]"
	if f.checked {
		box = "[x]"
	}
	b.WriteString(f.marker(fieldAgreeBox) + box + " " + agreeLabel + "\n")

	btn := buttonStyle(f.focus.Is(fieldCommentBtn), f.CanSubmit()).Render(commentButtonLabel)
	b.WriteString(btn + "\n")
	b.WriteString(Styles.Hint.Render("tab: next field  enter: toggle/submit  esc: leave input"))
	return b.String()
}

func (f *CommentForm) marker(id string) string {
	if f.focus.Is(id) {
		return Styles.Selected.Render("> ")
	}
	return "  "
}

// CommentList holds submitted comments in insertion order.
type CommentList struct {
	comments []Comment
}

// Append adds a comment with a fresh ID and returns it.
func (l *CommentList) Append(text string) Comment {
	c := Comment{ID: uuid.NewString(), Text: text}
	l.comments = append(l.comments, c)
	return c
}

// Comments returns a copy of the comments.
func (l *CommentList) Comments() []Comment {
	return slices.Clone(l.comments)
}

// Len returns the number of comments.
func (l *CommentList) Len() int {
	return len(l.comments)
}

// View renders the list, or "No Comments" when empty.
func (l *CommentList) View() string {
	if len(l.comments) == 0 {
		return Styles.Empty.Render(noCommentsText)
	}
	lines := make([]string, 0, len(l.comments))
	for _, c := range l.comments {
		lines = append(lines, Styles.Entry.Render("• "+c.Text))
	}
	return strings.Join(lines, "\n")
}

// CommentsView pairs a CommentForm with the CommentList it feeds.
// The list is only appended to here, in response to CommentSubmittedMsg.
type CommentsView struct {
	Form *CommentForm
	List *CommentList
}

// Ensure CommentsView implements View.
var (
	_ View          = (*CommentsView)(nil)
	_ InputCapturer = (*CommentsView)(nil)
)

// NewCommentsView creates an empty comments screen.
func NewCommentsView() *CommentsView {
	return &CommentsView{Form: NewCommentForm(), List: &CommentList{}}
}

// Init implements View.
func (v *CommentsView) Init() tea.Cmd {
	return textinput.Blink
}

// CapturingInput implements InputCapturer.
func (v *CommentsView) CapturingInput() bool {
	return v.Form.focus.Is(fieldCommentInput)
}

// Update implements View.
func (v *CommentsView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(CommentSubmittedMsg); ok {
		v.List.Append(msg.Text)
		return v, nil
	}
	return v, v.Form.Update(msg)
}

// View implements View.
func (v *CommentsView) View() string {
	return v.Form.View() + "\n\n" + v.List.View()
}
