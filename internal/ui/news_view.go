package ui

import (
	"context"
	"log"
	"strings"

	"widgetlab/internal/news"
	"widgetlab/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// newsButtonLabel is the label of the fetch trigger button.
const newsButtonLabel = "Fetch stories"

// NewsView fetches a story list on demand and renders it.
// It owns its RequestState; only Trigger and the matching NewsFetchedMsg change it.
type NewsView struct {
	fetcher news.Fetcher
	mountID string
	seq     int
	state   RequestState
	cancel  context.CancelFunc
	spinner spinner.Model
	width   int
}

// Ensure NewsView implements View.
var (
	_ View      = (*NewsView)(nil)
	_ Unmounter = (*NewsView)(nil)
)

// NewNewsView mounts a news screen in the Idle state.
func NewNewsView(f news.Fetcher) *NewsView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Status
	return &NewsView{
		fetcher: f,
		mountID: uuid.NewString(),
		state:   IdleState(),
		spinner: s,
	}
}

// State returns the current request state.
func (v *NewsView) State() RequestState {
	return v.state
}

// Init implements View.
func (v *NewsView) Init() tea.Cmd {
	return nil
}

// Trigger starts a fetch and returns the command that performs it.
// While a fetch is in flight the trigger is ignored and nil is returned.
func (v *NewsView) Trigger() tea.Cmd {
	next, ok := v.state.Trigger()
	if !ok {
		return nil
	}
	if v.fetcher == nil {
		v.state = next.Resolve(nil, news.ErrFetchFailed)
		return nil
	}
	v.state = next
	v.seq++
	ctx, cancel := context.WithCancel(context.Background())
	v.cancel = cancel
	return tea.Batch(fetchStoriesCmd(ctx, v.fetcher, v.mountID, v.seq), v.spinner.Tick)
}

// Unmount cancels an in-flight fetch and ensures its result is never applied.
func (v *NewsView) Unmount() {
	v.release()
	v.seq++
}

func (v *NewsView) release() {
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
}

// Update implements View.
func (v *NewsView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		return v, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "f":
			return v, v.Trigger()
		}
		return v, nil
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && v.inButton(msg.X, msg.Y) {
			return v, v.Trigger()
		}
		return v, nil
	case TriggerFetchMsg:
		return v, v.Trigger()
	case NewsFetchedMsg:
		if msg.MountID != v.mountID || msg.Seq != v.seq {
			return v, nil
		}
		v.release()
		if msg.Err != nil {
			log.Printf("news: fetch failed: %v", msg.Err)
		}
		v.state = v.state.Resolve(msg.Items, msg.Err)
		return v, nil
	case spinner.TickMsg:
		if v.state.Status() == StatusLoading {
			var cmd tea.Cmd
			v.spinner, cmd = v.spinner.Update(msg)
			return v, cmd
		}
		return v, nil
	}
	return v, nil
}

// View implements View.
func (v *NewsView) View() string {
	var b strings.Builder
	title := Styles.Title.Render("Hacker News")
	if v.state.Status() == StatusLoading {
		title += " " + v.spinner.View()
	}
	b.WriteString(title + "\n")
	b.WriteString(v.button() + "\n")
	if region := v.listRegion(); region != "" {
		b.WriteString("\n" + region + "\n")
	}
	return b.String()
}

func (v *NewsView) button() string {
	return buttonStyle(true, true).Render(newsButtonLabel)
}

// inButton reports whether (x, y) falls on the button, drawn below the one-line title.
func (v *NewsView) inButton(x, y int) bool {
	b := v.button()
	return x >= 0 && y >= 1 && x < lipgloss.Width(b) && y < 1+lipgloss.Height(b)
}

// listRegion renders the items, the failure message, or nothing.
func (v *NewsView) listRegion() string {
	switch v.state.Status() {
	case StatusSuccess:
		items := v.state.Items()
		lines := make([]string, 0, len(items))
		for _, it := range items {
			lines = append(lines, Styles.Entry.Render("• "+textutil.Truncate(it.Title, v.entryWidth())))
		}
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	case StatusFailed:
		return Styles.Error.Render(v.state.Reason())
	}
	return ""
}

// entryWidth is the width available to a title after the bullet.
func (v *NewsView) entryWidth() int {
	if v.width <= 0 {
		return 80
	}
	return max(v.width-2, 1)
}
