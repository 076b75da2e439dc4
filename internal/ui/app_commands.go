package ui

import (
	"context"

	"widgetlab/internal/news"

	tea "github.com/charmbracelet/bubbletea"
)

// fetchStoriesCmd returns a command that performs one fetch and reports it
// as a NewsFetchedMsg tagged with the issuing view and request.
func fetchStoriesCmd(ctx context.Context, f news.Fetcher, mountID string, seq int) tea.Cmd {
	return func() tea.Msg {
		items, err := f.Fetch(ctx)
		return NewsFetchedMsg{MountID: mountID, Seq: seq, Items: items, Err: err}
	}
}

// loadUserCmd returns a command that loads the signed-in user.
func loadUserCmd(src UserSource) tea.Cmd {
	return func() tea.Msg {
		if src == nil {
			return UserLoadedMsg{}
		}
		u, err := src.CurrentUser(context.Background())
		return UserLoadedMsg{User: u, Err: err}
	}
}

// switchScreenCmd returns a command that switches to s.
func switchScreenCmd(s Screen) tea.Cmd {
	return func() tea.Msg {
		return SwitchScreenMsg{Screen: s}
	}
}
