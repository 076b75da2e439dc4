package ui

import "widgetlab/internal/news"

// SwitchScreenMsg is sent when the user selects a screen (SPC 1..5, ctrl+n, ctrl+p).
type SwitchScreenMsg struct {
	Screen Screen
}

// TriggerFetchMsg asks the news screen to fetch stories (SPC f).
type TriggerFetchMsg struct{}

// NewsFetchedMsg is sent when a story fetch resolves.
// MountID and Seq identify the view and request that issued it; results for
// any other view or an older request are dropped.
type NewsFetchedMsg struct {
	MountID string
	Seq     int
	Items   []news.Item
	Err     error
}

// CommentSubmittedMsg is sent when the comment form is submitted.
type CommentSubmittedMsg struct {
	Text string
}

// ResetCounterMsg resets the counter to zero (SPC r).
type ResetCounterMsg struct{}

// SearchChangedMsg is sent once per change of the search input's value.
type SearchChangedMsg struct {
	Value string
}

// UserLoadedMsg is sent when the signed-in user has been loaded.
type UserLoadedMsg struct {
	User User
	Err  error
}
