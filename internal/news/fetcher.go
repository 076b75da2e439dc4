package news

import (
	"context"
	"errors"
)

//go:generate mockgen -source=fetcher.go -destination=fetcher_mock.go -package=news

// ErrFetchFailed is the single error kind for fetches: transport, status,
// and payload failures all wrap it.
var ErrFetchFailed = errors.New("fetch failed")

// FailedReason is the fixed message shown to users when a fetch fails.
// The underlying cause is not surfaced.
const FailedReason = "Something went wrong while fetching stories."

// Item is one story returned by the upstream source.
type Item struct {
	ID    string
	Title string
}

// Fetcher performs a single fetch of the story list.
type Fetcher interface {
	Fetch(ctx context.Context) ([]Item, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context) ([]Item, error)

// Fetch implements Fetcher.
func (f FetcherFunc) Fetch(ctx context.Context) ([]Item, error) {
	return f(ctx)
}
