package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"widgetlab/internal/news"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// entryLines returns the rendered list entries of a news view.
func entryLines(out string) []string {
	var lines []string
	for _, l := range strings.Split(out, "\n") {
		if strings.Contains(l, "• ") {
			lines = append(lines, l)
		}
	}
	return lines
}

func TestNewsView_InitialRender(t *testing.T) {
	v := NewNewsView(news.NewMockFetcher(gomock.NewController(t)))

	out := v.View()
	assert.Equal(t, StatusIdle, v.State().Status())
	assert.Contains(t, out, newsButtonLabel)
	assert.Empty(t, entryLines(out))
	assert.NotContains(t, out, "Something went wrong")
}

func TestNewsView_FetchSuccessRendersItemsInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := news.NewMockFetcher(ctrl)
	f.EXPECT().Fetch(gomock.Any()).Return(testItems(), nil).Times(1)

	v := NewNewsView(f)
	_, cmd := v.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, StatusLoading, v.State().Status())
	assert.Empty(t, entryLines(v.View()), "list region is empty while loading")

	feed(v, cmd)

	require.Equal(t, StatusSuccess, v.State().Status())
	lines := entryLines(v.View())
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "This is first title")
	assert.Contains(t, lines[1], "This is second title")
	assert.NotContains(t, v.View(), "Something went wrong")
}

func TestNewsView_FetchFailureRendersError(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := news.NewMockFetcher(ctrl)
	f.EXPECT().Fetch(gomock.Any()).Return(nil, errors.New("connection refused")).Times(1)

	v := NewNewsView(f)
	_, cmd := v.Update(keyMsg("enter"))
	feed(v, cmd)

	require.Equal(t, StatusFailed, v.State().Status())
	out := v.View()
	assert.Regexp(t, `Something went wrong`, out)
	assert.NotContains(t, out, "connection refused", "cause is not surfaced")
	assert.Empty(t, entryLines(out))
}

func TestNewsView_TriggerIgnoredWhileLoading(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := news.NewMockFetcher(ctrl)
	f.EXPECT().Fetch(gomock.Any()).Return(testItems(), nil).Times(1)

	v := NewNewsView(f)
	_, first := v.Update(keyMsg("enter"))
	require.NotNil(t, first)

	_, second := v.Update(keyMsg("enter"))
	assert.Nil(t, second, "second trigger while loading must not start a fetch")
	_, third := v.Update(TriggerFetchMsg{})
	assert.Nil(t, third)

	feed(v, first)
	assert.Equal(t, StatusSuccess, v.State().Status())
	assert.Len(t, entryLines(v.View()), 2)
}

func TestNewsView_RetriggerAfterResolution(t *testing.T) {
	calls := 0
	f := news.FetcherFunc(func(context.Context) ([]news.Item, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("first fails")
		}
		return testItems()[:1], nil
	})

	v := NewNewsView(f)
	_, cmd := v.Update(keyMsg("f"))
	feed(v, cmd)
	require.Equal(t, StatusFailed, v.State().Status())

	_, cmd = v.Update(keyMsg("f"))
	require.NotNil(t, cmd, "trigger is enabled after failure")
	assert.Equal(t, StatusLoading, v.State().Status())
	assert.NotContains(t, v.View(), "Something went wrong", "loading clears the previous error")

	feed(v, cmd)
	assert.Equal(t, StatusSuccess, v.State().Status())
	assert.Len(t, entryLines(v.View()), 1)
	assert.Equal(t, 2, calls)
}

func TestNewsView_StaleResultDropped(t *testing.T) {
	results := [][]news.Item{
		{{ID: "old", Title: "old story"}},
		{{ID: "new", Title: "new story"}},
	}
	n := 0
	f := news.FetcherFunc(func(context.Context) ([]news.Item, error) {
		r := results[n]
		n++
		return r, nil
	})

	v := NewNewsView(f)
	_, firstCmd := v.Update(keyMsg("enter"))
	first, ok := findMsg[NewsFetchedMsg](firstCmd)
	require.True(t, ok)
	v.Update(first)

	_, secondCmd := v.Update(keyMsg("enter"))
	second, ok := findMsg[NewsFetchedMsg](secondCmd)
	require.True(t, ok)

	// The first result arriving again (duplicate or late) is ignored.
	v.Update(first)
	assert.Equal(t, StatusLoading, v.State().Status())

	v.Update(second)
	require.Equal(t, StatusSuccess, v.State().Status())
	assert.Equal(t, "new", v.State().Items()[0].ID)
}

func TestNewsView_ResultForOtherMountDropped(t *testing.T) {
	v := NewNewsView(news.FetcherFunc(func(context.Context) ([]news.Item, error) {
		return testItems(), nil
	}))
	v.Update(keyMsg("enter"))

	v.Update(NewsFetchedMsg{MountID: "someone-else", Seq: 1, Items: testItems()})
	assert.Equal(t, StatusLoading, v.State().Status())
}

func TestNewsView_UnmountCancelsAndDropsLateResult(t *testing.T) {
	var fetchCtx context.Context
	f := news.FetcherFunc(func(ctx context.Context) ([]news.Item, error) {
		fetchCtx = ctx
		<-ctx.Done()
		return nil, ctx.Err()
	})

	v := NewNewsView(f)
	_, cmd := v.Update(keyMsg("enter"))
	v.Unmount()

	// Fetch runs after unmount: its context is already canceled.
	msg, ok := findMsg[NewsFetchedMsg](cmd)
	require.True(t, ok)
	require.NotNil(t, fetchCtx)
	assert.ErrorIs(t, fetchCtx.Err(), context.Canceled)

	v.Update(msg)
	assert.Equal(t, StatusLoading, v.State().Status(), "late result must not write into an unmounted view")
}

func TestNewsView_RenderIsIdempotent(t *testing.T) {
	v := NewNewsView(news.FetcherFunc(func(context.Context) ([]news.Item, error) {
		return testItems(), nil
	}))
	_, cmd := v.Update(keyMsg("enter"))
	feed(v, cmd)

	assert.Equal(t, v.View(), v.View())
}

func TestNewsView_TruncatesLongTitles(t *testing.T) {
	long := strings.Repeat("x", 200)
	v := NewNewsView(news.FetcherFunc(func(context.Context) ([]news.Item, error) {
		return []news.Item{{ID: "1", Title: long}}, nil
	}))
	v.Update(windowSize(40, 20))
	_, cmd := v.Update(keyMsg("enter"))
	feed(v, cmd)

	lines := entryLines(v.View())
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "…")
	assert.NotContains(t, lines[0], long)
}

func TestNewsView_NilFetcherFails(t *testing.T) {
	v := NewNewsView(nil)
	_, cmd := v.Update(keyMsg("enter"))
	assert.Nil(t, cmd)
	assert.Equal(t, StatusFailed, v.State().Status())
	assert.Contains(t, v.View(), "Something went wrong")
}

func TestNewsView_MouseClickOnButtonTriggers(t *testing.T) {
	calls := 0
	v := NewNewsView(news.FetcherFunc(func(context.Context) ([]news.Item, error) {
		calls++
		return testItems(), nil
	}))

	_, cmd := v.Update(tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Nil(t, cmd, "click on the title is not a trigger")

	_, cmd = v.Update(tea.MouseMsg{X: 1, Y: 2, Action: tea.MouseActionMotion})
	assert.Nil(t, cmd, "hover is not a trigger")

	_, cmd = v.Update(tea.MouseMsg{X: 1, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.NotNil(t, cmd)
	feed(v, cmd)
	assert.Equal(t, 1, calls)
	assert.Equal(t, StatusSuccess, v.State().Status())
}
