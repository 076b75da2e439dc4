package news

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func serveBody(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPClient_FetchReturnsItemsInOrder(t *testing.T) {
	srv := serveBody(t, http.StatusOK, `{"hits":[
		{"objectID":"1","title":"This is first title","points":10},
		{"objectID":"2","title":"This is second title"}
	],"nbHits":2}`)

	items, err := NewHTTPClient(srv.URL, time.Second).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Item{
		{ID: "1", Title: "This is first title"},
		{ID: "2", Title: "This is second title"},
	}, items)
}

func TestHTTPClient_FetchEmptyHits(t *testing.T) {
	srv := serveBody(t, http.StatusOK, `{"hits":[]}`)

	items, err := NewHTTPClient(srv.URL, time.Second).Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestHTTPClient_FetchContractViolations(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `{"hits":[]}`},
		{"not found", http.StatusNotFound, ``},
		{"not json", http.StatusOK, `<html>oops</html>`},
		{"empty body", http.StatusOK, ``},
		{"missing hits", http.StatusOK, `{"results":[]}`},
		{"null hits", http.StatusOK, `{"hits":null}`},
		{"hits not array", http.StatusOK, `{"hits":"nope"}`},
		{"hit missing objectID", http.StatusOK, `{"hits":[{"title":"t"}]}`},
		{"hit missing title", http.StatusOK, `{"hits":[{"objectID":"1"}]}`},
		{"null title", http.StatusOK, `{"hits":[{"objectID":"1","title":null}]}`},
		{"numeric objectID", http.StatusOK, `{"hits":[{"objectID":1,"title":"t"}]}`},
		{"top-level array", http.StatusOK, `[{"objectID":"1","title":"t"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := serveBody(t, tt.status, tt.body)
			items, err := NewHTTPClient(srv.URL, time.Second).Fetch(context.Background())
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrFetchFailed), "error %v should wrap ErrFetchFailed", err)
			assert.Nil(t, items)
		})
	}
}

func TestHTTPClient_FetchTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTPClient(url, time.Second).Fetch(context.Background())
	require.ErrorIs(t, err, ErrFetchFailed)
}

func TestHTTPClient_FetchHonorsContextCancel(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHTTPClient(srv.URL, 5*time.Second).Fetch(ctx)
	require.ErrorIs(t, err, ErrFetchFailed)
}

func TestHTTPClient_FetchTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	_, err := NewHTTPClient(srv.URL, 50*time.Millisecond).Fetch(context.Background())
	require.ErrorIs(t, err, ErrFetchFailed)
}

func TestHTTPClient_Defaults(t *testing.T) {
	c := NewHTTPClient("", 0)
	assert.Equal(t, DefaultURL, c.URL())
	assert.Equal(t, DefaultTimeout, c.client.Timeout)
}

func TestHTTPClient_RecordsSpans(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	ok := serveBody(t, http.StatusOK, `{"hits":[{"objectID":"1","title":"a"}]}`)
	bad := serveBody(t, http.StatusOK, `{}`)

	_, err := NewHTTPClient(ok.URL, time.Second, WithTracerProvider(tp)).Fetch(context.Background())
	require.NoError(t, err)
	_, err = NewHTTPClient(bad.URL, time.Second, WithTracerProvider(tp)).Fetch(context.Background())
	require.Error(t, err)

	spans := sr.Ended()
	require.Len(t, spans, 2)

	assert.Equal(t, "news.Fetch", spans[0].Name())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	var itemCount int64 = -1
	for _, kv := range spans[0].Attributes() {
		if kv.Key == "news.items" {
			itemCount = kv.Value.AsInt64()
		}
	}
	assert.Equal(t, int64(1), itemCount)

	assert.Equal(t, codes.Error, spans[1].Status().Code)
	assert.NotEmpty(t, spans[1].Events(), "error span should record the error event")
}

func TestHTTPClient_WithHTTPClient(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(`{"hits":[]}`))
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL, time.Second, WithHTTPClient(srv.Client()))
	_, err := c.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())
}

func TestFetcherFunc(t *testing.T) {
	want := []Item{{ID: "a", Title: "A"}}
	var f Fetcher = FetcherFunc(func(context.Context) ([]Item, error) { return want, nil })
	got, err := f.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
