package news

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"widgetlab/internal/jsonutil"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultURL is the story search endpoint used when none is configured.
const DefaultURL = "https://hn.algolia.com/api/v1/search?query=React&tags=story"

// DefaultTimeout bounds a single fetch, including reading the body.
const DefaultTimeout = 10 * time.Second

// maxBodyBytes caps the response body read from the endpoint.
const maxBodyBytes = 4 << 20

// HTTPClient fetches stories with a GET against a fixed URL.
type HTTPClient struct {
	url    string
	client *http.Client
	tracer trace.Tracer
}

// Ensure HTTPClient implements Fetcher.
var _ Fetcher = (*HTTPClient)(nil)

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPClient) {
		h.client = c
	}
}

// WithTracerProvider sets the provider used for fetch spans.
// Defaults to the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(h *HTTPClient) {
		h.tracer = tp.Tracer("widgetlab/news")
	}
}

// NewHTTPClient creates a client for url. A non-positive timeout uses DefaultTimeout.
func NewHTTPClient(url string, timeout time.Duration, opts ...Option) *HTTPClient {
	if url == "" {
		url = DefaultURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	h := &HTTPClient{
		url:    url,
		client: &http.Client{Timeout: timeout},
		tracer: otel.Tracer("widgetlab/news"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// URL returns the endpoint this client fetches from.
func (h *HTTPClient) URL() string {
	return h.url
}

// searchResponse mirrors the endpoint payload. Pointers distinguish
// missing fields from empty ones.
type searchResponse struct {
	Hits *[]searchHit `json:"hits"`
}

type searchHit struct {
	ObjectID *string `json:"objectID"`
	Title    *string `json:"title"`
}

// Fetch implements Fetcher. Items are returned in the order the endpoint lists them.
func (h *HTTPClient) Fetch(ctx context.Context) ([]Item, error) {
	ctx, span := h.tracer.Start(ctx, "news.Fetch",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("http.url", h.url)),
	)
	defer span.End()

	items, err := h.fetch(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("news.items", len(items)))
	return items, nil
}

func (h *HTTPClient) fetch(ctx context.Context) ([]Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %s", ErrFetchFailed, resp.Status)
	}

	var body searchResponse
	if err := jsonutil.DecodeLimited(resp.Body, maxBodyBytes, &body, "decode search response"); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return body.items()
}

// items validates the payload shape and converts hits to Items.
func (r searchResponse) items() ([]Item, error) {
	if r.Hits == nil {
		return nil, fmt.Errorf("%w: response has no hits array", ErrFetchFailed)
	}
	items := make([]Item, 0, len(*r.Hits))
	for i, hit := range *r.Hits {
		if hit.ObjectID == nil {
			return nil, fmt.Errorf("%w: hit %d has no objectID", ErrFetchFailed, i)
		}
		if hit.Title == nil {
			return nil, fmt.Errorf("%w: hit %d has no title", ErrFetchFailed, i)
		}
		items = append(items, Item{ID: *hit.ObjectID, Title: *hit.Title})
	}
	return items, nil
}
