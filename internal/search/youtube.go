// Package search wraps the keyword video lookup. Results pass through as
// opaque JSON; whatever the client picks out of them flows back in through
// state updates the core never interprets.
package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3"

var ErrNotConfigured = errors.New("youtube api key not configured")

type YouTubeClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

type Option func(*YouTubeClient)

// WithBaseURL points the client at a different endpoint. Tests use it to
// target an httptest server.
func WithBaseURL(u string) Option {
	return func(c *YouTubeClient) { c.baseURL = u }
}

func NewYouTubeClient(apiKey string, opts ...Option) *YouTubeClient {
	c := &YouTubeClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search runs a keyword query and returns the provider response verbatim.
func (c *YouTubeClient) Search(ctx context.Context, query string) ([]byte, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("maxResults", "1")
	q.Set("type", "video")
	q.Set("q", query)
	q.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("youtube api error: %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}
