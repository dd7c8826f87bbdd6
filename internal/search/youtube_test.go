package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYouTubeClient_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "lofi beats", r.URL.Query().Get("q"))
		assert.Equal(t, "snippet", r.URL.Query().Get("part"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Write([]byte(`{"items":[{"id":{"videoId":"abc"}}]}`))
	}))
	defer srv.Close()

	c := NewYouTubeClient("test-key", WithBaseURL(srv.URL))
	body, err := c.Search(context.Background(), "lofi beats")
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[{"id":{"videoId":"abc"}}]}`, string(body))
}

func TestYouTubeClient_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewYouTubeClient("test-key", WithBaseURL(srv.URL))
	_, err := c.Search(context.Background(), "anything")
	assert.Error(t, err)
}

func TestYouTubeClient_MissingKey(t *testing.T) {
	c := NewYouTubeClient("")
	_, err := c.Search(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
