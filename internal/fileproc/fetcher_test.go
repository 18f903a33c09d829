package fileproc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFetcher(t *testing.T) {
	t.Run("uses default timeout", func(t *testing.T) {
		f := NewFetcher(FetcherConfig{})
		assert.Equal(t, defaultFetchTimeout, f.client.GetClient().Timeout)
	})

	t.Run("uses custom timeout", func(t *testing.T) {
		f := NewFetcher(FetcherConfig{Timeout: 5 * time.Second})
		assert.Equal(t, 5*time.Second, f.client.GetClient().Timeout)
	})
}

func TestFetcher_Fetch(t *testing.T) {
	t.Run("returns body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/files/guide.txt", r.URL.Path)
			w.Write([]byte("guide contents"))
		}))
		defer server.Close()

		data, err := NewFetcher(FetcherConfig{}).Fetch(context.Background(), server.URL+"/files/guide.txt")
		require.NoError(t, err)
		assert.Equal(t, "guide contents", string(data))
	})

	t.Run("non-success status", func(t *testing.T) {
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		_, err := NewFetcher(FetcherConfig{}).Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrFetch)
		assert.Contains(t, err.Error(), "403")
		assert.Equal(t, 1, calls, "fetch must not retry")
	})

	t.Run("transport error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		_, err := NewFetcher(FetcherConfig{}).Fetch(context.Background(), url)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrFetch)
	})

	t.Run("cancelled context", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("late"))
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewFetcher(FetcherConfig{}).Fetch(ctx, server.URL)
		assert.ErrorIs(t, err, ErrFetch)
	})
}
