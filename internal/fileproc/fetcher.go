package fileproc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultFetchTimeout = 60 * time.Second

// ErrFetch is wrapped by every remote fetch failure.
var ErrFetch = errors.New("failed to fetch file from URL")

// Fetcher downloads product files.
type Fetcher struct {
	client *resty.Client
}

// FetcherConfig holds configuration for the fetcher.
type FetcherConfig struct {
	Timeout time.Duration
}

// NewFetcher creates a new Fetcher. It never retries.
func NewFetcher(cfg FetcherConfig) *Fetcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}

	return &Fetcher{
		client: resty.New().
			SetTimeout(timeout).
			SetRetryCount(0),
	}
}

// Fetch performs one GET and returns the body of a successful response.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: status %d", ErrFetch, resp.StatusCode())
	}

	return resp.Body(), nil
}
