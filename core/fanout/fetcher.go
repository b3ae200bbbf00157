package fanout

import (
	"context"
	"net/http"

	"github.com/leofalp/oaikit/internal/utils"
)

// Fetcher downloads one asset.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, url string) ([]byte, error)

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f(ctx, url)
}

// HTTPFetcher downloads with a single GET. A non-2xx answer is a failure.
type HTTPFetcher struct {
	Client *http.Client // nil means http.DefaultClient
}

// Fetch returns the body of url.
func (f HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	reply, err := utils.DoGet(ctx, f.Client, url)
	if err != nil {
		return nil, err
	}
	return reply.Body, nil
}
