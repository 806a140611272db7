package mock

import (
	"context"

	"github.com/docserve/docserve"
)

var _ docserve.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of docserve.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}
