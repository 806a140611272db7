package mock

import (
	"context"

	"github.com/docserve/docserve"
)

var _ docserve.Discoverer = (*Discoverer)(nil)

// Discoverer is a mock implementation of docserve.Discoverer.
type Discoverer struct {
	DiscoverFn func(ctx context.Context, source string) ([]string, error)
}

func (d *Discoverer) Discover(ctx context.Context, source string) ([]string, error) {
	return d.DiscoverFn(ctx, source)
}
