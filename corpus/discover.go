package corpus

import (
	"context"

	"github.com/docserve/docserve"
)

var _ docserve.Discoverer = (StaticDiscoverer)(nil)

// StaticDiscoverer is a fixed list of document locations. It satisfies
// docserve.Discoverer for corpora whose pages are known up front instead
// of published in a sitemap.
type StaticDiscoverer []string

// Discover returns the configured locations, ignoring source.
func (d StaticDiscoverer) Discover(_ context.Context, _ string) ([]string, error) {
	urls := make([]string, len(d))
	copy(urls, d)
	return urls, nil
}
