// Package lru provides the content cache: a capacity-bounded, TTL-expiring
// store of document line sequences with single-flight fetching.
package lru

import (
	"context"
	"strconv"
	"time"

	"github.com/docserve/docserve"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

const (
	// DefaultCapacity bounds the number of cached line sequences.
	DefaultCapacity = 512

	// DefaultTTL is how long a cached entry is served before the next
	// access re-fetches it.
	DefaultTTL = 12 * time.Hour
)

// Compile-time interface verification.
var _ docserve.ContentService = (*ContentCache)(nil)

// ContentCache caches the line sequences of document content, keyed by
// document ID. Entries expire after the TTL and the least-recently-used
// entry is evicted under capacity pressure; eviction and expiry only drop
// the cached lines, never the document itself, so the next access
// transparently recomputes them.
type ContentCache struct {
	docs  docserve.DocumentService
	cache *expirable.LRU[int, []string]
	group singleflight.Group
}

// Option configures a ContentCache.
type Option func(*options)

type options struct {
	capacity int
	ttl      time.Duration
}

// WithCapacity overrides DefaultCapacity.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithTTL overrides DefaultTTL.
func WithTTL(d time.Duration) Option {
	return func(o *options) {
		o.ttl = d
	}
}

// NewContentCache creates a ContentCache over the given document store.
func NewContentCache(docs docserve.DocumentService, opts ...Option) *ContentCache {
	o := options{
		capacity: DefaultCapacity,
		ttl:      DefaultTTL,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &ContentCache{
		docs:  docs,
		cache: expirable.NewLRU[int, []string](o.capacity, nil, o.ttl),
	}
}

// Lines returns the content of the document split into lines. A missing or
// expired entry triggers exactly one content-producer invocation, no matter
// how many callers ask concurrently; they all receive the same value or
// the same failure. Nothing is cached on failure.
func (c *ContentCache) Lines(ctx context.Context, id int) ([]string, error) {
	doc, err := c.docs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if lines, ok := c.cache.Get(id); ok {
		return lines, nil
	}

	// The singleflight group keys per document, so a producer that
	// touches the cache for another document cannot deadlock: no lock is
	// held across the fetch.
	v, err, _ := c.group.Do(strconv.Itoa(id), func() (any, error) {
		// Re-check under the flight: a concurrent caller may have
		// populated the entry between our miss and this call.
		if lines, ok := c.cache.Get(id); ok {
			return lines, nil
		}

		content, err := doc.Content(ctx)
		if err != nil {
			return nil, docserve.Errorf(docserve.EUPSTREAM, "fetching content for document %d: %v", id, err)
		}

		lines := docserve.SplitLines(content)
		c.cache.Add(id, lines)
		return lines, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]string), nil
}

// Len returns the number of cached entries, expired or not.
func (c *ContentCache) Len() int {
	return c.cache.Len()
}
