package docserve

import "context"

// Fetcher retrieves raw text from URLs.
type Fetcher interface {
	// Fetch retrieves the body at url as text.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (string, error)
}

// Discoverer produces candidate document locations for a source.
// Implementations hide sitemap parsing vs fixed URL lists.
type Discoverer interface {
	Discover(ctx context.Context, source string) ([]string, error)
}

// HostLimiter provides per-host rate limiting for upstream fetches.
type HostLimiter interface {
	// Wait blocks until the rate limit allows a request to the host.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, host string) error
}

// ParsedDocument holds the structured fields extracted from raw markdown.
// Heading line numbers are 1-based positions in the raw text, so they stay
// aligned with the line sequence served by the content cache.
type ParsedDocument struct {
	Title       string
	Description string
	Frontmatter map[string]any
	Headings    []Heading
	Content     string
}

// Parser structures raw markdown text.
type Parser interface {
	Parse(raw string) (*ParsedDocument, error)
}
