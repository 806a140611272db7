package docserve

import "context"

// MaxSearchResults caps the number of results returned by a search.
const MaxSearchResults = 50

// SearchResult is one ranked search hit.
type SearchResult struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Score       float64 `json:"score"`
}

// SearchService provides full-text search over document metadata.
type SearchService interface {
	// Search returns up to MaxSearchResults results ranked best match
	// first. Matching is tokenized, case-insensitive, and includes prefix
	// matches. An empty query returns no results. Ranking ties are broken
	// by ascending document ID.
	Search(ctx context.Context, query string) ([]SearchResult, error)
}
