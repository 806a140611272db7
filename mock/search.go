package mock

import (
	"context"

	"github.com/docserve/docserve"
)

var _ docserve.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of docserve.SearchService.
type SearchService struct {
	SearchFn func(ctx context.Context, query string) ([]docserve.SearchResult, error)
}

func (s *SearchService) Search(ctx context.Context, query string) ([]docserve.SearchResult, error) {
	return s.SearchFn(ctx, query)
}
