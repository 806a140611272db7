package mock

import (
	"context"

	"github.com/docserve/docserve"
)

var _ docserve.ContentService = (*ContentService)(nil)

// ContentService is a mock implementation of docserve.ContentService.
type ContentService struct {
	LinesFn func(ctx context.Context, id int) ([]string, error)
}

func (s *ContentService) Lines(ctx context.Context, id int) ([]string, error) {
	return s.LinesFn(ctx, id)
}
