package mock

import (
	"context"

	"github.com/docserve/docserve"
)

var _ docserve.DocsService = (*DocsService)(nil)

// DocsService is a mock implementation of docserve.DocsService.
type DocsService struct {
	SearchFn    func(ctx context.Context, query string) ([]docserve.SearchResult, error)
	PageFn      func(ctx context.Context, id, page, pageSize int) (*docserve.PageResult, error)
	PageRangeFn func(ctx context.Context, id, startPage, endPage, pageSize int) (*docserve.RangeResult, error)
	SectionFn   func(ctx context.Context, id int, heading string, depth, pageSize int) (*docserve.SectionResult, error)
}

func (s *DocsService) Search(ctx context.Context, query string) ([]docserve.SearchResult, error) {
	return s.SearchFn(ctx, query)
}

func (s *DocsService) Page(ctx context.Context, id, page, pageSize int) (*docserve.PageResult, error) {
	return s.PageFn(ctx, id, page, pageSize)
}

func (s *DocsService) PageRange(ctx context.Context, id, startPage, endPage, pageSize int) (*docserve.RangeResult, error) {
	return s.PageRangeFn(ctx, id, startPage, endPage, pageSize)
}

func (s *DocsService) Section(ctx context.Context, id int, heading string, depth, pageSize int) (*docserve.SectionResult, error) {
	return s.SectionFn(ctx, id, heading, depth, pageSize)
}
