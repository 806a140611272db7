package mock

import (
	"context"

	"github.com/docserve/docserve"
)

var _ docserve.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of docserve.DocumentService.
type DocumentService struct {
	RegisterFn func(ctx context.Context, doc *docserve.Document) (int, error)
	FindByIDFn func(ctx context.Context, id int) (*docserve.Document, error)
	CountFn    func(ctx context.Context) (int, error)
}

func (s *DocumentService) Register(ctx context.Context, doc *docserve.Document) (int, error) {
	return s.RegisterFn(ctx, doc)
}

func (s *DocumentService) FindByID(ctx context.Context, id int) (*docserve.Document, error) {
	return s.FindByIDFn(ctx, id)
}

func (s *DocumentService) Count(ctx context.Context) (int, error) {
	return s.CountFn(ctx)
}
