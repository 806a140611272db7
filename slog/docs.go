package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/docserve/docserve"
)

// Ensure LoggingDocsService implements docserve.DocsService.
var _ docserve.DocsService = (*LoggingDocsService)(nil)

// LoggingDocsService wraps a DocsService with per-operation logging.
type LoggingDocsService struct {
	next   docserve.DocsService
	logger *slog.Logger
}

// NewLoggingDocsService creates a new LoggingDocsService.
func NewLoggingDocsService(next docserve.DocsService, logger *slog.Logger) *LoggingDocsService {
	return &LoggingDocsService{next: next, logger: logger}
}

// Search delegates to the wrapped service and logs the operation.
func (s *LoggingDocsService) Search(ctx context.Context, query string) (results []docserve.SearchResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"query", query,
			"results", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query)
}

// Page delegates to the wrapped service and logs the operation.
func (s *LoggingDocsService) Page(ctx context.Context, id, page, pageSize int) (result *docserve.PageResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("page",
			"id", id,
			"page", page,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Page(ctx, id, page, pageSize)
}

// PageRange delegates to the wrapped service and logs the operation.
func (s *LoggingDocsService) PageRange(ctx context.Context, id, startPage, endPage, pageSize int) (result *docserve.RangeResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("page range",
			"id", id,
			"start", startPage,
			"end", endPage,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.PageRange(ctx, id, startPage, endPage, pageSize)
}

// Section delegates to the wrapped service and logs the operation.
func (s *LoggingDocsService) Section(ctx context.Context, id int, heading string, depth, pageSize int) (result *docserve.SectionResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("section",
			"id", id,
			"heading", heading,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Section(ctx, id, heading, depth, pageSize)
}
