package corpus

import (
	"context"
	"strings"

	"github.com/docserve/docserve"
)

// Compile-time interface verification.
var _ docserve.DocsService = (*Service)(nil)

// Service implements the query surface over the document store, search
// index, and content cache.
type Service struct {
	Documents docserve.DocumentService
	Searcher  docserve.SearchService
	Content   docserve.ContentService
}

// Search returns ranked metadata for documents matching query.
func (s *Service) Search(ctx context.Context, query string) ([]docserve.SearchResult, error) {
	return s.Searcher.Search(ctx, query)
}

// Page returns one page of the document's content.
func (s *Service) Page(ctx context.Context, id, page, pageSize int) (*docserve.PageResult, error) {
	lines, err := s.Content.Lines(ctx, id)
	if err != nil {
		return nil, err
	}

	info := docserve.Paginate(len(lines), page, docserve.ResolvePageSize(pageSize))

	return &docserve.PageResult{
		Content:    strings.Join(lines[info.Offset:info.Offset+info.Count], "\n"),
		Page:       info.Page,
		TotalPages: info.TotalPages,
	}, nil
}

// PageRange returns the content spanning startPage through endPage.
func (s *Service) PageRange(ctx context.Context, id, startPage, endPage, pageSize int) (*docserve.RangeResult, error) {
	lines, err := s.Content.Lines(ctx, id)
	if err != nil {
		return nil, err
	}

	info := docserve.PaginateRange(len(lines), startPage, endPage, docserve.ResolvePageSize(pageSize))

	return &docserve.RangeResult{
		Content:    strings.Join(lines[info.Offset:info.Offset+info.Count], "\n"),
		StartPage:  info.StartPage,
		EndPage:    info.EndPage,
		TotalPages: info.TotalPages,
	}, nil
}

// Section returns the content of the first section whose heading matches
// the query.
func (s *Service) Section(ctx context.Context, id int, heading string, depth, pageSize int) (*docserve.SectionResult, error) {
	doc, err := s.Documents.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	lines, err := s.Content.Lines(ctx, id)
	if err != nil {
		return nil, err
	}

	bounds, ok := docserve.LocateSection(doc.Headings, heading, depth, len(lines))
	if !ok {
		return nil, docserve.Errorf(docserve.ENOTFOUND, "no heading matching %q in document %d", heading, id)
	}

	size := docserve.ResolvePageSize(pageSize)
	totalPages := docserve.TotalPages(len(lines), size)
	pageStart := docserve.PageFor(bounds.StartLine, size, totalPages)
	pageEnd := docserve.PageFor(bounds.EndLine, size, totalPages)
	if pageEnd < pageStart {
		pageEnd = pageStart
	}

	return &docserve.SectionResult{
		Content:    strings.Join(lines[bounds.StartLine-1:bounds.EndLine], "\n"),
		FromLine:   bounds.StartLine,
		ToLine:     bounds.EndLine,
		PageStart:  pageStart,
		PageEnd:    pageEnd,
		TotalPages: totalPages,
	}, nil
}
