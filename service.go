package docserve

import "context"

// PageResult is one page of a document's content.
type PageResult struct {
	Content    string `json:"content"`
	Page       int    `json:"page"`
	TotalPages int    `json:"totalPages"`
}

// RangeResult is a contiguous page range of a document's content.
type RangeResult struct {
	Content    string `json:"content"`
	StartPage  int    `json:"startPage"`
	EndPage    int    `json:"endPage"`
	TotalPages int    `json:"totalPages"`
}

// SectionResult is a heading-bounded slice of a document's content.
type SectionResult struct {
	Content    string `json:"content"`
	FromLine   int    `json:"fromLine"`
	ToLine     int    `json:"toLine"`
	PageStart  int    `json:"pageStart"`
	PageEnd    int    `json:"pageEnd"`
	TotalPages int    `json:"totalPages"`
}

// DocsService is the surface the protocol layer consumes.
//
// For every operation a pageSize of 0 means "not specified" and resolves to
// DefaultPageSize; explicit values are clamped into [MinPageSize,
// MaxPageSize]. Page numbers are clamped into the document's valid range.
type DocsService interface {
	// Search returns ranked metadata for documents matching query.
	Search(ctx context.Context, query string) ([]SearchResult, error)

	// Page returns one page of the document's content.
	// Returns ENOTFOUND for an unknown document.
	Page(ctx context.Context, id, page, pageSize int) (*PageResult, error)

	// PageRange returns the content spanning startPage through endPage.
	// An endPage of 0 defaults to startPage.
	PageRange(ctx context.Context, id, startPage, endPage, pageSize int) (*RangeResult, error)

	// Section returns the content of the first section whose heading
	// matches the query, optionally restricted to an exact heading depth
	// (0 means any). Returns ENOTFOUND when the document or the heading
	// is missing.
	Section(ctx context.Context, id int, heading string, depth, pageSize int) (*SectionResult, error)
}
