package docserve

// Page size bounds. A request of 0 means "not specified" and resolves to
// DefaultPageSize at the service boundary; explicit requests are clamped
// into [MinPageSize, MaxPageSize].
const (
	DefaultPageSize = 200
	MinPageSize     = 1
	MaxPageSize     = 500
)

// PageInfo describes one page of a line sequence.
type PageInfo struct {
	Offset     int // 0-based index of the first line on the page
	Count      int // number of lines on the page
	Page       int // clamped page number, 1-based
	TotalPages int // always >= 1
}

// RangeInfo describes a contiguous page range of a line sequence.
type RangeInfo struct {
	Offset     int
	Count      int
	StartPage  int
	EndPage    int
	TotalPages int
}

// ClampPageSize clamps a requested page size into [MinPageSize, MaxPageSize].
func ClampPageSize(n int) int {
	if n < MinPageSize {
		return MinPageSize
	}
	if n > MaxPageSize {
		return MaxPageSize
	}
	return n
}

// ResolvePageSize maps an unspecified page size (0 or negative at the API
// boundary, where absence is encoded as the zero value) to DefaultPageSize
// and clamps everything else.
func ResolvePageSize(n int) int {
	if n == 0 {
		return DefaultPageSize
	}
	return ClampPageSize(n)
}

// TotalPages returns the number of pages needed for totalLines lines.
// An empty document still has one page containing zero lines.
func TotalPages(totalLines, pageSize int) int {
	pageSize = ClampPageSize(pageSize)
	n := (totalLines + pageSize - 1) / pageSize
	if n < 1 {
		return 1
	}
	return n
}

// Paginate computes the slice of a totalLines-long line sequence covered by
// the requested page. The page size is clamped first, then the page number
// is clamped to [1, TotalPages].
func Paginate(totalLines, page, pageSize int) PageInfo {
	pageSize = ClampPageSize(pageSize)
	totalPages := TotalPages(totalLines, pageSize)
	page = clampPage(page, totalPages)

	offset := (page - 1) * pageSize
	count := totalLines - offset
	if count > pageSize {
		count = pageSize
	}
	if count < 0 {
		count = 0
	}

	return PageInfo{
		Offset:     offset,
		Count:      count,
		Page:       page,
		TotalPages: totalPages,
	}
}

// PaginateRange computes the slice spanning from the start of startPage to
// the end of endPage. An endPage of 0 means "not specified" and defaults to
// startPage. Both pages are clamped independently; endPage is then floored
// to be >= startPage.
func PaginateRange(totalLines, startPage, endPage, pageSize int) RangeInfo {
	pageSize = ClampPageSize(pageSize)
	totalPages := TotalPages(totalLines, pageSize)

	startPage = clampPage(startPage, totalPages)
	if endPage == 0 {
		endPage = startPage
	}
	endPage = clampPage(endPage, totalPages)
	if endPage < startPage {
		endPage = startPage
	}

	offset := (startPage - 1) * pageSize
	end := endPage * pageSize
	if end > totalLines {
		end = totalLines
	}
	count := end - offset
	if count < 0 {
		count = 0
	}

	return RangeInfo{
		Offset:     offset,
		Count:      count,
		StartPage:  startPage,
		EndPage:    endPage,
		TotalPages: totalPages,
	}
}

// PageFor maps a 1-based line number to the page that contains it.
func PageFor(line, pageSize, totalPages int) int {
	pageSize = ClampPageSize(pageSize)
	page := (line + pageSize - 1) / pageSize
	return clampPage(page, totalPages)
}

func clampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
