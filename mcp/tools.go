package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/docserve/docserve"
)

// SearchInput is the input schema for the search_docs tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the search query to match against document titles and descriptions"`
}

// SearchOutput is the output schema for the search_docs tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Score       float64 `json:"score"`
}

// PageInput is the input schema for the get_page tool.
type PageInput struct {
	ID       int `json:"id" jsonschema:"the document id from a search result"`
	Page     int `json:"page,omitempty" jsonschema:"the page number to read (default 1)"`
	PageSize int `json:"pageSize,omitempty" jsonschema:"lines per page, 1 to 500 (default 200)"`
}

// PageOutput is the output schema for the get_page tool.
type PageOutput struct {
	Content    string `json:"content"`
	Page       int    `json:"page"`
	TotalPages int    `json:"totalPages"`
}

// PageRangeInput is the input schema for the get_page_range tool.
type PageRangeInput struct {
	ID        int `json:"id" jsonschema:"the document id from a search result"`
	StartPage int `json:"startPage" jsonschema:"the first page to read"`
	EndPage   int `json:"endPage,omitempty" jsonschema:"the last page to read (default startPage)"`
	PageSize  int `json:"pageSize,omitempty" jsonschema:"lines per page, 1 to 500 (default 200)"`
}

// PageRangeOutput is the output schema for the get_page_range tool.
type PageRangeOutput struct {
	Content    string `json:"content"`
	StartPage  int    `json:"startPage"`
	EndPage    int    `json:"endPage"`
	TotalPages int    `json:"totalPages"`
}

// SectionInput is the input schema for the get_section tool.
type SectionInput struct {
	ID       int    `json:"id" jsonschema:"the document id from a search result"`
	Heading  string `json:"heading" jsonschema:"the heading text of the section to extract"`
	Depth    int    `json:"depth,omitempty" jsonschema:"restrict matching to headings of this depth, 1 to 6 (default any)"`
	PageSize int    `json:"pageSize,omitempty" jsonschema:"lines per page used for page references (default 200)"`
}

// SectionOutput is the output schema for the get_section tool.
type SectionOutput struct {
	Content    string `json:"content"`
	FromLine   int    `json:"fromLine"`
	ToLine     int    `json:"toLine"`
	PageStart  int    `json:"pageStart"`
	PageEnd    int    `json:"pageEnd"`
	TotalPages int    `json:"totalPages"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_docs",
		Description: "Search the documentation corpus by title and description",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_page",
		Description: "Read one page of a document's content",
	}, s.handlePage)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_page_range",
		Description: "Read a contiguous range of pages from a document",
	}, s.handlePageRange)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_section",
		Description: "Extract the section under a heading from a document",
	}, s.handleSection)
}

// handleSearch handles the search_docs tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	results, err := s.docs.Search(ctx, input.Query)
	if err != nil {
		return nil, SearchOutput{}, toolError(err)
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}
	for i := range results {
		output.Results[i] = SearchResultOutput{
			ID:          results[i].ID,
			Title:       results[i].Title,
			Description: results[i].Description,
			Score:       results[i].Score,
		}
	}

	return nil, output, nil
}

// handlePage handles the get_page tool invocation.
func (s *Server) handlePage(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PageInput,
) (*mcp.CallToolResult, PageOutput, error) {
	result, err := s.docs.Page(ctx, input.ID, input.Page, input.PageSize)
	if err != nil {
		return nil, PageOutput{}, toolError(err)
	}

	return nil, PageOutput{
		Content:    result.Content,
		Page:       result.Page,
		TotalPages: result.TotalPages,
	}, nil
}

// handlePageRange handles the get_page_range tool invocation.
func (s *Server) handlePageRange(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PageRangeInput,
) (*mcp.CallToolResult, PageRangeOutput, error) {
	result, err := s.docs.PageRange(ctx, input.ID, input.StartPage, input.EndPage, input.PageSize)
	if err != nil {
		return nil, PageRangeOutput{}, toolError(err)
	}

	return nil, PageRangeOutput{
		Content:    result.Content,
		StartPage:  result.StartPage,
		EndPage:    result.EndPage,
		TotalPages: result.TotalPages,
	}, nil
}

// handleSection handles the get_section tool invocation.
func (s *Server) handleSection(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SectionInput,
) (*mcp.CallToolResult, SectionOutput, error) {
	result, err := s.docs.Section(ctx, input.ID, input.Heading, input.Depth, input.PageSize)
	if err != nil {
		return nil, SectionOutput{}, toolError(err)
	}

	return nil, SectionOutput{
		Content:    result.Content,
		FromLine:   result.FromLine,
		ToLine:     result.ToLine,
		PageStart:  result.PageStart,
		PageEnd:    result.PageEnd,
		TotalPages: result.TotalPages,
	}, nil
}

// toolError surfaces the user-facing message of an application error and
// hides internal detail behind the generic message.
func toolError(err error) error {
	return errors.New(docserve.ErrorMessage(err))
}
