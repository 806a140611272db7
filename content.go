package docserve

import (
	"context"
	"strings"
)

// ContentFunc produces the full raw text of a document.
// Implementations must be safe for concurrent use; the content cache
// collapses concurrent invocations per document.
type ContentFunc func(ctx context.Context) (string, error)

// StaticContent returns a ContentFunc that always produces s.
func StaticContent(s string) ContentFunc {
	return func(context.Context) (string, error) {
		return s, nil
	}
}

// ContentService serves the cached line sequence of a document's content.
type ContentService interface {
	// Lines returns the content of the document split into lines.
	// Returns ENOTFOUND if the document does not exist and EUPSTREAM if
	// the content producer fails.
	Lines(ctx context.Context, id int) ([]string, error)
}

// SplitLines splits content on "\n" boundaries, stripping a trailing "\r"
// from each line. Line numbers reported elsewhere (headings, section
// bounds) align 1:1 with the indices of the returned slice.
func SplitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
