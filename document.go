package docserve

import (
	"context"
	"strings"
	"unicode/utf8"
)

// PreviewMaxLen bounds the length of a document preview in characters.
const PreviewMaxLen = 400

// Heading is one entry in a document's structural outline.
// Line numbers are 1-based and refer to the document's raw content.
type Heading struct {
	Depth int    `json:"depth"` // 1..6
	Text  string `json:"text"`
	Line  int    `json:"line"`
}

// Document represents one ingested documentation page.
//
// The ID is assigned sequentially at registration time, starting at 0.
// It is immutable and never reused or renumbered for the lifetime of the
// process; every downstream lookup (content cache, section location) keys
// on it.
type Document struct {
	ID          int       `json:"id"`
	SourceURL   string    `json:"sourceUrl"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Preview     string    `json:"preview"`
	Headings    []Heading `json:"headings,omitempty"`
	ContentHash string    `json:"contentHash"`

	// Content produces the full raw text of the page. It may return the
	// text captured at ingestion (static entries) or re-fetch it from the
	// source (lazy entries). Callers go through the content cache, which
	// invokes the producer at most once per cache lifetime.
	Content ContentFunc `json:"-"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Title == "" {
		return Errorf(EINVALID, "document title required")
	}
	if d.Content == nil {
		return Errorf(EINVALID, "document content producer required")
	}
	for _, h := range d.Headings {
		if h.Depth < 1 || h.Depth > 6 {
			return Errorf(EINVALID, "heading depth %d out of range", h.Depth)
		}
		if h.Line < 1 {
			return Errorf(EINVALID, "heading line %d out of range", h.Line)
		}
	}
	return nil
}

// DocumentService manages the document corpus.
type DocumentService interface {
	// Register adds a document to the corpus, assigns the next sequential
	// ID, and indexes the document for search in the same transaction.
	// The assigned ID is stored on doc and returned.
	Register(ctx context.Context, doc *Document) (int, error)

	// FindByID retrieves a document by ID.
	// Returns ENOTFOUND if the document does not exist.
	FindByID(ctx context.Context, id int) (*Document, error)

	// Count returns the number of registered documents.
	Count(ctx context.Context) (int, error)
}

// Preview derives a bounded-length single-line summary from markdown
// content. It skips frontmatter, headings, and code fences, collapses the
// first paragraph onto one line, and truncates to PreviewMaxLen characters.
func Preview(content string) string {
	lines := SplitLines(content)

	i := 0
	// Skip a leading frontmatter block.
	if i < len(lines) && strings.TrimSpace(lines[i]) == "---" {
		for i++; i < len(lines); i++ {
			if strings.TrimSpace(lines[i]) == "---" {
				i++
				break
			}
		}
	}

	var parts []string
	inFence := false
	for ; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if strings.HasPrefix(line, "```") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		if line == "" {
			if len(parts) > 0 {
				break // end of first paragraph
			}
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		parts = append(parts, line)
	}

	preview := strings.Join(parts, " ")
	// The bound is in characters, not bytes: multi-byte text must never be
	// cut mid-rune.
	if utf8.RuneCountInString(preview) > PreviewMaxLen {
		runes := []rune(preview)
		preview = strings.TrimSpace(string(runes[:PreviewMaxLen-3])) + "..."
	}
	return preview
}
