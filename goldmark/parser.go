// Package goldmark implements the markdown-structuring collaborator using
// the goldmark parser.
package goldmark

import (
	"bytes"
	"strings"

	"github.com/docserve/docserve"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/ast"
	gparser "github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Compile-time interface verification.
var _ docserve.Parser = (*Parser)(nil)

// Parser structures raw markdown text: YAML frontmatter, the heading
// outline with 1-based line numbers into the raw text, and title and
// description extraction.
type Parser struct {
	md goldmark.Markdown
}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{
		md: goldmark.New(goldmark.WithExtensions(meta.Meta)),
	}
}

// Parse structures raw markdown. The returned Content is the raw input
// unchanged, so heading line numbers stay aligned with the line sequence
// the content cache serves.
func (p *Parser) Parse(raw string) (*docserve.ParsedDocument, error) {
	source := []byte(raw)
	pctx := gparser.NewContext()
	root := p.md.Parser().Parse(text.NewReader(source), gparser.WithContext(pctx))

	doc := &docserve.ParsedDocument{
		Frontmatter: meta.Get(pctx),
		Content:     raw,
	}

	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok || h.Lines().Len() == 0 {
			return ast.WalkContinue, nil
		}

		doc.Headings = append(doc.Headings, docserve.Heading{
			Depth: h.Level,
			Text:  nodeText(h, source),
			Line:  lineAt(source, h.Lines().At(0).Start),
		})
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return nil, err
	}

	doc.Title = p.title(doc)
	doc.Description = frontmatterString(doc.Frontmatter, "description")

	return doc, nil
}

// title prefers the frontmatter title, then the first H1, then the first
// heading of any depth.
func (p *Parser) title(doc *docserve.ParsedDocument) string {
	if t := frontmatterString(doc.Frontmatter, "title"); t != "" {
		return t
	}
	if t := frontmatterString(doc.Frontmatter, "name"); t != "" {
		return t
	}
	for _, h := range doc.Headings {
		if h.Depth == 1 {
			return h.Text
		}
	}
	if len(doc.Headings) > 0 {
		return doc.Headings[0].Text
	}
	return ""
}

func frontmatterString(fm map[string]any, key string) string {
	if fm == nil {
		return ""
	}
	if s, ok := fm[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// nodeText collects the plain text of a node's inline children, so
// "# `Bun.build`" yields "Bun.build".
func nodeText(n ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if t, ok := c.(*ast.Text); ok {
				sb.Write(t.Segment.Value(source))
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}

// lineAt converts a byte offset into a 1-based line number.
func lineAt(source []byte, offset int) int {
	if offset > len(source) {
		offset = len(source)
	}
	return bytes.Count(source[:offset], []byte("\n")) + 1
}
