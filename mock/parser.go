package mock

import "github.com/docserve/docserve"

var _ docserve.Parser = (*Parser)(nil)

// Parser is a mock implementation of docserve.Parser.
type Parser struct {
	ParseFn func(raw string) (*docserve.ParsedDocument, error)
}

func (p *Parser) Parse(raw string) (*docserve.ParsedDocument, error) {
	return p.ParseFn(raw)
}
