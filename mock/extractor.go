package mock

import "github.com/fwojciec/headmeta"

var _ headmeta.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of headmeta.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*headmeta.Metadata, error)
}

func (e *Extractor) Extract(html string) (*headmeta.Metadata, error) {
	return e.ExtractFn(html)
}

var _ headmeta.HTMLParser = (*HTMLParser)(nil)

// HTMLParser is a mock implementation of headmeta.HTMLParser.
type HTMLParser struct {
	ParseFn func(html string) (headmeta.HeadDocument, error)
}

func (p *HTMLParser) Parse(html string) (headmeta.HeadDocument, error) {
	return p.ParseFn(html)
}
