// Package goquery implements headmeta's markup-parsing capability on top of
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/headmeta"
	"golang.org/x/net/html"
)

// Ensure Parser implements headmeta.HTMLParser at compile time.
var _ headmeta.HTMLParser = (*Parser)(nil)

// Parser parses HTML into a goquery-backed headmeta.HeadDocument.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses rawHTML. Malformed markup is repaired by the HTML5 parsing
// algorithm; an error is returned only when parsing fails outright.
func (p *Parser) Parse(rawHTML string) (headmeta.HeadDocument, error) {
	root, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, headmeta.Errorf(headmeta.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: goquery.NewDocumentFromNode(root)}, nil
}

// NewExtractor creates a headmeta.MetadataExtractor backed by a Parser.
func NewExtractor() *headmeta.MetadataExtractor {
	return headmeta.NewExtractor(NewParser())
}

// Ensure Document implements headmeta.HeadDocument at compile time.
var _ headmeta.HeadDocument = (*Document)(nil)

// Document wraps a goquery document.
type Document struct {
	doc *goquery.Document
}

// First returns the first element named tag in document order.
func (d *Document) First(tag string) *headmeta.Element {
	return toElement(d.doc.Find(tag).First())
}

// FirstWithAttr returns the first element named tag whose attr equals value.
// The comparison is exact and case-sensitive.
func (d *Document) FirstWithAttr(tag, attr, value string) *headmeta.Element {
	sel := d.doc.Find(tag).FilterFunction(func(_ int, s *goquery.Selection) bool {
		v, ok := s.Attr(attr)
		return ok && v == value
	})
	return toElement(sel.First())
}

func toElement(sel *goquery.Selection) *headmeta.Element {
	if sel.Length() == 0 {
		return nil
	}
	node := sel.Get(0)
	attrs := make(map[string]string, len(node.Attr))
	for _, a := range node.Attr {
		// Duplicate attributes: the first occurrence wins.
		if _, ok := attrs[a.Key]; !ok {
			attrs[a.Key] = a.Val
		}
	}
	return &headmeta.Element{
		Attrs: attrs,
		Text:  sel.Text(),
	}
}
