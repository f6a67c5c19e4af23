package headmeta

import "strings"

// Element is a matched element: its attributes and text content.
type Element struct {
	Attrs map[string]string
	Text  string
}

// Attr returns the named attribute and whether it is set.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.Attrs[name]
	return v, ok
}

// HeadDocument is a parsed markup tree that can be queried for elements.
type HeadDocument interface {
	// First returns the first element with the given tag name in document
	// order, or nil if there is none.
	First(tag string) *Element

	// FirstWithAttr returns the first element with the given tag name whose
	// attribute attr equals value, or nil if there is none.
	FirstWithAttr(tag, attr, value string) *Element
}

// HTMLParser parses markup into a queryable tree.
type HTMLParser interface {
	// Parse returns an error only if the input cannot be parsed at all.
	Parse(html string) (HeadDocument, error)
}

// Extractor extracts a metadata record from an HTML document.
type Extractor interface {
	// Extract parses raw HTML and resolves the record fields.
	// Missing tags are reported as nil fields, never as errors.
	Extract(html string) (*Metadata, error)
}

// Ensure MetadataExtractor implements Extractor at compile time.
var _ Extractor = (*MetadataExtractor)(nil)

// MetadataExtractor binds an HTMLParser to ExtractMetadata.
type MetadataExtractor struct {
	parser HTMLParser
}

// NewExtractor creates a MetadataExtractor backed by parser.
func NewExtractor(parser HTMLParser) *MetadataExtractor {
	return &MetadataExtractor{parser: parser}
}

// Extract parses html and returns its metadata record.
// Parser failures are returned unchanged.
func (e *MetadataExtractor) Extract(html string) (*Metadata, error) {
	doc, err := e.parser.Parse(html)
	if err != nil {
		return nil, err
	}
	return ExtractMetadata(doc), nil
}

// ExtractMetadata resolves every record field from doc. Each field is looked
// up independently; the first matching element wins.
func ExtractMetadata(doc HeadDocument) *Metadata {
	description := doc.FirstWithAttr("meta", "property", "og:description")
	if description == nil {
		description = doc.FirstWithAttr("meta", "name", "description")
	}

	m := &Metadata{
		URL:         content(doc.FirstWithAttr("meta", "property", "og:url")),
		SiteName:    content(doc.FirstWithAttr("meta", "property", "og:site_name")),
		Description: content(description),
		Keywords:    keywords(doc.FirstWithAttr("meta", "name", "keywords")),
		Author:      content(doc.FirstWithAttr("meta", "name", "author")),
	}
	if title := doc.First("title"); title != nil {
		m.Title = String(title.Text)
	}
	return m
}

// content returns the content attribute of el, "" if unset, or nil if el is nil.
func content(el *Element) *string {
	if el == nil {
		return nil
	}
	v, _ := el.Attr("content")
	return String(v)
}

// keywords splits the content attribute on commas without trimming.
func keywords(el *Element) []string {
	if el == nil {
		return nil
	}
	v, _ := el.Attr("content")
	if v == "" {
		return []string{}
	}
	return strings.Split(v, ",")
}
