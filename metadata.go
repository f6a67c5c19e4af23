package headmeta

import "strings"

// Metadata is the descriptive record extracted from a document's <head>.
//
// A nil field means the corresponding tag was not found. A present but blank
// tag yields an empty string, or an empty non-nil slice for Keywords.
// Records are treated as immutable once constructed.
type Metadata struct {
	URL         *string  `json:"url"`
	SiteName    *string  `json:"siteName"`
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Keywords    []string `json:"keywords"`
	Author      *string  `json:"author"`
}

// Values returns the present field values in field order.
// Keywords are flattened into a single comma-joined value.
func (m *Metadata) Values() []string {
	if m == nil {
		return nil
	}
	values := make([]string, 0, 6)
	for _, v := range []*string{m.URL, m.SiteName, m.Title, m.Description} {
		if v != nil {
			values = append(values, *v)
		}
	}
	if m.Keywords != nil {
		values = append(values, strings.Join(m.Keywords, ","))
	}
	if m.Author != nil {
		values = append(values, *m.Author)
	}
	return values
}

// String returns a pointer to s.
func String(s string) *string {
	return &s
}

// StringValue returns the value s points to, or "" if s is nil.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
