package headmeta

import (
	"strings"
	"unicode"
)

// FilterMetadata returns the records matching query, in input order.
//
// The query is split into terms on whitespace after replacing hyphens with
// spaces, and each term is normalized. A record matches when any term is a
// substring of its normalized field values joined with spaces.
//
// A nil collection yields an empty result. An empty query returns records
// unchanged. A query whose terms all normalize away matches nothing.
func FilterMetadata(records []*Metadata, query string) []*Metadata {
	if records == nil {
		return []*Metadata{}
	}
	if query == "" {
		return records
	}

	terms := QueryTerms(query)
	filtered := make([]*Metadata, 0, len(records))
	if len(terms) == 0 {
		return filtered
	}
	for _, m := range records {
		if Matches(m, terms) {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

// QueryTerms decomposes a query into its distinct normalized terms.
func QueryTerms(query string) []string {
	fields := strings.Fields(strings.ReplaceAll(query, "-", " "))
	terms := make([]string, 0, len(fields))
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		term := Normalize(f)
		if term == "" || seen[term] {
			continue
		}
		seen[term] = true
		terms = append(terms, term)
	}
	return terms
}

// Matches reports whether any of the normalized terms occurs in the record's
// normalized field values. A nil record never matches.
func Matches(m *Metadata, terms []string) bool {
	if m == nil {
		return false
	}
	haystack := Haystack(m)
	if haystack == "" {
		return false
	}
	for _, term := range terms {
		if strings.Contains(haystack, term) {
			return true
		}
	}
	return false
}

// Haystack returns the normalized present field values of m joined with
// single spaces.
func Haystack(m *Metadata) string {
	values := m.Values()
	for i, v := range values {
		values[i] = Normalize(v)
	}
	return strings.Join(values, " ")
}

// Normalize strips punctuation and symbols from s and lower-cases it.
//
// Retained are the ASCII range 'A' through 'z' (letters plus [ \ ] ^ _ and
// the backtick), ASCII digits and whitespace. Any other character is removed
// together with a single '\' or '^' directly following it.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	skipEscape := false
	for _, r := range s {
		if skipEscape {
			skipEscape = false
			if r == '\\' || r == '^' {
				continue
			}
		}
		if !retained(r) {
			skipEscape = true
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

func retained(r rune) bool {
	switch {
	case r >= 'A' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	}
	return isSpace(r)
}

// isSpace reports Unicode spaces and the byte order mark, excluding NEL.
func isSpace(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}
