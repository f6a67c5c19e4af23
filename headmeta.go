// Package headmeta extracts descriptive metadata (URL, site name, title,
// description, keywords, author) from the <head> of HTML documents and
// filters collections of such records against free-text queries.
//
// This package contains domain types, interfaces and the pure extraction and
// filtering logic. Implementations live in subdirectories named after their
// primary dependency (e.g., goquery/, slog/, fs/).
package headmeta
