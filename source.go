package headmeta

import "context"

// Source is a single HTML document awaiting extraction.
type Source struct {
	// Name identifies the document, typically its file path.
	Name string

	// HTML is the complete document text.
	HTML string
}

// SourceReader loads HTML documents.
type SourceReader interface {
	// ReadSources loads the documents named by paths. Implementations may
	// expand a path into several documents (e.g., a directory).
	ReadSources(ctx context.Context, paths []string) ([]*Source, error)
}
