// Package slog provides logging decorators for headmeta services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/headmeta"
)

// Ensure LoggingExtractor implements headmeta.Extractor.
var _ headmeta.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   headmeta.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next headmeta.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(html string) (m *headmeta.Metadata, err error) {
	defer func(begin time.Time) {
		e.logger.Debug("metadata extraction",
			"bytes", len(html),
			"fields", presentFields(m),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}

// presentFields counts the non-nil fields of m.
func presentFields(m *headmeta.Metadata) int {
	if m == nil {
		return 0
	}
	n := 0
	for _, v := range []*string{m.URL, m.SiteName, m.Title, m.Description, m.Author} {
		if v != nil {
			n++
		}
	}
	if m.Keywords != nil {
		n++
	}
	return n
}
