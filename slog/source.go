package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/headmeta"
)

// Ensure LoggingSourceReader implements headmeta.SourceReader.
var _ headmeta.SourceReader = (*LoggingSourceReader)(nil)

// LoggingSourceReader wraps a SourceReader with logging.
type LoggingSourceReader struct {
	next   headmeta.SourceReader
	logger *slog.Logger
}

// NewLoggingSourceReader creates a new LoggingSourceReader.
func NewLoggingSourceReader(next headmeta.SourceReader, logger *slog.Logger) *LoggingSourceReader {
	return &LoggingSourceReader{next: next, logger: logger}
}

// ReadSources delegates to the wrapped reader and logs the operation.
func (r *LoggingSourceReader) ReadSources(ctx context.Context, paths []string) (sources []*headmeta.Source, err error) {
	defer func(begin time.Time) {
		r.logger.Info("read sources",
			"paths", len(paths),
			"count", len(sources),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ReadSources(ctx, paths)
}
