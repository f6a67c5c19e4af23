package mock

import (
	"context"

	"github.com/fwojciec/headmeta"
)

var _ headmeta.SourceReader = (*SourceReader)(nil)

// SourceReader is a mock implementation of headmeta.SourceReader.
type SourceReader struct {
	ReadSourcesFn func(ctx context.Context, paths []string) ([]*headmeta.Source, error)
}

func (r *SourceReader) ReadSources(ctx context.Context, paths []string) ([]*headmeta.Source, error) {
	return r.ReadSourcesFn(ctx, paths)
}
