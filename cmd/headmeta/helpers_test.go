package main_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/fwojciec/headmeta"
	main "github.com/fwojciec/headmeta/cmd/headmeta"
	"github.com/fwojciec/headmeta/mock"
)

// newDeps returns Dependencies serving the given documents by name and
// extracting their titles verbatim.
func newDeps(stdin string, docs map[string]string) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdin:  strings.NewReader(stdin),
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Sources: &mock.SourceReader{
			ReadSourcesFn: func(_ context.Context, paths []string) ([]*headmeta.Source, error) {
				var sources []*headmeta.Source
				for _, p := range paths {
					html, ok := docs[p]
					if !ok {
						return nil, headmeta.Errorf(headmeta.ENOTFOUND, "path %q not found", p)
					}
					sources = append(sources, &headmeta.Source{Name: p, HTML: html})
				}
				return sources, nil
			},
		},
		Extractor: &mock.Extractor{
			ExtractFn: func(html string) (*headmeta.Metadata, error) {
				if html == "" {
					return &headmeta.Metadata{}, nil
				}
				return &headmeta.Metadata{Title: headmeta.String(html)}, nil
			},
		},
	}, stdout, stderr
}
