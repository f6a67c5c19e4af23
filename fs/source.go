// Package fs reads HTML documents from the local filesystem.
package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/headmeta"
)

// Ensure SourceReader implements headmeta.SourceReader at compile time.
var _ headmeta.SourceReader = (*SourceReader)(nil)

// DefaultExtensions are the file extensions collected from directories.
var DefaultExtensions = []string{".html", ".htm", ".xhtml"}

// SourceReader loads HTML files. Directories are walked recursively in
// lexical order and contribute files whose extension is in Extensions.
// Files named explicitly are always read, whatever their extension.
type SourceReader struct {
	Extensions []string
}

// NewSourceReader creates a SourceReader using DefaultExtensions.
func NewSourceReader() *SourceReader {
	return &SourceReader{Extensions: DefaultExtensions}
}

// ReadSources reads every file named by paths, expanding directories.
func (r *SourceReader) ReadSources(ctx context.Context, paths []string) ([]*headmeta.Source, error) {
	var sources []*headmeta.Source
	for _, path := range paths {
		info, err := os.Stat(path)
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, headmeta.Errorf(headmeta.ENOTFOUND, "path %q not found", path)
		} else if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			src, err := readSource(ctx, path)
			if err != nil {
				return nil, err
			}
			sources = append(sources, src)
			continue
		}

		err = filepath.WalkDir(path, func(p string, d iofs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !r.matches(p) {
				return nil
			}
			src, err := readSource(ctx, p)
			if err != nil {
				return err
			}
			sources = append(sources, src)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return sources, nil
}

func (r *SourceReader) matches(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range r.Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

func readSource(ctx context.Context, path string) (*headmeta.Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &headmeta.Source{Name: path, HTML: string(data)}, nil
}
