package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/headmeta"
	"github.com/fwojciec/headmeta/scan"
)

// stdinName is the path argument that reads a document from stdin.
const stdinName = "-"

// loadSources reads the documents named by paths, in argument order.
func loadSources(deps *Dependencies, paths []string) ([]*headmeta.Source, error) {
	var sources []*headmeta.Source
	for _, path := range paths {
		if path == stdinName {
			data, err := io.ReadAll(deps.Stdin)
			if err != nil {
				return nil, fmt.Errorf("read stdin: %w", err)
			}
			sources = append(sources, &headmeta.Source{Name: stdinName, HTML: string(data)})
			continue
		}
		found, err := deps.Sources.ReadSources(deps.Ctx, []string{path})
		if err != nil {
			return nil, err
		}
		sources = append(sources, found...)
	}
	return sources, nil
}

// scanPaths loads and extracts the documents named by paths.
func scanPaths(deps *Dependencies, paths []string, concurrency int) (*scan.Result, error) {
	sources, err := loadSources(deps, paths)
	if err != nil {
		return nil, err
	}
	scanner := &scan.Scanner{
		Extractor:   deps.Extractor,
		Concurrency: concurrency,
	}
	result, err := scanner.Scan(deps.Ctx, sources, nil)
	if err != nil {
		return nil, err
	}
	if result.Duplicates > 0 {
		deps.Logger.Info("skipped duplicate documents", "count", result.Duplicates)
	}
	return result, nil
}

// readInput returns the contents of path, or of stdin for "-".
func readInput(deps *Dependencies, path string) ([]byte, error) {
	if path == stdinName {
		return io.ReadAll(deps.Stdin)
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, headmeta.Errorf(headmeta.ENOTFOUND, "file %q not found", path)
	}
	return data, err
}

// writeJSON writes data followed by a newline, indenting it when pretty is set.
func writeJSON(w io.Writer, data []byte, pretty bool) error {
	if pretty {
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return err
		}
		data = buf.Bytes()
	}
	_, err := fmt.Fprintf(w, "%s\n", data)
	return err
}

// printError reports err on stderr, preferring the application message.
func printError(w io.Writer, err error) {
	if headmeta.ErrorCode(err) == headmeta.EINTERNAL {
		fmt.Fprintf(w, "error: %s\n", err)
		return
	}
	fmt.Fprintf(w, "error: %s\n", headmeta.ErrorMessage(err))
}
