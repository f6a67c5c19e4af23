// Package scan extracts metadata from many documents concurrently.
// Results keep input order; identical documents are extracted once.
package scan

import (
	"context"
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/headmeta"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is used when Scanner.Concurrency is not positive.
const DefaultConcurrency = 8

// Scanner runs an Extractor over a batch of sources.
type Scanner struct {
	Extractor   headmeta.Extractor
	Concurrency int
}

// Entry is the extraction outcome for one source.
type Entry struct {
	Source string `json:"source"`
	Hash   string `json:"hash"`

	// Duplicate is set when an earlier source had identical content;
	// Metadata is then shared with that source's entry.
	Duplicate bool `json:"duplicate,omitempty"`

	Metadata *headmeta.Metadata `json:"metadata"`
}

// Result holds the outcome of a scan.
type Result struct {
	Entries    []Entry
	Duplicates int
}

// Records returns the metadata of every entry in input order.
func (r *Result) Records() []*headmeta.Metadata {
	records := make([]*headmeta.Metadata, len(r.Entries))
	for i, e := range r.Entries {
		records[i] = e.Metadata
	}
	return records
}

// ProgressEvent reports progress during a scan.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Source    string
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFinished
)

// ProgressFunc is a callback for reporting scan progress.
// Calls are serialized.
type ProgressFunc func(event ProgressEvent)

// Scan extracts metadata from every source. The first extraction failure
// cancels the remaining work and is returned wrapped with the source name.
func (s *Scanner) Scan(ctx context.Context, sources []*headmeta.Source, progress ProgressFunc) (*Result, error) {
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	result := &Result{Entries: make([]Entry, len(sources))}

	// origin[i] is the index of the first source with the same content as i.
	first := make(map[string]int, len(sources))
	origin := make([]int, len(sources))
	for i, src := range sources {
		hash := ComputeHash(src.HTML)
		result.Entries[i] = Entry{Source: src.Name, Hash: hash}
		if j, ok := first[hash]; ok {
			origin[i] = j
			result.Entries[i].Duplicate = true
			result.Duplicates++
			continue
		}
		first[hash] = i
		origin[i] = i
	}

	total := len(sources) - result.Duplicates
	var mu sync.Mutex
	completed := 0
	notify := func(event ProgressEvent) {
		if progress == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		if event.Type == ProgressCompleted {
			completed++
			event.Completed = completed
		}
		progress(event)
	}

	notify(ProgressEvent{Type: ProgressStarted, Total: total})

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, src := range sources {
		if origin[i] != i {
			continue
		}
		i, src := i, src
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			m, err := s.Extractor.Extract(src.HTML)
			if err != nil {
				return fmt.Errorf("extract %s: %w", src.Name, err)
			}
			result.Entries[i].Metadata = m
			notify(ProgressEvent{Type: ProgressCompleted, Total: total, Source: src.Name})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range result.Entries {
		if origin[i] != i {
			result.Entries[i].Metadata = result.Entries[origin[i]].Metadata
		}
	}

	notify(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})

	return result, nil
}

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
