package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/headmeta"
	"github.com/fwojciec/headmeta/scan"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	result, err := scanPaths(deps, c.Paths, c.Concurrency)
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}

	// Duplicate entries share a record, so they match together.
	matched := make(map[*headmeta.Metadata]bool)
	for _, m := range headmeta.FilterMetadata(result.Records(), c.Query) {
		matched[m] = true
	}
	entries := make([]scan.Entry, 0, len(matched))
	for _, e := range result.Entries {
		if matched[e.Metadata] {
			entries = append(entries, e)
		}
	}

	if c.JSON {
		data, err := json.Marshal(entries)
		if err != nil {
			return err
		}
		return writeJSON(deps.Stdout, data, false)
	}

	if len(entries) == 0 {
		fmt.Fprintf(deps.Stdout, "No documents match %q.\n", c.Query)
		return nil
	}
	for _, e := range entries {
		title := headmeta.StringValue(e.Metadata.Title)
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(deps.Stdout, "%s\t%s\n", e.Source, title)
	}
	return nil
}
