package main

import (
	"encoding/json"

	"github.com/fwojciec/headmeta"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	result, err := scanPaths(deps, c.Paths, c.Concurrency)
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}

	var data []byte
	if c.Sources {
		data, err = json.Marshal(result.Entries)
	} else {
		data, err = headmeta.EncodeCollection(result.Records())
	}
	if err != nil {
		return err
	}
	return writeJSON(deps.Stdout, data, c.Pretty)
}
