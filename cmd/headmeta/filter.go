package main

import "github.com/fwojciec/headmeta"

// Run executes the filter command.
func (c *FilterCmd) Run(deps *Dependencies) error {
	input, err := readInput(deps, c.Input)
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}

	records, err := headmeta.DecodeCollection(input)
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}

	matches := headmeta.FilterMetadata(records, c.Query)
	deps.Logger.Debug("filter", "query", c.Query, "records", len(records), "matches", len(matches))

	data, err := headmeta.EncodeCollection(matches)
	if err != nil {
		return err
	}
	return writeJSON(deps.Stdout, data, c.Pretty)
}
