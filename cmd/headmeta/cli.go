package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/headmeta"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Sources   headmeta.SourceReader
	Extractor headmeta.Extractor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" env:"HEADMETA_VERBOSE" help:"Log extraction details to stderr"`

	Extract ExtractCmd `cmd:"" help:"Extract head metadata from HTML files as JSON"`
	Filter  FilterCmd  `cmd:"" help:"Filter a JSON metadata collection by a search query"`
	Search  SearchCmd  `cmd:"" help:"Extract metadata from HTML files and list those matching a query"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Paths       []string `arg:"" help:"HTML files or directories (- reads stdin)"`
	Concurrency int      `short:"c" default:"8" env:"HEADMETA_CONCURRENCY" help:"Concurrent extraction limit"`
	Sources     bool     `short:"s" help:"Include source name and content hash with each record"`
	Pretty      bool     `short:"p" help:"Indent JSON output"`
}

// FilterCmd is the "filter" subcommand.
type FilterCmd struct {
	Query  string `arg:"" optional:"" help:"Search query (empty returns the whole collection)"`
	Input  string `short:"i" default:"-" help:"JSON collection file (- reads stdin)"`
	Pretty bool   `short:"p" help:"Indent JSON output"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query       string   `arg:"" help:"Search query"`
	Paths       []string `arg:"" help:"HTML files or directories (- reads stdin)"`
	Concurrency int      `short:"c" default:"8" env:"HEADMETA_CONCURRENCY" help:"Concurrent extraction limit"`
	JSON        bool     `help:"Print matching records as JSON"`
}
