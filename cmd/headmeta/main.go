package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/headmeta"
	"github.com/fwojciec/headmeta/fs"
	"github.com/fwojciec/headmeta/goquery"
	hmslog "github.com/fwojciec/headmeta/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin is read when "-" is given as an input. Set before calling Run().
	Stdin io.Reader

	// Services for end-to-end testing. Defaults are wired by Run when nil.
	Sources   headmeta.SourceReader
	Extractor headmeta.Extractor
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin: os.Stdin,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("headmeta"),
		kong.Description("Extract and search HTML head metadata."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'headmeta --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	sources := m.Sources
	if sources == nil {
		sources = fs.NewSourceReader()
	}
	extractor := m.Extractor
	if extractor == nil {
		extractor = goquery.NewExtractor()
	}
	deps.Sources = hmslog.NewLoggingSourceReader(sources, deps.Logger)
	deps.Extractor = hmslog.NewLoggingExtractor(extractor, deps.Logger)

	return kongCtx.Run(deps)
}
