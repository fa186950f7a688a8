package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/doctext"
	"github.com/fwojciec/doctext/batch"
	"github.com/fwojciec/doctext/cargo"
	"github.com/fwojciec/doctext/fs"
	"github.com/fwojciec/doctext/goquery"
	"github.com/fwojciec/doctext/htmltomarkdown"
	doctexthttp "github.com/fwojciec/doctext/http"
	"github.com/fwojciec/doctext/readability"
	"github.com/fwojciec/doctext/rod"
	doctextslog "github.com/fwojciec/doctext/slog"
	"github.com/fwojciec/doctext/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Source replaces the cargo or HTTP source. Used for end-to-end testing.
	Source doctext.Source

	closers []io.Closer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close releases fetchers and temporary build directories.
func (m *Main) Close() error {
	var first error
	for i := len(m.closers) - 1; i >= 0; i-- {
		if err := m.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	m.closers = nil
	return first
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("doctext"),
		kong.Description("Render Rust crate documentation as plain text"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no crate specified. Run 'doctext --help' for usage")
	}

	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			_, _ = parser.Parse([]string{"--help"})
			return nil
		}
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if cli.Browser && !cli.Online {
		return fmt.Errorf("--browser requires --online")
	}

	deps, err := m.wire(ctx, cli, stdout, stderr)
	if err != nil {
		return err
	}
	defer m.Close()

	cmd := &RenderCmd{
		Crate:    cli.Crate,
		Items:    cli.Items,
		Version:  cli.CrateVersion,
		Sections: cli.Sections,
	}
	return cmd.Run(deps)
}

// wire builds the services selected by the flags.
func (m *Main) wire(ctx context.Context, cli *CLI, stdout, stderr io.Writer) (*Dependencies, error) {
	logger := newLogger(stderr, cli.Verbose)

	mode, err := doctext.ParseMode(cli.Mode)
	if err != nil {
		return nil, err
	}

	extractor, err := newExtractor(cli.Extractor, cli.Selector)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", doctext.ErrorMessage(err))
		return nil, err
	}
	var detector doctext.GeneratorDetector
	if cli.Verbose {
		detector = goquery.NewDetector()
	}
	loggedExtractor := doctextslog.NewLoggingExtractor(extractor, detector, logger)

	pipeline := &doctext.Pipeline{Extractor: loggedExtractor, Mode: mode}
	if mode == doctext.ModeMarkdown {
		pipeline.Converter = htmltomarkdown.NewConverter()
	}

	source, label, err := m.newSource(cli, logger, stderr)
	if err != nil {
		return nil, err
	}
	loggedSource := doctextslog.NewLoggingSource(source, logger)

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Source:    loggedSource,
		Extractor: loggedExtractor,
		Renderer: &batch.Renderer{
			Source:      loggedSource,
			Pipeline:    pipeline,
			Concurrency: cli.Concurrency,
		},
	}

	if cli.Output != "" {
		deps.Store = fs.NewFileStore(cli.Output,
			fs.WithExtension(fs.Extension(mode)),
			fs.WithSource(label),
		)
	}

	return deps, nil
}

// newSource returns the page source and a label recorded in saved pages.
func (m *Main) newSource(cli *CLI, logger *slog.Logger, stderr io.Writer) (doctext.Source, string, error) {
	if m.Source != nil {
		return m.Source, "test", nil
	}

	if !cli.Online {
		s := cargo.NewSource("")
		m.closers = append(m.closers, s)
		return s, "cargo doc", nil
	}

	var fetcher doctext.Fetcher
	if cli.Browser {
		f, err := rod.NewFetcher(rod.WithFetchTimeout(cli.Timeout))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, "", fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = f
	} else {
		fetcher = doctexthttp.NewFetcher(doctexthttp.WithTimeout(cli.Timeout))
	}
	logged := doctextslog.NewLoggingFetcher(fetcher, logger)
	m.closers = append(m.closers, logged)

	source := doctexthttp.NewSource(logged,
		doctexthttp.WithBaseURL(cli.Host),
		doctexthttp.WithLimiter(batch.NewDomainLimiter(batch.DefaultRequestsPerSecond)),
	)
	return source, cli.Host, nil
}

// newExtractor returns the content locator named by strategy.
func newExtractor(strategy, selector string) (doctext.Extractor, error) {
	switch strategy {
	case "", "selector":
		return goquery.NewExtractor(selector)
	case "auto":
		return goquery.NewDefaultRegistry(), nil
	case "readability":
		return readability.NewExtractor(), nil
	case "trafilatura":
		return trafilatura.NewExtractor(), nil
	default:
		return nil, doctext.Errorf(doctext.EINVALID, "unknown extractor %q", strategy)
	}
}

// newLogger returns a text logger on stderr when verbose and a discarding
// logger otherwise.
func newLogger(stderr io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(stderr, nil))
}
