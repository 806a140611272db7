package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/docserve/docserve"
	"github.com/docserve/docserve/corpus"
	"github.com/docserve/docserve/goldmark"
	dochttp "github.com/docserve/docserve/http"
	"github.com/docserve/docserve/lru"
	"github.com/docserve/docserve/mem"
	docslog "github.com/docserve/docserve/slog"
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
	// Services for end-to-end testing.
	Store *mem.DocStore
	Docs  docserve.DocsService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docserve"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docserve --help' to see available commands")
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

	// Logging goes to stderr: stdout may carry the stdio MCP transport.
	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	// Wire core services
	m.Store = mem.NewDocStore()
	m.Docs = &corpus.Service{
		Documents: m.Store,
		Searcher:  m.Store,
		Content:   lru.NewContentCache(m.Store),
	}
	deps.Store = m.Store
	deps.Docs = docslog.NewLoggingDocsService(m.Docs, logger)
	deps.Fetcher = docslog.NewLoggingFetcher(dochttp.NewFetcher(), logger)
	deps.Parser = goldmark.NewParser()
	deps.Sitemaps = dochttp.NewSitemapDiscoverer(nil)
	deps.Limiter = corpus.NewHostLimiter(cli.RPS, 1)

	return kongCtx.Run(deps)
}
