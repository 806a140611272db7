package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/docserve/docserve"
	"github.com/docserve/docserve/mem"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Store    *mem.DocStore
	Docs     docserve.DocsService
	Fetcher  docserve.Fetcher
	Parser   docserve.Parser
	Sitemaps docserve.Discoverer
	Limiter  docserve.HostLimiter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve    ServeCmd    `cmd:"" help:"Load documentation sources and serve them over MCP"`
	Discover DiscoverCmd `cmd:"" help:"Show the document URLs a source would load"`
	Search   SearchCmd   `cmd:"" help:"Load sources and run a one-off search"`

	Verbose bool    `short:"v" env:"DOCSERVE_VERBOSE" help:"Log operations to stderr"`
	RPS     float64 `default:"4" env:"DOCSERVE_RPS" help:"Requests per second per host"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Source      []string `arg:"" help:"Documentation sources: sitemap URLs or direct page URLs"`
	HTTP        string   `env:"DOCSERVE_HTTP" help:"Serve MCP over HTTP on this address instead of stdio"`
	Lazy        bool     `help:"Re-fetch page content on cache miss instead of holding it in memory"`
	Concurrency int      `short:"c" default:"8" help:"Concurrent fetch limit"`
}

// DiscoverCmd is the "discover" subcommand.
type DiscoverCmd struct {
	Source string `arg:"" help:"Sitemap URL or direct page URL"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Source      []string `arg:"" help:"Documentation sources: sitemap URLs or direct page URLs"`
	Query       string   `short:"q" required:"" help:"Search query"`
	Concurrency int      `short:"c" default:"8" help:"Concurrent fetch limit"`
}
