package main

import (
	"fmt"

	"github.com/docserve/docserve/corpus"
	"github.com/docserve/docserve/mcp"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server, err := mcp.NewServer(deps.Docs)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	// Load sources in the background so the server answers immediately;
	// early queries observe a partially populated corpus.
	for _, source := range c.Source {
		source := source
		loader := loaderFor(deps, source, c.Concurrency, c.Lazy)
		go func() {
			result, err := loader.Load(deps.Ctx, source, c.progress(deps))
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error loading %s: %v\n", source, err)
				return
			}
			fmt.Fprintf(deps.Stderr, "loaded %s: %d registered, %d failed, %d skipped\n",
				source, result.Registered, result.Failed, result.Skipped)
		}()
	}

	if c.HTTP != "" {
		fmt.Fprintf(deps.Stderr, "serving MCP on http://%s\n", c.HTTP)
		return server.RunHTTP(deps.Ctx, c.HTTP)
	}
	return server.Run(deps.Ctx)
}

func (c *ServeCmd) progress(deps *Dependencies) corpus.ProgressFunc {
	return func(event corpus.ProgressEvent) {
		switch event.Type {
		case corpus.ProgressStarted:
			fmt.Fprintf(deps.Stderr, "  found %d documents\n", event.Total)
		case corpus.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  placeholder for %s: %v\n", event.URL, event.Error)
		}
	}
}
