package main

import (
	"fmt"

	"github.com/docserve/docserve"
)

// Run executes the search command: load the sources synchronously, then
// print ranked matches for the query.
func (c *SearchCmd) Run(deps *Dependencies) error {
	for _, source := range c.Source {
		loader := loaderFor(deps, source, c.Concurrency, false)
		result, err := loader.Load(deps.Ctx, source, nil)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error loading %s: %v\n", source, err)
			return err
		}
		if result.Failed > 0 {
			fmt.Fprintf(deps.Stderr, "%d of %d documents failed to load\n", result.Failed, result.Discovered)
		}
	}

	results, err := deps.Docs.Search(deps.Ctx, c.Query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docserve.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No matches.")
		return nil
	}

	for _, r := range results {
		fmt.Fprintf(deps.Stdout, "%4d  %.1f  %s\n", r.ID, r.Score, r.Title)
		if r.Description != "" {
			fmt.Fprintf(deps.Stdout, "            %s\n", r.Description)
		}
	}

	return nil
}
