package main

import (
	"net/url"
	"strings"

	"github.com/docserve/docserve"
	"github.com/docserve/docserve/corpus"
)

// discovererFor picks the discovery strategy for a source: sitemap URLs
// are expanded into their page URLs, anything else loads as a single page.
func discovererFor(deps *Dependencies, source string) docserve.Discoverer {
	if isSitemap(source) {
		return deps.Sitemaps
	}
	return corpus.StaticDiscoverer{source}
}

// isSitemap reports whether a source URL names a sitemap rather than a
// documentation page.
func isSitemap(source string) bool {
	u, err := url.Parse(source)
	if err != nil {
		return false
	}
	path := strings.ToLower(u.Path)
	return strings.HasSuffix(path, ".xml") || strings.Contains(path, "sitemap")
}

// loaderFor builds a loader for one source using the shared services.
func loaderFor(deps *Dependencies, source string, concurrency int, lazy bool) *corpus.Loader {
	return &corpus.Loader{
		Discovery:   discovererFor(deps, source),
		Fetcher:     deps.Fetcher,
		Parser:      deps.Parser,
		Documents:   deps.Store,
		Limiter:     deps.Limiter,
		Logger:      deps.Logger,
		Concurrency: concurrency,
		LazyContent: lazy,
	}
}
