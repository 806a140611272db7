package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/beevik/etree"
	"github.com/docserve/docserve"
)

// Ensure SitemapDiscoverer implements docserve.Discoverer.
var _ docserve.Discoverer = (*SitemapDiscoverer)(nil)

// SitemapDiscoverer discovers document locations from a sitemap URL.
// Sitemap indexes are resolved recursively; URLs are deduplicated across
// sitemaps and returned in sitemap order.
type SitemapDiscoverer struct {
	client *http.Client
}

// NewSitemapDiscoverer creates a new SitemapDiscoverer with the given HTTP
// client. If client is nil, http.DefaultClient is used.
func NewSitemapDiscoverer(client *http.Client) *SitemapDiscoverer {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapDiscoverer{client: client}
}

// Discover fetches the sitemap at source and returns all document URLs it
// lists. Returns an empty slice (not nil) for a sitemap with no entries.
func (d *SitemapDiscoverer) Discover(ctx context.Context, source string) ([]string, error) {
	seenSitemaps := make(map[string]bool)
	seenURLs := make(map[string]bool)

	urls, err := d.processSitemap(ctx, source, seenSitemaps, seenURLs)
	if err != nil {
		return nil, err
	}
	if urls == nil {
		urls = []string{}
	}
	return urls, nil
}

// processSitemap fetches and parses a sitemap, handling both urlset and
// sitemapindex documents.
func (d *SitemapDiscoverer) processSitemap(ctx context.Context, sitemapURL string, seenSitemaps, seenURLs map[string]bool) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Avoid processing the same sitemap twice.
	if seenSitemaps[sitemapURL] {
		return nil, nil
	}
	seenSitemaps[sitemapURL] = true

	body, err := d.fetchURL(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, fmt.Errorf("parsing sitemap XML: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("empty sitemap XML")
	}

	if root.Tag == "sitemapindex" {
		return d.processIndex(ctx, root, seenSitemaps, seenURLs)
	}

	return parseURLSet(root, seenURLs), nil
}

// processIndex processes a <sitemapindex> element recursively.
func (d *SitemapDiscoverer) processIndex(ctx context.Context, root *etree.Element, seenSitemaps, seenURLs map[string]bool) ([]string, error) {
	var allURLs []string

	for _, sitemap := range root.SelectElements("sitemap") {
		loc := sitemap.SelectElement("loc")
		if loc == nil {
			continue
		}
		sitemapURL := strings.TrimSpace(loc.Text())
		if sitemapURL == "" {
			continue
		}

		urls, err := d.processSitemap(ctx, sitemapURL, seenSitemaps, seenURLs)
		if err != nil {
			return nil, err
		}
		allURLs = append(allURLs, urls...)
	}

	return allURLs, nil
}

// parseURLSet extracts URLs from a <urlset> element.
func parseURLSet(root *etree.Element, seenURLs map[string]bool) []string {
	var urls []string
	for _, urlEl := range root.SelectElements("url") {
		loc := urlEl.SelectElement("loc")
		if loc == nil {
			continue
		}
		u := strings.TrimSpace(loc.Text())
		if u == "" || seenURLs[u] {
			continue
		}
		seenURLs[u] = true
		urls = append(urls, u)
	}
	return urls
}

// fetchURL fetches a URL and returns the response body.
func (d *SitemapDiscoverer) fetchURL(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, docserve.Errorf(docserve.EUPSTREAM, "HTTP %d for %s", resp.StatusCode, targetURL)
	}

	return resp.Body, nil
}
