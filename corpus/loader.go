// Package corpus provides orchestration over the document store, search
// index, and content cache: background loading of documentation sources
// and the query service the protocol layer consumes.
package corpus

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/docserve/docserve"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the worker-pool width for ingestion. Bounded so a
// large corpus does not overwhelm the upstream source.
const DefaultConcurrency = 8

// Loader orchestrates the ingestion of one documentation source: discovery
// of candidate locations, bounded-concurrency fetching with retry, markdown
// structuring, and registration into the document store.
//
// Loading is expected to run in the background; callers may query the
// corpus before loading completes and observe a partially populated store.
// Document ids reflect the order registrations commit, not discovery order.
type Loader struct {
	Discovery   docserve.Discoverer
	Fetcher     docserve.Fetcher
	Parser      docserve.Parser
	Documents   docserve.DocumentService
	Limiter     docserve.HostLimiter // optional
	Logger      *slog.Logger         // optional
	Concurrency int
	RetryDelays []time.Duration

	// LazyContent registers content producers that re-fetch the page on
	// cache miss instead of pinning the fetched body in memory.
	LazyContent bool
}

// Result holds the outcome of a load operation.
type Result struct {
	RunID      string // correlates log lines of one load run
	Discovered int
	Registered int
	Failed     int // placeholder entries registered after fetch/parse failure
	Skipped    int // duplicate content discovered under a second location
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a load operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressFunc is a callback for reporting load progress.
type ProgressFunc func(event ProgressEvent)

// Load ingests every document discovered for source. A single document's
// failure is never fatal: fetch or parse failures register a placeholder
// entry and loading continues. Load returns an error only when discovery
// fails or the context is canceled.
func (l *Loader) Load(ctx context.Context, source string, progress ProgressFunc) (*Result, error) {
	result := &Result{RunID: uuid.New().String()}
	logger := l.logger().With("run", result.RunID, "source", source)

	urls, err := l.Discovery.Discover(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("discovering documents: %w", err)
	}
	result.Discovered = len(urls)

	logger.Info("load started", "documents", len(urls))
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: len(urls)})
	}

	concurrency := l.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	delays := l.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	var completed atomic.Int64
	var registered, failed, skipped atomic.Int64

	var seenMu sync.Mutex
	seenContent := make(map[uint64]bool)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, docURL := range urls {
		docURL := docURL
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			if l.Limiter != nil {
				if err := l.Limiter.Wait(gctx, hostOf(docURL)); err != nil {
					return err
				}
			}

			raw, fetchErr := fetchWithRetry(gctx, l.Fetcher, docURL, delays)
			if fetchErr != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				failed.Add(1)
				logger.Warn("document fetch failed, registering placeholder",
					"url", docURL, "err", fetchErr)
				if err := l.registerPlaceholder(gctx, docURL); err != nil {
					logger.Error("placeholder registration failed", "url", docURL, "err", err)
				}
				l.notify(progress, ProgressFailed, docURL, &completed, len(urls), fetchErr)
				return nil
			}

			if err := l.ingest(gctx, docURL, raw, seenContent, &seenMu, &registered, &skipped); err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				failed.Add(1)
				logger.Warn("document ingest failed", "url", docURL, "err", err)
				l.notify(progress, ProgressFailed, docURL, &completed, len(urls), err)
				return nil
			}

			l.notify(progress, ProgressCompleted, docURL, &completed, len(urls), nil)
			return nil
		})
	}

	err = g.Wait()

	result.Registered = int(registered.Load())
	result.Failed = int(failed.Load())
	result.Skipped = int(skipped.Load())

	if err != nil {
		logger.Warn("load aborted",
			"registered", result.Registered, "failed", result.Failed, "err", err)
		return result, err
	}

	logger.Info("load finished",
		"registered", result.Registered, "failed", result.Failed, "skipped", result.Skipped)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: len(urls), Total: len(urls)})
	}

	return result, nil
}

// ingest structures raw text and registers the resulting document.
// Duplicate content reached through a second location is skipped.
func (l *Loader) ingest(ctx context.Context, docURL, raw string, seen map[uint64]bool, seenMu *sync.Mutex, registered, skipped *atomic.Int64) error {
	parsed, err := l.Parser.Parse(raw)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", docURL, err)
	}

	hash := xxhash.Sum64String(parsed.Content)
	seenMu.Lock()
	dup := seen[hash]
	if !dup {
		seen[hash] = true
	}
	seenMu.Unlock()
	if dup {
		skipped.Add(1)
		return nil
	}

	title := parsed.Title
	if title == "" {
		title = deriveTitle(docURL)
	}

	content := docserve.StaticContent(parsed.Content)
	if l.LazyContent {
		content = l.lazyContent(docURL)
	}

	doc := &docserve.Document{
		SourceURL:   docURL,
		Title:       title,
		Description: parsed.Description,
		Preview:     docserve.Preview(parsed.Content),
		Headings:    parsed.Headings,
		ContentHash: fmt.Sprintf("%016x", hash),
		Content:     content,
	}

	if _, err := l.Documents.Register(ctx, doc); err != nil {
		return fmt.Errorf("registering %s: %w", docURL, err)
	}
	registered.Add(1)
	return nil
}

// registerPlaceholder keeps the corpus dense when a source document cannot
// be fetched: the entry is searchable by its derived title and its content
// names the unreachable location.
func (l *Loader) registerPlaceholder(ctx context.Context, docURL string) error {
	title := deriveTitle(docURL)
	body := fmt.Sprintf("# %s\n\nContent for %s could not be loaded.\n", title, docURL)

	doc := &docserve.Document{
		SourceURL:   docURL,
		Title:       title,
		Preview:     docserve.Preview(body),
		ContentHash: fmt.Sprintf("%016x", xxhash.Sum64String(body)),
		Content:     docserve.StaticContent(body),
	}

	_, err := l.Documents.Register(ctx, doc)
	return err
}

// lazyContent returns a producer that re-fetches the page, so a cache miss
// after TTL expiry observes fresh upstream content.
func (l *Loader) lazyContent(docURL string) docserve.ContentFunc {
	return func(ctx context.Context) (string, error) {
		if l.Limiter != nil {
			if err := l.Limiter.Wait(ctx, hostOf(docURL)); err != nil {
				return "", err
			}
		}
		delays := l.RetryDelays
		if delays == nil {
			delays = DefaultRetryDelays()
		}
		return fetchWithRetry(ctx, l.Fetcher, docURL, delays)
	}
}

func (l *Loader) notify(progress ProgressFunc, typ ProgressType, docURL string, completed *atomic.Int64, total int, err error) {
	n := int(completed.Add(1))
	if progress == nil {
		return
	}
	progress(ProgressEvent{
		Type:      typ,
		Completed: n,
		Total:     total,
		URL:       docURL,
		Error:     err,
	})
}

func (l *Loader) logger() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// deriveTitle falls back to a name derived from the URL's last path
// segment when a page carries no title of its own.
func deriveTitle(docURL string) string {
	u, err := url.Parse(docURL)
	if err != nil {
		return docURL
	}

	segment := strings.Trim(u.Path, "/")
	if i := strings.LastIndex(segment, "/"); i != -1 {
		segment = segment[i+1:]
	}
	if i := strings.LastIndex(segment, "."); i > 0 {
		segment = segment[:i]
	}
	segment = strings.NewReplacer("-", " ", "_", " ").Replace(segment)
	if segment == "" {
		return u.Host
	}
	return segment
}

func hostOf(docURL string) string {
	u, err := url.Parse(docURL)
	if err != nil {
		return docURL
	}
	return u.Host
}
