package corpus_test

import (
	"context"
	"strings"
	"testing"

	"github.com/docserve/docserve"
	"github.com/docserve/docserve/corpus"
	"github.com/docserve/docserve/lru"
	"github.com/docserve/docserve/mem"
	"github.com/docserve/docserve/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newService wires a store, cache, and query service the way the server
// does, and registers the given documents.
func newService(t *testing.T, docs ...*docserve.Document) (*corpus.Service, *mem.DocStore) {
	t.Helper()

	store := mem.NewDocStore()
	for _, doc := range docs {
		_, err := store.Register(context.Background(), doc)
		require.NoError(t, err)
	}

	svc := &corpus.Service{
		Documents: store,
		Searcher:  store,
		Content:   lru.NewContentCache(store),
	}
	return svc, store
}

func TestService_Page_RoundTrip(t *testing.T) {
	t.Parallel()

	content := "# Guide\n\nFirst paragraph.\n\n## Usage\n\nSecond paragraph."
	svc, _ := newService(t, &docserve.Document{
		Title:   "Guide",
		Content: docserve.StaticContent(content),
	})

	// A page size covering the whole document returns the ingested text
	// byte for byte.
	page, err := svc.Page(context.Background(), 0, 1, docserve.MaxPageSize)
	require.NoError(t, err)

	assert.Equal(t, content, page.Content)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.TotalPages)
}

func TestService_Page(t *testing.T) {
	t.Parallel()

	lines := make([]string, 500)
	for i := range lines {
		lines[i] = "line"
	}
	svc, _ := newService(t, &docserve.Document{
		Title:   "Long",
		Content: docserve.StaticContent(strings.Join(lines, "\n")),
	})

	t.Run("default page size", func(t *testing.T) {
		t.Parallel()

		page, err := svc.Page(context.Background(), 0, 1, 0)
		require.NoError(t, err)

		assert.Equal(t, 3, page.TotalPages)
		assert.Len(t, strings.Split(page.Content, "\n"), docserve.DefaultPageSize)
	})

	t.Run("last page holds the remainder", func(t *testing.T) {
		t.Parallel()

		page, err := svc.Page(context.Background(), 0, 3, 0)
		require.NoError(t, err)

		assert.Equal(t, 3, page.Page)
		assert.Len(t, strings.Split(page.Content, "\n"), 100)
	})

	t.Run("out of range page clamps", func(t *testing.T) {
		t.Parallel()

		page, err := svc.Page(context.Background(), 0, 999, 0)
		require.NoError(t, err)

		assert.Equal(t, 3, page.Page)
	})

	t.Run("unknown document", func(t *testing.T) {
		t.Parallel()

		_, err := svc.Page(context.Background(), 42, 1, 0)
		require.Error(t, err)
		assert.Equal(t, docserve.ENOTFOUND, docserve.ErrorCode(err))
	})
}

func TestService_PageRange(t *testing.T) {
	t.Parallel()

	lines := make([]string, 10)
	for i := range lines {
		lines[i] = "line"
	}
	svc, _ := newService(t, &docserve.Document{
		Title:   "Ranged",
		Content: docserve.StaticContent(strings.Join(lines, "\n")),
	})

	t.Run("spans multiple pages", func(t *testing.T) {
		t.Parallel()

		r, err := svc.PageRange(context.Background(), 0, 1, 2, 4)
		require.NoError(t, err)

		assert.Equal(t, 1, r.StartPage)
		assert.Equal(t, 2, r.EndPage)
		assert.Equal(t, 3, r.TotalPages)
		assert.Len(t, strings.Split(r.Content, "\n"), 8)
	})

	t.Run("zero end page means single page", func(t *testing.T) {
		t.Parallel()

		r, err := svc.PageRange(context.Background(), 0, 2, 0, 4)
		require.NoError(t, err)

		assert.Equal(t, 2, r.StartPage)
		assert.Equal(t, 2, r.EndPage)
		assert.Len(t, strings.Split(r.Content, "\n"), 4)
	})
}

func TestService_Section(t *testing.T) {
	t.Parallel()

	content := strings.Join([]string{
		"# Main",       // 1
		"intro text",   // 2
		"## Intro",     // 3
		"intro body",   // 4
		"more body",    // 5
		"## Features",  // 6
		"feature text", // 7
	}, "\n")

	svc, _ := newService(t, &docserve.Document{
		Title: "Main",
		Headings: []docserve.Heading{
			{Depth: 1, Text: "Main", Line: 1},
			{Depth: 2, Text: "Intro", Line: 3},
			{Depth: 2, Text: "Features", Line: 6},
		},
		Content: docserve.StaticContent(content),
	})

	t.Run("section spans to next heading of same depth", func(t *testing.T) {
		t.Parallel()

		sec, err := svc.Section(context.Background(), 0, "intro", 0, 0)
		require.NoError(t, err)

		assert.Equal(t, 3, sec.FromLine)
		assert.Equal(t, 5, sec.ToLine)
		assert.Equal(t, "## Intro\nintro body\nmore body", sec.Content)
		assert.Equal(t, 1, sec.PageStart)
		assert.Equal(t, 1, sec.PageEnd)
		assert.Equal(t, 1, sec.TotalPages)
	})

	t.Run("last section runs to end of document", func(t *testing.T) {
		t.Parallel()

		sec, err := svc.Section(context.Background(), 0, "features", 0, 0)
		require.NoError(t, err)

		assert.Equal(t, 6, sec.FromLine)
		assert.Equal(t, 7, sec.ToLine)
	})

	t.Run("no matching heading", func(t *testing.T) {
		t.Parallel()

		_, err := svc.Section(context.Background(), 0, "nonexistent", 0, 0)
		require.Error(t, err)
		assert.Equal(t, docserve.ENOTFOUND, docserve.ErrorCode(err))
	})

	t.Run("depth filter skips shallower headings", func(t *testing.T) {
		t.Parallel()

		sec, err := svc.Section(context.Background(), 0, "main", 2, 0)
		require.Error(t, err)
		assert.Nil(t, sec)
	})

	t.Run("unknown document", func(t *testing.T) {
		t.Parallel()

		_, err := svc.Section(context.Background(), 42, "intro", 0, 0)
		require.Error(t, err)
		assert.Equal(t, docserve.ENOTFOUND, docserve.ErrorCode(err))
	})
}

func TestService_Section_PageMapping(t *testing.T) {
	t.Parallel()

	// 10 lines, page size 4: heading at line 6 lands on page 2.
	lines := make([]string, 10)
	for i := range lines {
		lines[i] = "line"
	}
	lines[5] = "## Deep"

	svc, _ := newService(t, &docserve.Document{
		Title: "Mapped",
		Headings: []docserve.Heading{
			{Depth: 2, Text: "Deep", Line: 6},
		},
		Content: docserve.StaticContent(strings.Join(lines, "\n")),
	})

	sec, err := svc.Section(context.Background(), 0, "deep", 0, 4)
	require.NoError(t, err)

	assert.Equal(t, 6, sec.FromLine)
	assert.Equal(t, 10, sec.ToLine)
	assert.Equal(t, 2, sec.PageStart)
	assert.Equal(t, 3, sec.PageEnd)
	assert.Equal(t, 3, sec.TotalPages)
}

func TestService_Search_Delegates(t *testing.T) {
	t.Parallel()

	want := []docserve.SearchResult{{ID: 7, Title: "Hit", Score: 2}}
	svc := &corpus.Service{
		Searcher: &mock.SearchService{
			SearchFn: func(_ context.Context, query string) ([]docserve.SearchResult, error) {
				assert.Equal(t, "bun build", query)
				return want, nil
			},
		},
	}

	got, err := svc.Search(context.Background(), "bun build")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
