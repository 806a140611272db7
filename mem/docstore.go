// Package mem provides in-memory implementations of the document store and
// search index. The corpus is rebuilt fresh on every launch, so nothing
// here persists.
package mem

import (
	"context"
	"sync"

	"github.com/docserve/docserve"
)

// Compile-time interface verification.
var (
	_ docserve.DocumentService = (*DocStore)(nil)
	_ docserve.SearchService   = (*DocStore)(nil)
)

// DocStore is the in-memory document corpus. Registration appends to a
// slice so the assigned ID doubles as the lookup index, and updates the
// search index inside the same critical section: no document ever exists
// in one structure without the other.
type DocStore struct {
	mu    sync.RWMutex
	docs  []*docserve.Document
	index *index
}

// NewDocStore creates an empty DocStore.
func NewDocStore() *DocStore {
	return &DocStore{index: newIndex()}
}

// Register adds a document to the corpus and assigns the next sequential
// ID. IDs reflect the order registrations commit; concurrent ingestion
// tasks may complete out of discovery order.
func (s *DocStore) Register(_ context.Context, doc *docserve.Document) (int, error) {
	if err := doc.Validate(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc.ID = len(s.docs)
	s.docs = append(s.docs, doc)
	s.index.add(doc)

	return doc.ID, nil
}

// FindByID retrieves a document by ID.
func (s *DocStore) FindByID(_ context.Context, id int) (*docserve.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if id < 0 || id >= len(s.docs) {
		return nil, docserve.Errorf(docserve.ENOTFOUND, "document %d not found", id)
	}
	return s.docs[id], nil
}

// Count returns the number of registered documents.
func (s *DocStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs), nil
}

// Search queries the index. Results are capped at
// docserve.MaxSearchResults.
func (s *DocStore) Search(_ context.Context, query string) ([]docserve.SearchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.search(query, docserve.MaxSearchResults), nil
}
