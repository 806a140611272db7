package mem

import (
	"sort"
	"strings"
	"unicode"

	"github.com/docserve/docserve"
)

// Field weights. Title matches count double relative to description and
// preview matches.
const (
	titleWeight = 2.0
	otherWeight = 1.0
)

// posting accumulates the weighted term frequency of one term in one
// document's metadata fields.
type posting map[int]float64

// index is an inverted index over document metadata. Callers synchronize
// access; DocStore holds the lock.
type index struct {
	terms map[string]posting
	docs  map[int]*docserve.Document
}

func newIndex() *index {
	return &index{
		terms: make(map[string]posting),
		docs:  make(map[int]*docserve.Document),
	}
}

// add indexes the title, description, and preview of doc.
func (idx *index) add(doc *docserve.Document) {
	idx.docs[doc.ID] = doc
	idx.addField(doc.ID, doc.Title, titleWeight)
	idx.addField(doc.ID, doc.Description, otherWeight)
	idx.addField(doc.ID, doc.Preview, otherWeight)
}

func (idx *index) addField(id int, text string, weight float64) {
	for _, term := range tokenize(text) {
		p, ok := idx.terms[term]
		if !ok {
			p = make(posting)
			idx.terms[term] = p
		}
		p[id] += weight
	}
}

// search scores every document whose indexed terms match a query token
// exactly or by prefix, and returns the top limit results ordered by
// descending score with ties broken by ascending document ID. The
// vocabulary scan per query token is deliberate: the index holds metadata
// fields only, so the vocabulary stays small and scoring stays
// deterministic.
func (idx *index) search(query string, limit int) []docserve.SearchResult {
	tokens := tokenize(query)
	if len(tokens) == 0 {
		return nil
	}

	scores := make(map[int]float64)
	for _, token := range tokens {
		for term, p := range idx.terms {
			if term != token && !strings.HasPrefix(term, token) {
				continue
			}
			for id, weight := range p {
				scores[id] += weight
			}
		}
	}

	results := make([]docserve.SearchResult, 0, len(scores))
	for id, score := range scores {
		doc := idx.docs[id]
		results = append(results, docserve.SearchResult{
			ID:          id,
			Title:       doc.Title,
			Description: doc.Description,
			Score:       score,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].ID < results[j].ID
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// tokenize lower-cases text and splits it on any non-alphanumeric rune, so
// "Bun.build" indexes as ["bun", "build"].
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
