package docsite

import "strings"

// MaxSearchResults bounds the number of records a search returns.
const MaxSearchResults = 10

// Searcher filters the documentation index by a free-text query.
type Searcher interface {
	// Search returns at most MaxSearchResults matching records in their
	// static definition order. An empty query returns no results.
	Search(query string) []SearchRecord
}

// Ensure SearchIndex implements Searcher at compile time.
var _ Searcher = (*SearchIndex)(nil)

// SearchIndex is the fixed, in-memory set of search records.
// It is safe for concurrent use since it is never mutated after creation.
type SearchIndex struct {
	records []SearchRecord
	texts   []string
}

// NewSearchIndex validates records and returns an index over a copy of them.
func NewSearchIndex(records []SearchRecord) (*SearchIndex, error) {
	idx := &SearchIndex{
		records: make([]SearchRecord, len(records)),
		texts:   make([]string, len(records)),
	}
	copy(idx.records, records)
	for i := range idx.records {
		if err := idx.records[i].Validate(); err != nil {
			return nil, err
		}
		idx.texts[i] = idx.records[i].searchText()
	}
	return idx, nil
}

// Len returns the number of records in the index.
func (idx *SearchIndex) Len() int {
	return len(idx.records)
}

// Records returns a copy of all records in definition order.
func (idx *SearchIndex) Records() []SearchRecord {
	out := make([]SearchRecord, len(idx.records))
	copy(out, idx.records)
	return out
}

// Search returns records where every query term is a case-insensitive
// substring of title, description and category joined by spaces.
func (idx *SearchIndex) Search(query string) []SearchRecord {
	terms := Terms(query)
	if len(terms) == 0 {
		return nil
	}

	var results []SearchRecord
	for i, text := range idx.texts {
		if !matchAll(text, terms) {
			continue
		}
		results = append(results, idx.records[i])
		if len(results) == MaxSearchResults {
			break
		}
	}
	return results
}

// Terms lowercases query and splits it on whitespace.
func Terms(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

// Matches reports whether r matches every term of query.
// An empty query matches nothing.
func Matches(r SearchRecord, query string) bool {
	terms := Terms(query)
	if len(terms) == 0 {
		return false
	}
	return matchAll(r.searchText(), terms)
}

func matchAll(text string, terms []string) bool {
	for _, term := range terms {
		if !strings.Contains(text, term) {
			return false
		}
	}
	return true
}
