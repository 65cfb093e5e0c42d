// Package search maintains a Bleve full-text index over mirrored content.
package search

import (
	"fmt"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/thebigtalk/bigtalk/internal/storage"
)

// Index wraps a Bleve search index.
type Index struct {
	index bleve.Index
}

// IndexedEntry is the shape of a content entry inside the search index.
type IndexedEntry struct {
	ID          string
	Kind        string
	Title       string
	Body        string
	Category    string
	Author      string
	Path        string
	PublishedAt string
}

// Result is a single search hit.
type Result struct {
	ID        string
	Kind      string
	Title     string
	Category  string
	Path      string
	Score     float64
	Fragments map[string][]string // highlighted snippets
}

// Open opens or creates a Bleve index at path.
func Open(path string) (*Index, error) {
	idx, err := bleve.Open(path)
	if err == bleve.ErrorIndexPathDoesNotExist {
		idx, err = bleve.New(path, buildIndexMapping())
		if err != nil {
			return nil, fmt.Errorf("create index: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}

	return &Index{index: idx}, nil
}

func buildIndexMapping() mapping.IndexMapping {
	titleFieldMapping := bleve.NewTextFieldMapping()
	titleFieldMapping.Analyzer = "en" // stemming for titles

	docMapping := bleve.NewDocumentMapping()
	docMapping.AddFieldMappingsAt("ID", bleve.NewKeywordFieldMapping())
	docMapping.AddFieldMappingsAt("Kind", bleve.NewKeywordFieldMapping())
	docMapping.AddFieldMappingsAt("Title", titleFieldMapping)
	docMapping.AddFieldMappingsAt("Body", bleve.NewTextFieldMapping())
	docMapping.AddFieldMappingsAt("Category", bleve.NewTextFieldMapping())
	docMapping.AddFieldMappingsAt("Author", bleve.NewTextFieldMapping())
	docMapping.AddFieldMappingsAt("Path", bleve.NewKeywordFieldMapping())

	indexMapping := bleve.NewIndexMapping()
	indexMapping.AddDocumentMapping("_default", docMapping)

	return indexMapping
}

// Close closes the index.
func (i *Index) Close() error {
	return i.index.Close()
}

// IndexEntry adds or updates an entry in the index.
func (i *Index) IndexEntry(e *IndexedEntry) error {
	return i.index.Index(e.ID, e)
}

// Delete removes an entry from the index.
func (i *Index) Delete(id string) error {
	return i.index.Delete(id)
}

// Search runs a query string (supports quotes, boolean operators, fuzzy ~)
// against the index and returns highlighted results.
func (i *Index) Search(queryStr string, limit int) ([]*Result, error) {
	query := bleve.NewQueryStringQuery(queryStr)

	req := bleve.NewSearchRequestOptions(query, limit, 0, false)
	req.Highlight = bleve.NewHighlightWithStyle("html")
	req.Fields = []string{"Kind", "Title", "Category", "Path"}

	results, err := i.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	var hits []*Result
	for _, hit := range results.Hits {
		r := &Result{
			ID:        hit.ID,
			Score:     hit.Score,
			Fragments: hit.Fragments,
		}
		if kind, ok := hit.Fields["Kind"].(string); ok {
			r.Kind = kind
		}
		if title, ok := hit.Fields["Title"].(string); ok {
			r.Title = title
		}
		if category, ok := hit.Fields["Category"].(string); ok {
			r.Category = category
		}
		if path, ok := hit.Fields["Path"].(string); ok {
			r.Path = path
		}
		hits = append(hits, r)
	}

	return hits, nil
}

// Rebuild re-indexes every entry from storage in a single batch.
func (i *Index) Rebuild(db *storage.DB) error {
	entries, err := db.List("")
	if err != nil {
		return fmt.Errorf("list entries: %w", err)
	}

	batch := i.index.NewBatch()
	for _, e := range entries {
		if err := batch.Index(e.ID, fromEntry(e)); err != nil {
			return fmt.Errorf("batch index %s: %w", e.ID, err)
		}
	}

	if err := i.index.Batch(batch); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}

	return nil
}

// Count returns the number of entries in the index.
func (i *Index) Count() (uint64, error) {
	return i.index.DocCount()
}

func fromEntry(e *storage.Entry) *IndexedEntry {
	return &IndexedEntry{
		ID:          e.ID,
		Kind:        e.Kind,
		Title:       e.Title,
		Body:        e.Body,
		Category:    e.Category,
		Author:      e.Author,
		Path:        e.Path,
		PublishedAt: e.PublishedAt,
	}
}
