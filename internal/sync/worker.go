// Package sync pulls published content out of the CMS into the local mirror
// and search index.
package sync

import (
	"context"
	"crypto/md5"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/thebigtalk/bigtalk/internal/search"
	"github.com/thebigtalk/bigtalk/internal/storage"
	"github.com/thebigtalk/bigtalk/internal/strapi"
)

// Worker mirrors articles and explainer videos from the CMS.
type Worker struct {
	client *strapi.Client
	db     *storage.DB
	index  *search.Index
}

// NewWorker creates a new sync worker.
func NewWorker(client *strapi.Client, db *storage.DB, index *search.Index) *Worker {
	return &Worker{
		client: client,
		db:     db,
		index:  index,
	}
}

// Stats holds sync statistics.
type Stats struct {
	TotalEntries   int
	NewEntries     int
	UpdatedEntries int
	SkippedEntries int
	RemovedEntries int
	Errors         int
	Duration       time.Duration
}

// Sync fetches published articles and videos and upserts them into the mirror.
// Entries that disappeared upstream are removed so unpublished content drops
// out of search.
func (w *Worker) Sync(ctx context.Context) (*Stats, error) {
	startTime := time.Now()
	stats := &Stats{}

	log.Println("Starting sync...")

	articles, err := w.client.Articles(ctx, strapi.ArticleOptions{})
	if err != nil {
		return nil, fmt.Errorf("fetch articles: %w", err)
	}
	log.Printf("Found %d published articles", len(articles))

	videos, err := w.client.ExplainerVideos(ctx, strapi.VideoOptions{})
	if err != nil {
		return nil, fmt.Errorf("fetch videos: %w", err)
	}
	log.Printf("Found %d explainer videos", len(videos))

	entries := make([]*storage.Entry, 0, len(articles)+len(videos))
	for i := range articles {
		entries = append(entries, articleEntry(&articles[i]))
	}
	for i := range videos {
		entries = append(entries, videoEntry(&videos[i]))
	}
	stats.TotalEntries = len(entries)

	entryChan := make(chan *storage.Entry, len(entries))
	for _, e := range entries {
		entryChan <- e
	}
	close(entryChan)

	concurrency := 4
	var wg sync.WaitGroup
	var mu sync.Mutex

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for e := range entryChan {
				if err := w.syncEntry(e, stats, &mu); err != nil {
					log.Printf("Error syncing %s (%s): %v", e.ID, e.Title, err)
					mu.Lock()
					stats.Errors++
					mu.Unlock()
				}
			}
		}()
	}

	wg.Wait()

	// Prune entries no longer published upstream
	keep := make(map[string]bool, len(entries))
	for _, e := range entries {
		keep[e.ID] = true
	}
	for _, kind := range []string{storage.KindArticle, storage.KindVideo} {
		removed, err := w.pruneKind(kind, keep)
		if err != nil {
			log.Printf("Warning: prune %s entries: %v", kind, err)
			stats.Errors++
			continue
		}
		stats.RemovedEntries += removed
	}

	stats.Duration = time.Since(startTime)
	log.Printf("Sync complete: %d new, %d updated, %d skipped, %d removed, %d errors in %v",
		stats.NewEntries, stats.UpdatedEntries, stats.SkippedEntries, stats.RemovedEntries,
		stats.Errors, stats.Duration)

	return stats, nil
}

func (w *Worker) syncEntry(e *storage.Entry, stats *Stats, mu *sync.Mutex) error {
	existingHash, err := w.db.GetContentHash(e.ID)
	if err != nil {
		return fmt.Errorf("get content hash: %w", err)
	}

	if existingHash == e.ContentHash {
		mu.Lock()
		stats.SkippedEntries++
		mu.Unlock()
		return nil
	}

	e.SyncedAt = time.Now()
	if err := w.db.Upsert(e); err != nil {
		return fmt.Errorf("upsert entry: %w", err)
	}

	indexed := &search.IndexedEntry{
		ID:          e.ID,
		Kind:        e.Kind,
		Title:       e.Title,
		Body:        e.Body,
		Category:    e.Category,
		Author:      e.Author,
		Path:        e.Path,
		PublishedAt: e.PublishedAt,
	}
	if err := w.index.IndexEntry(indexed); err != nil {
		return fmt.Errorf("index entry: %w", err)
	}

	mu.Lock()
	if existingHash == "" {
		stats.NewEntries++
	} else {
		stats.UpdatedEntries++
	}
	mu.Unlock()

	log.Printf("Synced: %s", e.Title)
	return nil
}

func (w *Worker) pruneKind(kind string, keep map[string]bool) (int, error) {
	existing, err := w.db.List(kind)
	if err != nil {
		return 0, err
	}
	for _, e := range existing {
		if keep[e.ID] {
			continue
		}
		if err := w.index.Delete(e.ID); err != nil {
			return 0, fmt.Errorf("delete %s from index: %w", e.ID, err)
		}
	}
	return w.db.DeleteMissing(kind, keep)
}

func articleEntry(a *strapi.Article) *storage.Entry {
	e := &storage.Entry{
		ID:          storage.KindArticle + "-" + a.DocumentID,
		Kind:        storage.KindArticle,
		Slug:        a.Slug,
		Title:       a.Title,
		Body:        a.Content,
		Excerpt:     a.Excerpt,
		Path:        "/articles/" + a.Slug,
		PublishedAt: a.PublishDate,
	}
	if a.Category != nil {
		e.Category = a.Category.Name
	}
	if a.Author != nil {
		e.Author = a.Author.Name
	}
	e.ContentHash = entryHash(e)
	return e
}

func videoEntry(v *strapi.ExplainerVideo) *storage.Entry {
	e := &storage.Entry{
		ID:          storage.KindVideo + "-" + v.DocumentID,
		Kind:        storage.KindVideo,
		Title:       v.Title,
		Body:        v.Description,
		Path:        "/videos",
		PublishedAt: v.PublishDate,
	}
	if v.Category != nil {
		e.Category = v.Category.Name
	}
	e.ContentHash = entryHash(e)
	return e
}

func entryHash(e *storage.Entry) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(e.Title+"\x00"+e.Body+"\x00"+e.Excerpt+"\x00"+e.Category+"\x00"+e.Author)))
}
