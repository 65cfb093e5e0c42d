package storage

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testEntry(id, kind, title string) *Entry {
	return &Entry{
		ID:          id,
		Kind:        kind,
		Slug:        title,
		Title:       title,
		Body:        "body of " + title,
		Path:        "/articles/" + title,
		PublishedAt: "2024-06-18",
		ContentHash: "hash-" + title,
		SyncedAt:    time.Now(),
	}
}

func TestUpsertAndGet(t *testing.T) {
	db := openTestDB(t)

	e := testEntry("article-a1", KindArticle, "finance-bill")
	if err := db.Upsert(e); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	got, err := db.Get("article-a1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || got.Title != "finance-bill" {
		t.Fatalf("Get = %+v", got)
	}

	// Upsert again with new content
	e.Body = "revised"
	e.ContentHash = "hash-2"
	if err := db.Upsert(e); err != nil {
		t.Fatalf("Upsert update: %v", err)
	}

	got, err = db.Get("article-a1")
	if err != nil {
		t.Fatalf("Get after update: %v", err)
	}
	if got.Body != "revised" || got.ContentHash != "hash-2" {
		t.Fatalf("update not applied: %+v", got)
	}

	count, err := db.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 1 {
		t.Fatalf("count = %d, want 1 (upsert must not duplicate)", count)
	}
}

func TestGetMissing(t *testing.T) {
	db := openTestDB(t)

	got, err := db.Get("nope")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Fatalf("Get(missing) = %+v, want nil", got)
	}

	hash, err := db.GetContentHash("nope")
	if err != nil {
		t.Fatalf("GetContentHash: %v", err)
	}
	if hash != "" {
		t.Fatalf("hash = %q, want empty for missing entry", hash)
	}
}

func TestListByKind(t *testing.T) {
	db := openTestDB(t)

	entries := []*Entry{
		testEntry("article-a1", KindArticle, "one"),
		testEntry("article-a2", KindArticle, "two"),
		testEntry("video-v1", KindVideo, "clip"),
	}
	for _, e := range entries {
		if err := db.Upsert(e); err != nil {
			t.Fatalf("Upsert %s: %v", e.ID, err)
		}
	}

	articles, err := db.List(KindArticle)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("got %d articles, want 2", len(articles))
	}

	all, err := db.List("")
	if err != nil {
		t.Fatalf("List all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d entries, want 3", len(all))
	}
}

func TestDeleteMissing(t *testing.T) {
	db := openTestDB(t)

	for _, e := range []*Entry{
		testEntry("article-a1", KindArticle, "keep"),
		testEntry("article-a2", KindArticle, "drop"),
		testEntry("video-v1", KindVideo, "clip"),
	} {
		if err := db.Upsert(e); err != nil {
			t.Fatalf("Upsert: %v", err)
		}
	}

	deleted, err := db.DeleteMissing(KindArticle, map[string]bool{"article-a1": true})
	if err != nil {
		t.Fatalf("DeleteMissing: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("deleted = %d, want 1", deleted)
	}

	if got, _ := db.Get("article-a2"); got != nil {
		t.Fatal("article-a2 should be gone")
	}
	// Other kinds untouched
	if got, _ := db.Get("video-v1"); got == nil {
		t.Fatal("video-v1 should survive an article prune")
	}
}
