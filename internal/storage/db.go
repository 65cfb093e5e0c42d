// Package storage keeps a local SQLite mirror of published CMS content so the
// site search works without a round trip to the CMS.
package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps SQLite database operations.
type DB struct {
	db *sql.DB
}

// Open opens or creates a SQLite database.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// WAL mode for better concurrency between sync and serve
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("enable WAL: %w", err)
	}

	storage := &DB{db: db}

	if err := storage.initSchema(); err != nil {
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return storage, nil
}

// Close closes the database.
func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS entries (
		id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		slug TEXT,
		title TEXT NOT NULL,
		body TEXT NOT NULL,
		excerpt TEXT,
		category TEXT,
		author TEXT,
		path TEXT NOT NULL,
		published_at TEXT,
		content_hash TEXT NOT NULL,
		synced_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_kind ON entries(kind);
	CREATE INDEX IF NOT EXISTS idx_slug ON entries(slug);
	CREATE INDEX IF NOT EXISTS idx_published ON entries(published_at);
	CREATE INDEX IF NOT EXISTS idx_hash ON entries(content_hash);
	`

	_, err := d.db.Exec(schema)
	return err
}

// Upsert inserts or updates an entry.
func (d *DB) Upsert(e *Entry) error {
	query := `
	INSERT INTO entries (
		id, kind, slug, title, body, excerpt, category, author,
		path, published_at, content_hash, synced_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		kind = excluded.kind,
		slug = excluded.slug,
		title = excluded.title,
		body = excluded.body,
		excerpt = excluded.excerpt,
		category = excluded.category,
		author = excluded.author,
		path = excluded.path,
		published_at = excluded.published_at,
		content_hash = excluded.content_hash,
		synced_at = excluded.synced_at
	`

	_, err := d.db.Exec(query,
		e.ID, e.Kind, e.Slug, e.Title, e.Body, e.Excerpt, e.Category, e.Author,
		e.Path, e.PublishedAt, e.ContentHash, e.SyncedAt,
	)
	return err
}

// Get retrieves an entry by ID. Returns nil when no entry exists.
func (d *DB) Get(id string) (*Entry, error) {
	e := &Entry{}
	query := `
	SELECT id, kind, slug, title, body, excerpt, category, author,
	       path, published_at, content_hash, synced_at
	FROM entries
	WHERE id = ?
	`

	err := d.db.QueryRow(query, id).Scan(
		&e.ID, &e.Kind, &e.Slug, &e.Title, &e.Body, &e.Excerpt, &e.Category, &e.Author,
		&e.Path, &e.PublishedAt, &e.ContentHash, &e.SyncedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return e, nil
}

// List retrieves all entries, optionally restricted to a kind, newest first.
func (d *DB) List(kind string) ([]*Entry, error) {
	query := `
	SELECT id, kind, slug, title, body, excerpt, category, author,
	       path, published_at, content_hash, synced_at
	FROM entries
	`
	var args []interface{}
	if kind != "" {
		query += " WHERE kind = ?"
		args = append(args, kind)
	}
	query += " ORDER BY published_at DESC"

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		e := &Entry{}
		err := rows.Scan(
			&e.ID, &e.Kind, &e.Slug, &e.Title, &e.Body, &e.Excerpt, &e.Category, &e.Author,
			&e.Path, &e.PublishedAt, &e.ContentHash, &e.SyncedAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Count returns the total number of entries.
func (d *DB) Count() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM entries").Scan(&count)
	return count, err
}

// GetContentHash retrieves just the content hash for an entry. Returns ""
// when the entry does not exist.
func (d *DB) GetContentHash(id string) (string, error) {
	var hash string
	err := d.db.QueryRow("SELECT content_hash FROM entries WHERE id = ?", id).Scan(&hash)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return hash, err
}

// DeleteMissing removes entries of the given kind whose IDs are not in keep.
// Used after a sync so unpublished content drops out of search.
func (d *DB) DeleteMissing(kind string, keep map[string]bool) (int, error) {
	entries, err := d.List(kind)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, e := range entries {
		if keep[e.ID] {
			continue
		}
		if _, err := d.db.Exec("DELETE FROM entries WHERE id = ?", e.ID); err != nil {
			return deleted, err
		}
		deleted++
	}
	return deleted, nil
}
