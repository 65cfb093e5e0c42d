package storage

import "time"

// Entry kinds mirrored from the CMS.
const (
	KindArticle = "article"
	KindVideo   = "video"
)

// Entry is a locally mirrored piece of published content.
type Entry struct {
	ID          string    `db:"id"` // kind-qualified documentId, e.g. "article-x1y2"
	Kind        string    `db:"kind"`
	Slug        string    `db:"slug"`
	Title       string    `db:"title"`
	Body        string    `db:"body"` // article markdown or video description
	Excerpt     string    `db:"excerpt"`
	Category    string    `db:"category"`
	Author      string    `db:"author"`
	Path        string    `db:"path"` // site-relative link, e.g. /articles/slug
	PublishedAt string    `db:"published_at"`
	ContentHash string    `db:"content_hash"`
	SyncedAt    time.Time `db:"synced_at"`
}
