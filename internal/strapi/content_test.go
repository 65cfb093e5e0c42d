package strapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTeamMembersQueryAndOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/team-members" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if got, want := q.Get("filters[isActive][$eq]"), "true"; got != want {
			t.Errorf("isActive filter = %q, want %q", got, want)
		}
		if got, want := q.Get("sort"), "order:asc"; got != want {
			t.Errorf("sort = %q, want %q", got, want)
		}
		if got, want := q.Get("populate"), "image"; got != want {
			t.Errorf("populate = %q, want %q", got, want)
		}

		w.Write([]byte(`{"data": [
			{"id": 1, "documentId": "a1", "name": "Shallet Kibet", "role": "Executive Director", "order": 1, "isActive": true},
			{"id": 2, "documentId": "b2", "name": "Oscar Kinaiti", "role": "Program Manager", "order": 2, "isActive": true}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	members, err := c.TeamMembers(context.Background())
	if err != nil {
		t.Fatalf("TeamMembers: %v", err)
	}

	if len(members) != 2 {
		t.Fatalf("got %d members, want 2", len(members))
	}
	// CMS-provided order must be preserved
	if members[0].Name != "Shallet Kibet" || members[1].Name != "Oscar Kinaiti" {
		t.Fatalf("wrong order: %q, %q", members[0].Name, members[1].Name)
	}
}

func TestArticlesFilters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got, want := q.Get("filters[isPublished][$eq]"), "true"; got != want {
			t.Errorf("isPublished filter = %q, want %q", got, want)
		}
		if got, want := q.Get("filters[category][slug][$eq]"), "trends"; got != want {
			t.Errorf("category filter = %q, want %q", got, want)
		}
		if got, want := q.Get("sort"), "publishDate:desc"; got != want {
			t.Errorf("sort = %q, want %q", got, want)
		}
		if got, want := q.Get("populate"), "featuredImage,author,category"; got != want {
			t.Errorf("populate = %q, want %q", got, want)
		}
		w.Write([]byte(`{"data": []}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	if _, err := c.Articles(context.Background(), ArticleOptions{Category: "trends"}); err != nil {
		t.Fatalf("Articles: %v", err)
	}
}

func TestArticleBySlug(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch q.Get("filters[slug][$eq]") {
		case "finance-bill":
			w.Write([]byte(`{"data": [{
				"id": 7, "documentId": "c3", "title": "Understanding the Finance Bill",
				"slug": "finance-bill", "content": "## What it means", "isPublished": true,
				"category": {"id": 2, "name": "Explainer", "slug": "explainer", "color": "#3B82F6"},
				"author": {"id": 1, "name": "Faith Muthoni", "role": "Communications Analyst"}
			}]}`))
		default:
			w.Write([]byte(`{"data": []}`))
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")

	article, err := c.ArticleBySlug(context.Background(), "finance-bill")
	if err != nil {
		t.Fatalf("ArticleBySlug: %v", err)
	}
	if article.Title != "Understanding the Finance Bill" {
		t.Fatalf("title = %q", article.Title)
	}
	if article.Category == nil || article.Category.Slug != "explainer" {
		t.Fatalf("category not populated: %+v", article.Category)
	}
	if article.Author == nil || article.Author.Name != "Faith Muthoni" {
		t.Fatalf("author not populated: %+v", article.Author)
	}

	if _, err := c.ArticleBySlug(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing slug: err = %v, want ErrNotFound", err)
	}
}

func TestExplainerVideosOptions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got, want := q.Get("filters[isFeatured][$eq]"), "true"; got != want {
			t.Errorf("isFeatured filter = %q, want %q", got, want)
		}
		if got, want := q.Get("filters[pillar][$eq]"), "explainer"; got != want {
			t.Errorf("pillar filter = %q, want %q", got, want)
		}
		w.Write([]byte(`{"data": [{"id": 1, "documentId": "v1", "title": "How Parliament Works", "youtubeUrl": "https://youtu.be/dQw4w9WgXcQ", "isFeatured": true, "order": 1}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	videos, err := c.ExplainerVideos(context.Background(), VideoOptions{Featured: true, Pillar: "explainer"})
	if err != nil {
		t.Fatalf("ExplainerVideos: %v", err)
	}
	if len(videos) != 1 || videos[0].Title != "How Parliament Works" {
		t.Fatalf("videos = %+v", videos)
	}
}

func TestSiteSettingsSingleton(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/site-setting" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"data": {"id": 1, "siteName": "The Big Talk", "tagline": "Civic Education. Citizen Power."}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	settings, err := c.SiteSettings(context.Background())
	if err != nil {
		t.Fatalf("SiteSettings: %v", err)
	}
	if settings.SiteName != "The Big Talk" {
		t.Fatalf("siteName = %q", settings.SiteName)
	}
}

func TestSiteSettingsAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": null}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	if _, err := c.SiteSettings(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("absent settings: err = %v, want ErrNotFound", err)
	}
}
