// Package web serves the public site, rendering CMS content into HTML pages.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/thebigtalk/bigtalk/internal/config"
	"github.com/thebigtalk/bigtalk/internal/content"
	"github.com/thebigtalk/bigtalk/internal/search"
	"github.com/thebigtalk/bigtalk/internal/seed"
	"github.com/thebigtalk/bigtalk/internal/storage"
	"github.com/thebigtalk/bigtalk/internal/strapi"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Server renders site pages from CMS content. The mirror (db/idx) is only
// consulted for search; every page fetches live content and degrades section
// by section when the CMS is unreachable.
type Server struct {
	cfg       config.Config
	cms       *strapi.Client
	db        *storage.DB
	idx       *search.Index
	router    chi.Router
	templates *template.Template
}

// NewServer creates the site server. db and idx may be nil, which disables
// the search page.
func NewServer(cfg config.Config, cms *strapi.Client, db *storage.DB, idx *search.Index) (*Server, error) {
	s := &Server{
		cfg: cfg,
		cms: cms,
		db:  db,
		idx: idx,
	}

	tmpl, err := template.New("").Funcs(template.FuncMap{
		"mediaURL": func(m *strapi.Media) string {
			return content.MediaURL(m, cfg.StrapiURL)
		},
		"thumbnail": func(url string) string {
			return content.Thumbnail(url, content.QualityHigh)
		},
		"embedURL":     content.EmbedURL,
		"formatDate":   content.FormatDate,
		"renderInline": func(s string) template.HTML { return template.HTML(content.RenderInline(s)) },
		"renderBlocks": func(s string) template.HTML { return template.HTML(content.RenderBlocks(s)) },
		"statParts":    statParts,
		"safeHTML":     func(s string) template.HTML { return template.HTML(s) },
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	s.templates = tmpl

	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	r.Get("/", s.handleHome)
	r.Get("/articles", s.handleArticles)
	r.Get("/articles/{slug}", s.handleArticle)
	r.Get("/videos", s.handleVideos)
	r.Get("/search", s.handleSearch)
	r.Get("/health", s.handleHealth)

	s.router = r
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// statPartsResult feeds the homepage counters.
type statPartsResult struct {
	Number  int
	Suffix  string
	Animate bool
}

func statParts(value string) statPartsResult {
	n, suffix, ok := content.SplitStatValue(value)
	return statPartsResult{Number: n, Suffix: suffix, Animate: ok}
}

// section runs one content fetch inside the page fan-out, substituting an
// empty result on failure so a CMS outage degrades only that page section.
func section[T any](ctx context.Context, g *errgroup.Group, name string, dst *T, fetch func(context.Context) (T, error)) {
	g.Go(func() error {
		v, err := fetch(ctx)
		if err != nil {
			log.Printf("fetch %s: %v", name, err)
			return nil
		}
		*dst = v
		return nil
	})
}

// settings fetches site settings, substituting compiled-in defaults when the
// record is absent or the CMS is down.
func (s *Server) settings(ctx context.Context) strapi.SiteSettings {
	st, err := s.cms.SiteSettings(ctx)
	if err != nil {
		log.Printf("fetch site settings: %v", err)
		d := seed.DefaultSiteSettings()
		return strapi.SiteSettings{
			SiteName:     d.SiteName,
			Tagline:      d.Tagline,
			Mission:      d.Mission,
			Vision:       d.Vision,
			About:        d.About,
			TiktokURL:    d.TiktokURL,
			InstagramURL: d.InstagramURL,
			TwitterURL:   d.TwitterURL,
			FacebookURL:  d.FacebookURL,
			YoutubeURL:   d.YoutubeURL,
		}
	}
	return *st
}

func (s *Server) render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	// Pages are fetched fresh per request; the freshness window is advisory
	// and lives at the edge, not in the content client.
	w.Header().Set("Cache-Control", "public, max-age=300")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("render %s: %v", name, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{"status": "ok", "search_enabled": s.idx != nil}
	if s.db != nil {
		if count, err := s.db.Count(); err == nil {
			status["entries_in_mirror"] = count
		}
	}
	if s.idx != nil {
		if count, err := s.idx.Count(); err == nil {
			status["entries_in_index"] = count
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(status)
}
