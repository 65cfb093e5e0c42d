package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/thebigtalk/bigtalk/internal/search"
	"github.com/thebigtalk/bigtalk/internal/strapi"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		team         []strapi.TeamMember
		stats        []strapi.ImpactStat
		videos       []strapi.ExplainerVideo
		achievements []strapi.Achievement
		values       []strapi.CoreValue
		articles     []strapi.Article
		settings     strapi.SiteSettings
	)

	g, gctx := errgroup.WithContext(ctx)
	section(gctx, g, "team members", &team, s.cms.TeamMembers)
	section(gctx, g, "impact stats", &stats, s.cms.ImpactStats)
	section(gctx, g, "featured videos", &videos, func(ctx context.Context) ([]strapi.ExplainerVideo, error) {
		return s.cms.ExplainerVideos(ctx, strapi.VideoOptions{Featured: true})
	})
	section(gctx, g, "featured achievements", &achievements, func(ctx context.Context) ([]strapi.Achievement, error) {
		return s.cms.Achievements(ctx, strapi.AchievementOptions{Featured: true})
	})
	section(gctx, g, "core values", &values, s.cms.CoreValues)
	section(gctx, g, "articles", &articles, func(ctx context.Context) ([]strapi.Article, error) {
		return s.cms.Articles(ctx, strapi.ArticleOptions{})
	})
	g.Go(func() error {
		settings = s.settings(gctx)
		return nil
	})
	_ = g.Wait() // section fetches never return errors

	if len(articles) > 3 {
		articles = articles[:3]
	}

	s.render(w, "home.html", map[string]interface{}{
		"Settings":      settings,
		"Team":          team,
		"Stats":         stats,
		"Videos":        videos,
		"Achievements":  achievements,
		"Values":        values,
		"Articles":      articles,
		"SearchEnabled": s.idx != nil,
	})
}

func (s *Server) handleArticles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	opts := strapi.ArticleOptions{
		Pillar:   r.URL.Query().Get("pillar"),
		Category: r.URL.Query().Get("category"),
	}

	var (
		articles   []strapi.Article
		categories []strapi.Category
		settings   strapi.SiteSettings
	)

	g, gctx := errgroup.WithContext(ctx)
	section(gctx, g, "articles", &articles, func(ctx context.Context) ([]strapi.Article, error) {
		return s.cms.Articles(ctx, opts)
	})
	section(gctx, g, "categories", &categories, s.cms.Categories)
	g.Go(func() error {
		settings = s.settings(gctx)
		return nil
	})
	_ = g.Wait()

	s.render(w, "articles.html", map[string]interface{}{
		"Settings":        settings,
		"Articles":        articles,
		"Categories":      categories,
		"CurrentCategory": opts.Category,
		"SearchEnabled":   s.idx != nil,
	})
}

func (s *Server) handleArticle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")

	article, err := s.cms.ArticleBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, strapi.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "Content temporarily unavailable", http.StatusBadGateway)
		return
	}

	s.render(w, "article.html", map[string]interface{}{
		"Settings":      s.settings(ctx),
		"Article":       article,
		"ShareURL":      s.cfg.SiteURL + "/articles/" + article.Slug,
		"SearchEnabled": s.idx != nil,
	})
}

func (s *Server) handleVideos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	opts := strapi.VideoOptions{Pillar: r.URL.Query().Get("pillar")}

	var (
		videos   []strapi.ExplainerVideo
		settings strapi.SiteSettings
	)

	g, gctx := errgroup.WithContext(ctx)
	section(gctx, g, "videos", &videos, func(ctx context.Context) ([]strapi.ExplainerVideo, error) {
		return s.cms.ExplainerVideos(ctx, opts)
	})
	g.Go(func() error {
		settings = s.settings(gctx)
		return nil
	})
	_ = g.Wait()

	s.render(w, "videos.html", map[string]interface{}{
		"Settings":      settings,
		"Videos":        videos,
		"CurrentPillar": opts.Pillar,
		"SearchEnabled": s.idx != nil,
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if s.idx == nil {
		http.Error(w, "Search is not enabled", http.StatusNotFound)
		return
	}

	query := r.URL.Query().Get("q")

	var results []*search.Result
	if query != "" {
		var err error
		results, err = s.idx.Search(query, 20)
		if err != nil {
			http.Error(w, "Search failed", http.StatusInternalServerError)
			return
		}
	}

	s.render(w, "search.html", map[string]interface{}{
		"Settings":      s.settings(r.Context()),
		"Query":         query,
		"Results":       results,
		"SearchEnabled": true,
	})
}
