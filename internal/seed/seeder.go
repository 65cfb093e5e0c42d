// Package seed populates an empty CMS with the initial content corpus over
// its REST write endpoints. One-shot and duplicate-tolerant: re-running
// against an already-seeded CMS leaves existing records alone.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/thebigtalk/bigtalk/internal/content"
	"github.com/thebigtalk/bigtalk/internal/strapi"
)

// Seeder writes the embedded corpus into the CMS.
type Seeder struct {
	client *strapi.Client
}

// NewSeeder creates a seeder around an authenticated client.
func NewSeeder(client *strapi.Client) *Seeder {
	return &Seeder{client: client}
}

// Stats summarizes a seed run.
type Stats struct {
	Created  int
	Existing int
	Failed   int
}

// Run seeds every collection and upserts the site settings. Individual
// failures are logged and counted but never abort the run.
func (s *Seeder) Run(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	log.Println("Creating team members...")
	for _, m := range teamMembers {
		s.create(ctx, "/team-members", m.Name, m, stats)
	}

	log.Println("Creating core values...")
	for _, v := range coreValues {
		s.create(ctx, "/core-values", v.Name, v, stats)
	}

	log.Println("Creating impact stats...")
	for _, st := range impactStats {
		s.create(ctx, "/impact-stats", st.Label, st, stats)
	}

	log.Println("Creating categories...")
	for _, c := range categories {
		s.create(ctx, "/categories", c.Name, c, stats)
	}

	log.Println("Creating achievements...")
	for _, a := range achievements {
		s.create(ctx, "/achievements", a.Title, a, stats)
	}

	log.Println("Creating articles...")
	for _, a := range articles {
		a.Slug = content.Slugify(a.Title)
		s.create(ctx, "/articles", a.Title, a, stats)
	}

	log.Println("Creating explainer videos...")
	for _, v := range explainerVideos {
		s.create(ctx, "/explainer-videos", v.Title, v, stats)
	}

	log.Println("Creating site settings...")
	if err := s.upsertSiteSettings(ctx, stats); err != nil {
		log.Printf("Failed to create site settings: %v", err)
		stats.Failed++
	}

	if ctx.Err() != nil {
		return stats, ctx.Err()
	}
	return stats, nil
}

// create posts one record, treating the CMS's uniqueness rejection as
// already-present rather than a failure.
func (s *Seeder) create(ctx context.Context, endpoint, name string, data interface{}, stats *Stats) {
	err := s.client.Create(ctx, endpoint, data)
	if err == nil {
		log.Printf("Created %s: %s", strings.TrimPrefix(endpoint, "/"), name)
		stats.Created++
		return
	}

	var apiErr *strapi.APIError
	if errors.As(err, &apiErr) && strings.Contains(apiErr.Body, "unique") {
		log.Printf("Already exists: %s", name)
		stats.Existing++
		return
	}

	log.Printf("Failed to create %s: %v", name, err)
	stats.Failed++
}

// upsertSiteSettings updates the singleton when it exists and creates it
// otherwise. The create-after-failed-get path covers a CMS that 404s on an
// absent single type.
func (s *Seeder) upsertSiteSettings(ctx context.Context, stats *Stats) error {
	_, err := s.client.SiteSettings(ctx)
	if err == nil {
		if err := s.client.Update(ctx, "/site-setting", siteSettings); err != nil {
			return fmt.Errorf("update site settings: %w", err)
		}
		log.Println("Updated site settings")
		stats.Existing++
		return nil
	}

	if err := s.client.Create(ctx, "/site-setting", siteSettings); err != nil {
		return fmt.Errorf("create site settings: %w", err)
	}
	log.Println("Created site settings")
	stats.Created++
	return nil
}
