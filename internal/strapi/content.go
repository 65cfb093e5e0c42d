package strapi

import "context"

// VideoOptions narrows an explainer-video listing.
type VideoOptions struct {
	Featured bool
	Pillar   string
}

// ArticleOptions narrows an article listing.
type ArticleOptions struct {
	Pillar   string
	Category string // category slug
}

// AchievementOptions narrows an achievement listing.
type AchievementOptions struct {
	Featured bool
}

// TeamMembers fetches active team members in display order, with images.
func (c *Client) TeamMembers(ctx context.Context) ([]TeamMember, error) {
	q := Query{
		Populate: []string{"image"},
		Filters:  []Filter{{Field: []string{"isActive"}, Value: "true"}},
		Sort:     []string{"order:asc"},
	}
	var members []TeamMember
	if _, err := c.getList(ctx, "/team-members", q, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// ExplainerVideos fetches videos in display order, with categories.
func (c *Client) ExplainerVideos(ctx context.Context, opts VideoOptions) ([]ExplainerVideo, error) {
	q := Query{
		Populate: []string{"category"},
		Sort:     []string{"order:asc"},
	}
	if opts.Featured {
		q.Filters = append(q.Filters, Filter{Field: []string{"isFeatured"}, Value: "true"})
	}
	if opts.Pillar != "" {
		q.Filters = append(q.Filters, Filter{Field: []string{"pillar"}, Value: opts.Pillar})
	}
	var videos []ExplainerVideo
	if _, err := c.getList(ctx, "/explainer-videos", q, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// ImpactStats fetches visible impact stats in display order.
func (c *Client) ImpactStats(ctx context.Context) ([]ImpactStat, error) {
	q := Query{
		Filters: []Filter{{Field: []string{"isVisible"}, Value: "true"}},
		Sort:    []string{"order:asc"},
	}
	var stats []ImpactStat
	if _, err := c.getList(ctx, "/impact-stats", q, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// Articles fetches published articles, newest first, with their image, author
// and category populated.
func (c *Client) Articles(ctx context.Context, opts ArticleOptions) ([]Article, error) {
	q := Query{
		Populate: []string{"featuredImage", "author", "category"},
		Filters:  []Filter{{Field: []string{"isPublished"}, Value: "true"}},
		Sort:     []string{"publishDate:desc"},
	}
	if opts.Pillar != "" {
		q.Filters = append(q.Filters, Filter{Field: []string{"pillar"}, Value: opts.Pillar})
	}
	if opts.Category != "" {
		q.Filters = append(q.Filters, Filter{Field: []string{"category", "slug"}, Value: opts.Category})
	}
	var articles []Article
	if _, err := c.getList(ctx, "/articles", q, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// ArticleBySlug fetches a single article by its slug. Returns ErrNotFound when
// no article matches.
func (c *Client) ArticleBySlug(ctx context.Context, slug string) (*Article, error) {
	q := Query{
		Populate: []string{"featuredImage", "author", "category"},
		Filters:  []Filter{{Field: []string{"slug"}, Value: slug}},
	}
	var articles []Article
	if _, err := c.getList(ctx, "/articles", q, &articles); err != nil {
		return nil, err
	}
	if len(articles) == 0 {
		return nil, ErrNotFound
	}
	return &articles[0], nil
}

// Categories fetches all categories sorted by name.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	q := Query{Sort: []string{"name:asc"}}
	var categories []Category
	if _, err := c.getList(ctx, "/categories", q, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CoreValues fetches the organization's core values in display order.
func (c *Client) CoreValues(ctx context.Context) ([]CoreValue, error) {
	q := Query{Sort: []string{"order:asc"}}
	var values []CoreValue
	if _, err := c.getList(ctx, "/core-values", q, &values); err != nil {
		return nil, err
	}
	return values, nil
}

// Achievements fetches achievements in display order.
func (c *Client) Achievements(ctx context.Context, opts AchievementOptions) ([]Achievement, error) {
	q := Query{Sort: []string{"order:asc"}}
	if opts.Featured {
		q.Filters = append(q.Filters, Filter{Field: []string{"isFeatured"}, Value: "true"})
	}
	var achievements []Achievement
	if _, err := c.getList(ctx, "/achievements", q, &achievements); err != nil {
		return nil, err
	}
	return achievements, nil
}

// SiteSettings fetches the singleton site settings record with its logo.
// Callers are expected to fall back to defaults when the record is absent.
func (c *Client) SiteSettings(ctx context.Context) (*SiteSettings, error) {
	q := Query{Populate: []string{"logo"}}
	var settings SiteSettings
	if err := c.getSingle(ctx, "/site-setting", q, &settings); err != nil {
		return nil, err
	}
	if settings.SiteName == "" && settings.ID == 0 {
		return nil, ErrNotFound
	}
	return &settings, nil
}
