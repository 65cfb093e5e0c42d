package strapi

// Media is an uploaded file reference as returned by the CMS media library.
type Media struct {
	URL             string `json:"url"`
	AlternativeText string `json:"alternativeText,omitempty"`
	Width           int    `json:"width,omitempty"`
	Height          int    `json:"height,omitempty"`
	Formats         *struct {
		Thumbnail *MediaFormat `json:"thumbnail,omitempty"`
		Small     *MediaFormat `json:"small,omitempty"`
		Medium    *MediaFormat `json:"medium,omitempty"`
		Large     *MediaFormat `json:"large,omitempty"`
	} `json:"formats,omitempty"`
}

// MediaFormat is a single pre-generated rendition of a Media file.
type MediaFormat struct {
	URL string `json:"url"`
}

// TeamMember represents a member of the organization.
type TeamMember struct {
	ID         int    `json:"id"`
	DocumentID string `json:"documentId"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Image      *Media `json:"image,omitempty"`
	Bio        string `json:"bio"`
	ShortBio   string `json:"shortBio,omitempty"`
	Order      int    `json:"order"`
	IsActive   bool   `json:"isActive"`
}

// Category is a content classification record, referenced by articles and videos.
type Category struct {
	ID          int    `json:"id"`
	DocumentID  string `json:"documentId,omitempty"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}

// Article is a published piece of long-form content.
type Article struct {
	ID            int         `json:"id"`
	DocumentID    string      `json:"documentId"`
	Title         string      `json:"title"`
	Slug          string      `json:"slug"`
	Content       string      `json:"content"`
	Excerpt       string      `json:"excerpt,omitempty"`
	FeaturedImage *Media      `json:"featuredImage,omitempty"`
	Pillar        string      `json:"pillar,omitempty"`
	PublishDate   string      `json:"publishDate,omitempty"`
	IsPublished   bool        `json:"isPublished"`
	Tags          []string    `json:"tags,omitempty"`
	Author        *TeamMember `json:"author,omitempty"`
	Category      *Category   `json:"category,omitempty"`
}

// ExplainerVideo is a YouTube-hosted video record.
type ExplainerVideo struct {
	ID          int       `json:"id"`
	DocumentID  string    `json:"documentId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	YoutubeURL  string    `json:"youtubeUrl"`
	Pillar      string    `json:"pillar,omitempty"`
	PublishDate string    `json:"publishDate,omitempty"`
	IsFeatured  bool      `json:"isFeatured"`
	Order       int       `json:"order"`
	Duration    string    `json:"duration,omitempty"`
	Category    *Category `json:"category,omitempty"`
}

// ImpactStat is a headline figure shown on the homepage. Value is free-form
// text that may carry a numeric prefix ("500,000+").
type ImpactStat struct {
	ID          int    `json:"id"`
	DocumentID  string `json:"documentId"`
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	Order       int    `json:"order"`
	IsVisible   bool   `json:"isVisible"`
}

// CoreValue is one of the organization's stated values.
type CoreValue struct {
	ID          int    `json:"id"`
	DocumentID  string `json:"documentId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Order       int    `json:"order"`
}

// Achievement is a milestone with an associated metric.
type Achievement struct {
	ID          int    `json:"id"`
	DocumentID  string `json:"documentId"`
	Title       string `json:"title"`
	Metric      string `json:"metric"`
	MetricLabel string `json:"metricLabel,omitempty"`
	Description string `json:"description,omitempty"`
	Impact      string `json:"impact,omitempty"`
	IsFeatured  bool   `json:"isFeatured"`
	Order       int    `json:"order"`
}

// SiteSettings is the singleton settings record for the site.
type SiteSettings struct {
	ID           int    `json:"id"`
	DocumentID   string `json:"documentId,omitempty"`
	SiteName     string `json:"siteName"`
	Tagline      string `json:"tagline,omitempty"`
	Logo         *Media `json:"logo,omitempty"`
	Mission      string `json:"mission,omitempty"`
	Vision       string `json:"vision,omitempty"`
	About        string `json:"about,omitempty"`
	TiktokURL    string `json:"tiktokUrl,omitempty"`
	InstagramURL string `json:"instagramUrl,omitempty"`
	TwitterURL   string `json:"twitterUrl,omitempty"`
	FacebookURL  string `json:"facebookUrl,omitempty"`
	YoutubeURL   string `json:"youtubeUrl,omitempty"`
}

// Pagination is the pagination block of a list response envelope.
type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}
