package seed

// Initial content corpus for bootstrapping an empty CMS. Images are uploaded
// separately through the CMS media library, and the sample video URLs are
// placeholders to be replaced with real links after seeding.

// TeamMemberData is the write payload for a team member.
type TeamMemberData struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Bio      string `json:"bio"`
	ShortBio string `json:"shortBio"`
	Order    int    `json:"order"`
	IsActive bool   `json:"isActive"`
}

// CoreValueData is the write payload for a core value.
type CoreValueData struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Order       int    `json:"order"`
}

// ImpactStatData is the write payload for an impact stat.
type ImpactStatData struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Order       int    `json:"order"`
	IsVisible   bool   `json:"isVisible"`
}

// CategoryData is the write payload for a category.
type CategoryData struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// AchievementData is the write payload for an achievement.
type AchievementData struct {
	Title       string `json:"title"`
	Metric      string `json:"metric"`
	MetricLabel string `json:"metricLabel"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
	IsFeatured  bool   `json:"isFeatured"`
	Order       int    `json:"order"`
}

// ExplainerVideoData is the write payload for an explainer video.
type ExplainerVideoData struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	YoutubeURL  string `json:"youtubeUrl"`
	Pillar      string `json:"pillar"`
	IsFeatured  bool   `json:"isFeatured"`
	Order       int    `json:"order"`
	Duration    string `json:"duration"`
}

// ArticleData is the write payload for an article. Slug is filled in from the
// title at seed time.
type ArticleData struct {
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Content     string   `json:"content"`
	Excerpt     string   `json:"excerpt"`
	Pillar      string   `json:"pillar"`
	PublishDate string   `json:"publishDate"`
	IsPublished bool     `json:"isPublished"`
	Tags        []string `json:"tags,omitempty"`
}

// SiteSettingsData is the write payload for the singleton site settings.
type SiteSettingsData struct {
	SiteName     string `json:"siteName"`
	Tagline      string `json:"tagline"`
	Mission      string `json:"mission"`
	Vision       string `json:"vision"`
	About        string `json:"about"`
	TiktokURL    string `json:"tiktokUrl"`
	InstagramURL string `json:"instagramUrl"`
	TwitterURL   string `json:"twitterUrl"`
	FacebookURL  string `json:"facebookUrl"`
	YoutubeURL   string `json:"youtubeUrl"`
}

var teamMembers = []TeamMemberData{
	{
		Name:     "Shallet Kibet",
		Role:     "Executive Director",
		Bio:      "A civic leader and governance strategist with a strong focus on accountability, citizen participation, and democratic engagement. She works through The Big Talk to make governance accessible, practical, and relevant to everyday citizens.",
		ShortBio: "Civic leader focused on accountability and democratic engagement.",
		Order:    1,
		IsActive: true,
	},
	{
		Name:     "Oscar Kinaiti",
		Role:     "Program Manager",
		Bio:      "A transformational leader, missionary, researcher, and political & policy analyst dedicated to raising a generation that leads with integrity, purity, and wisdom. He designs leadership programs and creates platforms for youth to discuss purpose, influence, and societal transformation.",
		ShortBio: "Transformational leader designing youth engagement programs.",
		Order:    2,
		IsActive: true,
	},
	{
		Name:     "John Elvins",
		Role:     "Social Justice & Governance Specialist",
		Bio:      "An active Kenyan citizen currently serving in a faith-based organization as a missionary. Passionate about governance, social justice, and psychosocial related initiatives. Part of Amnesty International's training on human rights defending.",
		ShortBio: "Passionate about governance and social justice initiatives.",
		Order:    3,
		IsActive: true,
	},
	{
		Name:     "Faith Muthoni",
		Role:     "Communications Analyst",
		Bio:      "A communication analyst driven by a deep belief in the power of informed citizenship. With a strong commitment to civic education, she champions public participation as the cornerstone of a thriving democracy. Her work bridges strategy and storytelling.",
		ShortBio: "Bridges strategy and storytelling for civic impact.",
		Order:    4,
		IsActive: true,
	},
	{
		Name:     "Jed Kamuyu",
		Role:     "Head of Production",
		Bio:      "A passionate videographer and content creator dedicated to capturing the heartbeat of civic life in Kenya. With a sharp eye for storytelling and a deep belief in the power of informed communities, he uses the lens to spotlight civic education and amplify citizen voices.",
		ShortBio: "Videographer turning civic moments into compelling narratives.",
		Order:    5,
		IsActive: true,
	},
}

var coreValues = []CoreValueData{
	{Name: "Truth", Description: "Facts before feelings; knowledge before narratives.", Icon: "shield", Order: 1},
	{Name: "Clarity", Description: "Governance made simple, so everyone can understand it.", Icon: "lightbulb", Order: 2},
	{Name: "Accountability", Description: "We speak power to truth guided by evidence, not emotion.", Icon: "scale", Order: 3},
	{Name: "Unity", Description: "We champion dialogue that builds, not divides.", Icon: "users", Order: 4},
	{Name: "Solution-Driven", Description: "We turn conversations into action, and awareness into impact.", Icon: "target", Order: 5},
}

var impactStats = []ImpactStatData{
	{
		Value:       "500,000+",
		Label:       "Citizen signatures mobilized",
		Description: "Over half a million Kenyans joined together to demand accountability",
		Order:       1,
		IsVisible:   true,
	},
	{
		Value:       "UNESCO",
		Label:       "Youth Hackathon 2025 Recognized",
		Description: "International recognition for civic innovation",
		Order:       2,
		IsVisible:   true,
	},
	{
		Value:       "50+",
		Label:       "Explainer videos produced",
		Description: "Breaking down complex policies into simple, accessible content",
		Order:       3,
		IsVisible:   true,
	},
	{
		Value:       "Heshimika",
		Label:       "Awards for civic leadership",
		Description: "Recognized for excellence in civic education and engagement",
		Order:       4,
		IsVisible:   true,
	},
}

var categories = []CategoryData{
	{Name: "Civic Education", Slug: "civic-education", Description: "Building an informed, empowered citizenry", Color: "#10B981"},
	{Name: "Explainer", Slug: "explainer", Description: "Deep-dive content breaking down bills and policies", Color: "#3B82F6"},
	{Name: "Trends", Slug: "trends", Description: "Current issues affecting Kenyans right now", Color: "#8B5CF6"},
	{Name: "Governance", Slug: "governance", Description: "Understanding how government works", Color: "#F59E0B"},
	{Name: "Youth", Slug: "youth", Description: "Content focused on young Kenyans", Color: "#EC4899"},
}

var achievements = []AchievementData{
	{
		Title:       "500K Signatures Campaign",
		Metric:      "500,000+",
		MetricLabel: "signatures",
		Description: "Successfully mobilized over half a million Kenyan citizens to sign a petition demanding government accountability.",
		Impact:      "The petition led to increased public discourse on transparency in government.",
		IsFeatured:  true,
		Order:       1,
	},
	{
		Title:       "UNESCO Recognition",
		Metric:      "2025",
		MetricLabel: "Youth Hackathon",
		Description: "Recognized by UNESCO for innovative approaches to civic education through the Youth Hackathon initiative.",
		Impact:      "International validation of our approach to engaging young people in governance.",
		IsFeatured:  true,
		Order:       2,
	},
	{
		Title:       "Explainer Video Series",
		Metric:      "50+",
		MetricLabel: "videos",
		Description: "Produced over 50 explainer videos breaking down complex policies, bills, and civic concepts for everyday Kenyans.",
		Impact:      "Millions of views across social media platforms, making governance accessible.",
		IsFeatured:  true,
		Order:       3,
	},
	{
		Title:       "Heshimika Awards",
		Metric:      "2024",
		MetricLabel: "Award Winner",
		Description: "Received the Heshimika Award for outstanding contribution to civic leadership and education in Kenya.",
		Impact:      "Recognition of our commitment to truth, clarity, and citizen empowerment.",
		IsFeatured:  true,
		Order:       4,
	},
}

var explainerVideos = []ExplainerVideoData{
	{
		Title:       "Understanding the Finance Bill 2024",
		Description: "A breakdown of what the Finance Bill means for everyday Kenyans and how it affects your pocket.",
		YoutubeURL:  "https://www.youtube.com/watch?v=example1",
		Pillar:      "explainer",
		IsFeatured:  true,
		Order:       1,
		Duration:    "8:45",
	},
	{
		Title:       "How Parliament Works",
		Description: "A simple guide to understanding the Kenyan Parliament, its structure, and how laws are made.",
		YoutubeURL:  "https://www.youtube.com/watch?v=example2",
		Pillar:      "civic-education",
		IsFeatured:  true,
		Order:       2,
		Duration:    "12:30",
	},
	{
		Title:       "Your Rights as a Kenyan Citizen",
		Description: "Know your constitutional rights and how to exercise them effectively.",
		YoutubeURL:  "https://www.youtube.com/watch?v=example3",
		Pillar:      "civic-education",
		IsFeatured:  true,
		Order:       3,
		Duration:    "10:15",
	},
	{
		Title:       "Public Participation: A Citizen's Guide",
		Description: "How to effectively participate in governance and make your voice heard.",
		YoutubeURL:  "https://www.youtube.com/watch?v=example4",
		Pillar:      "civic-education",
		IsFeatured:  false,
		Order:       4,
		Duration:    "7:20",
	},
}

var articles = []ArticleData{
	{
		Title: "Understanding the Finance Bill 2024",
		Content: "## What the bill proposes\n" +
			"The Finance Bill 2024 introduces changes to how everyday goods and services are taxed.\n\n" +
			"## What it means for you\n" +
			"- Higher levies on fuel and mobile money transfers\n" +
			"- New deductions on formal employment income\n\n" +
			"**Public participation** is your constitutional right. Submit your views before the committee deadline.",
		Excerpt:     "A plain-language breakdown of the Finance Bill and how it affects your pocket.",
		Pillar:      "explainer",
		PublishDate: "2024-06-18",
		IsPublished: true,
		Tags:        []string{"finance-bill", "taxation"},
	},
	{
		Title: "Public Participation: How to Make Your Voice Count",
		Content: "Article 118 of the Constitution requires Parliament to facilitate public participation.\n\n" +
			"### How to participate\n" +
			"1. Track bills open for comment on the Parliament website\n" +
			"2. Submit a written memorandum to the clerk\n" +
			"3. Attend county-level public hearings\n\n" +
			"Your submission becomes part of the official record, and committees must respond to it.",
		Excerpt:     "A citizen's guide to submitting views on bills before Parliament.",
		Pillar:      "civic-education",
		PublishDate: "2024-05-02",
		IsPublished: true,
		Tags:        []string{"public-participation", "constitution"},
	},
}

var siteSettings = SiteSettingsData{
	SiteName:     "The Big Talk",
	Tagline:      "Civic Education. Citizen Power.",
	Mission:      "To build an informed, engaged, and empowered citizenry through accessible civic education and advocacy.",
	Vision:       "A Kenya where every citizen understands their rights, participates in governance, and holds leaders accountable.",
	About:        "The Big Talk is a civic education platform dedicated to making governance accessible, practical, and relevant to everyday citizens. We believe that an informed citizenry is the foundation of a functioning democracy.",
	TiktokURL:    "https://tiktok.com/@thebigtalk",
	InstagramURL: "https://instagram.com/thebigtalk",
	TwitterURL:   "https://twitter.com/thebigtalk",
	FacebookURL:  "https://facebook.com/thebigtalk",
	YoutubeURL:   "https://youtube.com/@thebigtalk",
}

// DefaultSiteSettings returns the compiled-in settings used both by the
// seeder and as the web layer's fallback when the CMS record is absent.
func DefaultSiteSettings() SiteSettingsData {
	return siteSettings
}
