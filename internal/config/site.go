package config

// Site is the static, read-only description of the website used for SEO
// metadata, structured data, the sitemap and robots.txt.
type Site struct {
	Name        string
	Title       string
	Description string
	URL         string
	Logo        string
	Favicon     string

	Keywords []string
	Author   string
	Robots   string
	Language string

	Organization Organization
	Twitter      Twitter

	// Pages lists the indexable pages in sitemap order. The first entry is
	// the home page.
	Pages []Page

	OrchestratorURL string
}

// Page is one indexable path.
type Page struct {
	Key  string
	Path string
}

// IsHome reports whether the page is the site's home page.
func (p Page) IsHome() bool {
	return p.Key == "home"
}

type Organization struct {
	Name         string
	URL          string
	Logo         string
	Description  string
	FoundingDate string
	Industry     string
	ContactPoint ContactPoint
	SameAs       []string
}

type ContactPoint struct {
	Telephone   string
	ContactType string
	Email       string
}

type Twitter struct {
	Handle  string
	Site    string
	Creator string
}

// NewSite builds the site description for the configured public URL.
func NewSite(cfg *Config) Site {
	site := DefaultSite(cfg.SiteURL)
	site.OrchestratorURL = cfg.OrchestratorURL
	return site
}

// DefaultSite returns the OpenAutomate site description rooted at siteURL.
func DefaultSite(siteURL string) Site {
	if siteURL == "" {
		siteURL = defaultSiteURL
	}
	siteURL = trimURL(siteURL)

	return Site{
		Name:        "OpenAutomate",
		Title:       "OpenAutomate - Open Source Business Process Automation",
		Description: "OpenAutomate provides a Python-based, open-source alternative to commercial automation platforms. Take control of your automation processes without licensing costs.",
		URL:         siteURL,
		Logo:        "/static/images/logo-oa.svg",
		Favicon:     "/static/images/favicon.svg",
		Keywords: []string{
			"business process automation",
			"open source automation",
			"Python automation",
			"workflow automation",
			"RPA alternative",
			"automation platform",
			"process automation",
			"business automation",
			"open source RPA",
			"automation software",
		},
		Author:   "OpenAutomate Team",
		Robots:   "index, follow",
		Language: "en",
		Organization: Organization{
			Name:         "OpenAutomate",
			URL:          siteURL,
			Logo:         "/static/images/logo-oa.svg",
			Description:  "Open source business process automation platform",
			FoundingDate: "2024",
			Industry:     "Software Development",
			ContactPoint: ContactPoint{
				ContactType: "customer service",
				Email:       "contact@openautomate.io",
			},
			SameAs: []string{},
		},
		Twitter: Twitter{
			Handle:  "@openautomate",
			Site:    "@openautomate",
			Creator: "@openautomate",
		},
		Pages: []Page{
			{Key: "home", Path: "/"},
			{Key: "about", Path: "/about"},
			{Key: "contact", Path: "/contact"},
			{Key: "guide", Path: "/guide"},
		},
		OrchestratorURL: defaultOrchestratorURL,
	}
}
