// Package seo builds page metadata, JSON-LD structured data, the XML
// sitemap and robots.txt from the static site description.
package seo

import (
	"strings"
	"time"

	"github.com/openautomate/website/internal/config"
)

type PageType string

const (
	TypeWebsite PageType = "website"
	TypeArticle PageType = "article"
	TypeProduct PageType = "product"
	TypeProfile PageType = "profile"
)

const (
	ogImageWidth  = 1200
	ogImageHeight = 630
	brandColor    = "#ea580c"
)

// PageData holds the optional page-level overrides merged into the site
// defaults. The zero value describes the home page with no overrides.
type PageData struct {
	Title       string
	Description string
	Keywords    []string
	Image       string
	// URL is the page path, e.g. "/about".
	URL           string
	Type          PageType
	PublishedTime time.Time
	ModifiedTime  time.Time
	Author        string
	Locale        string
	NoIndex       bool
	NoFollow      bool
}

type Metadata struct {
	Title       string
	Description string
	Keywords    string
	Author      string
	Robots      string
	Canonical   string
	OpenGraph   OpenGraph
	Twitter     TwitterCard
	// Other holds additional name/content meta tags in render order.
	Other []MetaTag
	// Alternates are the hreflang links of the page's translations.
	Alternates []Alternate
}

type OpenGraph struct {
	Title         string
	Description   string
	URL           string
	SiteName      string
	Locale        string
	Type          PageType
	Images        []Image
	PublishedTime time.Time
	ModifiedTime  time.Time
}

type Image struct {
	URL    string
	Width  int
	Height int
	Alt    string
}

type TwitterCard struct {
	Card        string
	Title       string
	Description string
	Images      []string
	Creator     string
	Site        string
}

type MetaTag struct {
	Name    string
	Content string
}

// BuildMetadata merges page overrides with the site defaults.
func BuildMetadata(site config.Site, page PageData) Metadata {
	title := site.Title
	if page.Title != "" {
		title = page.Title + " | " + site.Name
	}

	description := page.Description
	if description == "" {
		description = site.Description
	}

	canonical := site.URL
	if page.URL != "" {
		canonical = site.URL + page.URL
	}

	imageURL := site.URL + site.Logo
	if page.Image != "" {
		imageURL = absoluteURL(site, page.Image)
	}

	imageAlt := page.Title
	if imageAlt == "" {
		imageAlt = site.Name
	}

	author := page.Author
	if author == "" {
		author = site.Author
	}

	pageType := page.Type
	if pageType == "" {
		pageType = TypeWebsite
	}

	return Metadata{
		Title:       title,
		Description: description,
		Keywords:    strings.Join(MergeKeywords(site.Keywords, page.Keywords), ", "),
		Author:      author,
		Robots:      robotsDirective(site, page),
		Canonical:   canonical,
		OpenGraph: OpenGraph{
			Title:       title,
			Description: description,
			URL:         canonical,
			SiteName:    site.Name,
			Locale:      OpenGraphLocale(page.Locale),
			Type:        pageType,
			Images: []Image{{
				URL:    imageURL,
				Width:  ogImageWidth,
				Height: ogImageHeight,
				Alt:    imageAlt,
			}},
			PublishedTime: page.PublishedTime,
			ModifiedTime:  page.ModifiedTime,
		},
		Twitter: TwitterCard{
			Card:        "summary_large_image",
			Title:       title,
			Description: description,
			Images:      []string{imageURL},
			Creator:     site.Twitter.Creator,
			Site:        site.Twitter.Site,
		},
		Other: []MetaTag{
			{Name: "theme-color", Content: brandColor},
			{Name: "msapplication-TileColor", Content: brandColor},
			{Name: "apple-mobile-web-app-capable", Content: "yes"},
			{Name: "apple-mobile-web-app-status-bar-style", Content: "default"},
			{Name: "format-detection", Content: "telephone=no"},
		},
	}
}

// MergeKeywords returns defaults followed by extra, dropping duplicates
// while keeping first occurrence order.
func MergeKeywords(defaults, extra []string) []string {
	seen := make(map[string]struct{}, len(defaults)+len(extra))
	merged := make([]string, 0, len(defaults)+len(extra))
	for _, list := range [][]string{defaults, extra} {
		for _, kw := range list {
			kw = strings.TrimSpace(kw)
			if kw == "" {
				continue
			}
			if _, ok := seen[kw]; ok {
				continue
			}
			seen[kw] = struct{}{}
			merged = append(merged, kw)
		}
	}
	return merged
}

// OpenGraphLocale maps a site locale to its og:locale value.
func OpenGraphLocale(locale string) string {
	switch locale {
	case "vi":
		return "vi_VN"
	default:
		return "en_US"
	}
}

func robotsDirective(site config.Site, page PageData) string {
	if !page.NoIndex && !page.NoFollow {
		return site.Robots
	}

	index, follow := "index", "follow"
	if page.NoIndex {
		index = "noindex"
	}
	if page.NoFollow {
		follow = "nofollow"
	}
	return index + ", " + follow
}

func absoluteURL(site config.Site, ref string) string {
	if strings.HasPrefix(ref, "http") {
		return ref
	}
	return site.URL + ref
}

// CanonicalURL returns the absolute URL for path on the site.
func CanonicalURL(site config.Site, path string) string {
	return site.URL + path
}

// TruncateDescription shortens s to at most maxLength characters, cutting
// at the last space and appending "...". A maxLength <= 0 means 160.
func TruncateDescription(s string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = 160
	}
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}

	truncated := string(runes[:maxLength])
	if i := strings.LastIndex(truncated, " "); i > 0 {
		return truncated[:i] + "..."
	}
	return truncated + "..."
}
