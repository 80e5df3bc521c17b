package seo

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/openautomate/website/internal/config"
)

const lastModLayout = "2006-01-02T15:04:05.000Z07:00"

// SitemapURL is one sitemap entry.
type SitemapURL struct {
	Loc             string
	LastModified    time.Time
	ChangeFrequency string
	Priority        float64
}

// SitemapURLs stamps every configured page with now. The home page is
// weekly with priority 1.0, every other page monthly with 0.8.
func SitemapURLs(site config.Site, now time.Time) []SitemapURL {
	urls := make([]SitemapURL, 0, len(site.Pages))
	for _, p := range site.Pages {
		entry := SitemapURL{
			Loc:             site.URL + p.Path,
			LastModified:    now,
			ChangeFrequency: "monthly",
			Priority:        0.8,
		}
		if p.IsHome() {
			entry.ChangeFrequency = "weekly"
			entry.Priority = 1.0
		}
		urls = append(urls, entry)
	}
	return urls
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	News    string       `xml:"xmlns:news,attr"`
	XHTML   string       `xml:"xmlns:xhtml,attr"`
	Mobile  string       `xml:"xmlns:mobile,attr"`
	Image   string       `xml:"xmlns:image,attr"`
	Video   string       `xml:"xmlns:video,attr"`
	URLs    []urlElement `xml:"url"`
}

type urlElement struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// FormatLastMod renders t as an ISO-8601 UTC timestamp with milliseconds.
func FormatLastMod(t time.Time) string {
	return t.UTC().Format(lastModLayout)
}

// RenderSitemap writes urls as a sitemaps.org 0.9 urlset.
func RenderSitemap(w io.Writer, urls []SitemapURL) error {
	set := urlSet{
		Xmlns:  "http://www.sitemaps.org/schemas/sitemap/0.9",
		News:   "http://www.google.com/schemas/sitemap-news/0.9",
		XHTML:  "http://www.w3.org/1999/xhtml",
		Mobile: "http://www.google.com/schemas/sitemap-mobile/1.0",
		Image:  "http://www.google.com/schemas/sitemap-image/1.1",
		Video:  "http://www.google.com/schemas/sitemap-video/1.1",
		URLs:   make([]urlElement, 0, len(urls)),
	}
	for _, u := range urls {
		set.URLs = append(set.URLs, urlElement{
			Loc:        u.Loc,
			LastMod:    FormatLastMod(u.LastModified),
			ChangeFreq: u.ChangeFrequency,
			Priority:   strconv.FormatFloat(u.Priority, 'f', 1, 64),
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("write sitemap header: %w", err)
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("encode sitemap: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("write sitemap: %w", err)
	}
	return nil
}
