package seo

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openautomate/website/internal/config"
)

type parsedURLSet struct {
	URLs []struct {
		Loc        string `xml:"loc"`
		LastMod    string `xml:"lastmod"`
		ChangeFreq string `xml:"changefreq"`
		Priority   string `xml:"priority"`
	} `xml:"url"`
}

func TestSitemapURLs(t *testing.T) {
	now := time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC)

	urls := SitemapURLs(testSite(), now)

	require.Len(t, urls, 4)
	assert.Equal(t, "https://example.com/", urls[0].Loc)
	assert.Equal(t, "weekly", urls[0].ChangeFrequency)
	assert.Equal(t, 1.0, urls[0].Priority)
	for _, u := range urls[1:] {
		assert.Equal(t, "monthly", u.ChangeFrequency)
		assert.Equal(t, 0.8, u.Priority)
		assert.Equal(t, now, u.LastModified)
	}
}

func TestRenderSitemap(t *testing.T) {
	site := testSite()
	site.Pages = []config.Page{
		{Key: "home", Path: "/"},
		{Key: "pricing", Path: "/pricing"},
		{Key: "docs", Path: "/docs"},
	}
	now := time.Date(2026, 1, 2, 3, 4, 5, 6_000_000, time.FixedZone("ICT", 7*3600))

	var buf bytes.Buffer
	require.NoError(t, RenderSitemap(&buf, SitemapURLs(site, now)))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, out, `xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`)
	assert.Contains(t, out, `xmlns:image="http://www.google.com/schemas/sitemap-image/1.1"`)

	var parsed parsedURLSet
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &parsed))
	require.Len(t, parsed.URLs, len(site.Pages), "one url per configured path")

	for i, u := range parsed.URLs {
		assert.Equal(t, site.URL+site.Pages[i].Path, u.Loc)

		ts, err := time.Parse(time.RFC3339, u.LastMod)
		require.NoError(t, err, "lastmod must be ISO-8601")
		assert.True(t, ts.Equal(now.Truncate(time.Millisecond)))
		assert.True(t, strings.HasSuffix(u.LastMod, "Z"))

		if i == 0 {
			assert.Equal(t, "1.0", u.Priority)
		} else {
			assert.Equal(t, "0.8", u.Priority)
		}
	}
	assert.Equal(t, "2026-01-01T20:04:05.006Z", parsed.URLs[0].LastMod)
}

func TestRenderSitemap_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderSitemap(&buf, nil))

	var parsed parsedURLSet
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &parsed))
	assert.Empty(t, parsed.URLs)
}
