package seo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openautomate/website/internal/config"
)

func TestRenderRobots(t *testing.T) {
	for _, siteURL := range []string{"https://example.com", "https://www.openautomate.io", "http://localhost:4002"} {
		t.Run(siteURL, func(t *testing.T) {
			out, err := RenderRobots(config.DefaultSite(siteURL))
			require.NoError(t, err)

			assert.Contains(t, strings.Split(out, "\n"), "Sitemap: "+siteURL+"/sitemap.xml")
		})
	}
}

func TestRenderRobots_Policy(t *testing.T) {
	site := testSite()
	out, err := RenderRobots(site)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "# Robots.txt for OpenAutomate\n"))
	for _, line := range []string{
		"User-agent: *",
		"Disallow: /admin/",
		"Disallow: /api/",
		"Disallow: /private/",
		"Allow: " + site.Logo,
		"Allow: " + site.Favicon,
		"Crawl-delay: 1",
		"User-agent: Googlebot",
		"User-agent: AhrefsBot",
		"User-agent: DotBot",
	} {
		assert.Contains(t, out, line)
	}
}

func TestRenderRobots_PlainTextName(t *testing.T) {
	site := testSite()
	site.Name = "Ops & Automation"

	out, err := RenderRobots(site)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "# Robots.txt for Ops & Automation\n"))
}
