package seo

import (
	_ "embed"
	"fmt"

	"github.com/aymerick/raymond"

	"github.com/openautomate/website/internal/config"
)

//go:embed templates/robots.txt.hbs
var robotsSource string

var robotsTemplate = raymond.MustParse(robotsSource)

// RenderRobots renders the robots.txt policy for site.
func RenderRobots(site config.Site) (string, error) {
	out, err := robotsTemplate.Exec(map[string]any{
		"name":    site.Name,
		"siteURL": site.URL,
		"logo":    site.Logo,
		"favicon": site.Favicon,
	})
	if err != nil {
		return "", fmt.Errorf("render robots.txt: %w", err)
	}
	return out, nil
}
