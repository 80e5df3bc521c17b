package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/openautomate/website/internal/config"
	"github.com/openautomate/website/internal/seo"
)

func newSitemapCommand() *cobra.Command {
	var siteURL string

	cmd := &cobra.Command{
		Use:   "sitemap",
		Short: "Print sitemap.xml",
		RunE: func(cmd *cobra.Command, args []string) error {
			site, err := loadSite(siteURL)
			if err != nil {
				return err
			}
			return seo.RenderSitemap(cmd.OutOrStdout(), seo.SitemapURLs(site, time.Now()))
		},
	}
	cmd.Flags().StringVar(&siteURL, "site-url", "", "public site URL (default is SITE_URL)")

	return cmd
}

func newRobotsCommand() *cobra.Command {
	var siteURL string

	cmd := &cobra.Command{
		Use:   "robots",
		Short: "Print robots.txt",
		RunE: func(cmd *cobra.Command, args []string) error {
			site, err := loadSite(siteURL)
			if err != nil {
				return err
			}
			body, err := seo.RenderRobots(site)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), body)
			return err
		},
	}
	cmd.Flags().StringVar(&siteURL, "site-url", "", "public site URL (default is SITE_URL)")

	return cmd
}

func loadSite(siteURL string) (config.Site, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Site{}, err
	}
	if siteURL != "" {
		cfg.SiteURL = siteURL
	}
	return config.NewSite(cfg), nil
}
