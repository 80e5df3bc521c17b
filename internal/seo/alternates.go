package seo

import "github.com/openautomate/website/internal/config"

// Alternate is one <link rel="alternate" hreflang> entry.
type Alternate struct {
	HrefLang string
	Href     string
}

// Alternates lists the translated URLs of path, one per locale, followed by
// the unprefixed x-default URL. path must not carry a locale prefix.
func Alternates(site config.Site, path string, locales []string) []Alternate {
	if path == "" {
		path = "/"
	}

	alts := make([]Alternate, 0, len(locales)+1)
	for _, l := range locales {
		href := site.URL + "/" + l
		if path != "/" {
			href += path
		}
		alts = append(alts, Alternate{HrefLang: l, Href: href})
	}

	xDefault := site.URL
	if path != "/" {
		xDefault += path
	}
	return append(alts, Alternate{HrefLang: "x-default", Href: xDefault})
}
