package seo

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type Breadcrumb struct {
	Name    string
	URL     string
	Current bool
}

var segmentNames = map[string]string{
	"about":   "About Us",
	"guide":   "Guides",
	"contact": "Contact Us",
}

// BreadcrumbsFromPath returns Home followed by one crumb per path segment.
// The last crumb is marked current.
func BreadcrumbsFromPath(path string) []Breadcrumb {
	crumbs := []Breadcrumb{{Name: "Home", URL: "/"}}

	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}

	current := ""
	for i, segment := range segments {
		current += "/" + segment
		crumbs = append(crumbs, Breadcrumb{
			Name:    SegmentName(segment),
			URL:     current,
			Current: i == len(segments)-1,
		})
	}

	return crumbs
}

// SegmentName turns a path segment into a readable label.
func SegmentName(segment string) string {
	if name, ok := segmentNames[segment]; ok {
		return name
	}

	words := strings.Split(segment, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
