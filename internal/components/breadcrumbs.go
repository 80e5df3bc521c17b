package components

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/openautomate/website/internal/seo"
)

// PageCrumbs returns the breadcrumb trail of the current page with names
// translated where the catalog knows the segment.
func PageCrumbs(v View) []seo.Breadcrumb {
	crumbs := seo.BreadcrumbsFromPath(v.Path)
	for i := range crumbs {
		key := "common.nav.home"
		if i > 0 {
			key = "common.nav." + crumbs[i].URL[strings.LastIndex(crumbs[i].URL, "/")+1:]
		}
		if name := v.Tr(key); name != key {
			crumbs[i].Name = name
		}
	}
	return crumbs
}

// Breadcrumbs renders the trail. The home page has none.
func Breadcrumbs(v View) g.Node {
	if v.Path == "/" {
		return g.Group(nil)
	}

	return Div(
		Class("breadcrumbs text-sm container pt-24"),
		g.Attr("aria-label", "breadcrumb"),
		Ul(
			g.Group(g.Map(PageCrumbs(v), func(c seo.Breadcrumb) g.Node {
				if c.Current {
					return Li(Span(g.Attr("aria-current", "page"), g.Text(c.Name)))
				}
				return Li(A(Href(v.Href(c.URL)), g.Text(c.Name)))
			})),
		),
	)
}
