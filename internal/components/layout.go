package components

import (
	"strconv"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/openautomate/website/internal/seo"
)

type PageConfig struct {
	Metadata seo.Metadata
	// Schemas are embedded as JSON-LD in the page head.
	Schemas []any
}

func Layout(v View, config PageConfig, content ...g.Node) g.Node {
	meta := config.Metadata

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang(v.Locale().String()),
			g.Attr("data-theme", "light"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(meta.Title)),
				Meta(Name("description"), Content(meta.Description)),
				Meta(Name("keywords"), Content(meta.Keywords)),
				Meta(Name("author"), Content(meta.Author)),
				Meta(Name("robots"), Content(meta.Robots)),
				Link(Rel("canonical"), Href(meta.Canonical)),

				g.Group(g.Map(meta.Alternates, func(a seo.Alternate) g.Node {
					return Link(Rel("alternate"), g.Attr("hreflang", a.HrefLang), Href(a.Href))
				})),

				openGraphTags(meta.OpenGraph),
				twitterTags(meta.Twitter),

				g.Group(g.Map(meta.Other, func(m seo.MetaTag) g.Node {
					return Meta(Name(m.Name), Content(m.Content))
				})),

				Link(Rel("icon"), Href(v.Site.Favicon), Type("image/svg+xml")),
				Link(Rel("stylesheet"), Href("/static/styles.css")),

				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),

				g.Group(g.Map(config.Schemas, JSONLD)),
			),
			Body(
				Class("bg-base-100 text-base-content"),
				g.Group(content),

				Script(Type("module"), Src("/static/js/topbar-scroll.js")),
				Script(Type("module"), Src("/static/js/mobile-menu.js")),
			),
		),
	})
}

func property(name, content string) g.Node {
	return Meta(g.Attr("property", name), Content(content))
}

func openGraphTags(og seo.OpenGraph) g.Node {
	nodes := []g.Node{
		property("og:title", og.Title),
		property("og:description", og.Description),
		property("og:url", og.URL),
		property("og:site_name", og.SiteName),
		property("og:locale", og.Locale),
		property("og:type", string(og.Type)),
	}

	for _, img := range og.Images {
		nodes = append(nodes,
			property("og:image", img.URL),
			property("og:image:width", strconv.Itoa(img.Width)),
			property("og:image:height", strconv.Itoa(img.Height)),
			property("og:image:alt", img.Alt),
		)
	}

	if !og.PublishedTime.IsZero() {
		nodes = append(nodes, property("article:published_time", og.PublishedTime.UTC().Format(time.RFC3339)))
	}
	if !og.ModifiedTime.IsZero() {
		nodes = append(nodes, property("article:modified_time", og.ModifiedTime.UTC().Format(time.RFC3339)))
	}

	return g.Group(nodes)
}

func twitterTags(tw seo.TwitterCard) g.Node {
	nodes := []g.Node{
		Meta(Name("twitter:card"), Content(tw.Card)),
		Meta(Name("twitter:title"), Content(tw.Title)),
		Meta(Name("twitter:description"), Content(tw.Description)),
	}
	for _, img := range tw.Images {
		nodes = append(nodes, Meta(Name("twitter:image"), Content(img)))
	}
	if tw.Creator != "" {
		nodes = append(nodes, Meta(Name("twitter:creator"), Content(tw.Creator)))
	}
	if tw.Site != "" {
		nodes = append(nodes, Meta(Name("twitter:site"), Content(tw.Site)))
	}
	return g.Group(nodes)
}

// JSONLD renders schema as an application/ld+json script. Schemas that fail
// to encode are left out.
func JSONLD(schema any) g.Node {
	payload, err := seo.MarshalJSONLD(schema)
	if err != nil {
		return g.Group(nil)
	}
	return Script(Type("application/ld+json"), g.Raw(payload))
}
