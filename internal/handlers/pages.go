package handlers

import (
	"net/http"

	g "maragu.dev/gomponents"

	"github.com/openautomate/website/internal/components"
	"github.com/openautomate/website/internal/i18n"
	"github.com/openautomate/website/internal/seo"
)

func (h *Handler) LandingPage(w http.ResponseWriter, r *http.Request) {
	v := h.view(r, "/")

	page := components.Layout(v,
		components.PageConfig{
			Metadata: h.metadata(v, pageData(v, "")),
			Schemas:  h.schemas(v, seo.FAQPage(components.FAQs(v))),
		},
		components.SiteTopbar(v),
		components.Hero(v),
		components.Features(v),
		components.Pricing(v),
		components.FAQSection(v),
		components.Newsletter(v),
		components.CTA(v),
		components.PageFooter(v),
	)

	h.render(w, http.StatusOK, page)
}

func (h *Handler) AboutPage(w http.ResponseWriter, r *http.Request) {
	v := h.view(r, "/about")
	h.render(w, http.StatusOK, h.contentPage(v, "about", components.AboutContent(v)))
}

func (h *Handler) GuidePage(w http.ResponseWriter, r *http.Request) {
	v := h.view(r, "/guide")
	h.render(w, http.StatusOK, h.contentPage(v, "guide", components.GuideContent(v)))
}

// NotFound renders the localized 404 page.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	locale, path, prefixed := i18n.SplitLocale(r.URL.Path)
	if !prefixed {
		locale = i18n.Negotiate(r)
		i18n.AddVary(w.Header())
	}
	v := components.NewView(h.bundle.Translator(locale), h.site, path, prefixed, h.now())
	meta := h.metadata(v, seo.PageData{Title: v.Tr("errors.notFound"), NoIndex: true})

	page := components.Layout(v,
		components.PageConfig{Metadata: meta},
		components.SiteTopbar(v),
		components.NotFoundContent(v),
		components.PageFooter(v),
	)
	h.render(w, http.StatusNotFound, page)
}

func (h *Handler) contentPage(v components.View, section string, content g.Node) g.Node {
	return components.Layout(v,
		components.PageConfig{
			Metadata: h.metadata(v, pageData(v, section)),
			Schemas:  h.schemas(v),
		},
		components.SiteTopbar(v),
		components.Breadcrumbs(v),
		content,
		components.PageFooter(v),
	)
}

func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
