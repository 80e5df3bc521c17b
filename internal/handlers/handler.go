package handlers

import (
	"net/http"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"github.com/openautomate/website/internal/components"
	"github.com/openautomate/website/internal/config"
	"github.com/openautomate/website/internal/contact"
	"github.com/openautomate/website/internal/i18n"
	"github.com/openautomate/website/internal/logger"
	"github.com/openautomate/website/internal/seo"
)

var Module = fx.Module("handlers",
	fx.Provide(New),
)

// Handler serves every page and document of the website.
type Handler struct {
	site    config.Site
	bundle  *i18n.Bundle
	contact *contact.Service
	log     *zap.Logger
	now     func() time.Time
}

func New(site config.Site, bundle *i18n.Bundle, svc *contact.Service, log *zap.Logger) *Handler {
	return &Handler{
		site:    site,
		bundle:  bundle,
		contact: svc,
		log:     log.With(logger.Scope("handlers")),
		now:     time.Now,
	}
}

func (h *Handler) view(r *http.Request, path string) components.View {
	ctx := r.Context()
	return components.NewView(
		h.bundle.Translator(i18n.FromContext(ctx)),
		h.site,
		path,
		i18n.IsPrefixed(ctx),
		h.now(),
	)
}

// pageData reads the page overrides under {section}.meta in the catalog:
// title, description and keywords. An empty section keeps the site
// defaults.
func pageData(v components.View, section string) seo.PageData {
	if section == "" {
		return seo.PageData{}
	}
	return seo.PageData{
		Title:       v.Tr(section + ".meta.title"),
		Description: seo.TruncateDescription(v.Tr(section+".meta.description"), 0),
		Keywords:    v.T.List(section + ".meta.keywords"),
	}
}

// metadata builds the head metadata of page v from its overrides.
func (h *Handler) metadata(v components.View, page seo.PageData) seo.Metadata {
	page.Locale = v.Locale().String()
	if v.Prefixed || v.Path != "/" {
		page.URL = v.Href(v.Path)
	}

	meta := seo.BuildMetadata(h.site, page)
	meta.Alternates = seo.Alternates(h.site, v.Path, localeCodes())
	return meta
}

// schemas returns the structured data every page carries plus the
// breadcrumb trail of non-home pages.
func (h *Handler) schemas(v components.View, extra ...any) []any {
	schemas := []any{
		seo.Organization(h.site),
		seo.Website(h.site),
		seo.SoftwareApplication(h.site),
	}
	if v.Path != "/" {
		crumbs := components.PageCrumbs(v)
		for i := range crumbs {
			crumbs[i].URL = v.Href(crumbs[i].URL)
		}
		schemas = append(schemas, seo.BreadcrumbList(h.site, crumbs))
	}
	return append(schemas, extra...)
}

func (h *Handler) render(w http.ResponseWriter, status int, node g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := node.Render(w); err != nil {
		h.log.Error("render page", zap.Error(err))
	}
}

func localeCodes() []string {
	codes := make([]string, 0, len(i18n.Locales))
	for _, l := range i18n.Locales {
		codes = append(codes, l.String())
	}
	return codes
}
