package components

import (
	"strings"
	"time"

	"github.com/openautomate/website/internal/config"
	"github.com/openautomate/website/internal/i18n"
)

// View carries what every component needs to render one request: the
// translator, the site description and where the visitor is.
type View struct {
	T    *i18n.Translator
	Site config.Site
	// Path is the page path without a locale prefix, e.g. "/about".
	Path string
	// Prefixed is true when the request URL carried the locale, in which
	// case internal links keep it.
	Prefixed bool
	Year     int
}

func NewView(t *i18n.Translator, site config.Site, path string, prefixed bool, now time.Time) View {
	if path == "" {
		path = "/"
	}
	return View{T: t, Site: site, Path: path, Prefixed: prefixed, Year: now.Year()}
}

func (v View) Locale() i18n.Locale { return v.T.Locale() }

// Tr translates key in the view's locale.
func (v View) Tr(key string) string { return v.T.T(key) }

// Href returns the link to an internal path, localized when the current
// page is. Fragments are kept.
func (v View) Href(path string) string {
	if !v.Prefixed {
		return path
	}
	path, fragment, hasFragment := strings.Cut(path, "#")
	href := i18n.LocalizedPath(v.Locale(), path)
	if hasFragment {
		href += "#" + fragment
	}
	return href
}

// IsCurrent reports whether path is the page being rendered.
func (v View) IsCurrent(path string) bool {
	return v.Path == path
}

// OrchestratorURL joins path to the Orchestrator origin.
func (v View) OrchestratorURL(path string) string {
	return v.Site.OrchestratorURL + path
}
