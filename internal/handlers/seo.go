package handlers

import (
	"bytes"
	"net/http"

	"go.uber.org/zap"

	"github.com/openautomate/website/internal/seo"
)

const documentCache = "public, max-age=86400"

// Sitemap serves the XML sitemap of every configured page.
func (h *Handler) Sitemap(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := seo.RenderSitemap(&buf, seo.SitemapURLs(h.site, h.now())); err != nil {
		h.log.Error("render sitemap", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml")
	w.Header().Set("Cache-Control", documentCache)
	_, _ = w.Write(buf.Bytes())
}

// Robots serves robots.txt.
func (h *Handler) Robots(w http.ResponseWriter, r *http.Request) {
	body, err := seo.RenderRobots(h.site)
	if err != nil {
		h.log.Error("render robots", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", documentCache)
	_, _ = w.Write([]byte(body))
}
