package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/openautomate/website/internal/config"
	"github.com/openautomate/website/internal/contact"
	"github.com/openautomate/website/internal/handlers"
	"github.com/openautomate/website/internal/i18n"
)

type nopSender struct{}

func (nopSender) Send(context.Context, contact.Submission) error { return nil }

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return newTestRouterWithConfig(t, &config.Config{})
}

func newTestRouterWithConfig(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()
	bundle, err := i18n.Default()
	require.NoError(t, err)

	site := config.DefaultSite("https://example.com")
	site.OrchestratorURL = "https://app.example.com"

	svc := contact.NewService(nopSender{}, contact.NewClientLimiter(60, 5), zap.NewNop())
	h := handlers.New(site, bundle, svc, zap.NewNop())

	return NewRouter(RouterParams{Handler: h, Config: cfg, Log: zap.NewNop()})
}

func get(t *testing.T, router http.Handler, target string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func htmlLang(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	return doc.Find("html").AttrOr("lang", "")
}

func TestRouter_Pages(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/", "/about", "/contact", "/guide", "/en", "/vi", "/vi/about", "/en/contact", "/vi/guide"} {
		t.Run(path, func(t *testing.T) {
			rec := get(t, router, path)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/html"))
		})
	}
}

func TestRouter_LocalePrefix(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/vi/about")
	assert.Equal(t, "vi", htmlLang(t, rec))
	assert.Contains(t, rec.Header().Get("Set-Cookie"), "NEXT_LOCALE=vi")

	assert.Equal(t, "en", htmlLang(t, get(t, router, "/en/about", "Accept-Language", "vi")))
}

func TestRouter_NegotiatesUnprefixedPages(t *testing.T) {
	router := newTestRouter(t)

	assert.Equal(t, "vi", htmlLang(t, get(t, router, "/about", "Accept-Language", "vi-VN,vi;q=0.9")))
	assert.Equal(t, "en", htmlLang(t, get(t, router, "/about", "Accept-Language", "de-DE")))
	assert.Equal(t, "vi", htmlLang(t, get(t, router, "/", "Cookie", "NEXT_LOCALE=vi")))

	assert.Equal(t, []string{"Accept-Language", "Cookie"}, get(t, router, "/about").Header().Values("Vary"))
	assert.Empty(t, get(t, router, "/vi/about").Header().Values("Vary"))
}

func TestRouter_UnknownLocaleIsNotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/fr/about")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = get(t, router, "/vi/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "vi", htmlLang(t, rec))
}

func TestRouter_SEODocuments(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/sitemap.xml", "/vi/sitemap.xml"} {
		rec := get(t, router, path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "application/xml", rec.Header().Get("Content-Type"), path)
		assert.Contains(t, rec.Body.String(), "<loc>https://example.com/about</loc>", path)
	}

	rec := get(t, router, "/robots.txt")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sitemap: https://example.com/sitemap.xml")
}

func TestRouter_AuthRedirects(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range handlers.AuthPaths {
		rec := get(t, router, path+"?returnUrl=%2Fdashboard")
		assert.Equal(t, http.StatusTemporaryRedirect, rec.Code, path)
		assert.Equal(t, "https://app.example.com"+path+"?returnUrl=%2Fdashboard", rec.Header().Get("Location"), path)
	}
}

func TestRouter_SecurityHeadersOnEveryRoute(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/", "/health", "/robots.txt", "/login", "/static/styles.css", "/nope/nope"} {
		rec := get(t, router, path)
		assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"), path)
		assert.Equal(t, "SAMEORIGIN", rec.Header().Get("X-Frame-Options"), path)
	}
}

func TestRouter_Static(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/static/images/logo-oa.svg")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "public, max-age=31536000, immutable", rec.Header().Get("Cache-Control"))

	rec = get(t, router, "/static/styles.css")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Cache-Control"))
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	get(t, router, "/about")
	rec = get(t, router, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `website_http_requests_total{method="GET",route="/about",status="200"}`)
}

func TestRouter_ContactPost(t *testing.T) {
	router := newTestRouter(t)

	body := "name=Ada&email=ada%40example.com&subject=Hi&message=Hello"
	req := httptest.NewRequest(http.MethodPost, "/vi/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, "Tin nhắn của bạn đã được gửi thành công!", strings.TrimSpace(doc.Find("#contact-status").Text()))
}

func postContact(router http.Handler, realIP string) *httptest.ResponseRecorder {
	body := "name=Ada&email=ada%40example.com&subject=Hi&message=Hello"
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Real-IP", realIP)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_ContactRateLimitIgnoresForwardedHeaders(t *testing.T) {
	router := newTestRouter(t)

	var codes []int
	for i := 0; i < 6; i++ {
		codes = append(codes, postContact(router, fmt.Sprintf("10.0.0.%d", i)).Code)
	}

	assert.Equal(t, []int{200, 200, 200, 200, 200, http.StatusTooManyRequests}, codes)
}

func TestRouter_ContactRateLimitTrustsProxyWhenEnabled(t *testing.T) {
	router := newTestRouterWithConfig(t, &config.Config{TrustProxyHeaders: true})

	for i := 0; i < 5; i++ {
		require.Equal(t, http.StatusOK, postContact(router, "10.0.0.1").Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, postContact(router, "10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, postContact(router, "10.0.0.2").Code)
}
