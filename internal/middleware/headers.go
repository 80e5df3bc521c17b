package middleware

import (
	"net/http"
	"path"
	"strings"
)

var securityHeaders = [][2]string{
	{"X-DNS-Prefetch-Control", "on"},
	{"Strict-Transport-Security", "max-age=63072000; includeSubDomains; preload"},
	{"X-XSS-Protection", "1; mode=block"},
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "SAMEORIGIN"},
	{"Referrer-Policy", "strict-origin-when-cross-origin"},
	{"Permissions-Policy", "camera=(), microphone=(), geolocation=()"},
}

// SecurityHeaders sets the security response headers on every response.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		for _, kv := range securityHeaders {
			h.Set(kv[0], kv[1])
		}
		next.ServeHTTP(w, r)
	})
}

const immutableCache = "public, max-age=31536000, immutable"

// StaticCache marks images and the favicon as immutable.
func StaticCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isImmutableAsset(r.URL.Path) {
			w.Header().Set("Cache-Control", immutableCache)
		}
		next.ServeHTTP(w, r)
	})
}

func isImmutableAsset(p string) bool {
	switch strings.ToLower(path.Ext(p)) {
	case ".png", ".svg":
		return true
	}
	return path.Base(p) == "favicon.ico"
}
