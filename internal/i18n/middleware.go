package i18n

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// URLParam is the chi route parameter carrying the locale segment.
const URLParam = "locale"

const cookieMaxAge = 365 * 24 * 60 * 60

// Prefixed resolves the locale from the {locale} route parameter and
// remembers it in the NEXT_LOCALE cookie. Unknown locales are answered
// with 404.
func Prefixed(next http.Handler) http.Handler {
	return PrefixedWith(http.NotFoundHandler())(next)
}

// PrefixedWith is Prefixed with a custom handler for unknown locales.
func PrefixedWith(notFound http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return prefixed(next, notFound)
	}
}

func prefixed(next, notFound http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l, ok := Parse(chi.URLParam(r, URLParam))
		if !ok || chi.URLParam(r, URLParam) != string(l) {
			notFound.ServeHTTP(w, r)
			return
		}

		if c, err := r.Cookie(CookieName); err != nil || c.Value != string(l) {
			http.SetCookie(w, &http.Cookie{
				Name:     CookieName,
				Value:    string(l),
				Path:     "/",
				MaxAge:   cookieMaxAge,
				SameSite: http.SameSiteLaxMode,
			})
		}

		next.ServeHTTP(w, r.WithContext(WithLocale(r.Context(), l, true)))
	})
}

// Negotiated resolves the locale of unprefixed requests from the cookie and
// Accept-Language header.
func Negotiated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		AddVary(w.Header())
		next.ServeHTTP(w, r.WithContext(WithLocale(r.Context(), Negotiate(r), false)))
	})
}

// AddVary marks a response as depending on the inputs of Negotiate, so
// shared caches keep one copy per language.
func AddVary(h http.Header) {
	h.Add("Vary", "Accept-Language")
	h.Add("Vary", "Cookie")
}
