package i18n

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// Locale is a supported UI language code.
type Locale string

const (
	English    Locale = "en"
	Vietnamese Locale = "vi"

	DefaultLocale = English

	// CookieName is the cookie that remembers an explicit language choice.
	CookieName = "NEXT_LOCALE"
)

// Locales lists the supported locales, default first.
var Locales = []Locale{English, Vietnamese}

var localeNames = map[Locale]string{
	English:    "English",
	Vietnamese: "Tiếng Việt",
}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Vietnamese,
})

func (l Locale) String() string { return string(l) }

// Name is the locale's name in its own language.
func (l Locale) Name() string {
	if name, ok := localeNames[l]; ok {
		return name
	}
	return string(l)
}

// Parse returns the supported locale named by s.
func Parse(s string) (Locale, bool) {
	l := Locale(strings.ToLower(strings.TrimSpace(s)))
	for _, supported := range Locales {
		if l == supported {
			return l, true
		}
	}
	return "", false
}

// Negotiate picks the locale for a request without a locale prefix: the
// NEXT_LOCALE cookie, then Accept-Language, then the default.
func Negotiate(r *http.Request) Locale {
	if c, err := r.Cookie(CookieName); err == nil {
		if l, ok := Parse(c.Value); ok {
			return l
		}
	}
	return Match(r.Header.Get("Accept-Language"))
}

// Match resolves an Accept-Language header against the supported locales.
func Match(acceptLanguage string) Locale {
	if strings.TrimSpace(acceptLanguage) == "" {
		return DefaultLocale
	}
	_, index, confidence := matcher.Match(parseAccept(acceptLanguage)...)
	if confidence == language.No {
		return DefaultLocale
	}
	return Locales[index]
}

func parseAccept(header string) []language.Tag {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return nil
	}
	return tags
}

// SplitLocale separates a leading locale segment from path. When the first
// segment is not a supported locale, path is returned unchanged with ok false.
func SplitLocale(path string) (Locale, string, bool) {
	trimmed := strings.TrimPrefix(path, "/")
	segment, rest, _ := strings.Cut(trimmed, "/")
	l, ok := Parse(segment)
	if !ok || segment != string(l) {
		return "", path, false
	}
	return l, "/" + rest, true
}

// SwitchPath rewrites path so that it points at the same page in locale to.
//
//	SwitchPath("/vi/about", "en") == "/en/about"
//	SwitchPath("/", "vi")         == "/vi"
func SwitchPath(path string, to Locale) string {
	if path == "" {
		path = "/"
	}
	if _, rest, ok := SplitLocale(path); ok {
		path = rest
	}
	if path == "/" {
		return "/" + string(to)
	}
	return "/" + string(to) + path
}

// LocalizedPath prefixes path with the locale segment.
func LocalizedPath(l Locale, path string) string {
	return SwitchPath(path, l)
}

type ctxKey struct{}

type requestLocale struct {
	locale   Locale
	prefixed bool
}

// WithLocale stores the request locale in ctx. prefixed records whether the
// locale came from the URL, so links rendered for the request keep it.
func WithLocale(ctx context.Context, l Locale, prefixed bool) context.Context {
	return context.WithValue(ctx, ctxKey{}, requestLocale{locale: l, prefixed: prefixed})
}

// FromContext returns the request locale, or the default when none was set.
func FromContext(ctx context.Context) Locale {
	if rl, ok := ctx.Value(ctxKey{}).(requestLocale); ok {
		return rl.locale
	}
	return DefaultLocale
}

// IsPrefixed reports whether the request locale came from the URL path.
func IsPrefixed(ctx context.Context) bool {
	rl, ok := ctx.Value(ctxKey{}).(requestLocale)
	return ok && rl.prefixed
}
