package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strconv"
	"strings"

	"go.uber.org/fx"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

var Module = fx.Module("i18n",
	fx.Provide(Default),
)

// Bundle holds the flattened message catalogs of every supported locale.
type Bundle struct {
	messages map[Locale]map[string]string
}

// Default loads the catalogs embedded in the binary.
func Default() (*Bundle, error) {
	return Load(localeFS, "locales")
}

// Load reads {dir}/{locale}.yaml for every supported locale. The default
// locale's catalog is required, the others are optional.
func Load(fsys fs.FS, dir string) (*Bundle, error) {
	b := &Bundle{messages: make(map[Locale]map[string]string, len(Locales))}

	for _, l := range Locales {
		data, err := fs.ReadFile(fsys, path.Join(dir, string(l)+".yaml"))
		if err != nil {
			if l == DefaultLocale {
				return nil, fmt.Errorf("read %s catalog: %w", l, err)
			}
			continue
		}

		var tree map[string]any
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("parse %s catalog: %w", l, err)
		}

		flat := make(map[string]string)
		flatten("", tree, flat)
		b.messages[l] = flat
	}

	return b, nil
}

func flatten(prefix string, node any, out map[string]string) {
	switch v := node.(type) {
	case map[string]any:
		for k, child := range v {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			flatten(key, child, out)
		}
	case []any:
		for i, child := range v {
			flatten(prefix+"."+strconv.Itoa(i), child, out)
		}
	case nil:
	default:
		out[prefix] = fmt.Sprint(v)
	}
}

// Has reports whether locale l defines key itself, without fallback.
func (b *Bundle) Has(l Locale, key string) bool {
	_, ok := b.messages[l][key]
	return ok
}

// Translator returns a translator bound to locale l.
func (b *Bundle) Translator(l Locale) *Translator {
	if _, ok := Parse(string(l)); !ok {
		l = DefaultLocale
	}
	return &Translator{bundle: b, locale: l}
}

// Translator looks up messages for one locale.
type Translator struct {
	bundle *Bundle
	locale Locale
}

func (t *Translator) Locale() Locale { return t.locale }

// T returns the message for key. Missing keys fall back to the default
// locale and then to the key itself.
func (t *Translator) T(key string) string {
	if msg, ok := t.bundle.messages[t.locale][key]; ok {
		return msg
	}
	if msg, ok := t.bundle.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Tf is T with {name} placeholders replaced from vars.
func (t *Translator) Tf(key string, vars map[string]string) string {
	msg := t.T(key)
	if len(vars) == 0 {
		return msg
	}
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

// List returns the items of a YAML list key in order. A locale that does
// not define the list falls back to the default locale's.
func (t *Translator) List(key string) []string {
	if items := t.bundle.list(t.locale, key); len(items) > 0 {
		return items
	}
	return t.bundle.list(DefaultLocale, key)
}

func (b *Bundle) list(l Locale, key string) []string {
	var items []string
	for i := 0; ; i++ {
		msg, ok := b.messages[l][key+"."+strconv.Itoa(i)]
		if !ok {
			return items
		}
		items = append(items, msg)
	}
}
