package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/openautomate/website/internal/i18n"
)

func Logo(v View) g.Node {
	return Div(
		Class("flex items-center gap-2"),
		Img(Src(v.Site.Logo), Alt(v.Site.Name), Class("size-8")),
		Span(
			Class("font-bold text-xl text-orange-600"),
			g.Text(v.Site.Name),
		),
	)
}

func convertIconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) == 0 {
		return ""
	}
	return strings.Replace(parts[0], "--", ":", 1)
}

func extractSizeClasses(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) > 1 {
		return strings.Join(parts[1:], " ")
	}
	return ""
}

// Icon renders an iconify icon. iconClass is "set--name" optionally followed
// by size classes, e.g. "lucide--mail size-5".
func Icon(iconClass, ariaLabel string) g.Node {
	iconName := convertIconName(iconClass)
	classes := "iconify inline-block"
	if sizeClasses := extractSizeClasses(iconClass); sizeClasses != "" {
		classes = fmt.Sprintf("iconify inline-block %s", sizeClasses)
	}

	if ariaLabel != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", iconName),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class(classes),
		g.Attr("data-icon", iconName),
		g.Attr("aria-hidden", "true"),
	)
}

func IconBadge(icon, color string) g.Node {
	containerClass := fmt.Sprintf("inline-flex items-center justify-center shrink-0 select-none size-10 rounded-box bg-%s/10 border border-%s/20 transition-colors", color, color)

	return Span(
		Class(containerClass),
		Span(
			Class(fmt.Sprintf("iconify text-%s size-5", color)),
			g.Attr("data-icon", convertIconName(icon)),
		),
	)
}

// LanguageSwitcher links the current page in every supported locale.
func LanguageSwitcher(v View) g.Node {
	return Div(
		Class("dropdown dropdown-end"),
		Div(
			g.Attr("tabindex", "0"),
			g.Attr("role", "button"),
			Class("btn btn-ghost btn-sm gap-1"),
			Icon("lucide--languages", v.Tr("common.language")),
			Span(Class("max-sm:hidden"), g.Text(v.Locale().Name())),
		),
		Ul(
			g.Attr("tabindex", "-1"),
			Class("dropdown-content menu bg-base-100 rounded-box z-[1] mt-2 w-40 border border-base-300 p-2 shadow"),
			g.Group(g.Map(i18n.Locales, func(l i18n.Locale) g.Node {
				return Li(
					A(
						Href(i18n.SwitchPath(v.Path, l)),
						g.Attr("hreflang", l.String()),
						g.Attr("data-locale", l.String()),
						g.If(l == v.Locale(), Class("menu-active")),
						g.Text(l.Name()),
					),
				)
			})),
		),
	)
}

type navLink struct {
	Key  string
	Path string
}

func navLinks(v View) []navLink {
	links := make([]navLink, 0, len(v.Site.Pages))
	for _, p := range v.Site.Pages {
		links = append(links, navLink{Key: "common.nav." + p.Key, Path: p.Path})
	}
	return links
}
