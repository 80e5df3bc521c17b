package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func SiteTopbar(v View) g.Node {
	links := navLinks(v)

	return Div(
		g.Attr("data-scrolling", ""),
		g.Attr("data-at-top", "true"),
		Class("group fixed inset-x-0 z-[60] flex justify-center transition-[top] duration-500 data-[scrolling=down]:-top-full sm:container [&:not([data-scrolling=down])]:top-0 [&:not([data-scrolling=down])]:sm:top-4"),

		Div(
			Class("flex justify-between items-center group-data-[at-top=false]:bg-base-100 group-data-[at-top=false]:shadow px-3 sm:px-6 py-3 lg:py-1.5 sm:rounded-full w-full group-data-[at-top=false]:w-[900px] transition-all duration-500"),

			Div(
				Class("flex items-center gap-2"),

				Div(
					Class("lg:hidden flex-none"),
					Div(
						Class("drawer"),
						Input(
							ID("landing-menu-drawer"),
							Type("checkbox"),
							Class("drawer-toggle"),
						),
						Div(
							Class("drawer-content"),
							Label(
								g.Attr("for", "landing-menu-drawer"),
								Class("btn drawer-button btn-ghost btn-square btn-sm"),
								Icon("lucide--menu size-4.5", ""),
							),
						),
						Div(
							Class("z-[50] drawer-side"),
							Label(
								g.Attr("for", "landing-menu-drawer"),
								g.Attr("aria-label", "close sidebar"),
								Class("drawer-overlay"),
							),
							Ul(
								Class("bg-base-100 p-4 w-80 min-h-full text-base-content menu"),
								g.Group(g.Map(links, func(l navLink) g.Node {
									return navItem(v, l)
								})),
							),
						),
					),
				),

				A(
					Href(v.Href("/")),
					Logo(v),
				),
			),

			Ul(
				Class("hidden lg:inline-flex gap-2 px-0 menu menu-horizontal"),
				g.Group(g.Map(links, func(l navLink) g.Node {
					return navItem(v, l)
				})),
			),

			Div(
				Class("inline-flex items-center gap-3"),

				LanguageSwitcher(v),

				A(
					Href(v.OrchestratorURL("/login")),
					Class("group/launch relative gap-2 bg-linear-to-r from-orange-500 to-orange-600 border-0 text-white text-sm btn btn-sm max-sm:btn-square"),
					Icon("lucide--log-in size-4", ""),
					Span(Class("max-sm:hidden"), g.Text(v.Tr("landing.signin"))),
				),
			),
		),
	)
}

func navItem(v View, l navLink) g.Node {
	return Li(
		A(
			Href(v.Href(l.Path)),
			g.If(v.IsCurrent(l.Path), g.Attr("aria-current", "page")),
			g.Text(v.Tr(l.Key)),
		),
	)
}
