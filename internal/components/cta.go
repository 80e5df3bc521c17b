package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func CTA(v View) g.Node {
	benefits := []string{
		v.Tr("landing.features.items.opensource.title"),
		v.Tr("landing.features.items.python.title"),
		v.Tr("landing.features.items.scale.title"),
	}

	return Div(
		Class("sm:px-16 container"),
		Div(
			Class("relative py-8 md:py-12 xl:py-16 2xl:py-24 sm:rounded-[60px] overflow-hidden bg-orange-50"),

			Div(
				Class("relative"),
				Div(
					Class("text-center"),
					Div(
						Class("inline-flex items-center bg-linear-to-tr from-orange-500 to-orange-600 p-2.5 rounded-full text-white"),
						Icon("lucide--zap size-5", "Automation"),
					),
					H2(Class("mt-4 font-bold text-xl sm:text-2xl lg:text-4xl"), g.Text(v.Tr("landing.cta.title"))),
					P(Class("inline-block mt-3 max-w-2xl max-sm:text-sm"), g.Text(v.Tr("landing.cta.description"))),
				),

				Div(
					Class("flex justify-center mt-6 xl:mt-8"),
					Ul(
						Class("space-y-3 max-w-md text-center"),
						g.Group(g.Map(benefits, func(benefit string) g.Node {
							return Li(
								Class("flex items-center gap-2 max-sm:text-sm"),
								Icon("lucide--badge-check size-6 text-success", "Check"),
								g.Text(benefit),
							)
						})),
					),
				),

				Div(
					Class("flex justify-center items-center gap-3 sm:gap-5 mt-6 xl:mt-8"),
					A(
						ID("cta-launch"),
						Href(v.OrchestratorURL("/login")),
						Class("gap-3 bg-linear-to-r from-orange-500 to-orange-600 border-0 text-white text-base btn"),
						Icon("lucide--rocket size-4 sm:size-5", ""),
						g.Text(v.Tr("landing.cta.button")),
					),
					A(
						Href(v.Href("/contact")),
						Class("btn btn-ghost"),
						g.Text(v.Tr("common.nav.contact")),
						Icon("lucide--arrow-right size-3.5", ""),
					),
				),
			),
		),
	)
}
