package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

var pricingFeatures = []string{"agents", "schedules", "support", "retention"}

func Pricing(v View) g.Node {
	return Div(
		Class("py-8 md:py-12 xl:py-16 container"),
		ID("pricing"),

		Div(
			Class("text-center"),
			H2(Class("font-semibold text-2xl sm:text-3xl"), g.Text(v.Tr("landing.pricing.title"))),
			P(Class("inline-block mt-3 max-w-2xl max-sm:text-sm text-base-content/70"), g.Text(v.Tr("landing.pricing.subtitle"))),
		),

		Div(
			Class("flex justify-center mt-10"),
			Div(
				Class("card w-full max-w-md border-2 border-orange-600 shadow-xl"),
				Div(
					Class("card-body"),
					H3(Class("font-semibold text-xl"), g.Text(v.Tr("landing.pricing.premium.name"))),
					P(
						Class("mt-2"),
						Span(Class("font-extrabold text-4xl"), g.Text(v.Tr("landing.pricing.premium.price"))),
						Span(Class("ms-1 text-base-content/60"), g.Text(v.Tr("landing.pricing.premium.period"))),
					),
					P(Class("mt-2 text-sm text-base-content/80"), g.Text(v.Tr("landing.pricing.premium.description"))),
					Ul(
						Class("mt-4 space-y-2"),
						g.Group(g.Map(pricingFeatures, func(key string) g.Node {
							return Li(
								Class("flex items-center gap-2 text-sm"),
								Icon("lucide--check size-4 text-success", ""),
								g.Text(v.Tr("landing.pricing.features."+key)),
							)
						})),
					),
					Div(
						Class("card-actions mt-6"),
						A(
							Href(v.OrchestratorURL("/register")),
							Class("btn w-full bg-orange-600 hover:bg-orange-700 text-white border-0"),
							g.Text(v.Tr("landing.pricing.premium.cta")),
						),
					),
				),
			),
		),
	)
}
