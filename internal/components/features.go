package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type Feature struct {
	Key   string
	Icon  string
	Color string
}

var features = []Feature{
	{"python", "lucide--code", "orange-600"},
	{"opensource", "lucide--git-branch", "orange-500"},
	{"scheduling", "lucide--calendar-clock", "amber-600"},
	{"monitoring", "lucide--activity", "orange-600"},
	{"security", "lucide--shield-check", "orange-500"},
	{"scale", "lucide--trending-up", "amber-600"},
}

func Features(v View) g.Node {
	return Div(
		Class("py-8 md:py-12 2xl:py-24 xl:py-16 container"),

		Div(
			Class("text-center"),
			IconBadge("lucide--sparkles", "orange-600"),
			H2(
				ID("features"),
				Class("mt-4 font-semibold text-2xl sm:text-3xl"),
				g.Text(v.Tr("landing.features.title")),
			),
			P(
				Class("inline-block mt-3 max-w-2xl max-sm:text-sm text-base-content/70"),
				g.Text(v.Tr("landing.features.subtitle")),
			),
		),

		Div(
			Class("gap-6 2xl:gap-8 grid grid-cols-1 md:grid-cols-3 mt-12 2xl:mt-24 xl:mt-16"),
			g.Group(g.Map(features, func(f Feature) g.Node {
				prefix := "landing.features.items." + f.Key
				return Div(
					Class("feature-card hover:bg-base-200/40 border border-base-300 hover:border-orange-600/40 transition-all duration-300 card"),
					Div(
						Class("card-body"),
						IconBadge(f.Icon, f.Color),
						H3(Class("mt-4 font-semibold text-xl"), g.Text(v.Tr(prefix+".title"))),
						P(Class("mt-2 text-sm text-base-content/80 leading-relaxed"), g.Text(v.Tr(prefix+".description"))),
					),
				)
			})),
		),
	)
}
