package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

var aboutValues = []struct {
	Key  string
	Icon string
}{
	{"open", "lucide--unlock"},
	{"simple", "lucide--feather"},
	{"community", "lucide--users"},
}

func AboutContent(v View) g.Node {
	return Div(
		Class("py-8 md:py-12 xl:py-16 container"),
		ID("about"),

		Div(
			Class("text-center max-w-3xl mx-auto"),
			H1(Class("font-bold text-3xl sm:text-4xl"), g.Text(v.Tr("about.title"))),
			P(Class("mt-4 text-base-content/80 text-lg"), g.Text(v.Tr("about.intro"))),
		),

		Div(
			Class("mt-12 max-w-3xl mx-auto"),
			H2(Class("font-semibold text-2xl"), g.Text(v.Tr("about.mission.title"))),
			P(Class("mt-3 text-base-content/80"), g.Text(v.Tr("about.mission.body"))),
		),

		Div(
			Class("mt-12"),
			H2(Class("text-center font-semibold text-2xl"), g.Text(v.Tr("about.values.title"))),
			Div(
				Class("gap-6 grid grid-cols-1 md:grid-cols-3 mt-8"),
				g.Group(g.Map(aboutValues, func(val struct {
					Key  string
					Icon string
				}) g.Node {
					prefix := "about.values." + val.Key
					return Div(
						Class("border border-base-300 card"),
						Div(
							Class("card-body"),
							IconBadge(val.Icon, "orange-600"),
							H3(Class("mt-4 font-semibold text-lg"), g.Text(v.Tr(prefix+".title"))),
							P(Class("mt-2 text-sm text-base-content/80"), g.Text(v.Tr(prefix+".body"))),
						),
					)
				})),
			),
		),

		Div(
			Class("mt-12 text-center"),
			H2(Class("font-semibold text-2xl"), g.Text(v.Tr("about.team.title"))),
			P(Class("mt-3 text-base-content/70"), g.Text(v.Tr("about.team.subtitle"))),
		),
	)
}
