package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

var guideSteps = []string{"install", "connect", "build", "run"}

func GuideContent(v View) g.Node {
	return Div(
		Class("py-8 md:py-12 xl:py-16 container max-w-3xl"),
		ID("guide"),

		H1(Class("font-bold text-3xl sm:text-4xl"), g.Text(v.Tr("guide.title"))),
		P(Class("mt-4 text-base-content/80"), g.Text(v.Tr("guide.intro"))),

		Ol(
			Class("mt-10 space-y-6"),
			g.Group(g.Map(guideSteps, func(key string) g.Node {
				return Li(
					Class("guide-step flex gap-4"),
					Span(
						Class("flex items-center justify-center shrink-0 size-8 rounded-full bg-orange-600 text-white font-semibold"),
						g.Text(strconv.Itoa(stepNumber(key))),
					),
					Div(
						H2(Class("font-semibold text-lg"), g.Text(v.Tr("guide.steps."+key+".title"))),
						P(Class("mt-1 text-base-content/80"), g.Text(v.Tr("guide.steps."+key+".body"))),
					),
				)
			})),
		),

		Div(
			Class("mt-10"),
			A(
				Href(v.OrchestratorURL("/register")),
				Class("btn bg-orange-600 hover:bg-orange-700 text-white border-0"),
				g.Text(v.Tr("landing.hero.cta")),
			),
		),
	)
}

func stepNumber(key string) int {
	for i, k := range guideSteps {
		if k == key {
			return i + 1
		}
	}
	return 0
}
