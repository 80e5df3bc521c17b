package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Hero(v View) g.Node {
	return g.Group([]g.Node{
		Div(
			Class("relative z-2 overflow-hidden"),
			ID("hero"),

			Div(
				Class("container flex items-center justify-center pt-28 md:pt-36 xl:pt-44 pb-20 md:pb-28 xl:pb-36"),
				Div(
					Class("w-100 text-center md:w-120 xl:w-160 2xl:w-200"),

					H1(
						Class("mt-3 text-3xl leading-tight font-extrabold tracking-[-0.5px] md:text-4xl xl:text-5xl 2xl:text-6xl"),
						g.Text(v.Tr("landing.hero.title")),
					),

					P(
						Class("text-base-content/80 mt-5 xl:text-lg"),
						g.Text(v.Tr("landing.hero.subtitle")),
					),

					Div(
						Class("mt-8 inline-flex justify-center gap-3"),
						A(
							Href(v.OrchestratorURL("/register")),
							Class("btn bg-orange-600 hover:bg-orange-700 text-white border-0 shadow-orange-600/20 shadow-xl"),
							Icon("lucide--rocket size-4", ""),
							g.Text(v.Tr("landing.hero.cta")),
						),
						A(
							Href(v.Href("/guide")),
							Class("btn btn-ghost"),
							Icon("lucide--book-open size-4", ""),
							g.Text(v.Tr("landing.hero.secondary")),
						),
					),
				),
			),
		),

		Div(Class("from-orange-400 via-orange-500 to-orange-600 mb-8 h-1 w-full bg-linear-to-r md:mb-12 xl:mb-16")),
	})
}
