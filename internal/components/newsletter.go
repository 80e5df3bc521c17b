package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Newsletter invites visitors to get in touch. The email entered here
// pre-fills the contact form.
func Newsletter(v View) g.Node {
	return Div(
		Class("py-8 md:py-12 container"),
		ID("newsletter"),
		Div(
			Class("mx-auto max-w-2xl text-center"),
			H2(Class("font-semibold text-xl sm:text-2xl"), g.Text(v.Tr("newsletter.title"))),
			P(Class("mt-2 text-base-content/70"), g.Text(v.Tr("newsletter.description"))),
			g.El("form",
				Method("get"),
				Action(v.Href("/contact")),
				Class("mt-6 flex flex-col sm:flex-row gap-3 justify-center"),
				Input(
					Type("email"),
					Name("email"),
					Placeholder(v.Tr("newsletter.placeholder")),
					Class("input input-bordered w-full sm:w-80"),
				),
				Button(
					Type("submit"),
					Class("btn bg-orange-600 hover:bg-orange-700 text-white border-0"),
					g.Text(v.Tr("newsletter.button")),
				),
			),
		),
	)
}
