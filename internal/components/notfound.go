package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func NotFoundContent(v View) g.Node {
	return Div(
		Class("container py-32 text-center"),
		ID("not-found"),
		P(Class("font-black text-7xl text-orange-600"), g.Text("404")),
		H1(Class("mt-4 font-semibold text-2xl"), g.Text(v.Tr("errors.notFound"))),
		A(Href(v.Href("/")), Class("btn btn-ghost mt-6"), g.Text(v.Tr("common.nav.home"))),
	)
}
