package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type footerColumn struct {
	Title string
	Links []footerLink
}

type footerLink struct {
	Label string
	Href  string
}

func footerColumns(v View) []footerColumn {
	return []footerColumn{
		{
			Title: v.Tr("footer.sections.platform"),
			Links: []footerLink{
				{v.Tr("footer.links.platform.features"), v.Href("/#features")},
				{v.Tr("footer.links.platform.pricing"), v.Href("/#pricing")},
				{v.Tr("footer.links.platform.docs"), v.Href("/guide")},
			},
		},
		{
			Title: v.Tr("footer.sections.resources"),
			Links: []footerLink{
				{v.Tr("footer.links.resources.blog"), "#"},
				{v.Tr("footer.links.resources.community"), "#"},
				{v.Tr("footer.links.resources.support"), v.Href("/contact")},
			},
		},
		{
			Title: v.Tr("footer.sections.company"),
			Links: []footerLink{
				{v.Tr("footer.links.company.about"), v.Href("/about")},
				{v.Tr("footer.links.company.contact"), v.Href("/contact")},
			},
		},
	}
}

func PageFooter(v View) g.Node {
	return Div(
		Class("relative"),

		Div(
			Class("z-[2] relative pt-8 md:pt-12 2xl:pt-24 xl:pt-16 container"),

			Div(
				Class("gap-6 grid grid-cols-2 md:grid-cols-5"),

				Div(
					Class("col-span-2"),
					Logo(v),

					P(
						Class("mt-3 max-sm:text-sm text-base-content/80"),
						g.Text(v.Tr("footer.tagline")),
					),

					Div(
						Class("flex items-center gap-2.5 mt-6 xl:mt-16"),
						A(Class("btn btn-sm btn-circle"), Href("https://github.com/OpenAutomateOrg"), g.Attr("target", "_blank"),
							Icon("lucide--github", "GitHub"),
						),
						A(Class("btn btn-sm btn-circle"), Href("mailto:"+v.Site.Organization.ContactPoint.Email),
							Icon("lucide--mail", "Email"),
						),
					),
				),

				g.Group(g.Map(footerColumns(v), func(col footerColumn) g.Node {
					return Div(
						Class("col-span-1"),
						P(Class("font-medium"), g.Text(col.Title)),
						Div(
							Class("flex flex-col space-y-1.5 mt-5 text-base-content/80"),
							g.Group(g.Map(col.Links, func(l footerLink) g.Node {
								return A(Href(l.Href), g.Text(l.Label))
							})),
						),
					)
				})),
			),

			Div(
				Class("flex flex-wrap justify-between items-center gap-3 mt-12 py-6 border-t border-base-300"),
				P(
					ID("copyright"),
					g.Text(v.T.Tf("footer.copyright", map[string]string{"year": strconv.Itoa(v.Year)})),
				),
				Div(
					Class("flex gap-4 text-sm text-base-content/70"),
					A(Href("#"), g.Text(v.Tr("footer.policies.terms"))),
					A(Href("#"), g.Text(v.Tr("footer.policies.privacy"))),
					A(Href("#"), g.Text(v.Tr("footer.policies.cookies"))),
				),
			),
		),

		P(
			Class("max-lg:hidden flex justify-center -mt-12 h-[195px] overflow-hidden font-black text-[160px] text-base-content/5 tracking-[12px] whitespace-nowrap select-none"),
			g.Text("OPENAUTOMATE"),
		),
	)
}
