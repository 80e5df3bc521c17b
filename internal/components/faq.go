package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/openautomate/website/internal/seo"
)

var faqKeys = []string{"free", "python", "migrate", "support"}

// FAQs returns the translated questions shown on the home page. The same
// list feeds the FAQPage structured data.
func FAQs(v View) []seo.FAQ {
	faqs := make([]seo.FAQ, 0, len(faqKeys))
	for _, key := range faqKeys {
		prefix := "landing.faq.items." + key
		faqs = append(faqs, seo.FAQ{
			Question: v.Tr(prefix + ".question"),
			Answer:   v.Tr(prefix + ".answer"),
		})
	}
	return faqs
}

func FAQSection(v View) g.Node {
	return Div(
		Class("py-8 md:py-12 xl:py-16 container max-w-3xl"),
		ID("faq"),

		H2(Class("text-center font-semibold text-2xl sm:text-3xl"), g.Text(v.Tr("landing.faq.title"))),

		Div(
			Class("mt-8 space-y-3"),
			g.Group(g.Map(FAQs(v), func(f seo.FAQ) g.Node {
				return Details(
					Class("faq-item collapse collapse-arrow border border-base-300"),
					Summary(Class("collapse-title font-medium"), g.Text(f.Question)),
					Div(Class("collapse-content text-sm text-base-content/80"), P(g.Text(f.Answer))),
				)
			})),
		),
	)
}
