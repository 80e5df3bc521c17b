package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/openautomate/website/internal/contact"
)

// ContactState is what the contact page shows after a GET or a POST.
type ContactState struct {
	Status contact.Status
	Fields contact.Fields
	// FieldErrors maps field names to a validation code.
	FieldErrors map[string]string
	// Notice is the catalog key of the status banner.
	Notice string
}

func ContactContent(v View, state ContactState) g.Node {
	return Div(
		Class("py-8 md:py-12 xl:py-16 container"),
		ID("contact"),

		Div(
			Class("text-center max-w-3xl mx-auto"),
			H1(Class("font-bold text-3xl sm:text-4xl"), g.Text(v.Tr("contact.title"))),
			P(Class("mt-4 text-base-content/80"), g.Text(v.Tr("contact.intro"))),
		),

		Div(
			Class("gap-8 grid grid-cols-1 lg:grid-cols-3 mt-12"),
			Div(
				Class("lg:col-span-2 border border-base-300 card"),
				Div(
					Class("card-body"),
					H2(Class("font-semibold text-xl"), g.Text(v.Tr("contact.form.title"))),
					P(Class("text-sm text-base-content/70"), g.Text(v.Tr("contact.form.description"))),
					statusBanner(v, state),
					contactForm(v, state),
				),
			),
			contactInfo(v),
		),
	)
}

func statusBanner(v View, state ContactState) g.Node {
	switch state.Status {
	case contact.StatusSuccess:
		return Div(
			ID("contact-status"),
			Class("alert alert-success mt-4"),
			g.Attr("role", "status"),
			Icon("lucide--check-circle size-5", ""),
			Span(g.Text(v.Tr("contact.form.success"))),
		)
	case contact.StatusError:
		notice := state.Notice
		if notice == "" {
			notice = "contact.form.error"
		}
		return Div(
			ID("contact-status"),
			Class("alert alert-error mt-4"),
			g.Attr("role", "alert"),
			Icon("lucide--alert-circle size-5", ""),
			Span(g.Text(v.Tr(notice))),
		)
	default:
		return g.Group(nil)
	}
}

type formField struct {
	Name        string
	Type        string
	Value       string
	Label       string
	Placeholder string
	Multiline   bool
}

func contactForm(v View, state ContactState) g.Node {
	fields := []formField{
		{"name", "text", state.Fields.Name, v.Tr("contact.form.name"), v.Tr("contact.form.namePlaceholder"), false},
		{"email", "email", state.Fields.Email, v.Tr("contact.form.email"), v.Tr("contact.form.emailPlaceholder"), false},
		{"subject", "text", state.Fields.Subject, v.Tr("contact.form.subject"), v.Tr("contact.form.subjectPlaceholder"), false},
		{"message", "", state.Fields.Message, v.Tr("contact.form.message"), v.Tr("contact.form.messagePlaceholder"), true},
	}

	return g.El("form",
		ID("contact-form"),
		Method("post"),
		Action(v.Href("/contact")),
		Class("mt-4 space-y-4"),
		g.Attr("data-status", string(state.Status)),

		g.Group(g.Map(fields, func(f formField) g.Node {
			return inputField(v, f, state.FieldErrors[f.Name])
		})),

		Button(
			Type("submit"),
			Class("btn w-full bg-orange-600 hover:bg-orange-700 text-white border-0"),
			g.Attr("data-submitting-label", v.Tr("contact.form.submitting")),
			g.Text(v.Tr("contact.form.submit")),
		),
	)
}

func inputField(v View, f formField, errCode string) g.Node {
	id := "contact-" + f.Name
	control := Input(
		ID(id),
		Name(f.Name),
		Type(f.Type),
		Value(f.Value),
		Placeholder(f.Placeholder),
		Required(),
		Class("input input-bordered w-full"),
		g.If(errCode != "", g.Attr("aria-invalid", "true")),
	)
	if f.Multiline {
		control = Textarea(
			ID(id),
			Name(f.Name),
			Placeholder(f.Placeholder),
			Required(),
			g.Attr("rows", "5"),
			Class("textarea textarea-bordered w-full"),
			g.If(errCode != "", g.Attr("aria-invalid", "true")),
			g.Text(f.Value),
		)
	}

	return Div(
		Class("form-control"),
		Label(g.Attr("for", id), Class("label font-medium"), g.Text(f.Label)),
		control,
		g.If(errCode != "", P(Class("field-error mt-1 text-sm text-error"), g.Text(v.Tr("contact.form."+errCode)))),
	)
}

func contactInfo(v View) g.Node {
	email := v.Site.Organization.ContactPoint.Email

	return Div(
		Class("border border-base-300 card"),
		Div(
			Class("card-body space-y-4"),
			H2(Class("font-semibold text-xl"), g.Text(v.Tr("contact.info.title"))),
			P(Class("text-sm text-base-content/70"), g.Text(v.Tr("contact.info.description"))),
			infoRow("lucide--map-pin", v.Tr("contact.info.address"), g.Text(v.Tr("contact.info.addressBody"))),
			infoRow("lucide--mail", v.Tr("contact.info.email"), A(Href("mailto:"+email), g.Text(email))),
			infoRow("lucide--clock", v.Tr("contact.info.hours"), g.Text(v.Tr("contact.info.hoursBody"))),
		),
	)
}

func infoRow(icon, title string, body g.Node) g.Node {
	return Div(
		Class("flex gap-3"),
		IconBadge(icon, "orange-600"),
		Div(
			P(Class("font-medium"), g.Text(title)),
			P(Class("text-sm text-base-content/80"), body),
		),
	)
}
