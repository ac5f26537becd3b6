package web

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/mathaaaaaaaaaar/localli-landing/pkg/form"
)

type feature struct {
	title string
	text  string
}

var features = []feature{
	{"Trusted locals", "Every business on Localli is run by people in your community."},
	{"Book in minutes", "See availability and book without the phone tag."},
	{"Fair for businesses", "No race to the bottom. Keep more of what you earn."},
}

func landingPage(v view) g.Node {
	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Class(v.Theme),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text("Localli - Find Local Services. Support Local Businesses.")),
				Meta(Name("description"), Content("Connecting communities with trusted local services.")),
				Link(Rel("stylesheet"), Href("/static/styles.css")),
			),
			Body(
				topbar(v.Theme),
				heroSection(),
				whySection(),
				categorySection(),
				countdownSection(v),
				businessSection(v.Business),
				earlyAccessSection("early-access", "/early-access", v.EarlyAccess),
				pageFooter(v.Newsletter),
				g.If(v.ShowModal, accessModal(v.EarlyAccess)),
			),
		),
	})
}

func topbar(theme string) g.Node {
	label := "Dark mode"
	if theme == "dark" {
		label = "Light mode"
	}

	return Header(
		Class("topbar"),
		A(Href("/"), Class("logo"), g.Text("Localli")),
		Nav(
			A(Href("#categories"), g.Text("Services")),
			A(Href("#business"), g.Text("For Businesses")),
			A(Href("#early-access"), g.Text("Early Access")),
		),
		Form(
			Method("post"), Action("/theme"),
			Button(Type("submit"), Class("btn btn-ghost"), g.Attr("data-testid", "button-theme-toggle"), g.Text(label)),
		),
	)
}

func heroSection() g.Node {
	return Section(
		ID("hero"), Class("hero"),
		H1(
			Span(g.Text("Find Local Services.")),
			Br(),
			Span(Class("accent"), g.Text("Support Local Businesses.")),
		),
		P(g.Text("Localli connects you with trusted businesses in your neighborhood, from plumbers to personal trainers.")),
		Div(
			Class("actions"),
			A(Href("#early-access"), Class("btn btn-primary"), g.Text("Get Early Access")),
			A(Href("#business"), Class("btn btn-ghost"), g.Text("List Your Business")),
		),
	)
}

func whySection() g.Node {
	return Section(
		ID("why"), Class("features"),
		H2(g.Text("Why Localli")),
		Div(
			Class("grid"),
			g.Map(features, func(f feature) g.Node {
				return Div(Class("card"), H3(g.Text(f.title)), P(g.Text(f.text)))
			}),
		),
	)
}

func categorySection() g.Node {
	return Section(
		ID("categories"), Class("categories"),
		H2(g.Text("Every service, close to home")),
		Ul(
			Class("grid"),
			g.Map(form.Categories, func(c string) g.Node {
				return Li(Class("card"), g.Text(c))
			}),
		),
	)
}

func countdownSection(v view) g.Node {
	heading := "Launching soon"
	if v.Launched {
		heading = "We're live"
	}

	unit := func(value int, label string) g.Node {
		return Div(
			Class("countdown-unit"),
			Strong(g.Text(strconv.Itoa(value))),
			Span(g.Text(label)),
		)
	}

	return Section(
		ID("countdown"), Class("countdown"),
		g.Attr("data-launch", v.Launch.UTC().Format("2006-01-02T15:04:05Z")),
		H2(g.Text(heading)),
		Div(
			Class("countdown-units"),
			unit(v.TimeLeft.Days, "Days"),
			unit(v.TimeLeft.Hours, "Hours"),
			unit(v.TimeLeft.Minutes, "Minutes"),
			unit(v.TimeLeft.Seconds, "Seconds"),
		),
		A(Href("#early-access"), Class("btn btn-primary"), g.Attr("data-testid", "button-countdown-notify"), g.Text("Notify Me")),
	)
}

func businessSection(fv formView[form.LeadForm]) g.Node {
	if fv.Done {
		return Section(
			ID("business"), Class("signup"),
			confirmation("You're on the list!", "We'll be in touch soon with updates about Localli and your early access."),
		)
	}

	d := fv.Data
	return Section(
		ID("business"), Class("signup"),
		H2(g.Text("Grow your business with Localli")),
		P(g.Text("Join the businesses getting early access to customers in their neighborhood.")),
		Form(
			Method("post"), Action("/business"),
			formMessage(fv.Message),
			textField("business", "business_name", "Business Name", "text", d.BusinessName, true, fv.Errors),
			textField("business", "email", "Email", "email", d.Email, true, fv.Errors),
			textField("business", "phone", "Phone (optional)", "tel", d.Phone, false, nil),
			selectField("business", "service_category", "Service Category", form.Categories, d.ServiceCategory, true, fv.Errors),
			selectField("business", "source", "How did you hear about us?", form.Sources, d.Source, false, nil),
			Button(Type("submit"), Class("btn btn-primary"), g.Attr("data-testid", "button-business-submit"), g.Text("Join as a Business")),
		),
	)
}

func earlyAccessSection(id, action string, fv formView[form.EarlyAccessForm]) g.Node {
	if fv.Done {
		return Section(
			ID(id), Class("signup"),
			confirmation("You're in!", "We'll be in touch soon with updates about early access."),
		)
	}

	d := fv.Data
	return Section(
		ID(id), Class("signup"),
		H3(g.Text("Get Early Access")),
		Form(
			Method("post"), Action(action),
			formMessage(fv.Message),
			textField(id, "first_name", "First Name", "text", d.FirstName, false, nil),
			textField(id, "last_name", "Last Name", "text", d.LastName, false, nil),
			textField(id, "email", "Email", "email", d.Email, true, fv.Errors),
			Button(Type("submit"), Class("btn btn-primary"), g.Text("Request Access")),
		),
	)
}

func accessModal(fv formView[form.EarlyAccessForm]) g.Node {
	return Div(
		Class("modal"),
		g.Attr("role", "dialog"),
		g.Attr("data-delay-ms", "5000"),
		earlyAccessSection("early-access-modal", "/early-access", fv),
		A(Href("#"), Class("modal-close"), g.Text("Close")),
	)
}

func pageFooter(fv formView[form.EarlyAccessForm]) g.Node {
	var signup g.Node
	if fv.Done {
		signup = P(Class("subscribed"), g.Text("Subscribed!"))
	} else {
		signup = Form(
			Method("post"), Action("/newsletter"),
			formMessage(fv.Message),
			textField("newsletter", "email", "Email", "email", fv.Data.Email, true, fv.Errors),
			Button(Type("submit"), g.Attr("data-testid", "button-newsletter-subscribe"), g.Text("Subscribe")),
		)
	}

	return Footer(
		Class("footer"),
		Div(
			A(Href("/"), Class("logo"), g.Text("Localli")),
			P(g.Text("Connecting communities with trusted local services.")),
			Span(Class("badge"), g.Text("Building in Public")),
		),
		Div(
			ID("newsletter"),
			H3(g.Text("Stay in the loop")),
			P(g.Text("Get updates on our progress and be the first to know about new features.")),
			signup,
		),
		P(Class("copyright"), g.Text("2024 Localli. All rights reserved.")),
	)
}

func confirmation(title, text string) g.Node {
	return Div(
		Class("confirmation"),
		H3(g.Text(title)),
		P(g.Text(text)),
		A(Href("/"), Class("btn btn-ghost"), g.Text("Add another")),
	)
}

func formMessage(msg string) g.Node {
	return g.If(msg != "", P(Class("form-error"), g.Attr("role", "alert"), g.Text(msg)))
}

func textField(formID, name, label, inputType, value string, required bool, errs map[string]string) g.Node {
	id := formID + "-" + name
	return Div(
		Class("field"),
		Label(For(id), g.Text(label)),
		Input(ID(id), Name(name), Type(inputType), Value(value), g.If(required, Required())),
		fieldError(errs[name]),
	)
}

func selectField(formID, name, label string, options []string, selected string, required bool, errs map[string]string) g.Node {
	id := formID + "-" + name
	return Div(
		Class("field"),
		Label(For(id), g.Text(label)),
		Select(
			ID(id), Name(name), g.If(required, Required()),
			Option(Value(""), g.Text("Select...")),
			g.Map(options, func(o string) g.Node {
				return Option(Value(o), g.If(o == selected, Selected()), g.Text(o))
			}),
		),
		fieldError(errs[name]),
	)
}

func fieldError(msg string) g.Node {
	return g.If(msg != "", P(Class("field-error"), g.Text(msg)))
}
