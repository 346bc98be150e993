package web

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/ilexagri/website/internal/contact"
)

// ContactState is the form as the visitor should see it.
type ContactState struct {
	Form   contact.Form
	Errors contact.ValidationErrors
	Failed bool
	Sent   bool
}

// StateFromResult maps a submit attempt onto the form.
func StateFromResult(r contact.Result) ContactState {
	return ContactState{Form: r.Form, Errors: r.Errors, Failed: r.Failed, Sent: r.Sent}
}

// ContactPage renders the standalone contact page.
func ContactPage(page Page, state ContactState) g.Node {
	return Layout(page,
		H1(g.Text("Contact us")),
		P(g.Text("Questions about a product, rates or tank mixes? Send us a message and an agronomist will get back to you.")),
		ContactForm(state),
	)
}

// ContactForm renders the enquiry form with inline errors and notices.
func ContactForm(state ContactState) g.Node {
	return g.El("form",
		Class("contact-form"),
		Method("post"),
		Action("/contact"),
		g.Attr("novalidate"),
		g.If(state.Sent, Div(Class("alert alert-success"), g.Attr("role", "status"),
			g.Text("Thank you, your message has been sent. We'll be in touch shortly."))),
		g.If(state.Failed, Div(Class("alert alert-error"), g.Attr("role", "alert"),
			g.Text(contact.FailureNotice))),
		field("name", "Name", Input(Type("text"), ID("name"), Name("name"), Value(state.Form.Name)), state.Errors),
		field("email", "Email", Input(Type("email"), ID("email"), Name("email"), Value(state.Form.Email)), state.Errors),
		field("message", "Message",
			Textarea(ID("message"), Name("message"), g.Attr("rows", "6"), g.Text(state.Form.Message)),
			state.Errors),
		Button(Type("submit"), g.Text("Send message")),
	)
}

func field(name, label string, control g.Node, errs contact.ValidationErrors) g.Node {
	msg := errs[name]
	return Div(
		Class("field"),
		g.El("label", g.Attr("for", name), g.Text(label)),
		control,
		g.If(msg != "", Span(Class("error"), ID(name+"-error"), g.Text(msg))),
	)
}
