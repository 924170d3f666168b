package components

import (
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"skc.dev/internal/contact"
	"skc.dev/internal/models"
)

const inputClass = "contact-input w-full px-4 py-3 rounded-lg focus:outline-none transition-colors text-white"

func field(label string, required bool, control g.Node) g.Node {
	text := label
	if required {
		text += " *"
	}
	return Div(
		Label(Class("block text-sm font-medium text-light/70 mb-2"), g.Text(text), control),
	)
}

func textInput(name, kind, value, placeholder string, required, disabled, invalid bool) g.Node {
	cls := inputClass
	if invalid {
		cls += " input-invalid"
	}
	return Input(
		Type(kind),
		Name(name),
		Value(value),
		Placeholder(placeholder),
		Class(cls+" mt-2"),
		g.If(required, Required()),
		g.If(disabled, Disabled()),
	)
}

// ContactForm renders the form for a session snapshot. With JavaScript the
// browser drives the session API; without it the form posts to /contact.
func ContactForm(snap contact.Snapshot, mailEnabled bool) g.Node {
	if snap.State == contact.Submitted {
		return Div(
			ID("contact-status"),
			Class("text-center py-8 md:py-12"),
			g.Attr("data-state", snap.State.String()),
			g.Attr("data-session-id", snap.ID),
			g.Attr("data-reset-after", strconv.FormatInt(snap.ResetAfterMs, 10)),
			g.Attr("role", "status"),
			Icon("check-circle", "text-5xl md:text-6xl text-green-500 mx-auto mb-4", ""),
			H4(Class("text-xl md:text-2xl font-bold mb-2 text-white"), g.Text("Message Sent Successfully!")),
			P(Class("text-light/70"), g.Text("I'll get back to you within 24 hours.")),
		)
	}

	locked := snap.Locked
	emailInvalid := strings.Contains(strings.ToLower(snap.Error), "email")

	return Form(
		ID("contact-form"),
		Method("post"),
		Action("/contact"),
		Class("space-y-6"),
		g.Attr("data-state", snap.State.String()),
		g.Attr("data-session-id", snap.ID),
		Input(Type("hidden"), Name("session_id"), Value(snap.ID)),

		g.If(snap.Error != "", Div(
			ID("contact-error"),
			Class("p-4 rounded-lg bg-red-500/10 border border-red-500/30"),
			g.Attr("role", "alert"),
			Div(
				Class("flex items-center gap-3 text-red-400"),
				Icon("exclamation", "", ""),
				Span(Class("text-sm font-medium"), g.Text(snap.Error)),
			),
		)),

		g.If(!mailEnabled, P(
			Class("text-sm text-yellow-400"),
			g.Text("The contact form is currently unavailable. Please use the email address listed here."),
		)),

		Div(
			Class("grid grid-cols-1 sm:grid-cols-2 gap-6"),
			field("Your Name", true, textInput("name", "text", snap.Fields.Name, "John Doe", true, locked, false)),
			field("Email Address", true, textInput("email", "email", snap.Fields.Email, "john@example.com", true, locked, emailInvalid)),
		),
		field("Subject", false, textInput("subject", "text", snap.Fields.Subject, "Project Inquiry", false, locked, false)),
		field("Message", true, Textarea(
			Name("message"),
			g.Attr("rows", "5"),
			Placeholder("Tell me about your project..."),
			Class(inputClass+" resize-none mt-2"),
			Required(),
			g.If(locked, Disabled()),
			g.Text(snap.Fields.Message),
		)),

		Button(
			Type("submit"),
			Class("submit-button w-full px-6 py-4 text-white font-bold rounded-lg hover:shadow-lg transition-all duration-300 flex items-center justify-center gap-2 disabled:opacity-50 disabled:cursor-not-allowed"),
			g.If(locked || !mailEnabled, Disabled()),
			g.If(snap.State == contact.Submitting, g.Group([]g.Node{
				Div(Class("size-5 rounded-full animate-spin border-2 border-white/30 border-t-white")),
				g.Text("Sending..."),
			})),
			g.If(snap.State != contact.Submitting, g.Group([]g.Node{
				g.Text("Send Message"),
				Icon("paper-plane", "", ""),
			})),
		),

		P(Class("text-light/60 text-sm text-center"), g.Text("* Required fields")),
	)
}

func infoRow(icon, title, value string) g.Node {
	return Div(
		Class("flex items-center gap-4"),
		Div(Class("icon-badge size-12 rounded-full flex items-center justify-center"), Icon(icon, "text-xl text-accent", "")),
		Div(
			H4(Class("font-bold text-white"), g.Text(title)),
			P(Class("text-light/70"), g.Text(value)),
		),
	)
}

func ContactSection(profile models.Profile, snap contact.Snapshot, mailEnabled bool) g.Node {
	return Section(
		ID("contact"),
		Class("py-24 relative"),
		Div(
			Class("container mx-auto px-4 sm:px-6 lg:px-8"),
			SectionHeader("Get In", "Touch", "Let's discuss your project or potential opportunities"),

			Div(
				Class("grid grid-cols-1 lg:grid-cols-2 gap-12"),

				Div(
					Class("contact-item"),
					glassCard("p-6 md:p-8",
						H3(Class("text-2xl font-bold mb-6 gradient-text"), g.Text("Send Message")),
						ContactForm(snap, mailEnabled),
					),
				),

				Div(
					Class("space-y-8"),
					Div(
						Class("contact-item"),
						glassCard("p-6 md:p-8",
							H3(Class("text-2xl font-bold mb-6 gradient-text"), g.Text("Contact Info")),
							Div(
								Class("space-y-6"),
								infoRow("map-marker", "Location", profile.Location),
								infoRow("phone", "Phone", profile.Phone),
								infoRow("envelope", "Email", profile.Email),
							),
						),
					),

					Div(
						Class("contact-item"),
						glassCard("p-6 md:p-8",
							H3(Class("text-2xl font-bold mb-6 gradient-text"), g.Text("Connect With Me")),
							Div(
								Class("grid grid-cols-2 gap-4"),
								g.Group(g.Map(profile.Socials, func(s models.SocialLink) g.Node {
									return ExternalLink(s.URL,
										Class("social-link flex items-center gap-3 px-4 py-3 rounded-lg hover:scale-105 transition-all duration-300 text-white"),
										Icon(s.Icon, "text-xl", ""),
										Span(g.Text(s.Name)),
									)
								})),
							),
						),
					),

					Div(
						Class("contact-item"),
						glassCard("p-6 text-center",
							Div(
								Class("inline-flex items-center gap-2 mb-3"),
								Div(Class("size-3 bg-green-500 rounded-full animate-pulse")),
								Span(Class("font-semibold text-white"), g.Text("Available for Opportunities")),
							),
							P(Class("text-light/70 text-sm"), g.Text(profile.Availability)),
						),
					),
				),
			),
		),
	)
}
