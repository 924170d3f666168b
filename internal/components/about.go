package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"skc.dev/internal/models"
)

func contactLine(icon, text string) g.Node {
	return Div(
		Class("flex items-center gap-3"),
		Icon(icon, "text-accent", ""),
		Span(g.Text(text)),
	)
}

func About(about models.About, profile models.Profile) g.Node {
	return Section(
		ID("about"),
		Class("py-24 relative"),
		Div(
			Class("container mx-auto px-6"),
			SectionHeader("About", "Me", about.Tagline),

			Div(
				Class("about-content grid grid-cols-1 lg:grid-cols-2 gap-12 items-center"),

				Div(
					Class("space-y-8"),
					Div(
						Class("relative"),
						Div(
							Class("w-64 h-64 mx-auto rounded-2xl overflow-hidden border-4 border-accent/30"),
							Div(
								Class("w-full h-full bg-linear-to-br from-accent/20 to-cyan-500/20 flex items-center justify-center"),
								Div(Class("text-6xl"), g.Text("👩‍💻")),
							),
						),
						Div(
							Class("absolute -top-4 -right-4 w-16 h-16 sm:w-20 sm:h-20 rounded-full bg-linear-to-r from-blue-600 to-cyan-500 flex items-center justify-center animate-float"),
							Span(Class("text-2xl sm:text-3xl"), g.Text("🚀")),
						),
					),

					glassCard("p-6",
						H4(Class("text-xl font-bold mb-4 gradient-text"), g.Text("Contact Info")),
						Div(
							Class("space-y-3"),
							contactLine("map-marker", profile.Location),
							contactLine("phone", profile.Phone),
							contactLine("envelope", profile.Email),
							contactLine("graduation-cap", profile.Education),
						),
					),
				),

				Div(
					Class("space-y-6"),
					H3(Class("text-3xl font-bold mb-4"), g.Text(about.Headline)),
					g.Group(g.Map(about.Paragraphs, func(para string) g.Node {
						return P(Class("text-light/80 text-lg"), g.Text(para))
					})),

					Div(
						Class("pt-4"),
						H4(Class("text-xl font-bold mb-4 gradient-text"), g.Text("Tech Highlights")),
						Div(Class("flex flex-wrap gap-3"), g.Group(g.Map(about.Highlights, Pill))),
					),

					Div(
						Class("grid grid-cols-2 gap-4 pt-4"),
						g.Group(g.Map(about.Stats, func(s models.Stat) g.Node {
							return glassCard("p-4 text-center",
								Div(Class("text-2xl font-bold gradient-text mb-1"), g.Text(s.Value)),
								Div(Class("text-sm text-light/70"), g.Text(s.Label)),
							)
						})),
					),

					Div(
						Class("pt-6 flex gap-4"),
						g.If(profile.ResumePath != "", A(
							Href(profile.ResumePath),
							g.Attr("download", ""),
							Class("inline-flex items-center gap-2 px-6 py-3 bg-linear-to-r from-accent to-cyan-500 text-dark font-semibold rounded-full hover:shadow-lg hover:shadow-accent/30 transition-all duration-300"),
							g.Text("Download CV"),
							Span(Class("text-lg"), g.Text("📄")),
						)),
						A(
							Href("#projects"),
							Class("inline-flex items-center gap-2 px-6 py-3 border-2 border-accent/30 text-accent font-semibold rounded-full hover:bg-accent/10 transition-all duration-300"),
							g.Text("View Projects"),
						),
					),
				),
			),
		),
	)
}
