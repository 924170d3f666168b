package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"skc.dev/internal/models"
)

func PageFooter(profile models.Profile, nav []models.NavItem, stack []models.TechBadge, year int) g.Node {
	return Footer(
		Class("py-12 border-t border-white/10 relative"),
		Div(
			Class("container mx-auto px-6"),
			Div(
				Class("flex flex-col md:flex-row items-center justify-between gap-8"),

				Div(
					Class("flex items-center gap-3"),
					Div(
						Class("w-10 h-10 rounded-full bg-linear-to-br from-blue-600 to-cyan-400 flex items-center justify-center"),
						Span(Class("text-dark font-bold"), g.Text(profile.Initials)),
					),
					Div(
						P(Class("font-bold gradient-text"), g.Text(profile.Name)),
						P(Class("text-light/60 text-sm"), g.Text(profile.Role)),
					),
				),

				Div(
					Class("text-center"),
					P(Class("text-light/60"), g.Textf("© %d %s. All rights reserved.", year, profile.Name)),
					P(
						Class("text-light/60 text-sm mt-1"),
						g.Text("Built with "),
						Icon("heart", "text-red-500 animate-pulse", "love"),
						g.Text(" using Go & Tailwind CSS"),
					),
				),

				Div(
					Class("flex gap-6"),
					g.Group(g.Map(nav, func(item models.NavItem) g.Node {
						return A(Href(item.Href), Class("text-light/60 hover:text-accent transition-colors duration-300"), g.Text(item.Name))
					})),
				),
			),

			g.If(len(stack) > 0, Div(
				Class("mt-8 pt-8 border-t border-white/5 text-center"),
				P(Class("text-light/60 mb-4"), g.Text("Tech Stack")),
				Div(
					Class("flex flex-wrap justify-center gap-6"),
					g.Group(g.Map(stack, func(b models.TechBadge) g.Node {
						return Div(
							Class("flex items-center gap-2"),
							Span(Class("text-accent font-bold"), g.Text(b.Short)),
							Span(Class("text-sm"), g.Text(b.Label)),
						)
					})),
				),
			)),
		),
	)
}
