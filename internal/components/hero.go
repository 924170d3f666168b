package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"skc.dev/internal/models"
)

// heroTitle renders the first segment plain and the rest highlighted; a lone
// "&" gets its own line
func heroTitle(parts []string) g.Node {
	nodes := make([]g.Node, 0, len(parts))
	for i, part := range parts {
		switch {
		case i == 0:
			nodes = append(nodes, g.Text(part+" "))
		case part == "&":
			nodes = append(nodes, Span(Class("block text-4xl md:text-6xl mt-4"), g.Text(part)))
		default:
			nodes = append(nodes, Span(Class("gradient-text"), g.Text(part)))
		}
	}
	return H1(Class("hero-title text-5xl md:text-7xl lg:text-8xl font-bold mb-6"), g.Group(nodes))
}

func Hero(hero models.Hero, profile models.Profile) g.Node {
	return Section(
		ID("home"),
		Class("min-h-screen flex items-center justify-center relative pt-20"),
		Div(
			Class("container mx-auto px-6 text-center"),
			Div(
				Class("absolute inset-0 opacity-5"),
				Div(Class("absolute top-1/4 left-1/4 w-64 h-64 border border-accent/30 rounded-full")),
				Div(Class("absolute bottom-1/4 right-1/4 w-96 h-96 border border-accent/20 rounded-full")),
			),

			Div(
				Class("relative z-10"),
				Div(
					Class("inline-flex items-center gap-2 px-4 py-2 rounded-full glass-effect mb-8"),
					Div(Class("w-2 h-2 bg-accent rounded-full animate-pulse")),
					Span(Class("text-sm"), g.Text(hero.Badge)),
				),

				heroTitle(hero.Title),
				H2(Class("hero-subtitle text-xl md:text-2xl text-light/70 mb-8"), g.Text(hero.Subtitle)),
				P(Class("hero-description text-lg text-light/60 max-w-3xl mx-auto mb-12"), g.Text(hero.Description)),

				Div(
					Class("hero-cta flex flex-col sm:flex-row gap-4 justify-center items-center mb-16"),
					A(
						Href("#projects"),
						Class("px-8 py-4 bg-linear-to-r from-accent to-cyan-500 text-dark font-bold rounded-full text-lg hover:shadow-2xl hover:shadow-accent/30 transition-all duration-300 transform hover:-translate-y-1"),
						g.Text("View Projects"),
					),
					A(
						Href("#contact"),
						Class("px-8 py-4 border-2 border-accent/30 text-accent font-bold rounded-full text-lg hover:bg-accent/10 transition-all duration-300"),
						g.Text("Get In Touch"),
					),
				),

				Div(
					Class("flex justify-center space-x-6 mb-12"),
					g.Group(g.Map(heroSocials(profile.Socials), func(s models.SocialLink) g.Node {
						return ExternalLink(s.URL,
							Class("social-icon w-14 h-14 rounded-full glass-effect flex items-center justify-center hover:bg-accent/20 hover:scale-110 transition-all duration-300 group"),
							g.Attr("aria-label", s.Name),
							Icon(s.Icon, "text-2xl text-light/80 group-hover:text-accent", ""),
						)
					})),
				),

				Div(
					Class("scroll-arrow absolute bottom-8 left-1/2 transform -translate-x-1/2"),
					A(
						Href("#about"),
						Class("flex flex-col items-center"),
						Span(Class("text-sm text-light/50 mb-2"), g.Text("Scroll")),
						Icon("arrow-down", "text-xl text-accent animate-bounce", ""),
					),
				),
			),
		),
	)
}

// heroSocials skips the external portfolio link, which only appears in the contact section
func heroSocials(links []models.SocialLink) []models.SocialLink {
	out := make([]models.SocialLink, 0, len(links))
	for _, l := range links {
		if l.Icon != "globe" {
			out = append(out, l)
		}
	}
	return out
}
