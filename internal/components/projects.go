package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"skc.dev/internal/models"
)

const linkClass = "flex items-center gap-2 text-gray-400 hover:text-white transition-all duration-300 hover:scale-105"

func ProjectCard(project models.Project) g.Node {
	return Article(
		ID("project-"+project.ID),
		Class("project-card group relative overflow-hidden rounded-2xl card-hover glass-effect"),
		g.Attr("data-project-id", project.ID),

		Div(
			Class("h-52 md:h-60 relative overflow-hidden"),
			Div(Class("absolute inset-0 bg-gradient-to-br from-gray-900 to-black opacity-70")),
			Img(
				Src(project.Image),
				Alt(project.Title),
				Class("w-full h-full object-cover group-hover:scale-110 transition-transform duration-700"),
				g.Attr("loading", "lazy"),
				g.Attr("onerror", "this.onerror=null;this.src='"+FallbackImage+"'"),
			),
			Div(Class("absolute inset-0 bg-gradient-to-br "+project.Gradient+" opacity-30 group-hover:opacity-50 transition-opacity duration-500")),
			Div(
				Class("absolute bottom-4 left-4 flex flex-wrap gap-2"),
				g.Group(g.Map(project.TechStack, Pill)),
			),
			Div(
				Class("absolute top-4 right-4 flex items-center gap-2"),
				Div(Class("w-3 h-3 bg-green-500 rounded-full animate-pulse")),
				Span(Class("live-badge text-xs font-medium px-3 py-1 rounded-full"), g.Text("Live")),
			),
		),

		Div(
			Class("p-6 md:p-8"),
			H3(Class("text-xl md:text-2xl font-bold mb-4 text-light group-hover:text-blue-400 transition-colors duration-300"), g.Text(project.Title)),
			P(Class("text-gray-300 mb-6 text-sm md:text-base leading-relaxed"), g.Text(project.Description)),

			Div(
				Class("flex flex-wrap items-center justify-between pt-4 border-t border-gray-800 gap-4"),
				Div(
					Class("flex flex-wrap items-center gap-4 md:gap-6"),
					ExternalLink(project.GitHubURL,
						Class(linkClass),
						Icon("github", "text-xl", ""),
						Span(Class("text-sm font-medium"), g.Text("Code")),
					),
					ExternalLink(project.LiveURL,
						Class(linkClass),
						Icon("external-link", "text-lg", ""),
						Span(Class("text-sm font-medium"), g.Text("Live Demo")),
					),
				),
				Div(
					Class("opacity-0 group-hover:opacity-100 translate-x-4 group-hover:translate-x-0 transition-all duration-300"),
					Span(Class("text-sm font-semibold text-accent"), g.Text("Explore →")),
				),
			),
		),
	)
}

func Projects(projects []models.Project, profile models.Profile) g.Node {
	return Section(
		ID("projects"),
		Class("min-h-screen py-16 md:py-24 relative bg-dark"),
		Div(
			Class("container mx-auto px-4 sm:px-6 lg:px-8"),
			SectionHeader("Featured", "Projects", "Showcasing my expertise in building modern, performant web applications with cutting-edge technologies"),

			Div(
				Class("grid grid-cols-1 lg:grid-cols-2 gap-8 md:gap-10 max-w-7xl mx-auto"),
				g.Group(g.Map(projects, ProjectCard)),
			),

			g.If(codeProfile(profile) != "", Div(
				Class("text-center mt-16"),
				ExternalLink(codeProfile(profile),
					Class("inline-flex items-center gap-3 px-8 py-4 rounded-full font-semibold transition-all duration-300 hover:scale-105 card-hover glass-effect"),
					Icon("github", "text-xl", ""),
					g.Text("View All Projects"),
				),
			)),
		),
	)
}

// codeProfile returns the code hosting link from the owner's socials
func codeProfile(profile models.Profile) string {
	for _, s := range profile.Socials {
		if s.Icon == "github" {
			return s.URL
		}
	}
	return ""
}
