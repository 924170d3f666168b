package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"skc.dev/internal/models"
)

func skillBar(skill models.Skill) g.Node {
	return Div(
		Class("space-y-2"),
		Div(
			Class("flex items-center justify-between"),
			Div(
				Class("flex items-center space-x-3"),
				Span(Class("text-xl"), g.Text(skill.Icon)),
				Span(Class("font-medium"), g.Text(skill.Name)),
			),
			Span(Class("text-accent font-bold"), g.Textf("%d%%", skill.Level)),
		),
		Div(
			Class("h-2 bg-white/10 rounded-full overflow-hidden"),
			Div(
				Class("skill-bar-fill h-full bg-linear-to-r from-accent to-cyan-500 rounded-full"),
				Style(fmt.Sprintf("width: %d%%", skill.Level)),
				g.Attr("role", "progressbar"),
				g.Attr("aria-valuenow", fmt.Sprint(skill.Level)),
				g.Attr("aria-valuemin", "0"),
				g.Attr("aria-valuemax", "100"),
				g.Attr("aria-label", skill.Name),
			),
		),
	)
}

func Skills(categories []models.SkillCategory, additional []string) g.Node {
	return Section(
		ID("skills"),
		Class("py-24 relative"),
		Div(
			Class("container mx-auto px-6"),
			SectionHeader("Technical", "Skills", "Proficient in modern web technologies and development practices"),

			Div(
				Class("grid grid-cols-1 lg:grid-cols-3 gap-8"),
				g.Group(g.Map(categories, func(cat models.SkillCategory) g.Node {
					return Div(
						Class("skill-category rounded-2xl glass-effect p-8"),
						H3(Class("text-2xl font-bold mb-8 text-center gradient-text"), g.Text(cat.Category)),
						Div(Class("space-y-6"), g.Group(g.Map(cat.Skills, skillBar))),
					)
				})),
			),

			g.If(len(additional) > 0, Div(
				Class("mt-12 skill-category"),
				Div(
					Class("rounded-2xl glass-effect p-8"),
					H4(Class("text-xl font-bold mb-6 text-center"), g.Text("Additional Skills & Certifications")),
					Div(
						Class("flex flex-wrap justify-center gap-4"),
						g.Group(g.Map(additional, func(s string) g.Node {
							return Div(
								Class("skill-pill px-4 py-2 rounded-full bg-white/5 border border-white/10 text-light/80 hover:border-accent/50 hover:text-accent transition-all duration-300"),
								g.Text(s),
							)
						})),
					),
				),
			)),
		),
	)
}
