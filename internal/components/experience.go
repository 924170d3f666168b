package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"skc.dev/internal/models"
)

func timelineItem(icon, title, org, period, location string, body ...g.Node) g.Node {
	return Div(
		Class("timeline-item relative mb-10 ml-12"),
		Div(Class("absolute -left-12 top-0 size-6 rounded-full bg-linear-to-r from-accent to-cyan-500 border-4 border-dark")),
		glassCard("p-6 card-hover",
			Div(
				Class("flex items-start gap-4 mb-4"),
				Div(Class("icon-badge size-12 rounded-full flex items-center justify-center"), Icon(icon, "text-xl text-accent", "")),
				Div(
					Class("flex-1"),
					Div(
						Class("flex flex-col sm:flex-row sm:items-center justify-between gap-2"),
						H4(Class("text-xl font-bold text-white"), g.Text(title)),
						Span(Class("period-badge text-sm px-3 py-1 rounded-full"), g.Text(period)),
					),
					P(Class("text-accent font-medium"), g.Text(org)),
					g.If(location != "", Div(
						Class("flex items-center gap-2 text-sm text-light/60 mt-1"),
						Icon("map-marker", "text-xs", ""),
						g.Text(location),
					)),
				),
			),
			g.Group(body),
		),
	)
}

func bulletList(items []string) g.Node {
	return Ul(
		Class("space-y-3 mb-6"),
		g.Group(g.Map(items, func(item string) g.Node {
			return Li(
				Class("flex items-start gap-3"),
				Div(Class("size-2 rounded-full shrink-0 mt-2 bg-accent")),
				Span(Class("text-light/80"), g.Text(item)),
			)
		})),
	)
}

func tagRow(tags []string) g.Node {
	if len(tags) == 0 {
		return nil
	}
	return Div(
		Class("mt-6 pt-4 border-t border-white/10"),
		Div(Class("flex flex-wrap gap-2"), g.Group(g.Map(tags, Pill))),
	)
}

func Experience(experiences []models.Experience, education []models.Education, certs []models.Certification, achievements []models.Achievement) g.Node {
	return Section(
		ID("experience"),
		Class("py-24 relative"),
		Div(
			Class("container mx-auto px-4 sm:px-6 lg:px-8"),
			SectionHeader("Experience &", "Education", "Professional journey and academic background that shaped my skills"),

			Div(
				Class("grid grid-cols-1 lg:grid-cols-2 gap-12"),

				Div(
					H3(Class("text-2xl font-bold mb-8 gradient-text flex items-center gap-3"), Icon("briefcase", "text-xl", ""), g.Text("Professional Experience")),
					Div(
						Class("relative"),
						Div(Class("absolute left-6 top-0 bottom-0 w-0.5 bg-linear-to-b from-accent via-cyan-500 to-transparent")),
						g.Group(g.Map(experiences, func(exp models.Experience) g.Node {
							return timelineItem(exp.Icon, exp.Role, exp.Company, exp.Period, exp.Location,
								bulletList(exp.Achievements),
								tagRow(exp.Skills),
							)
						})),
					),
				),

				Div(
					H3(Class("text-2xl font-bold mb-8 gradient-text flex items-center gap-3"), Icon("graduation-cap", "text-xl", ""), g.Text("Education")),
					Div(
						Class("relative"),
						Div(Class("absolute left-6 top-0 bottom-0 w-0.5 bg-linear-to-b from-accent via-cyan-500 to-transparent")),
						g.Group(g.Map(education, func(edu models.Education) g.Node {
							return timelineItem(edu.Icon, edu.Degree, edu.Institution, edu.Period, edu.Location,
								bulletList(edu.Details),
								tagRow(edu.Highlights),
							)
						})),
					),

					g.If(len(certs) > 0, Div(
						Class("mt-12"),
						H3(Class("text-2xl font-bold mb-6 gradient-text flex items-center gap-3"), Icon("certificate", "text-xl", ""), g.Text("Certifications")),
						Div(
							Class("space-y-4"),
							g.Group(g.Map(certs, func(c models.Certification) g.Node {
								return glassCard("certification-item p-5 flex items-center justify-between gap-4",
									Div(
										H4(Class("font-bold text-white"), g.Text(c.Title)),
										P(Class("text-sm text-light/60"), g.Textf("%s · %s", c.Issuer, c.Period)),
									),
									g.If(c.Link != "", ExternalLink(c.Link,
										Class("text-accent text-sm font-semibold flex items-center gap-2"),
										g.Text("View"),
										Icon("external-link", "text-xs", ""),
									)),
								)
							})),
						),
					)),
				),
			),

			g.If(len(achievements) > 0, Div(
				Class("grid grid-cols-1 md:grid-cols-3 gap-6 mt-16"),
				g.Group(g.Map(achievements, func(a models.Achievement) g.Node {
					return glassCard("p-6 text-center card-hover",
						Div(Class("text-4xl mb-3"), g.Text(a.Icon)),
						H4(Class("text-lg font-bold text-white mb-2"), g.Text(a.Title)),
						P(Class("text-sm text-light/70"), g.Text(a.Description)),
					)
				})),
			)),
		),
	)
}
