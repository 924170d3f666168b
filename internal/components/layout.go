package components

import (
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"skc.dev/internal/animation"
	"skc.dev/internal/contact"
	"skc.dev/internal/models"
)

const themeTokens = `@theme {
  --color-dark: #0b1120;
  --color-light: #f1f5f9;
  --color-primary: #3b82f6;
  --color-accent: #38bdf8;
}`

type PageConfig struct {
	Title       string
	Description string
	OGImage     string
}

// PageData is everything the portfolio page renders from
type PageData struct {
	Portfolio   *models.Portfolio
	Contact     contact.Snapshot
	MailEnabled bool
	Animations  []animation.Group
	Now         time.Time
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "Portfolio"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Class("scroll-smooth"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				g.If(config.Description != "", Meta(Name("description"), Content(config.Description))),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				g.If(config.Description != "", Meta(g.Attr("property", "og:description"), Content(config.Description))),
				Meta(g.Attr("property", "og:type"), Content("website")),
				g.If(config.OGImage != "", Meta(g.Attr("property", "og:image"), Content(config.OGImage))),

				Script(Src("https://cdn.jsdelivr.net/npm/@tailwindcss/browser@4")),
				StyleEl(Type("text/tailwindcss"), g.Raw(themeTokens)),
				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
				Link(Rel("stylesheet"), Href("/static/css/site.css")),
			),
			Body(
				Class("bg-dark text-light antialiased"),
				g.Group(content),

				Script(Src("https://cdn.jsdelivr.net/npm/gsap@3/dist/gsap.min.js")),
				Script(Src("https://cdn.jsdelivr.net/npm/gsap@3/dist/ScrollTrigger.min.js")),
				Script(Src("https://cdn.jsdelivr.net/npm/gsap@3/dist/ScrollToPlugin.min.js")),
				Script(Src("/static/js/portfolio.js"), g.Attr("defer", "")),
			),
		),
	})
}

// Page renders the whole single-page portfolio
func Page(data PageData) g.Node {
	p := data.Portfolio
	now := data.Now
	if now.IsZero() {
		now = time.Now()
	}

	return Layout(
		PageConfig{
			Title:       p.Profile.Name + " | " + p.Profile.Role,
			Description: p.Hero.Subtitle,
		},
		Div(
			Class("relative"),
			BackgroundBlobs(),
			Navbar(p.Profile, p.Nav),
			Main(
				Hero(p.Hero, p.Profile),
				About(p.About, p.Profile),
				Projects(p.Projects, p.Profile),
				Skills(p.SkillCategories, p.AdditionalSkills),
				Experience(p.Experiences, p.Education, p.Certifications, p.Achievements),
				ContactSection(p.Profile, data.Contact, data.MailEnabled),
			),
			PageFooter(p.Profile, p.Nav, p.FooterStack, now.Year()),
		),
		AnimationConfig(data.Animations),
	)
}

func BackgroundBlobs() g.Node {
	blob := func(position, color, delay string) g.Node {
		return Div(Class("absolute " + position + " w-64 h-64 sm:w-96 sm:h-96 rounded-full mix-blend-multiply blur-3xl opacity-70 animate-blob " + delay + " " + color))
	}

	return Div(
		Class("fixed inset-0 -z-10 overflow-hidden"),
		g.Attr("aria-hidden", "true"),
		blob("top-1/4 left-1/4", "bg-blue-500/20", ""),
		blob("top-1/3 right-1/4", "bg-purple-500/20", "animation-delay-2000"),
		blob("-bottom-8 left-1/2", "bg-pink-500/20", "animation-delay-4000"),
	)
}
