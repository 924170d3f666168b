package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"skc.dev/internal/models"
)

// NavScrollThreshold is the scroll offset in px past which the bar turns
// compact. Offsets equal to it are not scrolled.
const NavScrollThreshold = 50

func Logo(profile models.Profile) g.Node {
	return A(
		Href("#home"),
		Class("flex items-center space-x-2"),
		Div(
			Class("w-10 h-10 rounded-full bg-linear-to-br from-blue-600 to-cyan-400 flex items-center justify-center"),
			Span(Class("text-dark font-bold text-xl"), g.Text(profile.Initials)),
		),
		Span(Class("text-xl font-bold gradient-text"), g.Text(profile.Name)),
	)
}

// Navbar renders the fixed header at rest. The browser script flips
// data-scrolled once each time the page crosses data-scroll-threshold.
func Navbar(profile models.Profile, items []models.NavItem) g.Node {
	return Nav(
		ID("navbar"),
		Class("fixed top-0 left-0 right-0 z-50 transition-all duration-300 py-6"),
		g.Attr("data-scroll-threshold", strconv.Itoa(NavScrollThreshold)),
		g.Attr("data-scrolled", "false"),

		Div(
			Class("container mx-auto px-6"),
			Div(
				Class("flex items-center justify-between"),
				Logo(profile),

				Div(
					Class("hidden md:flex items-center space-x-8"),
					g.Group(g.Map(items, func(item models.NavItem) g.Node {
						return A(
							Href(item.Href),
							Class("nav-item text-light/80 hover:text-accent transition-colors duration-300 font-medium relative group"),
							g.Text(item.Name),
							Span(Class("absolute -bottom-1 left-0 w-0 h-0.5 bg-accent transition-all duration-300 group-hover:w-full")),
						)
					})),
					A(
						Href("#contact"),
						Class("nav-item px-6 py-2.5 bg-linear-to-r from-accent to-cyan-500 text-dark font-semibold rounded-full hover:shadow-lg hover:shadow-accent/30 transition-all duration-300"),
						g.Text("Hire Me"),
					),
				),

				Button(
					Type("button"),
					Class("md:hidden text-light focus:outline-none"),
					g.Attr("data-menu-toggle", ""),
					g.Attr("aria-controls", "mobile-menu"),
					g.Attr("aria-expanded", "false"),
					g.Attr("aria-label", "Toggle navigation"),
					Div(
						Class("w-6 h-6 flex flex-col justify-center items-center"),
						Span(Class("menu-bar block h-0.5 w-6 bg-current transform transition duration-300 -translate-y-1")),
						Span(Class("menu-bar block h-0.5 w-6 bg-current transition-all duration-300 opacity-100 mt-1")),
						Span(Class("menu-bar block h-0.5 w-6 bg-current transform transition duration-300 translate-y-1 mt-1")),
					),
				),
			),

			Div(
				ID("mobile-menu"),
				Class("hidden md:hidden mt-6 pb-4"),
				Div(
					Class("flex flex-col space-y-4"),
					g.Group(g.Map(items, func(item models.NavItem) g.Node {
						return A(
							Href(item.Href),
							Class("text-light/80 hover:text-accent transition-colors duration-300 py-2"),
							g.Attr("data-menu-close", ""),
							g.Text(item.Name),
						)
					})),
					A(
						Href("#contact"),
						Class("px-6 py-3 bg-linear-to-r from-accent to-cyan-500 text-dark font-semibold rounded-full text-center"),
						g.Attr("data-menu-close", ""),
						g.Text("Hire Me"),
					),
				),
			),
		),
	)
}
