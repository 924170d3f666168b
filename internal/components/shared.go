package components

import (
	"encoding/json"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"skc.dev/internal/animation"
)

// FallbackImage replaces project images that fail to load
const FallbackImage = "https://images.unsplash.com/photo-1551650975-87deedd944c3?w=800&auto=format&fit=crop"

var iconNames = map[string]string{
	"github":         "fa6-brands:github",
	"linkedin":       "fa6-brands:linkedin",
	"globe":          "fa6-solid:globe",
	"envelope":       "fa6-solid:envelope",
	"phone":          "fa6-solid:phone",
	"map-marker":     "fa6-solid:location-dot",
	"graduation-cap": "fa6-solid:graduation-cap",
	"briefcase":      "fa6-solid:briefcase",
	"chalkboard":     "fa6-solid:chalkboard-user",
	"star":           "fa6-solid:star",
	"certificate":    "fa6-solid:certificate",
	"external-link":  "fa6-solid:up-right-from-square",
	"arrow-down":     "fa6-solid:arrow-down",
	"paper-plane":    "fa6-solid:paper-plane",
	"check-circle":   "fa6-solid:circle-check",
	"exclamation":    "fa6-solid:circle-exclamation",
	"heart":          "fa6-solid:heart",
	"calendar":       "fa6-solid:calendar",
}

func iconName(token string) string {
	if name, ok := iconNames[token]; ok {
		return name
	}
	return "fa6-solid:" + token
}

// Icon renders an iconify glyph for a content icon token
func Icon(token, classes, ariaLabel string) g.Node {
	cls := strings.TrimSpace("iconify inline-block " + classes)

	if ariaLabel != "" {
		return Span(
			Class(cls),
			g.Attr("data-icon", iconName(token)),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class(cls),
		g.Attr("data-icon", iconName(token)),
		g.Attr("aria-hidden", "true"),
	)
}

// SectionHeader renders a two-tone section title with a tagline
func SectionHeader(plain, highlight, tagline string) g.Node {
	return Div(
		Class("text-center mb-16"),
		H2(
			Class("section-title inline-block fade-in"),
			g.Text(plain+" "),
			Span(Class("gradient-text"), g.Text(highlight)),
		),
		g.If(tagline != "", P(Class("text-xl text-light/60 max-w-3xl mx-auto fade-in mt-4"), g.Text(tagline))),
	)
}

func Pill(text string) g.Node {
	return Span(Class("skill-pill"), g.Text(text))
}

func ExternalLink(href string, children ...g.Node) g.Node {
	if strings.HasPrefix(href, "mailto:") {
		return A(Href(href), g.Group(children))
	}
	return A(Href(href), Target("_blank"), Rel("noopener noreferrer"), g.Group(children))
}

func glassCard(classes string, children ...g.Node) g.Node {
	return Div(Class("glass-effect rounded-2xl "+classes), g.Group(children))
}

// AnimationConfig embeds the animation groups for the browser script
func AnimationConfig(groups []animation.Group) g.Node {
	if len(groups) == 0 {
		return nil
	}
	// json.Marshal escapes <, > and & so the payload cannot close the script element
	b, err := json.Marshal(groups)
	if err != nil {
		return nil
	}
	return Script(Type("application/json"), ID("animation-config"), g.Raw(string(b)))
}
