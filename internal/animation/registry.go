package animation

const (
	easeOut  = "power3.out"
	easeBack = "back.out(1.7)"
	easeSine = "sine.inOut"
)

func scrollBand(selector, start, end string) *Trigger {
	t := &Trigger{
		Selector: selector,
		Start:    MustPosition(start),
		Actions:  PlayReverse,
	}
	if end != "" {
		e := MustPosition(end)
		t.End = &e
	}
	return t
}

// Page returns every animation group on the portfolio page, in document order
func Page() []Group {
	return []Group{
		{
			Name:     "fade-in",
			Targets:  ".fade-in",
			Method:   FromTo,
			Vars:     Vars{Opacity: f(0), Y: f(20)},
			ToVars:   &Vars{Opacity: f(1), Y: f(0)},
			Duration: 1,
			Stagger:  0.2,
		},
		{
			Name:     "nav-items",
			Targets:  ".nav-item",
			Method:   From,
			Vars:     Vars{Opacity: f(0), Y: f(-20)},
			Duration: 0.8,
			Stagger:  0.1,
			Delay:    1.5,
		},
		{
			Name:     "hero-title",
			Targets:  ".hero-title",
			Method:   From,
			Vars:     Vars{Opacity: f(0), Y: f(50)},
			Duration: 1.2,
			Ease:     easeOut,
		},
		{
			Name:     "hero-subtitle",
			Targets:  ".hero-subtitle",
			Method:   From,
			Vars:     Vars{Opacity: f(0), Y: f(30)},
			Duration: 1,
			Delay:    0.3,
			Ease:     easeOut,
		},
		{
			Name:     "hero-description",
			Targets:  ".hero-description",
			Method:   From,
			Vars:     Vars{Opacity: f(0), Y: f(30)},
			Duration: 1,
			Delay:    0.6,
			Ease:     easeOut,
		},
		{
			Name:     "hero-cta",
			Targets:  ".hero-cta",
			Method:   From,
			Vars:     Vars{Opacity: f(0), Y: f(30)},
			Duration: 1,
			Delay:    0.9,
			Stagger:  0.2,
			Ease:     easeOut,
		},
		{
			Name:     "hero-socials",
			Targets:  ".social-icon",
			Method:   From,
			Vars:     Vars{Opacity: f(0), Scale: f(0)},
			Duration: 0.8,
			Delay:    1.2,
			Stagger:  0.1,
			Ease:     easeBack,
		},
		{
			Name:     "scroll-arrow",
			Targets:  ".scroll-arrow",
			Method:   To,
			Vars:     Vars{Y: f(10)},
			Duration: 1.5,
			Repeat:   -1,
			Yoyo:     true,
			Ease:     easeSine,
		},
		{
			Name:     "about-content",
			Targets:  ".about-content",
			Method:   From,
			Vars:     Vars{Opacity: f(0), Y: f(50)},
			Duration: 1,
			Scroll:   scrollBand("#about", "top 80%", "bottom 20%"),
		},
		{
			Name:     "section-title",
			Targets:  ".section-title",
			Method:   From,
			Vars:     Vars{Opacity: f(0), Y: f(-30)},
			Duration: 1,
			Scroll:   scrollBand("#projects", "top 75%", ""),
		},
		{
			Name:       "project-cards",
			Targets:    ".project-card",
			Method:     From,
			Vars:       Vars{Opacity: f(0), Y: f(50)},
			Duration:   0.8,
			IndexDelay: 0.1,
			Scroll:     scrollBand("", "top 80%", "bottom 20%"),
		},
		{
			Name:     "skill-bars",
			Targets:  ".skill-bar-fill",
			Method:   From,
			Vars:     Vars{Width: f(0)},
			Duration: 1.5,
			Stagger:  0.1,
			Ease:     easeOut,
			Scroll:   scrollBand("#skills", "top 70%", "bottom 30%"),
		},
		{
			Name:     "skill-categories",
			Targets:  ".skill-category",
			Method:   From,
			Vars:     Vars{Opacity: f(0), Y: f(50)},
			Duration: 1,
			Stagger:  0.3,
			Scroll:   scrollBand("#skills", "top 80%", "bottom 20%"),
		},
		{
			Name:     "timeline-items",
			Targets:  ".timeline-item",
			Method:   From,
			Vars:     Vars{Opacity: f(0), X: f(-50)},
			Duration: 0,
			Stagger:  0.3,
			Scroll:   scrollBand("#experience", "top 80%", "bottom 20%"),
		},
		{
			Name:     "certification-items",
			Targets:  ".certification-item",
			Method:   From,
			Vars:     Vars{Opacity: f(0), Y: f(30)},
			Duration: 0.8,
			Stagger:  0.2,
			Scroll:   scrollBand("#experience", "top 70%", "bottom 20%"),
		},
		{
			Name:     "contact-items",
			Targets:  ".contact-item",
			Method:   From,
			Vars:     Vars{Opacity: f(0), Y: f(30)},
			Duration: 0.8,
			Stagger:  0.2,
			Scroll:   scrollBand("#contact", "top 80%", "bottom 20%"),
		},
	}
}
