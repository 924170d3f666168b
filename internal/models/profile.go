package models

// Profile holds the owner's identity and contact details
type Profile struct {
	Name         string       `json:"name" yaml:"name"`
	Initials     string       `json:"initials" yaml:"initials"`
	Role         string       `json:"role" yaml:"role"`
	Location     string       `json:"location" yaml:"location"`
	Phone        string       `json:"phone" yaml:"phone"`
	Email        string       `json:"email" yaml:"email"`
	Education    string       `json:"education" yaml:"education"`
	Availability string       `json:"availability" yaml:"availability"`
	ResumePath   string       `json:"resume_path" yaml:"resume_path"`
	Socials      []SocialLink `json:"socials" yaml:"socials"`
}

// SocialLink is an outbound profile link
type SocialLink struct {
	Name string `json:"name" yaml:"name"`
	Icon string `json:"icon" yaml:"icon"`
	URL  string `json:"url" yaml:"url"`
}

// NavItem is an in-page anchor in the navigation bar
type NavItem struct {
	Name string `json:"name" yaml:"name"`
	Href string `json:"href" yaml:"href"`
}

// Hero holds the landing section copy
type Hero struct {
	Badge       string   `json:"badge" yaml:"badge"`
	Title       []string `json:"title" yaml:"title"` // first segment plain, the rest highlighted
	Subtitle    string   `json:"subtitle" yaml:"subtitle"`
	Description string   `json:"description" yaml:"description"`
}

// About holds the biography section copy
type About struct {
	Tagline    string   `json:"tagline" yaml:"tagline"`
	Headline   string   `json:"headline" yaml:"headline"`
	Paragraphs []string `json:"paragraphs" yaml:"paragraphs"`
	Highlights []string `json:"highlights" yaml:"highlights"`
	Stats      []Stat   `json:"stats" yaml:"stats"`
}

// Stat is a value/label pair shown in a quick-stats grid
type Stat struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Skill is a single proficiency bar
type Skill struct {
	Name  string `json:"name" yaml:"name"`
	Level int    `json:"level" yaml:"level"`
	Icon  string `json:"icon" yaml:"icon"`
}

// SkillCategory groups skills under a heading
type SkillCategory struct {
	Category string  `json:"category" yaml:"category"`
	Skills   []Skill `json:"skills" yaml:"skills"`
}

// TechBadge is a footer tech-stack entry
type TechBadge struct {
	Short string `json:"short" yaml:"short"`
	Label string `json:"label" yaml:"label"`
}

// Portfolio is the complete content of the site
type Portfolio struct {
	Profile          Profile         `json:"profile" yaml:"profile"`
	Nav              []NavItem       `json:"nav" yaml:"nav"`
	Hero             Hero            `json:"hero" yaml:"hero"`
	About            About           `json:"about" yaml:"about"`
	Projects         []Project       `json:"projects" yaml:"projects"`
	SkillCategories  []SkillCategory `json:"skill_categories" yaml:"skill_categories"`
	AdditionalSkills []string        `json:"additional_skills" yaml:"additional_skills"`
	Experiences      []Experience    `json:"experiences" yaml:"experiences"`
	Education        []Education     `json:"education" yaml:"education"`
	Certifications   []Certification `json:"certifications" yaml:"certifications"`
	Achievements     []Achievement   `json:"achievements" yaml:"achievements"`
	FooterStack      []TechBadge     `json:"footer_stack" yaml:"footer_stack"`
}
