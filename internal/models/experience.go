package models

// Experience represents a single work history entry
type Experience struct {
	Role         string   `json:"role" yaml:"role"`
	Company      string   `json:"company" yaml:"company"`
	Period       string   `json:"period" yaml:"period"`
	Location     string   `json:"location" yaml:"location"`
	Icon         string   `json:"icon" yaml:"icon"`
	Achievements []string `json:"achievements" yaml:"achievements"`
	Skills       []string `json:"skills" yaml:"skills"`
}

// Education represents a degree or exam result
type Education struct {
	Degree      string   `json:"degree" yaml:"degree"`
	Institution string   `json:"institution" yaml:"institution"`
	Period      string   `json:"period" yaml:"period"`
	Location    string   `json:"location" yaml:"location"`
	Icon        string   `json:"icon" yaml:"icon"`
	Details     []string `json:"details" yaml:"details"`
	Highlights  []string `json:"highlights,omitempty" yaml:"highlights,omitempty"`
}

// Certification represents a certificate with an external proof link
type Certification struct {
	Title  string `json:"title" yaml:"title"`
	Issuer string `json:"issuer" yaml:"issuer"`
	Period string `json:"period" yaml:"period"`
	Link   string `json:"link" yaml:"link"`
}

// Achievement is a highlight tile shown under the timeline
type Achievement struct {
	Icon        string `json:"icon" yaml:"icon"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}
