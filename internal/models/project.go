package models

// Project represents a portfolio project card
type Project struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	TechStack   []string `json:"tech_stack" yaml:"tech_stack"`
	GitHubURL   string   `json:"github_url" yaml:"github_url"`
	LiveURL     string   `json:"live_url" yaml:"live_url"`
	Image       string   `json:"image" yaml:"image"`
	Gradient    string   `json:"gradient" yaml:"gradient"` // e.g. "from-blue-500/20 to-cyan-500/20"
}
