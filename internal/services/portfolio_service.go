package services

import (
	"fmt"

	"skc.dev/internal/animation"
	"skc.dev/internal/models"
)

// PortfolioService serves the page content and its animation registry
type PortfolioService struct {
	portfolio  *models.Portfolio
	animations []animation.Group
}

// NewPortfolioService validates the animation registry once so handlers can
// hand it out without re-checking
func NewPortfolioService(portfolio *models.Portfolio, groups []animation.Group) (*PortfolioService, error) {
	if err := animation.Validate(groups); err != nil {
		return nil, fmt.Errorf("invalid animation registry: %w", err)
	}
	return &PortfolioService{portfolio: portfolio, animations: groups}, nil
}

// Portfolio returns the full content aggregate
func (s *PortfolioService) Portfolio() *models.Portfolio {
	return s.portfolio
}

// Animations returns the entrance animation groups
func (s *PortfolioService) Animations() []animation.Group {
	return s.animations
}

// Projects returns a ProjectService over the same content
func (s *PortfolioService) Projects() *ProjectService {
	return NewProjectService(s.portfolio.Projects)
}
