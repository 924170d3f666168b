package services

import (
	"errors"
	"fmt"
	"strings"

	"skc.dev/internal/models"
)

var ErrProjectNotFound = errors.New("project not found")

// ProjectService handles project-related operations
type ProjectService struct {
	projects []models.Project
}

// NewProjectService creates a new ProjectService
func NewProjectService(projects []models.Project) *ProjectService {
	return &ProjectService{projects: projects}
}

// GetAll returns all projects in display order
func (s *ProjectService) GetAll() []models.Project {
	return s.projects
}

// GetByID returns a specific project by ID
func (s *ProjectService) GetByID(id string) (*models.Project, error) {
	for i := range s.projects {
		if s.projects[i].ID == id {
			return &s.projects[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
}

// ByTech returns the projects whose tech stack includes tech, ignoring case
func (s *ProjectService) ByTech(tech string) []models.Project {
	out := make([]models.Project, 0, len(s.projects))
	for _, p := range s.projects {
		for _, t := range p.TechStack {
			if strings.EqualFold(t, tech) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
