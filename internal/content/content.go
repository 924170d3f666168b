// Package content loads the portfolio's static records.
//
// The default content is embedded in the binary. An override file can be
// supplied at startup; its format is chosen by extension (.json, .yaml, .yml).
package content

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"skc.dev/internal/models"
)

//go:embed data/portfolio.yaml
var defaultContent []byte

var (
	ErrNoProjects        = errors.New("content has no projects")
	ErrDuplicateProject  = errors.New("duplicate project id")
	ErrIncompleteProject = errors.New("project is missing required fields")
	ErrSkillOutOfRange   = errors.New("skill level out of range")
	ErrUnsupportedFormat = errors.New("unsupported content format")
)

// Default returns the embedded portfolio
func Default() (*models.Portfolio, error) {
	return decode(defaultContent, ".yaml")
}

// Load reads the portfolio from path, or the embedded default when path is empty
func Load(path string) (*models.Portfolio, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}

	return decode(data, strings.ToLower(filepath.Ext(path)))
}

func decode(data []byte, ext string) (*models.Portfolio, error) {
	var p models.Portfolio

	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("failed to parse content json: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("failed to parse content yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if err := Validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the invariants the renderers rely on
func Validate(p *models.Portfolio) error {
	if len(p.Projects) == 0 {
		return ErrNoProjects
	}

	seen := make(map[string]struct{}, len(p.Projects))
	for _, proj := range p.Projects {
		if proj.ID == "" || proj.Title == "" || proj.GitHubURL == "" || proj.LiveURL == "" {
			return fmt.Errorf("%w: %q", ErrIncompleteProject, proj.Title)
		}
		if _, dup := seen[proj.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateProject, proj.ID)
		}
		seen[proj.ID] = struct{}{}
	}

	for _, cat := range p.SkillCategories {
		for _, s := range cat.Skills {
			if s.Level < 0 || s.Level > 100 {
				return fmt.Errorf("%w: %s=%d", ErrSkillOutOfRange, s.Name, s.Level)
			}
		}
	}

	return nil
}
