package catalog

import (
	"errors"
	"fmt"

	"portfolio.dev/internal/models"
)

// Store is the read-only collection of projects and skills shown on the site.
// It is built once at startup and never mutated afterwards.
type Store struct {
	projects []models.Project
	skills   []models.Skill
	byID     map[int]int
}

// NewStore validates and copies the given records into a new Store
func NewStore(projects []models.Project, skills []models.Skill) (*Store, error) {
	s := &Store{
		projects: make([]models.Project, 0, len(projects)),
		skills:   append([]models.Skill(nil), skills...),
		byID:     make(map[int]int, len(projects)),
	}

	var errs []error
	for _, p := range projects {
		if p.ID <= 0 {
			errs = append(errs, fmt.Errorf("%w: %d (%q)", ErrInvalidProjectID, p.ID, p.Title))
			continue
		}
		if _, dup := s.byID[p.ID]; dup {
			errs = append(errs, fmt.Errorf("%w: %d", ErrDuplicateProjectID, p.ID))
			continue
		}
		if p.Category == models.FilterAll {
			errs = append(errs, fmt.Errorf("%w: project %d uses %q", ErrReservedCategory, p.ID, p.Category))
			continue
		}
		s.byID[p.ID] = len(s.projects)
		s.projects = append(s.projects, p.Clone())
	}

	for _, sk := range skills {
		if sk.Level < 0 || sk.Level > 100 {
			errs = append(errs, fmt.Errorf("%w: %s has %d", ErrSkillLevelRange, sk.Name, sk.Level))
		}
		if sk.X < 0 || sk.X > 100 || sk.Y < 0 || sk.Y > 100 {
			errs = append(errs, fmt.Errorf("%w: %s at (%g, %g)", ErrSkillPosition, sk.Name, sk.X, sk.Y))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return s, nil
}

// Projects returns all projects in catalog order
func (s *Store) Projects() []models.Project {
	out := make([]models.Project, len(s.projects))
	for i, p := range s.projects {
		out[i] = p.Clone()
	}
	return out
}

// Skills returns all skills in catalog order
func (s *Store) Skills() []models.Skill {
	return append([]models.Skill(nil), s.skills...)
}

// ByID returns a specific project by ID
func (s *Store) ByID(id int) (models.Project, error) {
	i, ok := s.byID[id]
	if !ok {
		return models.Project{}, fmt.Errorf("%w: %d", ErrProjectNotFound, id)
	}
	return s.projects[i].Clone(), nil
}

// Categories returns the distinct project categories in order of first appearance
func (s *Store) Categories() []models.Category {
	seen := make(map[models.Category]bool)
	var out []models.Category
	for _, p := range s.projects {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}

// Len returns the number of projects
func (s *Store) Len() int {
	return len(s.projects)
}
