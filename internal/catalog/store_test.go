package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio.dev/internal/models"
)

func TestDefaultCatalog(t *testing.T) {
	s := Default()

	projects := s.Projects()
	require.Len(t, projects, 4)

	seen := make(map[int]bool)
	for _, p := range projects {
		assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
	}

	var cats []models.Category
	for _, p := range projects {
		cats = append(cats, p.Category)
	}
	assert.Equal(t, []models.Category{"python", "web", "analytics", "python"}, cats)

	for _, sk := range s.Skills() {
		assert.GreaterOrEqual(t, sk.Level, 0)
		assert.LessOrEqual(t, sk.Level, 100)
	}
	assert.Len(t, s.Skills(), 13)
}

func TestNewStoreValidation(t *testing.T) {
	testCases := []struct {
		name     string
		projects []models.Project
		skills   []models.Skill
		wantErr  error
	}{
		{
			name:     "duplicate id",
			projects: []models.Project{{ID: 1, Title: "a"}, {ID: 1, Title: "b"}},
			wantErr:  ErrDuplicateProjectID,
		},
		{
			name:     "zero id",
			projects: []models.Project{{ID: 0, Title: "a"}},
			wantErr:  ErrInvalidProjectID,
		},
		{
			name:     "match-all category",
			projects: []models.Project{{ID: 3, Title: "a", Category: models.FilterAll}},
			wantErr:  ErrReservedCategory,
		},
		{
			name:    "level above range",
			skills:  []models.Skill{{Name: "Go", Level: 101, X: 10, Y: 10}},
			wantErr: ErrSkillLevelRange,
		},
		{
			name:    "negative level",
			skills:  []models.Skill{{Name: "Go", Level: -1, X: 10, Y: 10}},
			wantErr: ErrSkillLevelRange,
		},
		{
			name:    "position out of cloud",
			skills:  []models.Skill{{Name: "Go", Level: 50, X: 150, Y: 10}},
			wantErr: ErrSkillPosition,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewStore(tc.projects, tc.skills)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestNewStoreAcceptsUnknownCategoryAndDuplicateSkills(t *testing.T) {
	s, err := NewStore(
		[]models.Project{{ID: 7, Category: "rust"}},
		[]models.Skill{{Name: "Go", Level: 10}, {Name: "Go", Level: 10}},
	)
	require.NoError(t, err)
	assert.Equal(t, []models.Category{"rust"}, s.Categories())
	assert.Len(t, s.Skills(), 2)
}

func TestStoreIsReadOnly(t *testing.T) {
	input := []models.Project{{ID: 1, Technologies: []string{"Go", "SQL"}}}
	s, err := NewStore(input, nil)
	require.NoError(t, err)

	input[0].Technologies[0] = "mutated"
	got := s.Projects()
	assert.Equal(t, "Go", got[0].Technologies[0])

	got[0].Technologies[1] = "mutated"
	p, err := s.ByID(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "SQL"}, p.Technologies)
}

func TestByID(t *testing.T) {
	s := Default()

	p, err := s.ByID(2)
	require.NoError(t, err)
	assert.Equal(t, models.CategoryWeb, p.Category)

	_, err = s.ByID(99)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestCategoriesFirstAppearance(t *testing.T) {
	assert.Equal(t,
		[]models.Category{models.CategoryPython, models.CategoryWeb, models.CategoryAnalytics},
		Default().Categories())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yml")

	data := `projects:
  - id: 10
    title: CLI tool
    category: go
    description: A small tool
    technologies: [Go, Cobra]
    links:
      github: https://github.com/example/tool
skills:
  - name: Go
    level: 80
    x: 50
    y: 50
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	s, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())

	p, err := s.ByID(10)
	require.NoError(t, err)
	assert.Equal(t, "CLI tool", p.Title)
	assert.Equal(t, []string{"Go", "Cobra"}, p.Technologies)
	assert.Equal(t, "https://github.com/example/tool", p.Links.GitHub)
	assert.Empty(t, p.Links.Demo)
	assert.Equal(t, 80, s.Skills()[0].Level)
}

func TestLoadFileInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yml")
	require.NoError(t, os.WriteFile(path, []byte("projects:\n  - id: 1\n  - id: 1\n"), 0o644))

	_, err := LoadFile(path)
	assert.ErrorIs(t, err, ErrDuplicateProjectID)

	_, err = LoadFile(filepath.Join(dir, "missing.yml"))
	assert.Error(t, err)
}

func TestOpenEmptyPathUsesDefault(t *testing.T) {
	s, err := Open("")
	require.NoError(t, err)
	assert.Equal(t, 4, s.Len())
}
