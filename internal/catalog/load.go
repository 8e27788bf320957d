package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"portfolio.dev/internal/models"
)

// File is the on-disk layout of a catalog data file
type File struct {
	Projects []models.Project `yaml:"projects"`
	Skills   []models.Skill   `yaml:"skills"`
}

// LoadFile reads a YAML catalog file and validates it
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}

	s, err := NewStore(f.Projects, f.Skills)
	if err != nil {
		return nil, fmt.Errorf("validating catalog %s: %w", path, err)
	}
	return s, nil
}

// Open returns the catalog at path, or the built-in one when path is empty
func Open(path string) (*Store, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
