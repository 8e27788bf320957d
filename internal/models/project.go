package models

// Category classifies a project for filtering and badge lookup
type Category string

// Built-in categories
const (
	CategoryPython    Category = "python"
	CategoryWeb       Category = "web"
	CategoryAnalytics Category = "analytics"
)

// FilterAll is the filter value that matches every category
const FilterAll = "all"

// Project represents a portfolio project
type Project struct {
	ID           int      `json:"id" yaml:"id"`
	Title        string   `json:"title" yaml:"title"`
	Category     Category `json:"category" yaml:"category"`
	Description  string   `json:"description" yaml:"description"`
	Analogy      string   `json:"analogy" yaml:"analogy"`
	Code         string   `json:"code" yaml:"code"`
	Language     string   `json:"language,omitempty" yaml:"language,omitempty"`
	Technologies []string `json:"technologies" yaml:"technologies"`
	Links        Links    `json:"links" yaml:"links"`
}

// Links holds the optional external links of a project.
// An empty string means the link is absent.
type Links struct {
	GitHub string `json:"github,omitempty" yaml:"github,omitempty"`
	Demo   string `json:"demo,omitempty" yaml:"demo,omitempty"`
}

// Clone returns a copy that shares no slices with p
func (p Project) Clone() Project {
	c := p
	if p.Technologies != nil {
		c.Technologies = append([]string(nil), p.Technologies...)
	}
	return c
}

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []Project `json:"projects"`
}
