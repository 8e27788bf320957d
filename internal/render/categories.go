package render

import "portfolio.dev/internal/models"

// CategoryStyle is how a category is presented on a card
type CategoryStyle struct {
	Icon  string // font awesome classes
	Color string
	Label string
}

// DefaultStyle is used for any category the table does not know
var DefaultStyle = CategoryStyle{Icon: "fas fa-code", Color: "#64748b", Label: "Project"}

// CategoryTable maps categories to styles with a constant fallback
type CategoryTable struct {
	styles   map[models.Category]CategoryStyle
	fallback CategoryStyle
}

// NewCategoryTable copies styles into a table that falls back to fallback
func NewCategoryTable(styles map[models.Category]CategoryStyle, fallback CategoryStyle) CategoryTable {
	t := CategoryTable{
		styles:   make(map[models.Category]CategoryStyle, len(styles)),
		fallback: fallback,
	}
	for k, v := range styles {
		t.styles[k] = v
	}
	return t
}

// Lookup returns the style for c, or the fallback
func (t CategoryTable) Lookup(c models.Category) CategoryStyle {
	if s, ok := t.styles[c]; ok {
		return s
	}
	return t.fallback
}

// Known reports whether c has its own entry
func (t CategoryTable) Known(c models.Category) bool {
	_, ok := t.styles[c]
	return ok
}

// DefaultCategories is the built-in lookup table
var DefaultCategories = NewCategoryTable(map[models.Category]CategoryStyle{
	models.CategoryPython:    {Icon: "fab fa-python", Color: "#306998", Label: "Python"},
	models.CategoryWeb:       {Icon: "fas fa-globe", Color: "#e44d26", Label: "Web development"},
	models.CategoryAnalytics: {Icon: "fas fa-chart-line", Color: "#10b981", Label: "Analytics"},
}, DefaultStyle)
