package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio.dev/internal/dom"
	"portfolio.dev/internal/models"
)

func sampleProject() models.Project {
	return models.Project{
		ID:           3,
		Title:        "Scraper <v2>",
		Category:     models.CategoryPython,
		Description:  "Collects data",
		Analogy:      "Like an archivist",
		Code:         "print('<b>hi</b>')",
		Language:     "Python",
		Technologies: []string{"Python", "SQLite", "Requests"},
		Links:        models.Links{GitHub: "https://github.com/example/scraper"},
	}
}

func TestCategoryLookupFallback(t *testing.T) {
	testCases := []struct {
		category models.Category
		want     CategoryStyle
	}{
		{models.CategoryPython, CategoryStyle{Icon: "fab fa-python", Color: "#306998", Label: "Python"}},
		{models.CategoryWeb, CategoryStyle{Icon: "fas fa-globe", Color: "#e44d26", Label: "Web development"}},
		{models.CategoryAnalytics, CategoryStyle{Icon: "fas fa-chart-line", Color: "#10b981", Label: "Analytics"}},
		{"rust", DefaultStyle},
		{"", DefaultStyle},
	}

	for _, tc := range testCases {
		t.Run(string(tc.category), func(t *testing.T) {
			assert.Equal(t, tc.want, DefaultCategories.Lookup(tc.category))
		})
	}
	assert.False(t, DefaultCategories.Known("rust"))
}

func TestCardContents(t *testing.T) {
	r := New(DefaultCategories)
	card := r.Card(sampleProject())

	assert.True(t, dom.HasClass(card, "project-card"))
	assert.True(t, dom.HasClass(card, "python"))
	cat, _ := dom.GetAttr(card, "data-category")
	assert.Equal(t, "python", cat)

	titles := dom.ByClass(card, "project-title")
	require.Len(t, titles, 1)
	assert.Equal(t, "Scraper <v2>", dom.TextContent(titles[0]))
	assert.Equal(t, "Python", dom.TextContent(dom.ByClass(card, "project-category")[0]))

	var tags []string
	for _, n := range dom.ByClass(card, "tech-tag") {
		tags = append(tags, dom.TextContent(n))
	}
	assert.Equal(t, []string{"Python", "SQLite", "Requests"}, tags)

	assert.Len(t, dom.ByClass(card, "github-link"), 1)
	assert.Empty(t, dom.ByClass(card, "demo-link"))

	buttons := dom.ByClass(card, "view-details")
	require.Len(t, buttons, 1)
	id, _ := dom.GetAttr(buttons[0], "data-project-id")
	assert.Equal(t, "3", id)
	get, _ := dom.GetAttr(buttons[0], "hx-get")
	assert.Equal(t, "/projects/3/details", get)

	assert.NotContains(t, dom.String(card), "<v2>")
}

func TestCardLinkPresence(t *testing.T) {
	r := New(DefaultCategories)

	testCases := []struct {
		name       string
		links      models.Links
		wantGitHub int
		wantDemo   int
	}{
		{"none", models.Links{}, 0, 0},
		{"github only", models.Links{GitHub: "https://github.com/a/b"}, 1, 0},
		{"demo only", models.Links{Demo: "https://a.example"}, 0, 1},
		{"both", models.Links{GitHub: "https://github.com/a/b", Demo: "https://a.example"}, 1, 1},
		{"blank strings", models.Links{GitHub: "  ", Demo: ""}, 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := sampleProject()
			p.Links = tc.links

			card := r.Card(p)
			assert.Len(t, dom.ByClass(card, "github-link"), tc.wantGitHub)
			assert.Len(t, dom.ByClass(card, "demo-link"), tc.wantDemo)
			assert.Len(t, dom.ByClass(card, "view-details"), 1)

			body := dom.El("div", dom.Children(r.DetailBody(p)...))
			assert.Len(t, dom.ByClass(body, "github-link"), tc.wantGitHub)
			assert.Len(t, dom.ByClass(body, "demo-link"), tc.wantDemo)
		})
	}
}

func TestCardUnknownCategory(t *testing.T) {
	p := sampleProject()
	p.Category = "embedded systems"

	card := New(DefaultCategories).Card(p)
	assert.True(t, dom.HasClass(card, "embedded-systems"))
	assert.Equal(t, "Project", dom.TextContent(dom.ByClass(card, "project-category")[0]))

	image := dom.ByClass(card, "project-image")[0]
	assert.Equal(t, "#64748b", dom.GetStyle(image, "background-color"))
	assert.Len(t, dom.ByClass(card, "fa-code"), 1)
}

func TestDetailBody(t *testing.T) {
	p := sampleProject()
	body := dom.El("div", dom.Children(New(DefaultCategories).DetailBody(p)...))

	assert.Contains(t, dom.TextContent(body), "Like an archivist")
	assert.Len(t, dom.ByClass(body, "tech-tag"), 3)

	codes := dom.ByClass(body, "language-python")
	require.Len(t, codes, 1)
	assert.Equal(t, p.Code, dom.TextContent(codes[0]))
	assert.Contains(t, dom.String(body), "&lt;b&gt;hi&lt;/b&gt;")
}

func TestCodeLanguage(t *testing.T) {
	assert.Equal(t, "language-sql", CodeLanguage(models.Project{Language: "SQL"}))
	assert.Equal(t, "language-auto", CodeLanguage(models.Project{}))
}

func TestSkillScalesAreMonotonic(t *testing.T) {
	prevSize, prevOpacity := FontSize(0), Opacity(0)
	assert.Equal(t, 0.8, prevSize)
	assert.Equal(t, 0.7, prevOpacity)

	for level := 1; level <= 100; level++ {
		size, opacity := FontSize(level), Opacity(level)
		assert.GreaterOrEqual(t, size, prevSize, "font size at %d", level)
		assert.GreaterOrEqual(t, opacity, prevOpacity, "opacity at %d", level)
		assert.LessOrEqual(t, opacity, 1.0)
		prevSize, prevOpacity = size, opacity
	}
	assert.Equal(t, 1.8, FontSize(100))
}

func TestSkillTag(t *testing.T) {
	tag := New(DefaultCategories).SkillTag(models.Skill{Name: "Python", Level: 90, X: 50, Y: 25})

	assert.Equal(t, "Python", dom.TextContent(tag))
	assert.Equal(t, "50%", dom.GetStyle(tag, "left"))
	assert.Equal(t, "25%", dom.GetStyle(tag, "top"))
	assert.Equal(t, "1.7rem", dom.GetStyle(tag, "font-size"))
	assert.Equal(t, "1", dom.GetStyle(tag, "opacity"))

	low := New(DefaultCategories).SkillTag(models.Skill{Name: "1C", Level: 60})
	assert.Equal(t, "1", dom.GetStyle(low, "opacity"))
	assert.Equal(t, "1.4rem", dom.GetStyle(low, "font-size"))

	lower := New(DefaultCategories).SkillTag(models.Skill{Name: "x", Level: 20})
	assert.Equal(t, "0.8", dom.GetStyle(lower, "opacity"))
}

func TestSkillCloudOrder(t *testing.T) {
	cloud := New(DefaultCategories).SkillCloud([]models.Skill{{Name: "A"}, {Name: "B"}, {Name: "A"}})
	tags := dom.ByClass(cloud, "cloud-tag")
	require.Len(t, tags, 3)
	assert.Equal(t, "B", dom.TextContent(tags[1]))
}
