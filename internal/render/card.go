// Package render turns catalog records into element trees.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"portfolio.dev/internal/dom"
	"portfolio.dev/internal/models"
)

// Renderer builds cards, modal bodies and skill tags
type Renderer struct {
	Categories CategoryTable
}

// New creates a Renderer using the given category table
func New(categories CategoryTable) *Renderer {
	return &Renderer{Categories: categories}
}

// DetailsPath is the endpoint a card's details button requests
func DetailsPath(id int) string {
	return fmt.Sprintf("/projects/%d/details", id)
}

// Card renders the gallery card for p
func (r *Renderer) Card(p models.Project) *html.Node {
	style := r.Categories.Lookup(p.Category)

	card := dom.El("div",
		dom.Class("project-card"),
		dom.Data("category", string(p.Category)),
		dom.Data("project-id", strconv.Itoa(p.ID)),
	)
	if cls := categoryClass(p.Category); cls != "" {
		dom.AddClass(card, cls)
	}

	image := dom.El("div",
		dom.Class("project-image"),
		dom.Style("background-color", style.Color),
		dom.Children(dom.El("i", dom.Class(strings.Fields(style.Icon)...))),
	)

	details := dom.El("button",
		dom.Class("btn", "btn-secondary", "view-details"),
		dom.Data("project-id", strconv.Itoa(p.ID)),
		dom.Attr("type", "button"),
		dom.Attr("hx-get", DetailsPath(p.ID)),
		dom.Attr("hx-target", "#project-modal"),
		dom.Attr("hx-swap", "outerHTML"),
		dom.Text("Details"),
	)

	links := dom.El("div", dom.Class("project-links"),
		dom.Children(
			githubLink(p.Links, "btn-secondary"),
			demoLink(p.Links, "btn-primary", "Demo"),
			details,
		),
	)

	content := dom.El("div", dom.Class("project-content"),
		dom.Children(
			dom.El("h3", dom.Class("project-title"), dom.Text(p.Title)),
			dom.El("span", dom.Class("project-category"), dom.Text(style.Label)),
			dom.El("p", dom.Class("project-description"), dom.Text(p.Description)),
			techList(p.Technologies),
			links,
		),
	)

	dom.Append(card, image, content)
	return card
}

func techList(technologies []string) *html.Node {
	list := dom.El("div", dom.Class("project-tech"))
	for _, tech := range technologies {
		dom.Append(list, dom.El("span", dom.Class("tech-tag"), dom.Text(tech)))
	}
	return list
}

// githubLink returns nil when the project has no repository
func githubLink(l models.Links, variant string) *html.Node {
	if strings.TrimSpace(l.GitHub) == "" {
		return nil
	}
	return externalLink(l.GitHub, "GitHub", "btn", variant, "github-link")
}

func demoLink(l models.Links, variant, label string) *html.Node {
	if strings.TrimSpace(l.Demo) == "" {
		return nil
	}
	return externalLink(l.Demo, label, "btn", variant, "demo-link")
}

func externalLink(href, label string, classes ...string) *html.Node {
	return dom.El("a",
		dom.Attr("href", href),
		dom.Attr("target", "_blank"),
		dom.Attr("rel", "noopener noreferrer"),
		dom.Class(classes...),
		dom.Text(label),
	)
}

// categoryClass turns a category into something safe to use as a class name
func categoryClass(c models.Category) string {
	return strings.Join(strings.Fields(string(c)), "-")
}
