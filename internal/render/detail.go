package render

import (
	"strings"

	"golang.org/x/net/html"

	"portfolio.dev/internal/dom"
	"portfolio.dev/internal/models"
)

// CodeLanguage is the highlighter class for p's excerpt
func CodeLanguage(p models.Project) string {
	if lang := strings.TrimSpace(p.Language); lang != "" {
		return "language-" + strings.ToLower(lang)
	}
	return "language-auto"
}

// DetailBody renders the expanded view shown inside the modal
func (r *Renderer) DetailBody(p models.Project) []*html.Node {
	tech := techList(p.Technologies)
	dom.SetStyle(tech, "margin", "1.5rem 0")

	code := dom.El("pre", dom.Class("modal-code"),
		dom.Children(dom.El("code", dom.Class(CodeLanguage(p)), dom.Text(p.Code))),
	)

	return []*html.Node{
		dom.El("h2", dom.Class("modal-title"), dom.Text(p.Title)),
		dom.El("p", dom.Class("modal-analogy"),
			dom.Children(dom.El("strong", dom.Text("Analogy:"))),
			dom.Text(" "+p.Analogy),
		),
		dom.El("p", dom.Class("modal-description"), dom.Text(p.Description)),
		tech,
		dom.El("h3", dom.Text("Key code excerpt")),
		code,
		dom.El("div", dom.Class("project-links"),
			dom.Children(
				githubLink(p.Links, "btn-primary"),
				demoLink(p.Links, "btn-secondary", "Live demo"),
			),
		),
	}
}
