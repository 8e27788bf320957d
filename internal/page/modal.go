package page

import (
	"golang.org/x/net/html"

	"portfolio.dev/internal/dom"
	"portfolio.dev/internal/models"
	"portfolio.dev/internal/render"
)

// Highlighter is invoked after code excerpts are inserted into the tree
type Highlighter interface {
	HighlightAll(root *html.Node)
}

// ModalController shows one project in the detail overlay
type ModalController struct {
	scrim       *html.Node
	body        *html.Node
	closeCtl    *html.Node
	renderer    *render.Renderer
	highlighter Highlighter
	visible     bool
	current     int
}

// Open replaces the modal content with p and shows the modal.
// The caller must pass a project taken from the catalog.
func (m *ModalController) Open(p models.Project) {
	dom.Clear(m.body)
	dom.Append(m.body, m.renderer.DetailBody(p)...)
	m.highlighter.HighlightAll(m.body)

	dom.SetStyle(m.scrim, "display", "block")
	m.visible = true
	m.current = p.ID
}

// Close hides the modal; its content stays until the next Open
func (m *ModalController) Close() {
	dom.SetStyle(m.scrim, "display", "none")
	m.visible = false
}

// HandleClick closes the modal when target is the scrim itself or the close control.
// Clicks anywhere inside the content are ignored.
func (m *ModalController) HandleClick(target *html.Node) {
	if !m.visible || target == nil {
		return
	}
	if target == m.scrim || dom.Contains(m.closeCtl, target) {
		m.Close()
	}
}

// Visible reports whether the modal is shown
func (m *ModalController) Visible() bool {
	return m.visible
}

// Current returns the ID of the last opened project, or 0
func (m *ModalController) Current() int {
	return m.current
}
