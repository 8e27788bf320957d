// Package page assembles the portfolio document and owns its interactive state.
package page

import (
	"fmt"
	"io"
	"net/url"
	"strconv"
	"sync"
	"time"

	"golang.org/x/net/html"

	"portfolio.dev/internal/catalog"
	"portfolio.dev/internal/dom"
	"portfolio.dev/internal/models"
	"portfolio.dev/internal/render"
)

// Element ids the page exposes
const (
	IDProjects      = "projects"
	IDGrid          = "projects-grid"
	IDSkillsCloud   = "skills-cloud"
	IDModal         = "project-modal"
	IDModalContent  = "modal-content"
	IDModalBody     = "modal-body"
	IDModalClose    = "modal-close"
	IDContactForm   = "contact-form"
	IDContactResult = "contact-result"
)

// Options configures a Page
type Options struct {
	Title   string
	Owner   string
	Tagline string

	// Filters lists the category buttons after "all"; empty means every catalog category
	Filters []models.Category

	Renderer    *render.Renderer
	Highlighter Highlighter
	Scheduler   Scheduler
	HideDelay   time.Duration
	ShowDelay   time.Duration
}

// Page is one rendered portfolio document plus the controllers that mutate it.
// All exported methods are safe for concurrent use; each runs to completion under the page lock.
type Page struct {
	mu sync.Mutex

	store    *catalog.Store
	doc      *html.Node
	projects *html.Node
	modalEl  *html.Node

	filter *FilterController
	modal  *ModalController
}

type noopHighlighter struct{}

func (noopHighlighter) HighlightAll(*html.Node) {}

// New builds the document for store
func New(store *catalog.Store, opts Options) *Page {
	if opts.Renderer == nil {
		opts.Renderer = render.New(render.DefaultCategories)
	}
	if opts.Highlighter == nil {
		opts.Highlighter = noopHighlighter{}
	}
	if opts.Scheduler == nil {
		opts.Scheduler = Immediate{}
	}
	if opts.HideDelay == 0 {
		opts.HideDelay = DefaultHideDelay
	}
	if opts.ShowDelay == 0 {
		opts.ShowDelay = DefaultShowDelay
	}
	if len(opts.Filters) == 0 {
		opts.Filters = store.Categories()
	}

	p := &Page{store: store}

	buttons := filterButtons(opts.Renderer, opts.Filters)
	grid := dom.El("div", dom.ID(IDGrid), dom.Class("projects-grid"))
	cards := make([]*html.Node, 0, store.Len())
	for _, proj := range store.Projects() {
		card := opts.Renderer.Card(proj)
		cards = append(cards, card)
		dom.Append(grid, card)
	}

	p.projects = dom.El("section", dom.ID(IDProjects), dom.Class("projects"),
		dom.Children(
			dom.El("h2", dom.Class("section-title"), dom.Text("Projects")),
			dom.El("div", dom.Class("filter-bar"), dom.Children(buttons...)),
			grid,
		),
	)
	p.filter = newFilterController(buttons, cards, opts.Scheduler, opts.HideDelay, opts.ShowDelay)

	p.modalEl, p.modal = buildModal(opts.Renderer, opts.Highlighter)

	p.doc = document(opts, p.projects,
		dom.El("section", dom.ID("skills"), dom.Class("skills"),
			dom.Children(
				dom.El("h2", dom.Class("section-title"), dom.Text("Skills")),
				opts.Renderer.SkillCloud(store.Skills()),
			),
		),
		contactSection(),
		p.modalEl,
	)

	opts.Highlighter.HighlightAll(p.doc)
	return p
}

func filterButtons(r *render.Renderer, filters []models.Category) []*html.Node {
	buttons := []*html.Node{filterButton(models.FilterAll, "All")}
	dom.AddClass(buttons[0], "active")

	for _, c := range filters {
		label := string(c)
		if r.Categories.Known(c) {
			label = r.Categories.Lookup(c).Label
		}
		buttons = append(buttons, filterButton(string(c), label))
	}
	return buttons
}

func filterButton(value, label string) *html.Node {
	return dom.El("button",
		dom.Class("filter-btn"),
		dom.Attr("type", "button"),
		dom.Data("filter", value),
		dom.Attr("hx-post", "/filter/"+url.PathEscape(value)),
		dom.Attr("hx-target", "#"+IDProjects),
		dom.Attr("hx-swap", "outerHTML"),
		dom.Text(label),
	)
}

func buildModal(r *render.Renderer, h Highlighter) (*html.Node, *ModalController) {
	closeCtl := dom.El("span",
		dom.ID(IDModalClose),
		dom.Class("modal-close"),
		dom.Attr("hx-post", "/modal/click?target="+IDModalClose),
		dom.Attr("hx-target", "#"+IDModal),
		dom.Attr("hx-swap", "outerHTML"),
		dom.Text("×"),
	)
	body := dom.El("div", dom.ID(IDModalBody), dom.Class("modal-body"))

	scrim := dom.El("div",
		dom.ID(IDModal),
		dom.Class("modal"),
		dom.Style("display", "none"),
		dom.Attr("hx-post", "/modal/click?target="+IDModal),
		dom.Attr("hx-trigger", "click target:#"+IDModal),
		dom.Attr("hx-target", "#"+IDModal),
		dom.Attr("hx-swap", "outerHTML"),
		dom.Children(
			dom.El("div", dom.ID(IDModalContent), dom.Class("modal-content"),
				dom.Children(closeCtl, body),
			),
		),
	)

	return scrim, &ModalController{
		scrim:       scrim,
		body:        body,
		closeCtl:    closeCtl,
		renderer:    r,
		highlighter: h,
	}
}

// Filter applies a filter value from one of the page's buttons
func (p *Page) Filter(value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.filter.Apply(value)
}

// ActiveFilter returns the selected filter value
func (p *Page) ActiveFilter() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.filter.Active()
}

// OpenProject shows the project with the given id in the modal.
// An unknown id leaves the modal as it was and returns catalog.ErrProjectNotFound.
func (p *Page) OpenProject(id int) error {
	proj, err := p.store.ByID(id)
	if err != nil {
		return fmt.Errorf("opening details: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.modal.Open(proj)
	return nil
}

// CloseModal hides the modal
func (p *Page) CloseModal() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.modal.Close()
}

// Click dispatches a pointer click on the element with the given id to the modal
func (p *Page) Click(targetID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	target := dom.FindByID(p.doc, targetID)
	if target == nil {
		return fmt.Errorf("%w: %q", ErrUnknownTarget, targetID)
	}
	p.modal.HandleClick(target)
	return nil
}

// ModalVisible reports whether the modal is shown
func (p *Page) ModalVisible() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.modal.Visible()
}

// CurrentProject returns the ID of the project last shown in the modal, or 0
func (p *Page) CurrentProject() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.modal.Current()
}

// VisibleCards returns the project IDs of the cards currently in layout
func (p *Page) VisibleCards() []int {
	p.mu.Lock()
	defer p.mu.Unlock()

	var ids []int
	for _, card := range p.filter.cards {
		if !Visible(card) {
			continue
		}
		v, _ := dom.GetAttr(card, "data-project-id")
		if id, err := strconv.Atoi(v); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

// Render writes the full document
func (p *Page) Render(w io.Writer) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return dom.Render(w, p.doc)
}

// RenderProjects writes the projects section (filter bar and grid)
func (p *Page) RenderProjects(w io.Writer) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return dom.Render(w, p.projects)
}

// RenderModal writes the modal element
func (p *Page) RenderModal(w io.Writer) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return dom.Render(w, p.modalEl)
}

// Inspect calls fn with the document under the page lock; fn must not keep references
func (p *Page) Inspect(fn func(doc *html.Node)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn(p.doc)
}
