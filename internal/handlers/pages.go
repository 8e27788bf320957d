package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"portfolio.dev/internal/catalog"
	"portfolio.dev/internal/page"
	"portfolio.dev/internal/session"
)

// PageHandler serves the visitor's page and drives its controllers
type PageHandler struct {
	store *catalog.Store
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(store *catalog.Store) *PageHandler {
	return &PageHandler{store: store}
}

func visitorPage(w http.ResponseWriter, r *http.Request) *page.Page {
	p := session.FromContext(r.Context())
	if p == nil {
		respondError(w, http.StatusInternalServerError, "No session")
	}
	return p
}

// Index handles GET /
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	p := visitorPage(w, r)
	if p == nil {
		return
	}
	respondHTML(w, http.StatusOK, p.Render)
}

// Filter handles POST /filter/{value} and returns the projects section
func (h *PageHandler) Filter(w http.ResponseWriter, r *http.Request) {
	p := visitorPage(w, r)
	if p == nil {
		return
	}

	if err := p.Filter(filterValue(r)); err != nil {
		respondError(w, http.StatusNotFound, "Unknown filter")
		return
	}
	respondHTML(w, http.StatusOK, p.RenderProjects)
}

// filterValue returns the decoded {value} param. chi matches on RawPath when
// the path carries escapes like %2F, leaving the param still encoded.
func filterValue(r *http.Request) string {
	value := chi.URLParam(r, "value")
	if r.URL.RawPath == "" {
		return value
	}
	if v, err := url.PathUnescape(value); err == nil {
		return v
	}
	return value
}

// Details handles GET /projects/{id}/details and returns the opened modal
func (h *PageHandler) Details(w http.ResponseWriter, r *http.Request) {
	p := visitorPage(w, r)
	if p == nil {
		return
	}

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := p.OpenProject(id); err != nil {
		if errors.Is(err, catalog.ErrProjectNotFound) {
			slog.Warn("details requested for unknown project", "id", id)
			respondError(w, http.StatusNotFound, "Project not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondHTML(w, http.StatusOK, p.RenderModal)
}

// CloseModal handles POST /modal/close
func (h *PageHandler) CloseModal(w http.ResponseWriter, r *http.Request) {
	p := visitorPage(w, r)
	if p == nil {
		return
	}
	p.CloseModal()
	respondHTML(w, http.StatusOK, p.RenderModal)
}

// ClickModal handles POST /modal/click?target={element id}
func (h *PageHandler) ClickModal(w http.ResponseWriter, r *http.Request) {
	p := visitorPage(w, r)
	if p == nil {
		return
	}

	if err := p.Click(r.URL.Query().Get("target")); err != nil {
		respondError(w, http.StatusBadRequest, "Unknown click target")
		return
	}
	respondHTML(w, http.StatusOK, p.RenderModal)
}
