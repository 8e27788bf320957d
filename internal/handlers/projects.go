package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"portfolio.dev/internal/catalog"
	"portfolio.dev/internal/models"
)

// ProjectHandler handles the JSON catalog endpoints
type ProjectHandler struct {
	store *catalog.Store
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(store *catalog.Store) *ProjectHandler {
	return &ProjectHandler{store: store}
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, models.ProjectList{Projects: h.store.Projects()})
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	project, err := h.store.ByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}

	respondJSON(w, http.StatusOK, project)
}

// ListSkills handles GET /api/skills
func (h *ProjectHandler) ListSkills(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, models.SkillList{Skills: h.store.Skills()})
}

// parseID reads the {id} URL parameter, answering 400 when it is not a positive integer
func parseID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "Invalid project id")
		return 0, false
	}
	return id, true
}
