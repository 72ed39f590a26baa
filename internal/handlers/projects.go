package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"boulouiha.dev/internal/i18n"
	"boulouiha.dev/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
	bundle         *i18n.Bundle
	defaultLang    string
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService, bundle *i18n.Bundle, defaultLang string) *ProjectHandler {
	return &ProjectHandler{projectService: ps, bundle: bundle, defaultLang: defaultLang}
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.projectService.GetAll())
}

// GetProject handles GET /api/projects/{index}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	idx, ok := parseIndex(chi.URLParam(r, "index"))
	if !ok {
		respondError(w, http.StatusNotFound, h.notFoundMessage(r))
		return
	}

	project, err := h.projectService.GetByIndex(idx)
	if errors.Is(err, services.ErrProjectNotFound) {
		respondError(w, http.StatusNotFound, h.notFoundMessage(r))
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, project)
}

// ListArchive handles GET /api/archive
func (h *ProjectHandler) ListArchive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.projectService.Archive())
}

func (h *ProjectHandler) notFoundMessage(r *http.Request) string {
	if h.bundle == nil {
		return "Project not found"
	}
	tag := h.bundle.Resolve(h.defaultLang, r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"))
	return h.bundle.T(tag, "error.not_found")
}
