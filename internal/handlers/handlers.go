package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"boulouiha.dev/internal/config"
	"boulouiha.dev/internal/content"
	"boulouiha.dev/internal/i18n"
	"boulouiha.dev/internal/middleware"
	"boulouiha.dev/internal/render"
	"boulouiha.dev/internal/services"
)

// Deps are the loaded pieces every handler shares. All are read-only after
// startup.
type Deps struct {
	Config   *config.Config
	Store    *content.Store
	Bundle   *i18n.Bundle
	Renderer *render.Renderer
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(d Deps) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)

	projectService := services.NewProjectService(d.Store)

	pageHandler := NewPageHandler(d.Config, d.Store, d.Bundle, d.Renderer)
	defaultLang := i18n.BaseLocale
	if d.Config != nil {
		defaultLang = d.Config.DefaultLang
	}
	projectHandler := NewProjectHandler(projectService, d.Bundle, defaultLang)

	// Pages and HTMX fragments
	r.Group(func(r chi.Router) {
		r.Use(clientHints)
		r.Get("/", pageHandler.Home)
		r.Get("/archive", pageHandler.Archive)
		r.Get("/projects", pageHandler.Projects)
		r.Get("/projects/close", pageHandler.CloseProject)
		r.Get("/projects/{index}", pageHandler.OpenProject)
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{index}", projectHandler.GetProject)
		r.Get("/archive", projectHandler.ListArchive)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Static files
	fileServer := http.FileServer(http.FS(render.Assets()))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encode json response", "error", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
