package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"boulouiha.dev/internal/config"
	"boulouiha.dev/internal/content"
	"boulouiha.dev/internal/i18n"
	"boulouiha.dev/internal/render"
)

// PageHandler serves the HTML pages and the HTMX fragments. Every request
// mounts its own views from the shared store.
type PageHandler struct {
	store         *content.Store
	bundle        *i18n.Bundle
	renderer      *render.Renderer
	defaultLang   string
	reducedMotion bool
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(cfg *config.Config, store *content.Store, bundle *i18n.Bundle, renderer *render.Renderer) *PageHandler {
	h := &PageHandler{store: store, bundle: bundle, renderer: renderer}
	if cfg != nil {
		h.defaultLang = cfg.DefaultLang
		h.reducedMotion = cfg.ReducedMotion
	}
	return h
}

func (h *PageHandler) options(r *http.Request, selected int) render.PageOptions {
	override := r.URL.Query().Get("lang")
	tag := h.bundle.Resolve(h.defaultLang, override, r.Header.Get("Accept-Language"))

	routes := render.ServerRoutes{}
	if override != "" && h.bundle.Supported(tag) {
		routes.Lang = tag.String()
	}
	return render.PageOptions{
		Lang:          tag,
		ShowMore:      queryFlag(r, "more"),
		Selected:      selected,
		ReducedMotion: h.reducedMotion || PrefersReducedMotion(r),
		HTMX:          true,
		Routes:        routes,
	}
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	selected := render.NoSelection
	if idx, ok := parseIndex(r.URL.Query().Get("project")); ok {
		selected = idx
	}
	page := render.IndexPage(h.bundle, h.store, h.options(r, selected))
	h.write(w, http.StatusOK, func(buf *bytes.Buffer) error { return h.renderer.Index(buf, page) })
}

// Archive handles GET /archive
func (h *PageHandler) Archive(w http.ResponseWriter, r *http.Request) {
	page := render.ArchivePage(h.bundle, h.store, h.options(r, render.NoSelection))
	h.write(w, http.StatusOK, func(buf *bytes.Buffer) error { return h.renderer.Archive(buf, page) })
}

// Projects handles GET /projects, the grid fragment behind the show-more
// toggle.
func (h *PageHandler) Projects(w http.ResponseWriter, r *http.Request) {
	opts := h.options(r, render.NoSelection)
	if !IsHTMX(r) {
		http.Redirect(w, r, opts.Routes.Home(opts.ShowMore), http.StatusSeeOther)
		return
	}
	page := render.IndexPage(h.bundle, h.store, opts)
	h.write(w, http.StatusOK, func(buf *bytes.Buffer) error { return h.renderer.Projects(buf, page) })
}

// OpenProject handles GET /projects/{index}: the modal fragment for htmx,
// the full page with the modal open otherwise.
func (h *PageHandler) OpenProject(w http.ResponseWriter, r *http.Request) {
	idx, ok := parseIndex(chi.URLParam(r, "index"))
	if !ok || idx >= h.store.Len() {
		h.notFound(w, r)
		return
	}

	page := render.IndexPage(h.bundle, h.store, h.options(r, idx))
	if IsHTMX(r) {
		h.write(w, http.StatusOK, func(buf *bytes.Buffer) error { return h.renderer.Modal(buf, page) })
		return
	}
	h.write(w, http.StatusOK, func(buf *bytes.Buffer) error { return h.renderer.Index(buf, page) })
}

// CloseProject handles GET /projects/close, swapping the modal out.
func (h *PageHandler) CloseProject(w http.ResponseWriter, r *http.Request) {
	opts := h.options(r, render.NoSelection)
	if !IsHTMX(r) {
		http.Redirect(w, r, opts.Routes.Home(opts.ShowMore), http.StatusSeeOther)
		return
	}
	page := render.IndexPage(h.bundle, h.store, opts)
	h.write(w, http.StatusOK, func(buf *bytes.Buffer) error { return h.renderer.Modal(buf, page) })
}

func (h *PageHandler) notFound(w http.ResponseWriter, r *http.Request) {
	tag := h.bundle.Resolve(h.defaultLang, r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"))
	http.Error(w, h.bundle.T(tag, "error.not_found"), http.StatusNotFound)
}

// write renders into a buffer first so template errors become a clean 500.
func (h *PageHandler) write(w http.ResponseWriter, status int, fn func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		slog.Error("render page", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Debug("write page", "error", err)
	}
}

