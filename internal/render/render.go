// Package render turns mounted views into HTML pages and fragments.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
)

//go:embed templates
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

var pageNames = []string{"index", "archive"}

// Renderer executes the embedded template set.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses the layout, partials and every page.
func New() (*Renderer, error) {
	base, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone templates for %s: %w", name, err)
		}
		if _, err := t.ParseFS(templatesFS, "templates/pages/"+name+".html"); err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Assets returns the static files served under /static.
func Assets() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("render: static assets missing: " + err.Error())
	}
	return sub
}

// Index writes the full home page.
func (r *Renderer) Index(w io.Writer, page *Page) error {
	return r.execute(w, "index", "layout", page)
}

// Archive writes the full archive page.
func (r *Renderer) Archive(w io.Writer, page *Page) error {
	return r.execute(w, "archive", "layout", page)
}

// Projects writes the project grid fragment.
func (r *Renderer) Projects(w io.Writer, page *Page) error {
	return r.execute(w, "index", "projects", page)
}

// Modal writes the modal fragment (empty when no project is open).
func (r *Renderer) Modal(w io.Writer, page *Page) error {
	return r.execute(w, "index", "modal", page)
}

func (r *Renderer) execute(w io.Writer, set, name string, page *Page) error {
	t, ok := r.pages[set]
	if !ok {
		return fmt.Errorf("unknown template set %q", set)
	}
	if err := t.ExecuteTemplate(w, name, page); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}
