package render

import (
	"fmt"
	"html/template"
	"strconv"

	"golang.org/x/text/language"

	"boulouiha.dev/internal/content"
	"boulouiha.dev/internal/i18n"
	"boulouiha.dev/internal/models"
	"boulouiha.dev/internal/views"
)

// NoSelection means no modal is open.
const NoSelection = -1

// PageOptions is the per-request (per-mount) view state.
type PageOptions struct {
	Lang          language.Tag
	ShowMore      bool
	Selected      int
	ReducedMotion bool
	HTMX          bool
	Routes        Routes
}

// ModalData is the open modal as rendered.
type ModalData struct {
	Index         int
	Detail        views.ModalDetail
	ScrollLocked  bool
	CloseOnEscape bool
}

// Page is the data every template receives.
type Page struct {
	Lang          language.Tag
	Title         string
	Profile       models.Profile
	About         views.About
	Cards         []views.Card
	ShowMore      bool
	HasMore       bool
	Modal         *ModalData
	Archive       []views.ArchiveRow
	ReducedMotion bool
	HTMX          bool
	Routes        Routes

	bundle  *i18n.Bundle
	reveals *views.RecordingRevealer
}

func newPage(bundle *i18n.Bundle, store *content.Store, opts PageOptions) *Page {
	routes := opts.Routes
	if routes == nil {
		routes = ServerRoutes{}
	}
	return &Page{
		Lang:          opts.Lang,
		Profile:       store.Profile(),
		ReducedMotion: opts.ReducedMotion,
		HTMX:          opts.HTMX,
		Routes:        routes,
		bundle:        bundle,
		reveals:       &views.RecordingRevealer{},
	}
}

// IndexPage mounts the about section and the project grid. When
// opts.Selected names a record, the card is activated so the modal opens;
// records past the grid limit expand the grid first. Out-of-range
// selections render no modal.
func IndexPage(bundle *i18n.Bundle, store *content.Store, opts PageOptions) *Page {
	page := newPage(bundle, store, opts)
	page.Title = page.Profile.Name

	about := views.NewAboutView(page.Profile)
	about.Mount(page.reveals, opts.ReducedMotion)
	page.About = about.About

	doc := &HTMLDocument{}
	grid := views.NewProjectGrid(store.Projects(), views.NewDetailModal(doc))
	defer grid.Modal().Unmount()

	hidden := opts.Selected >= views.GridLimit && opts.Selected < store.Len()
	grid.SetShowMore(opts.ShowMore || hidden)
	grid.Mount(page.reveals, opts.ReducedMotion)

	if opts.Selected >= 0 {
		grid.Activate(opts.Selected, views.Click{})
	}

	page.Cards = grid.Cards()
	page.ShowMore = grid.ShowMore()
	page.HasMore = grid.HasMore()

	if detail, ok := grid.Modal().Detail(); ok {
		page.Modal = &ModalData{
			Index:         opts.Selected,
			Detail:        detail,
			ScrollLocked:  doc.ScrollLocked(),
			CloseOnEscape: doc.Listening(),
		}
	}
	return page
}

// ArchivePage mounts the archive table.
func ArchivePage(bundle *i18n.Bundle, store *content.Store, opts PageOptions) *Page {
	page := newPage(bundle, store, opts)
	page.Title = page.T("archive.title")

	archive := views.NewArchiveView(store.Projects())
	archive.Mount(page.reveals, opts.ReducedMotion)
	page.Archive = archive.Rows()
	return page
}

// T translates key in the page locale.
func (p *Page) T(key string, args ...any) string {
	if p.bundle == nil {
		return key
	}
	return p.bundle.T(p.Lang, key, args...)
}

// Reveal returns the data attributes the client reveal script reads for el,
// or nothing when el was not registered.
func (p *Page) Reveal(el views.Element) template.HTMLAttr {
	cfg, ok := p.reveals.Config(el)
	if !ok {
		return ""
	}
	return template.HTMLAttr(fmt.Sprintf(`data-reveal data-reveal-delay="%d" data-reveal-view-factor="%s"`,
		cfg.DelayMs, strconv.FormatFloat(cfg.ViewFactor, 'f', -1, 64)))
}

// RevealSettings returns the fixed animation settings the client script
// reads from <body>.
func (p *Page) RevealSettings() template.HTMLAttr {
	return template.HTMLAttr(fmt.Sprintf(`data-reveal-origin="%s" data-reveal-distance="%s" data-reveal-duration="%d" data-reveal-easing="%s"`,
		models.RevealOrigin, models.RevealDistance, models.RevealDuration, models.RevealEasing))
}

// RevealCount returns how many elements were registered for reveal.
func (p *Page) RevealCount() int {
	return len(p.reveals.Calls)
}

// LinkLabel is the accessible label of a card or archive icon link.
func (p *Page) LinkLabel(kind views.LinkKind) string {
	return p.T("link." + string(kind))
}

// ModalLinkLabel is the visible text of a modal link.
func (p *Page) ModalLinkLabel(kind views.LinkKind) string {
	return p.T("modal." + string(kind))
}

// NotLast reports whether i is not the final index of a list of length n.
func (p *Page) NotLast(i, n int) bool {
	return i < n-1
}
