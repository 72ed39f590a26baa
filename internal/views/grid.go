package views

import (
	"fmt"

	"boulouiha.dev/internal/models"
)

// GridLimit is the number of cards shown before "show more".
const GridLimit = 6

const (
	cardRevealStep     = 100
	cardTransitionStep = 100
)

// Grid element handles.
const (
	ElementProjectsTitle Element = "projects-title"
	ElementArchiveLink   Element = "projects-archive-link"
)

// CardElement returns the handle of the card at ordinal.
func CardElement(ordinal int) Element {
	return Element(fmt.Sprintf("project-card-%d", ordinal))
}

// Card is one rendered grid entry.
type Card struct {
	Ordinal           int
	Element           Element
	Project           models.Project
	Links             []Link
	RevealDelayMs     int
	TransitionDelayMs int
}

// ProjectGrid renders a bounded grid of project cards with an
// expand/collapse toggle. Selecting a card opens the detail modal.
type ProjectGrid struct {
	projects      []models.Project
	modal         *DetailModal
	showMore      bool
	mounted       bool
	reducedMotion bool
}

// NewProjectGrid creates a collapsed grid over projects.
func NewProjectGrid(projects []models.Project, modal *DetailModal) *ProjectGrid {
	if modal == nil {
		modal = NewDetailModal(nil)
	}
	return &ProjectGrid{projects: projects, modal: modal}
}

// Mount registers the reveal animations once. Under reduced motion nothing
// is registered and every card is visible immediately.
func (g *ProjectGrid) Mount(r Revealer, reducedMotion bool) {
	if g.mounted {
		return
	}
	g.mounted = true
	g.reducedMotion = reducedMotion
	if reducedMotion {
		return
	}

	r = revealOrNop(r)
	r.Reveal(ElementProjectsTitle, models.DefaultRevealConfig())
	r.Reveal(ElementArchiveLink, models.DefaultRevealConfig())
	for _, c := range g.Cards() {
		r.Reveal(c.Element, models.NewRevealConfig(c.RevealDelayMs, models.DefaultRevealViewFactor))
	}
}

// ReducedMotion reports the preference read at mount.
func (g *ProjectGrid) ReducedMotion() bool {
	return g.reducedMotion
}

// Modal returns the grid's detail modal.
func (g *ProjectGrid) Modal() *DetailModal {
	return g.modal
}

// ToggleShowMore flips between the limited and the full list.
func (g *ProjectGrid) ToggleShowMore() {
	g.showMore = !g.showMore
}

// ShowMore reports whether the full list is shown.
func (g *ProjectGrid) ShowMore() bool {
	return g.showMore
}

// SetShowMore sets the flag directly (used when state comes from a URL).
func (g *ProjectGrid) SetShowMore(v bool) {
	g.showMore = v
}

// HasMore reports whether there are records beyond GridLimit.
func (g *ProjectGrid) HasMore() bool {
	return len(g.projects) > GridLimit
}

// Total returns the number of records in the grid source.
func (g *ProjectGrid) Total() int {
	return len(g.projects)
}

// Cards returns the cards currently shown.
func (g *ProjectGrid) Cards() []Card {
	n := len(g.projects)
	if !g.showMore && n > GridLimit {
		n = GridLimit
	}

	cards := make([]Card, n)
	for i := 0; i < n; i++ {
		p := g.projects[i]
		cards[i] = Card{
			Ordinal: i,
			Element: CardElement(i),
			Project: p,
			Links:   linksFor(p, cardLinkOrder),
		}
		if !g.reducedMotion {
			cards[i].RevealDelayMs = Stagger(i, cardRevealStep)
			if i >= GridLimit {
				cards[i].TransitionDelayMs = Stagger(i-GridLimit, cardTransitionStep)
			}
		}
	}
	return cards
}

// SelectProject makes p the modal subject.
func (g *ProjectGrid) SelectProject(p models.Project) {
	g.modal.Open(p)
}

// Activate handles a click or key press on the card at ordinal. Enter,
// Space and click all select the card; Space also asks the caller to
// suppress the default scroll.
func (g *ProjectGrid) Activate(ordinal int, in Input) (handled, preventDefault bool) {
	if ordinal < 0 || ordinal >= len(g.Cards()) {
		return false, false
	}

	switch in := in.(type) {
	case Click:
	case Key:
		switch in.Name {
		case KeyEnter:
		case KeySpace:
			preventDefault = true
		default:
			return false, false
		}
	default:
		return false, false
	}

	g.SelectProject(g.projects[ordinal])
	return true, preventDefault
}
