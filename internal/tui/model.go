package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"

	"boulouiha.dev/internal/content"
	"boulouiha.dev/internal/i18n"
	"boulouiha.dev/internal/models"
	"boulouiha.dev/internal/views"
)

// RevealInterval is the delay between two cards appearing.
const RevealInterval = 100 * time.Millisecond

const defaultWidth = 80

type tab int

const (
	tabProjects tab = iota
	tabArchive
)

type revealTickMsg struct{}

// Options configure the browser at mount.
type Options struct {
	Lang          language.Tag
	ReducedMotion bool
}

// Model is the terminal project browser.
type Model struct {
	profile models.Profile
	grid    *views.ProjectGrid
	doc     *TerminalDocument
	archive []views.ArchiveRow
	bundle  *i18n.Bundle
	lang    language.Tag

	tab           tab
	cursor        int
	archiveCursor int
	animate       bool
	revealed      int
	ticking       bool

	keys     keyMap
	help     help.Model
	width    int
	quitting bool
}

// New mounts the grid over store. Unless reduced motion is requested, the
// mounted cards appear one per RevealInterval.
func New(store *content.Store, bundle *i18n.Bundle, opts Options) *Model {
	doc := &TerminalDocument{}
	grid := views.NewProjectGrid(store.Projects(), views.NewDetailModal(doc))

	rec := &views.RecordingRevealer{}
	grid.Mount(rec, opts.ReducedMotion)

	return &Model{
		profile: store.Profile(),
		grid:    grid,
		doc:     doc,
		archive: views.BuildArchive(store.Projects()),
		bundle:  bundle,
		lang:    opts.Lang,
		animate: len(rec.Calls) > 0,
		keys:    keys,
		help:    help.New(),
		width:   defaultWidth,
	}
}

func (m *Model) Init() tea.Cmd {
	return m.startReveal()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case revealTickMsg:
		m.revealed++
		if m.revealed < len(m.grid.Cards()) {
			return m, revealTick()
		}
		m.ticking = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.grid.Modal().Unmount()
		m.quitting = true
		return m, tea.Quit
	}

	m.doc.Dispatch(domKey(msg.String()))
	if m.doc.ScrollLocked() {
		if key.Matches(msg, m.keys.Close) {
			m.grid.Modal().Click(views.TargetCloseButton)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Projects):
		m.tab = tabProjects
	case key.Matches(msg, m.keys.Archive):
		m.tab = tabArchive
	case key.Matches(msg, m.keys.Up):
		m.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.move(1)
	case m.tab == tabProjects && key.Matches(msg, m.keys.Activate) && m.cursor < m.visibleCards():
		m.grid.Activate(m.cursor, views.Key{Name: domKey(msg.String())})
	case m.tab == tabProjects && key.Matches(msg, m.keys.More):
		return m, m.toggleMore()
	}
	return m, nil
}

func (m *Model) move(delta int) {
	if m.tab == tabArchive {
		m.archiveCursor = clamp(m.archiveCursor+delta, 0, len(m.archive)-1)
		return
	}
	m.cursor = clamp(m.cursor+delta, 0, m.visibleCards()-1)
}

func (m *Model) toggleMore() tea.Cmd {
	if !m.grid.HasMore() {
		return nil
	}
	m.grid.ToggleShowMore()
	n := len(m.grid.Cards())
	m.cursor = clamp(m.cursor, 0, n-1)
	if m.revealed > n {
		m.revealed = n
	}
	return m.startReveal()
}

func (m *Model) startReveal() tea.Cmd {
	if !m.animate || m.ticking || m.revealed >= len(m.grid.Cards()) {
		return nil
	}
	m.ticking = true
	return revealTick()
}

func revealTick() tea.Cmd {
	return tea.Tick(RevealInterval, func(time.Time) tea.Msg { return revealTickMsg{} })
}

func (m *Model) visibleCards() int {
	n := len(m.grid.Cards())
	if m.animate && m.revealed < n {
		return m.revealed
	}
	return n
}

// Cursor returns the focused card ordinal.
func (m *Model) Cursor() int {
	return m.cursor
}

// Grid exposes the mounted grid.
func (m *Model) Grid() *views.ProjectGrid {
	return m.grid
}

// Document exposes the terminal document.
func (m *Model) Document() *TerminalDocument {
	return m.doc
}

func (m *Model) t(key string, args ...any) string {
	return m.bundle.T(m.lang, key, args...)
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(FormatTitle(m.profile.Name))
	b.WriteString("\n")
	b.WriteString(m.tabsView())
	b.WriteString("\n\n")

	switch {
	case m.grid.Modal().IsOpen():
		b.WriteString(m.modalView())
	case m.tab == tabArchive:
		b.WriteString(renderArchive(m.archive, ArchiveHeaders(m.bundle, m.lang), m.archiveCursor))
	default:
		b.WriteString(m.projectsView())
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) tabsView() string {
	projects, archive := StyleTab, StyleTab
	if m.tab == tabArchive {
		archive = StyleActiveTab
	} else {
		projects = StyleActiveTab
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		projects.Render(m.t("projects.heading")),
		archive.Render(m.t("archive.title")),
	)
}

func (m *Model) projectsView() string {
	cards := m.grid.Cards()[:m.visibleCards()]
	width := max(m.width-4, 20)

	parts := make([]string, 0, len(cards)+1)
	for _, c := range cards {
		style := StyleCard
		if c.Ordinal == m.cursor {
			style = StyleCardFocused
		}
		parts = append(parts, style.Width(width).Render(m.cardView(c)))
	}
	if m.grid.HasMore() {
		label := m.t("projects.more")
		if m.grid.ShowMore() {
			label = m.t("projects.less")
		}
		parts = append(parts, FormatMuted(fmt.Sprintf("m  %s (%d/%d)", label, len(m.grid.Cards()), m.grid.Total())))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) cardView(c views.Card) string {
	lines := []string{StyleCardTitle.Render(c.Project.Title)}
	if c.Project.ShortDescription != "" {
		lines = append(lines, StyleMuted.Render(strings.TrimSpace(c.Project.ShortDescription)))
	}
	if len(c.Project.Tech) > 0 {
		lines = append(lines, StyleTech.Render(strings.Join(c.Project.Tech, "  ")))
	}
	if len(c.Links) > 0 {
		labels := make([]string, len(c.Links))
		for i, l := range c.Links {
			labels[i] = m.t("link." + string(l.Kind))
		}
		lines = append(lines, FormatMuted(strings.Join(labels, " | ")))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) modalView() string {
	d, _ := m.grid.Modal().Detail()
	width := max(m.width-8, 20)

	tags := make([]string, len(d.Tech))
	for i, t := range d.Tech {
		tags[i] = StyleTag.Render(t)
	}

	lines := []string{
		StyleTitle.Render(d.Title),
		lipgloss.JoinHorizontal(lipgloss.Top, tags...),
		"",
		lipgloss.NewStyle().Width(width).Render(strings.TrimSpace(d.Description)),
	}
	if len(d.Links) > 0 {
		lines = append(lines, "")
		for _, l := range d.Links {
			lines = append(lines, fmt.Sprintf("%s  %s", m.t("modal."+string(l.Kind)), StyleLink.Render(l.URL)))
		}
	}
	lines = append(lines, "", FormatMuted("x  "+m.t("modal.close")))
	return StyleModal.Width(width + 4).Render(strings.Join(lines, "\n"))
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
