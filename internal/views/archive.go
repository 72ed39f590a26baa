package views

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"boulouiha.dev/internal/models"
)

const (
	// CompanyPlaceholder is shown when a record has no company.
	CompanyPlaceholder = "—"
	// TechSeparator goes between (never after) archive tech items.
	TechSeparator = " · "

	archiveRowRevealStep = 10
)

// Archive element handles.
const (
	ElementArchiveTitle Element = "archive-title"
	ElementArchiveTable Element = "archive-table"
)

var yearLayouts = []string{"2006", "2006-01", "2006-01-02", time.RFC3339}

// ArchiveRowElement returns the handle of the row at ordinal.
func ArchiveRowElement(ordinal int) Element {
	return Element(fmt.Sprintf("archive-row-%d", ordinal))
}

// ArchiveRow is one line of the archive table.
type ArchiveRow struct {
	Ordinal  int      `json:"-"`
	Element  Element  `json:"-"`
	Year     string   `json:"year"`
	Title    string   `json:"title"`
	Company  string   `json:"company"`
	Tech     []string `json:"tech"`
	TechLine string   `json:"tech_line"`
	Links    []Link   `json:"links"`
}

// BuildArchive derives a row for every project, in order.
func BuildArchive(projects []models.Project) []ArchiveRow {
	rows := make([]ArchiveRow, len(projects))
	for i, p := range projects {
		company := p.Company
		if strings.TrimSpace(company) == "" {
			company = CompanyPlaceholder
		}
		tech := p.ArchiveStack()
		rows[i] = ArchiveRow{
			Ordinal:  i,
			Element:  ArchiveRowElement(i),
			Year:     ParseYear(p.Date),
			Title:    p.Title,
			Company:  company,
			Tech:     tech,
			TechLine: JoinTech(tech),
			Links:    linksFor(p, archiveLinkOrder),
		}
	}
	return rows
}

// ParseYear extracts the year from date. Unparseable dates are returned as-is.
func ParseYear(date string) string {
	date = strings.TrimSpace(date)
	for _, layout := range yearLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return strconv.Itoa(t.Year())
		}
	}
	return date
}

// JoinTech joins items with TechSeparator.
func JoinTech(items []string) string {
	return strings.Join(items, TechSeparator)
}

// ArchiveView is the stateless archive table plus its one-time reveal.
type ArchiveView struct {
	rows    []ArchiveRow
	mounted bool
}

// NewArchiveView builds the archive over projects.
func NewArchiveView(projects []models.Project) *ArchiveView {
	return &ArchiveView{rows: BuildArchive(projects)}
}

// Rows returns every row.
func (a *ArchiveView) Rows() []ArchiveRow {
	return a.rows
}

// Mount registers the reveal animations once, unless reducedMotion.
func (a *ArchiveView) Mount(r Revealer, reducedMotion bool) {
	if a.mounted {
		return
	}
	a.mounted = true
	if reducedMotion {
		return
	}

	r = revealOrNop(r)
	r.Reveal(ElementArchiveTitle, models.DefaultRevealConfig())
	r.Reveal(ElementArchiveTable, models.NewRevealConfig(models.DefaultRevealDelay, 0))
	for _, row := range a.rows {
		r.Reveal(row.Element, models.NewRevealConfig(Stagger(row.Ordinal, archiveRowRevealStep), models.DefaultRevealViewFactor))
	}
}
