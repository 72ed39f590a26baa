package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/language"

	"boulouiha.dev/internal/i18n"
	"boulouiha.dev/internal/views"
)

var archiveHeaderKeys = []string{
	"archive.year",
	"archive.col_title",
	"archive.company",
	"archive.tech",
	"archive.links",
}

// ArchiveHeaders returns the translated column headers of the archive.
func ArchiveHeaders(bundle *i18n.Bundle, tag language.Tag) []string {
	headers := make([]string, len(archiveHeaderKeys))
	for i, k := range archiveHeaderKeys {
		headers[i] = bundle.T(tag, k)
	}
	return headers
}

// ArchiveTable renders rows as a bordered terminal table.
func ArchiveTable(rows []views.ArchiveRow, headers []string) string {
	return renderArchive(rows, headers, -1)
}

func renderArchive(rows []views.ArchiveRow, headers []string, selected int) string {
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = []string{r.Year, r.Title, r.Company, r.TechLine, linkKinds(r.Links)}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleTableBorder).
		Headers(headers...).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return StyleTableHeader
			case row == selected:
				return StyleTableCell.Foreground(ColorPrimary).Bold(true)
			case col == 0 || col == 2:
				return StyleTableMuted
			}
			return StyleTableCell
		})
	return t.String()
}

func linkKinds(links []views.Link) string {
	kinds := make([]string, len(links))
	for i, l := range links {
		kinds[i] = string(l.Kind)
	}
	return strings.Join(kinds, ", ")
}
