// Package tui is the terminal front end: a bubbletea project browser and a
// lipgloss archive table.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Color palette using terminal colors for consistency
	ColorSuccess = lipgloss.AdaptiveColor{Light: "2", Dark: "2"} // Green
	ColorError   = lipgloss.AdaptiveColor{Light: "1", Dark: "1"} // Red
	ColorPrimary = lipgloss.AdaptiveColor{Light: "6", Dark: "14"} // Cyan, the site accent
	ColorMuted   = lipgloss.AdaptiveColor{Light: "8", Dark: "8"}  // Gray
	ColorAccent  = lipgloss.AdaptiveColor{Light: "4", Dark: "4"}  // Blue
	ColorDefault = lipgloss.AdaptiveColor{Light: "0", Dark: "7"}

	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StyleMuted   = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleBold    = lipgloss.NewStyle().Bold(true)

	StyleTitle     = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleTab       = lipgloss.NewStyle().Foreground(ColorMuted).Padding(0, 1)
	StyleActiveTab = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Underline(true).Padding(0, 1)

	StyleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)
	StyleCardFocused = StyleCard.BorderForeground(ColorPrimary)
	StyleCardTitle   = lipgloss.NewStyle().Bold(true).Foreground(ColorDefault)
	StyleTech        = lipgloss.NewStyle().Foreground(ColorAccent)

	StyleModal = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2)
	StyleTag = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(ColorPrimary).
			PaddingLeft(1).
			MarginRight(1)
	StyleLink = lipgloss.NewStyle().Foreground(ColorAccent).Underline(true)

	StyleTableHeader = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Padding(0, 1)
	StyleTableCell   = lipgloss.NewStyle().Padding(0, 1)
	StyleTableMuted  = StyleTableCell.Foreground(ColorMuted)
	StyleTableBorder = lipgloss.NewStyle().Foreground(ColorMuted)

	IconSuccess = "✔"
	IconError   = "✘"
	IconInfo    = "ℹ"
)

// FormatSuccess returns a success message with icon
func FormatSuccess(msg string) string {
	return StyleSuccess.Render(IconSuccess + " " + msg)
}

// FormatError returns an error message with icon
func FormatError(msg string) string {
	return StyleError.Render(IconError + " " + msg)
}

// FormatInfo returns an info message with icon
func FormatInfo(msg string) string {
	return StyleMuted.Render(IconInfo + " " + msg)
}

// FormatTitle returns a formatted title
func FormatTitle(title string) string {
	return StyleTitle.Render(title)
}

// FormatMuted returns muted/subtle text
func FormatMuted(text string) string {
	return StyleMuted.Render(text)
}
