// Package report renders the pressure analysis as a styled terminal report:
// summary tables, a significance line, and the coaching recommendations.
package report

import (
	"github.com/charmbracelet/lipgloss"
)

// NFL-inspired palette: league navy and red, with semantic accents.
var (
	Navy   = lipgloss.Color("#013369")
	Red    = lipgloss.Color("#D50A0A")
	Muted  = lipgloss.Color("#8a8f98")
	Accent = lipgloss.Color("#8BC34A")
)

// Styles bundles the lipgloss styles used across the report.
type Styles struct {
	Title   lipgloss.Style
	Section lipgloss.Style
	Header  lipgloss.Style
	Body    lipgloss.Style
	Muted   lipgloss.Style
	Callout lipgloss.Style
}

// DefaultStyles returns the report theme. Lipgloss downgrades colors on
// dumb terminals, so plain output still reads fine when piped.
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(Navy),
		Section: lipgloss.NewStyle().Bold(true).Foreground(Red),
		Header:  lipgloss.NewStyle().Bold(true),
		Body:    lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle().Foreground(Muted),
		Callout: lipgloss.NewStyle().Foreground(Accent),
	}
}
