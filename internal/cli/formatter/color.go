package formatter

import (
	"github.com/alexanderramin/reportcal/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusColor returns the style used for a status everywhere it is shown.
func StatusColor(s domain.Status) lipgloss.Style {
	switch s {
	case domain.StatusAwayFromUnit:
		return StyleBlue
	case domain.StatusAfterShift:
		return StyleYellow
	case domain.StatusAnnualLeave:
		return StyleGreen
	default:
		return StyleDim
	}
}

// StatusBadge renders "● Label", or a dim "○ none" for StatusNone.
func StatusBadge(s domain.Status) string {
	if s == domain.StatusNone {
		return StyleDim.Render("○ none")
	}
	return StatusColor(s).Render("● " + s.Label())
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// Success prefixes msg with a green check mark.
func Success(msg string) string {
	return StyleGreen.Render("✔") + " " + msg
}
