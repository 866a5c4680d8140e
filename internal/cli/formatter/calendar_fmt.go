package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/reportcal/internal/calendar"
	"github.com/alexanderramin/reportcal/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const cellWidth = 7

// MonthOptions controls highlighting in FormatMonth. Zero times disable
// the corresponding highlight.
type MonthOptions struct {
	Selected   time.Time
	HideLegend bool
}

var (
	styleSelected = lipgloss.NewStyle().Reverse(true)
	styleToday    = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true).Underline(true)
)

// FormatMonth renders a month grid with each reported day's short badge.
func FormatMonth(g calendar.Grid, reports domain.ReportMap, opts MonthOptions) string {
	width := cellWidth * 7
	title := time.Date(g.Year, g.Month, 1, 0, 0, 0, 0, time.UTC).Format("January 2006")

	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, StyleHeader.Render(title)))
	b.WriteString("\n")

	for _, h := range calendar.WeekdayHeaders(g.WeekStart) {
		b.WriteString(StyleDim.Render(fmt.Sprintf(" %-*s", cellWidth-1, h)))
	}
	b.WriteString("\n")

	var selected domain.DateKey
	if !opts.Selected.IsZero() {
		selected = domain.KeyFor(opts.Selected)
	}
	for _, week := range g.Weeks() {
		for _, c := range week {
			key := domain.KeyFor(c.Date)
			b.WriteString(renderCell(c, reports[key], key == selected))
		}
		b.WriteString("\n")
	}

	if !opts.HideLegend {
		b.WriteString("\n")
		b.WriteString(monthSummary(reports.InMonth(g.Year, g.Month)))
		b.WriteString("\n")
	}
	return b.String()
}

func renderCell(c calendar.Cell, s domain.Status, selected bool) string {
	day := fmt.Sprintf("%2d", c.Date.Day())
	badge := fmt.Sprintf("%-3s", s.Short())

	dayStyle := StyleFg
	badgeStyle := StatusColor(s)
	switch {
	case !c.InMonth:
		dayStyle, badgeStyle = StyleDim, StyleDim
	case c.IsToday:
		dayStyle = styleToday
	}

	text := dayStyle.Render(day) + " " + badgeStyle.Render(badge)
	if selected {
		text = styleSelected.Render(day + " " + badge)
	}
	return " " + text
}

// monthSummary lists each status with its count for the month, or a dim
// placeholder when nothing is reported.
func monthSummary(month domain.ReportMap) string {
	counts := make(map[domain.Status]int)
	for _, s := range month {
		counts[s]++
	}
	if len(counts) == 0 {
		return Dim("No reports this month.")
	}
	parts := make([]string, 0, len(domain.AllStatuses))
	for _, s := range domain.AllStatuses {
		parts = append(parts, fmt.Sprintf("%s %s %d",
			StatusColor(s).Render(s.Short()), Dim(s.Label()), counts[s]))
	}
	return strings.Join(parts, Dim("  ·  "))
}
