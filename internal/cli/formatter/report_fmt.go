package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/reportcal/internal/domain"
)

// FormatReportList renders reported days in chronological order.
func FormatReportList(reports domain.ReportMap, loc *time.Location, now time.Time) string {
	if len(reports) == 0 {
		return Dim("No reported days.") + "\n"
	}
	rows := make([][]string, 0, len(reports))
	for _, k := range reports.Keys() {
		day, err := k.Time(loc)
		if err != nil {
			continue
		}
		rows = append(rows, []string{
			k.String(),
			day.Format("Mon"),
			StatusBadge(reports[k]),
			RelativeDayStyled(day, now),
		})
	}
	return RenderTable([]string{"DATE", "DAY", "STATUS", "WHEN"}, rows)
}

// FormatHistory renders journal events newest first as returned.
func FormatHistory(events []*domain.ReportEvent, now time.Time) string {
	if len(events) == 0 {
		return Dim("No history yet.") + "\n"
	}
	rows := make([][]string, 0, len(events))
	for _, e := range events {
		rows = append(rows, []string{
			TruncID(e.ID),
			HumanTimestamp(e.OccurredAt.In(now.Location()), now),
			actionLabel(e.Action),
			e.Date.String(),
			StatusBadge(e.Status),
		})
	}
	return RenderTable([]string{"ID", "WHEN", "ACTION", "DATE", "STATUS"}, rows)
}

func actionLabel(a domain.EventAction) string {
	if a == domain.ActionClear {
		return StyleRed.Render("clear")
	}
	return StyleGreen.Render("set")
}

// FormatDay renders one day's status and its change history in a box.
func FormatDay(day time.Time, status domain.Status, events []*domain.ReportEvent, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", Bold(LongDate(day)), RelativeDayStyled(day, now))
	fmt.Fprintf(&b, "Status  %s\n", StatusBadge(status))
	if len(events) > 0 {
		b.WriteString("\n")
		b.WriteString(Dim("Changes") + "\n")
		for _, e := range events {
			fmt.Fprintf(&b, "  %s  %s %s\n",
				Dim(e.OccurredAt.In(now.Location()).Format("Jan 2 15:04")),
				actionLabel(e.Action),
				StatusBadge(e.Status))
		}
	}
	return RenderBox("Day", strings.TrimRight(b.String(), "\n"))
}

// FormatStatuses lists the assignable statuses.
func FormatStatuses() string {
	rows := make([][]string, 0, len(domain.AllStatuses))
	for _, s := range domain.AllStatuses {
		rows = append(rows, []string{
			string(s),
			StatusColor(s).Render(s.Short()),
			s.Label(),
		})
	}
	return RenderTable([]string{"ID", "SHORT", "LABEL"}, rows)
}
