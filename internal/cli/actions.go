package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/reportcal/internal/cli/formatter"
	"github.com/alexanderramin/reportcal/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

// setStatusCmd writes status for day. A persistence failure is flashed as
// an error, but the calendar still shows the new status because the
// in-memory change is kept.
func setStatusCmd(state *SharedState, day time.Time, status domain.Status) tea.Cmd {
	return func() tea.Msg {
		err := state.App.Reports.SetStatus(context.Background(), day, status)
		if err != nil {
			return reportChangedMsg{text: errorText(err)}
		}
		return reportChangedMsg{text: formatter.Success(fmt.Sprintf("%s: %s",
			formatter.LongDate(day), formatter.StatusBadge(status)))}
	}
}

func clearStatusCmd(state *SharedState, day time.Time) tea.Cmd {
	return func() tea.Msg {
		err := state.App.Reports.ClearStatus(context.Background(), day)
		if err != nil {
			return reportChangedMsg{text: errorText(err)}
		}
		return reportChangedMsg{text: formatter.Success(fmt.Sprintf("%s cleared", formatter.LongDate(day)))}
	}
}

func errorText(err error) string {
	return formatter.StyleRed.Render(fmt.Sprintf("Error: %v", err))
}
