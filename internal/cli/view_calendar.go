package cli

import (
	"strings"

	"github.com/alexanderramin/reportcal/internal/calendar"
	"github.com/alexanderramin/reportcal/internal/cli/formatter"
	"github.com/alexanderramin/reportcal/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// calendarView is the home view: a month grid with a day cursor.
type calendarView struct {
	state   *SharedState
	reports domain.ReportMap
}

func newCalendarView(state *SharedState) *calendarView {
	return &calendarView{state: state, reports: state.App.Reports.Reports()}
}

func (v *calendarView) ID() ViewID    { return ViewCalendar }
func (v *calendarView) Title() string { return v.state.Selected.Format("January 2006") }

func (v *calendarView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("left", "right", "up", "down"), key.WithHelp("←↑↓→", "move")),
		key.NewBinding(key.WithKeys("[", "]"), key.WithHelp("[ ]", "month")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "day")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "set")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
	}
}

func (v *calendarView) Init() tea.Cmd { return nil }

func (v *calendarView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.reports = v.state.App.Reports.Reports()
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			v.state.MoveDays(-1)
		case "right", "l":
			v.state.MoveDays(1)
		case "up", "k":
			v.state.MoveDays(-7)
		case "down", "j":
			v.state.MoveDays(7)
		case "[", "pgup":
			v.state.MoveMonths(-1)
		case "]", "pgdown":
			v.state.MoveMonths(1)
		case "t":
			v.state.JumpToday()
		case "enter":
			return v, pushView(newDayView(v.state, v.state.Selected))
		case "s":
			return v, statusPickerCmd(v.state, v.state.Selected)
		case "c":
			if v.reports[domain.KeyFor(v.state.Selected)] == domain.StatusNone {
				return v, flashCmd(formatter.Dim("Nothing reported on this day."))
			}
			return v, clearStatusCmd(v.state, v.state.Selected)
		}
	}
	return v, nil
}

func (v *calendarView) View() string {
	sel := v.state.Selected
	g := calendar.MonthGridAt(sel, v.state.App.WeekStart, v.state.App.now())

	var b strings.Builder
	b.WriteString("\n")
	for _, line := range strings.Split(strings.TrimRight(
		formatter.FormatMonth(g, v.reports, formatter.MonthOptions{Selected: sel}), "\n"), "\n") {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("\n  " + formatter.Bold(formatter.LongDate(sel)) + "  " +
		formatter.StatusBadge(v.reports[domain.KeyFor(sel)]) + "\n")
	return b.String()
}
