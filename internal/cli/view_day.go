package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/reportcal/internal/cli/formatter"
	"github.com/alexanderramin/reportcal/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// menuAction is a single option in the day view's action menu.
type menuAction struct {
	label string
	key   string // single-key shortcut
	fn    func() tea.Cmd
}

type dayLoadedMsg struct {
	day    domain.DateKey
	events []*domain.ReportEvent
	err    error
}

// dayView shows one day's status and history with a small action menu.
type dayView struct {
	state   *SharedState
	day     time.Time
	status  domain.Status
	events  []*domain.ReportEvent
	loadErr error
	cursor  int
	actions []menuAction
}

func newDayView(state *SharedState, day time.Time) *dayView {
	v := &dayView{state: state, day: day}
	v.actions = []menuAction{
		{label: "Set status", key: "s", fn: v.actionSet},
		{label: "Clear status", key: "c", fn: v.actionClear},
	}
	return v
}

func (v *dayView) ID() ViewID    { return ViewDay }
func (v *dayView) Title() string { return domain.KeyFor(v.day).String() }

func (v *dayView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "set")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
	}
}

func (v *dayView) Init() tea.Cmd { return v.load() }

func (v *dayView) load() tea.Cmd {
	state, day := v.state, v.day
	return func() tea.Msg {
		events, err := state.App.Reports.DayHistory(context.Background(), day)
		return dayLoadedMsg{day: domain.KeyFor(day), events: events, err: err}
	}
}

func (v *dayView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		return v, v.load()
	case dayLoadedMsg:
		if msg.day != domain.KeyFor(v.day) {
			return v, nil
		}
		v.status = v.state.App.Reports.GetStatus(v.day)
		v.events, v.loadErr = msg.events, msg.err
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.actions)-1 {
				v.cursor++
			}
		case "enter":
			return v, v.actions[v.cursor].fn()
		default:
			for i, a := range v.actions {
				if msg.String() == a.key {
					v.cursor = i
					return v, a.fn()
				}
			}
		}
	}
	return v, nil
}

func (v *dayView) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(formatter.FormatDay(v.day, v.status, v.events, v.state.App.now()))
	b.WriteString("\n")
	if v.loadErr != nil {
		b.WriteString("  " + errorText(v.loadErr) + "\n")
	}
	b.WriteString("\n")

	for i, a := range v.actions {
		cursor := "  "
		style := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			style = formatter.StyleBold
		}
		b.WriteString(fmt.Sprintf("%s%s  %s\n", cursor, style.Render(a.label), formatter.Dim("["+a.key+"]")))
	}
	return b.String()
}

func (v *dayView) actionSet() tea.Cmd {
	return statusPickerCmd(v.state, v.day)
}

func (v *dayView) actionClear() tea.Cmd {
	if v.state.App.Reports.GetStatus(v.day) == domain.StatusNone {
		return flashCmd(formatter.Dim("Nothing reported on this day."))
	}
	return clearStatusCmd(v.state, v.day)
}
