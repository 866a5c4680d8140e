package cli

import (
	"time"

	"github.com/alexanderramin/reportcal/internal/calendar"
	"github.com/alexanderramin/reportcal/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds the services and settings used by CLI commands and the TUI.
type App struct {
	Reports   service.ReportService
	WeekStart time.Weekday
	Location  *time.Location

	// Interactive makes the bare command open the TUI instead of help.
	Interactive bool

	// Clock overrides time.Now in tests.
	Clock func() time.Time
}

func (a *App) now() time.Time {
	if a.Clock != nil {
		return a.Clock().In(a.loc())
	}
	return time.Now().In(a.loc())
}

func (a *App) loc() *time.Location {
	if a.Location == nil {
		return time.Local
	}
	return a.Location
}

// NewRootCmd creates the top-level "reportcal" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "reportcal",
		Short:         "Personal calendar of duty and leave reports",
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Interactive {
				return cmd.Help()
			}
			return runTUI(app)
		},
	}

	root.PersistentFlags().Var(newWeekdayValue(&app.WeekStart), "week-start",
		"First day of the week in month views (e.g. sunday, mon)")

	root.AddCommand(
		newMonthCmd(app),
		newGetCmd(app),
		newSetCmd(app),
		newClearCmd(app),
		newListCmd(app),
		newHistoryCmd(app),
		newStatusesCmd(app),
		newTUICmd(app),
	)

	return root
}

// weekdayValue adapts a time.Weekday to pflag.Value.
type weekdayValue struct {
	target *time.Weekday
}

var _ pflag.Value = (*weekdayValue)(nil)

func newWeekdayValue(target *time.Weekday) *weekdayValue {
	return &weekdayValue{target: target}
}

func (w *weekdayValue) String() string {
	if w.target == nil {
		return time.Sunday.String()
	}
	return w.target.String()
}

func (w *weekdayValue) Set(s string) error {
	d, err := calendar.ParseWeekStart(s)
	if err != nil {
		return err
	}
	*w.target = d
	return nil
}

func (w *weekdayValue) Type() string { return "weekday" }
