package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/reportcal/internal/calendar"
	"github.com/alexanderramin/reportcal/internal/cli/formatter"
	"github.com/alexanderramin/reportcal/internal/domain"
	"github.com/spf13/cobra"
)

func newMonthCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "month [YYYY-MM]",
		Short: "Show a month with reported days",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := ""
			if len(args) == 1 {
				raw = args[0]
			}
			ref, err := parseMonthArg(app, raw)
			if err != nil {
				return err
			}
			g := calendar.MonthGridAt(ref, app.WeekStart, app.now())
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMonth(g, app.Reports.Reports(), formatter.MonthOptions{}))
			return nil
		},
	}
}

func newGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get DATE",
		Short: "Show the status and change history of one day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDayArg(app, args[0])
			if err != nil {
				return err
			}
			events, err := app.Reports.DayHistory(context.Background(), day)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDay(day, app.Reports.GetStatus(day), events, app.now()))
			return nil
		},
	}
}

func newSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set DATE STATUS",
		Short: "Report a status for a day, replacing any existing one",
		Long: "Report a status for a day. STATUS is an id, label or alias; run\n" +
			"'reportcal statuses' to list them. Quote labels that contain spaces.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDayArg(app, args[0])
			if err != nil {
				return err
			}
			status, err := domain.ParseStatus(strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			if err := app.Reports.SetStatus(context.Background(), day, status); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("%s set to %s",
				formatter.Bold(domain.KeyFor(day).String()), formatter.StatusBadge(status))))
			return nil
		},
	}
}

func newClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear DATE",
		Short: "Remove the status reported for a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDayArg(app, args[0])
			if err != nil {
				return err
			}
			if err := app.Reports.ClearStatus(context.Background(), day); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("%s cleared",
				formatter.Bold(domain.KeyFor(day).String()))))
			return nil
		},
	}
}

func newListCmd(app *App) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reported days in date order",
		RunE: func(cmd *cobra.Command, args []string) error {
			reports := app.Reports.Reports()
			if month != "" {
				ref, err := parseMonthArg(app, month)
				if err != nil {
					return err
				}
				reports = app.Reports.Month(ref.Year(), ref.Month())
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReportList(reports, app.loc(), app.now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Only list days in this month (YYYY-MM)")

	return cmd
}

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent status changes, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := app.Reports.History(context.Background(), limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(events, app.now()))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of changes to show (0 for all)")

	return cmd
}

func newStatusesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "statuses",
		Short: "List the statuses a day can be reported with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStatuses())
			return nil
		},
	}
}
