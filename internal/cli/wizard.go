package cli

import (
	"time"

	"github.com/alexanderramin/reportcal/internal/cli/formatter"
	"github.com/alexanderramin/reportcal/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// reportcalHuhTheme returns a huh theme using the formatter palette.
func reportcalHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func newSelectForm(title, description string, options []huh.Option[string], value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Description(description).
				Options(options...).
				Value(value),
		),
	).WithTheme(reportcalHuhTheme()).WithShowHelp(false)
}

// statusPickerCmd opens the two-level status picker for day. Choosing a
// group opens a second form with the group's statuses.
func statusPickerCmd(state *SharedState, day time.Time) tea.Cmd {
	top := domain.StatusOptions()
	current := state.App.Reports.GetStatus(day)

	choice := top[0].ID
	options := make([]huh.Option[string], 0, len(top))
	for _, o := range top {
		label := o.Label
		if o.HasSubOptions() {
			label += " ›"
		}
		options = append(options, huh.NewOption(label, o.ID))
		if optionCovers(o, current) {
			choice = o.ID
		}
	}

	form := newSelectForm("Status for "+formatter.LongDate(day),
		"Currently "+current.Label(), options, &choice)

	return startWizardCmd(state, "Set status", form, func() tea.Cmd {
		opt, ok := domain.FindStatusOption(choice)
		if !ok {
			return nil
		}
		if opt.HasSubOptions() {
			return subStatusPickerCmd(state, day, opt, current)
		}
		return setStatusCmd(state, day, opt.Status)
	})
}

func subStatusPickerCmd(state *SharedState, day time.Time, group domain.StatusOption, current domain.Status) tea.Cmd {
	choice := group.SubOptions[0].ID
	options := make([]huh.Option[string], 0, len(group.SubOptions))
	for _, o := range group.SubOptions {
		options = append(options, huh.NewOption(o.Label, o.ID))
		if o.Status == current {
			choice = o.ID
		}
	}

	form := newSelectForm(group.Label, formatter.LongDate(day), options, &choice)

	return startWizardCmd(state, group.Label, form, func() tea.Cmd {
		for _, o := range group.SubOptions {
			if o.ID == choice {
				return setStatusCmd(state, day, o.Status)
			}
		}
		return nil
	})
}

func optionCovers(o domain.StatusOption, s domain.Status) bool {
	if s == domain.StatusNone {
		return false
	}
	if o.Status == s {
		return true
	}
	for _, sub := range o.SubOptions {
		if sub.Status == s {
			return true
		}
	}
	return false
}
