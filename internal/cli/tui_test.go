package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/reportcal/internal/domain"
	"github.com/alexanderramin/reportcal/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireSelected(t *testing.T, d *TestDriver, y, m, day int) {
	t.Helper()
	want := testutil.Day(2025, 1, 1).AddDate(y-2025, m-1, day-1)
	require.True(t, want.Equal(d.State().Selected), "selected %s, want %s",
		d.State().Selected.Format("2006-01-02"), want.Format("2006-01-02"))
}

// topWizard returns the wizard on top of the stack.
func topWizard(t *testing.T, d *TestDriver) *wizardView {
	t.Helper()
	m := d.appModel()
	wv, ok := m.activeView().(*wizardView)
	require.True(t, ok, "top view is not a wizard")
	return wv
}

// completeWizard sends what a submitted form produces.
func completeWizard(t *testing.T, d *TestDriver) {
	t.Helper()
	wv := topWizard(t, d)
	d.Send(wizardCompleteMsg{nextCmd: wv.done()})
}

func TestTUI_StartsOnCalendarAtToday(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	assert.Equal(t, ViewCalendar, d.ActiveViewID())
	requireSelected(t, d, 2025, 6, 10)

	view := d.PlainView()
	assert.Contains(t, view, "June 2025")
	assert.Contains(t, view, "Tuesday, Jun 10 2025")
	assert.Contains(t, view, "○ none")
}

func TestTUI_CursorMovement(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressRight()
	requireSelected(t, d, 2025, 6, 11)
	d.PressDown()
	requireSelected(t, d, 2025, 6, 18)
	d.PressKey('h')
	requireSelected(t, d, 2025, 6, 17)
	d.PressKey('k')
	requireSelected(t, d, 2025, 6, 10)
	d.PressLeft()
	requireSelected(t, d, 2025, 6, 9)
	d.PressUp()
	requireSelected(t, d, 2025, 6, 2)
	d.PressKey('l')
	d.PressKey('j')
	requireSelected(t, d, 2025, 6, 10)
}

func TestTUI_MonthNavigationAndToday(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey(']')
	requireSelected(t, d, 2025, 7, 10)
	assert.Contains(t, d.PlainView(), "July 2025")

	d.PressKey('[')
	d.PressKey('[')
	requireSelected(t, d, 2025, 5, 10)

	d.PressKey('t')
	requireSelected(t, d, 2025, 6, 10)
}

func TestTUI_MonthNavigationClampsDay(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.State().Selected = testutil.Day(2025, 5, 31)

	d.PressKey(']')
	requireSelected(t, d, 2025, 6, 30)
}

func TestTUI_MonthNavigationCrossesYear(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.State().Selected = testutil.Day(2025, 12, 31)

	d.PressKey(']')
	requireSelected(t, d, 2026, 1, 31)
	d.PressKey('[')
	d.PressKey('[')
	requireSelected(t, d, 2025, 11, 30)
}

func TestTUI_CalendarShowsReportedDays(t *testing.T) {
	app := testApp(t)
	require.NoError(t, app.Reports.SetStatus(context.Background(), testutil.Day(2025, 6, 12), domain.StatusAnnualLeave))

	d := NewTestDriver(t, app)
	assert.Contains(t, d.PlainView(), "12 LV")
}

func TestTUI_EnterOpensDayAndEscReturns(t *testing.T) {
	app := testApp(t)
	require.NoError(t, app.Reports.SetStatus(context.Background(), testutil.Day(2025, 6, 10), domain.StatusAfterShift))

	d := NewTestDriver(t, app)
	d.PressEnter()

	assert.Equal(t, ViewDay, d.ActiveViewID())
	view := d.PlainView()
	assert.Contains(t, view, "2025-06-10")
	assert.Contains(t, view, "● After duty / shift")
	assert.Contains(t, view, "Set status")

	d.PressEsc()
	assert.Equal(t, ViewCalendar, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())
}

func TestTUI_SetStatusThroughGroupPicker(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('s')
	assert.Equal(t, ViewForm, d.ActiveViewID())

	// The first top-level option is the "Out of unit" group, which opens
	// a second picker.
	completeWizard(t, d)
	assert.Equal(t, ViewForm, d.ActiveViewID())
	assert.Equal(t, "Out of unit", topWizard(t, d).Title())

	completeWizard(t, d)
	assert.Equal(t, ViewCalendar, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())
	assert.Equal(t, domain.StatusAwayFromUnit, app.Reports.GetStatus(testutil.Day(2025, 6, 10)))
	assert.Contains(t, d.Flash(), "On duty outside the unit")
	assert.Contains(t, d.PlainView(), "10 OUT")
}

func TestTUI_PickerPreselectsCurrentStatus(t *testing.T) {
	app := testApp(t)
	require.NoError(t, app.Reports.SetStatus(context.Background(), testutil.Day(2025, 6, 10), domain.StatusAnnualLeave))
	d := NewTestDriver(t, app)

	d.PressKey('s')
	completeWizard(t, d)

	// Annual leave is a leaf option, so no second picker opens.
	assert.Equal(t, ViewCalendar, d.ActiveViewID())
	assert.Equal(t, domain.StatusAnnualLeave, app.Reports.GetStatus(testutil.Day(2025, 6, 10)))
}

func TestTUI_PickerEscCancels(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('s')
	require.Equal(t, ViewForm, d.ActiveViewID())

	d.PressEsc()
	assert.Equal(t, ViewCalendar, d.ActiveViewID())
	assert.Contains(t, d.Flash(), "Cancelled.")
	assert.Empty(t, app.Reports.Reports())
}

func TestTUI_PickerFromDayViewReturnsToDay(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressEnter()
	require.Equal(t, ViewDay, d.ActiveViewID())
	d.PressKey('s')
	require.Equal(t, ViewForm, d.ActiveViewID())
	completeWizard(t, d)
	completeWizard(t, d)

	assert.Equal(t, ViewDay, d.ActiveViewID())
	assert.Contains(t, d.PlainView(), "● On duty outside the unit")
}

func TestTUI_ClearFromCalendar(t *testing.T) {
	app := testApp(t)
	require.NoError(t, app.Reports.SetStatus(context.Background(), testutil.Day(2025, 6, 10), domain.StatusAnnualLeave))
	d := NewTestDriver(t, app)

	d.PressKey('c')
	assert.Equal(t, domain.StatusNone, app.Reports.GetStatus(testutil.Day(2025, 6, 10)))
	assert.Contains(t, d.Flash(), "cleared")
	assert.NotContains(t, d.PlainView(), "10 LV")
}

func TestTUI_ClearOnEmptyDayIsANoop(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('c')
	assert.Contains(t, d.Flash(), "Nothing reported")

	events, err := app.Reports.History(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestTUI_ClearFromDayView(t *testing.T) {
	app := testApp(t)
	require.NoError(t, app.Reports.SetStatus(context.Background(), testutil.Day(2025, 6, 10), domain.StatusAfterShift))
	d := NewTestDriver(t, app)

	d.PressEnter()
	d.PressKey('c')

	assert.Equal(t, ViewDay, d.ActiveViewID())
	assert.Equal(t, domain.StatusNone, app.Reports.GetStatus(testutil.Day(2025, 6, 10)))
	assert.Contains(t, d.PlainView(), "Status  ○ none")
}

func TestDayView_ClearBeforeLoadUsesCurrentStatus(t *testing.T) {
	app := testApp(t)
	day := testutil.Day(2025, 6, 10)
	require.NoError(t, app.Reports.SetStatus(context.Background(), day, domain.StatusAnnualLeave))

	// No dayLoadedMsg has arrived yet.
	v := newDayView(newSharedState(app), day)
	cmd := v.actionClear()
	require.NotNil(t, cmd)

	msg, ok := cmd().(reportChangedMsg)
	require.True(t, ok, "expected a clear, not a flash")
	assert.Contains(t, msg.text, "cleared")
	assert.Equal(t, domain.StatusNone, app.Reports.GetStatus(day))
}

func TestTUI_CommandBarRunsCommands(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.Command(`set 2025-06-12 "annual leave"`)
	assert.Contains(t, d.LastOutput(), "2025-06-12 set to")
	assert.Equal(t, domain.StatusAnnualLeave, app.Reports.GetStatus(testutil.Day(2025, 6, 12)))
	assert.False(t, d.CmdBarFocused())

	// Any other key dismisses the output; the calendar has picked up the change.
	d.PressKey('t')
	assert.Contains(t, d.PlainView(), "12 LV")
}

func TestTUI_CommandBarReportsErrors(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.Command("set 2025-06-12 sick")
	assert.Contains(t, d.LastOutput(), "unknown status")
}

func TestTUI_CommandBarGoto(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.Command("goto 2025-07-04")
	requireSelected(t, d, 2025, 7, 4)
	assert.Contains(t, d.PlainView(), "July 2025")
}

func TestTUI_QuitKeys(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressKey('q')
	assert.True(t, d.IsQuitting())

	d = NewTestDriver(t, testApp(t))
	d.PressCtrlC()
	assert.True(t, d.IsQuitting())

	d = NewTestDriver(t, testApp(t))
	d.Command("quit")
	assert.True(t, d.IsQuitting())
}

func TestCommandSuggestions(t *testing.T) {
	assert.Equal(t, []string{"set", "statuses"}, commandSuggestions("s"))
	assert.Equal(t, []string{"set today annual_leave"}, commandSuggestions("set today an"))
	assert.Len(t, commandSuggestions("set today "), len(domain.AllStatuses))
	assert.Nil(t, commandSuggestions("list --month"))
}
