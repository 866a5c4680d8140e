package cli

import (
	"time"

	"github.com/alexanderramin/reportcal/internal/calendar"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Selected is the day under the calendar cursor, at midnight.
	Selected time.Time

	// Terminal dimensions
	Width  int
	Height int
}

func newSharedState(app *App) *SharedState {
	now := app.now()
	return &SharedState{
		App:      app,
		Selected: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
	}
}

// MoveDays shifts the selection by n calendar days.
func (s *SharedState) MoveDays(n int) {
	s.Selected = s.Selected.AddDate(0, 0, n)
}

// MoveMonths shifts the selection by n months, clamping the day to the
// length of the target month.
func (s *SharedState) MoveMonths(n int) {
	first := calendar.AddMonths(s.Selected, n)
	last := first.AddDate(0, 1, -1).Day()
	day := s.Selected.Day()
	if day > last {
		day = last
	}
	s.Selected = time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, first.Location())
}

// JumpToday moves the selection to the current day.
func (s *SharedState) JumpToday() {
	now := s.App.now()
	s.Selected = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator),
// status bar (2 lines: separator + hints), and command bar (1 line).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 1 {
		return 1
	}
	return h
}
