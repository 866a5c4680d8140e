// Package calendar builds month views for the report calendar.
package calendar

import (
	"fmt"
	"strings"
	"time"
)

// GridCells is the fixed size of a month view: six weeks of seven days.
const GridCells = 42

// Cell is one day of a month view.
type Cell struct {
	Date    time.Time
	InMonth bool
	IsToday bool
}

// Weekday returns the cell's day of the week.
func (c Cell) Weekday() time.Weekday { return c.Date.Weekday() }

// Grid is a month view padded to whole weeks.
type Grid struct {
	Year      int
	Month     time.Month
	WeekStart time.Weekday
	Cells     [GridCells]Cell
}

// Weeks returns the grid as six rows of seven cells.
func (g Grid) Weeks() [][]Cell {
	rows := make([][]Cell, 0, GridCells/7)
	for i := 0; i < GridCells; i += 7 {
		rows = append(rows, g.Cells[i:i+7])
	}
	return rows
}

// MonthGrid returns the 42-cell view of ref's month, starting on weekStart.
// Leading and trailing cells come from the adjacent months. Dates are
// midnight in ref's location.
func MonthGrid(ref time.Time, weekStart time.Weekday) Grid {
	return MonthGridAt(ref, weekStart, time.Time{})
}

// MonthGridAt is MonthGrid with IsToday marked relative to now.
// A zero now marks no cell.
func MonthGridAt(ref time.Time, weekStart time.Weekday, now time.Time) Grid {
	loc := ref.Location()
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, loc)
	lead := (int(first.Weekday()) - int(weekStart) + 7) % 7
	start := first.AddDate(0, 0, -lead)

	g := Grid{Year: first.Year(), Month: first.Month(), WeekStart: weekStart}
	for i := 0; i < GridCells; i++ {
		// AddDate keeps midnight across DST shifts; adding 24h would not.
		d := start.AddDate(0, 0, i)
		g.Cells[i] = Cell{
			Date:    d,
			InMonth: d.Month() == first.Month(),
			IsToday: !now.IsZero() && sameDay(d, now.In(loc)),
		}
	}
	return g
}

// MonthStart returns midnight on the first of t's month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// AddMonths moves n months from t's month and returns the first of that
// month, so January 31 plus one month is February 1 rather than March 3.
func AddMonths(t time.Time, n int) time.Time {
	return MonthStart(t).AddDate(0, n, 0)
}

// WeekdayHeaders returns abbreviated weekday names in grid column order.
func WeekdayHeaders(weekStart time.Weekday) []string {
	out := make([]string, 7)
	for i := 0; i < 7; i++ {
		out[i] = time.Weekday((int(weekStart) + i) % 7).String()[:3]
	}
	return out
}

// ParseWeekStart accepts a weekday name or three-letter abbreviation.
func ParseWeekStart(s string) (time.Weekday, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if norm == name || norm == name[:3] {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown week start %q", s)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
