package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/reportcal/internal/domain"
)

// parseDayArg accepts YYYY-MM-DD, an ISO timestamp, or one of today,
// tomorrow and yesterday. The result is midnight in the app's location.
func parseDayArg(app *App, raw string) (time.Time, error) {
	now := app.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}

	key, err := domain.ParseDateKey(raw, app.loc())
	if err != nil {
		return time.Time{}, err
	}
	return key.Time(app.loc())
}

// parseMonthArg accepts YYYY-MM. An empty string means the current month.
func parseMonthArg(app *App, raw string) (time.Time, error) {
	now := app.now()
	if strings.TrimSpace(raw) == "" {
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), nil
	}
	t, err := time.ParseInLocation("2006-01", strings.TrimSpace(raw), app.loc())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q: want YYYY-MM", raw)
	}
	return t, nil
}

// splitCommandLine splits command bar input into arguments, honoring
// single and double quotes and backslash escapes.
func splitCommandLine(input string) ([]string, error) {
	var parts []string
	var cur strings.Builder
	var quote rune
	escaped, started := false, false

	for _, r := range input {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case quote != 0 && r == quote:
			quote = 0
		case quote == '\'':
			cur.WriteRune(r)
		case r == '\\':
			escaped, started = true, true
		case quote == '"':
			cur.WriteRune(r)
		case r == '\'' || r == '"':
			quote, started = r, true
		case r == ' ' || r == '\t':
			if started {
				parts = append(parts, cur.String())
				cur.Reset()
				started = false
			}
		default:
			cur.WriteRune(r)
			started = true
		}
	}

	if escaped {
		return nil, fmt.Errorf("unterminated escape sequence")
	}
	if quote != 0 {
		return nil, fmt.Errorf("unterminated quoted string")
	}
	if started {
		parts = append(parts, cur.String())
	}
	return parts, nil
}
