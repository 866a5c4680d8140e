package repository

import "time"

// timestampLayout is fixed width, so text order in SQL matches time order.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(timestampLayout, s)
	if err != nil {
		// Rows written before the fixed-width layout.
		return time.Parse(time.RFC3339Nano, s)
	}
	return t, nil
}

// nowUTC returns the current UTC time in storage format.
func nowUTC() string {
	return formatTimestamp(time.Now())
}
