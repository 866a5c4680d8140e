package domain

import (
	"sort"
	"time"
)

// ReportMap holds every reported day. A key maps to exactly one status.
type ReportMap map[DateKey]Status

// Clone returns an independent copy. A nil map clones to an empty map.
func (m ReportMap) Clone() ReportMap {
	out := make(ReportMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Keys returns the keys in chronological order.
func (m ReportMap) Keys() []DateKey {
	keys := make([]DateKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// InMonth returns the entries whose day falls in the given month.
func (m ReportMap) InMonth(year int, month time.Month) ReportMap {
	prefix := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01-")
	out := make(ReportMap)
	for k, v := range m {
		if len(k) >= len(prefix) && string(k[:len(prefix)]) == prefix {
			out[k] = v
		}
	}
	return out
}

// ReportEvent is one journaled mutation of the report map.
type ReportEvent struct {
	ID         string
	Action     EventAction
	Date       DateKey
	Status     Status
	OccurredAt time.Time
}
