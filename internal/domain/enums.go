package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStatus is returned when a status string matches no known status.
var ErrUnknownStatus = errors.New("unknown status")

type Status string

const (
	StatusNone         Status = ""
	StatusAwayFromUnit Status = "away_from_unit"
	StatusAfterShift   Status = "after_shift"
	StatusAnnualLeave  Status = "annual_leave"
)

// AllStatuses is the fixed set of assignable statuses in display order.
var AllStatuses = []Status{StatusAwayFromUnit, StatusAfterShift, StatusAnnualLeave}

var statusLabels = map[Status]string{
	StatusAwayFromUnit: "On duty outside the unit",
	StatusAfterShift:   "After duty / shift",
	StatusAnnualLeave:  "Annual leave",
}

var statusShort = map[Status]string{
	StatusAwayFromUnit: "OUT",
	StatusAfterShift:   "AFT",
	StatusAnnualLeave:  "LV",
}

var statusAliases = map[string]Status{
	"away":        StatusAwayFromUnit,
	"out":         StatusAwayFromUnit,
	"duty":        StatusAwayFromUnit,
	"after":       StatusAfterShift,
	"aft":         StatusAfterShift,
	"shift":       StatusAfterShift,
	"leave":       StatusAnnualLeave,
	"lv":          StatusAnnualLeave,
	"vacation":    StatusAnnualLeave,
	"annual":      StatusAnnualLeave,
	"after-shift": StatusAfterShift,
}

// Valid reports whether s is one of the assignable statuses.
func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the human-readable name, or "none" for StatusNone.
func (s Status) Label() string {
	if s == StatusNone {
		return "none"
	}
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// Short returns a compact badge used inside calendar cells.
func (s Status) Short() string {
	return statusShort[s]
}

// ParseStatus resolves an id, label or alias (case-insensitive) to a Status.
func ParseStatus(raw string) (Status, error) {
	norm := strings.ToLower(strings.TrimSpace(raw))
	if norm == "" {
		return StatusNone, fmt.Errorf("%w: empty", ErrUnknownStatus)
	}
	candidate := Status(strings.ReplaceAll(norm, "-", "_"))
	if candidate.Valid() {
		return candidate, nil
	}
	if s, ok := statusAliases[norm]; ok {
		return s, nil
	}
	for s, label := range statusLabels {
		if strings.EqualFold(label, strings.TrimSpace(raw)) {
			return s, nil
		}
	}
	return StatusNone, fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
}

type EventAction string

const (
	ActionSet   EventAction = "set"
	ActionClear EventAction = "clear"
)
