package testutil

import (
	"time"

	"github.com/alexanderramin/reportcal/internal/domain"
	"github.com/google/uuid"
)

// Day returns midnight UTC of the given date.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// EventOption customizes a test event.
type EventOption func(*domain.ReportEvent)

func WithOccurredAt(t time.Time) EventOption {
	return func(e *domain.ReportEvent) {
		e.OccurredAt = t
	}
}

func WithClear() EventOption {
	return func(e *domain.ReportEvent) {
		e.Action = domain.ActionClear
		e.Status = domain.StatusNone
	}
}

// NewTestEvent builds a "set" event for date.
func NewTestEvent(date domain.DateKey, status domain.Status, opts ...EventOption) *domain.ReportEvent {
	e := &domain.ReportEvent{
		ID:         uuid.New().String(),
		Action:     domain.ActionSet,
		Date:       date,
		Status:     status,
		OccurredAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
