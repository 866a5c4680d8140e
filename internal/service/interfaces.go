package service

import (
	"context"
	"time"

	"github.com/alexanderramin/reportcal/internal/domain"
)

// ReportsKey is the persisted slot holding the whole report map.
const ReportsKey = "futureReports"

// ReportService is the status store. Dates are reduced to the calendar day
// they fall on in their own location.
type ReportService interface {
	// Load rehydrates the map from storage. Unreadable content yields an
	// empty map rather than an error.
	Load(ctx context.Context) error

	GetStatus(date time.Time) domain.Status
	SetStatus(ctx context.Context, date time.Time, status domain.Status) error
	ClearStatus(ctx context.Context, date time.Time) error

	Reports() domain.ReportMap
	Month(year int, month time.Month) domain.ReportMap

	History(ctx context.Context, limit int) ([]*domain.ReportEvent, error)
	DayHistory(ctx context.Context, date time.Time) ([]*domain.ReportEvent, error)

	// Close waits for in-flight remote notifications.
	Close()
}
