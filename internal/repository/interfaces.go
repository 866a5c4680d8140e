package repository

import (
	"context"

	"github.com/alexanderramin/reportcal/internal/domain"
)

// KVRepo stores opaque string values under string keys.
type KVRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
}

// EventRepo is the append-only journal of report mutations.
type EventRepo interface {
	Append(ctx context.Context, e *domain.ReportEvent) error
	ListRecent(ctx context.Context, limit int) ([]*domain.ReportEvent, error)
	ListByDate(ctx context.Context, date domain.DateKey) ([]*domain.ReportEvent, error)
}
