package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/reportcal/internal/db"
	"github.com/alexanderramin/reportcal/internal/domain"
)

// SQLiteEventRepo implements EventRepo on the report_events table.
type SQLiteEventRepo struct {
	db db.DBTX
}

func NewSQLiteEventRepo(conn db.DBTX) *SQLiteEventRepo {
	return &SQLiteEventRepo{db: conn}
}

func (r *SQLiteEventRepo) Append(ctx context.Context, e *domain.ReportEvent) error {
	query := `INSERT INTO report_events (id, action, date_key, status, occurred_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		string(e.Action),
		string(e.Date),
		string(e.Status),
		formatTimestamp(e.OccurredAt),
	)
	if err != nil {
		return fmt.Errorf("inserting report event: %w", err)
	}
	return nil
}

// ListRecent returns up to limit events, newest first. limit <= 0 means all.
func (r *SQLiteEventRepo) ListRecent(ctx context.Context, limit int) ([]*domain.ReportEvent, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx, `SELECT id, action, date_key, status, occurred_at
		FROM report_events ORDER BY occurred_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing report events: %w", err)
	}
	defer rows.Close()
	return scanEvents(rows)
}

// ListByDate returns the events for one day, oldest first.
func (r *SQLiteEventRepo) ListByDate(ctx context.Context, date domain.DateKey) ([]*domain.ReportEvent, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, action, date_key, status, occurred_at
		FROM report_events WHERE date_key = ? ORDER BY occurred_at, rowid`, string(date))
	if err != nil {
		return nil, fmt.Errorf("listing report events by date: %w", err)
	}
	defer rows.Close()
	return scanEvents(rows)
}

func scanEvents(rows *sql.Rows) ([]*domain.ReportEvent, error) {
	var events []*domain.ReportEvent
	for rows.Next() {
		var e domain.ReportEvent
		var action, date, status, occurred string
		if err := rows.Scan(&e.ID, &action, &date, &status, &occurred); err != nil {
			return nil, fmt.Errorf("scanning report event: %w", err)
		}
		t, err := parseTimestamp(occurred)
		if err != nil {
			return nil, fmt.Errorf("parsing occurred_at: %w", err)
		}
		e.Action = domain.EventAction(action)
		e.Date = domain.DateKey(date)
		e.Status = domain.Status(status)
		e.OccurredAt = t
		events = append(events, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating report events: %w", err)
	}
	return events, nil
}
