package db

import (
	"database/sql"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS kv_store (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS report_events (
		id          TEXT PRIMARY KEY,
		action      TEXT NOT NULL CHECK(action IN ('set','clear')),
		date_key    TEXT NOT NULL,
		status      TEXT NOT NULL DEFAULT '',
		occurred_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_report_events_occurred ON report_events(occurred_at)`,
	`CREATE INDEX IF NOT EXISTS idx_report_events_date ON report_events(date_key)`,
}

// Migrate applies the schema. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
