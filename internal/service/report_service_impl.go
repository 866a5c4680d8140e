package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/reportcal/internal/db"
	"github.com/alexanderramin/reportcal/internal/domain"
	"github.com/alexanderramin/reportcal/internal/notify"
	"github.com/alexanderramin/reportcal/internal/repository"
	"github.com/google/uuid"
)

type reportService struct {
	kv       repository.KVRepo
	events   repository.EventRepo
	uow      db.UnitOfWork
	notifier notify.Notifier
	observer UseCaseObserver

	// loc resolves legacy timestamp keys during Load.
	loc *time.Location
	now func() time.Time

	// mu serializes mutations and their flush so snapshots land in order.
	mu      sync.RWMutex
	reports domain.ReportMap

	inflight sync.WaitGroup
}

func NewReportService(
	kv repository.KVRepo,
	events repository.EventRepo,
	uow db.UnitOfWork,
	notifier notify.Notifier,
	observers ...UseCaseObserver,
) ReportService {
	if notifier == nil {
		notifier = notify.NoopNotifier{}
	}
	return &reportService{
		kv:       kv,
		events:   events,
		uow:      uow,
		notifier: notifier,
		observer: useCaseObserverOrNoop(observers),
		loc:      time.Local,
		now:      time.Now,
		reports:  domain.ReportMap{},
	}
}

func (s *reportService) Load(ctx context.Context) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"key": ReportsKey}
	var discardErr error
	defer func() {
		reported := err
		if reported == nil {
			reported = discardErr
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "load-reports",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   reported == nil,
			Err:       reported,
			Fields:    fields,
		})
	}()

	raw, err := s.kv.Get(ctx, ReportsKey)
	if errors.Is(err, repository.ErrNotFound) {
		s.replace(domain.ReportMap{})
		fields["entries"] = 0
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading reports: %w", err)
	}

	loaded, decodeErr := decodeReports(raw, s.loc)
	if decodeErr != nil {
		discardErr = decodeErr
		fields["discarded"] = true
		loaded = domain.ReportMap{}
	}
	s.replace(loaded)
	fields["entries"] = len(loaded)
	return nil
}

func (s *reportService) replace(m domain.ReportMap) {
	s.mu.Lock()
	s.reports = m
	s.mu.Unlock()
}

func (s *reportService) GetStatus(date time.Time) domain.Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reports[domain.KeyFor(date)]
}

func (s *reportService) SetStatus(ctx context.Context, date time.Time, status domain.Status) error {
	if !status.Valid() {
		return fmt.Errorf("setting status: %w: %q", domain.ErrUnknownStatus, string(status))
	}
	return s.mutate(ctx, "set-status", domain.ActionSet, domain.KeyFor(date), status)
}

func (s *reportService) ClearStatus(ctx context.Context, date time.Time) error {
	return s.mutate(ctx, "clear-status", domain.ActionClear, domain.KeyFor(date), domain.StatusNone)
}

// mutate applies one change in memory, flushes the whole map together with a
// journal entry, then forwards the change without waiting. A failed flush
// is returned but the in-memory change stands.
func (s *reportService) mutate(ctx context.Context, name string, action domain.EventAction, key domain.DateKey, status domain.Status) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"date": string(key)}
	if status != domain.StatusNone {
		fields["status"] = string(status)
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      name,
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	event := &domain.ReportEvent{
		ID:         uuid.New().String(),
		Action:     action,
		Date:       key,
		Status:     status,
		OccurredAt: s.now().UTC(),
	}

	s.mu.Lock()
	if action == domain.ActionSet {
		s.reports[key] = status
	} else {
		_, present := s.reports[key]
		fields["present"] = present
		delete(s.reports, key)
	}
	err = s.flush(ctx, s.reports, event)
	s.mu.Unlock()

	s.forward(notify.Notification{Action: action, Date: key, Status: status})
	return err
}

func (s *reportService) flush(ctx context.Context, m domain.ReportMap, event *domain.ReportEvent) error {
	encoded, err := encodeReports(m)
	if err != nil {
		return err
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteKVRepo(tx).Put(ctx, ReportsKey, encoded); err != nil {
			return fmt.Errorf("persisting reports: %w", err)
		}
		if err := repository.NewSQLiteEventRepo(tx).Append(ctx, event); err != nil {
			return fmt.Errorf("journaling report: %w", err)
		}
		return nil
	})
}

// forward sends n in the background. Its outcome never reaches the caller.
func (s *reportService) forward(n notify.Notification) {
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		_ = s.notifier.Notify(context.Background(), n)
	}()
}

func (s *reportService) Reports() domain.ReportMap {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reports.Clone()
}

func (s *reportService) Month(year int, month time.Month) domain.ReportMap {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reports.InMonth(year, month)
}

func (s *reportService) History(ctx context.Context, limit int) ([]*domain.ReportEvent, error) {
	events, err := s.events.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	return events, nil
}

func (s *reportService) DayHistory(ctx context.Context, date time.Time) ([]*domain.ReportEvent, error) {
	events, err := s.events.ListByDate(ctx, domain.KeyFor(date))
	if err != nil {
		return nil, fmt.Errorf("loading day history: %w", err)
	}
	return events, nil
}

func (s *reportService) Close() {
	s.inflight.Wait()
}
