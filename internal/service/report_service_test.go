package service

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/reportcal/internal/domain"
	"github.com/alexanderramin/reportcal/internal/notify"
	"github.com/alexanderramin/reportcal/internal/repository"
	"github.com/alexanderramin/reportcal/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingNotifier captures notifications and can be told to fail.
type recordingNotifier struct {
	mu    sync.Mutex
	sent  []notify.Notification
	err   error
	delay time.Duration
}

func (n *recordingNotifier) Notify(_ context.Context, note notify.Notification) error {
	if n.delay > 0 {
		time.Sleep(n.delay)
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, note)
	return n.err
}

func (n *recordingNotifier) Sent() []notify.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notify.Notification(nil), n.sent...)
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func newTestReportService(t *testing.T, database *sql.DB, n notify.Notifier, observers ...UseCaseObserver) *reportService {
	t.Helper()
	svc := NewReportService(
		repository.NewSQLiteKVRepo(database),
		repository.NewSQLiteEventRepo(database),
		testutil.NewTestUoW(database),
		n,
		observers...,
	).(*reportService)
	svc.loc = time.UTC
	require.NoError(t, svc.Load(context.Background()))
	t.Cleanup(svc.Close)
	return svc
}

func TestReportService_SetThenGet(t *testing.T) {
	svc := newTestReportService(t, testutil.NewTestDB(t), nil)
	ctx := context.Background()
	day := testutil.Day(2025, 6, 10)

	assert.Equal(t, domain.StatusNone, svc.GetStatus(day))

	require.NoError(t, svc.SetStatus(ctx, day, domain.StatusAnnualLeave))
	assert.Equal(t, domain.StatusAnnualLeave, svc.GetStatus(day))
	// Any time of the same day resolves to the same key.
	assert.Equal(t, domain.StatusAnnualLeave, svc.GetStatus(day.Add(17*time.Hour)))
}

func TestReportService_OverwriteKeepsSingleStatus(t *testing.T) {
	svc := newTestReportService(t, testutil.NewTestDB(t), nil)
	ctx := context.Background()
	day := testutil.Day(2025, 6, 10)

	require.NoError(t, svc.SetStatus(ctx, day, domain.StatusAnnualLeave))
	require.NoError(t, svc.SetStatus(ctx, day, domain.StatusAfterShift))

	reports := svc.Reports()
	assert.Len(t, reports, 1)
	assert.Equal(t, domain.StatusAfterShift, reports["2025-06-10"])
}

func TestReportService_ClearThenGet(t *testing.T) {
	svc := newTestReportService(t, testutil.NewTestDB(t), nil)
	ctx := context.Background()
	day := testutil.Day(2025, 6, 10)

	require.NoError(t, svc.SetStatus(ctx, day, domain.StatusAwayFromUnit))
	require.NoError(t, svc.ClearStatus(ctx, day))
	assert.Equal(t, domain.StatusNone, svc.GetStatus(day))

	// Clearing an unset day is a no-op.
	require.NoError(t, svc.ClearStatus(ctx, testutil.Day(2025, 6, 11)))
	assert.Empty(t, svc.Reports())
}

func TestReportService_RejectsInvalidStatus(t *testing.T) {
	svc := newTestReportService(t, testutil.NewTestDB(t), nil)

	err := svc.SetStatus(context.Background(), testutil.Day(2025, 6, 10), domain.Status("sick"))
	assert.ErrorIs(t, err, domain.ErrUnknownStatus)
	assert.Empty(t, svc.Reports())
}

func TestReportService_PersistReloadRoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	first := newTestReportService(t, database, nil)
	require.NoError(t, first.SetStatus(ctx, testutil.Day(2025, 6, 10), domain.StatusAnnualLeave))
	require.NoError(t, first.SetStatus(ctx, testutil.Day(2025, 6, 11), domain.StatusAfterShift))
	require.NoError(t, first.SetStatus(ctx, testutil.Day(2025, 7, 1), domain.StatusAwayFromUnit))
	require.NoError(t, first.ClearStatus(ctx, testutil.Day(2025, 6, 11)))

	second := newTestReportService(t, database, nil)
	assert.Equal(t, first.Reports(), second.Reports())
	assert.Len(t, second.Reports(), 2)

	// Reloading the same store again changes nothing.
	require.NoError(t, second.Load(ctx))
	assert.Equal(t, first.Reports(), second.Reports())
}

func TestReportService_MalformedStateStartsEmpty(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	kv := repository.NewSQLiteKVRepo(database)

	for _, raw := range []string{
		`{not json`,
		`["2025-06-10"]`,
		`{"2025-06-10":"annual_leave","garbage":"annual_leave"}`,
		`{"2025-06-10":"sick"}`,
	} {
		require.NoError(t, kv.Put(ctx, ReportsKey, raw))
		obs := &recordingObserver{}
		svc := newTestReportService(t, database, nil, obs)

		assert.Empty(t, svc.Reports(), raw)
		require.Len(t, obs.events, 1)
		assert.Equal(t, "load-reports", obs.events[0].Name)
		assert.False(t, obs.events[0].Success)
		assert.Equal(t, true, obs.events[0].Fields["discarded"])
	}
}

func TestReportService_LoadsLegacyBrowserState(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	kv := repository.NewSQLiteKVRepo(database)

	legacy := `{"2025-06-09T21:00:00.000Z":"חופשה שנתית","2025-06-11T21:00:00.000Z":"אחרי תורנות / משמרת"}`
	require.NoError(t, kv.Put(ctx, ReportsKey, legacy))

	svc := NewReportService(kv, repository.NewSQLiteEventRepo(database), testutil.NewTestUoW(database), nil).(*reportService)
	svc.loc = time.FixedZone("IDT", 3*60*60)
	require.NoError(t, svc.Load(ctx))

	assert.Equal(t, domain.ReportMap{
		"2025-06-10": domain.StatusAnnualLeave,
		"2025-06-12": domain.StatusAfterShift,
	}, svc.Reports())
}

func TestReportService_NotifiesSetAndClear(t *testing.T) {
	n := &recordingNotifier{}
	svc := newTestReportService(t, testutil.NewTestDB(t), n)
	ctx := context.Background()
	day := testutil.Day(2025, 6, 10)

	require.NoError(t, svc.SetStatus(ctx, day, domain.StatusAnnualLeave))
	require.NoError(t, svc.ClearStatus(ctx, day))
	svc.Close()

	sent := n.Sent()
	require.Len(t, sent, 2)
	actions := map[domain.EventAction]notify.Notification{}
	for _, s := range sent {
		actions[s.Action] = s
	}
	assert.Equal(t, domain.StatusAnnualLeave, actions[domain.ActionSet].Status)
	assert.Equal(t, domain.DateKey("2025-06-10"), actions[domain.ActionClear].Date)
}

func TestReportService_NotifierFailureDoesNotAffectLocalState(t *testing.T) {
	n := &recordingNotifier{err: notify.ErrUnavailable, delay: 250 * time.Millisecond}
	database := testutil.NewTestDB(t)
	svc := newTestReportService(t, database, n)
	ctx := context.Background()
	day := testutil.Day(2025, 6, 10)

	start := time.Now()
	require.NoError(t, svc.SetStatus(ctx, day, domain.StatusAnnualLeave))
	assert.Less(t, time.Since(start), 250*time.Millisecond, "mutation must not wait for the notifier")
	svc.Close()

	assert.Equal(t, domain.StatusAnnualLeave, svc.GetStatus(day))
	reloaded := newTestReportService(t, database, nil)
	assert.Equal(t, domain.StatusAnnualLeave, reloaded.GetStatus(day))
}

func TestReportService_FlushFailureKeepsMemoryState(t *testing.T) {
	database := testutil.NewTestDB(t)
	boom := errors.New("disk full")
	ctx := context.Background()

	svc := NewReportService(
		repository.NewSQLiteKVRepo(database),
		repository.NewSQLiteEventRepo(database),
		&testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: boom},
		nil,
	)
	require.NoError(t, svc.Load(ctx))
	defer svc.Close()

	day := testutil.Day(2025, 6, 10)
	err := svc.SetStatus(ctx, day, domain.StatusAnnualLeave)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, domain.StatusAnnualLeave, svc.GetStatus(day))

	// The snapshot write rolled back with the failed journal append.
	_, getErr := repository.NewSQLiteKVRepo(database).Get(ctx, ReportsKey)
	assert.ErrorIs(t, getErr, repository.ErrNotFound)

	events, err := svc.History(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestReportService_HistoryAndDayHistory(t *testing.T) {
	svc := newTestReportService(t, testutil.NewTestDB(t), nil)
	ctx := context.Background()
	clock := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	require.NoError(t, svc.SetStatus(ctx, testutil.Day(2025, 6, 10), domain.StatusAnnualLeave))
	require.NoError(t, svc.SetStatus(ctx, testutil.Day(2025, 6, 12), domain.StatusAwayFromUnit))
	require.NoError(t, svc.ClearStatus(ctx, testutil.Day(2025, 6, 10)))

	recent, err := svc.History(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, domain.ActionClear, recent[0].Action)
	assert.Equal(t, domain.DateKey("2025-06-12"), recent[1].Date)

	day, err := svc.DayHistory(ctx, testutil.Day(2025, 6, 10))
	require.NoError(t, err)
	require.Len(t, day, 2)
	assert.Equal(t, domain.ActionSet, day[0].Action)
	assert.Equal(t, domain.ActionClear, day[1].Action)
}

func TestReportService_Month(t *testing.T) {
	svc := newTestReportService(t, testutil.NewTestDB(t), nil)
	ctx := context.Background()

	require.NoError(t, svc.SetStatus(ctx, testutil.Day(2025, 6, 10), domain.StatusAnnualLeave))
	require.NoError(t, svc.SetStatus(ctx, testutil.Day(2025, 7, 10), domain.StatusAnnualLeave))

	june := svc.Month(2025, time.June)
	assert.Equal(t, domain.ReportMap{"2025-06-10": domain.StatusAnnualLeave}, june)
}

func TestReportService_ObservesMutations(t *testing.T) {
	obs := &recordingObserver{}
	svc := newTestReportService(t, testutil.NewTestDB(t), nil, obs)

	require.NoError(t, svc.SetStatus(context.Background(), testutil.Day(2025, 6, 10), domain.StatusAfterShift))

	obs.mu.Lock()
	defer obs.mu.Unlock()
	require.Len(t, obs.events, 2)
	last := obs.events[1]
	assert.Equal(t, "set-status", last.Name)
	assert.True(t, last.Success)
	assert.Equal(t, "2025-06-10", last.Fields["date"])
	assert.Equal(t, "after_shift", last.Fields["status"])
}

func TestResolveIdentity(t *testing.T) {
	kv := repository.NewSQLiteKVRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	id, err := ResolveIdentity(ctx, kv, "configured")
	require.NoError(t, err)
	assert.Equal(t, "configured", id)

	generated, err := ResolveIdentity(ctx, kv, "")
	require.NoError(t, err)
	assert.NotEmpty(t, generated)

	again, err := ResolveIdentity(ctx, kv, "")
	require.NoError(t, err)
	assert.Equal(t, generated, again)
}
