package service

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/rutero/internal/app"
	"github.com/alexanderramin/rutero/internal/db"
	"github.com/alexanderramin/rutero/internal/domain"
	"github.com/alexanderramin/rutero/internal/erp"
	"github.com/alexanderramin/rutero/internal/repository"
	"github.com/alexanderramin/rutero/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// fixture bundles a service with the stores behind it.
type fixture struct {
	svc       RouteService
	erp       *erp.MemorySource
	db        *sql.DB
	overrides *repository.SQLiteOverrideRepo
	audits    *repository.SQLiteAuditRepo
}

// seedV1 loads vendor V1: A, B, C, D visited on Monday and E on Tuesday.
func seedV1(mem *erp.MemorySource) {
	mon := []domain.Weekday{domain.Monday}
	mem.AddRows(
		testutil.NewTestVisitRow("V1", "A", mon, testutil.WithClientName("Almacen A")),
		testutil.NewTestVisitRow("V1", "B", mon),
		testutil.NewTestVisitRow("V1", "C", mon),
		testutil.NewTestVisitRow("V1", "D", mon),
		testutil.NewTestVisitRow("V1", "E", []domain.Weekday{domain.Tuesday}),
	)
}

// stepClock returns a clock that advances one second per call.
func stepClock() func() time.Time {
	var mu sync.Mutex
	t := testutil.FixedTime
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Second)
		return t
	}
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	return newFixtureWithUoW(t, database, testutil.NewTestUoW(database), opts...)
}

func newFixtureWithUoW(t *testing.T, database *sql.DB, uow db.UnitOfWork, opts ...Option) *fixture {
	t.Helper()
	mem := erp.NewMemorySource()
	seedV1(mem)

	var n int
	var mu sync.Mutex
	ids := func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("audit-%03d", n)
	}

	f := &fixture{
		erp:       mem,
		db:        database,
		overrides: repository.NewSQLiteOverrideRepo(database),
		audits:    repository.NewSQLiteAuditRepo(database),
	}
	base := []Option{WithClock(stepClock()), WithIDGenerator(ids), WithDefaultActor("tester")}
	f.svc = NewRouteService(mem, f.overrides, f.audits, uow, append(base, opts...)...)
	return f
}

func (f *fixture) day(t *testing.T, day domain.Weekday, mode domain.ViewMode) []string {
	t.Helper()
	view, err := f.svc.ListDay(context.Background(), app.ListDayRequest{
		VendorCode: "V1", Weekday: string(day), Mode: string(mode),
	})
	require.NoError(t, err)
	out := make([]string, 0, len(view.Stops))
	for _, s := range view.Stops {
		out = append(out, s.ClientCode)
	}
	return out
}

func (f *fixture) counts(t *testing.T, mode domain.ViewMode) map[domain.Weekday]int {
	t.Helper()
	view, err := f.svc.Counts(context.Background(), app.CountsRequest{VendorCode: "V1", Mode: string(mode)})
	require.NoError(t, err)
	return view.Counts
}

func (f *fixture) move(t *testing.T, client string, from, to domain.Weekday, position string) *app.PlacementResult {
	t.Helper()
	res, err := f.svc.Move(context.Background(), app.MoveRequest{
		VendorCode: "V1", ClientCode: client, FromDay: string(from), ToDay: string(to), Position: position,
	})
	require.NoError(t, err)
	return res
}

func (f *fixture) records(t *testing.T) []domain.OverrideRecord {
	t.Helper()
	recs, err := f.overrides.ListByVendor(context.Background(), "V1")
	require.NoError(t, err)
	return recs
}

// assertParity checks that every day's count equals the length of its list.
func (f *fixture) assertParity(t *testing.T) {
	t.Helper()
	for _, mode := range []domain.ViewMode{domain.ModeNatural, domain.ModeCustom} {
		counts := f.counts(t, mode)
		for _, w := range domain.Weekdays {
			require.Equal(t, len(f.day(t, w, mode)), counts[w], "mode %s day %s", mode, w)
		}
	}
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingObserver) last() UseCaseEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[len(r.events)-1]
}
