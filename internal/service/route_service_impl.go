package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/rutero/internal/app"
	"github.com/alexanderramin/rutero/internal/db"
	"github.com/alexanderramin/rutero/internal/domain"
	"github.com/alexanderramin/rutero/internal/erp"
	"github.com/alexanderramin/rutero/internal/planner"
	"github.com/alexanderramin/rutero/internal/repository"
	"github.com/google/uuid"
)

// Option configures a RouteService.
type Option func(*routeService)

// WithStrictPositions rejects an explicit position already held by another
// client's explicit record in the target day.
func WithStrictPositions(strict bool) Option {
	return func(s *routeService) { s.strict = strict }
}

func WithClock(now func() time.Time) Option {
	return func(s *routeService) { s.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *routeService) { s.newID = newID }
}

// WithDefaultActor names the actor recorded when a request carries none.
func WithDefaultActor(actor string) Option {
	return func(s *routeService) { s.actor = actor }
}

func WithObservers(observers ...UseCaseObserver) Option {
	return func(s *routeService) { s.observer = useCaseObserverOrNoop(observers) }
}

type routeService struct {
	source    erp.Source
	overrides repository.OverrideRepo
	audits    repository.AuditRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
	strict    bool
	now       func() time.Time
	newID     func() string
	actor     string
}

// NewRouteService wires the planner. Reads go through overrides and audits;
// every mutation runs in one uow transaction on tx-scoped repositories.
func NewRouteService(
	source erp.Source,
	overrides repository.OverrideRepo,
	audits repository.AuditRepo,
	uow db.UnitOfWork,
	opts ...Option,
) RouteService {
	s := &routeService{
		source:    source,
		overrides: overrides,
		audits:    audits,
		uow:       uow,
		observer:  NoopUseCaseObserver{},
		now:       func() time.Time { return time.Now().UTC() },
		newID:     func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *routeService) observe(ctx context.Context, name string, startedAt time.Time, fields map[string]any, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

func (s *routeService) ListDay(ctx context.Context, req app.ListDayRequest) (view *app.DayView, err error) {
	startedAt := time.Now()
	fields := map[string]any{"vendor": req.VendorCode, "weekday": req.Weekday}
	defer func() { s.observe(ctx, "list-day", startedAt, fields, err) }()

	if err = validateRequest(req); err != nil {
		return nil, err
	}
	day, err := domain.ParseWeekday(req.Weekday)
	if err != nil {
		return nil, err
	}
	mode, err := domain.ParseViewMode(req.Mode)
	if err != nil {
		return nil, err
	}
	fields["mode"] = string(mode)

	in, err := s.loadInput(ctx, req.VendorCode, mode)
	if err != nil {
		return nil, err
	}
	entries := planner.Project(in, day, mode)
	recordProjections(mode, 1)
	fields["stops"] = len(entries)

	return &app.DayView{
		VendorCode: req.VendorCode,
		Weekday:    day,
		Mode:       mode,
		Stops:      buildStops(in, entries),
	}, nil
}

func (s *routeService) Counts(ctx context.Context, req app.CountsRequest) (view *app.CountsView, err error) {
	startedAt := time.Now()
	fields := map[string]any{"vendor": req.VendorCode}
	defer func() { s.observe(ctx, "counts", startedAt, fields, err) }()

	if err = validateRequest(req); err != nil {
		return nil, err
	}
	mode, err := domain.ParseViewMode(req.Mode)
	if err != nil {
		return nil, err
	}
	fields["mode"] = string(mode)

	// One read of every input, shared by all seven projections.
	in, err := s.loadInput(ctx, req.VendorCode, mode)
	if err != nil {
		return nil, err
	}
	counts := planner.Counts(in, mode)
	recordProjections(mode, len(counts))

	total := 0
	for _, n := range counts {
		total += n
	}
	fields["total"] = total
	return &app.CountsView{VendorCode: req.VendorCode, Mode: mode, Counts: counts, Total: total}, nil
}

func (s *routeService) Move(ctx context.Context, req app.MoveRequest) (res *app.PlacementResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{
		"vendor":   req.VendorCode,
		"client":   req.ClientCode,
		"from":     req.FromDay,
		"to":       req.ToDay,
		"position": req.Position,
	}
	defer func() { s.observe(ctx, "move", startedAt, fields, err) }()

	if err = validateRequest(req); err != nil {
		return nil, err
	}
	from, err := domain.ParseWeekday(req.FromDay)
	if err != nil {
		return nil, err
	}
	to, err := domain.ParseWeekday(req.ToDay)
	if err != nil {
		return nil, err
	}
	hint, err := planner.ParsePositionHint(req.Position)
	if err != nil {
		return nil, err
	}

	res, err = s.place(ctx, placeOp{
		action: domain.AuditMove,
		vendor: req.VendorCode,
		client: req.ClientCode,
		from:   from,
		to:     to,
		hint:   hint,
		actor:  req.Actor,
	})
	if err != nil {
		return nil, err
	}
	fields["resolved"] = res.Placement.Position
	return res, nil
}

func (s *routeService) Restore(ctx context.Context, req app.RestoreRequest) (res *app.PlacementResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{
		"vendor":   req.VendorCode,
		"client":   req.ClientCode,
		"to":       req.ToDay,
		"position": req.Position,
	}
	defer func() { s.observe(ctx, "restore", startedAt, fields, err) }()

	if err = validateRequest(req); err != nil {
		return nil, err
	}
	to, err := domain.ParseWeekday(req.ToDay)
	if err != nil {
		return nil, err
	}
	hint, err := planner.ParsePositionHint(req.Position)
	if err != nil {
		return nil, err
	}

	res, err = s.place(ctx, placeOp{
		action: domain.AuditRestore,
		vendor: req.VendorCode,
		client: req.ClientCode,
		to:     to,
		hint:   hint,
		actor:  req.Actor,
	})
	if err != nil {
		return nil, err
	}
	fields["resolved"] = res.Placement.Position
	return res, nil
}

// placeOp is a move or a restore. from is empty for restores.
type placeOp struct {
	action domain.AuditAction
	vendor string
	client string
	from   domain.Weekday
	to     domain.Weekday
	hint   planner.PositionHint
	actor  string
}

// place resolves the hint against the current customized view of op.to,
// upserts the record, drops the client's other active placements and appends
// the audit entry, all in one transaction.
func (s *routeService) place(ctx context.Context, op placeOp) (*app.PlacementResult, error) {
	assignment, sales, err := s.loadNatural(ctx, op.vendor)
	if err != nil {
		return nil, err
	}
	if !assignment.Has(op.client) {
		return nil, domain.NotFound("client_code", "client %q is not assigned to vendor %q", op.client, op.vendor)
	}

	var result *app.PlacementResult
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		overrides := repository.NewSQLiteOverrideRepo(tx)
		audits := repository.NewSQLiteAuditRepo(tx)

		records, err := overrides.ListByVendor(ctx, op.vendor)
		if err != nil {
			return err
		}
		in := planner.Input{Assignment: assignment, Sales: sales, Overrides: planner.IndexOverrides(records)}

		var oldPos *int64
		if op.action == domain.AuditMove {
			oldPos = positionIn(planner.Project(in, op.from, domain.ModeCustom), op.client)
			if oldPos == nil {
				return domain.Invalid("from_day", "client %q is not on the %s route", op.client, op.from)
			}
		}

		toDay := planner.Project(in, op.to, domain.ModeCustom)
		if op.action == domain.AuditRestore {
			oldPos = positionIn(toDay, op.client)
		}
		pos := planner.ResolvePosition(toDay, op.client, op.hint)

		if op.action == domain.AuditMove && op.from == op.to && *oldPos == pos {
			return domain.Invalid("position", "client %q already sits at %d on %s", op.client, pos, op.to)
		}
		if s.strict && op.hint.Kind == planner.HintExact {
			for _, e := range toDay {
				if e.ClientCode != op.client && e.Placement.Kind == domain.PlacementOverridden && e.Position == pos {
					recordPositionConflict()
					return domain.Conflict("position", "position %d on %s is already held by client %q", pos, op.to, e.ClientCode)
				}
			}
		}

		now := s.now()
		rec := domain.OverrideRecord{
			VendorCode: op.vendor,
			Weekday:    op.to,
			ClientCode: op.client,
			Position:   pos,
			UpdatedAt:  now,
		}
		if err := overrides.Put(ctx, rec); err != nil {
			return err
		}
		if _, err := overrides.DeleteActiveExcept(ctx, op.vendor, op.client, op.to); err != nil {
			return err
		}

		newPos := pos
		entry := s.auditEntry(op.action, op.vendor, op.client, op.actor, now)
		entry.FromDay = op.from
		entry.ToDay = op.to
		entry.OldPosition = oldPos
		entry.NewPosition = &newPos
		if err := audits.Append(ctx, &entry); err != nil {
			return err
		}

		after, err := overrides.ListByVendor(ctx, op.vendor)
		if err != nil {
			return err
		}
		in.Overrides = planner.IndexOverrides(after)
		result = &app.PlacementResult{
			VendorCode: op.vendor,
			ClientCode: op.client,
			FromDay:    op.from,
			ToDay:      op.to,
			Placement:  rec.Placement(),
			Index:      planner.IndexOf(planner.Project(in, op.to, domain.ModeCustom), op.client),
			Audit:      entry,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *routeService) Block(ctx context.Context, req app.BlockRequest) (res *app.PlacementResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"vendor": req.VendorCode, "client": req.ClientCode, "weekday": req.Weekday}
	defer func() { s.observe(ctx, "block", startedAt, fields, err) }()

	if err = validateRequest(req); err != nil {
		return nil, err
	}
	day, err := domain.ParseWeekday(req.Weekday)
	if err != nil {
		return nil, err
	}
	assignment, sales, err := s.loadNatural(ctx, req.VendorCode)
	if err != nil {
		return nil, err
	}
	if !assignment.Has(req.ClientCode) {
		return nil, domain.NotFound("client_code", "client %q is not assigned to vendor %q", req.ClientCode, req.VendorCode)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		overrides := repository.NewSQLiteOverrideRepo(tx)
		audits := repository.NewSQLiteAuditRepo(tx)

		records, err := overrides.ListByVendor(ctx, req.VendorCode)
		if err != nil {
			return err
		}
		in := planner.Input{Assignment: assignment, Sales: sales, Overrides: planner.IndexOverrides(records)}
		if in.Overrides.Placement(req.ClientCode, day).Kind == domain.PlacementBlocked {
			return domain.Invalid("weekday", "client %q is already blocked on %s", req.ClientCode, day)
		}
		oldPos := positionIn(planner.Project(in, day, domain.ModeCustom), req.ClientCode)

		now := s.now()
		rec := domain.OverrideRecord{
			VendorCode: req.VendorCode,
			Weekday:    day,
			ClientCode: req.ClientCode,
			Position:   domain.BlockedPosition,
			UpdatedAt:  now,
		}
		if err := overrides.Put(ctx, rec); err != nil {
			return err
		}

		entry := s.auditEntry(domain.AuditBlock, req.VendorCode, req.ClientCode, req.Actor, now)
		entry.FromDay = day
		entry.OldPosition = oldPos
		if err := audits.Append(ctx, &entry); err != nil {
			return err
		}

		// Losing its only active placement would bring the client back on
		// the natural days it was moved away from. Those stay blocked.
		for _, d := range ghostedDays(assignment, in.Overrides, req.ClientCode, day) {
			marker := rec
			marker.Weekday = d
			if err := overrides.Put(ctx, marker); err != nil {
				return err
			}
			extra := s.auditEntry(domain.AuditBlock, req.VendorCode, req.ClientCode, req.Actor, now)
			extra.FromDay = d
			if err := audits.Append(ctx, &extra); err != nil {
				return err
			}
		}

		res = &app.PlacementResult{
			VendorCode: req.VendorCode,
			ClientCode: req.ClientCode,
			FromDay:    day,
			ToDay:      day,
			Placement:  rec.Placement(),
			Index:      -1,
			Audit:      entry,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *routeService) ResetDay(ctx context.Context, req app.ResetDayRequest) (res *app.ResetResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"vendor": req.VendorCode, "weekday": req.Weekday}
	defer func() { s.observe(ctx, "reset-day", startedAt, fields, err) }()

	if err = validateRequest(req); err != nil {
		return nil, err
	}
	day, err := domain.ParseWeekday(req.Weekday)
	if err != nil {
		return nil, err
	}
	if err = s.checkVendor(ctx, req.VendorCode); err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		overrides := repository.NewSQLiteOverrideRepo(tx)
		audits := repository.NewSQLiteAuditRepo(tx)

		removed, err := overrides.DeleteByDay(ctx, req.VendorCode, day)
		if err != nil {
			return err
		}
		now := s.now()
		for _, r := range removed {
			entry := s.auditEntry(domain.AuditReset, req.VendorCode, r.ClientCode, req.Actor, now)
			entry.FromDay = day
			if !r.Blocked() {
				p := r.Position
				entry.OldPosition = &p
			}
			if err := audits.Append(ctx, &entry); err != nil {
				return err
			}
		}
		res = &app.ResetResult{VendorCode: req.VendorCode, Weekday: day, Removed: removed}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["removed"] = len(res.Removed)
	return res, nil
}

func (s *routeService) Overrides(ctx context.Context, vendor string) (records []domain.OverrideRecord, err error) {
	startedAt := time.Now()
	fields := map[string]any{"vendor": vendor}
	defer func() { s.observe(ctx, "overrides", startedAt, fields, err) }()

	if vendor == "" {
		return nil, domain.Invalid("vendor_code", "is required")
	}
	if err = s.checkVendor(ctx, vendor); err != nil {
		return nil, err
	}
	return s.overrides.ListByVendor(ctx, vendor)
}

func (s *routeService) AuditTrail(ctx context.Context, req app.AuditTrailRequest) (entries []domain.AuditEntry, err error) {
	startedAt := time.Now()
	fields := map[string]any{"vendor": req.VendorCode, "limit": req.Limit}
	defer func() { s.observe(ctx, "audit-trail", startedAt, fields, err) }()

	if err = validateRequest(req); err != nil {
		return nil, err
	}
	if err = s.checkVendor(ctx, req.VendorCode); err != nil {
		return nil, err
	}
	return s.audits.ListByVendor(ctx, req.VendorCode, req.Limit)
}

func (s *routeService) checkVendor(ctx context.Context, vendor string) error {
	ok, err := s.source.VendorExists(ctx, vendor)
	if err != nil {
		return fmt.Errorf("checking vendor %s: %w", vendor, err)
	}
	if !ok {
		return domain.NotFound("vendor_code", "unknown vendor %q", vendor)
	}
	return nil
}

// loadNatural reads the ERP side of a vendor: its consolidated assignment and
// sales totals. Visit rows are read fresh on every call.
func (s *routeService) loadNatural(ctx context.Context, vendor string) (*planner.Assignment, domain.SalesTotals, error) {
	if err := s.checkVendor(ctx, vendor); err != nil {
		return nil, nil, err
	}
	rows, err := s.source.VisitRows(ctx, vendor)
	if err != nil {
		return nil, nil, fmt.Errorf("reading visit rows for %s: %w", vendor, err)
	}
	sales, err := s.source.SalesTotals(ctx, vendor)
	if err != nil {
		return nil, nil, fmt.Errorf("reading sales for %s: %w", vendor, err)
	}
	return planner.Consolidate(rows), sales, nil
}

// loadInput builds a projection input. The natural view never reads the
// override store.
func (s *routeService) loadInput(ctx context.Context, vendor string, mode domain.ViewMode) (planner.Input, error) {
	assignment, sales, err := s.loadNatural(ctx, vendor)
	if err != nil {
		return planner.Input{}, err
	}
	in := planner.Input{Assignment: assignment, Sales: sales}
	if mode == domain.ModeCustom {
		records, err := s.overrides.ListByVendor(ctx, vendor)
		if err != nil {
			return planner.Input{}, err
		}
		in.Overrides = planner.IndexOverrides(records)
	}
	return in, nil
}

func (s *routeService) auditEntry(action domain.AuditAction, vendor, client, actor string, at time.Time) domain.AuditEntry {
	return domain.AuditEntry{
		ID:         s.newID(),
		VendorCode: vendor,
		ClientCode: client,
		Action:     action,
		Actor:      domain.CoalesceStr(actor, s.actor),
		CreatedAt:  at,
	}
}

// ghostedDays returns the natural days of client that hold no record and
// are hidden only because day carries its single active placement.
func ghostedDays(assignment *planner.Assignment, ix planner.OverrideIndex, client string, day domain.Weekday) []domain.Weekday {
	active := ix.ActiveDays(client)
	if len(active) != 1 || active[0] != day {
		return nil
	}
	c, ok := assignment.Client(client)
	if !ok {
		return nil
	}
	var out []domain.Weekday
	for _, d := range c.Days.Days() {
		if d != day && ix.Placement(client, d).Kind == domain.PlacementNatural {
			out = append(out, d)
		}
	}
	return out
}

// positionIn returns the effective position of client within day, or nil.
func positionIn(day []planner.Entry, client string) *int64 {
	idx := planner.IndexOf(day, client)
	if idx < 0 {
		return nil
	}
	p := day[idx].Position
	return &p
}

func buildStops(in planner.Input, entries []planner.Entry) []app.RouteStop {
	stops := make([]app.RouteStop, len(entries))
	for i, e := range entries {
		c, _ := in.Assignment.Client(e.ClientCode)
		stops[i] = app.RouteStop{
			Sequence:   i + 1,
			ClientCode: e.ClientCode,
			Name:       c.Name,
			Address:    c.Address,
			Latitude:   c.Latitude,
			Longitude:  c.Longitude,
			SalesTotal: in.Sales.Of(e.ClientCode),
			SortKey:    e.Position,
			Placement:  e.Placement.Kind,
		}
	}
	return stops
}
