package testutil

import (
	"time"

	"github.com/alexanderramin/rutero/internal/domain"
	"github.com/google/uuid"
)

// FixedTime is the clock used by fixtures so stored timestamps are predictable.
var FixedTime = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

// VisitRow options
type VisitRowOption func(*domain.VisitRow)

func WithRank(rank int) VisitRowOption {
	return func(r *domain.VisitRow) {
		r.Rank = &rank
	}
}

func WithClientName(name string) VisitRowOption {
	return func(r *domain.VisitRow) {
		r.ClientName = name
	}
}

func WithAddress(addr string) VisitRowOption {
	return func(r *domain.VisitRow) {
		r.Address = addr
	}
}

func WithCoordinates(lat, lng float64) VisitRowOption {
	return func(r *domain.VisitRow) {
		r.Latitude = &lat
		r.Longitude = &lng
	}
}

func NewTestVisitRow(vendor, client string, days []domain.Weekday, opts ...VisitRowOption) domain.VisitRow {
	r := domain.VisitRow{
		VendorCode: vendor,
		ClientCode: client,
		ClientName: "Client " + client,
		Days:       domain.NewDaySet(days...),
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// OverrideRecord options
type OverrideOption func(*domain.OverrideRecord)

func WithUpdatedAt(t time.Time) OverrideOption {
	return func(o *domain.OverrideRecord) {
		o.UpdatedAt = t
	}
}

func AsBlocked() OverrideOption {
	return func(o *domain.OverrideRecord) {
		o.Position = domain.BlockedPosition
	}
}

func NewTestOverride(vendor string, day domain.Weekday, client string, position int64, opts ...OverrideOption) domain.OverrideRecord {
	o := domain.OverrideRecord{
		VendorCode: vendor,
		Weekday:    day,
		ClientCode: client,
		Position:   position,
		UpdatedAt:  FixedTime,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// AuditEntry options
type AuditOption func(*domain.AuditEntry)

func WithDays(from, to domain.Weekday) AuditOption {
	return func(e *domain.AuditEntry) {
		e.FromDay = from
		e.ToDay = to
	}
}

func WithPositions(oldPos, newPos *int64) AuditOption {
	return func(e *domain.AuditEntry) {
		e.OldPosition = oldPos
		e.NewPosition = newPos
	}
}

func WithCreatedAt(t time.Time) AuditOption {
	return func(e *domain.AuditEntry) {
		e.CreatedAt = t
	}
}

func NewTestAuditEntry(vendor, client string, action domain.AuditAction, opts ...AuditOption) *domain.AuditEntry {
	e := &domain.AuditEntry{
		ID:         uuid.New().String(),
		VendorCode: vendor,
		ClientCode: client,
		Action:     action,
		Actor:      "tester",
		CreatedAt:  FixedTime,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Int64 returns a pointer to v.
func Int64(v int64) *int64 {
	return &v
}
