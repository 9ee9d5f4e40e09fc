package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/rutero/internal/domain"
)

// ErrNotFound is wrapped by repositories when a keyed lookup matches no row.
var ErrNotFound = errors.New("not found")

// OverrideRepo persists the per-(vendor, weekday, client) override layer.
type OverrideRepo interface {
	// Get returns the records of one (vendor, weekday), position order.
	Get(ctx context.Context, vendor string, day domain.Weekday) ([]domain.OverrideRecord, error)
	// Find returns the single record for (vendor, weekday, client) or wraps ErrNotFound.
	Find(ctx context.Context, vendor string, day domain.Weekday, client string) (*domain.OverrideRecord, error)
	Put(ctx context.Context, rec domain.OverrideRecord) error
	Delete(ctx context.Context, vendor string, day domain.Weekday, client string) error
	ListByVendor(ctx context.Context, vendor string) ([]domain.OverrideRecord, error)
	ListByClient(ctx context.Context, vendor, client string) ([]domain.OverrideRecord, error)
	// DeleteActiveExcept removes every non-blocked record of the client on
	// days other than keep and returns what was removed.
	DeleteActiveExcept(ctx context.Context, vendor, client string, keep domain.Weekday) ([]domain.OverrideRecord, error)
	// DeleteByDay removes all records of a (vendor, weekday) and returns them.
	DeleteByDay(ctx context.Context, vendor string, day domain.Weekday) ([]domain.OverrideRecord, error)
}

type AuditRepo interface {
	Append(ctx context.Context, e *domain.AuditEntry) error
	// ListByVendor returns the newest entries first. limit <= 0 means no limit.
	ListByVendor(ctx context.Context, vendor string, limit int) ([]domain.AuditEntry, error)
}
