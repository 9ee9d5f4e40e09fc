// Package erp reads the legacy ERP: raw visit-day rows, historical sales and
// vendor existence. Nothing in this package writes to the ERP.
package erp

import (
	"context"

	"github.com/alexanderramin/rutero/internal/domain"
)

// Source is the read-only view of the ERP the planner depends on.
type Source interface {
	// VisitRows returns the raw visit-day rows of a vendor in ERP order.
	// Rows are never cached.
	VisitRows(ctx context.Context, vendor string) ([]domain.VisitRow, error)
	SalesTotals(ctx context.Context, vendor string) (domain.SalesTotals, error)
	VendorExists(ctx context.Context, vendor string) (bool, error)
}
