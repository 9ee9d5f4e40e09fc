package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/rutero/internal/db"
	"github.com/alexanderramin/rutero/internal/domain"
)

const overrideColumns = `vendor_code, weekday, client_code, position, updated_at`

// SQLiteOverrideRepo implements OverrideRepo using a SQLite database.
type SQLiteOverrideRepo struct {
	db db.DBTX
}

// NewSQLiteOverrideRepo creates a new SQLiteOverrideRepo. conn may be the
// *sql.DB or a transaction handed out by a UnitOfWork.
func NewSQLiteOverrideRepo(conn db.DBTX) *SQLiteOverrideRepo {
	return &SQLiteOverrideRepo{db: conn}
}

func (r *SQLiteOverrideRepo) Get(ctx context.Context, vendor string, day domain.Weekday) ([]domain.OverrideRecord, error) {
	query := `SELECT ` + overrideColumns + ` FROM route_overrides
		WHERE vendor_code = ? AND weekday = ?
		ORDER BY position, client_code`
	rows, err := r.db.QueryContext(ctx, query, vendor, string(day))
	if err != nil {
		return nil, fmt.Errorf("listing overrides for %s/%s: %w", vendor, day, err)
	}
	defer rows.Close()
	return r.scanOverrides(rows)
}

func (r *SQLiteOverrideRepo) Find(ctx context.Context, vendor string, day domain.Weekday, client string) (*domain.OverrideRecord, error) {
	query := `SELECT ` + overrideColumns + ` FROM route_overrides
		WHERE vendor_code = ? AND weekday = ? AND client_code = ?`
	row := r.db.QueryRowContext(ctx, query, vendor, string(day), client)
	rec, err := r.scanOverride(row)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Put inserts or replaces the record keyed by (vendor, weekday, client).
func (r *SQLiteOverrideRepo) Put(ctx context.Context, rec domain.OverrideRecord) error {
	query := `INSERT INTO route_overrides (` + overrideColumns + `)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(vendor_code, weekday, client_code)
		DO UPDATE SET position = excluded.position, updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		rec.VendorCode,
		string(rec.Weekday),
		rec.ClientCode,
		rec.Position,
		formatTime(rec.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("upserting override %s/%s/%s: %w", rec.VendorCode, rec.Weekday, rec.ClientCode, err)
	}
	return nil
}

func (r *SQLiteOverrideRepo) Delete(ctx context.Context, vendor string, day domain.Weekday, client string) error {
	query := `DELETE FROM route_overrides WHERE vendor_code = ? AND weekday = ? AND client_code = ?`
	res, err := r.db.ExecContext(ctx, query, vendor, string(day), client)
	if err != nil {
		return fmt.Errorf("deleting override %s/%s/%s: %w", vendor, day, client, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting override: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("override %s/%s/%s: %w", vendor, day, client, ErrNotFound)
	}
	return nil
}

func (r *SQLiteOverrideRepo) ListByVendor(ctx context.Context, vendor string) ([]domain.OverrideRecord, error) {
	query := `SELECT ` + overrideColumns + ` FROM route_overrides
		WHERE vendor_code = ?
		ORDER BY weekday, position, client_code`
	rows, err := r.db.QueryContext(ctx, query, vendor)
	if err != nil {
		return nil, fmt.Errorf("listing overrides for vendor %s: %w", vendor, err)
	}
	defer rows.Close()
	return r.scanOverrides(rows)
}

func (r *SQLiteOverrideRepo) ListByClient(ctx context.Context, vendor, client string) ([]domain.OverrideRecord, error) {
	query := `SELECT ` + overrideColumns + ` FROM route_overrides
		WHERE vendor_code = ? AND client_code = ?
		ORDER BY weekday`
	rows, err := r.db.QueryContext(ctx, query, vendor, client)
	if err != nil {
		return nil, fmt.Errorf("listing overrides for client %s/%s: %w", vendor, client, err)
	}
	defer rows.Close()
	return r.scanOverrides(rows)
}

func (r *SQLiteOverrideRepo) DeleteActiveExcept(ctx context.Context, vendor, client string, keep domain.Weekday) ([]domain.OverrideRecord, error) {
	query := `SELECT ` + overrideColumns + ` FROM route_overrides
		WHERE vendor_code = ? AND client_code = ? AND weekday <> ? AND position <> ?
		ORDER BY weekday`
	rows, err := r.db.QueryContext(ctx, query, vendor, client, string(keep), domain.BlockedPosition)
	if err != nil {
		return nil, fmt.Errorf("listing placements of %s/%s: %w", vendor, client, err)
	}
	removed, err := r.scanOverrides(rows)
	rows.Close()
	if err != nil {
		return nil, err
	}
	if len(removed) == 0 {
		return nil, nil
	}

	_, err = r.db.ExecContext(ctx,
		`DELETE FROM route_overrides
		WHERE vendor_code = ? AND client_code = ? AND weekday <> ? AND position <> ?`,
		vendor, client, string(keep), domain.BlockedPosition)
	if err != nil {
		return nil, fmt.Errorf("removing placements of %s/%s: %w", vendor, client, err)
	}
	return removed, nil
}

func (r *SQLiteOverrideRepo) DeleteByDay(ctx context.Context, vendor string, day domain.Weekday) ([]domain.OverrideRecord, error) {
	removed, err := r.Get(ctx, vendor, day)
	if err != nil {
		return nil, err
	}
	if len(removed) == 0 {
		return nil, nil
	}
	_, err = r.db.ExecContext(ctx,
		`DELETE FROM route_overrides WHERE vendor_code = ? AND weekday = ?`,
		vendor, string(day))
	if err != nil {
		return nil, fmt.Errorf("resetting %s/%s: %w", vendor, day, err)
	}
	return removed, nil
}

func (r *SQLiteOverrideRepo) scanOverride(row *sql.Row) (domain.OverrideRecord, error) {
	var (
		rec       domain.OverrideRecord
		weekday   string
		updatedAt string
	)
	err := row.Scan(&rec.VendorCode, &weekday, &rec.ClientCode, &rec.Position, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return rec, fmt.Errorf("override: %w", ErrNotFound)
		}
		return rec, fmt.Errorf("scanning override: %w", err)
	}
	rec.Weekday = domain.Weekday(weekday)
	if rec.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return rec, err
	}
	return rec, nil
}

func (r *SQLiteOverrideRepo) scanOverrides(rows *sql.Rows) ([]domain.OverrideRecord, error) {
	var out []domain.OverrideRecord
	for rows.Next() {
		var (
			rec       domain.OverrideRecord
			weekday   string
			updatedAt string
		)
		if err := rows.Scan(&rec.VendorCode, &weekday, &rec.ClientCode, &rec.Position, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning override row: %w", err)
		}
		rec.Weekday = domain.Weekday(weekday)
		t, err := parseTime(updatedAt)
		if err != nil {
			return nil, err
		}
		rec.UpdatedAt = t
		out = append(out, rec)
	}
	return out, rows.Err()
}
