package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/rutero/internal/db"
	"github.com/alexanderramin/rutero/internal/domain"
)

// SQLiteAuditRepo implements AuditRepo on the append-only route_audit_log table.
type SQLiteAuditRepo struct {
	db db.DBTX
}

func NewSQLiteAuditRepo(conn db.DBTX) *SQLiteAuditRepo {
	return &SQLiteAuditRepo{db: conn}
}

func (r *SQLiteAuditRepo) Append(ctx context.Context, e *domain.AuditEntry) error {
	query := `INSERT INTO route_audit_log
		(id, vendor_code, client_code, action, from_day, to_day, old_position, new_position, actor, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.VendorCode,
		e.ClientCode,
		string(e.Action),
		string(e.FromDay),
		string(e.ToDay),
		nullableInt64ToValue(e.OldPosition),
		nullableInt64ToValue(e.NewPosition),
		e.Actor,
		formatTime(e.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("appending audit entry: %w", err)
	}
	return nil
}

func (r *SQLiteAuditRepo) ListByVendor(ctx context.Context, vendor string, limit int) ([]domain.AuditEntry, error) {
	query := `SELECT id, vendor_code, client_code, action, from_day, to_day,
		old_position, new_position, actor, created_at
		FROM route_audit_log
		WHERE vendor_code = ?
		ORDER BY created_at DESC, rowid DESC`
	args := []any{vendor}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing audit log for %s: %w", vendor, err)
	}
	defer rows.Close()

	var out []domain.AuditEntry
	for rows.Next() {
		var (
			e                domain.AuditEntry
			action, from, to string
			oldPos, newPos   sql.NullInt64
			createdAt        string
		)
		if err := rows.Scan(&e.ID, &e.VendorCode, &e.ClientCode, &action, &from, &to,
			&oldPos, &newPos, &e.Actor, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning audit entry: %w", err)
		}
		e.Action = domain.AuditAction(action)
		e.FromDay = domain.Weekday(from)
		e.ToDay = domain.Weekday(to)
		e.OldPosition = nullInt64Ptr(oldPos)
		e.NewPosition = nullInt64Ptr(newPos)
		if e.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
