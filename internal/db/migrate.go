package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS route_overrides (
		vendor_code TEXT NOT NULL,
		weekday     TEXT NOT NULL
		            CHECK(weekday IN ('monday','tuesday','wednesday','thursday','friday','saturday','sunday')),
		client_code TEXT NOT NULL,
		position    INTEGER NOT NULL,
		updated_at  TEXT NOT NULL,
		PRIMARY KEY (vendor_code, weekday, client_code)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_route_overrides_client ON route_overrides(vendor_code, client_code)`,

	`CREATE TABLE IF NOT EXISTS route_audit_log (
		id           TEXT PRIMARY KEY,
		vendor_code  TEXT NOT NULL,
		client_code  TEXT NOT NULL,
		action       TEXT NOT NULL
		             CHECK(action IN ('move','restore','block','reset')),
		from_day     TEXT NOT NULL DEFAULT '',
		to_day       TEXT NOT NULL DEFAULT '',
		old_position INTEGER,
		new_position INTEGER,
		actor        TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_route_audit_vendor ON route_audit_log(vendor_code, created_at)`,

	// The audit log is append-only.
	`CREATE TRIGGER IF NOT EXISTS route_audit_log_no_update
		BEFORE UPDATE ON route_audit_log
		BEGIN
			SELECT RAISE(ABORT, 'route_audit_log is append-only');
		END`,
	`CREATE TRIGGER IF NOT EXISTS route_audit_log_no_delete
		BEFORE DELETE ON route_audit_log
		BEGIN
			SELECT RAISE(ABORT, 'route_audit_log is append-only');
		END`,
}
