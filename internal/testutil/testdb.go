package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/alexanderramin/rutero/internal/db"
	"github.com/alexanderramin/rutero/internal/domain"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestUoW creates a UnitOfWork backed by the given test database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

// SeedOverrides writes records straight into route_overrides, bypassing the
// service layer.
func SeedOverrides(t *testing.T, database *sql.DB, records ...domain.OverrideRecord) {
	t.Helper()
	for _, r := range records {
		_, err := database.ExecContext(context.Background(),
			`INSERT INTO route_overrides (vendor_code, weekday, client_code, position, updated_at)
			VALUES (?, ?, ?, ?, ?)`,
			r.VendorCode, string(r.Weekday), r.ClientCode, r.Position,
			r.UpdatedAt.UTC().Format("2006-01-02T15:04:05.000000Z07:00"))
		if err != nil {
			t.Fatalf("seeding override %s/%s/%s: %v", r.VendorCode, r.Weekday, r.ClientCode, err)
		}
	}
}
