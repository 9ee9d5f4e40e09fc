package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	// A second run must be a no-op.
	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"route_overrides", "route_audit_log"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexesAndTriggers(t *testing.T) {
	db := openTestDB(t)

	for _, idx := range []string{"idx_route_overrides_client", "idx_route_audit_vendor"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
	for _, trg := range []string{"route_audit_log_no_update", "route_audit_log_no_delete"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='trigger' AND name=?`, trg).Scan(&name)
		require.NoError(t, err, "trigger %s should exist", trg)
	}
}

func TestMigrate_OverrideKeyIsVendorDayClient(t *testing.T) {
	db := openTestDB(t)

	insert := `INSERT INTO route_overrides (vendor_code, weekday, client_code, position, updated_at) VALUES (?, ?, ?, ?, ?)`
	_, err := db.Exec(insert, "V1", "monday", "A", 1, "2026-01-05T10:00:00Z")
	require.NoError(t, err)
	_, err = db.Exec(insert, "V1", "tuesday", "A", 1, "2026-01-05T10:00:00Z")
	require.NoError(t, err)
	_, err = db.Exec(insert, "V1", "monday", "A", 2, "2026-01-05T10:00:00Z")
	assert.Error(t, err, "second record for the same (vendor, weekday, client) must be rejected")
}

func TestMigrate_RejectsUnknownWeekday(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO route_overrides (vendor_code, weekday, client_code, position, updated_at)
		VALUES ('V1', 'someday', 'A', 0, '2026-01-05T10:00:00Z')`)
	assert.Error(t, err)
}

func TestAuditLog_IsAppendOnly(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO route_audit_log (id, vendor_code, client_code, action, created_at)
		VALUES ('a1', 'V1', 'A', 'move', '2026-01-05T10:00:00Z')`)
	require.NoError(t, err)

	_, err = db.Exec(`UPDATE route_audit_log SET actor = 'mallory' WHERE id = 'a1'`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "append-only")

	_, err = db.Exec(`DELETE FROM route_audit_log WHERE id = 'a1'`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "append-only")
}
