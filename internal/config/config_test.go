package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(map[string]string{"RUTERO_ERP_FIXTURE": "erp.yaml"})
	require.NoError(t, err)

	assert.Equal(t, "erp.yaml", cfg.ERPFixture)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.False(t, cfg.StrictPositions)
	assert.Equal(t, 5*time.Minute, cfg.SalesCacheTTL)
	assert.Equal(t, 256, cfg.SalesCacheSize)
	assert.Equal(t, "cli", cfg.Actor)
	assert.Empty(t, cfg.MetricsAddr)
}

func TestParse_AllKeys(t *testing.T) {
	cfg, err := Parse(map[string]string{
		"RUTERO_DB_PATH":          "/tmp/r.db",
		"RUTERO_ERP_DSN":          "postgres://erp@localhost/erp",
		"RUTERO_LOG_LEVEL":        "debug",
		"RUTERO_LOG_FORMAT":       "json",
		"RUTERO_STRICT_POSITIONS": "true",
		"RUTERO_SALES_CACHE_TTL":  "30s",
		"RUTERO_SALES_CACHE_SIZE": "8",
		"RUTERO_METRICS_ADDR":     ":9102",
		"RUTERO_ACTOR":            "backoffice",
	})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/r.db", cfg.DBPath)
	assert.Equal(t, "postgres://erp@localhost/erp", cfg.ERPDSN)
	assert.True(t, cfg.StrictPositions)
	assert.Equal(t, 30*time.Second, cfg.SalesCacheTTL)
	assert.Equal(t, 8, cfg.SalesCacheSize)
	assert.Equal(t, ":9102", cfg.MetricsAddr)
	assert.Equal(t, "backoffice", cfg.Actor)

	path, err := cfg.ResolveDBPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/r.db", path)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"no erp", map[string]string{}, "ERP_DSN or RUTERO_ERP_FIXTURE is required"},
		{"both erp", map[string]string{"RUTERO_ERP_DSN": "x", "RUTERO_ERP_FIXTURE": "y"}, "mutually exclusive"},
		{"negative ttl", map[string]string{"RUTERO_ERP_FIXTURE": "f", "RUTERO_SALES_CACHE_TTL": "-1s"}, "must not be negative"},
		{"zero size", map[string]string{"RUTERO_ERP_FIXTURE": "f", "RUTERO_SALES_CACHE_SIZE": "0"}, "SALES_CACHE_SIZE"},
		{"bad level", map[string]string{"RUTERO_ERP_FIXTURE": "f", "RUTERO_LOG_LEVEL": "loud"}, "LOG_LEVEL"},
		{"bad format", map[string]string{"RUTERO_ERP_FIXTURE": "f", "RUTERO_LOG_FORMAT": "xml"}, "LOG_FORMAT"},
		{"bad duration", map[string]string{"RUTERO_ERP_FIXTURE": "f", "RUTERO_SALES_CACHE_TTL": "soon"}, "parsing environment"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.env)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParse_ZeroTTLDisablesCache(t *testing.T) {
	cfg, err := Parse(map[string]string{
		"RUTERO_ERP_FIXTURE":      "f",
		"RUTERO_SALES_CACHE_TTL":  "0s",
		"RUTERO_SALES_CACHE_SIZE": "0",
	})
	require.NoError(t, err)
	assert.Zero(t, cfg.SalesCacheTTL)
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(present, []byte("RUTERO_TEST_LOADENV=from-file\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("RUTERO_TEST_LOADENV") })

	n, err := LoadEnv([]string{present, filepath.Join(dir, ".env.local")})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "from-file", os.Getenv("RUTERO_TEST_LOADENV"))

	n, err = LoadEnv([]string{filepath.Join(dir, "missing")})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestNewLogger_JSON(t *testing.T) {
	cfg := &Config{LogLevel: "warn", LogFormat: "json"}
	var buf bytes.Buffer
	log := cfg.NewLogger(&buf)

	log.Info().Msg("dropped")
	assert.Zero(t, buf.Len(), "info is below warn")

	log.Warn().Str("vendor", "V1").Msg("kept")
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "rutero", line["service"])
	assert.Equal(t, "V1", line["vendor"])
}
