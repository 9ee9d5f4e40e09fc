// Package config loads rutero settings from the environment. Every key is
// prefixed with RUTERO_; .env and .env.local in the working directory are
// read first when present and never override variables already set.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const Prefix = "RUTERO_"

// DefaultEnvFiles are loaded by Load when they exist.
var DefaultEnvFiles = []string{".env", ".env.local"}

type Config struct {
	// DBPath is the override store. Empty means ~/.rutero/rutero.db.
	DBPath string `env:"DB_PATH"`

	// Exactly one ERP source must be configured.
	ERPDSN     string `env:"ERP_DSN"`
	ERPFixture string `env:"ERP_FIXTURE"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"` // console or json

	StrictPositions bool `env:"STRICT_POSITIONS" envDefault:"false"`

	// SalesCacheTTL of zero disables the sales cache.
	SalesCacheTTL  time.Duration `env:"SALES_CACHE_TTL" envDefault:"5m"`
	SalesCacheSize int           `env:"SALES_CACHE_SIZE" envDefault:"256"`

	// MetricsAddr, when set, serves /metrics on that address.
	MetricsAddr string `env:"METRICS_ADDR"`

	// Actor is recorded in the audit log for requests that name none.
	Actor string `env:"ACTOR" envDefault:"cli"`
}

// LoadEnv loads the env files that exist and returns how many were read.
func LoadEnv(envFiles []string) (int, error) {
	existing := make([]string, 0, len(envFiles))
	for _, f := range envFiles {
		if st, err := os.Stat(f); err == nil && !st.IsDir() {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return 0, nil
	}
	return len(existing), godotenv.Load(existing...)
}

// Load reads the default env files and then the process environment.
func Load() (*Config, error) {
	if _, err := LoadEnv(DefaultEnvFiles); err != nil {
		return nil, fmt.Errorf("loading env files: %w", err)
	}
	return Parse(nil)
}

// Parse builds a Config from environ, or from the process environment when
// environ is nil, and validates it.
func Parse(environ map[string]string) (*Config, error) {
	cfg := &Config{}
	opts := env.Options{Prefix: Prefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	switch {
	case c.ERPDSN == "" && c.ERPFixture == "":
		errs = append(errs, fmt.Errorf("%sERP_DSN or %sERP_FIXTURE is required", Prefix, Prefix))
	case c.ERPDSN != "" && c.ERPFixture != "":
		errs = append(errs, fmt.Errorf("%sERP_DSN and %sERP_FIXTURE are mutually exclusive", Prefix, Prefix))
	}
	if c.SalesCacheTTL < 0 {
		errs = append(errs, fmt.Errorf("%sSALES_CACHE_TTL must not be negative, got %s", Prefix, c.SalesCacheTTL))
	}
	if c.SalesCacheTTL > 0 && c.SalesCacheSize <= 0 {
		errs = append(errs, fmt.Errorf("%sSALES_CACHE_SIZE must be positive when the cache is enabled", Prefix))
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		errs = append(errs, fmt.Errorf("%sLOG_LEVEL: %w", Prefix, err))
	}
	switch strings.ToLower(c.LogFormat) {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("%sLOG_FORMAT must be console or json, got %q", Prefix, c.LogFormat))
	}
	return errors.Join(errs...)
}

// ResolveDBPath returns DBPath or the default location under the home directory.
func (c *Config) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".rutero", "rutero.db"), nil
}
