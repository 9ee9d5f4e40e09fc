package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexanderramin/rutero/internal/cli"
	"github.com/alexanderramin/rutero/internal/config"
	"github.com/alexanderramin/rutero/internal/db"
	"github.com/alexanderramin/rutero/internal/erp"
	"github.com/alexanderramin/rutero/internal/repository"
	"github.com/alexanderramin/rutero/internal/service"
	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	logger := cfg.NewLogger(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	routes, cleanup, err := wire(ctx, cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("startup failed")
		return 1
	}
	defer cleanup()

	if cfg.MetricsAddr != "" {
		srv := serveMetrics(cfg.MetricsAddr, logger)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	app := &cli.App{
		Routes: routes,
		IsTerminal: func() bool {
			return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
		},
	}
	return cli.Run(ctx, app, os.Args[1:], os.Stdout, os.Stderr)
}

// wire opens the override store and the ERP and builds the route service.
func wire(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (service.RouteService, func(), error) {
	dbPath, err := cfg.ResolveDBPath()
	if err != nil {
		return nil, nil, err
	}
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	closers := []func(){func() { database.Close() }}
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var source erp.Source
	if cfg.ERPDSN != "" {
		pool, err := erp.Connect(ctx, cfg.ERPDSN)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		closers = append(closers, pool.Close)
		source = erp.NewPostgresSource(pool)
		logger.Debug().Msg("reading ERP from postgres")
	} else {
		mem, err := erp.LoadFixture(cfg.ERPFixture)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		source = mem
		logger.Debug().Str("fixture", cfg.ERPFixture).Msg("reading ERP from fixture")
	}
	if cfg.SalesCacheTTL > 0 {
		source = erp.NewCachedSales(source, cfg.SalesCacheSize, cfg.SalesCacheTTL)
	}

	routes := service.NewRouteService(
		source,
		repository.NewSQLiteOverrideRepo(database),
		repository.NewSQLiteAuditRepo(database),
		db.NewSQLiteUnitOfWork(database),
		service.WithStrictPositions(cfg.StrictPositions),
		service.WithDefaultActor(cfg.Actor),
		service.WithObservers(
			service.NewLogUseCaseObserver(logger),
			service.NewMetricsUseCaseObserver(),
		),
	)
	return routes, cleanup, nil
}

func serveMetrics(addr string, logger zerolog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn().Err(err).Str("addr", addr).Msg("metrics server stopped")
		}
	}()
	return srv
}
