package erp

import (
	"context"
	"fmt"

	"github.com/alexanderramin/rutero/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// querier is the subset of *pgxpool.Pool used by PostgresSource.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresSource reads the ERP replica tables:
//
//	erp_vendors(code)
//	erp_visit_days(vendor_code, client_code, client_name, address, latitude,
//	    longitude, visit_rank, seq, monday .. sunday)
//	erp_sales_history(vendor_code, client_code, amount numeric)
type PostgresSource struct {
	db querier
}

// NewPostgresSource creates a PostgresSource on an open pool.
func NewPostgresSource(pool *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{db: pool}
}

// Connect opens a pool for dsn and checks that the server answers.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening erp pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging erp: %w", err)
	}
	return pool, nil
}

func (s *PostgresSource) VisitRows(ctx context.Context, vendor string) ([]domain.VisitRow, error) {
	query := `
		SELECT client_code, COALESCE(client_name, ''), COALESCE(address, ''),
		       latitude, longitude, visit_rank,
		       monday, tuesday, wednesday, thursday, friday, saturday, sunday
		FROM erp_visit_days
		WHERE vendor_code = $1
		ORDER BY seq, client_code
	`
	rows, err := s.db.Query(ctx, query, vendor)
	if err != nil {
		return nil, fmt.Errorf("querying visit rows for %s: %w", vendor, err)
	}
	defer rows.Close()

	var out []domain.VisitRow
	for rows.Next() {
		row, err := scanVisitRow(rows, vendor)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading visit rows for %s: %w", vendor, err)
	}
	return out, nil
}

func scanVisitRow(sc pgx.Row, vendor string) (domain.VisitRow, error) {
	var (
		r    = domain.VisitRow{VendorCode: vendor}
		rank *int32
		flag [7]bool
	)
	err := sc.Scan(&r.ClientCode, &r.ClientName, &r.Address,
		&r.Latitude, &r.Longitude, &rank,
		&flag[0], &flag[1], &flag[2], &flag[3], &flag[4], &flag[5], &flag[6])
	if err != nil {
		return r, fmt.Errorf("scanning visit row: %w", err)
	}
	if rank != nil {
		v := int(*rank)
		r.Rank = &v
	}
	r.Days = domain.DaySet(flag)
	return r, nil
}

// SalesTotals sums the sales history per client. Amounts travel as text so
// numeric precision survives into decimal.Decimal.
func (s *PostgresSource) SalesTotals(ctx context.Context, vendor string) (domain.SalesTotals, error) {
	query := `
		SELECT client_code, SUM(amount)::text
		FROM erp_sales_history
		WHERE vendor_code = $1
		GROUP BY client_code
	`
	rows, err := s.db.Query(ctx, query, vendor)
	if err != nil {
		return nil, fmt.Errorf("querying sales for %s: %w", vendor, err)
	}
	defer rows.Close()

	totals := make(domain.SalesTotals)
	for rows.Next() {
		var client, raw string
		if err := rows.Scan(&client, &raw); err != nil {
			return nil, fmt.Errorf("scanning sales row: %w", err)
		}
		amt, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("parsing sales total for %s/%s: %w", vendor, client, err)
		}
		totals[client] = amt
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading sales for %s: %w", vendor, err)
	}
	return totals, nil
}

func (s *PostgresSource) VendorExists(ctx context.Context, vendor string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM erp_vendors WHERE code = $1)`, vendor).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking vendor %s: %w", vendor, err)
	}
	return exists, nil
}
