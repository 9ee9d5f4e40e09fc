package domain

import "github.com/shopspring/decimal"

// VisitRow is one raw visit-day record as returned by the ERP. A single
// (vendor, client) pair may appear in several rows asserting different days.
type VisitRow struct {
	VendorCode string
	ClientCode string
	ClientName string
	Address    string
	Latitude   *float64
	Longitude  *float64
	// Rank is the ERP's explicit natural visit sequence, when it has one.
	Rank *int
	Days DaySet
}

// Client is a consolidated client of one vendor. Address and coordinates are
// passed through to callers and never influence ordering.
type Client struct {
	Code      string
	Name      string
	Address   string
	Latitude  *float64
	Longitude *float64
	Rank      *int
	Days      DaySet
}

// SalesTotals maps client codes to their historical sales amount.
type SalesTotals map[string]decimal.Decimal

// Of returns the total for code, zero when unknown.
func (s SalesTotals) Of(code string) decimal.Decimal {
	if v, ok := s[code]; ok {
		return v
	}
	return decimal.Zero
}
