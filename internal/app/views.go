package app

import (
	"github.com/alexanderramin/rutero/internal/domain"
	"github.com/shopspring/decimal"
)

// RouteStop is one client on a day's route.
type RouteStop struct {
	// Sequence is the 1-based visiting order.
	Sequence   int
	ClientCode string
	Name       string
	Address    string
	Latitude   *float64
	Longitude  *float64
	SalesTotal decimal.Decimal
	// SortKey is the effective position the stop was ordered by. Stops
	// without an explicit position float at a large offset plus their
	// natural index.
	SortKey   int64
	Placement domain.PlacementKind
}

type DayView struct {
	VendorCode string
	Weekday    domain.Weekday
	Mode       domain.ViewMode
	Stops      []RouteStop
}

type CountsView struct {
	VendorCode string
	Mode       domain.ViewMode
	Counts     map[domain.Weekday]int
	Total      int
}

// PlacementResult describes the state after a move, restore or block.
type PlacementResult struct {
	VendorCode string
	ClientCode string
	FromDay    domain.Weekday
	ToDay      domain.Weekday
	Placement  domain.Placement
	// Index is the client's 0-based slot in the customized view of ToDay,
	// or -1 when the client no longer renders there.
	Index int
	Audit domain.AuditEntry
}

type ResetResult struct {
	VendorCode string
	Weekday    domain.Weekday
	Removed    []domain.OverrideRecord
}
