package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/rutero/internal/app"
	"github.com/alexanderramin/rutero/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatDayView(t *testing.T) {
	v := &app.DayView{
		VendorCode: "V1",
		Weekday:    domain.Monday,
		Mode:       domain.ModeCustom,
		Stops: []app.RouteStop{
			{Sequence: 1, ClientCode: "B", Name: "Bodega B", SortKey: 0, Placement: domain.PlacementOverridden, SalesTotal: decimal.NewFromInt(10)},
			{Sequence: 2, ClientCode: "A", Name: "Almacen A", Address: "Av. Siempre Viva 742", SortKey: 20000, Placement: domain.PlacementNatural},
		},
	}

	out := stripANSI(FormatDayView(v))

	assert.Contains(t, out, "MONDAY ROUTE · V1")
	assert.Contains(t, out, "[custom]")
	assert.Contains(t, out, "2 stops")
	assert.Contains(t, out, "Bodega B")
	assert.Contains(t, out, "● pinned")
	assert.Contains(t, out, "○ natural")
	assert.Contains(t, out, "n0")
	assert.Contains(t, out, "10.00")
	assert.Contains(t, out, "Av. Siempre Viva 742")
	assert.Less(t, strings.Index(out, "Bodega B"), strings.Index(out, "Almacen A"))
}

func TestFormatDayView_Empty(t *testing.T) {
	out := stripANSI(FormatDayView(&app.DayView{VendorCode: "V1", Weekday: domain.Sunday, Mode: domain.ModeNatural}))

	assert.Contains(t, out, "[natural]")
	assert.Contains(t, out, "No clients scheduled")
}

func TestFormatCounts(t *testing.T) {
	v := &app.CountsView{
		VendorCode: "V1",
		Mode:       domain.ModeCustom,
		Counts:     map[domain.Weekday]int{domain.Monday: 2, domain.Tuesday: 3},
		Total:      5,
	}

	out := stripANSI(FormatCounts(v))

	assert.Contains(t, out, "CLIENTS PER DAY · V1")
	assert.Contains(t, out, "Monday")
	assert.Contains(t, out, "Sunday")
	assert.Contains(t, out, "Total")
	assert.Contains(t, out, "5")
	assert.Less(t, strings.Index(out, "Monday"), strings.Index(out, "Tuesday"))
}

func TestFormatPlacementResult_Move(t *testing.T) {
	r := &app.PlacementResult{
		VendorCode: "V1",
		ClientCode: "A",
		FromDay:    domain.Monday,
		ToDay:      domain.Tuesday,
		Placement:  domain.OverriddenAt(1),
		Index:      1,
		Audit:      domain.AuditEntry{ID: "0123456789abcdef", Action: domain.AuditMove, Actor: "ana"},
	}

	out := stripANSI(FormatPlacementResult(r))

	assert.Contains(t, out, "MOVED · V1")
	assert.Contains(t, out, "A Monday → Tuesday")
	assert.Contains(t, out, "Position:  1")
	assert.Contains(t, out, "Stop:      #2")
	assert.Contains(t, out, "audit 01234567 by ana")
}

func TestFormatPlacementResult_Block(t *testing.T) {
	r := &app.PlacementResult{
		VendorCode: "V1",
		ClientCode: "C",
		ToDay:      domain.Monday,
		Placement:  domain.BlockedPlacement(),
		Index:      -1,
		Audit:      domain.AuditEntry{ID: "x", Action: domain.AuditBlock, Actor: "cli"},
	}

	out := stripANSI(FormatPlacementResult(r))

	assert.Contains(t, out, "BLOCKED · V1")
	assert.Contains(t, out, "C removed from Monday")
	assert.Contains(t, out, "● blocked")
	assert.NotContains(t, out, "Position:")
	assert.NotContains(t, out, "Stop:")
}

func TestFormatResetResult(t *testing.T) {
	r := &app.ResetResult{
		VendorCode: "V1",
		Weekday:    domain.Monday,
		Removed: []domain.OverrideRecord{
			{VendorCode: "V1", Weekday: domain.Monday, ClientCode: "B", Position: 0},
			{VendorCode: "V1", Weekday: domain.Monday, ClientCode: "C", Position: domain.BlockedPosition},
		},
	}

	out := stripANSI(FormatResetResult(r))

	assert.Contains(t, out, "RESET MONDAY · V1")
	assert.Contains(t, out, "Removed 2 override(s)")
	assert.Contains(t, out, "● blocked")

	empty := stripANSI(FormatResetResult(&app.ResetResult{VendorCode: "V1", Weekday: domain.Friday}))
	assert.Contains(t, empty, "Nothing to reset")
}

func TestFormatOverrides(t *testing.T) {
	records := []domain.OverrideRecord{
		{VendorCode: "V1", Weekday: domain.Tuesday, ClientCode: "A", Position: 0},
	}

	out := stripANSI(FormatOverrides("V1", records))
	assert.Contains(t, out, "OVERRIDES · V1")
	assert.Contains(t, out, "Tuesday")
	assert.Contains(t, out, "● pinned")

	assert.Contains(t, stripANSI(FormatOverrides("V1", nil)), "No overrides")
}

func TestFormatAuditTrail(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	newPos := int64(0)
	entries := []domain.AuditEntry{
		{ID: "2", ClientCode: "B", Action: domain.AuditRestore, ToDay: domain.Monday, NewPosition: &newPos, Actor: "ana", CreatedAt: now.Add(-2 * time.Minute)},
		{ID: "1", ClientCode: "B", Action: domain.AuditMove, FromDay: domain.Monday, ToDay: domain.Tuesday, NewPosition: &newPos, Actor: "ana", CreatedAt: now.Add(-3 * time.Hour)},
	}

	out := stripANSI(FormatAuditTrail("V1", entries, now))

	assert.Contains(t, out, "AUDIT TRAIL · V1")
	assert.Contains(t, out, "2m ago")
	assert.Contains(t, out, "3h ago")
	assert.Contains(t, out, "restore")
	assert.Contains(t, out, "move")
	assert.Less(t, strings.Index(out, "restore"), strings.Index(out, "move"))

	assert.Contains(t, stripANSI(FormatAuditTrail("V1", nil, now)), "No changes recorded")
}
