package contract

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/alexanderramin/rutero/internal/app"
	"github.com/alexanderramin/rutero/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDayResponse_CarriesStopsInOrder(t *testing.T) {
	lat, lng := -33.45, -70.66
	v := &app.DayView{
		VendorCode: "V1",
		Weekday:    domain.Monday,
		Mode:       domain.ModeCustom,
		Stops: []app.RouteStop{
			{Sequence: 1, ClientCode: "B", SortKey: 0, Placement: domain.PlacementOverridden, SalesTotal: decimal.RequireFromString("12.5")},
			{Sequence: 2, ClientCode: "A", SortKey: 20000, Placement: domain.PlacementNatural, Latitude: &lat, Longitude: &lng},
		},
	}

	resp := NewDayResponse(v)

	assert.Equal(t, "monday", resp.Weekday)
	assert.Equal(t, "custom", resp.Mode)
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Stops, 2)
	assert.Equal(t, "B", resp.Stops[0].ClientCode)
	assert.Equal(t, "12.5", resp.Stops[0].SalesTotal)
	assert.Equal(t, "overridden", resp.Stops[0].Placement)
	assert.Equal(t, &lat, resp.Stops[1].Latitude)
}

func TestNewDayResponse_EmptyDayEncodesEmptyList(t *testing.T) {
	resp := NewDayResponse(&app.DayView{VendorCode: "V1", Weekday: domain.Sunday, Mode: domain.ModeNatural})

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"stops":[]`)
}

func TestNewCountsResponse_IncludesEveryDay(t *testing.T) {
	resp := NewCountsResponse(&app.CountsView{
		VendorCode: "V1",
		Mode:       domain.ModeCustom,
		Counts:     map[domain.Weekday]int{domain.Tuesday: 2},
		Total:      2,
	})

	assert.Len(t, resp.Counts, 7)
	assert.Equal(t, 2, resp.Counts["tuesday"])
	assert.Equal(t, 0, resp.Counts["sunday"])
}

func TestNewPlacementResponse(t *testing.T) {
	assert.Nil(t, NewPlacementResponse(domain.NaturalPlacement()).Position)
	assert.Nil(t, NewPlacementResponse(domain.BlockedPlacement()).Position)

	placed := NewPlacementResponse(domain.OverriddenAt(-2))
	assert.Equal(t, "overridden", placed.Kind)
	require.NotNil(t, placed.Position)
	assert.Equal(t, int64(-2), *placed.Position)
}

func TestNewMutationResponse(t *testing.T) {
	at := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	newPos := int64(0)
	r := &app.PlacementResult{
		VendorCode: "V1",
		ClientCode: "A",
		FromDay:    domain.Monday,
		ToDay:      domain.Tuesday,
		Placement:  domain.OverriddenAt(0),
		Index:      0,
		Audit: domain.AuditEntry{
			ID: "e1", VendorCode: "V1", ClientCode: "A", Action: domain.AuditMove,
			FromDay: domain.Monday, ToDay: domain.Tuesday, NewPosition: &newPos, Actor: "ana", CreatedAt: at,
		},
	}

	raw, err := json.Marshal(NewMutationResponse(r))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "tuesday", decoded["to_day"])
	audit := decoded["audit"].(map[string]any)
	assert.Equal(t, "move", audit["action"])
	assert.Nil(t, audit["old_position"])
	assert.Equal(t, float64(0), audit["new_position"])
}

func TestNewResetResponse_BlockedRecordHasNoPosition(t *testing.T) {
	resp := NewResetResponse(&app.ResetResult{
		VendorCode: "V1",
		Weekday:    domain.Monday,
		Removed: []domain.OverrideRecord{
			{VendorCode: "V1", Weekday: domain.Monday, ClientCode: "C", Position: domain.BlockedPosition},
		},
	})

	require.Len(t, resp.Removed, 1)
	assert.Equal(t, "blocked", resp.Removed[0].Placement.Kind)
	assert.Nil(t, resp.Removed[0].Placement.Position)
}

func TestNewErrorResponse(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		kind   string
		field  string
		status int
	}{
		{"not found", domain.NotFound("vendor_code", "vendor %s not found", "V9"), "NOT_FOUND", "vendor_code", http.StatusNotFound},
		{"wrapped validation", fmt.Errorf("moving: %w", domain.Invalid("position", "bad")), "VALIDATION", "position", http.StatusUnprocessableEntity},
		{"conflict", domain.Conflict("position", "taken"), "CONFLICT", "position", http.StatusConflict},
		{"internal", errors.New("disk I/O error"), "INTERNAL", "", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := NewErrorResponse(tt.err)
			assert.Equal(t, tt.kind, resp.Kind)
			assert.Equal(t, tt.field, resp.Field)
			assert.Equal(t, tt.status, resp.Status)
		})
	}
	assert.Equal(t, "internal error", NewErrorResponse(errors.New("secret dsn")).Message)
}
