// Package contract holds the JSON wire shapes of the planner's operations.
// The CLI prints them with --json and an HTTP layer can serve them as-is.
package contract

import (
	"time"

	"github.com/alexanderramin/rutero/internal/app"
	"github.com/alexanderramin/rutero/internal/domain"
)

type StopResponse struct {
	Sequence   int      `json:"sequence"`
	ClientCode string   `json:"client_code"`
	Name       string   `json:"name"`
	Address    string   `json:"address,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	SalesTotal string   `json:"sales_total"`
	Position   int64    `json:"position"`
	Placement  string   `json:"placement"`
}

type DayResponse struct {
	VendorCode string         `json:"vendor_code"`
	Weekday    string         `json:"weekday"`
	Mode       string         `json:"mode"`
	Count      int            `json:"count"`
	Stops      []StopResponse `json:"stops"`
}

type CountsResponse struct {
	VendorCode string         `json:"vendor_code"`
	Mode       string         `json:"mode"`
	Counts     map[string]int `json:"counts"`
	Total      int            `json:"total"`
}

type PlacementResponse struct {
	Kind string `json:"kind"`
	// Position is omitted for natural and blocked placements.
	Position *int64 `json:"position,omitempty"`
}

type OverrideResponse struct {
	VendorCode string            `json:"vendor_code"`
	Weekday    string            `json:"weekday"`
	ClientCode string            `json:"client_code"`
	Placement  PlacementResponse `json:"placement"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

type AuditEntryResponse struct {
	ID          string    `json:"id"`
	VendorCode  string    `json:"vendor_code"`
	ClientCode  string    `json:"client_code"`
	Action      string    `json:"action"`
	FromDay     string    `json:"from_day,omitempty"`
	ToDay       string    `json:"to_day,omitempty"`
	OldPosition *int64    `json:"old_position"`
	NewPosition *int64    `json:"new_position"`
	Actor       string    `json:"actor"`
	CreatedAt   time.Time `json:"created_at"`
}

type MutationResponse struct {
	VendorCode string             `json:"vendor_code"`
	ClientCode string             `json:"client_code"`
	FromDay    string             `json:"from_day,omitempty"`
	ToDay      string             `json:"to_day"`
	Placement  PlacementResponse  `json:"placement"`
	Index      int                `json:"index"`
	Audit      AuditEntryResponse `json:"audit"`
}

type ResetResponse struct {
	VendorCode string             `json:"vendor_code"`
	Weekday    string             `json:"weekday"`
	Removed    []OverrideResponse `json:"removed"`
}

func NewDayResponse(v *app.DayView) DayResponse {
	stops := make([]StopResponse, len(v.Stops))
	for i, s := range v.Stops {
		stops[i] = StopResponse{
			Sequence:   s.Sequence,
			ClientCode: s.ClientCode,
			Name:       s.Name,
			Address:    s.Address,
			Latitude:   s.Latitude,
			Longitude:  s.Longitude,
			SalesTotal: s.SalesTotal.String(),
			Position:   s.SortKey,
			Placement:  string(s.Placement),
		}
	}
	return DayResponse{
		VendorCode: v.VendorCode,
		Weekday:    string(v.Weekday),
		Mode:       string(v.Mode),
		Count:      len(stops),
		Stops:      stops,
	}
}

// NewCountsResponse always carries all seven days, zero counts included.
func NewCountsResponse(v *app.CountsView) CountsResponse {
	counts := make(map[string]int, len(domain.Weekdays))
	for _, d := range domain.Weekdays {
		counts[string(d)] = v.Counts[d]
	}
	return CountsResponse{
		VendorCode: v.VendorCode,
		Mode:       string(v.Mode),
		Counts:     counts,
		Total:      v.Total,
	}
}

func NewPlacementResponse(p domain.Placement) PlacementResponse {
	out := PlacementResponse{Kind: string(p.Kind)}
	if p.Active() {
		pos := p.Position
		out.Position = &pos
	}
	return out
}

func NewOverrideResponse(rec domain.OverrideRecord) OverrideResponse {
	return OverrideResponse{
		VendorCode: rec.VendorCode,
		Weekday:    string(rec.Weekday),
		ClientCode: rec.ClientCode,
		Placement:  NewPlacementResponse(rec.Placement()),
		UpdatedAt:  rec.UpdatedAt,
	}
}

func NewOverrideResponses(records []domain.OverrideRecord) []OverrideResponse {
	out := make([]OverrideResponse, len(records))
	for i, rec := range records {
		out[i] = NewOverrideResponse(rec)
	}
	return out
}

func NewAuditEntryResponse(e domain.AuditEntry) AuditEntryResponse {
	return AuditEntryResponse{
		ID:          e.ID,
		VendorCode:  e.VendorCode,
		ClientCode:  e.ClientCode,
		Action:      string(e.Action),
		FromDay:     string(e.FromDay),
		ToDay:       string(e.ToDay),
		OldPosition: e.OldPosition,
		NewPosition: e.NewPosition,
		Actor:       e.Actor,
		CreatedAt:   e.CreatedAt,
	}
}

func NewAuditEntryResponses(entries []domain.AuditEntry) []AuditEntryResponse {
	out := make([]AuditEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = NewAuditEntryResponse(e)
	}
	return out
}

func NewMutationResponse(r *app.PlacementResult) MutationResponse {
	return MutationResponse{
		VendorCode: r.VendorCode,
		ClientCode: r.ClientCode,
		FromDay:    string(r.FromDay),
		ToDay:      string(r.ToDay),
		Placement:  NewPlacementResponse(r.Placement),
		Index:      r.Index,
		Audit:      NewAuditEntryResponse(r.Audit),
	}
}

func NewResetResponse(r *app.ResetResult) ResetResponse {
	return ResetResponse{
		VendorCode: r.VendorCode,
		Weekday:    string(r.Weekday),
		Removed:    NewOverrideResponses(r.Removed),
	}
}
