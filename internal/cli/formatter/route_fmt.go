package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/rutero/internal/app"
	"github.com/alexanderramin/rutero/internal/domain"
)

// FormatDayView renders one day's route as a numbered stop table.
func FormatDayView(v *app.DayView) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("%s route · %s", DayLabel(v.Weekday), v.VendorCode)))
	b.WriteString("\n")
	b.WriteString(ModeBadge(v.Mode))
	b.WriteString(Dim(fmt.Sprintf("  %d stops", len(v.Stops))))
	b.WriteString("\n\n")

	if len(v.Stops) == 0 {
		b.WriteString(Dim("No clients scheduled for this day."))
		b.WriteString("\n")
		return b.String()
	}

	headers := []string{"#", "CLIENT", "NAME", "POS", "PLACEMENT", "SALES", "ADDRESS"}
	rows := make([][]string, 0, len(v.Stops))
	for _, s := range v.Stops {
		rows = append(rows, []string{
			fmt.Sprintf("%d", s.Sequence),
			Bold(s.ClientCode),
			s.Name,
			PlacementStyle(s.Placement).Render(FormatPosition(s.SortKey, s.Placement)),
			PlacementIndicator(s.Placement),
			FormatMoney(s.SalesTotal),
			Dim(s.Address),
		})
	}
	b.WriteString(RenderTable(headers, rows, AlignRight(0, 5)))
	return b.String()
}

// FormatCounts renders per-day client counts in route order.
func FormatCounts(v *app.CountsView) string {
	var b strings.Builder

	b.WriteString(Header("Clients per day · " + v.VendorCode))
	b.WriteString("\n")
	b.WriteString(ModeBadge(v.Mode))
	b.WriteString("\n\n")

	rows := make([][]string, 0, len(domain.Weekdays)+1)
	for _, d := range domain.Weekdays {
		n := v.Counts[d]
		cell := fmt.Sprintf("%d", n)
		if n == 0 {
			cell = Dim(cell)
		}
		rows = append(rows, []string{DayLabel(d), cell})
	}
	rows = append(rows, []string{Bold("Total"), Bold(fmt.Sprintf("%d", v.Total))})
	b.WriteString(RenderTable([]string{"DAY", "CLIENTS"}, rows, AlignRight(1)))
	return b.String()
}

// FormatPlacementResult summarizes a move, restore or block in a box.
func FormatPlacementResult(r *app.PlacementResult) string {
	var lines []string
	var title string

	switch r.Audit.Action {
	case domain.AuditBlock:
		title = "Blocked"
		lines = append(lines, fmt.Sprintf("%s removed from %s", Bold(r.ClientCode), DayLabel(r.ToDay)))
	case domain.AuditRestore:
		title = "Restored"
		lines = append(lines, fmt.Sprintf("%s restored to %s", Bold(r.ClientCode), DayLabel(r.ToDay)))
	default:
		title = "Moved"
		lines = append(lines, fmt.Sprintf("%s %s → %s", Bold(r.ClientCode), DayLabel(r.FromDay), DayLabel(r.ToDay)))
	}

	lines = append(lines, fmt.Sprintf("Placement: %s", PlacementIndicator(r.Placement.Kind)))
	if r.Placement.Active() {
		lines = append(lines, fmt.Sprintf("Position:  %d", r.Placement.Position))
	}
	if r.Index >= 0 {
		lines = append(lines, fmt.Sprintf("Stop:      #%d", r.Index+1))
	}
	lines = append(lines, Dim(fmt.Sprintf("audit %s by %s", TruncID(r.Audit.ID), r.Audit.Actor)))

	return RenderBox(title+" · "+r.VendorCode, strings.Join(lines, "\n")) + "\n"
}

// FormatResetResult lists the overrides a day reset removed.
func FormatResetResult(r *app.ResetResult) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Reset %s · %s", DayLabel(r.Weekday), r.VendorCode)))
	b.WriteString("\n")
	if len(r.Removed) == 0 {
		b.WriteString(Dim("Nothing to reset, the day already follows the ERP."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("Removed %d override(s):\n\n", len(r.Removed)))
	b.WriteString(formatRecordTable(r.Removed, false))
	return b.String()
}

// FormatOverrides renders the raw override layer of a vendor.
func FormatOverrides(vendor string, records []domain.OverrideRecord) string {
	var b strings.Builder

	b.WriteString(Header("Overrides · " + vendor))
	b.WriteString("\n")
	if len(records) == 0 {
		b.WriteString(Dim("No overrides. Every day follows the ERP."))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(formatRecordTable(records, true))
	return b.String()
}

func formatRecordTable(records []domain.OverrideRecord, withDay bool) string {
	headers := []string{"CLIENT", "PLACEMENT", "POS"}
	if withDay {
		headers = append([]string{"DAY"}, headers...)
	}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		p := rec.Placement()
		row := []string{
			Bold(rec.ClientCode),
			PlacementIndicator(p.Kind),
			FormatPosition(p.Position, p.Kind),
		}
		if withDay {
			row = append([]string{DayLabel(rec.Weekday)}, row...)
		}
		rows = append(rows, row)
	}
	return RenderTable(headers, rows)
}

// FormatAuditTrail renders audit entries, newest first, with ages relative to now.
func FormatAuditTrail(vendor string, entries []domain.AuditEntry, now time.Time) string {
	var b strings.Builder

	b.WriteString(Header("Audit trail · " + vendor))
	b.WriteString("\n")
	if len(entries) == 0 {
		b.WriteString(Dim("No changes recorded."))
		b.WriteString("\n")
		return b.String()
	}

	headers := []string{"WHEN", "ACTION", "CLIENT", "FROM", "TO", "OLD", "NEW", "ACTOR"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			Dim(RelativeTimeFrom(e.CreatedAt, now)),
			ActionStyle(e.Action).Render(string(e.Action)),
			Bold(e.ClientCode),
			DayLabel(e.FromDay),
			DayLabel(e.ToDay),
			FormatOptionalPosition(e.OldPosition),
			FormatOptionalPosition(e.NewPosition),
			e.Actor,
		})
	}
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}
