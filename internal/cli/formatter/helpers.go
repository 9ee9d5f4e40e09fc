package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/rutero/internal/domain"
	"github.com/alexanderramin/rutero/internal/planner"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// RelativeTimeFrom returns a short human-friendly age of t relative to now.
func RelativeTimeFrom(t time.Time, now time.Time) string {
	diff := now.Sub(t)
	if diff < 0 {
		return t.Format("Jan 2 15:04")
	}
	days := int(math.Round(diff.Hours() / 24))

	switch {
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case days < 14:
		return fmt.Sprintf("%dd ago", days)
	case days < 60:
		return fmt.Sprintf("%dw ago", days/7)
	default:
		return t.Format("Jan 2, 2006")
	}
}

// FormatPosition renders a stored or effective position. Keys at or past
// the natural offset are shown relative to it.
func FormatPosition(pos int64, kind domain.PlacementKind) string {
	switch kind {
	case domain.PlacementBlocked:
		return "--"
	case domain.PlacementNatural:
		return fmt.Sprintf("n%d", pos-planner.BaseOffset)
	default:
		return fmt.Sprintf("%d", pos)
	}
}

// FormatOptionalPosition renders an audit position, "-" when absent.
func FormatOptionalPosition(p *int64) string {
	if p == nil {
		return "-"
	}
	if *p == domain.BlockedPosition {
		return "blocked"
	}
	return fmt.Sprintf("%d", *p)
}

// FormatMoney renders a sales total with two decimals.
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatCoordinates renders "lat,lng" or "" when either is missing.
func FormatCoordinates(lat, lng *float64) string {
	if lat == nil || lng == nil {
		return ""
	}
	return fmt.Sprintf("%.5f,%.5f", *lat, *lng)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// DayLabel capitalizes a weekday for display.
func DayLabel(d domain.Weekday) string {
	if d == "" {
		return "-"
	}
	s := string(d)
	return strings.ToUpper(s[:1]) + s[1:]
}
