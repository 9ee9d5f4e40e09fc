package formatter

import (
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/rutero/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape sequences so assertions see plain text.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRelativeTimeFrom(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"seconds", now.Add(-30 * time.Second), "Just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
		{"days", now.AddDate(0, 0, -4), "4d ago"},
		{"weeks", now.AddDate(0, 0, -21), "3w ago"},
		{"old", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), "Jun 1, 2025"},
		{"future", now.Add(2 * time.Hour), "Mar 2 14:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeTimeFrom(tt.at, now))
		})
	}
}

func TestFormatPosition(t *testing.T) {
	assert.Equal(t, "n0", FormatPosition(20000, domain.PlacementNatural))
	assert.Equal(t, "n3", FormatPosition(20003, domain.PlacementNatural))
	assert.Equal(t, "-1", FormatPosition(-1, domain.PlacementOverridden))
	assert.Equal(t, "--", FormatPosition(domain.BlockedPosition, domain.PlacementBlocked))
}

func TestFormatOptionalPosition(t *testing.T) {
	pos := int64(7)
	blocked := domain.BlockedPosition
	assert.Equal(t, "-", FormatOptionalPosition(nil))
	assert.Equal(t, "7", FormatOptionalPosition(&pos))
	assert.Equal(t, "blocked", FormatOptionalPosition(&blocked))
}

func TestFormatMoneyAndCoordinates(t *testing.T) {
	assert.Equal(t, "1250.50", FormatMoney(decimal.RequireFromString("1250.5")))
	lat, lng := -33.4489, -70.6693
	assert.Equal(t, "-33.44890,-70.66930", FormatCoordinates(&lat, &lng))
	assert.Equal(t, "", FormatCoordinates(&lat, nil))
}

func TestDayLabel(t *testing.T) {
	assert.Equal(t, "Monday", DayLabel(domain.Monday))
	assert.Equal(t, "-", DayLabel(""))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"DAY", "N"},
		[][]string{{"Monday", "2"}, {"Tue", "10"}},
		AlignRight(1),
	))

	assert.Contains(t, out, "DAY      N")
	assert.Contains(t, out, "Monday   2")
	assert.Contains(t, out, "Tue     10")
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, nil))
}
