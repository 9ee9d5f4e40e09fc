package domain

import "strings"

type ViewMode string

const (
	ModeNatural ViewMode = "natural"
	ModeCustom  ViewMode = "custom"
)

// ParseViewMode accepts the mode names case-insensitively. An empty string
// selects the customized view, which is what salespeople see by default.
func ParseViewMode(s string) (ViewMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "custom", "customized", "personalizado":
		return ModeCustom, nil
	case "natural", "erp":
		return ModeNatural, nil
	default:
		return "", Invalid("mode", "unknown view mode %q (want natural or custom)", s)
	}
}

type AuditAction string

const (
	AuditMove    AuditAction = "move"
	AuditRestore AuditAction = "restore"
	AuditBlock   AuditAction = "block"
	AuditReset   AuditAction = "reset"
)

type PlacementKind string

const (
	PlacementNatural    PlacementKind = "natural"
	PlacementOverridden PlacementKind = "overridden"
	PlacementBlocked    PlacementKind = "blocked"
)
