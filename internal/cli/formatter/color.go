package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/rutero/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PlacementStyle returns the style used for a placement kind.
func PlacementStyle(kind domain.PlacementKind) lipgloss.Style {
	switch kind {
	case domain.PlacementOverridden:
		return StyleBlue
	case domain.PlacementBlocked:
		return StyleRed
	default:
		return StyleDim
	}
}

// PlacementIndicator returns a colored marker such as "● pinned".
func PlacementIndicator(kind domain.PlacementKind) string {
	switch kind {
	case domain.PlacementOverridden:
		return StyleBlue.Render("● pinned")
	case domain.PlacementBlocked:
		return StyleRed.Render("● blocked")
	default:
		return StyleDim.Render("○ natural")
	}
}

// ActionStyle colors audit actions.
func ActionStyle(action domain.AuditAction) lipgloss.Style {
	switch action {
	case domain.AuditMove:
		return StyleBlue
	case domain.AuditRestore:
		return StyleGreen
	case domain.AuditBlock:
		return StyleRed
	case domain.AuditReset:
		return StyleYellow
	default:
		return StyleFg
	}
}

// ModeBadge renders the view mode as a short colored tag.
func ModeBadge(mode domain.ViewMode) string {
	if mode == domain.ModeNatural {
		return StylePurple.Render("[natural]")
	}
	return StyleGreen.Render("[custom]")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
