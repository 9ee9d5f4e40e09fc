package domain

import (
	"math"
	"time"
)

// BlockedPosition is the reserved position value that marks a client as
// removed from a (vendor, weekday). No resolved position can reach it.
const BlockedPosition int64 = math.MinInt64

// OverrideRecord is one persisted deviation from the natural route.
type OverrideRecord struct {
	VendorCode string
	Weekday    Weekday
	ClientCode string
	Position   int64
	UpdatedAt  time.Time
}

func (o OverrideRecord) Blocked() bool {
	return o.Position == BlockedPosition
}

// Placement decodes the stored position into its variant.
func (o OverrideRecord) Placement() Placement {
	if o.Blocked() {
		return BlockedPlacement()
	}
	return OverriddenAt(o.Position)
}

// Placement is the state of a client within one (vendor, weekday):
// Natural (no record), Overridden at a position, or Blocked.
type Placement struct {
	Kind     PlacementKind
	Position int64
}

func NaturalPlacement() Placement {
	return Placement{Kind: PlacementNatural}
}

func OverriddenAt(position int64) Placement {
	return Placement{Kind: PlacementOverridden, Position: position}
}

func BlockedPlacement() Placement {
	return Placement{Kind: PlacementBlocked, Position: BlockedPosition}
}

// Active reports whether the placement explicitly claims the client for the day.
func (p Placement) Active() bool {
	return p.Kind == PlacementOverridden
}
