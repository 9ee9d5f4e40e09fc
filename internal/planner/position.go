package planner

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/rutero/internal/domain"
)

// HintKind selects how a position hint resolves.
type HintKind string

const (
	HintStart HintKind = "start"
	HintEnd   HintKind = "end"
	HintExact HintKind = "exact"
)

// PositionHint says where a moved client should land in its target day.
type PositionHint struct {
	Kind     HintKind
	Position int64
}

// Start places the client before everyone else on the day.
func Start() PositionHint { return PositionHint{Kind: HintStart} }

// End places the client after everyone else on the day.
func End() PositionHint { return PositionHint{Kind: HintEnd} }

// At places the client at an exact position.
func At(position int64) PositionHint {
	return PositionHint{Kind: HintExact, Position: position}
}

// String returns "start", "end" or the exact position.
func (h PositionHint) String() string {
	if h.Kind == HintExact {
		return strconv.FormatInt(h.Position, 10)
	}
	return string(h.Kind)
}

// ParsePositionHint accepts "start", "end" (and their aliases) or an integer.
func ParsePositionHint(s string) (PositionHint, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "start", "first", "inicio":
		return Start(), nil
	case "end", "last", "", "final":
		return End(), nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return PositionHint{}, domain.Invalid("position", "malformed position hint %q (want start, end or an integer)", s)
	}
	h := At(n)
	if err := h.Validate(); err != nil {
		return PositionHint{}, err
	}
	return h, nil
}

// Validate rejects explicit positions inside the floating window of natural
// clients, and the blocked sentinel.
func (h PositionHint) Validate() error {
	switch h.Kind {
	case HintStart, HintEnd:
		return nil
	case HintExact:
		if h.Position >= BaseOffset || h.Position <= -BaseOffset {
			return domain.Invalid("position", "position %d out of range (%d, %d)", h.Position, -BaseOffset, BaseOffset)
		}
		return nil
	default:
		return domain.Invalid("position", "unknown position hint kind %q", h.Kind)
	}
}

// ResolvePosition turns a hint into a concrete position for client within
// day, ignoring the client's own current entry. START lands one below the
// lowest position, END one above the highest; an empty day resolves to 0.
func ResolvePosition(day []Entry, client string, hint PositionHint) int64 {
	if hint.Kind == HintExact {
		return hint.Position
	}

	var lo, hi int64
	found := false
	for _, e := range day {
		if e.ClientCode == client {
			continue
		}
		if !found {
			lo, hi, found = e.Position, e.Position, true
			continue
		}
		lo = min(lo, e.Position)
		hi = max(hi, e.Position)
	}
	if !found {
		return 0
	}
	if hint.Kind == HintStart {
		return lo - 1
	}
	return hi + 1
}
