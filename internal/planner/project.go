package planner

import (
	"sort"

	"github.com/alexanderramin/rutero/internal/domain"
)

// BaseOffset is the reservation window for clients without an explicit
// position: they float at BaseOffset + naturalIndex, above every explicit
// position a user is allowed to enter.
const BaseOffset int64 = 20000

// Input is everything a projection depends on for one vendor.
type Input struct {
	Assignment *Assignment
	Sales      domain.SalesTotals
	Overrides  OverrideIndex
}

// Entry is one client of a projected day.
type Entry struct {
	ClientCode string
	Position   int64
	Placement  domain.Placement
	// NaturalIndex is the 0-based slot in the natural order of the day, or -1
	// for clients moved in from another day.
	NaturalIndex int
}

// Project returns the ordered route for weekday w in the given mode. It is a
// pure function of in: no records are written, and clients without an
// explicit position never need one for others to be reordered around them.
func Project(in Input, w domain.Weekday, mode domain.ViewMode) []Entry {
	natural := NaturalOrder(in.Assignment, w, in.Sales)

	if mode == domain.ModeNatural {
		entries := make([]Entry, len(natural))
		for i, code := range natural {
			entries[i] = Entry{
				ClientCode:   code,
				Position:     BaseOffset + int64(i),
				Placement:    domain.NaturalPlacement(),
				NaturalIndex: i,
			}
		}
		return entries
	}

	entries := make([]Entry, 0, len(natural))
	seen := make(map[string]bool, len(natural))
	for i, code := range natural {
		seen[code] = true
		p := in.Overrides.Placement(code, w)
		switch p.Kind {
		case domain.PlacementBlocked:
			continue
		case domain.PlacementOverridden:
			entries = append(entries, Entry{ClientCode: code, Position: p.Position, Placement: p, NaturalIndex: i})
		default:
			if in.Overrides.movedAway(code, w) {
				continue
			}
			entries = append(entries, Entry{ClientCode: code, Position: BaseOffset + int64(i), Placement: p, NaturalIndex: i})
		}
	}

	for _, code := range in.Overrides.placedIn(w) {
		// Overrides for clients the ERP no longer lists for this vendor are orphans.
		if seen[code] || !in.Assignment.Has(code) {
			continue
		}
		p := in.Overrides.Placement(code, w)
		entries = append(entries, Entry{ClientCode: code, Position: p.Position, Placement: p, NaturalIndex: -1})
	}

	SortEntries(entries)
	return entries
}

// SortEntries orders entries by position ascending, then client code.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Position != entries[j].Position {
			return entries[i].Position < entries[j].Position
		}
		return entries[i].ClientCode < entries[j].ClientCode
	})
}

// Counts returns the number of clients of every weekday. Each count is the
// length of the same projection served to list queries.
func Counts(in Input, mode domain.ViewMode) map[domain.Weekday]int {
	out := make(map[domain.Weekday]int, len(domain.Weekdays))
	for _, w := range domain.Weekdays {
		out[w] = len(Project(in, w, mode))
	}
	return out
}

// IndexOf returns the 0-based slot of client in entries, or -1.
func IndexOf(entries []Entry, client string) int {
	for i, e := range entries {
		if e.ClientCode == client {
			return i
		}
	}
	return -1
}
