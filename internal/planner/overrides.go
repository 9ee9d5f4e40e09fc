package planner

import (
	"sort"

	"github.com/alexanderramin/rutero/internal/domain"
)

// OverrideIndex is a read-only view of one vendor's override records keyed
// by client and weekday.
type OverrideIndex struct {
	byClient map[string]map[domain.Weekday]domain.Placement
}

// IndexOverrides builds an index from a vendor's records. Records with an
// invalid weekday are ignored.
func IndexOverrides(records []domain.OverrideRecord) OverrideIndex {
	ix := OverrideIndex{byClient: make(map[string]map[domain.Weekday]domain.Placement)}
	for _, r := range records {
		if !r.Weekday.Valid() {
			continue
		}
		days, ok := ix.byClient[r.ClientCode]
		if !ok {
			days = make(map[domain.Weekday]domain.Placement)
			ix.byClient[r.ClientCode] = days
		}
		days[r.Weekday] = r.Placement()
	}
	return ix
}

// Placement returns the state of client within w; Natural when no record exists.
func (ix OverrideIndex) Placement(client string, w domain.Weekday) domain.Placement {
	if p, ok := ix.byClient[client][w]; ok {
		return p
	}
	return domain.NaturalPlacement()
}

// ActiveDays lists the weekdays on which client holds an explicit position.
func (ix OverrideIndex) ActiveDays(client string) []domain.Weekday {
	var out []domain.Weekday
	for _, w := range domain.Weekdays {
		if p, ok := ix.byClient[client][w]; ok && p.Active() {
			out = append(out, w)
		}
	}
	return out
}

// movedAway reports whether client is explicitly placed on some day other
// than w while holding no record for w itself.
func (ix OverrideIndex) movedAway(client string, w domain.Weekday) bool {
	days := ix.byClient[client]
	if _, ok := days[w]; ok {
		return false
	}
	for d, p := range days {
		if d != w && p.Active() {
			return true
		}
	}
	return false
}

// placedIn returns the clients explicitly positioned into w, sorted by code.
func (ix OverrideIndex) placedIn(w domain.Weekday) []string {
	var out []string
	for client, days := range ix.byClient {
		if p, ok := days[w]; ok && p.Active() {
			out = append(out, client)
		}
	}
	sort.Strings(out)
	return out
}
