package planner

import (
	"sort"

	"github.com/alexanderramin/rutero/internal/domain"
)

// NaturalOrder renders the natural route of weekday w:
// 1. Clients with an explicit ERP rank, by rank (earlier ERP rows first on ties)
// 2. Remaining clients by historical sales, highest first
// 3. Client code, lexical ascending
func NaturalOrder(a *Assignment, w domain.Weekday, sales domain.SalesTotals) []string {
	members := a.Day(w)
	encounter := make(map[string]int, len(members))
	for i, code := range members {
		encounter[code] = i
	}

	sort.SliceStable(members, func(i, j int) bool {
		ci, cj := a.clients[members[i]], a.clients[members[j]]

		// 1. Explicit rank
		if (ci.Rank == nil) != (cj.Rank == nil) {
			return ci.Rank != nil
		}
		if ci.Rank != nil {
			if *ci.Rank != *cj.Rank {
				return *ci.Rank < *cj.Rank
			}
			return encounter[ci.Code] < encounter[cj.Code]
		}

		// 2. Sales (higher first)
		si, sj := sales.Of(ci.Code), sales.Of(cj.Code)
		if !si.Equal(sj) {
			return si.GreaterThan(sj)
		}

		// 3. Client code
		return ci.Code < cj.Code
	})
	return members
}
