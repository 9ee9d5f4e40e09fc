package planner

import (
	"github.com/alexanderramin/rutero/internal/domain"
)

// Assignment is the canonical natural assignment of one vendor's clients,
// consolidated from raw ERP visit rows.
type Assignment struct {
	clients map[string]*domain.Client
	order   []string
}

// Consolidate groups rows by client code and ORs their weekday flags, so no
// row can suppress a day asserted by another row of the same client. Clients
// keep the position of their first row; rows are expected in ERP order.
// The explicit rank of a client is the smallest rank among its rows, and
// descriptive fields take the first non-empty value.
func Consolidate(rows []domain.VisitRow) *Assignment {
	a := &Assignment{clients: make(map[string]*domain.Client, len(rows))}
	for _, row := range rows {
		if row.ClientCode == "" {
			continue
		}
		c, ok := a.clients[row.ClientCode]
		if !ok {
			c = &domain.Client{Code: row.ClientCode}
			a.clients[row.ClientCode] = c
			a.order = append(a.order, row.ClientCode)
		}
		c.Days = c.Days.Union(row.Days)
		c.Rank = domain.MinIntPtr(c.Rank, row.Rank)
		c.Name = domain.CoalesceStr(c.Name, row.ClientName)
		c.Address = domain.CoalesceStr(c.Address, row.Address)
		c.Latitude = domain.Float64PtrOr(c.Latitude, row.Latitude)
		c.Longitude = domain.Float64PtrOr(c.Longitude, row.Longitude)
	}
	return a
}

// Has reports whether code is one of the vendor's clients, whatever its days.
func (a *Assignment) Has(code string) bool {
	_, ok := a.clients[code]
	return ok
}

// Client returns the consolidated client for code.
func (a *Assignment) Client(code string) (domain.Client, bool) {
	c, ok := a.clients[code]
	if !ok {
		return domain.Client{}, false
	}
	return *c, true
}

// Clients returns every client in first-occurrence order.
func (a *Assignment) Clients() []domain.Client {
	out := make([]domain.Client, 0, len(a.order))
	for _, code := range a.order {
		out = append(out, *a.clients[code])
	}
	return out
}

// Day returns the natural members of w in first-occurrence order.
func (a *Assignment) Day(w domain.Weekday) []string {
	var out []string
	for _, code := range a.order {
		if a.clients[code].Days.Has(w) {
			out = append(out, code)
		}
	}
	return out
}

// Len is the number of distinct clients.
func (a *Assignment) Len() int {
	return len(a.order)
}
