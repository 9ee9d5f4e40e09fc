package planner

import (
	"github.com/alexanderramin/rutero/internal/domain"
	"github.com/shopspring/decimal"
)

func row(client string, days ...domain.Weekday) domain.VisitRow {
	return domain.VisitRow{VendorCode: "V1", ClientCode: client, ClientName: "Client " + client, Days: domain.NewDaySet(days...)}
}

func rankedRow(client string, rank int, days ...domain.Weekday) domain.VisitRow {
	r := row(client, days...)
	r.Rank = &rank
	return r
}

func override(client string, day domain.Weekday, position int64) domain.OverrideRecord {
	return domain.OverrideRecord{VendorCode: "V1", Weekday: day, ClientCode: client, Position: position}
}

func blocked(client string, day domain.Weekday) domain.OverrideRecord {
	return override(client, day, domain.BlockedPosition)
}

func input(rows []domain.VisitRow, sales domain.SalesTotals, records ...domain.OverrideRecord) Input {
	return Input{Assignment: Consolidate(rows), Sales: sales, Overrides: IndexOverrides(records)}
}

func codes(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ClientCode
	}
	return out
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
