package erp

import (
	"context"
	"testing"

	"github.com/alexanderramin/rutero/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySource_UnknownVendor(t *testing.T) {
	src := NewMemorySource()
	ctx := context.Background()

	ok, err := src.VendorExists(ctx, "nobody")
	require.NoError(t, err)
	assert.False(t, ok)

	rows, err := src.VisitRows(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, rows)

	sales, err := src.SalesTotals(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestMemorySource_AccumulatesSales(t *testing.T) {
	src := NewMemorySource()
	src.AddSale("V1", "A", decimal.NewFromInt(10))
	src.AddSale("V1", "A", decimal.RequireFromString("2.5"))

	sales, err := src.SalesTotals(context.Background(), "V1")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("12.5").Equal(sales.Of("A")))
}

func TestMemorySource_ReturnsCopies(t *testing.T) {
	src := NewMemorySource()
	src.AddRows(domain.VisitRow{VendorCode: "V1", ClientCode: "A", Days: domain.NewDaySet(domain.Monday)})
	src.AddSale("V1", "A", decimal.NewFromInt(1))
	ctx := context.Background()

	rows, _ := src.VisitRows(ctx, "V1")
	rows[0].ClientCode = "mutated"
	sales, _ := src.SalesTotals(ctx, "V1")
	sales["A"] = decimal.NewFromInt(999)

	again, _ := src.VisitRows(ctx, "V1")
	assert.Equal(t, "A", again[0].ClientCode)
	salesAgain, _ := src.SalesTotals(ctx, "V1")
	assert.True(t, decimal.NewFromInt(1).Equal(salesAgain.Of("A")))
}
