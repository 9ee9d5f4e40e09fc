package erp

import (
	"context"
	"sync"

	"github.com/alexanderramin/rutero/internal/domain"
	"github.com/shopspring/decimal"
)

// MemorySource is an in-process Source backed by maps. It serves fixtures and
// tests; it is safe for concurrent use.
type MemorySource struct {
	mu      sync.RWMutex
	vendors map[string]*memoryVendor
}

type memoryVendor struct {
	rows  []domain.VisitRow
	sales domain.SalesTotals
}

func NewMemorySource() *MemorySource {
	return &MemorySource{vendors: make(map[string]*memoryVendor)}
}

// AddVendor registers a vendor with no rows. Adding an existing vendor is a no-op.
func (m *MemorySource) AddVendor(code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vendorLocked(code)
}

// AddRows appends rows, registering their vendors as needed.
func (m *MemorySource) AddRows(rows ...domain.VisitRow) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range rows {
		v := m.vendorLocked(r.VendorCode)
		v.rows = append(v.rows, r)
	}
}

// AddSale adds amount to the client's historical total.
func (m *MemorySource) AddSale(vendor, client string, amount decimal.Decimal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := m.vendorLocked(vendor)
	v.sales[client] = v.sales.Of(client).Add(amount)
}

func (m *MemorySource) vendorLocked(code string) *memoryVendor {
	v, ok := m.vendors[code]
	if !ok {
		v = &memoryVendor{sales: make(domain.SalesTotals)}
		m.vendors[code] = v
	}
	return v
}

func (m *MemorySource) VisitRows(_ context.Context, vendor string) ([]domain.VisitRow, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.vendors[vendor]
	if !ok {
		return nil, nil
	}
	out := make([]domain.VisitRow, len(v.rows))
	copy(out, v.rows)
	return out, nil
}

func (m *MemorySource) SalesTotals(_ context.Context, vendor string) (domain.SalesTotals, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(domain.SalesTotals)
	if v, ok := m.vendors[vendor]; ok {
		for k, amt := range v.sales {
			out[k] = amt
		}
	}
	return out, nil
}

func (m *MemorySource) VendorExists(_ context.Context, vendor string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.vendors[vendor]
	return ok, nil
}
