package erp

import (
	"context"
	"time"

	"github.com/alexanderramin/rutero/internal/domain"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CachedSales decorates a Source with a TTL cache over SalesTotals. Visit rows
// and vendor existence always go to the underlying source: sales only break
// ties in the natural order, so briefly stale totals never change which
// clients are on a route.
type CachedSales struct {
	Source
	cache *expirable.LRU[string, domain.SalesTotals]
}

// NewCachedSales wraps src. ttl must be positive; size bounds the number of
// vendors kept.
func NewCachedSales(src Source, size int, ttl time.Duration) *CachedSales {
	return &CachedSales{
		Source: src,
		cache:  expirable.NewLRU[string, domain.SalesTotals](size, nil, ttl),
	}
}

func (c *CachedSales) SalesTotals(ctx context.Context, vendor string) (domain.SalesTotals, error) {
	if cached, ok := c.cache.Get(vendor); ok {
		recordSalesCacheRequest(true)
		return copyTotals(cached), nil
	}
	recordSalesCacheRequest(false)

	totals, err := c.Source.SalesTotals(ctx, vendor)
	if err != nil {
		return nil, err
	}
	c.cache.Add(vendor, copyTotals(totals))
	return totals, nil
}

// Invalidate drops the cached totals of a vendor.
func (c *CachedSales) Invalidate(vendor string) {
	c.cache.Remove(vendor)
}

func copyTotals(in domain.SalesTotals) domain.SalesTotals {
	out := make(domain.SalesTotals, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
