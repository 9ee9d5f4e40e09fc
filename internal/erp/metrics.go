package erp

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var salesCacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "rutero",
	Subsystem: "sales_cache",
	Name:      "requests_total",
	Help:      "Total number of sales-total cache lookups broken down by hit/miss.",
}, []string{"result"})

func recordSalesCacheRequest(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	salesCacheRequests.WithLabelValues(result).Inc()
}
