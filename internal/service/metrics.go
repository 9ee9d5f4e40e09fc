package service

import (
	"context"

	"github.com/alexanderramin/rutero/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	useCaseTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rutero",
		Subsystem: "planner",
		Name:      "use_cases_total",
		Help:      "Total number of planner use cases broken down by use case and outcome.",
	}, []string{"use_case", "outcome"})

	useCaseDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "rutero",
		Subsystem: "planner",
		Name:      "use_case_duration_seconds",
		Help:      "Latency of planner use cases.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"use_case"})

	projectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rutero",
		Subsystem: "planner",
		Name:      "projections_total",
		Help:      "Total number of day projections computed broken down by view mode.",
	}, []string{"mode"})

	positionConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "rutero",
		Subsystem: "planner",
		Name:      "position_conflicts_total",
		Help:      "Total number of writes rejected by strict position mode.",
	})
)

// outcomeLabel maps an error to a low-cardinality outcome label.
func outcomeLabel(err error) string {
	if err == nil {
		return "ok"
	}
	switch domain.KindOf(err) {
	case domain.KindNotFound:
		return "not_found"
	case domain.KindValidation:
		return "validation"
	case domain.KindConflict:
		return "conflict"
	default:
		return "error"
	}
}

func recordProjections(mode domain.ViewMode, n int) {
	projectionsTotal.WithLabelValues(string(mode)).Add(float64(n))
}

func recordPositionConflict() {
	positionConflicts.Inc()
}

type metricsUseCaseObserver struct{}

// NewMetricsUseCaseObserver records use-case outcomes and latency in Prometheus.
func NewMetricsUseCaseObserver() UseCaseObserver {
	return metricsUseCaseObserver{}
}

func (metricsUseCaseObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	useCaseTotal.WithLabelValues(event.Name, outcomeLabel(event.Err)).Inc()
	useCaseDuration.WithLabelValues(event.Name).Observe(event.Duration.Seconds())
}
