package favorites

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK        = "ok"
	outcomeFetchFail = "fetch_failed"
	outcomeCancelled = "cancelled"
	outcomeClosed    = "closed"
)

var (
	reconcileTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sportlink",
		Subsystem: "favorites",
		Name:      "reconcile_total",
		Help:      "Reconcile calls by outcome.",
	}, []string{"outcome"})

	fetchTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "sportlink",
		Subsystem: "favorites",
		Name:      "fetch_total",
		Help:      "Batched fetches issued for missing favorites.",
	})

	recordsFetched = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "sportlink",
		Subsystem: "favorites",
		Name:      "records_added_total",
		Help:      "Fetched records inserted into favorite caches.",
	})

	recordsEvicted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "sportlink",
		Subsystem: "favorites",
		Name:      "records_evicted_total",
		Help:      "Records evicted because they are no longer favorites.",
	})

	cachedReconcilers = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "sportlink",
		Subsystem: "favorites",
		Name:      "cached_reconcilers",
		Help:      "Per-user reconcilers held by the registry.",
	})
)

func outcomeFor(err error) string {
	switch {
	case errors.Is(err, ErrFetchFailed):
		return outcomeFetchFail
	case errors.Is(err, ErrClosed):
		return outcomeClosed
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return outcomeCancelled
	}
	return outcomeFetchFail
}
