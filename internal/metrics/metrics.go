// Package metrics defines the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all collectors for the server.
type Metrics struct {
	// RequestsTotal counts HTTP requests by method, route pattern, and
	// status code.
	RequestsTotal *prometheus.CounterVec

	// RequestDuration observes HTTP request latency by method and route
	// pattern.
	RequestDuration *prometheus.HistogramVec

	// BillsCreated counts successfully created bills.
	BillsCreated prometheus.Counter

	// BillsRejected counts bill requests rejected for a missing item or
	// insufficient stock.
	BillsRejected prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "stockroom_http_requests_total",
			Help: "Total HTTP requests processed, by method, route, and status.",
		}, []string{"method", "route", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "stockroom_http_request_duration_seconds",
			Help:    "HTTP request latency, by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		BillsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "stockroom_bills_created_total",
			Help: "Bills successfully created.",
		}),
		BillsRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "stockroom_bills_rejected_total",
			Help: "Bill requests rejected for a missing item or insufficient stock.",
		}),
	}
}
