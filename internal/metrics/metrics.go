// Package metrics exposes Prometheus instrumentation for the domain
// store: mutation outcomes per entity and emitted toasts per severity.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	mutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roadworks_store_mutations_total",
		Help: "Store mutation outcomes by entity collection.",
	}, []string{"entity", "outcome"})

	toastsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roadworks_toasts_total",
		Help: "Toasts emitted by severity.",
	}, []string{"severity"})
)

// MutationCommitted records a successfully applied mutation
func MutationCommitted(entity string) {
	mutationsTotal.WithLabelValues(entity, "committed").Inc()
}

// MutationRejected records a mutation that left state untouched
func MutationRejected(entity string) {
	mutationsTotal.WithLabelValues(entity, "rejected").Inc()
}

// ToastEmitted records an emitted toast
func ToastEmitted(severity string) {
	toastsTotal.WithLabelValues(severity).Inc()
}

// Handler returns the scrape endpoint handler
func Handler() http.Handler {
	return promhttp.Handler()
}
