// Package metrics exposes Prometheus counters describing the driver's
// compile activity: attempts, successes, and failures broken down by
// diagnostic kind.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tauclang/tauc/internal/diag"
)

var (
	compileTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "tauc",
		Name:      "compile_total",
		Help:      "Total number of compile attempts.",
	})
	compileSuccess = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "tauc",
		Name:      "compile_success_total",
		Help:      "Total number of compiles that produced a listing.",
	})
	compileFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tauc",
		Name:      "compile_failures_total",
		Help:      "Total number of compiles rejected, by diagnostic kind.",
	}, []string{"kind"})
)

func init() {
	prometheus.MustRegister(compileTotal, compileSuccess, compileFailures)
}

// RecordCompile increments the attempt counter and either the success
// counter or the appropriate failure-kind counter.
func RecordCompile(err *diag.Error) {
	compileTotal.Inc()
	if err == nil {
		compileSuccess.Inc()
		return
	}
	compileFailures.WithLabelValues(string(err.Kind)).Inc()
}
