// Package metrics wires Prometheus instrumentation for the HTTP server
// and the signup domain.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mergington"

// NewRegistry creates a Prometheus registry with Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return reg
}

// Handler returns an http.Handler that serves Prometheus metrics.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// RegisterSessionGauge exposes the number of active teacher sessions.
func RegisterSessionGauge(reg prometheus.Registerer, count func() int) {
	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sessions_active",
		Help:      "Number of active teacher sessions.",
	}, func() float64 { return float64(count()) }))
}

// RosterMetrics holds Prometheus metrics for roster mutations.
type RosterMetrics struct {
	SignupsTotal     *prometheus.CounterVec
	UnregistersTotal *prometheus.CounterVec
}

// NewRosterMetrics creates and registers roster mutation metrics on the given registry.
func NewRosterMetrics(reg prometheus.Registerer) *RosterMetrics {
	m := &RosterMetrics{
		SignupsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signups_total",
			Help:      "Total signup attempts, by result.",
		}, []string{"result"}),
		UnregistersTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unregisters_total",
			Help:      "Total unregister attempts, by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(m.SignupsTotal, m.UnregistersTotal)
	return m
}
