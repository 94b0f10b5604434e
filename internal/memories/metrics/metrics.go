// Package metrics defines the Prometheus collectors for the memorylane service.
//
// Naming follows Prometheus conventions:
//   - memorylane_ prefix for all custom metrics
//   - _total suffix for counters
//   - _seconds suffix for duration histograms
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Login outcome label values.
const (
	OutcomeSuccess     = "success"
	OutcomeInvalid     = "invalid"
	OutcomeMissing     = "missing"
	OutcomeRateLimited = "rate_limited"
	OutcomeError       = "error"
)

// Login path label values.
const (
	PathPrimary  = "primary"
	PathFallback = "fallback"
	PathNone     = "none"
)

// Metrics holds every collector the service records to.
type Metrics struct {
	registry *prometheus.Registry

	// LoginAttempts counts login attempts by credential path and outcome.
	LoginAttempts *prometheus.CounterVec

	// LoginRateLimited counts attempts refused by the login limiter.
	LoginRateLimited prometheus.Counter

	// PasswordVerifySeconds is the time spent inside password verification.
	PasswordVerifySeconds prometheus.Histogram

	// GateRejections counts requests refused by the authorization gate.
	GateRejections *prometheus.CounterVec
}

// New registers the collectors on a fresh registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		LoginAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "memorylane_login_attempts_total",
				Help: "Total login attempts by credential path and outcome.",
			},
			[]string{"path", "outcome"},
		),
		LoginRateLimited: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "memorylane_login_rate_limited_total",
				Help: "Total login attempts rejected by the attempt limiter.",
			},
		),
		PasswordVerifySeconds: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "memorylane_password_verify_seconds",
				Help:    "Duration of password hash verifications in seconds.",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2},
			},
		),
		GateRejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "memorylane_auth_gate_rejections_total",
				Help: "Total requests rejected by the authorization gate by reason.",
			},
			[]string{"reason"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.LoginAttempts,
		m.LoginRateLimited,
		m.PasswordVerifySeconds,
		m.GateRejections,
	)
	return m
}

// RecordLogin records one login attempt.
func (m *Metrics) RecordLogin(path, outcome string) {
	m.LoginAttempts.WithLabelValues(path, outcome).Inc()
	if outcome == OutcomeRateLimited {
		m.LoginRateLimited.Inc()
	}
}

// ObservePasswordVerify records the duration of one verification.
func (m *Metrics) ObservePasswordVerify(d time.Duration) {
	m.PasswordVerifySeconds.Observe(d.Seconds())
}

// RecordGateRejection records one refused request.
func (m *Metrics) RecordGateRejection(reason string) {
	m.GateRejections.WithLabelValues(reason).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
