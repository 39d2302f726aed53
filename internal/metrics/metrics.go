// Package metrics exposes Prometheus instruments for the contact directory.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for submissions.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
)

// Recorder holds the directory's instruments on its own registry so that
// tests and multiple servers in one process do not collide.
type Recorder struct {
	registry         *prometheus.Registry
	submissions      *prometheus.CounterVec
	validationErrors *prometheus.CounterVec
	stored           prometheus.Gauge
}

// NewRecorder creates a Recorder. When withRuntime is true the Go runtime
// and process collectors are registered as well.
func NewRecorder(namespace string, withRuntime bool) *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		registry: reg,
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Contact submissions by outcome.",
		}, []string{"outcome"}),
		validationErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_errors_total",
			Help:      "Validation errors reported to users, by field and kind.",
		}, []string{"field", "kind"}),
		stored: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stored",
			Help:      "Number of contacts currently stored.",
		}),
	}
	reg.MustRegister(r.submissions, r.validationErrors, r.stored)
	if withRuntime {
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return r
}

// Submission counts one submission with the given outcome.
func (r *Recorder) Submission(outcome string) {
	if r == nil {
		return
	}
	r.submissions.WithLabelValues(outcome).Inc()
}

// ValidationError counts one reported validation error.
func (r *Recorder) ValidationError(field, kind string) {
	if r == nil {
		return
	}
	r.validationErrors.WithLabelValues(field, kind).Inc()
}

// SetStored records the current store size.
func (r *Recorder) SetStored(n int) {
	if r == nil {
		return
	}
	r.stored.Set(float64(n))
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
