// Package metrics provides Prometheus metrics export for the reminder and
// break engines.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Exporter exports engine metrics in Prometheus format. All Record methods
// are safe on a nil receiver, so metrics stay optional for callers.
type Exporter struct {
	registry *prometheus.Registry

	// Reminder metrics
	remindersScheduled   *prometheus.CounterVec
	registrationFailures prometheus.Counter
	contextualSends      *prometheus.CounterVec

	// Break metrics
	breaksScheduled  *prometheus.CounterVec
	breakSuggestions *prometheus.CounterVec
	breaksCompleted  *prometheus.CounterVec
}

// Config configures the Prometheus exporter.
type Config struct {
	// Registry to use (if nil, creates a new one)
	Registry *prometheus.Registry
}

// NewExporter creates a new Prometheus metrics exporter.
func NewExporter(cfg Config) *Exporter {
	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	e := &Exporter{registry: registry}

	e.remindersScheduled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hydromate",
			Subsystem: "reminder",
			Name:      "scheduled_total",
			Help:      "Total number of reminder triggers registered",
		},
		[]string{"category"},
	)

	e.registrationFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "hydromate",
			Subsystem: "reminder",
			Name:      "registration_failures_total",
			Help:      "Total number of trigger registrations rejected by the delivery mechanism",
		},
	)

	e.contextualSends = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hydromate",
			Subsystem: "reminder",
			Name:      "contextual_sends_total",
			Help:      "Total number of immediate contextual sends",
		},
		[]string{"kind"},
	)

	e.breaksScheduled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hydromate",
			Subsystem: "breaks",
			Name:      "scheduled_total",
			Help:      "Total number of break triggers registered",
		},
		[]string{"category"},
	)

	e.breakSuggestions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hydromate",
			Subsystem: "breaks",
			Name:      "suggestions_total",
			Help:      "Total number of break suggestions returned",
		},
		[]string{"category"},
	)

	e.breaksCompleted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hydromate",
			Subsystem: "breaks",
			Name:      "completed_total",
			Help:      "Total number of breaks marked completed",
		},
		[]string{"category"},
	)

	registry.MustRegister(
		e.remindersScheduled,
		e.registrationFailures,
		e.contextualSends,
		e.breaksScheduled,
		e.breakSuggestions,
		e.breaksCompleted,
	)

	return e
}

// RecordReminderScheduled records one registered reminder trigger.
func (e *Exporter) RecordReminderScheduled(category string) {
	if e == nil {
		return
	}
	e.remindersScheduled.WithLabelValues(category).Inc()
}

// RecordRegistrationFailure records a trigger rejected by the delivery
// mechanism.
func (e *Exporter) RecordRegistrationFailure() {
	if e == nil {
		return
	}
	e.registrationFailures.Inc()
}

// RecordContextualSend records one immediate send.
func (e *Exporter) RecordContextualSend(kind string) {
	if e == nil {
		return
	}
	e.contextualSends.WithLabelValues(kind).Inc()
}

// RecordBreakScheduled records one registered break trigger.
func (e *Exporter) RecordBreakScheduled(category string) {
	if e == nil {
		return
	}
	e.breaksScheduled.WithLabelValues(category).Inc()
}

// RecordBreakSuggestion records one returned break suggestion.
func (e *Exporter) RecordBreakSuggestion(category string) {
	if e == nil {
		return
	}
	e.breakSuggestions.WithLabelValues(category).Inc()
}

// RecordBreakCompleted records one break marked completed.
func (e *Exporter) RecordBreakCompleted(category string) {
	if e == nil {
		return
	}
	e.breaksCompleted.WithLabelValues(category).Inc()
}

// Handler returns the HTTP handler for the metrics endpoint.
func (e *Exporter) Handler() http.Handler {
	return promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying Prometheus registry.
func (e *Exporter) Registry() *prometheus.Registry {
	return e.registry
}
