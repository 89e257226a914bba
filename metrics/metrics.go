// Package metrics exposes Prometheus collectors for document analysis.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "legaldoc"

// Metrics holds the service collectors and their registry
type Metrics struct {
	registry             *prometheus.Registry
	analysesTotal        *prometheus.CounterVec
	riskScore            prometheus.Histogram
	collaboratorFailures *prometheus.CounterVec
	historyEvents        *prometheus.CounterVec
}

// New creates collectors registered on a fresh registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		analysesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Documents analyzed, by detected case nature.",
		}, []string{"case_nature"}),
		riskScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "risk_score",
			Help:      "Distribution of document risk scores.",
			Buckets:   prometheus.LinearBuckets(0, 10, 11),
		}),
		collaboratorFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "collaborator_failures_total",
			Help:      "Failed calls into external collaborators.",
		}, []string{"collaborator"}),
		historyEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "history_events_total",
			Help:      "Login, logout, feedback and rating events recorded.",
		}, []string{"event"}),
	}
	reg.MustRegister(
		m.analysesTotal,
		m.riskScore,
		m.collaboratorFailures,
		m.historyEvents,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveAnalysis records a completed analysis
func (m *Metrics) ObserveAnalysis(caseNature string, riskScore int) {
	if m == nil {
		return
	}
	m.analysesTotal.WithLabelValues(caseNature).Inc()
	m.riskScore.Observe(float64(riskScore))
}

// CollaboratorFailed records a failed collaborator call
func (m *Metrics) CollaboratorFailed(name string) {
	if m == nil {
		return
	}
	m.collaboratorFailures.WithLabelValues(name).Inc()
}

// HistoryEvent records a history log mutation
func (m *Metrics) HistoryEvent(event string) {
	if m == nil {
		return
	}
	m.historyEvents.WithLabelValues(event).Inc()
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
