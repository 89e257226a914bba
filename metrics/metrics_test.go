package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveAnalysis(t *testing.T) {
	m := New()

	m.ObserveAnalysis("Criminal Case", 70)
	m.ObserveAnalysis("Criminal Case", 100)
	m.ObserveAnalysis("Family Case", 40)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.analysesTotal.WithLabelValues("Criminal Case")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.analysesTotal.WithLabelValues("Family Case")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.riskScore))
}

func TestCollaboratorFailed(t *testing.T) {
	m := New()
	m.CollaboratorFailed("translator")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.collaboratorFailures.WithLabelValues("translator")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveAnalysis("Civil Case", 0)
		m.CollaboratorFailed("summarizer")
		m.HistoryEvent("login")
	})
}
