package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveAvailabilityCheck(t *testing.T) {
	m := NewWithRegistry("salon-test", prometheus.NewRegistry())

	m.ObserveAvailabilityCheck(OutcomeOK)
	m.ObserveAvailabilityCheck(OutcomeConflict)
	m.ObserveAvailabilityCheck(OutcomeConflict)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.AvailabilityChecks.WithLabelValues(OutcomeOK)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.AvailabilityChecks.WithLabelValues(OutcomeConflict)))
}

func TestObserveDBQueryCountsErrors(t *testing.T) {
	m := NewWithRegistry("salon-test", prometheus.NewRegistry())

	m.ObserveDBQuery("query", 0.01, nil)
	m.ObserveDBQuery("query", 0.02, errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("query")))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveAvailabilityCheck(OutcomeOK)
		m.ObservePlannedSlots("plan", 3)
		m.ObserveHTTPRequest("GET", "/x", "200", 0.1)
		m.ObserveDBQuery("exec", 0.1, nil)
	})
}
