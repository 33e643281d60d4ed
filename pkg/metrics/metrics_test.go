package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_DomainCounters(t *testing.T) {
	m := NewWithRegisterer("court-service", prometheus.NewRegistry())

	m.AddSlotsGenerated(5)
	m.AddSlotsGenerated(0)
	m.AddSlotsPurged(3)
	m.IncReservationsCreated()
	m.IncReservationConflicts()
	m.IncReservationConflicts()

	assert.Equal(t, 5.0, testutil.ToFloat64(m.slotsGenerated.WithLabelValues("court-service")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.slotsPurged.WithLabelValues("court-service")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reservationsCreated.WithLabelValues("court-service")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.reservationConflicts.WithLabelValues("court-service")))
}

func TestMetrics_HTTPRequests(t *testing.T) {
	m := NewWithRegisterer("court-service", prometheus.NewRegistry())

	m.ObserveHTTPRequest("POST", "/api/reservations", 201, 15*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.httpRequestsTotal.WithLabelValues("court-service", "POST", "/api/reservations", "201")))
}

func TestMetrics_NilReceiverIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.AddSlotsGenerated(1)
		m.AddSlotsPurged(1)
		m.IncReservationsCreated()
		m.IncReservationConflicts()
		m.ObserveHTTPRequest("GET", "/", 200, time.Second)
		m.ObserveDBQuery("select", time.Second, nil)
	})
}
