package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.ObserveRequest(http.MethodGet, "/api/v1/chores", http.StatusOK, 20*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/api/v1/chores", http.StatusOK, 30*time.Millisecond)
	m.MirrorEvent("expense", MirrorDropped)
	m.ChoreCompleted("plants", true, []string{"plant-whisperer"})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/v1/chores", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.mirrorEvents.WithLabelValues("expense", MirrorDropped)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.choreCompletions.WithLabelValues("plants")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.levelUps))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.badgesUnlocked.WithLabelValues("plant-whisperer")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRequest("GET", "/", 200, time.Second)
		m.MirrorEvent("group", MirrorWritten)
		m.ChoreCompleted("kitchen", false, nil)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.MirrorEvent("roommate", MirrorWritten)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `homeledger_mirror_events_total{kind="roommate",outcome="written"} 1`)
}
