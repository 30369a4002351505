package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Counters(t *testing.T) {
	r := NewRegistry()

	r.LocationReported(true)
	r.LocationReported(false)
	r.LocationReported(false)
	r.GeofenceEvaluated("outside")
	r.BreachDetected()
	r.ReminderSurfaced("advance")
	r.AssistantCommand("SEND_MESSAGE", false)
	r.LLMRequest("groq", nil)
	r.LLMRequest("groq", errors.New("boom"))
	r.PushDelivered("geofence_breach", 3, 1)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.locations.WithLabelValues("false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.breaches))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.llm.WithLabelValues("groq", "error")))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.pushes.WithLabelValues("geofence_breach", "sent")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.commands.WithLabelValues("SEND_MESSAGE", "false")))
}

func TestRegistry_Handler(t *testing.T) {
	r := NewRegistry()
	r.BreachDetected()

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "careconnect_geofence_breaches_total 1")
}

func TestRegistry_ObserveRequest(t *testing.T) {
	r := NewRegistry()

	r.ObserveRequest("http", http.MethodGet, "/api/v1/tracking/:patientId", http.StatusOK, 20*time.Millisecond)
	r.ObserveRequest("http", http.MethodGet, "/api/v1/tracking/:patientId", http.StatusOK, 40*time.Millisecond)
	r.ObserveRequest("worker", http.MethodPost, "/push", http.StatusServiceUnavailable, time.Second)

	assert.Equal(t, 2, testutil.CollectAndCount(r.requests))
}
