package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"careconnect/config"
	deliverycontext "careconnect/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observation struct {
	origin, method, route string
	status                int
}

type recordingObserver struct {
	seen []observation
}

func (r *recordingObserver) ObserveRequest(origin, method, route string, status int, _ time.Duration) {
	r.seen = append(r.seen, observation{origin, method, route, status})
}

func newTestServer(t *testing.T, debug bool, buf *bytes.Buffer, observer RequestObserver) *echo.Echo {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Debug = debug
	cfg.Metrics.Path = "/metrics"
	logger := slog.New(slog.NewTextHandler(buf, nil))

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger, deliverycontext.OriginHTTP).Process)
	e.Use(NewLoggerMiddleware(logger, cfg, observer).Handle)

	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/api/v1/tracking/:patientId", func(c echo.Context) error {
		return c.String(http.StatusOK, deliverycontext.GetRequestIDFromContext(c.Request().Context()))
	})
	e.GET("/api/v1/alerts/:id", func(echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "alert not found")
	})

	return e
}

func TestRequestID_EchoesClientHeader(t *testing.T) {
	var buf bytes.Buffer
	e := newTestServer(t, false, &buf, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tracking/patient-1", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-7")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "req-7", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "req-7", rec.Body.String())
}

func TestRequestID_Generated(t *testing.T) {
	var buf bytes.Buffer
	e := newTestServer(t, false, &buf, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/tracking/patient-1", nil))

	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestLogger_ObservesRouteTemplate(t *testing.T) {
	var buf bytes.Buffer
	observer := &recordingObserver{}
	e := newTestServer(t, false, &buf, observer)

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/tracking/patient-1", nil))
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Len(t, observer.seen, 1, "health checks are not observed")
	assert.Equal(t, observation{"http", http.MethodGet, "/api/v1/tracking/:patientId", http.StatusOK}, observer.seen[0])
	assert.Empty(t, buf.String(), "successful requests are not logged outside debug")
}

func TestLogger_FailuresAreLoggedWithRealStatus(t *testing.T) {
	var buf bytes.Buffer
	observer := &recordingObserver{}
	e := newTestServer(t, false, &buf, observer)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/alerts/a-1", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.Len(t, observer.seen, 1)
	assert.Equal(t, http.StatusNotFound, observer.seen[0].status)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "route=/api/v1/alerts/:id")
	assert.Contains(t, buf.String(), "origin=http")
}

func TestLogger_DebugLogsEverything(t *testing.T) {
	var buf bytes.Buffer
	e := newTestServer(t, true, &buf, nil)

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/tracking/patient-1?since=x", nil))

	assert.Contains(t, buf.String(), "HTTP Request")
	assert.Contains(t, buf.String(), `query="since=x"`)
}
