// Package metrics exposes monitor and delivery counters in the Prometheus format.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"careconnect/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "careconnect"

// Registry owns the collectors of this process.
type Registry struct {
	registry *prometheus.Registry

	locations   *prometheus.CounterVec
	evaluations *prometheus.CounterVec
	breaches    prometheus.Counter
	reminders   *prometheus.CounterVec
	commands    *prometheus.CounterVec
	llm         *prometheus.CounterVec
	pushes      *prometheus.CounterVec
	requests    *prometheus.HistogramVec
}

// NewRegistry creates a registry with the Go and process collectors plus the service counters.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r := &Registry{
		registry: reg,
		locations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "locations_reported_total",
			Help:      "Location reports received, by whether the position was simulated.",
		}, []string{"simulated"}),
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geofence_evaluations_total",
			Help:      "Geofence evaluations, by outcome.",
		}, []string{"outcome"}),
		breaches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geofence_breaches_total",
			Help:      "Safe zone exits that raised an alert.",
		}),
		reminders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminders_surfaced_total",
			Help:      "Medicine reminders surfaced, by kind.",
		}, []string{"kind"}),
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assistant_commands_total",
			Help:      "Commands found in assistant replies.",
		}, []string{"kind", "accepted"}),
		llm: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "llm_requests_total",
			Help:      "Requests sent to language model providers.",
		}, []string{"provider", "result"}),
		pushes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "push_notifications_total",
			Help:      "Push notifications delivered to devices.",
		}, []string{"kind", "result"}),
		requests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency, by delivery, route template and status code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"origin", "method", "route", "status"}),
	}

	reg.MustRegister(r.locations, r.evaluations, r.breaches, r.reminders, r.commands, r.llm, r.pushes, r.requests)

	return r
}

// Handler serves the registry.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Gatherer exposes the registry for tests and embedding.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

func (r *Registry) LocationReported(simulated bool) {
	r.locations.WithLabelValues(strconv.FormatBool(simulated)).Inc()
}

func (r *Registry) GeofenceEvaluated(outcome string) {
	r.evaluations.WithLabelValues(outcome).Inc()
}

func (r *Registry) BreachDetected() {
	r.breaches.Inc()
}

func (r *Registry) ReminderSurfaced(kind string) {
	r.reminders.WithLabelValues(kind).Inc()
}

func (r *Registry) AssistantCommand(kind string, accepted bool) {
	r.commands.WithLabelValues(kind, strconv.FormatBool(accepted)).Inc()
}

func (r *Registry) LLMRequest(provider string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.llm.WithLabelValues(provider, result).Inc()
}

func (r *Registry) PushDelivered(kind string, sent, failed int) {
	r.pushes.WithLabelValues(kind, "sent").Add(float64(sent))
	r.pushes.WithLabelValues(kind, "failed").Add(float64(failed))
}

// ObserveRequest records one HTTP request. route is the template (/api/v1/tracking/:patientId),
// which keeps user ids out of the label set.
func (r *Registry) ObserveRequest(origin, method, route string, status int, elapsed time.Duration) {
	r.requests.WithLabelValues(origin, method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// Module provides the metrics registry as the service.MonitorMetrics implementation
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewRegistry,
		func(r *Registry) service.MonitorMetrics { return r },
	),
)
