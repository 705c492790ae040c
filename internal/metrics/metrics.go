package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds every ieltsplan metric plus the Go and process collectors.
	Registry = prometheus.NewRegistry()

	PlansGenerated = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "ieltsplan_plans_generated_total",
			Help: "Total number of study plans generated, by intensity.",
		},
		[]string{"intensity"},
	)

	ValidationFailures = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "ieltsplan_plan_validation_failures_total",
			Help: "Total number of rejected plan requests, by offending field.",
		},
		[]string{"field"},
	)

	Exports = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "ieltsplan_exports_total",
			Help: "Total number of plan exports, by format and outcome.",
		},
		[]string{"format", "status"},
	)

	RenderQueueDepth = promauto.With(Registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "ieltsplan_render_queue_depth",
			Help: "Number of document renders waiting for a worker.",
		},
	)

	RequestDuration = promauto.With(Registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ieltsplan_http_request_duration_seconds",
			Help:    "HTTP request latency, by method, route and status.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Handler serves the registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}

// ObserveRequest records one finished HTTP request.
func ObserveRequest(method, route string, status int, took time.Duration) {
	RequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(took.Seconds())
}

// ExportSucceeded and ExportFailed count export outcomes for format.
func ExportSucceeded(format string) { Exports.WithLabelValues(format, "ok").Inc() }
func ExportFailed(format string)    { Exports.WithLabelValues(format, "error").Inc() }
