package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RequestSample struct {
	Route     string
	Method    string
	Status    int
	Latency   time.Duration
	Timestamp time.Time
}

// Recorder exports request metrics to Prometheus and keeps the short
// request windows served by the stats endpoint.
type Recorder struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	lookups  *prometheus.CounterVec
	window   *Window
	started  time.Time
}

func NewRecorder(registry *prometheus.Registry, now time.Time) *Recorder {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	r := &Recorder{
		registry: registry,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "skyblock_facade",
			Name:      "http_requests_total",
			Help:      "HTTP requests handled, by route, method and status.",
		}, []string{"route", "method", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "skyblock_facade",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency, by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "skyblock_facade",
			Name:      "profile_lookups_total",
			Help:      "Profile lookups, by outcome.",
		}, []string{"outcome"}),
		window:  NewWindow(),
		started: now,
	}
	registry.MustRegister(r.requests, r.latency, r.lookups)
	return r
}

func (r *Recorder) Observe(s RequestSample) {
	r.requests.WithLabelValues(s.Route, s.Method, strconv.Itoa(s.Status)).Inc()
	r.latency.WithLabelValues(s.Route).Observe(s.Latency.Seconds())
	r.window.Record(s.Timestamp)
}

// ObserveLookup counts one profile lookup outcome such as "ok" or
// "not_found".
func (r *Recorder) ObserveLookup(outcome string) {
	r.lookups.WithLabelValues(outcome).Inc()
}

func (r *Recorder) Requests(now time.Time) RequestCounts {
	return r.window.Counts(now)
}

// Uptime is the time since the recorder was created.
func (r *Recorder) Uptime(now time.Time) time.Duration {
	return now.Sub(r.started)
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
