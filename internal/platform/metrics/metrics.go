// Package metrics owns the prometheus collectors exposed on /metrics.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "homeledger"

// Mirror event outcomes.
const (
	MirrorEnqueued = "enqueued"
	MirrorDropped  = "dropped"
	MirrorWritten  = "written"
	MirrorFailed   = "failed"
)

// Metrics groups the application collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	mirrorEvents     *prometheus.CounterVec
	choreCompletions *prometheus.CounterVec
	levelUps         prometheus.Counter
	badgesUnlocked   *prometheus.CounterVec
}

// New registers every collector plus the Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		mirrorEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mirror_events_total",
			Help:      "Remote record mirror events by kind and outcome.",
		}, []string{"kind", "outcome"}),
		choreCompletions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chore_completions_total",
			Help:      "Chore completions by category.",
		}, []string{"category"}),
		levelUps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "roommate_level_ups_total",
			Help:      "Roommate level ups.",
		}),
		badgesUnlocked: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "badges_unlocked_total",
			Help:      "Badges unlocked by badge id.",
		}, []string{"badge"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.mirrorEvents,
		m.choreCompletions,
		m.levelUps,
		m.badgesUnlocked,
	)
	return m
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRequest records one finished HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, took time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(took.Seconds())
}

// MirrorEvent counts a mirror event outcome.
func (m *Metrics) MirrorEvent(kind, outcome string) {
	if m == nil {
		return
	}
	m.mirrorEvents.WithLabelValues(kind, outcome).Inc()
}

// MirrorEventsCounter exposes one mirror outcome series.
func (m *Metrics) MirrorEventsCounter(kind, outcome string) prometheus.Counter {
	return m.mirrorEvents.WithLabelValues(kind, outcome)
}

// ChoreCompleted records a completion and whatever it unlocked.
func (m *Metrics) ChoreCompleted(category string, leveledUp bool, badges []string) {
	if m == nil {
		return
	}
	m.choreCompletions.WithLabelValues(category).Inc()
	if leveledUp {
		m.levelUps.Inc()
	}
	for _, b := range badges {
		m.badgesUnlocked.WithLabelValues(b).Inc()
	}
}
