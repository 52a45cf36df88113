package prometheusmetrics

import (
	"github.com/prebid/comscore-destination/config"
	"github.com/prebid/comscore-destination/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics defines the Prometheus metrics backing the MetricsEngine implementation.
type Metrics struct {
	Registry *prometheus.Registry

	events          *prometheus.CounterVec
	sessionsStarted prometheus.Counter
	sessionMisses   *prometheus.CounterVec
	consent         *prometheus.CounterVec
}

const (
	categoryLabel = "category"
	statusLabel   = "status"
)

// NewMetrics initializes a new Prometheus metrics instance with preloaded label values.
func NewMetrics(cfg config.PrometheusMetrics) *Metrics {
	m := Metrics{}
	m.Registry = prometheus.NewRegistry()

	m.events = newCounter(cfg, m.Registry,
		"events",
		"Count of inbound calls labeled by category and by whether they reached the sink.",
		[]string{categoryLabel, statusLabel})

	m.sessionsStarted = newCounterWithoutLabels(cfg, m.Registry,
		"sessions_started",
		"Count of playback sessions created.")

	m.sessionMisses = newCounter(cfg, m.Registry,
		"session_misses",
		"Count of video events dropped because no playback session existed, labeled by category.",
		[]string{categoryLabel})

	m.consent = newCounter(cfg, m.Registry,
		"consent",
		"Count of consent flags seen, labeled by normalized status.",
		[]string{statusLabel})

	preloadLabelValues(&m)

	return &m
}

func newCounter(cfg config.PrometheusMetrics, registry *prometheus.Registry, name, help string, labels []string) *prometheus.CounterVec {
	opts := prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Subsystem: cfg.Subsystem,
		Name:      name,
		Help:      help,
	}
	counter := prometheus.NewCounterVec(opts, labels)
	registry.MustRegister(counter)
	return counter
}

func newCounterWithoutLabels(cfg config.PrometheusMetrics, registry *prometheus.Registry, name, help string) prometheus.Counter {
	opts := prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Subsystem: cfg.Subsystem,
		Name:      name,
		Help:      help,
	}
	counter := prometheus.NewCounter(opts)
	registry.MustRegister(counter)
	return counter
}

// preloadLabelValues creates every series up front so they are exported at zero.
func preloadLabelValues(m *Metrics) {
	for _, c := range metrics.EventCategories() {
		for _, s := range metrics.EventStatuses() {
			m.events.WithLabelValues(string(c), string(s))
		}
	}
	for _, c := range metrics.VideoCategories() {
		m.sessionMisses.WithLabelValues(string(c))
	}
	for _, s := range metrics.ConsentStatuses() {
		m.consent.WithLabelValues(string(s))
	}
}

func (m *Metrics) RecordEvent(labels metrics.EventLabels) {
	m.events.With(prometheus.Labels{
		categoryLabel: string(labels.Category),
		statusLabel:   string(labels.Status),
	}).Inc()
}

func (m *Metrics) RecordSessionStart() {
	m.sessionsStarted.Inc()
}

func (m *Metrics) RecordSessionMiss(category metrics.EventCategory) {
	m.sessionMisses.With(prometheus.Labels{
		categoryLabel: string(category),
	}).Inc()
}

func (m *Metrics) RecordConsent(status metrics.ConsentStatus) {
	m.consent.With(prometheus.Labels{
		statusLabel: string(status),
	}).Inc()
}
