package config

import (
	mainConfig "github.com/prebid/comscore-destination/config"
	"github.com/prebid/comscore-destination/metrics"
	prometheusmetrics "github.com/prebid/comscore-destination/metrics/prometheus"
	gometrics "github.com/rcrowley/go-metrics"
)

// NewMetricsEngine reads the configuration and returns the appropriate metrics engine.
// Both engines may be enabled at once, in which case calls are fanned out to each.
func NewMetricsEngine(cfg *mainConfig.Configuration) *DetailedMetricsEngine {
	engineList := make(MultiMetricsEngine, 0, 2)
	returnEngine := DetailedMetricsEngine{}

	if cfg.Metrics.GoMetrics.Enabled {
		returnEngine.GoMetrics = metrics.NewMetrics(gometrics.NewPrefixedRegistry(cfg.Metrics.GoMetrics.Prefix))
		engineList = append(engineList, returnEngine.GoMetrics)
	}
	if cfg.Metrics.Prometheus.Enabled {
		returnEngine.PrometheusMetrics = prometheusmetrics.NewMetrics(cfg.Metrics.Prometheus)
		engineList = append(engineList, returnEngine.PrometheusMetrics)
	}

	switch len(engineList) {
	case 0:
		returnEngine.MetricsEngine = &metrics.NilMetricsEngine{}
	case 1:
		returnEngine.MetricsEngine = engineList[0]
	default:
		returnEngine.MetricsEngine = &engineList
	}

	return &returnEngine
}

// DetailedMetricsEngine is a MetricsEngine that keeps the concrete engines around, so the
// replay binary can export what they recorded.
type DetailedMetricsEngine struct {
	metrics.MetricsEngine
	GoMetrics         *metrics.Metrics
	PrometheusMetrics *prometheusmetrics.Metrics
}

// MultiMetricsEngine logs metrics to multiple metrics databases. This is useful when
// migrating from one backend to another.
type MultiMetricsEngine []metrics.MetricsEngine

func (me *MultiMetricsEngine) RecordEvent(labels metrics.EventLabels) {
	for _, thisME := range *me {
		thisME.RecordEvent(labels)
	}
}

func (me *MultiMetricsEngine) RecordSessionStart() {
	for _, thisME := range *me {
		thisME.RecordSessionStart()
	}
}

func (me *MultiMetricsEngine) RecordSessionMiss(category metrics.EventCategory) {
	for _, thisME := range *me {
		thisME.RecordSessionMiss(category)
	}
}

func (me *MultiMetricsEngine) RecordConsent(status metrics.ConsentStatus) {
	for _, thisME := range *me {
		thisME.RecordConsent(status)
	}
}

