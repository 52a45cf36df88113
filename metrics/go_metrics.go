package metrics

import (
	"fmt"

	metrics "github.com/rcrowley/go-metrics"
)

// Metrics is the go-metrics implementation of the MetricsEngine interface.
type Metrics struct {
	MetricsRegistry   metrics.Registry
	SessionStartMeter metrics.Meter
	// EventMeters[category][status]
	EventMeters       map[EventCategory]map[EventStatus]metrics.Meter
	SessionMissMeters map[EventCategory]metrics.Meter
	ConsentMeters     map[ConsentStatus]metrics.Meter
}

// NewBlankMetrics creates a new Metrics object with all blank metrics object. This may also be
// useful for testing routines to ensure that no metrics are written anywhere.
func NewBlankMetrics(registry metrics.Registry) *Metrics {
	blankMeter := &metrics.NilMeter{}
	newMetrics := &Metrics{
		MetricsRegistry:   registry,
		SessionStartMeter: blankMeter,
		EventMeters:       make(map[EventCategory]map[EventStatus]metrics.Meter),
		SessionMissMeters: make(map[EventCategory]metrics.Meter),
		ConsentMeters:     make(map[ConsentStatus]metrics.Meter),
	}

	for _, c := range EventCategories() {
		newMetrics.EventMeters[c] = make(map[EventStatus]metrics.Meter)
		for _, s := range EventStatuses() {
			newMetrics.EventMeters[c][s] = blankMeter
		}
	}
	for _, c := range VideoCategories() {
		newMetrics.SessionMissMeters[c] = blankMeter
	}
	for _, s := range ConsentStatuses() {
		newMetrics.ConsentMeters[s] = blankMeter
	}

	return newMetrics
}

// NewMetrics creates a new Metrics object with every meter registered in registry.
func NewMetrics(registry metrics.Registry) *Metrics {
	newMetrics := NewBlankMetrics(registry)
	newMetrics.SessionStartMeter = metrics.GetOrRegisterMeter("sessions.started", registry)

	for _, c := range EventCategories() {
		for _, s := range EventStatuses() {
			newMetrics.EventMeters[c][s] = metrics.GetOrRegisterMeter(fmt.Sprintf("events.%s.%s", s, c), registry)
		}
	}
	for _, c := range VideoCategories() {
		newMetrics.SessionMissMeters[c] = metrics.GetOrRegisterMeter(fmt.Sprintf("sessions.miss.%s", c), registry)
	}
	for _, s := range ConsentStatuses() {
		newMetrics.ConsentMeters[s] = metrics.GetOrRegisterMeter(fmt.Sprintf("consent.%s", s), registry)
	}

	return newMetrics
}

// RecordEvent implements a part of the MetricsEngine interface.
func (me *Metrics) RecordEvent(labels EventLabels) {
	statuses, ok := me.EventMeters[labels.Category]
	if !ok {
		return
	}
	if meter, ok := statuses[labels.Status]; ok {
		meter.Mark(1)
	}
}

func (me *Metrics) RecordSessionStart() {
	me.SessionStartMeter.Mark(1)
}

// RecordSessionMiss implements a part of the MetricsEngine interface. Non video categories
// are ignored.
func (me *Metrics) RecordSessionMiss(category EventCategory) {
	if meter, ok := me.SessionMissMeters[category]; ok {
		meter.Mark(1)
	}
}

func (me *Metrics) RecordConsent(status ConsentStatus) {
	if meter, ok := me.ConsentMeters[status]; ok {
		meter.Mark(1)
	}
}
