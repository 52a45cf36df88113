package metrics

// NilMetricsEngine implements MetricsEngine and discards everything. It is used when no metrics
// backend is configured.
type NilMetricsEngine struct{}

func (*NilMetricsEngine) RecordEvent(labels EventLabels)           {}
func (*NilMetricsEngine) RecordSessionStart()                      {}
func (*NilMetricsEngine) RecordSessionMiss(category EventCategory) {}
func (*NilMetricsEngine) RecordConsent(status ConsentStatus)       {}
