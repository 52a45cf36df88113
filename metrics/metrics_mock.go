package metrics

import (
	"github.com/stretchr/testify/mock"
)

// MetricsEngineMock is mock for the MetricsEngine interface
type MetricsEngineMock struct {
	mock.Mock
}

// RecordEvent mock
func (me *MetricsEngineMock) RecordEvent(labels EventLabels) {
	me.Called(labels)
}

// RecordSessionStart mock
func (me *MetricsEngineMock) RecordSessionStart() {
	me.Called()
}

// RecordSessionMiss mock
func (me *MetricsEngineMock) RecordSessionMiss(category EventCategory) {
	me.Called(category)
}

// RecordConsent mock
func (me *MetricsEngineMock) RecordConsent(status ConsentStatus) {
	me.Called(status)
}
