package metrics

// EventLabels defines the labels that can be attached to the event metrics.
type EventLabels struct {
	Category EventCategory
	Status   EventStatus
}

// EventCategory is the family an inbound call was routed to.
type EventCategory string

// EventStatus tells whether the call reached the sink.
type EventStatus string

// ConsentStatus is the normalized consent flag of a call.
type ConsentStatus string

const (
	CategoryPlayback EventCategory = "playback"
	CategoryContent  EventCategory = "content"
	CategoryAd       EventCategory = "ad"
	CategoryGeneric  EventCategory = "generic"
	CategoryIdentify EventCategory = "identify"
	CategoryScreen   EventCategory = "screen"
)

func EventCategories() []EventCategory {
	return []EventCategory{
		CategoryPlayback,
		CategoryContent,
		CategoryAd,
		CategoryGeneric,
		CategoryIdentify,
		CategoryScreen,
	}
}

// VideoCategories are the categories that need a playback session.
func VideoCategories() []EventCategory {
	return []EventCategory{
		CategoryPlayback,
		CategoryContent,
		CategoryAd,
	}
}

const (
	// EventStatusOK means the call was forwarded to the sink.
	EventStatusOK EventStatus = "ok"
	// EventStatusNoSession means a video event arrived before any playback session existed.
	EventStatusNoSession EventStatus = "nosession"
)

func EventStatuses() []EventStatus {
	return []EventStatus{
		EventStatusOK,
		EventStatusNoSession,
	}
}

const (
	ConsentGranted    ConsentStatus = "granted"
	ConsentDenied     ConsentStatus = "denied"
	ConsentUnknown    ConsentStatus = "unknown"
	ConsentSuppressed ConsentStatus = "suppressed"
)

func ConsentStatuses() []ConsentStatus {
	return []ConsentStatus{
		ConsentGranted,
		ConsentDenied,
		ConsentUnknown,
		ConsentSuppressed,
	}
}

// MetricsEngine is a generic interface to record metrics into the desired backend.
type MetricsEngine interface {
	RecordEvent(labels EventLabels)
	RecordSessionStart()
	// RecordSessionMiss is called for video events dropped because no session exists.
	RecordSessionMiss(category EventCategory)
	RecordConsent(status ConsentStatus)
}
