package comscore

import (
	"context"

	"github.com/prebid/comscore-destination/analytics"
	"github.com/prebid/comscore-destination/logger"
	"github.com/prebid/comscore-destination/metrics"
)

// Key is the destination key. Per call options are read from the integrations entry with
// this key.
const Key = "comScore"

// Deps are the collaborators of the integration. Zero values are replaced by a log sink, a
// glog logger tagged with Key and a metrics engine that records nothing.
type Deps struct {
	Sink          Sink
	Logger        logger.Logger
	MetricsEngine metrics.MetricsEngine
}

// Integration forwards analytics calls to comScore. It is not safe for concurrent use: the
// host SDK calls it from a single dispatch queue.
type Integration struct {
	settings      Settings
	sink          Sink
	logger        logger.Logger
	metricsEngine metrics.MetricsEngine

	session *playbackSession
}

var _ analytics.Integration = (*Integration)(nil)

// New builds the integration from the destination settings bag and starts the sink. Settings
// problems are logged as warnings; every setting has a default.
func New(ctx context.Context, bag map[string]interface{}, deps Deps) *Integration {
	if deps.Logger == nil {
		deps.Logger = logger.NewGlogLogger(Key)
	}
	if deps.Sink == nil {
		deps.Sink = NewLogSink(deps.Logger)
	}
	if deps.MetricsEngine == nil {
		deps.MetricsEngine = &metrics.NilMetricsEngine{}
	}

	for _, warning := range ValidateSettings(bag) {
		deps.Logger.Warnf("%v", warning)
	}

	i := &Integration{
		settings:      ParseSettings(bag),
		sink:          deps.Sink,
		logger:        deps.Logger,
		metricsEngine: deps.MetricsEngine,
	}
	i.sink.Start(ctx, PartnerID, i.settings.PublisherConfiguration())
	return i
}

// Settings returns the parsed destination settings.
func (i *Integration) Settings() Settings {
	return i.settings
}

// Track reports the consent flag, then routes the event: video events go through the
// playback session, anything else is sent as a hidden event.
func (i *Integration) Track(track *analytics.TrackPayload) {
	if track == nil {
		return
	}
	i.applyConsent(track.Properties, track.Context.Traits)

	category, isVideo := videoEvents[track.Event]
	if !isVideo {
		labels := MapGeneric(track.Event, track.Properties)
		i.sink.NotifyHiddenEvent(labels)
		i.metricsEngine.RecordEvent(metrics.EventLabels{Category: metrics.CategoryGeneric, Status: metrics.EventStatusOK})
		return
	}

	options := track.IntegrationOptions(Key)
	if !i.trackVideo(track.Event, category, track.Properties, options) {
		i.metricsEngine.RecordSessionMiss(category)
		i.metricsEngine.RecordEvent(metrics.EventLabels{Category: category, Status: metrics.EventStatusNoSession})
		return
	}
	i.metricsEngine.RecordEvent(metrics.EventLabels{Category: category, Status: metrics.EventStatusOK})
}

// Identify sets the traits, the user id and the anonymous id as persistent labels.
func (i *Integration) Identify(identify *analytics.IdentifyPayload) {
	if identify == nil {
		return
	}
	i.applyConsent(identify.Traits, identify.Context.Traits)

	labels := StringLabels(identify.Traits)
	labels.Set("userId", identify.UserID)
	if identify.AnonymousID != "" {
		labels.Set("anonymousId", identify.AnonymousID)
	}
	i.sink.SetPersistentLabels(labels)
	i.metricsEngine.RecordEvent(metrics.EventLabels{Category: metrics.CategoryIdentify, Status: metrics.EventStatusOK})
}

// Screen sends a view event with the screen properties, name and category.
func (i *Integration) Screen(screen *analytics.ScreenPayload) {
	if screen == nil {
		return
	}
	i.applyConsent(screen.Properties, screen.Context.Traits)

	labels := StringLabels(screen.Properties)
	labels.Set("name", screen.Name)
	labels.Set("category", screen.Category)
	i.sink.NotifyViewEvent(labels)
	i.metricsEngine.RecordEvent(metrics.EventLabels{Category: metrics.CategoryScreen, Status: metrics.EventStatusOK})
}

// Shutdown drops the playback session and flushes the sink.
func (i *Integration) Shutdown() {
	if i.session != nil {
		i.session.release()
		i.session = nil
	}
	i.sink.Shutdown()
}
