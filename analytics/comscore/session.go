package comscore

import (
	"github.com/prebid/comscore-destination/analytics"
	"github.com/prebid/comscore-destination/metrics"
)

// Video event names understood by the playback session.
const (
	EventPlaybackStarted         = "Video Playback Started"
	EventPlaybackPaused          = "Video Playback Paused"
	EventPlaybackInterrupted     = "Video Playback Interrupted"
	EventPlaybackBufferStarted   = "Video Playback Buffer Started"
	EventPlaybackBufferCompleted = "Video Playback Buffer Completed"
	EventPlaybackSeekStarted     = "Video Playback Seek Started"
	EventPlaybackSeekCompleted   = "Video Playback Seek Completed"
	EventPlaybackResumed         = "Video Playback Resumed"

	EventContentStarted   = "Video Content Started"
	EventContentPlaying   = "Video Content Playing"
	EventContentCompleted = "Video Content Completed"

	EventAdStarted   = "Video Ad Started"
	EventAdPlaying   = "Video Ad Playing"
	EventAdCompleted = "Video Ad Completed"
)

var videoEvents = map[string]metrics.EventCategory{
	EventPlaybackStarted:         metrics.CategoryPlayback,
	EventPlaybackPaused:          metrics.CategoryPlayback,
	EventPlaybackInterrupted:     metrics.CategoryPlayback,
	EventPlaybackBufferStarted:   metrics.CategoryPlayback,
	EventPlaybackBufferCompleted: metrics.CategoryPlayback,
	EventPlaybackSeekStarted:     metrics.CategoryPlayback,
	EventPlaybackSeekCompleted:   metrics.CategoryPlayback,
	EventPlaybackResumed:         metrics.CategoryPlayback,
	EventContentStarted:          metrics.CategoryContent,
	EventContentPlaying:          metrics.CategoryContent,
	EventContentCompleted:        metrics.CategoryContent,
	EventAdStarted:               metrics.CategoryAd,
	EventAdPlaying:               metrics.CategoryAd,
	EventAdCompleted:             metrics.CategoryAd,
}

// playbackSession is the live streaming tag plus the labels remembered across events: the
// content id and the type of the last ad break. The native SDK cannot be asked for them.
//
// A nil *playbackSession means no "Video Playback Started" has been seen yet. Completed events
// never end the session, only the next "Video Playback Started" replaces it.
type playbackSession struct {
	analytics StreamingAnalytics
	cache     *Labels
}

func newPlaybackSession(sa StreamingAnalytics) *playbackSession {
	return &playbackSession{
		analytics: sa,
		cache:     NewLabels(2),
	}
}

// release drops the references to the streaming tag and its cached labels.
func (s *playbackSession) release() {
	s.analytics = nil
	s.cache = nil
}

func (s *playbackSession) contentID() (string, bool) {
	return s.cache.Get(labelContentID)
}

func (s *playbackSession) adType() (string, bool) {
	return s.cache.Get(labelAdType)
}

func position(properties *analytics.Properties) int64 {
	return properties.LookupInt(0, "position", "playbackPosition")
}

// trackVideo runs a video event through the session. It returns false when the event had to be
// dropped because no session exists.
func (i *Integration) trackVideo(name string, category metrics.EventCategory, properties, options *analytics.Properties) bool {
	if name == EventPlaybackStarted {
		i.startPlayback(properties, options)
		return true
	}

	if i.session == nil {
		i.logger.Debugf("no playback session, ignoring %q", name)
		return false
	}

	switch category {
	case metrics.CategoryPlayback:
		i.trackPlayback(name, properties, options)
	case metrics.CategoryContent:
		i.trackContent(name, properties, options)
	case metrics.CategoryAd:
		i.trackAd(name, properties, options)
	}
	return true
}

func (i *Integration) startPlayback(properties, options *analytics.Properties) {
	if i.session != nil {
		i.session.release()
	}

	sa := i.sink.CreateStreamingAnalytics()
	sa.CreatePlaybackSession()
	session := newPlaybackSession(sa)
	i.session = session

	content := NewLabels(1)
	if id, ok := properties.LookupString("assetId", "asset_id"); ok {
		content.Set(labelContentID, id)
		session.cache.Set(labelContentID, id)
	}
	sa.SetMetadata(Metadata{Type: MetadataContent, Labels: content})
	sa.SetLabels(MapPlayback(properties, options))

	if adType, ok := properties.LookupString("adType", "ad_type"); ok {
		session.cache.Set(labelAdType, adType)
	}
	i.metricsEngine.RecordSessionStart()
}

func (i *Integration) trackPlayback(name string, properties, options *analytics.Properties) {
	sa := i.session.analytics
	pos := position(properties)

	switch name {
	case EventPlaybackPaused, EventPlaybackInterrupted:
		sa.NotifyPause(pos)
	case EventPlaybackBufferStarted:
		sa.StartFromPosition(pos)
		sa.NotifyBufferStart(pos)
	case EventPlaybackBufferCompleted:
		sa.StartFromPosition(pos)
		sa.NotifyBufferStop(pos)
	case EventPlaybackSeekStarted:
		sa.NotifySeekStart(pos)
	case EventPlaybackSeekCompleted, EventPlaybackResumed:
		sa.StartFromPosition(pos)
		sa.NotifyPlay(pos)
	}

	sa.SetLabels(MapPlayback(properties, options))
}

func (i *Integration) trackContent(name string, properties, options *analytics.Properties) {
	session := i.session
	sa := session.analytics
	pos := position(properties)

	switch name {
	case EventContentStarted:
		i.setContentMetadata(properties, options)
		sa.StartFromPosition(pos)
		sa.NotifyPlay(pos)
	case EventContentPlaying:
		// Coming back from an ad break: the asset must be switched back to the content.
		if _, ok := session.adType(); ok {
			i.setContentMetadata(properties, options)
			session.cache.Delete(labelAdType)
		}
		sa.StartFromPosition(pos)
		sa.NotifyPlay(pos)
	case EventContentCompleted:
		sa.NotifyEnd(pos)
	}
}

func (i *Integration) setContentMetadata(properties, options *analytics.Properties) {
	content := MapContent(properties, options)
	if id, ok := content.Get(labelContentID); ok {
		i.session.cache.Set(labelContentID, id)
	}
	i.session.analytics.SetMetadata(Metadata{Type: MetadataContent, Labels: content})
}

func (i *Integration) trackAd(name string, properties, options *analytics.Properties) {
	session := i.session
	sa := session.analytics
	pos := position(properties)

	switch name {
	case EventAdStarted:
		ad := MapAd(properties, options)
		if id, ok := session.contentID(); ok {
			ad.Set(labelContentID, id)
		}
		sa.SetMetadata(Metadata{Type: MetadataAdvertisement, Labels: ad})
		sa.StartFromPosition(pos)
		sa.NotifyPlay(pos)
		if adType, ok := ad.Get(labelAdType); ok {
			session.cache.Set(labelAdType, adType)
		}
	case EventAdPlaying:
		sa.StartFromPosition(pos)
		sa.NotifyPlay(pos)
	case EventAdCompleted:
		sa.NotifyEnd(pos)
	}
}
