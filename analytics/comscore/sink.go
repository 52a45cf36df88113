package comscore

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/prebid/comscore-destination/logger"
	"github.com/xorcare/pointer"
)

// PartnerID identifies the analytics SDK integration towards comScore.
const PartnerID = "24186693"

// Sink is the process wide surface of the comScore native SDK.
type Sink interface {
	Start(ctx context.Context, partnerID string, publisher PublisherConfiguration)
	CreateStreamingAnalytics() StreamingAnalytics
	SetPersistentLabels(labels *Labels)
	NotifyViewEvent(labels *Labels)
	NotifyHiddenEvent(labels *Labels)
	// Shutdown flushes whatever the sink still buffers.
	Shutdown()
}

// StreamingAnalytics is one streaming tag of the native SDK. Positions are playhead offsets
// taken from the event that triggered the call.
type StreamingAnalytics interface {
	CreatePlaybackSession()
	SetLabels(labels *Labels)
	SetMetadata(metadata Metadata)
	StartFromPosition(position int64)
	NotifyPlay(position int64)
	NotifyPause(position int64)
	NotifyBufferStart(position int64)
	NotifyBufferStop(position int64)
	NotifySeekStart(position int64)
	NotifyEnd(position int64)
}

// MetadataType tells what a metadata asset describes.
type MetadataType string

const (
	MetadataContent       MetadataType = "content"
	MetadataAdvertisement MetadataType = "advertisement"
)

// Metadata describes the asset currently playing.
type Metadata struct {
	Type   MetadataType `json:"type"`
	Labels *Labels      `json:"labels"`
}

// Methods of the native SDK, as written in Call records.
const (
	MethodStart                    = "start"
	MethodCreateStreamingAnalytics = "createStreamingAnalytics"
	MethodSetPersistentLabels      = "setPersistentLabels"
	MethodNotifyViewEvent          = "notifyViewEvent"
	MethodNotifyHiddenEvent        = "notifyHiddenEvent"
	MethodCreatePlaybackSession    = "createPlaybackSession"
	MethodSetLabels                = "setLabels"
	MethodSetMetadata              = "setMetadata"
	MethodStartFromPosition        = "startFromPosition"
	MethodNotifyPlay               = "notifyPlay"
	MethodNotifyPause              = "notifyPause"
	MethodNotifyBufferStart        = "notifyBufferStart"
	MethodNotifyBufferStop         = "notifyBufferStop"
	MethodNotifySeekStart          = "notifySeekStart"
	MethodNotifyEnd                = "notifyEnd"
)

// Call is one native SDK call. Session is the 1-based streaming tag the call was made on, zero
// for process wide calls.
type Call struct {
	Method    string                  `json:"method"`
	Session   int                     `json:"session,omitempty"`
	PartnerID string                  `json:"partnerId,omitempty"`
	Publisher *PublisherConfiguration `json:"publisher,omitempty"`
	Labels    *Labels                 `json:"labels,omitempty"`
	Metadata  *Metadata               `json:"metadata,omitempty"`
	Position  *int64                  `json:"position,omitempty"`
}

// String renders the call the way the native SDK method would be invoked, e.g.
// "streamingAnalytics[1].notifyPause(5)".
func (c Call) String() string {
	var args []string
	if c.PartnerID != "" {
		args = append(args, c.PartnerID)
	}
	if c.Publisher != nil {
		args = append(args, c.Publisher.String())
	}
	if c.Labels != nil {
		args = append(args, c.Labels.String())
	}
	if c.Metadata != nil {
		args = append(args, string(c.Metadata.Type)+c.Metadata.Labels.String())
	}
	if c.Position != nil {
		args = append(args, strconv.FormatInt(*c.Position, 10))
	}

	var b strings.Builder
	if c.Session > 0 {
		fmt.Fprintf(&b, "streamingAnalytics[%d].", c.Session)
	}
	b.WriteString(c.Method)
	b.WriteByte('(')
	b.WriteString(strings.Join(args, ", "))
	b.WriteByte(')')
	return b.String()
}

// CallRecorder receives every call made on a call sink.
type CallRecorder func(call Call)

// NewCallSink returns a Sink that turns every SDK call into a Call and hands it to record.
// It stands in for the native SDK, which is not available to Go programs.
func NewCallSink(record CallRecorder) Sink {
	return &callSink{record: record}
}

// NewLogSink returns a call sink writing every call to l at debug level.
func NewLogSink(l logger.Logger) Sink {
	return NewCallSink(func(call Call) {
		l.Debugf("%s", call)
	})
}

type callSink struct {
	record   CallRecorder
	sessions int
}

func (s *callSink) Start(ctx context.Context, partnerID string, publisher PublisherConfiguration) {
	s.record(Call{Method: MethodStart, PartnerID: partnerID, Publisher: &publisher})
}

func (s *callSink) CreateStreamingAnalytics() StreamingAnalytics {
	s.sessions++
	s.record(Call{Method: MethodCreateStreamingAnalytics, Session: s.sessions})
	return &callStreamingAnalytics{record: s.record, session: s.sessions}
}

func (s *callSink) SetPersistentLabels(labels *Labels) {
	s.record(Call{Method: MethodSetPersistentLabels, Labels: labels.Clone()})
}

func (s *callSink) NotifyViewEvent(labels *Labels) {
	s.record(Call{Method: MethodNotifyViewEvent, Labels: labels.Clone()})
}

func (s *callSink) NotifyHiddenEvent(labels *Labels) {
	s.record(Call{Method: MethodNotifyHiddenEvent, Labels: labels.Clone()})
}

func (s *callSink) Shutdown() {}

type callStreamingAnalytics struct {
	record  CallRecorder
	session int
}

func (a *callStreamingAnalytics) CreatePlaybackSession() {
	a.call(MethodCreatePlaybackSession)
}

func (a *callStreamingAnalytics) SetLabels(labels *Labels) {
	a.record(Call{Method: MethodSetLabels, Session: a.session, Labels: labels.Clone()})
}

func (a *callStreamingAnalytics) SetMetadata(metadata Metadata) {
	metadata.Labels = metadata.Labels.Clone()
	a.record(Call{Method: MethodSetMetadata, Session: a.session, Metadata: &metadata})
}

func (a *callStreamingAnalytics) StartFromPosition(position int64) {
	a.record(Call{Method: MethodStartFromPosition, Session: a.session, Position: pointer.Int64(position)})
}

func (a *callStreamingAnalytics) NotifyPlay(position int64) {
	a.notify(MethodNotifyPlay, position)
}

func (a *callStreamingAnalytics) NotifyPause(position int64) {
	a.notify(MethodNotifyPause, position)
}

func (a *callStreamingAnalytics) NotifyBufferStart(position int64) {
	a.notify(MethodNotifyBufferStart, position)
}

func (a *callStreamingAnalytics) NotifyBufferStop(position int64) {
	a.notify(MethodNotifyBufferStop, position)
}

func (a *callStreamingAnalytics) NotifySeekStart(position int64) {
	a.notify(MethodNotifySeekStart, position)
}

func (a *callStreamingAnalytics) NotifyEnd(position int64) {
	a.notify(MethodNotifyEnd, position)
}

func (a *callStreamingAnalytics) call(method string) {
	a.record(Call{Method: method, Session: a.session})
}

func (a *callStreamingAnalytics) notify(method string, position int64) {
	a.record(Call{Method: method, Session: a.session, Position: pointer.Int64(position)})
}
