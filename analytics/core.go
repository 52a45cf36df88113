package analytics

// Integration must be implemented by destination integrations. The host analytics SDK
// calls these synchronously, one at a time, from its dispatch queue. Implementations must
// not panic for any payload they receive.
type Integration interface {
	Track(*TrackPayload)
	Identify(*IdentifyPayload)
	Screen(*ScreenPayload)
	Shutdown()
}

// Context carries the message context the destination may read.
type Context struct {
	Traits *Properties
}

// TrackPayload is a "track" call: a named event with properties.
type TrackPayload struct {
	Event      string
	Properties *Properties
	// Integrations holds the per-destination options keyed by destination key.
	Integrations map[string]*Properties
	Context      Context
}

// IntegrationOptions returns the options the producer attached for destination key.
func (p *TrackPayload) IntegrationOptions(key string) *Properties {
	if p == nil || p.Integrations == nil {
		return nil
	}
	return p.Integrations[key]
}

// IdentifyPayload is an "identify" call: a user id with traits.
type IdentifyPayload struct {
	UserID      string
	AnonymousID string
	Traits      *Properties
	Context     Context
}

// ScreenPayload is a "screen" call: a named screen view with properties.
type ScreenPayload struct {
	Name       string
	Category   string
	Properties *Properties
	Context    Context
}

// MessageType enumerates the message types the replay tool understands.
type MessageType string

const (
	MessageTrack    MessageType = "track"
	MessageIdentify MessageType = "identify"
	MessageScreen   MessageType = "screen"
)

// Message is one decoded inbound message. Exactly one payload is set, matching Type.
type Message struct {
	Type     MessageType
	Track    *TrackPayload
	Identify *IdentifyPayload
	Screen   *ScreenPayload
}

// Dispatch routes a decoded message to the matching Integration entry point.
func Dispatch(integration Integration, msg Message) {
	switch msg.Type {
	case MessageTrack:
		integration.Track(msg.Track)
	case MessageIdentify:
		integration.Identify(msg.Identify)
	case MessageScreen:
		integration.Screen(msg.Screen)
	}
}
