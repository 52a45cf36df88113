package analytics

import (
	"fmt"
	"strconv"

	"github.com/buger/jsonparser"
	"github.com/prebid/comscore-destination/errortypes"
)

// DecodeMessage decodes a Segment style JSON message. Property, trait and option order is
// taken from the document.
func DecodeMessage(data []byte) (Message, error) {
	msgType, err := jsonparser.GetString(data, "type")
	if err != nil {
		return Message{}, &errortypes.MalformedMessage{Message: fmt.Sprintf("message type: %v", err)}
	}

	context, err := decodeContext(data)
	if err != nil {
		return Message{}, err
	}

	switch MessageType(msgType) {
	case MessageTrack:
		event, err := jsonparser.GetString(data, "event")
		if err != nil {
			return Message{}, &errortypes.MalformedMessage{Message: fmt.Sprintf("track event name: %v", err)}
		}
		properties, err := decodeObject(data, "properties")
		if err != nil {
			return Message{}, err
		}
		integrations, err := decodeIntegrations(data)
		if err != nil {
			return Message{}, err
		}
		return Message{Type: MessageTrack, Track: &TrackPayload{
			Event:        event,
			Properties:   properties,
			Integrations: integrations,
			Context:      context,
		}}, nil

	case MessageIdentify:
		traits, err := decodeObject(data, "traits")
		if err != nil {
			return Message{}, err
		}
		return Message{Type: MessageIdentify, Identify: &IdentifyPayload{
			UserID:      optionalString(data, "userId"),
			AnonymousID: optionalString(data, "anonymousId"),
			Traits:      traits,
			Context:     context,
		}}, nil

	case MessageScreen:
		properties, err := decodeObject(data, "properties")
		if err != nil {
			return Message{}, err
		}
		return Message{Type: MessageScreen, Screen: &ScreenPayload{
			Name:       optionalString(data, "name"),
			Category:   optionalString(data, "category"),
			Properties: properties,
			Context:    context,
		}}, nil
	}

	return Message{}, &errortypes.MalformedMessage{Message: fmt.Sprintf("unsupported message type %q", msgType)}
}

// DecodeProperties decodes a JSON object into an ordered property bag.
func DecodeProperties(data []byte) (*Properties, error) {
	props := NewProperties()
	err := jsonparser.ObjectEach(data, func(key []byte, value []byte, dataType jsonparser.ValueType, offset int) error {
		// ObjectEach hands over keys already unescaped.
		k := string(key)
		v, err := decodeValue(value, dataType)
		if err != nil {
			return fmt.Errorf("%s: %v", k, err)
		}
		props.Set(k, v)
		return nil
	})
	if err != nil {
		return nil, &errortypes.MalformedMessage{Message: err.Error()}
	}
	return props, nil
}

func decodeValue(value []byte, dataType jsonparser.ValueType) (Value, error) {
	switch dataType {
	case jsonparser.String:
		s, err := jsonparser.ParseString(value)
		if err != nil {
			return Null(), err
		}
		return String(s), nil
	case jsonparser.Number:
		return decodeNumber(value)
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(value)
		if err != nil {
			return Null(), err
		}
		return Bool(b), nil
	case jsonparser.Object, jsonparser.Array:
		return String(string(value)), nil
	default:
		return Null(), nil
	}
}

// decodeNumber keeps the integer/float distinction of the document: "20" is an Int,
// "20.0" and "2e1" are Floats.
func decodeNumber(value []byte) (Value, error) {
	isFloat := false
	for _, c := range value {
		if c == '.' || c == 'e' || c == 'E' {
			isFloat = true
			break
		}
	}

	if !isFloat {
		if i, err := jsonparser.ParseInt(value); err == nil {
			return Int(i), nil
		}
	}

	f, err := strconv.ParseFloat(string(value), 64)
	if err != nil {
		return Null(), err
	}
	return Float(f), nil
}

func decodeObject(data []byte, keys ...string) (*Properties, error) {
	value, dataType, _, err := jsonparser.Get(data, keys...)
	if err == jsonparser.KeyPathNotFoundError || dataType == jsonparser.Null {
		return NewProperties(), nil
	}
	if err != nil {
		return nil, &errortypes.MalformedMessage{Message: fmt.Sprintf("%v: %v", keys, err)}
	}
	if dataType != jsonparser.Object {
		return nil, &errortypes.MalformedMessage{Message: fmt.Sprintf("%v must be an object", keys)}
	}
	return DecodeProperties(value)
}

func decodeContext(data []byte) (Context, error) {
	traits, err := decodeObject(data, "context", "traits")
	if err != nil {
		return Context{}, err
	}
	return Context{Traits: traits}, nil
}

// decodeIntegrations keeps only object valued entries; "All": true style switches carry no options.
func decodeIntegrations(data []byte) (map[string]*Properties, error) {
	value, dataType, _, err := jsonparser.Get(data, "integrations")
	if err == jsonparser.KeyPathNotFoundError {
		return nil, nil
	}
	if err != nil {
		return nil, &errortypes.MalformedMessage{Message: fmt.Sprintf("integrations: %v", err)}
	}
	if dataType != jsonparser.Object {
		return nil, nil
	}

	integrations := make(map[string]*Properties)
	err = jsonparser.ObjectEach(value, func(key []byte, option []byte, optionType jsonparser.ValueType, offset int) error {
		if optionType != jsonparser.Object {
			return nil
		}
		props, err := DecodeProperties(option)
		if err != nil {
			return err
		}
		integrations[string(key)] = props
		return nil
	})
	if err != nil {
		return nil, &errortypes.MalformedMessage{Message: fmt.Sprintf("integrations: %v", err)}
	}
	return integrations, nil
}

func optionalString(data []byte, key string) string {
	s, err := jsonparser.GetString(data, key)
	if err != nil {
		return ""
	}
	return s
}
