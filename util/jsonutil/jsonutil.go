package jsonutil

import (
	"bytes"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var jsonConfig = jsoniter.ConfigCompatibleWithStandardLibrary

// Unmarshal unmarshals a byte slice into the specified data structure.
func Unmarshal(data []byte, v interface{}) error {
	return jsonConfig.Unmarshal(data, v)
}

// Marshal marshals a data structure into a byte slice. Map keys are sorted, like
// encoding/json does.
func Marshal(v interface{}) ([]byte, error) {
	return jsonConfig.Marshal(v)
}

// MarshalLine marshals v and appends a newline, the record format of newline delimited files.
func MarshalLine(v interface{}) ([]byte, error) {
	b, err := jsonConfig.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// NewLineDecoder returns a decoder reading a stream of JSON documents from r.
func NewLineDecoder(r io.Reader) *jsoniter.Decoder {
	return jsonConfig.NewDecoder(r)
}

// Compact removes insignificant whitespace, so JSON from fixtures and JSON produced by
// Marshal can be compared byte for byte.
func Compact(data []byte) ([]byte, error) {
	var v interface{}
	if err := jsonConfig.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := jsonConfig.NewEncoder(&buf)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
