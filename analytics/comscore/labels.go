package comscore

import (
	"bytes"
	"strings"

	"github.com/prebid/comscore-destination/util/jsonutil"
)

// Labels is an ordered set of comScore labels (flat string keys such as ns_st_ci).
// Insertion order is kept so the same input always produces the same sequence of labels.
type Labels struct {
	keys   []string
	values map[string]string
}

// NewLabels returns an empty label set with room for size labels.
func NewLabels(size int) *Labels {
	return &Labels{
		keys:   make([]string, 0, size),
		values: make(map[string]string, size),
	}
}

// LabelsOf builds a label set from alternating key/value pairs.
func LabelsOf(pairs ...string) *Labels {
	l := NewLabels(len(pairs) / 2)
	for i := 0; i+1 < len(pairs); i += 2 {
		l.Set(pairs[i], pairs[i+1])
	}
	return l
}

// Set stores value under key. Replacing an existing key keeps its position.
func (l *Labels) Set(key, value string) {
	if _, exists := l.values[key]; !exists {
		l.keys = append(l.keys, key)
	}
	l.values[key] = value
}

// Delete removes key, keeping the order of the remaining labels.
func (l *Labels) Delete(key string) {
	if l == nil {
		return
	}
	if _, exists := l.values[key]; !exists {
		return
	}
	delete(l.values, key)
	for i, k := range l.keys {
		if k == key {
			l.keys = append(l.keys[:i], l.keys[i+1:]...)
			break
		}
	}
}

func (l *Labels) Get(key string) (string, bool) {
	if l == nil {
		return "", false
	}
	v, ok := l.values[key]
	return v, ok
}

func (l *Labels) Len() int {
	if l == nil {
		return 0
	}
	return len(l.keys)
}

// Keys returns the label keys in insertion order.
func (l *Labels) Keys() []string {
	if l == nil {
		return nil
	}
	keys := make([]string, len(l.keys))
	copy(keys, l.keys)
	return keys
}

// Map returns the labels as a plain map, the shape the native SDK consumes.
func (l *Labels) Map() map[string]string {
	m := make(map[string]string, l.Len())
	if l == nil {
		return m
	}
	for k, v := range l.values {
		m[k] = v
	}
	return m
}

func (l *Labels) Clone() *Labels {
	c := NewLabels(l.Len())
	if l == nil {
		return c
	}
	for _, k := range l.keys {
		c.Set(k, l.values[k])
	}
	return c
}

// String renders the labels as {k=v, k=v}.
func (l *Labels) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range l.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(l.values[k])
	}
	b.WriteByte('}')
	return b.String()
}

// MarshalJSON writes the labels as a JSON object in insertion order.
func (l *Labels) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range l.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := jsonutil.Marshal(k)
		if err != nil {
			return nil, err
		}
		value, err := jsonutil.Marshal(l.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
