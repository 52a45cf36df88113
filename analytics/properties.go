package analytics

import (
	"sort"
)

// Properties is an insertion ordered property bag. It backs event properties, traits and
// per-destination options. A nil *Properties behaves as an empty bag.
type Properties struct {
	keys   []string
	values map[string]Value
}

// NewProperties builds a bag from alternating key/value arguments. Values go through ValueOf.
// A trailing key without a value is stored as null.
func NewProperties(keyValues ...interface{}) *Properties {
	p := &Properties{values: make(map[string]Value, len(keyValues)/2)}
	for i := 0; i < len(keyValues); i += 2 {
		key, ok := keyValues[i].(string)
		if !ok {
			continue
		}
		var value interface{}
		if i+1 < len(keyValues) {
			value = keyValues[i+1]
		}
		p.Set(key, ValueOf(value))
	}
	return p
}

// PropertiesFromMap builds a bag from a Go map. Map iteration order is random, so keys are
// inserted in sorted order.
func PropertiesFromMap(m map[string]interface{}) *Properties {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	p := &Properties{values: make(map[string]Value, len(m))}
	for _, k := range keys {
		p.Set(k, ValueOf(m[k]))
	}
	return p
}

// Set stores value under key. Replacing an existing key keeps its original position.
func (p *Properties) Set(key string, value Value) *Properties {
	if p.values == nil {
		p.values = make(map[string]Value)
	}
	if _, exists := p.values[key]; !exists {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
	return p
}

// Get returns the value stored under key. Null values count as absent.
func (p *Properties) Get(key string) (Value, bool) {
	if p == nil {
		return Null(), false
	}
	v, ok := p.values[key]
	if !ok || v.IsNull() {
		return Null(), false
	}
	return v, true
}

// Lookup returns the first non-null value among keys, in the order given.
func (p *Properties) Lookup(keys ...string) (Value, bool) {
	for _, key := range keys {
		if v, ok := p.Get(key); ok {
			return v, true
		}
	}
	return Null(), false
}

// LookupString returns the string form of the first non-null value among keys.
func (p *Properties) LookupString(keys ...string) (string, bool) {
	v, ok := p.Lookup(keys...)
	if !ok {
		return "", false
	}
	return v.String(), true
}

// LookupInt returns the first value among keys that converts to an integer, or def.
func (p *Properties) LookupInt(def int64, keys ...string) int64 {
	for _, key := range keys {
		if v, ok := p.Get(key); ok {
			if i, ok := v.Int64(); ok {
				return i
			}
		}
	}
	return def
}

// LookupFloat returns the first value among keys that converts to a float, or def.
func (p *Properties) LookupFloat(def float64, keys ...string) float64 {
	for _, key := range keys {
		if v, ok := p.Get(key); ok {
			if f, ok := v.Float64(); ok {
				return f
			}
		}
	}
	return def
}

// LookupBool returns the first value among keys that converts to a bool, or def.
func (p *Properties) LookupBool(def bool, keys ...string) bool {
	for _, key := range keys {
		if v, ok := p.Get(key); ok {
			if b, ok := v.Boolean(); ok {
				return b
			}
		}
	}
	return def
}

func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

func (p *Properties) IsEmpty() bool {
	return p.Len() == 0
}

// Keys returns the keys in insertion order.
func (p *Properties) Keys() []string {
	if p == nil {
		return nil
	}
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

// Each calls fn for every entry in insertion order, null values included.
func (p *Properties) Each(fn func(key string, value Value)) {
	if p == nil {
		return
	}
	for _, k := range p.keys {
		fn(k, p.values[k])
	}
}

// Clone returns a copy that can be modified without affecting p.
func (p *Properties) Clone() *Properties {
	c := &Properties{values: make(map[string]Value, p.Len())}
	p.Each(func(k string, v Value) {
		c.Set(k, v)
	})
	return c
}

// Map returns the bag as a plain Go map.
func (p *Properties) Map() map[string]interface{} {
	m := make(map[string]interface{}, p.Len())
	p.Each(func(k string, v Value) {
		m[k] = v.Interface()
	})
	return m
}
