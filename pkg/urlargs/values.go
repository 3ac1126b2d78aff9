package urlargs

import (
	"bytes"
	"encoding/json"
	"time"
)

// Source indicates where a resolved value came from.
type Source string

// Value source constants.
const (
	// SourceDefault indicates the field's default was used, either because
	// the key was missing or because its value was invalid.
	SourceDefault Source = "default"

	// SourceQuery indicates the value was parsed from the query.
	SourceQuery Source = "query"
)

// Values holds one resolved value per schema field, in schema order.
// Numbers are float64, booleans bool, repeated keys []string, strings string,
// Null and Absent fields nil until supplied, and transforms whatever their
// function returned.
//
// Accessor methods return defaultVal when the key is missing or holds a
// different type, so callers can read values without type assertions.
type Values struct {
	names   []string
	data    map[string]any
	sources map[string]Source
}

func newValues(capacity int) Values {
	return Values{
		names:   make([]string, 0, capacity),
		data:    make(map[string]any, capacity),
		sources: make(map[string]Source, capacity),
	}
}

func (v *Values) set(name string, value any, source Source) {
	v.names = append(v.names, name)
	v.data[name] = value
	v.sources[name] = source
}

// String returns the string value for key, or defaultVal if missing or not a string.
func (v Values) String(key, defaultVal string) string {
	if s, ok := v.data[key].(string); ok {
		return s
	}
	return defaultVal
}

// Float returns the numeric value for key, or defaultVal if missing or not a number.
func (v Values) Float(key string, defaultVal float64) float64 {
	if f, ok := v.data[key].(float64); ok {
		return f
	}
	return defaultVal
}

// Int returns the numeric value for key as an int, or defaultVal if missing,
// not a number, or not a whole number.
func (v Values) Int(key string, defaultVal int) int {
	f, ok := v.data[key].(float64)
	if !ok {
		return defaultVal
	}
	// Only convert if there's no fractional part
	if f == float64(int(f)) {
		return int(f)
	}
	return defaultVal
}

// Bool returns the boolean value for key, or defaultVal if missing or not a bool.
func (v Values) Bool(key string, defaultVal bool) bool {
	if b, ok := v.data[key].(bool); ok {
		return b
	}
	return defaultVal
}

// Duration returns the duration value for key, or defaultVal if missing or invalid.
//
// Accepts:
//   - time.Duration: used directly (the duration transform)
//   - string: parsed with time.ParseDuration
//   - float64: interpreted as seconds
func (v Values) Duration(key string, defaultVal time.Duration) time.Duration {
	switch val := v.data[key].(type) {
	case time.Duration:
		return val
	case string:
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	case float64:
		return time.Duration(val * float64(time.Second))
	}
	return defaultVal
}

// StringSlice returns a copy of the string slice for key, or defaultVal if
// missing or not a []string.
func (v Values) StringSlice(key string, defaultVal []string) []string {
	s, ok := v.data[key].([]string)
	if !ok {
		return defaultVal
	}
	return append([]string{}, s...)
}

// Any returns the raw value for key, or defaultVal if missing.
// A field resolved to nil returns nil, not defaultVal.
func (v Values) Any(key string, defaultVal any) any {
	val, ok := v.data[key]
	if !ok {
		return defaultVal
	}
	return val
}

// Has returns true if key is a schema field.
func (v Values) Has(key string) bool {
	_, ok := v.data[key]
	return ok
}

// Source returns where the value for key came from, or "" for an unknown key.
func (v Values) Source(key string) Source {
	return v.sources[key]
}

// Keys returns the field names in schema order.
func (v Values) Keys() []string {
	return append([]string{}, v.names...)
}

// Len returns the number of fields.
func (v Values) Len() int {
	return len(v.names)
}

// Map returns a shallow copy of the values as a map.
func (v Values) Map() map[string]any {
	out := make(map[string]any, len(v.data))
	for k, val := range v.data {
		out[k] = val
	}
	return out
}

// MarshalJSON encodes the values as a JSON object in schema order.
func (v Values) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range v.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := marshalValue(v.data[name])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Get returns the value for key as T. The second result is false when the key
// is missing or holds another type.
//
// Example:
//
//	origin, ok := urlargs.Get[Point](args.Values(), "origin")
func Get[T any](v Values, key string) (T, bool) {
	val, ok := v.data[key].(T)
	return val, ok
}
