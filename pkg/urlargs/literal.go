package urlargs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// Literal renders v as a compact JSON-like literal for tables and warnings.
// Non-finite numbers render as Infinity, -Infinity and NaN; values JSON can't
// encode fall back to their %v form.
func Literal(v any) string {
	if f, ok := v.(float64); ok {
		switch {
		case math.IsInf(f, 1):
			return "Infinity"
		case math.IsInf(f, -1):
			return "-Infinity"
		case math.IsNaN(f):
			return "NaN"
		}
	}
	b, err := marshalValue(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

// marshalValue encodes v as compact JSON without HTML escaping. Non-finite
// numbers encode as null; finite ones use exponent form below 1e-6 and from
// 1e21 up, like every float nested inside v.
func marshalValue(v any) ([]byte, error) {
	if f, ok := v.(float64); ok && (math.IsInf(f, 0) || math.IsNaN(f)) {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
