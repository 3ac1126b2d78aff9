package query

import (
	"net/url"
	"strings"
)

// Pair is a single decoded key/value occurrence.
type Pair struct {
	Key   string
	Value string
}

// Values is an ordered multi-map of decoded query parameters.
type Values struct {
	pairs []Pair
	index map[string][]int
}

// Parse decodes raw into Values. A leading '?' is ignored.
// Parse never fails; undecodable escapes are kept as written.
func Parse(raw string) *Values {
	raw = strings.TrimPrefix(raw, "?")
	v := &Values{index: make(map[string][]int)}
	if raw == "" {
		return v
	}

	for _, segment := range strings.Split(raw, "&") {
		if segment == "" {
			continue
		}
		key, value, _ := strings.Cut(segment, "=")
		v.add(unescape(key), unescape(value))
	}
	return v
}

// FromPairs builds Values from already-decoded pairs, keeping their order.
func FromPairs(pairs ...Pair) *Values {
	v := &Values{index: make(map[string][]int, len(pairs))}
	for _, p := range pairs {
		v.add(p.Key, p.Value)
	}
	return v
}

func (v *Values) add(key, value string) {
	v.index[key] = append(v.index[key], len(v.pairs))
	v.pairs = append(v.pairs, Pair{Key: key, Value: value})
}

// Has reports whether key occurs at least once.
func (v *Values) Has(key string) bool {
	_, ok := v.index[key]
	return ok
}

// Get returns the first value for key.
// It returns "" both for a missing key and for a key written without '='.
// Use Has to tell them apart.
func (v *Values) Get(key string) string {
	idx, ok := v.index[key]
	if !ok {
		return ""
	}
	return v.pairs[idx[0]].Value
}

// GetAll returns every value for key in the order supplied.
// The returned slice is a fresh copy; nil when key is missing.
func (v *Values) GetAll(key string) []string {
	idx, ok := v.index[key]
	if !ok {
		return nil
	}
	out := make([]string, len(idx))
	for i, n := range idx {
		out[i] = v.pairs[n].Value
	}
	return out
}

// Keys returns the distinct keys in order of first occurrence.
func (v *Values) Keys() []string {
	keys := make([]string, 0, len(v.index))
	seen := make(map[string]struct{}, len(v.index))
	for _, p := range v.pairs {
		if _, ok := seen[p.Key]; ok {
			continue
		}
		seen[p.Key] = struct{}{}
		keys = append(keys, p.Key)
	}
	return keys
}

// Pairs returns a copy of every occurrence in order.
func (v *Values) Pairs() []Pair {
	out := make([]Pair, len(v.pairs))
	copy(out, v.pairs)
	return out
}

// Len returns the number of key/value occurrences, counting repeats.
func (v *Values) Len() int {
	return len(v.pairs)
}

// Encode re-serializes the values in their original order.
// Spaces encode as '+', and a key written without '=' encodes as "key=".
func (v *Values) Encode() string {
	if len(v.pairs) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, p := range v.pairs {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}
	return sb.String()
}

// unescape decodes s like a form value: '+' becomes a space and each valid
// %XX sequence becomes its byte. A '%' not followed by two hex digits is kept
// literally, without affecting the escapes around it.
func unescape(s string) string {
	if !strings.ContainsAny(s, "%+") {
		return s
	}
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '+':
			buf = append(buf, ' ')
		case '%':
			if i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
				buf = append(buf, unhex(s[i+1])<<4|unhex(s[i+2]))
				i += 2
				continue
			}
			buf = append(buf, c)
		default:
			buf = append(buf, c)
		}
	}
	return string(buf)
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
