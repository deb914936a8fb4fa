// Package raw inspects untrusted decoded JSON values field by field.
//
// Values are what encoding/json produces when decoding into an interface:
// map[string]any, []any, string, float64, bool and nil. Integer kinds are
// accepted too so typed entities can be re-checked without a JSON round trip.
package raw

import (
	"encoding/json"
	"math"
	"strings"
)

// Object returns v as a JSON object.
func Object(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok && m != nil
}

// String returns the trimmed string at key, or "" when the field is missing,
// not a string or blank.
func String(m map[string]any, key string) string {
	s, ok := m[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// ID returns the string at key when it is a non-empty string. Identifiers are
// kept verbatim, surrounding spaces included.
func ID(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// Number returns the finite number at key.
func Number(m map[string]any, key string) (float64, bool) {
	return Finite(m[key])
}

// Finite reports whether v is a finite number and returns it as float64.
func Finite(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Millis converts a finite number to epoch milliseconds. Values outside the
// int64 range are rejected.
func Millis(m map[string]any, key string) (int64, bool) {
	f, ok := Number(m, key)
	if !ok || f >= math.MaxInt64 || f <= math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

// List returns the array at key, or nil when the field is not an array.
func List(m map[string]any, key string) []any {
	l, _ := m[key].([]any)
	return l
}

// Bool returns the boolean at key, false when absent or of another type.
func Bool(m map[string]any, key string) bool {
	b, _ := m[key].(bool)
	return b
}

// Decode parses data into a generic value. Callers treat an error as "no data".
func Decode(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// Truthy mirrors the loose presence check used on imported files: nil, false,
// 0, "" and NaN are absent, everything else (including empty arrays) present.
func Truthy(v any) bool {
	switch n := v.(type) {
	case nil:
		return false
	case bool:
		return n
	case string:
		return n != ""
	case float64:
		return n != 0 && !math.IsNaN(n)
	default:
		return true
	}
}
