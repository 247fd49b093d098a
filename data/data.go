// Package data contains helpers to work with loosely typed figure
// specifications: nested maps as produced by encoding/json, the default
// merge used to overlay them on built-in defaults and the normalization of
// raw coordinate values into float64 slices.
package data

import (
	"math"
	"reflect"
)

// Map is one level of a nested figure specification.
type Map = map[string]interface{}

// Sub returns the nested map stored under key or nil.
func Sub(m Map, key string) Map {
	if m == nil {
		return nil
	}
	sub, _ := m[key].(map[string]interface{})
	return sub
}

// Has reports whether key is present in m.
func Has(m Map, key string) bool {
	_, ok := m[key]
	return ok
}

// String returns the string stored under key or def.
func String(m Map, key, def string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return def
}

// Bool returns the bool stored under key or def.
func Bool(m Map, key string, def bool) bool {
	if b, ok := m[key].(bool); ok {
		return b
	}
	return def
}

// Float returns the number stored under key or def.
func Float(m Map, key string, def float64) float64 {
	if v, ok := ToFloat(m[key]); ok {
		return v
	}
	return def
}

// Int returns the number stored under key as an int or def.
func Int(m Map, key string, def int) int {
	if v, ok := ToFloat(m[key]); ok {
		return int(math.Round(v))
	}
	return def
}

// List returns the slice stored under key. Any slice type is accepted.
func List(m Map, key string) ([]interface{}, bool) {
	v, ok := m[key]
	if !ok {
		return nil, false
	}
	return AsSlice(v)
}

// Maps returns the list of maps stored under key; non-map elements are
// skipped.
func Maps(m Map, key string) []Map {
	list, _ := List(m, key)
	var out []Map
	for _, e := range list {
		if sub, ok := e.(map[string]interface{}); ok {
			out = append(out, sub)
		}
	}
	return out
}

// AsSlice converts any slice or array into a []interface{}.
func AsSlice(v interface{}) ([]interface{}, bool) {
	switch s := v.(type) {
	case nil:
		return nil, false
	case []interface{}:
		return s, true
	case []float64:
		out := make([]interface{}, len(s))
		for i, x := range s {
			out[i] = x
		}
		return out, true
	case []string:
		out := make([]interface{}, len(s))
		for i, x := range s {
			out[i] = x
		}
		return out, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]interface{}, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// IsSequence reports whether v is a slice or array (but not a string).
func IsSequence(v interface{}) bool {
	if v == nil {
		return false
	}
	k := reflect.TypeOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}
