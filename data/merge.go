package data

import (
	"fmt"
	"reflect"

	"github.com/tiendc/go-deepcopy"
)

// UpdateDict returns a copy of d recursively updated with the values from u.
// Nested maps are merged key by key, every other value of u (scalars,
// slices) replaces the value in d wholesale. Neither d nor u is modified
// and the result shares no mutable state with them.
func UpdateDict(d, u Map) (Map, error) {
	out := make(Map, len(d)+len(u))
	for k, v := range d {
		c, err := copyValue(v)
		if err != nil {
			return nil, fmt.Errorf("data: copy %q: %w", k, err)
		}
		out[k] = c
	}
	for k, v := range u {
		if um, ok := v.(map[string]interface{}); ok {
			dm, _ := out[k].(map[string]interface{})
			merged, err := UpdateDict(dm, um)
			if err != nil {
				return nil, fmt.Errorf("data: merge %q: %w", k, err)
			}
			out[k] = merged
			continue
		}
		c, err := copyValue(v)
		if err != nil {
			return nil, fmt.Errorf("data: copy %q: %w", k, err)
		}
		out[k] = c
	}
	return out, nil
}

// MustUpdateDict is like UpdateDict but panics on error. It is intended
// for merging the package's literal default tables.
func MustUpdateDict(d, u Map) Map {
	m, err := UpdateDict(d, u)
	if err != nil {
		panic(err)
	}
	return m
}

// Clone returns a deep copy of m.
func Clone(m Map) (Map, error) {
	return UpdateDict(nil, m)
}

func copyValue(v interface{}) (interface{}, error) {
	switch x := v.(type) {
	case nil, bool, string, float64, float32, int, int64, int32, uint, uint64:
		return x, nil
	case map[string]interface{}:
		return UpdateDict(nil, x)
	}
	if !IsSequence(v) {
		// Opaque values (time.Time, user structs) are treated as immutable.
		return v, nil
	}
	dst := reflect.New(reflect.TypeOf(v))
	if err := deepcopy.Copy(dst.Interface(), v); err != nil {
		return nil, err
	}
	return dst.Elem().Interface(), nil
}
