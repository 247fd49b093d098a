package data

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/aclements/go-moremath/stats"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ToFloat converts the numeric value v to a float64.
// Strings are never numbers, even if they look like one.
func ToFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	}
	return 0, false
}

// dateLayouts are the ISO 8601 forms accepted as dates, from the most
// to the least specific.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02T15",
	"2006-01-02 15",
	"2006-01-02",
	"2006-01",
	"2006",
}

// ParseDate interprets v as a point in time. Accepted are time.Time values
// and ISO 8601 date strings; times without zone are taken as UTC.
func ParseDate(v interface{}) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		return x, true
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

// Timestamp returns t as seconds since the Unix epoch.
func Timestamp(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}

// Floats converts values to float64. Values which are not numbers become NaN.
func Floats(values []interface{}) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		if x, ok := ToFloat(v); ok {
			out[i] = x
		} else {
			out[i] = math.NaN()
		}
	}
	return out
}

// Timestamps converts date values to Unix seconds. Numbers are taken as
// timestamps already; everything else becomes NaN.
func Timestamps(values []interface{}) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		if t, ok := ParseDate(v); ok {
			out[i] = Timestamp(t)
		} else if x, ok := ToFloat(v); ok {
			out[i] = x
		} else {
			out[i] = math.NaN()
		}
	}
	return out
}

// Category orders.
const (
	OrderTrace      = "trace"
	OrderAscending  = "category ascending"
	OrderDescending = "category descending"
)

// Categories maps each value to the ordinal index of its category.
// The known categories are extended by the ones first seen in values.
// OrderTrace keeps that order, the other orders sort all categories with
// the root collation.
// Nil values map to NaN.
func Categories(known []string, values []interface{}, order string) ([]string, []float64, error) {
	cats := append([]string(nil), known...)
	seen := make(map[string]bool, len(cats))
	for _, c := range cats {
		seen[c] = true
	}
	for _, v := range values {
		if v == nil {
			continue
		}
		s := categoryName(v)
		if !seen[s] {
			seen[s] = true
			cats = append(cats, s)
		}
	}

	switch order {
	case "", OrderTrace:
	case OrderAscending, OrderDescending:
		col := collate.New(language.Und, collate.Numeric)
		col.SortStrings(cats)
		if order == OrderDescending {
			for i, j := 0, len(cats)-1; i < j; i, j = i+1, j-1 {
				cats[i], cats[j] = cats[j], cats[i]
			}
		}
	default:
		return nil, nil, fmt.Errorf("data: unknown category order %q", order)
	}

	index := make(map[string]int, len(cats))
	for i, c := range cats {
		index[c] = i
	}
	out := make([]float64, len(values))
	for i, v := range values {
		if v == nil {
			out[i] = math.NaN()
			continue
		}
		out[i] = float64(index[categoryName(v)])
	}
	return cats, out, nil
}

func categoryName(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Extent returns the smallest and largest non-NaN value in xs.
// If there is no such value ok is false.
func Extent(xs []float64) (min, max float64, ok bool) {
	finite := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			finite = append(finite, x)
		}
	}
	if len(finite) == 0 {
		return math.NaN(), math.NaN(), false
	}
	min, max = stats.Bounds(finite)
	return min, max, true
}
