package plotlayout

import (
	"fmt"
	"math/rand"
	"reflect"

	"github.com/vdobler/plotlayout/data"
)

// maxDetectSamples bounds the number of values inspected by DetectAxisType.
const maxDetectSamples = 1000

// DetectAxisType infers the axis type from the values plotted on it.
//
// Any sequence valued element makes the axis multicategory. Otherwise at
// most 1000 values are sampled (evenly strided with a random start drawn
// from rng for longer series), deduplicated and classified as date, number
// or category. A single class wins outright. Without numbers the larger of
// date and category wins. Else date or category win only if they outnumber
// the numbers more than twice; the default is linear.
func DetectAxisType(values []interface{}, rng *rand.Rand) AxisType {
	for _, v := range values {
		if data.IsSequence(v) {
			return MultiCategory
		}
	}

	sample := values
	if n := len(values); n >= maxDetectSamples {
		stride := float64(n) / maxDetectSamples
		start := rng.Intn(n / maxDetectSamples)
		sample = make([]interface{}, 0, maxDetectSamples)
		for k := 0; ; k++ {
			i := int(float64(start) + float64(k)*stride)
			if i >= n {
				break
			}
			sample = append(sample, values[i])
		}
	}

	seen := make(map[interface{}]bool, len(sample))
	var dates, numbers, categories int
	for _, v := range sample {
		if v == nil {
			continue
		}
		key := v
		if !reflect.TypeOf(v).Comparable() {
			key = fmt.Sprint(v)
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		if _, ok := data.ParseDate(v); ok {
			dates++
		} else if _, ok := data.ToFloat(v); ok {
			numbers++
		} else {
			categories++
		}
	}

	switch {
	case dates > 0 && numbers == 0 && categories == 0:
		return Date
	case categories > 0 && numbers == 0 && dates == 0:
		return Category
	case numbers == 0 && dates+categories > 0:
		if dates > categories {
			return Date
		}
		return Category
	case dates > 2*numbers:
		return Date
	case categories > 2*numbers:
		return Category
	}
	return Linear
}
