package report

import (
	"math"
	"sort"

	"suburbscope/internal/pkg/convert"
)

// MaxNumericPairs caps how many ranked pairs ExtractTopNumeric returns.
const MaxNumericPairs = 12

// NumericPair is a labelled numeric field pulled out of a flattened record,
// used to drive the bar chart.
type NumericPair struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ExtractTopNumeric flattens v with the default depth limit and returns the
// numeric-coercible fields ranked by descending absolute value, at most
// MaxNumericPairs of them. Non-finite results are rejected, and so are exact
// zeros: a zero-length bar carries no visual weight in a magnitude chart, so
// zero values are excluded by policy rather than filtered as a boundary case.
// Ties keep traversal order (the sort is stable).
func ExtractTopNumeric(v any) []NumericPair {
	rec := FlattenDefault(v)
	pairs := make([]NumericPair, 0, rec.Len())
	for _, key := range rec.Keys() {
		raw, _ := rec.Get(key)
		f, ok := convert.Float64(raw)
		if !ok || math.IsNaN(f) || math.IsInf(f, 0) || f == 0 {
			continue
		}
		pairs = append(pairs, NumericPair{Label: key, Value: f})
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return math.Abs(pairs[i].Value) > math.Abs(pairs[j].Value)
	})
	if len(pairs) > MaxNumericPairs {
		pairs = pairs[:MaxNumericPairs]
	}
	return pairs
}
