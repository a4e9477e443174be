package analytics

import (
	"fmt"
	"math"
	"sort"
)

// Summary mirrors the familiar describe() table for a numeric column.
// Quartiles use linear interpolation; Std is the sample standard deviation
// and is NaN for fewer than two rows.
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// Describe computes summary statistics for a float column over the view.
func Describe(v View, col string) (Summary, error) {
	values := v.NumericValues(col)
	if values == nil {
		return Summary{}, fmt.Errorf("column %q is not numeric", col)
	}

	n := len(values)
	if n == 0 {
		return Summary{Std: math.NaN(), Mean: math.NaN(), Min: math.NaN(),
			Q1: math.NaN(), Median: math.NaN(), Q3: math.NaN(), Max: math.NaN()}, nil
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	mean := Mean(values)
	return Summary{
		Count:  n,
		Mean:   mean,
		Std:    sampleStd(values, mean),
		Min:    sorted[0],
		Q1:     percentile(sorted, 0.25),
		Median: percentile(sorted, 0.50),
		Q3:     percentile(sorted, 0.75),
		Max:    sorted[n-1],
	}, nil
}

// Mean returns the arithmetic mean, NaN for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func sampleStd(values []float64, mean float64) float64 {
	n := len(values)
	if n < 2 {
		return math.NaN()
	}
	var ss float64
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(n-1))
}

// percentile interpolates linearly on an already sorted slice.
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	pos := p * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// ValueCount is one row of a frequency table.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// ValueCounts tabulates value frequencies for a column over the view,
// ordered by descending count with ties kept in first-encounter order.
func ValueCounts(v View, col string) []ValueCount {
	counts := make(map[string]int)
	order := make([]string, 0)

	n := v.Len()
	for i := 0; i < n; i++ {
		val := v.Label(col, i)
		if _, seen := counts[val]; !seen {
			order = append(order, val)
		}
		counts[val]++
	}

	out := make([]ValueCount, 0, len(order))
	for _, val := range order {
		out = append(out, ValueCount{Value: val, Count: counts[val]})
	}
	// Stable sort preserves encounter order among equal counts.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// TopN returns at most n most frequent values of a column.
func TopN(v View, col string, n int) []ValueCount {
	counts := ValueCounts(v, col)
	if n > 0 && len(counts) > n {
		counts = counts[:n]
	}
	return counts
}
