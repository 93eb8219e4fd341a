// Package stats provides the descriptive statistics behind the dashboard:
// median imputation values, describe-style summaries and histograms.
package stats

import (
	"math"
	"sort"
)

// Mean computes the average of a slice.
func Mean(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range x {
		sum += v
	}
	return sum / float64(n)
}

// Std computes the sample standard deviation (n-1 denominator).
func Std(x []float64) float64 {
	n := len(x)
	if n < 2 {
		return 0
	}
	mean := Mean(x)
	sum := 0.0
	for _, v := range x {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(n-1))
}

// Median returns the middle element of the sorted values, or the average of
// the two middle elements for even counts (allocates a copy).
func Median(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	cp := make([]float64, n)
	copy(cp, x)
	sort.Float64s(cp)
	mid := n >> 1
	if n&1 == 0 {
		return (cp[mid-1] + cp[mid]) * 0.5
	}
	return cp[mid]
}

// Quantile returns the q-quantile (0 <= q <= 1) with linear interpolation
// between the two nearest sorted values.
func Quantile(x []float64, q float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	cp := make([]float64, n)
	copy(cp, x)
	sort.Float64s(cp)
	if q <= 0 {
		return cp[0]
	}
	if q >= 1 {
		return cp[n-1]
	}
	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	frac := pos - float64(lo)
	if lo+1 >= n {
		return cp[lo]
	}
	return cp[lo] + frac*(cp[lo+1]-cp[lo])
}

// Summary holds the describe-style statistics of one numeric column.
type Summary struct {
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// Describe computes count, mean, std, min, quartiles and max for a column.
// An empty slice yields the zero Summary.
func Describe(x []float64) Summary {
	n := len(x)
	if n == 0 {
		return Summary{}
	}
	min, max := x[0], x[0]
	for _, v := range x[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return Summary{
		Count:  n,
		Mean:   Mean(x),
		Std:    Std(x),
		Min:    min,
		Q1:     Quantile(x, 0.25),
		Median: Quantile(x, 0.5),
		Q3:     Quantile(x, 0.75),
		Max:    max,
	}
}

// Counts tallies occurrences per label value.
func Counts(labels []int) map[int]int {
	counts := make(map[int]int)
	for _, l := range labels {
		counts[l]++
	}
	return counts
}
