package metrics

import (
	"math"
	"sort"

	"salary-lab/internal/domain"
)

// Describe summarizes values the way pandas describe() does.
// NaN values are skipped. An empty input yields Count 0 and NaN statistics.
func Describe(values []float64) domain.Summary {
	clean := dropNaN(values)
	n := len(clean)
	if n == 0 {
		nan := math.NaN()
		return domain.Summary{Mean: nan, Std: nan, Min: nan, P25: nan, Median: nan, P75: nan, Max: nan}
	}

	sorted := make([]float64, n)
	copy(sorted, clean)
	sort.Float64s(sorted)

	mean := computeMean(clean)
	return domain.Summary{
		Count:  n,
		Mean:   mean,
		Std:    computeStddev(clean, mean),
		Min:    sorted[0],
		P25:    computePercentile(sorted, 0.25),
		Median: computePercentile(sorted, 0.50),
		P75:    computePercentile(sorted, 0.75),
		Max:    sorted[n-1],
	}
}

// Mean returns the arithmetic mean of the non-NaN values, or NaN if there are none.
func Mean(values []float64) float64 {
	clean := dropNaN(values)
	if len(clean) == 0 {
		return math.NaN()
	}
	return computeMean(clean)
}

func dropNaN(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// computeMean calculates arithmetic mean.
func computeMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// computeStddev calculates sample standard deviation (n-1 denominator).
func computeStddev(values []float64, mean float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	sumSq := 0.0
	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(n-1))
}

// computePercentile uses linear interpolation.
// sorted must be pre-sorted ASC.
// p is percentile (0.25 = 25th percentile).
func computePercentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}

	idx := p * float64(n-1)
	lower := int(idx)
	upper := lower + 1
	if upper >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower])
}
