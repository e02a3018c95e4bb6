package regression

import (
	"math"

	"salary-lab/internal/metrics"
)

// DefaultMaxNullFraction is the null fraction at which a candidate is dropped.
const DefaultMaxNullFraction = 0.5

// Policy decides which candidates enter a fit.
// A candidate is included when its null fraction is below MaxNullFraction;
// its nulls are then replaced by the candidate mean.
type Policy struct {
	MaxNullFraction float64
}

// Exclusion records a rejected candidate.
type Exclusion struct {
	Name         string
	NullFraction float64
}

// Apply returns the included predictors with nulls imputed, and the exclusions.
// Candidate slices are not modified.
func (p Policy) Apply(candidates []Candidate) ([]Candidate, []Exclusion) {
	limit := p.MaxNullFraction
	if limit <= 0 {
		limit = DefaultMaxNullFraction
	}

	var included []Candidate
	var excluded []Exclusion
	for _, c := range candidates {
		frac := nullFraction(c.Values)
		if len(c.Values) == 0 || frac >= limit {
			excluded = append(excluded, Exclusion{Name: c.Name, NullFraction: frac})
			continue
		}
		included = append(included, Candidate{Name: c.Name, Values: impute(c.Values)})
	}
	return included, excluded
}

func nullFraction(values []float64) float64 {
	if len(values) == 0 {
		return 1
	}
	nulls := 0
	for _, v := range values {
		if math.IsNaN(v) {
			nulls++
		}
	}
	return float64(nulls) / float64(len(values))
}

func impute(values []float64) []float64 {
	mean := metrics.Mean(values)
	out := make([]float64, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			v = mean
		}
		out[i] = v
	}
	return out
}
