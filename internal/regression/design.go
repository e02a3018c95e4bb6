package regression

import (
	"fmt"

	"salary-lab/internal/domain"
	"salary-lab/internal/normalization"
	"salary-lab/internal/temporal"
)

// Candidate is one candidate predictor with a value per observation.
// NaN marks a missing value.
type Candidate struct {
	Name   string
	Values []float64
}

// Design is the target and candidate predictors of one regression.
type Design struct {
	Target     []float64
	Candidates []Candidate
}

// Len returns the number of observations.
func (d Design) Len() int {
	return len(d.Target)
}

// Candidate returns the named candidate.
func (d Design) Candidate(name string) (Candidate, bool) {
	for _, c := range d.Candidates {
		if c.Name == name {
			return c, true
		}
	}
	return Candidate{}, false
}

// NewDesign builds a salary design from joined rows: every raw column, then
// every per-opportunity rate column.
func NewDesign[R temporal.Performance](rows []temporal.Lagged[R], columns []normalization.Column[R], opportunity string) (Design, error) {
	records := temporal.Records(rows)
	rates, err := normalization.Normalize(records, func(r R) domain.StintKey { return r.Key() }, columns, opportunity)
	if err != nil {
		return Design{}, fmt.Errorf("normalize: %w", err)
	}

	d := Design{Target: make([]float64, len(rows))}
	for i, r := range rows {
		d.Target[i] = r.Salary
	}

	for _, c := range columns {
		values := make([]float64, len(records))
		for i, r := range records {
			values[i] = c.Value(r)
		}
		d.Candidates = append(d.Candidates, Candidate{Name: c.Name, Values: values})
	}

	for _, name := range normalization.RateColumns(columns, opportunity) {
		values := make([]float64, len(rates))
		for i, r := range rates {
			values[i] = r.Rates[name]
		}
		d.Candidates = append(d.Candidates, Candidate{Name: name, Values: values})
	}
	return d, nil
}

// BatterDesign builds the design for batters: raw batting stats and per-at-bat rates.
func BatterDesign(rows []temporal.Lagged[domain.BattingRecord]) (Design, error) {
	return NewDesign(rows, normalization.BattingColumns, normalization.BattingOpportunity)
}

// PitcherDesign builds the design for pitchers: raw pitching stats and per-game rates.
func PitcherDesign(rows []temporal.Lagged[domain.PitchingRecord]) (Design, error) {
	return NewDesign(rows, normalization.PitchingColumns, normalization.PitchingOpportunity)
}
