// Package normalization converts counting statistics into per-opportunity rates.
package normalization

import (
	"errors"
	"fmt"

	"salary-lab/internal/domain"
)

// ErrUnknownOpportunity is returned when the opportunity column is not in the column list.
var ErrUnknownOpportunity = errors.New("opportunity column not in column list")

// Normalize divides every column except the opportunity column by the
// opportunity value of the same row. When the opportunity is 0 every rate
// of the row is exactly 0. The result is aligned with rows.
func Normalize[R any](rows []R, key func(R) domain.StintKey, columns []Column[R], opportunity string) ([]domain.RateRecord, error) {
	var opp *Column[R]
	for i := range columns {
		if columns[i].Name == opportunity {
			opp = &columns[i]
			break
		}
	}
	if opp == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOpportunity, opportunity)
	}

	out := make([]domain.RateRecord, len(rows))
	for i, r := range rows {
		denom := opp.Value(r)
		rates := make(map[string]float64, len(columns)-1)
		for _, c := range columns {
			if c.Name == opportunity {
				continue
			}
			if denom == 0 {
				rates[RateName(c.Name)] = 0
				continue
			}
			rates[RateName(c.Name)] = c.Value(r) / denom
		}
		out[i] = domain.RateRecord{Key: key(r), Opportunity: denom, Rates: rates}
	}
	return out, nil
}

// RateColumns returns the rate column names produced for columns, in column order.
func RateColumns[R any](columns []Column[R], opportunity string) []string {
	names := make([]string, 0, len(columns))
	for _, c := range columns {
		if c.Name == opportunity {
			continue
		}
		names = append(names, RateName(c.Name))
	}
	return names
}

// NormalizeBatting converts batting lines into per-at-bat rates.
func NormalizeBatting(rows []domain.BattingRecord) ([]domain.RateRecord, error) {
	return Normalize(rows, domain.BattingRecord.Key, BattingColumns, BattingOpportunity)
}

// NormalizePitching converts pitching lines into per-game rates.
func NormalizePitching(rows []domain.PitchingRecord) ([]domain.RateRecord, error) {
	return Normalize(rows, domain.PitchingRecord.Key, PitchingColumns, PitchingOpportunity)
}
