package lookup

import (
	"errors"
	"fmt"

	"salary-lab/internal/domain"
)

// ErrDuplicateSeason is returned when two factor rows share a season.
var ErrDuplicateSeason = errors.New("duplicate weighting factor season")

// FactorTable maps a season to its wOBA weighting factors.
// Lookup is season-exact: there is no fallback to a neighbouring season.
type FactorTable struct {
	bySeason map[int]domain.WeightingFactor
}

// NewFactorTable indexes factors by season.
// Returns ErrDuplicateSeason if two rows share a season.
func NewFactorTable(factors []domain.WeightingFactor) (*FactorTable, error) {
	m := make(map[int]domain.WeightingFactor, len(factors))
	for _, f := range factors {
		if _, exists := m[f.Season]; exists {
			return nil, fmt.Errorf("season %d: %w", f.Season, ErrDuplicateSeason)
		}
		m[f.Season] = f
	}
	return &FactorTable{bySeason: m}, nil
}

// Lookup returns the factors for season and whether they exist.
func (t *FactorTable) Lookup(season int) (domain.WeightingFactor, bool) {
	f, ok := t.bySeason[season]
	return f, ok
}

// Len returns the number of seasons covered.
func (t *FactorTable) Len() int {
	return len(t.bySeason)
}
