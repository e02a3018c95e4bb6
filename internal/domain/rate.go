package domain

// RateRecord holds per-opportunity rates derived from one performance row.
// Rates are keyed by rate column name ("<column>r").
type RateRecord struct {
	Key         StintKey
	Opportunity float64
	Rates       map[string]float64
}

// Rate returns the named rate and whether the column exists.
func (r RateRecord) Rate(name string) (float64, bool) {
	v, ok := r.Rates[name]
	return v, ok
}
