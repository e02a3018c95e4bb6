package woba

import (
	"fmt"
	"math"
	"sort"

	"salary-lab/internal/domain"
	"salary-lab/internal/metrics"
)

// Leaderboard returns rows with at least minAB at-bats ordered by wOBA descending.
// Undefined metrics sort last. Ties keep input order. n <= 0 returns every row.
func Leaderboard(rows []domain.WOBARecord, minAB, n int) []domain.WOBARecord {
	out := make([]domain.WOBARecord, 0, len(rows))
	for _, r := range rows {
		if r.AB >= minAB {
			out = append(out, r)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].WOBA.Value, out[j].WOBA.Value
		if math.IsNaN(a) {
			return false
		}
		if math.IsNaN(b) {
			return true
		}
		return a > b
	})

	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// SeasonCorrelations correlates wOBA with salary within each season, ascending.
// Seasons with fewer than three defined metrics are skipped.
func SeasonCorrelations(rows []domain.WOBARecord) []domain.Correlation {
	type pairs struct{ woba, salary []float64 }
	bySeason := make(map[int]*pairs)
	for _, r := range rows {
		if !r.WOBA.Defined() {
			continue
		}
		p, ok := bySeason[r.YearID]
		if !ok {
			p = &pairs{}
			bySeason[r.YearID] = p
		}
		p.woba = append(p.woba, r.WOBA.Value)
		p.salary = append(p.salary, r.Salary)
	}

	seasons := make([]int, 0, len(bySeason))
	for s := range bySeason {
		seasons = append(seasons, s)
	}
	sort.Ints(seasons)

	var out []domain.Correlation
	for _, s := range seasons {
		p := bySeason[s]
		c, err := metrics.Pearson(fmt.Sprintf("wOBA %d", s), p.woba, p.salary)
		if err != nil {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Summary describes the defined wOBA values. Lines with a missing factor
// or a zero denominator are left out.
func Summary(rows []domain.WOBARecord) domain.Summary {
	values := make([]float64, 0, len(rows))
	for _, r := range rows {
		if !r.WOBA.Defined() {
			continue
		}
		values = append(values, r.WOBA.Value)
	}
	return metrics.Describe(values)
}
