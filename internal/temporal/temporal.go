// Package temporal joins a season's performance to the salary paid the
// following season.
//
// The join key is (performance season, team, league, player). A player who
// changed team or league between the two seasons does not match; that case
// is reported in Coverage and left out of the joined rows.
package temporal

import (
	"math"
	"sort"

	"salary-lab/internal/domain"
)

// Performance is a row of a performance table.
type Performance interface {
	Key() domain.StintKey
	LagKey() domain.LagKey
}

// Lagged is a performance row joined to the next season's salary.
// PerformanceYear and SalaryYear always differ by one.
type Lagged[R Performance] struct {
	Record          R
	PerformanceYear int
	SalaryYear      int
	Salary          float64
}

// Coverage counts how many rows on each side found a partner.
type Coverage struct {
	PerformanceRows      int
	MatchedPerformance   int
	UnmatchedPerformance int
	SalaryRows           int
	MatchedSalaries      int
	UnmatchedSalaries    int
	NullSalaries         int
}

// Result is the output of Join.
type Result[R Performance] struct {
	Rows     []Lagged[R]
	Coverage Coverage
}

// Join pairs each performance row with the salary row whose season is one
// later and whose team, league and player are identical. Salary rows without
// a value never match. Unmatched performance rows are dropped.
// Output keeps performance input order.
func Join[R Performance](performance []R, salaries []domain.SalaryRecord) *Result[R] {
	index := make(map[domain.LagKey]int, len(salaries))
	cov := Coverage{PerformanceRows: len(performance), SalaryRows: len(salaries)}
	for i, s := range salaries {
		if math.IsNaN(s.Salary) {
			cov.NullSalaries++
			continue
		}
		if _, exists := index[s.LagKey()]; !exists {
			index[s.LagKey()] = i
		}
	}

	matched := make(map[int]struct{}, len(salaries))
	rows := make([]Lagged[R], 0, len(performance))
	for _, p := range performance {
		i, ok := index[p.LagKey()]
		if !ok {
			cov.UnmatchedPerformance++
			continue
		}
		s := salaries[i]
		rows = append(rows, Lagged[R]{
			Record:          p,
			PerformanceYear: p.LagKey().YearID,
			SalaryYear:      s.YearID,
			Salary:          s.Salary,
		})
		matched[i] = struct{}{}
		cov.MatchedPerformance++
	}

	cov.MatchedSalaries = len(matched)
	cov.UnmatchedSalaries = cov.SalaryRows - cov.NullSalaries - cov.MatchedSalaries

	return &Result[R]{Rows: rows, Coverage: cov}
}

// BySalaryYear groups joined rows by salary season, keeping input order
// within each group.
func BySalaryYear[R Performance](rows []Lagged[R]) map[int][]Lagged[R] {
	out := make(map[int][]Lagged[R])
	for _, r := range rows {
		out[r.SalaryYear] = append(out[r.SalaryYear], r)
	}
	return out
}

// SalaryYears returns the distinct salary seasons in ascending order.
func SalaryYears[R Performance](rows []Lagged[R]) []int {
	seen := make(map[int]struct{})
	var years []int
	for _, r := range rows {
		if _, ok := seen[r.SalaryYear]; ok {
			continue
		}
		seen[r.SalaryYear] = struct{}{}
		years = append(years, r.SalaryYear)
	}
	sort.Ints(years)
	return years
}

// Records strips the salary side of joined rows.
func Records[R Performance](rows []Lagged[R]) []R {
	out := make([]R, len(rows))
	for i, r := range rows {
		out[i] = r.Record
	}
	return out
}
