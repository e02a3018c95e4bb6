package metrics

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"salary-lab/internal/domain"
)

type budgetKey struct {
	season int
	teamID string
}

// TeamBudgets sums salaries by (season, team). Rows without a salary are skipped.
// Result is ordered by season, then team.
func TeamBudgets(salaries []domain.SalaryRecord) []domain.TeamBudget {
	totals := make(map[budgetKey]*domain.TeamBudget)
	for _, s := range salaries {
		if math.IsNaN(s.Salary) {
			continue
		}
		k := budgetKey{season: s.YearID, teamID: s.TeamID}
		b, ok := totals[k]
		if !ok {
			b = &domain.TeamBudget{Season: s.YearID, TeamID: s.TeamID, Total: decimal.Zero}
			totals[k] = b
		}
		b.Total = b.Total.Add(decimal.NewFromFloat(s.Salary))
		b.Players++
	}

	out := make([]domain.TeamBudget, 0, len(totals))
	for _, b := range totals {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Season != out[j].Season {
			return out[i].Season < out[j].Season
		}
		return out[i].TeamID < out[j].TeamID
	})
	return out
}

// BudgetPivot lays budgets out as season rows by team columns.
// Missing cells are absent from the inner map.
type BudgetPivot struct {
	Seasons []int
	Teams   []string
	Cells   map[int]map[string]decimal.Decimal
}

// PivotBudgets builds a season × team table from TeamBudgets output.
func PivotBudgets(budgets []domain.TeamBudget) BudgetPivot {
	p := BudgetPivot{Cells: make(map[int]map[string]decimal.Decimal)}
	teams := make(map[string]struct{})
	for _, b := range budgets {
		row, ok := p.Cells[b.Season]
		if !ok {
			row = make(map[string]decimal.Decimal)
			p.Cells[b.Season] = row
			p.Seasons = append(p.Seasons, b.Season)
		}
		row[b.TeamID] = b.Total
		teams[b.TeamID] = struct{}{}
	}
	for t := range teams {
		p.Teams = append(p.Teams, t)
	}
	sort.Ints(p.Seasons)
	sort.Strings(p.Teams)
	return p
}

// SeasonSalaryStats describes the salary distribution of each season, ascending.
func SeasonSalaryStats(salaries []domain.SalaryRecord) []domain.SeasonSummary {
	bySeason := make(map[int][]float64)
	for _, s := range salaries {
		bySeason[s.YearID] = append(bySeason[s.YearID], s.Salary)
	}

	seasons := make([]int, 0, len(bySeason))
	for y := range bySeason {
		seasons = append(seasons, y)
	}
	sort.Ints(seasons)

	out := make([]domain.SeasonSummary, 0, len(seasons))
	for _, y := range seasons {
		out = append(out, domain.SeasonSummary{Season: y, Summary: Describe(bySeason[y])})
	}
	return out
}
