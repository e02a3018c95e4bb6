package reporting

import (
	"encoding/csv"
	"math"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salary-lab/internal/domain"
)

func parseCSV(t *testing.T, s string) [][]string {
	t.Helper()
	records, err := csv.NewReader(strings.NewReader(s)).ReadAll()
	require.NoError(t, err)
	return records
}

func TestRenderWOBACSV_UndefinedMetricIsEmpty(t *testing.T) {
	rows := []domain.WOBARecord{
		wobaRow("a", 1990, 500, 0.35, 1000000, domain.MetricOK),
		wobaRow("b", 1990, 0, math.NaN(), 500000, domain.MetricZeroDenominator),
	}

	records := parseCSV(t, RenderWOBACSV(rows))
	require.Len(t, records, 3)
	assert.Equal(t, "woba", records[0][11])
	assert.Equal(t, "0.350000", records[1][11])
	assert.Equal(t, "ok", records[1][12])
	assert.Equal(t, "", records[2][11])
	assert.Equal(t, "zero_denominator", records[2][12])
}

func TestRenderTopSalariesCSV_QuotesNames(t *testing.T) {
	ranked := []domain.RankedSalary{
		{Season: 2014, Role: domain.RolePitcher, Rank: 1, PlayerID: "p1", FullName: "Smith, Jr.", TeamID: "BOS", Salary: 25000000},
	}

	out := RenderTopSalariesCSV(ranked)
	assert.Contains(t, out, `"Smith, Jr."`)

	records := parseCSV(t, out)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"2014", "pitcher", "1", "p1", "Smith, Jr.", "BOS", "25000000"}, records[1])
}

func TestRenderTeamBudgetsCSV_ExactTotals(t *testing.T) {
	total := decimal.RequireFromString("12345678.5").Add(decimal.RequireFromString("0.25"))
	budgets := []domain.TeamBudget{{Season: 2000, TeamID: "NYA", Total: total, Players: 2}}

	records := parseCSV(t, RenderTeamBudgetsCSV(budgets))
	require.Len(t, records, 2)
	assert.Equal(t, []string{"2000", "NYA", "12345678.75", "2"}, records[1])
}

func TestRenderSalaryStatsCSV(t *testing.T) {
	stats := []domain.SeasonSummary{{Season: 1985, Summary: domain.Summary{
		Count: 1, Mean: 100, Std: 0, Min: 100, P25: 100, Median: 100, P75: 100, Max: 100,
	}}}

	records := parseCSV(t, RenderSalaryStatsCSV(stats))
	require.Len(t, records, 2)
	assert.Equal(t, []string{"yearID", "count", "mean", "std", "min", "25%", "50%", "75%", "max"}, records[0])
	assert.Equal(t, "1985", records[1][0])
	assert.Equal(t, "100.00", records[1][2])
}

func TestRenderCorrelationsCSV(t *testing.T) {
	records := parseCSV(t, RenderCorrelationsCSV([]domain.Correlation{{Label: "HR", N: 5, R: 0.8, PValue: math.NaN()}}))
	require.Len(t, records, 2)
	assert.Equal(t, []string{"HR", "5", "0.800000", ""}, records[1])
}
