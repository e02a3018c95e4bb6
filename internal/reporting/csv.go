package reporting

import (
	"encoding/csv"
	"math"
	"strconv"
	"strings"

	"salary-lab/internal/domain"
)

// RenderWOBACSV renders cleaned batting lines with their wOBA.
// Undefined metrics leave the woba cell empty.
func RenderWOBACSV(rows []domain.WOBARecord) string {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.PlayerID,
			strconv.Itoa(r.YearID),
			strconv.Itoa(r.Stint),
			r.TeamID,
			r.LeagueID,
			strconv.Itoa(r.AB),
			strconv.Itoa(r.H),
			strconv.Itoa(r.BB),
			strconv.Itoa(r.HBP),
			strconv.Itoa(r.SF),
			formatCSVFloat(r.Salary, 0),
			formatCSVFloat(r.WOBA.Value, 6),
			r.WOBA.Status.String(),
		})
	}
	return renderCSV([]string{
		"playerID", "yearID", "stint", "teamID", "lgID", "AB", "H", "BB", "HBP", "SF", "salary", "woba", "status",
	}, records)
}

// RenderSalaryStatsCSV renders per-season salary statistics.
func RenderSalaryStatsCSV(stats []domain.SeasonSummary) string {
	records := make([][]string, 0, len(stats))
	for _, s := range stats {
		records = append(records, []string{
			strconv.Itoa(s.Season),
			strconv.Itoa(s.Count),
			formatCSVFloat(s.Mean, 2),
			formatCSVFloat(s.Std, 2),
			formatCSVFloat(s.Min, 2),
			formatCSVFloat(s.P25, 2),
			formatCSVFloat(s.Median, 2),
			formatCSVFloat(s.P75, 2),
			formatCSVFloat(s.Max, 2),
		})
	}
	return renderCSV([]string{"yearID", "count", "mean", "std", "min", "25%", "50%", "75%", "max"}, records)
}

// RenderTeamBudgetsCSV renders team payrolls in long form.
func RenderTeamBudgetsCSV(budgets []domain.TeamBudget) string {
	records := make([][]string, 0, len(budgets))
	for _, b := range budgets {
		records = append(records, []string{
			strconv.Itoa(b.Season),
			b.TeamID,
			b.Total.String(),
			strconv.Itoa(b.Players),
		})
	}
	return renderCSV([]string{"yearID", "teamID", "salary", "players"}, records)
}

// RenderTopSalariesCSV renders the per-season, per-role salary rankings.
func RenderTopSalariesCSV(ranked []domain.RankedSalary) string {
	records := make([][]string, 0, len(ranked))
	for _, r := range ranked {
		records = append(records, []string{
			strconv.Itoa(r.Season),
			string(r.Role),
			strconv.Itoa(r.Rank),
			r.PlayerID,
			r.FullName,
			r.TeamID,
			formatCSVFloat(r.Salary, 0),
		})
	}
	return renderCSV([]string{"yearID", "role", "rank", "playerID", "fullName", "teamID", "salary"}, records)
}

// RenderCorrelationsCSV renders Pearson correlations.
func RenderCorrelationsCSV(corrs []domain.Correlation) string {
	records := make([][]string, 0, len(corrs))
	for _, c := range corrs {
		records = append(records, []string{
			c.Label,
			strconv.Itoa(c.N),
			formatCSVFloat(c.R, 6),
			formatCSVFloat(c.PValue, 6),
		})
	}
	return renderCSV([]string{"variable", "n", "r", "p_value"}, records)
}

func renderCSV(header []string, records [][]string) string {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	// Writes to a strings.Builder cannot fail.
	_ = w.Write(header)
	_ = w.WriteAll(records)
	return sb.String()
}

// formatCSVFloat prints NaN as an empty cell.
func formatCSVFloat(v float64, prec int) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}
