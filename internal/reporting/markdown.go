package reporting

import (
	"fmt"
	"math"
	"strings"
	"time"

	"salary-lab/internal/domain"
)

// RenderMarkdown renders report as Markdown string.
func RenderMarkdown(r *Report) string {
	var sb strings.Builder

	// Header
	sb.WriteString("# Salary Analysis Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))
	if r.RunID != "" {
		sb.WriteString(fmt.Sprintf("Run: %s\n\n", r.RunID))
	}

	// Data Summary
	d := r.DataSummary
	sb.WriteString("## Data Summary\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Players | %d |\n", d.Players))
	sb.WriteString(fmt.Sprintf("| Batting Lines | %d |\n", d.BattingLines))
	sb.WriteString(fmt.Sprintf("| Pitching Lines | %d |\n", d.PitchingLines))
	sb.WriteString(fmt.Sprintf("| Salary Rows | %d |\n", d.SalaryRows))
	sb.WriteString(fmt.Sprintf("| Factor Seasons | %d |\n", d.FactorSeasons))
	sb.WriteString(fmt.Sprintf("| Salary Seasons | %d-%d |\n", d.FirstSeason, d.LastSeason))
	sb.WriteString(fmt.Sprintf("| Cleaned Batting Lines | %d |\n", d.CleanedLines))
	sb.WriteString(fmt.Sprintf("| Lines with wOBA | %d |\n", d.WOBALines))
	sb.WriteString(fmt.Sprintf("| Pitcher Samples | %d |\n", d.PitcherSamples))
	sb.WriteString(fmt.Sprintf("| Batter Samples | %d |\n", d.BatterSamples))
	sb.WriteString("\n")

	renderDataQuality(&sb, r.DataQuality)

	// Cleaning
	sb.WriteString("## Cleaning\n\n")
	if len(r.Cleaning) > 0 {
		sb.WriteString("| Reason | Dropped Lines |\n")
		sb.WriteString("|--------|---------------|\n")
		for _, row := range r.Cleaning {
			sb.WriteString(fmt.Sprintf("| %s | %d |\n", row.Reason, row.Lines))
		}
	} else {
		sb.WriteString("Cleaning did not run.\n")
	}
	sb.WriteString("\n")

	// Join Coverage
	sb.WriteString("## Join Coverage\n\n")
	if len(r.Coverage) > 0 {
		sb.WriteString("| Role | Performance Rows | Matched | Unmatched | Salary Rows | Matched | Unmatched | Null Salary |\n")
		sb.WriteString("|------|------------------|---------|-----------|-------------|---------|-----------|-------------|\n")
		for _, c := range r.Coverage {
			sb.WriteString(fmt.Sprintf("| %s | %d | %d | %d | %d | %d | %d | %d |\n",
				c.Role, c.PerformanceRows, c.MatchedPerformance, c.UnmatchedPerformance,
				c.SalaryRows, c.MatchedSalaries, c.UnmatchedSalaries, c.NullSalaries))
		}
	} else {
		sb.WriteString("No join coverage available.\n")
	}
	sb.WriteString("\n")

	renderWOBA(&sb, r.WOBA)

	// Salary Statistics
	sb.WriteString("## Salary Statistics\n\n")
	if len(r.SalaryStats) > 0 {
		sb.WriteString("| Season | Count | Mean | Std | Min | 25% | 50% | 75% | Max |\n")
		sb.WriteString("|--------|-------|------|-----|-----|-----|-----|-----|-----|\n")
		for _, s := range r.SalaryStats {
			sb.WriteString(fmt.Sprintf("| %d | %d | %.0f | %.0f | %.0f | %.0f | %.0f | %.0f | %.0f |\n",
				s.Season, s.Count, s.Mean, s.Std, s.Min, s.P25, s.Median, s.P75, s.Max))
		}
	} else {
		sb.WriteString("No salary statistics available.\n")
	}
	sb.WriteString("\n")

	// Top Salaries, latest season only; the CSV export holds every season.
	sb.WriteString("## Top Salaries\n\n")
	latest := 0
	for _, t := range r.TopSalaries {
		if t.Season > latest {
			latest = t.Season
		}
	}
	if latest > 0 {
		sb.WriteString(fmt.Sprintf("Season %d.\n\n", latest))
		sb.WriteString("| Role | Rank | Player | Team | Salary |\n")
		sb.WriteString("|------|------|--------|------|--------|\n")
		for _, t := range r.TopSalaries {
			if t.Season != latest {
				continue
			}
			sb.WriteString(fmt.Sprintf("| %s | %d | %s | %s | %.0f |\n",
				t.Role, t.Rank, t.FullName, t.TeamID, t.Salary))
		}
	} else {
		sb.WriteString("No salaries ranked.\n")
	}
	sb.WriteString("\n")

	// Player Profile
	if len(r.BirthCountries) > 0 {
		sb.WriteString("## Player Profile\n\n")
		sb.WriteString("| Birth Country | Players |\n")
		sb.WriteString("|---------------|---------|\n")
		for _, c := range r.BirthCountries {
			sb.WriteString(fmt.Sprintf("| %s | %d |\n", c.Country, c.Players))
		}
		sb.WriteString("\n")
	}

	// Regressions
	sb.WriteString("## Regressions\n\n")
	if len(r.Regressions) > 0 {
		sb.WriteString("| Role | Season | N | Predictors | Excluded | R² | Adj. R² | F | Significant |\n")
		sb.WriteString("|------|--------|---|------------|----------|----|---------|---|-------------|\n")
		for _, g := range r.Regressions {
			if g.Skipped != "" {
				sb.WriteString(fmt.Sprintf("| %s | %d | %d | %d | %d | - | - | - | skipped: %s |\n",
					g.Role, g.Season, g.NObs, g.Predictors, g.Excluded, g.Skipped))
				continue
			}
			sb.WriteString(fmt.Sprintf("| %s | %d | %d | %d | %d | %.4f | %.4f | %s | %s |\n",
				g.Role, g.Season, g.NObs, g.Predictors, g.Excluded,
				g.RSquared, g.AdjRSquared, formatFloat(g.FStatistic, 2), strings.Join(g.Significant, ", ")))
		}
	} else {
		sb.WriteString("No regressions fitted.\n")
	}
	sb.WriteString("\n")

	// Correlations
	sb.WriteString("## Correlations with Salary\n\n")
	if len(r.Correlations) > 0 {
		sb.WriteString(fmt.Sprintf("Salary season %d.\n\n", r.CorrelationSeason))
		renderCorrelations(&sb, r.Correlations)
	} else {
		sb.WriteString("No correlations available.\n")
	}
	sb.WriteString("\n")

	// Reproducibility
	sb.WriteString("## Reproducibility\n\n")
	sb.WriteString(fmt.Sprintf("- Data version: %s\n", orUnknown(r.Reproducibility.DataVersion)))
	sb.WriteString(fmt.Sprintf("- Git commit: %s\n", orUnknown(r.Reproducibility.GitCommit)))

	return sb.String()
}

func renderDataQuality(sb *strings.Builder, q DataQualitySection) {
	sb.WriteString("## Data Quality\n\n")
	if len(q.Checks) > 0 {
		sb.WriteString("| Check | Threshold | Actual | Status |\n")
		sb.WriteString("|-------|-----------|--------|--------|\n")
		for _, check := range q.Checks {
			status := "FAIL"
			if check.Pass {
				status = "PASS"
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
				check.Name, check.Threshold, check.Actual, status))
		}
		sb.WriteString("\n")

		if q.AllChecksPassed {
			sb.WriteString("**All checks passed.**\n\n")
		} else {
			sb.WriteString("**Some checks failed.** Results below may be unreliable.\n\n")
		}
	} else if len(q.IssueCounts) == 0 {
		sb.WriteString("No data quality checks performed.\n\n")
	}

	if len(q.IssueCounts) > 0 {
		sb.WriteString("### Source Data Issues\n\n")
		for _, c := range q.IssueCounts {
			sb.WriteString(fmt.Sprintf("- %s: %d\n", c.Kind, c.Count))
		}
		sb.WriteString("\n")
		for _, issue := range q.Issues {
			sb.WriteString(fmt.Sprintf("    %s\n", issue))
		}
		sb.WriteString("\n")
	}
}

func renderWOBA(sb *strings.Builder, w WOBASection) {
	sb.WriteString("## wOBA\n\n")
	if len(w.Statuses) == 0 {
		sb.WriteString("No wOBA computed.\n\n")
		return
	}

	s := w.Summary
	sb.WriteString("| Count | Mean | Std | Min | 25% | 50% | 75% | Max |\n")
	sb.WriteString("|-------|------|-----|-----|-----|-----|-----|-----|\n")
	sb.WriteString(fmt.Sprintf("| %d | %s | %s | %s | %s | %s | %s | %s |\n\n",
		s.Count, formatFloat(s.Mean, 4), formatFloat(s.Std, 4), formatFloat(s.Min, 4), formatFloat(s.P25, 4),
		formatFloat(s.Median, 4), formatFloat(s.P75, 4), formatFloat(s.Max, 4)))

	sb.WriteString("| Status | Lines |\n")
	sb.WriteString("|--------|-------|\n")
	for _, st := range w.Statuses {
		sb.WriteString(fmt.Sprintf("| %s | %d |\n", st.Status, st.Lines))
	}
	sb.WriteString("\n")

	if len(w.MissingSeasons) > 0 {
		seasons := make([]string, len(w.MissingSeasons))
		for i, season := range w.MissingSeasons {
			seasons[i] = fmt.Sprintf("%d", season)
		}
		sb.WriteString(fmt.Sprintf("Seasons without weighting factors: %s\n\n", strings.Join(seasons, ", ")))
	}

	if len(w.Leaders) > 0 {
		sb.WriteString(fmt.Sprintf("### Leaders (AB >= %d)\n\n", w.MinAB))
		sb.WriteString("| Player | Season | Team | AB | wOBA | Salary |\n")
		sb.WriteString("|--------|--------|------|----|------|--------|\n")
		for _, l := range w.Leaders {
			sb.WriteString(fmt.Sprintf("| %s | %d | %s | %d | %s | %.0f |\n",
				l.PlayerID, l.Season, l.TeamID, l.AB, formatFloat(l.WOBA, 3), l.Salary))
		}
		sb.WriteString("\n")
	}

	if len(w.Correlations) > 0 {
		sb.WriteString("### wOBA vs Salary\n\n")
		renderCorrelations(sb, w.Correlations)
		sb.WriteString("\n")
	}
}

func renderCorrelations(sb *strings.Builder, rows []domain.Correlation) {
	sb.WriteString("| Variable | N | r | p-value |\n")
	sb.WriteString("|----------|---|---|---------|\n")
	for _, c := range rows {
		sb.WriteString(fmt.Sprintf("| %s | %d | %s | %s |\n",
			c.Label, c.N, formatFloat(c.R, 4), formatFloat(c.PValue, 4)))
	}
}

// formatFloat prints NaN as "-".
func formatFloat(v float64, prec int) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.*f", prec, v)
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
