package pipeline

import (
	"fmt"

	"salary-lab/internal/cleaning"
	"salary-lab/internal/domain"
	"salary-lab/internal/regression"
	"salary-lab/internal/reporting"
	"salary-lab/internal/temporal"
	"salary-lab/internal/woba"
)

// CheckDataQuality evaluates the run's data checks. A failing check is
// reported; it does not stop the run.
func CheckDataQuality(
	clean *cleaning.Result,
	w *woba.Result,
	coverage map[domain.Role]temporal.Coverage,
	fits []regression.SeasonFit,
) []reporting.CheckRow {
	checks := []reporting.CheckRow{
		checkCleanedLines(clean),
		checkFactorCoverage(clean, w),
		checkNegativeUBB(clean),
		checkNullSalaries(coverage),
	}
	for _, role := range domain.Roles {
		checks = append(checks, checkFitted(role, fits))
	}
	return checks
}

// checkCleanedLines: cleaned batting lines >= 1.
func checkCleanedLines(clean *cleaning.Result) reporting.CheckRow {
	n := 0
	if clean != nil {
		n = clean.Kept()
	}
	return reporting.CheckRow{
		Name:      "Cleaned batting lines",
		Threshold: ">= 1",
		Actual:    fmt.Sprintf("%d", n),
		Pass:      n >= 1,
	}
}

// checkFactorCoverage: every cleaned season has weighting factors.
func checkFactorCoverage(clean *cleaning.Result, w *woba.Result) reporting.CheckRow {
	seasons := make(map[int]struct{})
	if clean != nil {
		for _, r := range clean.Rows {
			seasons[r.YearID] = struct{}{}
		}
	}
	missing := 0
	if w != nil {
		missing = len(w.MissingSeasons)
	}
	return reporting.CheckRow{
		Name:      "Seasons with weighting factors",
		Threshold: "100%",
		Actual:    fmt.Sprintf("%d/%d", len(seasons)-missing, len(seasons)),
		Pass:      missing == 0,
	}
}

// checkNegativeUBB: no batting line with IBB > BB.
func checkNegativeUBB(clean *cleaning.Result) reporting.CheckRow {
	n := 0
	if clean != nil {
		for _, issue := range clean.Issues {
			if issue.Kind == cleaning.IssueNegativeUBB {
				n++
			}
		}
	}
	return reporting.CheckRow{
		Name:      "Negative uBB lines",
		Threshold: "== 0",
		Actual:    fmt.Sprintf("%d", n),
		Pass:      n == 0,
	}
}

// checkNullSalaries: no salary row with an empty amount.
// Both roles join the same salary table, so the first available coverage is used.
func checkNullSalaries(coverage map[domain.Role]temporal.Coverage) reporting.CheckRow {
	n := 0
	for _, role := range domain.Roles {
		if c, ok := coverage[role]; ok {
			n = c.NullSalaries
			break
		}
	}
	return reporting.CheckRow{
		Name:      "Null salaries",
		Threshold: "== 0",
		Actual:    fmt.Sprintf("%d", n),
		Pass:      n == 0,
	}
}

// checkFitted: at least one salary season fitted for role.
func checkFitted(role domain.Role, fits []regression.SeasonFit) reporting.CheckRow {
	fitted, total := 0, 0
	for _, f := range fits {
		if f.Role != role {
			continue
		}
		total++
		if f.Model != nil {
			fitted++
		}
	}
	return reporting.CheckRow{
		Name:      fmt.Sprintf("Fitted %s seasons", role),
		Threshold: ">= 1",
		Actual:    fmt.Sprintf("%d/%d", fitted, total),
		Pass:      fitted >= 1,
	}
}
