package reporting

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"

	"salary-lab/internal/domain"
	"salary-lab/internal/metrics"
)

// Workbook sheet names.
const (
	SheetSalaryStats  = "SalaryStats"
	SheetTeamBudgets  = "TeamBudgets"
	SheetTopSalaries  = "TopSalaries"
	SheetCorrelations = "Correlations"
)

// WriteWorkbook exports the salary aggregates and correlations to an xlsx file.
// TeamBudgets is a season x team pivot; absent cells stay blank.
func WriteWorkbook(path string, salaries *metrics.SalaryReport, corrs []domain.Correlation) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close workbook: %w", cerr)
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), SheetSalaryStats); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	for _, name := range []string{SheetTeamBudgets, SheetTopSalaries, SheetCorrelations} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	var stats []domain.SeasonSummary
	var budgets []domain.TeamBudget
	var top []domain.RankedSalary
	if salaries != nil {
		stats, budgets, top = salaries.SeasonStats, salaries.Budgets, salaries.TopSalaries
	}

	rows := [][]interface{}{{"yearID", "count", "mean", "std", "min", "25%", "50%", "75%", "max"}}
	for _, s := range stats {
		rows = append(rows, []interface{}{
			s.Season, s.Count, cellFloat(s.Mean), cellFloat(s.Std), cellFloat(s.Min),
			cellFloat(s.P25), cellFloat(s.Median), cellFloat(s.P75), cellFloat(s.Max),
		})
	}
	if err := writeRows(f, SheetSalaryStats, rows); err != nil {
		return err
	}

	pivot := metrics.PivotBudgets(budgets)
	header := []interface{}{"yearID"}
	for _, team := range pivot.Teams {
		header = append(header, team)
	}
	rows = [][]interface{}{header}
	for _, season := range pivot.Seasons {
		row := []interface{}{season}
		for _, team := range pivot.Teams {
			total, ok := pivot.Cells[season][team]
			if !ok {
				row = append(row, nil)
				continue
			}
			row = append(row, total.InexactFloat64())
		}
		rows = append(rows, row)
	}
	if err := writeRows(f, SheetTeamBudgets, rows); err != nil {
		return err
	}

	rows = [][]interface{}{{"yearID", "role", "rank", "playerID", "fullName", "teamID", "salary"}}
	for _, r := range top {
		rows = append(rows, []interface{}{r.Season, string(r.Role), r.Rank, r.PlayerID, r.FullName, r.TeamID, cellFloat(r.Salary)})
	}
	if err := writeRows(f, SheetTopSalaries, rows); err != nil {
		return err
	}

	rows = [][]interface{}{{"variable", "n", "r", "p_value"}}
	for _, c := range corrs {
		rows = append(rows, []interface{}{c.Label, c.N, cellFloat(c.R), cellFloat(c.PValue)})
	}
	if err := writeRows(f, SheetCorrelations, rows); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

// cellFloat leaves NaN cells blank; excelize rejects non-finite numbers.
func cellFloat(v float64) interface{} {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}
