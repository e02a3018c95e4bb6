package domain

import "github.com/shopspring/decimal"

// Summary is a pandas-style describe() of one numeric column.
type Summary struct {
	Count  int
	Mean   float64
	Std    float64 // sample standard deviation, 0 when Count < 2
	Min    float64
	P25    float64
	Median float64
	P75    float64
	Max    float64
}

// SeasonSummary is the salary distribution of one season.
type SeasonSummary struct {
	Season int
	Summary
}

// TeamBudget is the summed payroll of one team in one season.
type TeamBudget struct {
	Season  int
	TeamID  string
	Total   decimal.Decimal
	Players int
}

// RankedSalary is one entry of a per-season, per-role salary ranking.
type RankedSalary struct {
	Season   int
	Role     Role
	Rank     int // 1-based
	PlayerID string
	FullName string
	TeamID   string
	Salary   float64
}

// Correlation is a Pearson correlation with its two-sided p-value.
type Correlation struct {
	Label  string
	N      int
	R      float64
	PValue float64
}
