package metrics

import (
	"go.uber.org/zap"

	"salary-lab/internal/dataset"
	"salary-lab/internal/domain"
)

// SalaryReport is the aggregation output over the salary table.
type SalaryReport struct {
	SeasonStats    []domain.SeasonSummary
	Budgets        []domain.TeamBudget
	TopSalaries    []domain.RankedSalary
	BirthCountries []CountryCount
	Bodies         []BodyCount
}

// Aggregator computes salary aggregates for a dataset.
type Aggregator struct {
	topN   int
	logger *zap.Logger
}

// NewAggregator creates an aggregator keeping topN players per (season, role).
func NewAggregator(topN int) *Aggregator {
	return &Aggregator{topN: topN, logger: zap.NewNop()}
}

// WithLogger sets the logger.
func (a *Aggregator) WithLogger(logger *zap.Logger) *Aggregator {
	a.logger = logger
	return a
}

// Aggregate computes every salary aggregate from ds.
func (a *Aggregator) Aggregate(ds *dataset.Dataset) *SalaryReport {
	salaries := ds.Salaries()
	players := ds.Players()
	pitchers := dataset.PitcherIDs(ds.Pitching())

	report := &SalaryReport{
		SeasonStats:    SeasonSalaryStats(salaries),
		Budgets:        TeamBudgets(salaries),
		TopSalaries:    TopSalaries(salaries, pitchers, ds, a.topN),
		BirthCountries: BirthCountries(players),
		Bodies:         BodyProfile(players),
	}

	a.logger.Info("salary aggregates computed",
		zap.Int("seasons", len(report.SeasonStats)),
		zap.Int("team_budgets", len(report.Budgets)),
		zap.Int("ranked", len(report.TopSalaries)),
		zap.Int("countries", len(report.BirthCountries)),
	)
	return report
}
