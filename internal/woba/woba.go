// Package woba computes the weighted on-base average per player-season-stint.
package woba

import (
	"sort"

	"go.uber.org/zap"

	"salary-lab/internal/domain"
	"salary-lab/internal/lookup"
)

// Result is the cleaned batting table with wOBA attached to every row.
type Result struct {
	Rows           []domain.WOBARecord
	StatusCounts   map[domain.MetricStatus]int
	MissingSeasons []int
}

// Defined returns the rows whose metric was computed.
func (r *Result) Defined() []domain.WOBARecord {
	out := make([]domain.WOBARecord, 0, len(r.Rows))
	for _, row := range r.Rows {
		if row.WOBA.Defined() {
			out = append(out, row)
		}
	}
	return out
}

// Calculator computes wOBA season by season.
type Calculator struct {
	factors *lookup.FactorTable
	logger  *zap.Logger
}

// New creates a Calculator over a season factor table.
func New(factors *lookup.FactorTable) *Calculator {
	return &Calculator{factors: factors, logger: zap.NewNop()}
}

// WithLogger sets the logger.
func (c *Calculator) WithLogger(logger *zap.Logger) *Calculator {
	c.logger = logger
	return c
}

// ComputeSeason computes wOBA for the lines of one season.
// Without factors for the season every line gets MetricMissingFactor.
func (c *Calculator) ComputeSeason(season int, lines []domain.BattingRecord) []domain.DerivedMetricRecord {
	out := make([]domain.DerivedMetricRecord, len(lines))
	f, ok := c.factors.Lookup(season)
	for i, b := range lines {
		if !ok {
			out[i] = domain.MissingMetric(b.Key(), domain.MetricMissingFactor)
			continue
		}
		out[i] = Value(b, f)
	}
	return out
}

// Compute groups rows by season, computes each season independently and
// joins the metrics back onto the rows by (playerID, yearID, stint).
// Input order is preserved and rows is not modified.
func (c *Calculator) Compute(rows []domain.CleanBattingRecord) *Result {
	bySeason := make(map[int][]domain.BattingRecord)
	for _, r := range rows {
		bySeason[r.YearID] = append(bySeason[r.YearID], r.BattingRecord)
	}

	seasons := make([]int, 0, len(bySeason))
	for s := range bySeason {
		seasons = append(seasons, s)
	}
	sort.Ints(seasons)

	metrics := make(map[domain.StintKey]domain.DerivedMetricRecord, len(rows))
	var missing []int
	for _, season := range seasons {
		if _, ok := c.factors.Lookup(season); !ok {
			missing = append(missing, season)
			c.logger.Warn("no weighting factors for season", zap.Int("season", season))
		}
		for _, m := range c.ComputeSeason(season, bySeason[season]) {
			metrics[m.Key] = m
		}
	}

	result := &Result{
		Rows:           make([]domain.WOBARecord, len(rows)),
		StatusCounts:   make(map[domain.MetricStatus]int),
		MissingSeasons: missing,
	}
	for i, r := range rows {
		m, ok := metrics[r.Key()]
		if !ok {
			m = domain.MissingMetric(r.Key(), domain.MetricMissingFactor)
		}
		result.Rows[i] = domain.WOBARecord{CleanBattingRecord: r, WOBA: m}
		result.StatusCounts[m.Status]++
	}

	c.logger.Info("wOBA computed",
		zap.Int("rows", len(rows)),
		zap.Int("seasons", len(seasons)),
		zap.Int("ok", result.StatusCounts[domain.MetricOK]),
		zap.Int("missing_factor", result.StatusCounts[domain.MetricMissingFactor]),
		zap.Int("zero_denominator", result.StatusCounts[domain.MetricZeroDenominator]),
	)
	return result
}
