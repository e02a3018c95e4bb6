package reporting

import (
	"slices"
	"sort"
	"time"

	"salary-lab/internal/cleaning"
	"salary-lab/internal/dataset"
	"salary-lab/internal/domain"
	"salary-lab/internal/metrics"
	"salary-lab/internal/regression"
	"salary-lab/internal/temporal"
	"salary-lab/internal/woba"
)

// MaxListedIssues caps the data issues printed in the report.
const MaxListedIssues = 20

// DefaultLeaderCount is the wOBA leaderboard length.
const DefaultLeaderCount = 10

// MaxListedCountries caps the birth countries printed in the report.
const MaxListedCountries = 10

// Inputs holds the stage outputs a report is built from.
type Inputs struct {
	RunID   string
	Dataset *dataset.Dataset
	Clean   *cleaning.Result
	WOBA    *woba.Result

	WOBAMinAB   int
	LeaderCount int // DefaultLeaderCount when 0

	Coverage map[domain.Role]temporal.Coverage
	Fits     []regression.SeasonFit
	Salaries *metrics.SalaryReport

	CorrelationSeason int
	Correlations      []domain.Correlation

	Checks      []CheckRow
	DataVersion string
	GitCommit   string
}

// Generator produces reports from stage outputs.
type Generator struct {
	now func() time.Time // Injectable clock for deterministic output
}

// NewGenerator creates a new report generator.
func NewGenerator() *Generator {
	return &Generator{
		now: func() time.Time { return time.Now().UTC() },
	}
}

// WithClock sets a custom clock function for deterministic output.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Generate produces a complete report. Nil inputs leave their sections empty.
func (g *Generator) Generate(in Inputs) *Report {
	r := &Report{
		GeneratedAt:       g.now(),
		RunID:             in.RunID,
		DataSummary:       generateDataSummary(in),
		DataQuality:       generateDataQuality(in),
		Cleaning:          generateDrops(in.Clean),
		Coverage:          generateCoverage(in.Coverage),
		WOBA:              generateWOBA(in),
		Regressions:       generateRegressions(in.Fits),
		CorrelationSeason: in.CorrelationSeason,
		Correlations:      in.Correlations,
		Reproducibility: Reproducibility{
			DataVersion: in.DataVersion,
			GitCommit:   in.GitCommit,
		},
	}
	if in.Salaries != nil {
		r.SalaryStats = in.Salaries.SeasonStats
		r.TopSalaries = in.Salaries.TopSalaries
		r.BirthCountries = topCountries(in.Salaries.BirthCountries, MaxListedCountries)
	}
	return r
}

// generateDataSummary counts rows across the loaded and derived tables.
func generateDataSummary(in Inputs) DataSummary {
	var s DataSummary
	if in.Dataset != nil {
		counts := in.Dataset.Counts()
		s.Players = counts[dataset.TablePlayers]
		s.BattingLines = counts[dataset.TableBatting]
		s.PitchingLines = counts[dataset.TablePitching]
		s.SalaryRows = counts[dataset.TableSalaries]
		s.FactorSeasons = counts[dataset.TableFactors]

		salaries := in.Dataset.Salaries()
		for i, sal := range salaries {
			if i == 0 || sal.YearID < s.FirstSeason {
				s.FirstSeason = sal.YearID
			}
			if sal.YearID > s.LastSeason {
				s.LastSeason = sal.YearID
			}
		}
	}
	if in.Clean != nil {
		s.CleanedLines = in.Clean.Kept()
	}
	if in.WOBA != nil {
		s.WOBALines = len(in.WOBA.Defined())
	}
	s.PitcherSamples = in.Coverage[domain.RolePitcher].MatchedPerformance
	s.BatterSamples = in.Coverage[domain.RoleBatter].MatchedPerformance
	return s
}

// generateDataQuality combines pipeline checks with cleaning issues.
func generateDataQuality(in Inputs) DataQualitySection {
	q := DataQualitySection{
		Checks:          in.Checks,
		AllChecksPassed: true,
	}
	for _, c := range in.Checks {
		if !c.Pass {
			q.AllChecksPassed = false
		}
	}
	if in.Clean == nil {
		return q
	}

	counts := make(map[cleaning.IssueKind]int)
	for i, issue := range in.Clean.Issues {
		counts[issue.Kind]++
		if i < MaxListedIssues {
			q.Issues = append(q.Issues, issue.String())
		}
	}
	for kind, n := range counts {
		q.IssueCounts = append(q.IssueCounts, IssueCountRow{Kind: string(kind), Count: n})
	}
	sort.Slice(q.IssueCounts, func(i, j int) bool {
		return q.IssueCounts[i].Kind < q.IssueCounts[j].Kind
	})
	return q
}

func generateDrops(res *cleaning.Result) []DropRow {
	if res == nil {
		return nil
	}
	rows := make([]DropRow, 0, len(cleaning.DropReasons))
	for _, reason := range cleaning.DropReasons {
		rows = append(rows, DropRow{Reason: string(reason), Lines: res.Dropped[reason]})
	}
	return rows
}

func generateCoverage(cov map[domain.Role]temporal.Coverage) []CoverageRow {
	var rows []CoverageRow
	for _, role := range domain.Roles {
		c, ok := cov[role]
		if !ok {
			continue
		}
		rows = append(rows, CoverageRow{
			Role:                 role,
			PerformanceRows:      c.PerformanceRows,
			MatchedPerformance:   c.MatchedPerformance,
			UnmatchedPerformance: c.UnmatchedPerformance,
			SalaryRows:           c.SalaryRows,
			MatchedSalaries:      c.MatchedSalaries,
			UnmatchedSalaries:    c.UnmatchedSalaries,
			NullSalaries:         c.NullSalaries,
		})
	}
	return rows
}

// generateWOBA builds the wOBA section: summary, status counts and leaderboard.
func generateWOBA(in Inputs) WOBASection {
	sec := WOBASection{MinAB: in.WOBAMinAB}
	if in.WOBA == nil {
		return sec
	}

	sec.Summary = woba.Summary(in.WOBA.Rows)
	sec.MissingSeasons = in.WOBA.MissingSeasons
	for _, status := range []domain.MetricStatus{domain.MetricOK, domain.MetricMissingFactor, domain.MetricZeroDenominator} {
		sec.Statuses = append(sec.Statuses, StatusRow{Status: status.String(), Lines: in.WOBA.StatusCounts[status]})
	}

	n := in.LeaderCount
	if n <= 0 {
		n = DefaultLeaderCount
	}
	for _, r := range woba.Leaderboard(in.WOBA.Rows, in.WOBAMinAB, n) {
		sec.Leaders = append(sec.Leaders, LeaderRow{
			PlayerID: r.PlayerID,
			Season:   r.YearID,
			TeamID:   r.TeamID,
			AB:       r.AB,
			WOBA:     r.WOBA.Value,
			Salary:   r.Salary,
		})
	}
	sec.Correlations = woba.SeasonCorrelations(in.WOBA.Rows)
	return sec
}

// generateRegressions flattens fits into rows sorted by role order then season.
func generateRegressions(fits []regression.SeasonFit) []RegressionRow {
	rows := make([]RegressionRow, 0, len(fits))
	for _, f := range fits {
		row := RegressionRow{
			Role:       f.Role,
			Season:     f.Season,
			NObs:       f.NObs,
			Predictors: len(f.Included),
			Excluded:   len(f.Excluded),
		}
		if f.Err != nil {
			row.Skipped = f.Err.Error()
		}
		if f.Model != nil {
			row.RSquared = f.Model.RSquared
			row.AdjRSquared = f.Model.AdjRSquared
			row.FStatistic = f.Model.FStatistic
			for _, c := range f.Significant() {
				row.Significant = append(row.Significant, c.Name)
			}
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Role != rows[j].Role {
			return roleOrder(rows[i].Role) < roleOrder(rows[j].Role)
		}
		return rows[i].Season < rows[j].Season
	})
	return rows
}

func roleOrder(role domain.Role) int {
	for i, r := range domain.Roles {
		if r == role {
			return i
		}
	}
	return len(domain.Roles)
}

// topCountries orders countries by player count, largest first, and keeps n.
func topCountries(counts []metrics.CountryCount, n int) []metrics.CountryCount {
	out := slices.Clone(counts)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Players > out[j].Players })
	if len(out) > n {
		out = out[:n]
	}
	return out
}
