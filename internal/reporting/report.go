package reporting

import (
	"time"

	"salary-lab/internal/domain"
	"salary-lab/internal/metrics"
)

// Report is the run report rendered to REPORT.md.
type Report struct {
	// Metadata
	GeneratedAt time.Time
	RunID       string

	DataSummary DataSummary
	DataQuality DataQualitySection

	// Cleaning drops in evaluation order
	Cleaning []DropRow

	// Temporal join coverage, pitchers first
	Coverage []CoverageRow

	WOBA WOBASection

	SalaryStats []domain.SeasonSummary
	TopSalaries []domain.RankedSalary

	// Most common birth countries, largest first
	BirthCountries []metrics.CountryCount

	// One row per (role, salary season), sorted by role then season
	Regressions []RegressionRow

	// Predictor vs salary correlations for the configured season
	CorrelationSeason int
	Correlations      []domain.Correlation

	Reproducibility Reproducibility
}

// DataSummary describes the loaded tables.
type DataSummary struct {
	Players        int
	BattingLines   int
	PitchingLines  int
	SalaryRows     int
	FactorSeasons  int
	FirstSeason    int // first salary season, 0 if no salaries
	LastSeason     int
	CleanedLines   int
	WOBALines      int
	PitcherSamples int // joined pitcher rows
	BatterSamples  int // joined batter rows
}

// DataQualitySection contains data checks and source data issues.
type DataQualitySection struct {
	Checks          []CheckRow
	IssueCounts     []IssueCountRow
	Issues          []string // first MaxListedIssues issues
	AllChecksPassed bool
}

// CheckRow represents one data quality criterion.
type CheckRow struct {
	Name      string
	Threshold string
	Actual    string
	Pass      bool
}

// IssueCountRow counts data issues of one kind.
type IssueCountRow struct {
	Kind  string
	Count int
}

// DropRow counts batting lines removed for one reason.
type DropRow struct {
	Reason string
	Lines  int
}

// CoverageRow is the temporal join coverage of one role.
type CoverageRow struct {
	Role                 domain.Role
	PerformanceRows      int
	MatchedPerformance   int
	UnmatchedPerformance int
	SalaryRows           int
	MatchedSalaries      int
	UnmatchedSalaries    int
	NullSalaries         int
}

// WOBASection summarizes the composite batting metric.
type WOBASection struct {
	Summary        domain.Summary
	Statuses       []StatusRow
	MissingSeasons []int
	MinAB          int
	Leaders        []LeaderRow
	Correlations   []domain.Correlation // wOBA vs salary per season
}

// StatusRow counts metric rows with one status.
type StatusRow struct {
	Status string
	Lines  int
}

// LeaderRow is one line of the wOBA leaderboard.
type LeaderRow struct {
	PlayerID string
	Season   int
	TeamID   string
	AB       int
	WOBA     float64
	Salary   float64
}

// RegressionRow summarizes one season's regression.
type RegressionRow struct {
	Role        domain.Role
	Season      int
	NObs        int
	Predictors  int
	Excluded    int
	RSquared    float64
	AdjRSquared float64
	FStatistic  float64
	Significant []string
	Skipped     string // reason, empty when fitted
}

// Reproducibility identifies the inputs and code of a run.
type Reproducibility struct {
	DataVersion string
	GitCommit   string
}
