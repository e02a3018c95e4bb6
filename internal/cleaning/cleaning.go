// Package cleaning filters batting lines down to non-pitcher seasons
// with at-bats and a same-season salary.
package cleaning

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"salary-lab/internal/dataset"
	"salary-lab/internal/domain"
)

// DefaultMinSeason is the first season with salary data.
const DefaultMinSeason = 1985

// Result is the output of one cleaning pass.
type Result struct {
	Rows    []domain.CleanBattingRecord
	Issues  []DataIssue
	Dropped map[DropReason]int
	Input   int
}

// Kept returns the number of surviving lines.
func (r *Result) Kept() int {
	return len(r.Rows)
}

// Batting returns the batting lines of the surviving rows.
func (r *Result) Batting() []domain.BattingRecord {
	out := make([]domain.BattingRecord, len(r.Rows))
	for i, row := range r.Rows {
		out[i] = row.BattingRecord
	}
	return out
}

// Cleaner applies the eligibility filters and the same-season salary join.
type Cleaner struct {
	minSeason int
	logger    *zap.Logger
}

// New creates a Cleaner. A minSeason of 0 uses DefaultMinSeason.
func New(minSeason int) *Cleaner {
	if minSeason == 0 {
		minSeason = DefaultMinSeason
	}
	return &Cleaner{minSeason: minSeason, logger: zap.NewNop()}
}

// WithLogger sets the logger.
func (c *Cleaner) WithLogger(logger *zap.Logger) *Cleaner {
	c.logger = logger
	return c
}

// Clean filters batting and joins salary on (yearID, playerID).
// Inputs are not modified. Returns ErrEmptyPitching when pitching has no rows.
func (c *Cleaner) Clean(
	batting []domain.BattingRecord,
	pitching []domain.PitchingRecord,
	salaries []domain.SalaryRecord,
) (*Result, error) {
	if len(pitching) == 0 {
		return nil, ErrEmptyPitching
	}

	pitchers := dataset.PitcherIDs(pitching)
	salaryIndex := indexSalaries(salaries)

	result := &Result{
		Rows:    make([]domain.CleanBattingRecord, 0, len(batting)),
		Dropped: make(map[DropReason]int, len(DropReasons)),
		Input:   len(batting),
	}

	for _, b := range batting {
		// uBB is derived before any filter so every bad line is reported.
		if b.UBB() < 0 {
			result.Issues = append(result.Issues, DataIssue{
				Kind:   IssueNegativeUBB,
				Key:    b.Key(),
				Detail: fmt.Sprintf("BB=%d IBB=%d", b.BB, b.IBB),
			})
		}

		switch {
		case pitchers.Contains(b.PlayerID):
			result.Dropped[DropPitcher]++
			continue
		case b.AB <= 0:
			result.Dropped[DropNoAtBats]++
			continue
		case b.YearID < c.minSeason:
			result.Dropped[DropPreSalary]++
			continue
		}

		candidates := salaryIndex[domain.PlayerSeasonKey{YearID: b.YearID, PlayerID: b.PlayerID}]
		salary, ok := pickSalary(b, candidates)
		if !ok {
			result.Dropped[DropNoSalary]++
			continue
		}
		if len(candidates) > 1 {
			result.Issues = append(result.Issues, DataIssue{
				Kind:   IssueAmbiguousSalary,
				Key:    b.Key(),
				Detail: fmt.Sprintf("%d salary rows, used team %s", len(candidates), salary.TeamID),
			})
		}

		result.Rows = append(result.Rows, domain.CleanBattingRecord{
			BattingRecord: b,
			Salary:        salary.Salary,
		})
	}

	c.logger.Info("batting cleaned",
		zap.Int("input", result.Input),
		zap.Int("kept", result.Kept()),
		zap.Int("dropped_pitcher", result.Dropped[DropPitcher]),
		zap.Int("dropped_no_at_bats", result.Dropped[DropNoAtBats]),
		zap.Int("dropped_pre_salary", result.Dropped[DropPreSalary]),
		zap.Int("dropped_no_salary", result.Dropped[DropNoSalary]),
		zap.Int("issues", len(result.Issues)),
	)
	for _, issue := range result.Issues {
		if issue.Kind == IssueNegativeUBB {
			c.logger.Warn("negative unintentional walks",
				zap.String("player_id", issue.Key.PlayerID),
				zap.Int("year", issue.Key.YearID),
				zap.Int("stint", issue.Key.Stint),
				zap.String("detail", issue.Detail),
			)
		}
	}

	return result, nil
}

// indexSalaries groups salary rows with a value by (season, player), in file order.
func indexSalaries(salaries []domain.SalaryRecord) map[domain.PlayerSeasonKey][]domain.SalaryRecord {
	idx := make(map[domain.PlayerSeasonKey][]domain.SalaryRecord, len(salaries))
	for _, s := range salaries {
		if math.IsNaN(s.Salary) {
			continue
		}
		key := domain.PlayerSeasonKey{YearID: s.YearID, PlayerID: s.PlayerID}
		idx[key] = append(idx[key], s)
	}
	return idx
}

// pickSalary prefers the salary paid by the batting line's team,
// then the first row in file order.
func pickSalary(b domain.BattingRecord, candidates []domain.SalaryRecord) (domain.SalaryRecord, bool) {
	if len(candidates) == 0 {
		return domain.SalaryRecord{}, false
	}
	for _, s := range candidates {
		if s.TeamID == b.TeamID {
			return s, true
		}
	}
	return candidates[0], true
}

// ExcludePitcherSeasons drops batting lines whose (season, team, player)
// also appears in pitching. Unlike Clean, a two-way player keeps the
// batting lines of seasons and teams without a pitching line.
func ExcludePitcherSeasons(batting []domain.BattingRecord, pitching []domain.PitchingRecord) []domain.BattingRecord {
	pitched := make(map[domain.TeamSeasonKey]struct{}, len(pitching))
	for _, p := range pitching {
		pitched[p.TeamSeasonKey()] = struct{}{}
	}

	out := make([]domain.BattingRecord, 0, len(batting))
	for _, b := range batting {
		key := domain.TeamSeasonKey{YearID: b.YearID, TeamID: b.TeamID, PlayerID: b.PlayerID}
		if _, ok := pitched[key]; ok {
			continue
		}
		out = append(out, b)
	}
	return out
}
