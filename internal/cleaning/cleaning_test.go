package cleaning

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"salary-lab/internal/domain"
)

func bat(playerID string, year, stint int, team string, ab int) domain.BattingRecord {
	return domain.BattingRecord{
		PlayerID: playerID, YearID: year, Stint: stint, TeamID: team, LeagueID: "AL",
		G: 100, AB: ab, H: ab / 4, BB: 30, IBB: 3, HBP: 2, SF: 3,
	}
}

func sal(playerID string, year int, team string, amount float64) domain.SalaryRecord {
	return domain.SalaryRecord{YearID: year, TeamID: team, LeagueID: "AL", PlayerID: playerID, Salary: amount}
}

func pitchers() []domain.PitchingRecord {
	return []domain.PitchingRecord{
		{PlayerID: "pit01", YearID: 2000, Stint: 1, TeamID: "BOS", LeagueID: "AL", G: 30},
	}
}

func TestClean_EmptyPitching(t *testing.T) {
	_, err := New(0).Clean([]domain.BattingRecord{bat("a", 2000, 1, "BOS", 100)}, nil, nil)
	assert.True(t, errors.Is(err, ErrEmptyPitching))
}

func TestClean_Filters(t *testing.T) {
	batting := []domain.BattingRecord{
		bat("a", 2000, 1, "BOS", 500),    // kept
		bat("pit01", 2000, 1, "BOS", 10), // pitcher
		bat("b", 2000, 1, "BOS", 0),      // no at-bats
		bat("c", 1984, 1, "BOS", 400),    // before salary data
		bat("d", 2000, 1, "BOS", 300),    // no salary row
		bat("e", 2000, 1, "BOS", 300),    // salary cell empty
	}
	salaries := []domain.SalaryRecord{
		sal("a", 2000, "BOS", 1_000_000),
		sal("pit01", 2000, "BOS", 2_000_000),
		sal("b", 2000, "BOS", 500_000),
		sal("c", 1984, "BOS", 500_000),
		sal("e", 2000, "BOS", math.NaN()),
	}

	res, err := New(1985).Clean(batting, pitchers(), salaries)
	require.NoError(t, err)

	require.Len(t, res.Rows, 1)
	assert.Equal(t, "a", res.Rows[0].PlayerID)
	assert.Equal(t, 1_000_000.0, res.Rows[0].Salary)

	assert.Equal(t, 6, res.Input)
	assert.Equal(t, 1, res.Dropped[DropPitcher])
	assert.Equal(t, 1, res.Dropped[DropNoAtBats])
	assert.Equal(t, 1, res.Dropped[DropPreSalary])
	assert.Equal(t, 2, res.Dropped[DropNoSalary])
}

func TestClean_ZeroAtBatsAlwaysExcluded(t *testing.T) {
	b := domain.BattingRecord{
		PlayerID: "z", YearID: 2010, Stint: 1, TeamID: "NYA", LeagueID: "AL",
		G: 162, AB: 0, H: 200, HR: 60, BB: 100,
	}
	salaries := []domain.SalaryRecord{sal("z", 2010, "NYA", 30_000_000)}

	res, err := New(0).Clean([]domain.BattingRecord{b}, pitchers(), salaries)
	require.NoError(t, err)
	assert.Empty(t, res.Rows)
	assert.Equal(t, 1, res.Dropped[DropNoAtBats])
}

func TestClean_Idempotent(t *testing.T) {
	batting := []domain.BattingRecord{
		bat("a", 2000, 1, "BOS", 500),
		bat("a", 2000, 2, "NYA", 120),
		bat("b", 2001, 1, "BOS", 0),
		bat("c", 1990, 1, "BOS", 400),
		bat("pit01", 2000, 1, "BOS", 5),
	}
	salaries := []domain.SalaryRecord{
		sal("a", 2000, "BOS", 1_000_000),
		sal("c", 1990, "BOS", 200_000),
	}

	cleaner := New(0)
	first, err := cleaner.Clean(batting, pitchers(), salaries)
	require.NoError(t, err)

	second, err := cleaner.Clean(first.Batting(), pitchers(), salaries)
	require.NoError(t, err)

	assert.Equal(t, first.Rows, second.Rows)
	for _, reason := range DropReasons {
		assert.Zero(t, second.Dropped[reason], reason)
	}
}

func TestClean_DoesNotMutateInput(t *testing.T) {
	batting := []domain.BattingRecord{bat("a", 2000, 1, "BOS", 500), bat("b", 2000, 1, "BOS", 0)}
	before := append([]domain.BattingRecord(nil), batting...)

	_, err := New(0).Clean(batting, pitchers(), []domain.SalaryRecord{sal("a", 2000, "BOS", 1)})
	require.NoError(t, err)
	assert.Equal(t, before, batting)
}

func TestClean_NegativeUBBSurfaced(t *testing.T) {
	b := bat("a", 2000, 1, "BOS", 500)
	b.BB, b.IBB = 2, 5

	core, logs := observer.New(zapcore.WarnLevel)
	cleaner := New(0).WithLogger(zap.New(core))

	res, err := cleaner.Clean([]domain.BattingRecord{b}, pitchers(), []domain.SalaryRecord{sal("a", 2000, "BOS", 1)})
	require.NoError(t, err)

	// the line is kept and the value is not clamped
	require.Len(t, res.Rows, 1)
	assert.Equal(t, -3, res.Rows[0].UBB())

	require.Len(t, res.Issues, 1)
	assert.Equal(t, IssueNegativeUBB, res.Issues[0].Kind)
	assert.Equal(t, 1, logs.FilterMessage("negative unintentional walks").Len())
}

func TestClean_SeveralSalariesPreferTeam(t *testing.T) {
	batting := []domain.BattingRecord{
		bat("a", 2000, 1, "BOS", 200),
		bat("a", 2000, 2, "NYA", 300),
		bat("a", 2000, 3, "SEA", 50),
	}
	salaries := []domain.SalaryRecord{
		sal("a", 2000, "BOS", 1_000),
		sal("a", 2000, "NYA", 2_000),
	}

	res, err := New(0).Clean(batting, pitchers(), salaries)
	require.NoError(t, err)
	require.Len(t, res.Rows, 3)

	assert.Equal(t, 1_000.0, res.Rows[0].Salary)
	assert.Equal(t, 2_000.0, res.Rows[1].Salary)
	// no team match: first row in file order
	assert.Equal(t, 1_000.0, res.Rows[2].Salary)

	ambiguous := 0
	for _, issue := range res.Issues {
		if issue.Kind == IssueAmbiguousSalary {
			ambiguous++
		}
	}
	assert.Equal(t, 3, ambiguous)
}

func TestExcludePitcherSeasons(t *testing.T) {
	pitching := []domain.PitchingRecord{
		{PlayerID: "two", YearID: 2013, TeamID: "LAA"},
	}
	batting := []domain.BattingRecord{
		bat("two", 2013, 1, "LAA", 100), // pitched for this team this season
		bat("two", 2014, 1, "LAA", 400), // did not pitch in 2014
		bat("pos", 2013, 1, "LAA", 500),
	}

	out := ExcludePitcherSeasons(batting, pitching)
	require.Len(t, out, 2)
	assert.Equal(t, 2014, out[0].YearID)
	assert.Equal(t, "pos", out[1].PlayerID)
}
