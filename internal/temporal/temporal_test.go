package temporal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salary-lab/internal/domain"
)

func pit(player string, year int, team, league string) domain.PitchingRecord {
	return domain.PitchingRecord{PlayerID: player, YearID: year, Stint: 1, TeamID: team, LeagueID: league, G: 30}
}

func sal(player string, year int, team, league string, amount float64) domain.SalaryRecord {
	return domain.SalaryRecord{PlayerID: player, YearID: year, TeamID: team, LeagueID: league, Salary: amount}
}

func TestJoin_OneSeasonLag(t *testing.T) {
	perf := []domain.PitchingRecord{
		pit("a", 2013, "BOS", "AL"),
		pit("a", 2014, "BOS", "AL"),
	}
	salaries := []domain.SalaryRecord{sal("a", 2014, "BOS", "AL", 1_000_000)}

	res := Join(perf, salaries)
	require.Len(t, res.Rows, 1)

	r := res.Rows[0]
	assert.Equal(t, 2013, r.PerformanceYear)
	assert.Equal(t, 2014, r.SalaryYear)
	assert.Equal(t, 2013, r.Record.YearID)
	assert.Equal(t, 1_000_000.0, r.Salary)
}

func TestJoin_TeamChangeDoesNotJoin(t *testing.T) {
	// 2013 with NYA, paid by BOS in 2014: not joined
	perf := []domain.PitchingRecord{pit("a", 2013, "NYA", "AL")}
	salaries := []domain.SalaryRecord{sal("a", 2014, "BOS", "AL", 1_000_000)}

	res := Join(perf, salaries)
	assert.Empty(t, res.Rows)
	assert.Equal(t, 1, res.Coverage.UnmatchedPerformance)
	assert.Equal(t, 1, res.Coverage.UnmatchedSalaries)
}

func TestJoin_LeagueChangeDoesNotJoin(t *testing.T) {
	perf := []domain.PitchingRecord{pit("a", 2013, "HOU", "NL")}
	salaries := []domain.SalaryRecord{sal("a", 2014, "HOU", "AL", 500_000)}

	res := Join(perf, salaries)
	assert.Empty(t, res.Rows)
}

func TestJoin_NullSalaryDoesNotJoin(t *testing.T) {
	perf := []domain.PitchingRecord{pit("a", 2013, "BOS", "AL")}
	salaries := []domain.SalaryRecord{sal("a", 2014, "BOS", "AL", math.NaN())}

	res := Join(perf, salaries)
	assert.Empty(t, res.Rows)
	assert.Equal(t, 1, res.Coverage.NullSalaries)
	assert.Equal(t, 0, res.Coverage.UnmatchedSalaries)
}

// Every salary row has a joined partner iff a performance row exists
// one season earlier with the same team, league and player.
func TestJoin_CoverageIff(t *testing.T) {
	perf := []domain.BattingRecord{
		{PlayerID: "a", YearID: 2012, Stint: 1, TeamID: "BOS", LeagueID: "AL"},
		{PlayerID: "a", YearID: 2013, Stint: 1, TeamID: "BOS", LeagueID: "AL"},
		{PlayerID: "b", YearID: 2013, Stint: 1, TeamID: "SEA", LeagueID: "AL"},
		{PlayerID: "b", YearID: 2013, Stint: 2, TeamID: "SDN", LeagueID: "NL"},
		{PlayerID: "c", YearID: 2014, Stint: 1, TeamID: "TEX", LeagueID: "AL"},
	}
	salaries := []domain.SalaryRecord{
		sal("a", 2013, "BOS", "AL", 1),
		sal("a", 2014, "BOS", "AL", 2),
		sal("b", 2014, "SDN", "NL", 3),
		sal("b", 2014, "SEA", "NL", 4),
		sal("c", 2014, "TEX", "AL", 5),
		sal("d", 2014, "TEX", "AL", 6),
	}

	res := Join(perf, salaries)

	joined := make(map[domain.SalaryKey]bool)
	for _, r := range res.Rows {
		assert.Equal(t, r.PerformanceYear+1, r.SalaryYear)
		k := domain.SalaryKey{YearID: r.SalaryYear, TeamID: r.Record.TeamID, LeagueID: r.Record.LeagueID, PlayerID: r.Record.PlayerID}
		joined[k] = true
	}

	for _, s := range salaries {
		exists := false
		for _, p := range perf {
			if p.YearID == s.YearID-1 && p.TeamID == s.TeamID && p.LeagueID == s.LeagueID && p.PlayerID == s.PlayerID {
				exists = true
			}
		}
		assert.Equal(t, exists, joined[s.Key()], "salary %+v", s.Key())
	}

	assert.Equal(t, 3, res.Coverage.MatchedPerformance)
	assert.Equal(t, 3, res.Coverage.MatchedSalaries)
	assert.Equal(t, 3, res.Coverage.UnmatchedSalaries)
}

func TestBySalaryYear(t *testing.T) {
	perf := []domain.PitchingRecord{
		pit("a", 2013, "BOS", "AL"),
		pit("b", 2012, "BOS", "AL"),
		pit("c", 2013, "BOS", "AL"),
	}
	salaries := []domain.SalaryRecord{
		sal("a", 2014, "BOS", "AL", 1),
		sal("b", 2013, "BOS", "AL", 2),
		sal("c", 2014, "BOS", "AL", 3),
	}

	res := Join(perf, salaries)
	assert.Equal(t, []int{2013, 2014}, SalaryYears(res.Rows))

	groups := BySalaryYear(res.Rows)
	require.Len(t, groups[2014], 2)
	assert.Equal(t, "a", groups[2014][0].Record.PlayerID)
	assert.Equal(t, "c", groups[2014][1].Record.PlayerID)
	assert.Len(t, Records(groups[2013]), 1)
}
