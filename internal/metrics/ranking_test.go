package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salary-lab/internal/dataset"
	"salary-lab/internal/domain"
)

func TestTopSalaries_StableTies(t *testing.T) {
	salaries := []domain.SalaryRecord{
		{YearID: 2014, TeamID: "NYA", PlayerID: "b1", Salary: 100},
		{YearID: 2014, TeamID: "BOS", PlayerID: "b2", Salary: 300},
		{YearID: 2014, TeamID: "SEA", PlayerID: "b3", Salary: 100},
		{YearID: 2014, TeamID: "TEX", PlayerID: "b4", Salary: 100},
		{YearID: 2014, TeamID: "BOS", PlayerID: "p1", Salary: 50},
	}
	pitchers := dataset.PlayerSet{"p1": {}}

	ranked := TopSalaries(salaries, pitchers, nil, 3)
	require.Len(t, ranked, 4)

	// pitchers first within the season
	assert.Equal(t, domain.RolePitcher, ranked[0].Role)
	assert.Equal(t, "p1", ranked[0].PlayerID)
	assert.Equal(t, 1, ranked[0].Rank)

	batters := ranked[1:]
	ids := []string{batters[0].PlayerID, batters[1].PlayerID, batters[2].PlayerID}
	assert.Equal(t, []string{"b2", "b1", "b3"}, ids)
	assert.Equal(t, []int{1, 2, 3}, []int{batters[0].Rank, batters[1].Rank, batters[2].Rank})
}

func TestTopSalaries_FullName(t *testing.T) {
	ds, err := dataset.New(dataset.Tables{
		Players: []domain.Player{{PlayerID: "a", NameGiven: "Clayton Edward", NameLast: "Kershaw"}},
	})
	require.NoError(t, err)

	salaries := []domain.SalaryRecord{
		{YearID: 2014, TeamID: "LAN", PlayerID: "a", Salary: 4_000_000},
		{YearID: 2014, TeamID: "LAN", PlayerID: "ghost", Salary: 1},
	}

	ranked := TopSalaries(salaries, dataset.PlayerSet{}, ds, 0)
	require.Len(t, ranked, 2)
	assert.Equal(t, "Clayton Edward Kershaw", ranked[0].FullName)
	assert.Equal(t, "ghost", ranked[1].FullName)
}

func TestBirthCountries(t *testing.T) {
	players := []domain.Player{
		{PlayerID: "a", BirthCountry: "USA"},
		{PlayerID: "b", BirthCountry: "D.R."},
		{PlayerID: "c", BirthCountry: "USA"},
		{PlayerID: "d"},
	}

	counts := BirthCountries(players)
	assert.Equal(t, []CountryCount{{Country: "D.R.", Players: 1}, {Country: "USA", Players: 2}}, counts)
}

func TestBodyProfile(t *testing.T) {
	players := []domain.Player{
		{PlayerID: "a", Weight: 200, Height: 74},
		{PlayerID: "b", Weight: 180, Height: 72},
		{PlayerID: "c", Weight: 200, Height: 74},
		{PlayerID: "d", Weight: 0, Height: 70},
	}

	bodies := BodyProfile(players)
	assert.Equal(t, []BodyCount{
		{Weight: 180, Height: 72, Players: 1},
		{Weight: 200, Height: 74, Players: 2},
	}, bodies)
}
