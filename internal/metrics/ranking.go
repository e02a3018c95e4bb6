package metrics

import (
	"math"
	"sort"

	"salary-lab/internal/dataset"
	"salary-lab/internal/domain"
)

// PlayerDirectory resolves biographical rows by player id.
type PlayerDirectory interface {
	Player(playerID string) (domain.Player, error)
}

type rankKey struct {
	season int
	role   domain.Role
}

// TopSalaries ranks salaries within each (season, role) group and keeps the first n.
// Sorting is stable: equal salaries keep their input order. n <= 0 keeps every row.
// Groups are returned by season ascending, pitchers before batters.
func TopSalaries(salaries []domain.SalaryRecord, pitchers dataset.PlayerSet, players PlayerDirectory, n int) []domain.RankedSalary {
	groups := make(map[rankKey][]domain.SalaryRecord)
	for _, s := range salaries {
		if math.IsNaN(s.Salary) {
			continue
		}
		k := rankKey{season: s.YearID, role: pitchers.RoleOf(s.PlayerID)}
		groups[k] = append(groups[k], s)
	}

	seasons := make([]int, 0)
	seen := make(map[int]struct{})
	for k := range groups {
		if _, ok := seen[k.season]; !ok {
			seen[k.season] = struct{}{}
			seasons = append(seasons, k.season)
		}
	}
	sort.Ints(seasons)

	var out []domain.RankedSalary
	for _, season := range seasons {
		for _, role := range domain.Roles {
			group := groups[rankKey{season: season, role: role}]
			if len(group) == 0 {
				continue
			}
			out = append(out, rankGroup(season, role, group, players, n)...)
		}
	}
	return out
}

func rankGroup(season int, role domain.Role, group []domain.SalaryRecord, players PlayerDirectory, n int) []domain.RankedSalary {
	sorted := make([]domain.SalaryRecord, len(group))
	copy(sorted, group)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Salary > sorted[j].Salary
	})

	if n > 0 && len(sorted) > n {
		sorted = sorted[:n]
	}

	out := make([]domain.RankedSalary, len(sorted))
	for i, s := range sorted {
		out[i] = domain.RankedSalary{
			Season:   season,
			Role:     role,
			Rank:     i + 1,
			PlayerID: s.PlayerID,
			FullName: fullName(players, s.PlayerID),
			TeamID:   s.TeamID,
			Salary:   s.Salary,
		}
	}
	return out
}

func fullName(players PlayerDirectory, playerID string) string {
	if players == nil {
		return playerID
	}
	p, err := players.Player(playerID)
	if err != nil {
		return playerID
	}
	return p.FullName()
}
