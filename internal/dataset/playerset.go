package dataset

import "salary-lab/internal/domain"

// PlayerSet is a set of player identifiers.
type PlayerSet map[string]struct{}

// Contains reports whether playerID is in the set.
func (s PlayerSet) Contains(playerID string) bool {
	_, ok := s[playerID]
	return ok
}

// PitcherIDs returns every player id that appears in the pitching table.
func PitcherIDs(pitching []domain.PitchingRecord) PlayerSet {
	set := make(PlayerSet, len(pitching))
	for _, p := range pitching {
		set[p.PlayerID] = struct{}{}
	}
	return set
}

// RoleOf classifies playerID using the pitcher set.
func (s PlayerSet) RoleOf(playerID string) domain.Role {
	if s.Contains(playerID) {
		return domain.RolePitcher
	}
	return domain.RoleBatter
}
