package domain

// PitchingRecord is one row of the pitching table.
// Counting stats are coalesced to 0 on load; ERA and BAOpp are ratios
// and stay NaN when the source cell is empty.
type PitchingRecord struct {
	PlayerID string
	YearID   int
	Stint    int
	TeamID   string
	LeagueID string

	W      int
	L      int
	G      int
	GS     int
	CG     int
	SHO    int
	SV     int
	IPouts int
	H      int
	ER     int
	HR     int
	BB     int
	SO     int
	BAOpp  float64
	ERA    float64
	IBB    int
	WP     int
	HBP    int
	BK     int
	BFP    int
	GF     int
	R      int
	SH     int
	SF     int
	GIDP   int
}

// Key returns the (playerID, yearID, stint) identity.
func (p PitchingRecord) Key() StintKey {
	return StintKey{PlayerID: p.PlayerID, YearID: p.YearID, Stint: p.Stint}
}

// LagKey returns the performance-side temporal join key.
func (p PitchingRecord) LagKey() LagKey {
	return LagKey{YearID: p.YearID, TeamID: p.TeamID, LeagueID: p.LeagueID, PlayerID: p.PlayerID}
}

// TeamSeasonKey returns (yearID, teamID, playerID).
func (p PitchingRecord) TeamSeasonKey() TeamSeasonKey {
	return TeamSeasonKey{YearID: p.YearID, TeamID: p.TeamID, PlayerID: p.PlayerID}
}
