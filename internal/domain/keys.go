package domain

// StintKey identifies one player-season-stint row in a performance table.
type StintKey struct {
	PlayerID string
	YearID   int
	Stint    int
}

// SalaryKey identifies one salary row.
type SalaryKey struct {
	YearID   int
	TeamID   string
	LeagueID string
	PlayerID string
}

// LagKey is the temporal join key: performance season, team, league and player.
// A salary row contributes its YearBasedOn as the season.
type LagKey struct {
	YearID   int
	TeamID   string
	LeagueID string
	PlayerID string
}

// PlayerSeasonKey is (season, player), used for the same-season salary join.
type PlayerSeasonKey struct {
	YearID   int
	PlayerID string
}

// TeamSeasonKey is (season, team, player), used to identify a pitcher's season with a team.
type TeamSeasonKey struct {
	YearID   int
	TeamID   string
	PlayerID string
}
