package domain

// SalaryRecord is one row of the salary table.
type SalaryRecord struct {
	YearID   int
	TeamID   string
	LeagueID string
	PlayerID string
	Salary   float64
}

// Key returns the salary row identity.
func (s SalaryRecord) Key() SalaryKey {
	return SalaryKey{YearID: s.YearID, TeamID: s.TeamID, LeagueID: s.LeagueID, PlayerID: s.PlayerID}
}

// YearBasedOn is the performance season this salary is assumed to pay for.
func (s SalaryRecord) YearBasedOn() int {
	return s.YearID - 1
}

// LagKey returns the salary-side temporal join key (season = YearBasedOn).
func (s SalaryRecord) LagKey() LagKey {
	return LagKey{YearID: s.YearBasedOn(), TeamID: s.TeamID, LeagueID: s.LeagueID, PlayerID: s.PlayerID}
}
