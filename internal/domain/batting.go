package domain

// BattingRecord is one row of the batting table.
// Corresponds to Batting.csv; null counting stats are coalesced to 0 on load.
type BattingRecord struct {
	PlayerID string
	YearID   int
	Stint    int
	TeamID   string
	LeagueID string

	G    int // games
	AB   int // at-bats
	R    int // runs
	H    int // hits
	H2B  int // doubles
	H3B  int // triples
	HR   int // home runs
	RBI  int // runs batted in
	SB   int // stolen bases
	CS   int // caught stealing
	BB   int // walks
	SO   int // strikeouts
	IBB  int // intentional walks
	HBP  int // hit by pitch
	SH   int // sacrifice hits
	SF   int // sacrifice flies
	GIDP int // grounded into double play
}

// Key returns the (playerID, yearID, stint) identity.
func (b BattingRecord) Key() StintKey {
	return StintKey{PlayerID: b.PlayerID, YearID: b.YearID, Stint: b.Stint}
}

// LagKey returns the performance-side temporal join key.
func (b BattingRecord) LagKey() LagKey {
	return LagKey{YearID: b.YearID, TeamID: b.TeamID, LeagueID: b.LeagueID, PlayerID: b.PlayerID}
}

// UBB returns unintentional walks (BB - IBB). Negative values indicate bad source data.
func (b BattingRecord) UBB() int {
	return b.BB - b.IBB
}

// Singles returns H - 2B - 3B - HR.
func (b BattingRecord) Singles() int {
	return b.H - b.H2B - b.H3B - b.HR
}

// TotalHits returns H + 2B + 3B + HR.
func (b BattingRecord) TotalHits() int {
	return b.H + b.H2B + b.H3B + b.HR
}

// CleanBattingRecord is a batting row that passed the cleaning stage,
// joined with the salary paid in the same season.
type CleanBattingRecord struct {
	BattingRecord
	Salary float64
}
