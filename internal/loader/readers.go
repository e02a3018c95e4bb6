package loader

import (
	"io"

	"salary-lab/internal/domain"
)

// Required columns per table.
var (
	PlayerColumns = []string{"playerID", "birthCountry", "weight", "height"}

	BattingColumns = []string{
		"playerID", "yearID", "stint", "teamID", "lgID",
		"G", "AB", "H", "2B", "3B", "HR", "BB", "IBB", "HBP", "SF",
	}

	PitchingColumns = []string{"playerID", "yearID", "teamID", "lgID", "G", "GS", "W", "L"}

	SalaryColumns = []string{"yearID", "teamID", "lgID", "playerID", "salary"}

	FactorColumns = []string{"Season", "wBB", "wHBP", "w1B", "w2B", "w3B", "wHR"}
)

// ReadPlayers parses the biographical table.
func ReadPlayers(r io.Reader, name string) ([]domain.Player, error) {
	t, err := readTable(r, name, PlayerColumns)
	if err != nil {
		return nil, err
	}

	players := make([]domain.Player, 0, len(t.rows))
	for _, rw := range t.rows {
		f := fieldReader{r: rw}
		p := domain.Player{
			PlayerID:     f.str("playerID"),
			BirthCountry: f.str("birthCountry"),
			Weight:       f.count("weight"),
			Height:       f.count("height"),
			NameFirst:    f.str("nameFirst"),
			NameLast:     f.str("nameLast"),
			NameGiven:    f.str("nameGiven"),
		}
		if f.err != nil {
			return nil, f.err
		}
		players = append(players, p)
	}
	return players, nil
}

// ReadBatting parses the batting table. Null counting stats become 0.
func ReadBatting(r io.Reader, name string) ([]domain.BattingRecord, error) {
	t, err := readTable(r, name, BattingColumns)
	if err != nil {
		return nil, err
	}

	records := make([]domain.BattingRecord, 0, len(t.rows))
	for _, rw := range t.rows {
		f := fieldReader{r: rw}
		b := domain.BattingRecord{
			PlayerID: f.str("playerID"),
			YearID:   f.requiredInt("yearID"),
			Stint:    f.requiredInt("stint"),
			TeamID:   f.str("teamID"),
			LeagueID: f.str("lgID"),
			G:        f.count("G"),
			AB:       f.count("AB"),
			R:        f.count("R"),
			H:        f.count("H"),
			H2B:      f.count("2B"),
			H3B:      f.count("3B"),
			HR:       f.count("HR"),
			RBI:      f.count("RBI"),
			SB:       f.count("SB"),
			CS:       f.count("CS"),
			BB:       f.count("BB"),
			SO:       f.count("SO"),
			IBB:      f.count("IBB"),
			HBP:      f.count("HBP"),
			SH:       f.count("SH"),
			SF:       f.count("SF"),
			GIDP:     f.count("GIDP"),
		}
		if f.err != nil {
			return nil, f.err
		}
		records = append(records, b)
	}
	return records, nil
}

// ReadPitching parses the pitching table. When the file has no stint
// column, stints are numbered in file order per (playerID, yearID).
func ReadPitching(r io.Reader, name string) ([]domain.PitchingRecord, error) {
	t, err := readTable(r, name, PitchingColumns)
	if err != nil {
		return nil, err
	}
	hasStint := t.has("stint")
	stints := make(map[domain.PlayerSeasonKey]int)

	records := make([]domain.PitchingRecord, 0, len(t.rows))
	for _, rw := range t.rows {
		f := fieldReader{r: rw}
		p := domain.PitchingRecord{
			PlayerID: f.str("playerID"),
			YearID:   f.requiredInt("yearID"),
			TeamID:   f.str("teamID"),
			LeagueID: f.str("lgID"),
			W:        f.count("W"),
			L:        f.count("L"),
			G:        f.count("G"),
			GS:       f.count("GS"),
			CG:       f.count("CG"),
			SHO:      f.count("SHO"),
			SV:       f.count("SV"),
			IPouts:   f.count("IPouts"),
			H:        f.count("H"),
			ER:       f.count("ER"),
			HR:       f.count("HR"),
			BB:       f.count("BB"),
			SO:       f.count("SO"),
			BAOpp:    f.ratio("BAOpp"),
			ERA:      f.ratio("ERA"),
			IBB:      f.count("IBB"),
			WP:       f.count("WP"),
			HBP:      f.count("HBP"),
			BK:       f.count("BK"),
			BFP:      f.count("BFP"),
			GF:       f.count("GF"),
			R:        f.count("R"),
			SH:       f.count("SH"),
			SF:       f.count("SF"),
			GIDP:     f.count("GIDP"),
		}
		if hasStint {
			p.Stint = f.requiredInt("stint")
		} else {
			key := domain.PlayerSeasonKey{YearID: p.YearID, PlayerID: p.PlayerID}
			stints[key]++
			p.Stint = stints[key]
		}
		if f.err != nil {
			return nil, f.err
		}
		records = append(records, p)
	}
	return records, nil
}

// ReadSalaries parses the salary table. An empty salary cell is kept as NaN
// so downstream joins can drop it explicitly.
func ReadSalaries(r io.Reader, name string) ([]domain.SalaryRecord, error) {
	t, err := readTable(r, name, SalaryColumns)
	if err != nil {
		return nil, err
	}

	records := make([]domain.SalaryRecord, 0, len(t.rows))
	for _, rw := range t.rows {
		f := fieldReader{r: rw}
		s := domain.SalaryRecord{
			YearID:   f.requiredInt("yearID"),
			TeamID:   f.str("teamID"),
			LeagueID: f.str("lgID"),
			PlayerID: f.str("playerID"),
			Salary:   f.ratio("salary"),
		}
		if f.err != nil {
			return nil, f.err
		}
		records = append(records, s)
	}
	return records, nil
}

// ReadFactors parses the season weighting-factor table.
// Every coefficient must be present.
func ReadFactors(r io.Reader, name string) ([]domain.WeightingFactor, error) {
	t, err := readTable(r, name, FactorColumns)
	if err != nil {
		return nil, err
	}

	factors := make([]domain.WeightingFactor, 0, len(t.rows))
	for _, rw := range t.rows {
		f := fieldReader{r: rw}
		wf := domain.WeightingFactor{
			Season: f.requiredInt("Season"),
			WBB:    f.required("wBB"),
			WHBP:   f.required("wHBP"),
			W1B:    f.required("w1B"),
			W2B:    f.required("w2B"),
			W3B:    f.required("w3B"),
			WHR:    f.required("wHR"),
		}
		if f.err != nil {
			return nil, f.err
		}
		factors = append(factors, wf)
	}
	return factors, nil
}
