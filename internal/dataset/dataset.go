// Package dataset holds the loaded source tables as immutable, indexed snapshots.
package dataset

import (
	"fmt"
	"slices"

	"salary-lab/internal/domain"
)

// Dataset is the set of source tables for one run.
// Accessors return copies; callers cannot mutate the snapshot.
type Dataset struct {
	players  []domain.Player
	batting  []domain.BattingRecord
	pitching []domain.PitchingRecord
	salaries []domain.SalaryRecord
	factors  []domain.WeightingFactor

	playerIndex map[string]int
}

// Tables groups raw tables for New.
type Tables struct {
	Players  []domain.Player
	Batting  []domain.BattingRecord
	Pitching []domain.PitchingRecord
	Salaries []domain.SalaryRecord
	Factors  []domain.WeightingFactor
}

// New validates table identities and builds a Dataset.
// Returns ErrDuplicateKey if any table repeats an identity,
// ErrInvalidInput if a row has an empty player id.
func New(t Tables) (*Dataset, error) {
	playerIndex := make(map[string]int, len(t.Players))
	for i, p := range t.Players {
		if p.PlayerID == "" {
			return nil, fmt.Errorf("players row %d: %w: empty playerID", i+1, ErrInvalidInput)
		}
		if _, exists := playerIndex[p.PlayerID]; exists {
			return nil, fmt.Errorf("players: %w: %s", ErrDuplicateKey, p.PlayerID)
		}
		playerIndex[p.PlayerID] = i
	}

	if err := checkStintKeys("batting", t.Batting, domain.BattingRecord.Key); err != nil {
		return nil, err
	}
	if err := checkStintKeys("pitching", t.Pitching, domain.PitchingRecord.Key); err != nil {
		return nil, err
	}

	salaryKeys := make(map[domain.SalaryKey]struct{}, len(t.Salaries))
	for i, s := range t.Salaries {
		if s.PlayerID == "" {
			return nil, fmt.Errorf("salaries row %d: %w: empty playerID", i+1, ErrInvalidInput)
		}
		key := s.Key()
		if _, exists := salaryKeys[key]; exists {
			return nil, fmt.Errorf("salaries: %w: %+v", ErrDuplicateKey, key)
		}
		salaryKeys[key] = struct{}{}
	}

	seasons := make(map[int]struct{}, len(t.Factors))
	for _, f := range t.Factors {
		if _, exists := seasons[f.Season]; exists {
			return nil, fmt.Errorf("factors: %w: season %d", ErrDuplicateKey, f.Season)
		}
		seasons[f.Season] = struct{}{}
	}

	return &Dataset{
		players:     slices.Clone(t.Players),
		batting:     slices.Clone(t.Batting),
		pitching:    slices.Clone(t.Pitching),
		salaries:    slices.Clone(t.Salaries),
		factors:     slices.Clone(t.Factors),
		playerIndex: playerIndex,
	}, nil
}

func checkStintKeys[R any](table string, rows []R, key func(R) domain.StintKey) error {
	seen := make(map[domain.StintKey]struct{}, len(rows))
	for i, r := range rows {
		k := key(r)
		if k.PlayerID == "" {
			return fmt.Errorf("%s row %d: %w: empty playerID", table, i+1, ErrInvalidInput)
		}
		if _, exists := seen[k]; exists {
			return fmt.Errorf("%s: %w: %+v", table, ErrDuplicateKey, k)
		}
		seen[k] = struct{}{}
	}
	return nil
}

// Players returns the biographical table.
func (d *Dataset) Players() []domain.Player { return slices.Clone(d.players) }

// Batting returns the batting table.
func (d *Dataset) Batting() []domain.BattingRecord { return slices.Clone(d.batting) }

// Pitching returns the pitching table.
func (d *Dataset) Pitching() []domain.PitchingRecord { return slices.Clone(d.pitching) }

// Salaries returns the salary table.
func (d *Dataset) Salaries() []domain.SalaryRecord { return slices.Clone(d.salaries) }

// Factors returns the weighting-factor table.
func (d *Dataset) Factors() []domain.WeightingFactor { return slices.Clone(d.factors) }

// Player returns the biographical row for playerID. Returns ErrNotFound if absent.
func (d *Dataset) Player(playerID string) (domain.Player, error) {
	i, ok := d.playerIndex[playerID]
	if !ok {
		return domain.Player{}, fmt.Errorf("player %s: %w", playerID, ErrNotFound)
	}
	return d.players[i], nil
}

// Counts reports row counts per table, keyed by table name.
func (d *Dataset) Counts() map[string]int {
	return map[string]int{
		TablePlayers:  len(d.players),
		TableBatting:  len(d.batting),
		TablePitching: len(d.pitching),
		TableSalaries: len(d.salaries),
		TableFactors:  len(d.factors),
	}
}

// Table names.
const (
	TablePlayers  = "players"
	TableBatting  = "batting"
	TablePitching = "pitching"
	TableSalaries = "salaries"
	TableFactors  = "factors"
)

// TableNames lists tables in load order.
var TableNames = []string{TablePlayers, TableBatting, TablePitching, TableSalaries, TableFactors}
