package normalization

import "salary-lab/internal/domain"

// Column is a named numeric accessor over a performance row.
// Identifier columns and salary have no Column, so they can never be converted.
type Column[R any] struct {
	Name  string
	Value func(R) float64
}

// Opportunity column names.
const (
	BattingOpportunity  = "AB"
	PitchingOpportunity = "G"
)

// RateName returns the derived column name for col.
func RateName(col string) string {
	return col + "r"
}

func intCol[R any](name string, f func(R) int) Column[R] {
	return Column[R]{Name: name, Value: func(r R) float64 { return float64(f(r)) }}
}

// BattingColumns lists the batting performance columns, including total hits (TH).
var BattingColumns = []Column[domain.BattingRecord]{
	intCol("G", func(b domain.BattingRecord) int { return b.G }),
	intCol("AB", func(b domain.BattingRecord) int { return b.AB }),
	intCol("R", func(b domain.BattingRecord) int { return b.R }),
	intCol("H", func(b domain.BattingRecord) int { return b.H }),
	intCol("H2B", func(b domain.BattingRecord) int { return b.H2B }),
	intCol("H3B", func(b domain.BattingRecord) int { return b.H3B }),
	intCol("HR", func(b domain.BattingRecord) int { return b.HR }),
	intCol("RBI", func(b domain.BattingRecord) int { return b.RBI }),
	intCol("SB", func(b domain.BattingRecord) int { return b.SB }),
	intCol("CS", func(b domain.BattingRecord) int { return b.CS }),
	intCol("BB", func(b domain.BattingRecord) int { return b.BB }),
	intCol("SO", func(b domain.BattingRecord) int { return b.SO }),
	intCol("IBB", func(b domain.BattingRecord) int { return b.IBB }),
	intCol("HBP", func(b domain.BattingRecord) int { return b.HBP }),
	intCol("SH", func(b domain.BattingRecord) int { return b.SH }),
	intCol("SF", func(b domain.BattingRecord) int { return b.SF }),
	intCol("GIDP", func(b domain.BattingRecord) int { return b.GIDP }),
	intCol("TH", domain.BattingRecord.TotalHits),
}

// PitchingColumns lists the pitching performance columns.
// ERA and BAOpp may be NaN.
var PitchingColumns = []Column[domain.PitchingRecord]{
	intCol("W", func(p domain.PitchingRecord) int { return p.W }),
	intCol("L", func(p domain.PitchingRecord) int { return p.L }),
	intCol("G", func(p domain.PitchingRecord) int { return p.G }),
	intCol("GS", func(p domain.PitchingRecord) int { return p.GS }),
	intCol("CG", func(p domain.PitchingRecord) int { return p.CG }),
	intCol("SHO", func(p domain.PitchingRecord) int { return p.SHO }),
	intCol("SV", func(p domain.PitchingRecord) int { return p.SV }),
	intCol("IPouts", func(p domain.PitchingRecord) int { return p.IPouts }),
	intCol("H", func(p domain.PitchingRecord) int { return p.H }),
	intCol("ER", func(p domain.PitchingRecord) int { return p.ER }),
	intCol("HR", func(p domain.PitchingRecord) int { return p.HR }),
	intCol("BB", func(p domain.PitchingRecord) int { return p.BB }),
	intCol("SO", func(p domain.PitchingRecord) int { return p.SO }),
	{Name: "BAOpp", Value: func(p domain.PitchingRecord) float64 { return p.BAOpp }},
	{Name: "ERA", Value: func(p domain.PitchingRecord) float64 { return p.ERA }},
	intCol("IBB", func(p domain.PitchingRecord) int { return p.IBB }),
	intCol("WP", func(p domain.PitchingRecord) int { return p.WP }),
	intCol("HBP", func(p domain.PitchingRecord) int { return p.HBP }),
	intCol("BK", func(p domain.PitchingRecord) int { return p.BK }),
	intCol("BFP", func(p domain.PitchingRecord) int { return p.BFP }),
	intCol("GF", func(p domain.PitchingRecord) int { return p.GF }),
	intCol("R", func(p domain.PitchingRecord) int { return p.R }),
	intCol("SH", func(p domain.PitchingRecord) int { return p.SH }),
	intCol("SF", func(p domain.PitchingRecord) int { return p.SF }),
	intCol("GIDP", func(p domain.PitchingRecord) int { return p.GIDP }),
}
