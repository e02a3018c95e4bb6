package pipeline

import (
	"encoding/csv"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"

	"salary-lab/internal/config"
)

// Fixture dimensions. Each salary season has more joined rows than
// regression candidates, so every season can be fitted.
const (
	FixtureBatters           = 40
	FixturePitchers          = 60
	FixtureFirstSeason       = 1989
	FixtureLastSeason        = 1990
	FixtureCorrelationSeason = FixtureLastSeason + 1
)

var fixtureTeams = []string{"NYA", "BOS", "DET", "CHA"}

// WriteFixtures writes a deterministic synthetic dataset into dir using the
// file names from in. Besides regular players it contains one line of each
// kind the cleaning stage drops, one negative-uBB line and one null salary.
func WriteFixtures(dir string, in config.InputConfig) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	fx := buildFixtures()
	files := []struct {
		name   string
		header []string
		rows   [][]string
	}{
		{in.Players, playerHeader, fx.players},
		{in.Batting, battingHeader, fx.batting},
		{in.Pitching, pitchingHeader, fx.pitching},
		{in.Salaries, salaryHeader, fx.salaries},
		{in.Factors, factorHeader, fx.factors},
	}
	for _, f := range files {
		if err := writeCSVFile(filepath.Join(dir, f.name), f.header, f.rows); err != nil {
			return err
		}
	}
	return nil
}

var (
	playerHeader   = []string{"playerID", "birthCountry", "weight", "height", "nameFirst", "nameLast", "nameGiven"}
	battingHeader  = []string{"playerID", "yearID", "stint", "teamID", "lgID", "G", "AB", "R", "H", "2B", "3B", "HR", "RBI", "SB", "CS", "BB", "SO", "IBB", "HBP", "SH", "SF", "GIDP"}
	pitchingHeader = []string{"playerID", "yearID", "stint", "teamID", "lgID", "W", "L", "G", "GS", "CG", "SHO", "SV", "IPouts", "H", "ER", "HR", "BB", "SO", "BAOpp", "ERA", "IBB", "WP", "HBP", "BK", "BFP", "GF", "R", "SH", "SF", "GIDP"}
	salaryHeader   = []string{"yearID", "teamID", "lgID", "playerID", "salary"}
	factorHeader   = []string{"Season", "wBB", "wHBP", "w1B", "w2B", "w3B", "wHR"}
)

type fixtureSet struct {
	players  [][]string
	batting  [][]string
	pitching [][]string
	salaries [][]string
	factors  [][]string
}

type fixtureRand struct{ r *rand.Rand }

func (f fixtureRand) between(lo, hi int) int {
	return lo + f.r.IntN(hi-lo+1)
}

func itoa(v int) string { return strconv.Itoa(v) }

func buildFixtures() fixtureSet {
	rng := fixtureRand{r: rand.New(rand.NewPCG(1985, 2014))}
	var fx fixtureSet
	countries := []string{"USA", "USA", "USA", "D.R.", "Venezuela", "CAN"}

	addPlayer := func(id, first, last string, i int) {
		fx.players = append(fx.players, []string{
			id, countries[i%len(countries)],
			itoa(rng.between(170, 240)), itoa(rng.between(68, 78)),
			first, last, first,
		})
	}
	addSalary := func(season int, team, id string, amount int) {
		fx.salaries = append(fx.salaries, []string{itoa(season), team, "AL", id, itoa(amount)})
	}

	for i := 1; i <= FixtureBatters; i++ {
		id := fmt.Sprintf("bat%03d01", i)
		team := fixtureTeams[i%len(fixtureTeams)]
		addPlayer(id, "Batter", fmt.Sprintf("Number%d", i), i)

		// Season before any performance in the fixture.
		if i == FixtureBatters {
			fx.salaries = append(fx.salaries, []string{itoa(FixtureFirstSeason), team, "AL", id, ""})
		} else {
			addSalary(FixtureFirstSeason, team, id, 100000+rng.between(0, 2000000))
		}

		for season := FixtureFirstSeason; season <= FixtureLastSeason; season++ {
			ab := rng.between(150, 600)
			h := ab * rng.between(22, 32) / 100
			h2b := h * rng.between(15, 25) / 100
			h3b := rng.between(0, 8)
			hr := rng.between(0, h/4)
			bb := rng.between(10, 100)
			ibb := rng.between(0, 10)
			if i == 2 && season == FixtureLastSeason {
				bb, ibb = 1, 3
			}
			fx.batting = append(fx.batting, []string{
				id, itoa(season), "1", team, "AL",
				itoa(rng.between(40, 162)), itoa(ab), itoa(rng.between(20, 120)), itoa(h),
				itoa(h2b), itoa(h3b), itoa(hr), itoa(rng.between(15, 130)),
				itoa(rng.between(0, 40)), itoa(rng.between(0, 15)), itoa(bb),
				itoa(rng.between(30, 180)), itoa(ibb), itoa(rng.between(0, 12)),
				itoa(rng.between(0, 10)), itoa(rng.between(0, 10)), itoa(rng.between(0, 25)),
			})
			// Next season's salary tracks this season's hits and home runs.
			addSalary(season+1, team, id, 100000+9000*h+40000*hr+rng.between(0, 300000))
		}
	}

	for i := 1; i <= FixturePitchers; i++ {
		id := fmt.Sprintf("pit%03d01", i)
		team := fixtureTeams[i%len(fixtureTeams)]
		addPlayer(id, "Pitcher", fmt.Sprintf("Number%d", i), i)
		addSalary(FixtureFirstSeason, team, id, 150000+rng.between(0, 2500000))

		for season := FixtureFirstSeason; season <= FixtureLastSeason; season++ {
			g := rng.between(10, 40)
			w := rng.between(0, 20)
			so := rng.between(20, 300)
			ipouts := rng.between(60, 700)
			er := rng.between(10, 120)
			fx.pitching = append(fx.pitching, []string{
				id, itoa(season), "1", team, "AL",
				itoa(w), itoa(rng.between(0, 20)), itoa(g), itoa(rng.between(0, g)),
				itoa(rng.between(0, 5)), itoa(rng.between(0, 3)), itoa(rng.between(0, 30)),
				itoa(ipouts), itoa(rng.between(20, 250)), itoa(er), itoa(rng.between(0, 35)),
				itoa(rng.between(10, 100)), itoa(so),
				fmt.Sprintf("%.3f", 0.2+float64(rng.between(0, 100))/1000),
				fmt.Sprintf("%.2f", float64(er)*27/float64(ipouts)),
				itoa(rng.between(0, 10)), itoa(rng.between(0, 15)), itoa(rng.between(0, 15)),
				itoa(rng.between(0, 3)), itoa(rng.between(100, 1000)), itoa(rng.between(0, 50)),
				itoa(er + rng.between(0, 20)), itoa(rng.between(0, 10)), itoa(rng.between(0, 10)),
				itoa(rng.between(0, 25)),
			})
			addSalary(season+1, team, id, 150000+60000*w+2000*so+rng.between(0, 400000))
		}
	}

	// A pitcher's batting line, dropped as a pitcher.
	fx.batting = append(fx.batting, []string{
		"pit00101", itoa(FixtureLastSeason), "1", fixtureTeams[1], "AL",
		"30", "12", "1", "2", "0", "0", "0", "1", "0", "0", "0", "6", "0", "0", "3", "0", "0",
	})
	// A line without at-bats.
	addPlayer("noab00101", "Bench", "Warmer", 0)
	fx.batting = append(fx.batting, []string{
		"noab00101", itoa(FixtureLastSeason), "1", "NYA", "AL",
		"3", "0", "1", "0", "0", "0", "0", "0", "1", "0", "0", "0", "0", "0", "0", "0", "0",
	})
	addSalary(FixtureLastSeason, "NYA", "noab00101", 100000)
	// A line from before salaries were recorded.
	fx.batting = append(fx.batting, []string{
		"bat00101", "1984", "1", fixtureTeams[1], "AL",
		"20", "40", "3", "9", "1", "0", "1", "4", "0", "0", "2", "8", "0", "0", "0", "0", "1",
	})

	weights := [][]float64{
		{0.72, 0.75, 0.90, 1.24, 1.56, 1.95},
		{0.70, 0.73, 0.89, 1.26, 1.59, 2.03},
	}
	for i, season := 0, FixtureFirstSeason; season <= FixtureLastSeason; i, season = i+1, season+1 {
		row := []string{itoa(season)}
		for _, w := range weights[i] {
			row = append(row, strconv.FormatFloat(w, 'f', 3, 64))
		}
		fx.factors = append(fx.factors, row)
	}

	return fx
}

func writeCSVFile(path string, header []string, rows [][]string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	return w.WriteAll(rows)
}
