package loader

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salary-lab/internal/dataset"
)

func TestReadBatting_NullCountsCoalesceToZero(t *testing.T) {
	in := "playerID,yearID,stint,teamID,lgID,G,AB,H,2B,3B,HR,BB,IBB,HBP,SF\n" +
		"abc01,2000,1,NYA,AL,10,40,12,,1,2,5,,,\n"

	rows, err := ReadBatting(strings.NewReader(in), "Batting.csv")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	b := rows[0]
	assert.Equal(t, "abc01", b.PlayerID)
	assert.Equal(t, 2000, b.YearID)
	assert.Equal(t, 0, b.H2B)
	assert.Equal(t, 0, b.IBB)
	assert.Equal(t, 0, b.HBP)
	assert.Equal(t, 0, b.SF)
	// optional column absent from the header
	assert.Equal(t, 0, b.RBI)
}

func TestReadBatting_BOMHeader(t *testing.T) {
	in := "\ufeffplayerID,yearID,stint,teamID,lgID,G,AB,H,2B,3B,HR,BB,IBB,HBP,SF\n" +
		"abc01,2000,1,NYA,AL,10,40,12,2,1,2,5,1,0,1\n"

	rows, err := ReadBatting(strings.NewReader(in), "Batting.csv")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "abc01", rows[0].PlayerID)
}

func TestReadBatting_MissingColumn(t *testing.T) {
	in := "playerID,yearID,stint,teamID,lgID,G,AB,H,2B,3B,HR,BB,HBP,SF\n"

	_, err := ReadBatting(strings.NewReader(in), "Batting.csv")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSchema))

	var se *SchemaError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "Batting.csv", se.File)
	assert.Equal(t, "IBB", se.Column)
}

func TestReadBatting_MalformedCell(t *testing.T) {
	in := "playerID,yearID,stint,teamID,lgID,G,AB,H,2B,3B,HR,BB,IBB,HBP,SF\n" +
		"abc01,2000,1,NYA,AL,10,40,12,2,1,2,5,1,0,1\n" +
		"abc02,2000,1,NYA,AL,10,forty,12,2,1,2,5,1,0,1\n"

	_, err := ReadBatting(strings.NewReader(in), "Batting.csv")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse))

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 3, pe.Line)
	assert.Equal(t, "AB", pe.Column)
	assert.Equal(t, "forty", pe.Value)
}

func TestReadBatting_EmptySeason(t *testing.T) {
	in := "playerID,yearID,stint,teamID,lgID,G,AB,H,2B,3B,HR,BB,IBB,HBP,SF\n" +
		"abc01,,1,NYA,AL,10,40,12,2,1,2,5,1,0,1\n"

	_, err := ReadBatting(strings.NewReader(in), "Batting.csv")
	assert.True(t, errors.Is(err, ErrParse))
}

func TestReadPitching_DefaultStintAndRatios(t *testing.T) {
	in := "playerID,yearID,teamID,lgID,G,GS,W,L,ERA,BAOpp\n" +
		"pit01,2013,BOS,AL,30,30,15,8,3.25,\n"

	rows, err := ReadPitching(strings.NewReader(in), "Pitching.csv")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	p := rows[0]
	assert.Equal(t, 1, p.Stint)
	assert.Equal(t, 3.25, p.ERA)
	assert.True(t, math.IsNaN(p.BAOpp))
	assert.Equal(t, 0, p.IPouts)
}

func TestReadPitching_NumbersStintsWithoutStintColumn(t *testing.T) {
	in := "playerID,yearID,teamID,lgID,G,GS,W,L\n" +
		"pit01,2013,BOS,AL,10,10,4,3\n" +
		"pit02,2013,NYA,AL,30,30,15,8\n" +
		"pit01,2013,NYA,AL,12,12,5,2\n" +
		"pit01,2014,NYA,AL,31,31,14,9\n"

	rows, err := ReadPitching(strings.NewReader(in), "Pitching.csv")
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, 1, rows[0].Stint)
	assert.Equal(t, 1, rows[1].Stint)
	assert.Equal(t, 2, rows[2].Stint)
	assert.Equal(t, "NYA", rows[2].TeamID)
	assert.Equal(t, 1, rows[3].Stint)
}

func TestReadPitching_KeepsStintColumn(t *testing.T) {
	in := "playerID,yearID,stint,teamID,lgID,G,GS,W,L\n" +
		"pit01,2013,2,NYA,AL,12,12,5,2\n" +
		"pit01,2013,1,BOS,AL,10,10,4,3\n"

	rows, err := ReadPitching(strings.NewReader(in), "Pitching.csv")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].Stint)
	assert.Equal(t, 1, rows[1].Stint)
}

func TestReadSalaries_EmptySalaryIsNaN(t *testing.T) {
	in := "yearID,teamID,lgID,playerID,salary\n" +
		"2014,BOS,AL,pit01,1000000\n" +
		"2014,BOS,AL,bat01,\n"

	rows, err := ReadSalaries(strings.NewReader(in), "Salaries.csv")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 1000000.0, rows[0].Salary)
	assert.True(t, math.IsNaN(rows[1].Salary))
}

func TestReadFactors_EmptyCoefficient(t *testing.T) {
	in := "Season,wOBA,wBB,wHBP,w1B,w2B,w3B,wHR\n" +
		"2000,.329,0.7,,0.9,1.25,1.6,2.0\n"

	_, err := ReadFactors(strings.NewReader(in), "FanGraphs.csv")
	require.Error(t, err)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "wHBP", pe.Column)
}

func TestReadPlayers_SkipsBlankLines(t *testing.T) {
	in := "playerID,birthCountry,weight,height,nameGiven,nameLast\n" +
		"abc01,USA,200,74,Alan Bert,Cole\n" +
		",,,,,\n" +
		"abc02,D.R.,,,Juan,Diaz\n"

	rows, err := ReadPlayers(strings.NewReader(in), "Master.csv")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Alan Bert Cole", rows[0].FullName())
	assert.Equal(t, 0, rows[1].Weight)
}

func TestLoad_DuplicateSalaryKey(t *testing.T) {
	dir := t.TempDir()
	paths := writeFiles(t, dir, map[string]string{
		"Master.csv":   "playerID,birthCountry,weight,height\nabc01,USA,200,74\n",
		"Batting.csv":  "playerID,yearID,stint,teamID,lgID,G,AB,H,2B,3B,HR,BB,IBB,HBP,SF\n",
		"Pitching.csv": "playerID,yearID,teamID,lgID,G,GS,W,L\npit01,2000,BOS,AL,1,1,0,0\n",
		"Salaries.csv": "yearID,teamID,lgID,playerID,salary\n2000,BOS,AL,abc01,1\n2000,BOS,AL,abc01,2\n",
		"Factors.csv":  "Season,wBB,wHBP,w1B,w2B,w3B,wHR\n",
	})

	_, err := New(paths).Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, dataset.ErrDuplicateKey))
}

func TestLoad_MissingFile(t *testing.T) {
	paths := Paths{Players: "Master.csv"}.InDir(t.TempDir())

	_, err := New(paths).Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "Master.csv")
}

func TestLoad_OK(t *testing.T) {
	dir := t.TempDir()
	paths := writeFiles(t, dir, map[string]string{
		"Master.csv":   "playerID,birthCountry,weight,height\nabc01,USA,200,74\n",
		"Batting.csv":  "playerID,yearID,stint,teamID,lgID,G,AB,H,2B,3B,HR,BB,IBB,HBP,SF\nabc01,2000,1,BOS,AL,10,40,12,2,1,2,5,1,0,1\n",
		"Pitching.csv": "playerID,yearID,teamID,lgID,G,GS,W,L\npit01,2000,BOS,AL,1,1,0,0\n",
		"Salaries.csv": "yearID,teamID,lgID,playerID,salary\n2000,BOS,AL,abc01,500000\n",
		"Factors.csv":  "Season,wBB,wHBP,w1B,w2B,w3B,wHR\n2000,0.7,0.7,0.9,1.25,1.6,2.0\n",
	})

	ds, err := New(paths).Load()
	require.NoError(t, err)

	counts := ds.Counts()
	assert.Equal(t, 1, counts[dataset.TablePlayers])
	assert.Equal(t, 1, counts[dataset.TableBatting])
	assert.Equal(t, 1, counts[dataset.TableFactors])
}

func TestLoad_TradedPitcherWithoutStintColumn(t *testing.T) {
	dir := t.TempDir()
	paths := writeFiles(t, dir, map[string]string{
		"Master.csv":   "playerID,birthCountry,weight,height\nx,USA,200,74\n",
		"Batting.csv":  "playerID,yearID,stint,teamID,lgID,G,AB,H,2B,3B,HR,BB,IBB,HBP,SF\n",
		"Pitching.csv": "playerID,yearID,teamID,lgID,G,GS,W,L\nx,2000,BOS,AL,10,10,4,3\nx,2000,NYA,AL,12,12,5,2\n",
		"Salaries.csv": "yearID,teamID,lgID,playerID,salary\n2001,NYA,AL,x,500000\n",
		"Factors.csv":  "Season,wBB,wHBP,w1B,w2B,w3B,wHR\n",
	})

	ds, err := New(paths).Load()
	require.NoError(t, err)

	pitching := ds.Pitching()
	require.Len(t, pitching, 2)
	assert.Equal(t, 1, pitching[0].Stint)
	assert.Equal(t, 2, pitching[1].Stint)
}

func writeFiles(t *testing.T, dir string, files map[string]string) Paths {
	t.Helper()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return Paths{
		Players:  "Master.csv",
		Batting:  "Batting.csv",
		Pitching: "Pitching.csv",
		Salaries: "Salaries.csv",
		Factors:  "Factors.csv",
	}.InDir(dir)
}
