// Package loader reads the source CSV tables into typed records.
package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"salary-lab/internal/dataset"
)

// Paths names the five input files.
type Paths struct {
	Players  string
	Batting  string
	Pitching string
	Salaries string
	Factors  string
}

// InDir resolves every path relative to dir. Absolute paths are kept.
func (p Paths) InDir(dir string) Paths {
	join := func(name string) string {
		if name == "" || filepath.IsAbs(name) {
			return name
		}
		return filepath.Join(dir, name)
	}
	return Paths{
		Players:  join(p.Players),
		Batting:  join(p.Batting),
		Pitching: join(p.Pitching),
		Salaries: join(p.Salaries),
		Factors:  join(p.Factors),
	}
}

// Loader reads all source tables from disk.
type Loader struct {
	paths  Paths
	logger *zap.Logger
}

// New creates a Loader for paths.
func New(paths Paths) *Loader {
	return &Loader{paths: paths, logger: zap.NewNop()}
}

// WithLogger sets the logger.
func (l *Loader) WithLogger(logger *zap.Logger) *Loader {
	l.logger = logger
	return l
}

// Load reads the five files and builds a Dataset.
// Schema and parse errors are returned wrapped with the file path.
func (l *Loader) Load() (*dataset.Dataset, error) {
	var t dataset.Tables
	var err error

	if t.Players, err = readFile(l, l.paths.Players, ReadPlayers); err != nil {
		return nil, err
	}
	if t.Batting, err = readFile(l, l.paths.Batting, ReadBatting); err != nil {
		return nil, err
	}
	if t.Pitching, err = readFile(l, l.paths.Pitching, ReadPitching); err != nil {
		return nil, err
	}
	if t.Salaries, err = readFile(l, l.paths.Salaries, ReadSalaries); err != nil {
		return nil, err
	}
	if t.Factors, err = readFile(l, l.paths.Factors, ReadFactors); err != nil {
		return nil, err
	}

	ds, err := dataset.New(t)
	if err != nil {
		return nil, fmt.Errorf("build dataset: %w", err)
	}
	return ds, nil
}

func readFile[R any](l *Loader, path string, read func(io.Reader, string) ([]R, error)) ([]R, error) {
	start := time.Now()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	name := filepath.Base(path)
	rows, err := read(f, name)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	l.logger.Info("table loaded",
		zap.String("file", name),
		zap.Int("rows", len(rows)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return rows, nil
}
