package reporting

import (
	"bufio"
	"fmt"
	"os"

	"salary-lab/internal/regression"
)

// WriteSummaries writes one regression summary block per season to path.
// Each block starts with "Year : <season>" and ends with two blank lines.
// Seasons that could not be fitted get a one-line note instead of a table.
func WriteSummaries(path string, fits []regression.SeasonFit) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	for _, fit := range fits {
		if _, err = fmt.Fprintf(w, "Year : %d\n", fit.Season); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		body := "regression skipped: no model"
		switch {
		case fit.Err != nil:
			body = "regression skipped: " + fit.Err.Error()
		case fit.Model != nil:
			body = fit.Model.Summary()
		}
		if _, err = fmt.Fprintf(w, "%s\n\n\n", body); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
