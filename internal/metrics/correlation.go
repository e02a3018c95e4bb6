package metrics

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"salary-lab/internal/domain"
)

// ErrTooFewPoints is returned when a correlation has fewer than three pairs.
var ErrTooFewPoints = errors.New("too few points for correlation")

// Pearson computes the correlation of x and y with a two-sided p-value
// from the t distribution with n-2 degrees of freedom.
// Pairs where either side is NaN are dropped first.
func Pearson(label string, x, y []float64) (domain.Correlation, error) {
	if len(x) != len(y) {
		return domain.Correlation{}, fmt.Errorf("%s: length mismatch %d != %d", label, len(x), len(y))
	}

	xs := make([]float64, 0, len(x))
	ys := make([]float64, 0, len(y))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}

	n := len(xs)
	if n < 3 {
		return domain.Correlation{Label: label, N: n, R: math.NaN(), PValue: math.NaN()},
			fmt.Errorf("%s: %w: %d", label, ErrTooFewPoints, n)
	}

	r := stat.Correlation(xs, ys, nil)
	return domain.Correlation{Label: label, N: n, R: r, PValue: pearsonPValue(r, n)}, nil
}

func pearsonPValue(r float64, n int) float64 {
	if math.IsNaN(r) {
		return math.NaN()
	}
	if math.Abs(r) >= 1 {
		return 0
	}
	df := float64(n - 2)
	t := r * math.Sqrt(df/(1-r*r))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return 2 * dist.Survival(math.Abs(t))
}
