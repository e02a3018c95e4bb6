// Package regression fits per-season linear models of salary on the
// previous season's performance.
package regression

import (
	"fmt"

	"go.uber.org/zap"

	"salary-lab/internal/domain"
	"salary-lab/internal/metrics"
	"salary-lab/internal/normalization"
	"salary-lab/internal/temporal"
)

// SignificanceThreshold is the |t| above which a predictor is reported.
const SignificanceThreshold = 2.0

// Dependent is the regression target name.
const Dependent = "salary"

// SeasonFit is the outcome of one season's regression.
// Model is nil when Err is set.
type SeasonFit struct {
	Role     domain.Role
	Season   int
	NObs     int
	Included []string
	Excluded []Exclusion
	Model    *Model
	Err      error
}

// Significant returns the predictors with |t| > SignificanceThreshold.
func (f SeasonFit) Significant() []Coefficient {
	if f.Model == nil {
		return nil
	}
	return f.Model.Significant(SignificanceThreshold)
}

// Fitter fits one model per salary season.
type Fitter struct {
	policy Policy
	logger *zap.Logger
}

// NewFitter creates a Fitter with the given inclusion policy.
func NewFitter(policy Policy) *Fitter {
	return &Fitter{policy: policy, logger: zap.NewNop()}
}

// WithLogger sets the logger.
func (f *Fitter) WithLogger(logger *zap.Logger) *Fitter {
	f.logger = logger
	return f
}

// FitDesign applies the inclusion policy to d and fits the model.
func (f *Fitter) FitDesign(role domain.Role, season int, d Design) SeasonFit {
	included, excluded := f.policy.Apply(d.Candidates)
	fit := SeasonFit{Role: role, Season: season, NObs: d.Len(), Excluded: excluded}
	for _, c := range included {
		fit.Included = append(fit.Included, c.Name)
	}

	if len(included) == 0 {
		fit.Err = ErrNoPredictors
	} else {
		fit.Model, fit.Err = Fit(Dependent, d.Target, included)
	}

	log := f.logger.With(zap.String("role", string(role)), zap.Int("season", season), zap.Int("n", fit.NObs))
	if fit.Err != nil {
		log.Warn("regression skipped", zap.Error(fit.Err))
		return fit
	}

	sig := fit.Significant()
	fields := []zap.Field{
		zap.Float64("r_squared", fit.Model.RSquared),
		zap.Int("predictors", len(fit.Included)),
		zap.Int("excluded", len(fit.Excluded)),
	}
	for _, c := range sig {
		fields = append(fields, zap.Float64("t_"+c.Name, c.T))
	}
	log.Info("regression fitted", fields...)
	return fit
}

// FitBySeason builds a design per salary season and fits each independently.
// Results are ordered by season. A season that cannot be fitted is returned
// with Err set; only a design error aborts.
func FitBySeason[R temporal.Performance](
	f *Fitter,
	role domain.Role,
	rows []temporal.Lagged[R],
	columns []normalization.Column[R],
	opportunity string,
) ([]SeasonFit, error) {
	groups := temporal.BySalaryYear(rows)
	seasons := temporal.SalaryYears(rows)

	fits := make([]SeasonFit, 0, len(seasons))
	for _, season := range seasons {
		d, err := NewDesign(groups[season], columns, opportunity)
		if err != nil {
			return nil, fmt.Errorf("%s %d: %w", role, season, err)
		}
		fits = append(fits, f.FitDesign(role, season, d))
	}
	return fits, nil
}

// Fitted counts fits that produced a model.
func Fitted(fits []SeasonFit) int {
	n := 0
	for _, f := range fits {
		if f.Model != nil {
			n++
		}
	}
	return n
}

// CorrelateWithSalary computes the Pearson correlation of each named
// candidate with the target. Unknown names and degenerate columns are skipped.
func CorrelateWithSalary(d Design, label string, names []string) []domain.Correlation {
	var out []domain.Correlation
	for _, name := range names {
		c, ok := d.Candidate(name)
		if !ok {
			continue
		}
		corr, err := metrics.Pearson(label+" "+name, c.Values, d.Target)
		if err != nil {
			continue
		}
		out = append(out, corr)
	}
	return out
}

// Predictors correlated with salary in the report.
var (
	PitcherCorrelationColumns = []string{"W", "L", "G", "GS", "GF"}
	BatterCorrelationColumns  = []string{"H", "H2B", "H3B", "HR", "TH"}
)
