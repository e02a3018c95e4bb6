// Package pipeline runs every analysis stage over one dataset snapshot and
// writes the report artifacts.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"salary-lab/internal/cleaning"
	"salary-lab/internal/config"
	"salary-lab/internal/dataset"
	"salary-lab/internal/domain"
	"salary-lab/internal/idhash"
	"salary-lab/internal/loader"
	"salary-lab/internal/lookup"
	"salary-lab/internal/metrics"
	"salary-lab/internal/normalization"
	"salary-lab/internal/observability"
	"salary-lab/internal/regression"
	"salary-lab/internal/reporting"
	"salary-lab/internal/temporal"
	"salary-lab/internal/woba"
)

// Output file names.
const (
	ReportFile          = "REPORT.md"
	WOBAFile            = "woba.csv"
	SalaryStatsFile     = "salary_stats.csv"
	TeamBudgetsFile     = "team_budgets.csv"
	TopSalariesFile     = "top_salaries.csv"
	CorrelationsFile    = "correlations.csv"
	PitcherSummaryFile  = "olm_summary_pitcher.txt"
	BatterSummaryFile   = "olm_summary_batter.txt"
	WorkbookFile        = "salary_summary.xlsx"
	MetricsTextfileName = "pipeline.prom"
)

// Stage names used in logs, errors and the stage duration histogram.
const (
	StageLoad       = "load"
	StageClean      = "clean"
	StageWOBA       = "woba"
	StageJoin       = "join"
	StageRegression = "regression"
	StageAggregate  = "aggregate"
	StageReport     = "report"
)

// Result is what a completed run produced.
type Result struct {
	RunID  string
	Report *reporting.Report
	Fits   []regression.SeasonFit
	Files  []string // written artifacts, in write order
}

// Pipeline orchestrates load, cleaning, metric computation, temporal join,
// regression, aggregation and reporting.
type Pipeline struct {
	cfg       *config.Config
	logger    *zap.Logger
	metrics   *observability.Metrics
	reportGen *reporting.Generator
	clock     func() time.Time
	runID     string
	gitCommit func() string
}

// New creates a pipeline for cfg. cfg is expected to be validated.
func New(cfg *config.Config) *Pipeline {
	return &Pipeline{
		cfg:       cfg,
		logger:    zap.NewNop(),
		metrics:   observability.NewMetrics(observability.DefaultNamespace),
		reportGen: reporting.NewGenerator(),
		clock:     func() time.Time { return time.Now().UTC() },
		runID:     uuid.NewString(),
		gitCommit: getGitCommitHash,
	}
}

// WithLogger sets the logger. Every message carries the run id.
func (p *Pipeline) WithLogger(logger *zap.Logger) *Pipeline {
	p.logger = logger
	return p
}

// WithClock sets a custom clock function for deterministic output.
func (p *Pipeline) WithClock(clock func() time.Time) *Pipeline {
	p.clock = clock
	p.reportGen = p.reportGen.WithClock(clock)
	return p
}

// WithRunID overrides the generated run id.
func (p *Pipeline) WithRunID(id string) *Pipeline {
	p.runID = id
	return p
}

// Metrics returns the run metrics.
func (p *Pipeline) Metrics() *observability.Metrics {
	return p.metrics
}

// state carries stage outputs between stages.
type state struct {
	ds       *dataset.Dataset
	clean    *cleaning.Result
	woba     *woba.Result
	pitchers *temporal.Result[domain.PitchingRecord]
	batters  *temporal.Result[domain.BattingRecord]
	fits     []regression.SeasonFit
	corrs    []domain.Correlation
	salaries *metrics.SalaryReport
}

// Run executes every stage and writes the output files. The context is
// checked between stages. Metrics are written even when a stage fails,
// once the output directory exists.
func (p *Pipeline) Run(ctx context.Context) (res *Result, err error) {
	log := p.logger.With(zap.String("run_id", p.runID))
	outDir := p.cfg.Output.Dir
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	started := time.Now()
	log.Info("pipeline started", zap.String("data_dir", p.cfg.Input.DataDir), zap.String("output_dir", outDir))

	defer func() {
		status := observability.StatusSuccess
		if err != nil {
			status = observability.StatusFailure
		}
		p.metrics.RecordRun(status, p.clock())

		if p.cfg.Output.Metrics {
			path := filepath.Join(outDir, MetricsTextfileName)
			werr := p.metrics.WriteTextfile(path)
			switch {
			case werr != nil && err == nil:
				res, err = nil, werr
			case werr == nil && res != nil:
				res.Files = append(res.Files, path)
			}
		}

		if err != nil {
			log.Error("pipeline failed", zap.Error(err))
			return
		}
		log.Info("pipeline finished", zap.Int("files", len(res.Files)), zap.Duration("elapsed", time.Since(started)))
	}()

	var st state
	paths := p.inputPaths()

	if err := p.stage(ctx, StageLoad, func() error { return p.load(log, paths, &st) }); err != nil {
		return nil, err
	}
	if err := p.stage(ctx, StageClean, func() error { return p.clean(log, &st) }); err != nil {
		return nil, err
	}
	if err := p.stage(ctx, StageWOBA, func() error { return p.computeWOBA(log, &st) }); err != nil {
		return nil, err
	}
	if err := p.stage(ctx, StageJoin, func() error { p.join(log, &st); return nil }); err != nil {
		return nil, err
	}
	if err := p.stage(ctx, StageRegression, func() error { return p.regress(log, &st) }); err != nil {
		return nil, err
	}
	if err := p.stage(ctx, StageAggregate, func() error {
		st.salaries = metrics.NewAggregator(p.cfg.Analysis.TopN).WithLogger(log).Aggregate(st.ds)
		return nil
	}); err != nil {
		return nil, err
	}

	res = &Result{RunID: p.runID, Fits: st.fits}
	if err := p.stage(ctx, StageReport, func() error { return p.writeOutputs(log, paths, &st, res) }); err != nil {
		return nil, err
	}
	return res, nil
}

// stage runs fn after checking ctx and records its duration.
func (p *Pipeline) stage(ctx context.Context, name string, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	start := time.Now()
	defer p.metrics.ObserveStage(name, start)
	if err := fn(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func (p *Pipeline) inputPaths() loader.Paths {
	in := p.cfg.Input
	return loader.Paths{
		Players:  in.Players,
		Batting:  in.Batting,
		Pitching: in.Pitching,
		Salaries: in.Salaries,
		Factors:  in.Factors,
	}.InDir(in.DataDir)
}

func (p *Pipeline) load(log *zap.Logger, paths loader.Paths, st *state) error {
	ds, err := loader.New(paths).WithLogger(log).Load()
	if err != nil {
		return err
	}
	counts := ds.Counts()
	for _, table := range dataset.TableNames {
		p.metrics.RowsLoaded.WithLabelValues(table).Set(float64(counts[table]))
	}
	st.ds = ds
	return nil
}

func (p *Pipeline) clean(log *zap.Logger, st *state) error {
	res, err := cleaning.New(p.cfg.Analysis.MinSalarySeason).
		WithLogger(log).
		Clean(st.ds.Batting(), st.ds.Pitching(), st.ds.Salaries())
	if err != nil {
		return err
	}
	for reason, n := range res.Dropped {
		p.metrics.RowsDropped.WithLabelValues(string(reason)).Add(float64(n))
	}
	for _, issue := range res.Issues {
		p.metrics.DataIssues.WithLabelValues(string(issue.Kind)).Inc()
	}
	st.clean = res
	return nil
}

func (p *Pipeline) computeWOBA(log *zap.Logger, st *state) error {
	factors, err := lookup.NewFactorTable(st.ds.Factors())
	if err != nil {
		return err
	}
	log.Debug("weighting factors indexed", zap.Int("seasons", factors.Len()))
	st.woba = woba.New(factors).WithLogger(log).Compute(st.clean.Rows)
	for status, n := range st.woba.StatusCounts {
		p.metrics.MetricStatus.WithLabelValues(status.String()).Add(float64(n))
	}
	return nil
}

// join pairs each role's performance with next-season salary. Batting lines
// from a team-season where the player also pitched stay out of the batter set.
func (p *Pipeline) join(log *zap.Logger, st *state) {
	salaries := st.ds.Salaries()
	pitching := st.ds.Pitching()
	st.pitchers = temporal.Join(pitching, salaries)
	st.batters = temporal.Join(cleaning.ExcludePitcherSeasons(st.ds.Batting(), pitching), salaries)

	for role, cov := range p.coverage(st) {
		p.metrics.RowsJoined.WithLabelValues(string(role)).Set(float64(cov.MatchedPerformance))
		p.metrics.RowsUnjoined.WithLabelValues(string(role), "performance").Set(float64(cov.UnmatchedPerformance))
		p.metrics.RowsUnjoined.WithLabelValues(string(role), "salary").Set(float64(cov.UnmatchedSalaries))
		log.Info("temporal join",
			zap.String("role", string(role)),
			zap.Int("matched", cov.MatchedPerformance),
			zap.Int("unmatched_performance", cov.UnmatchedPerformance),
			zap.Int("unmatched_salaries", cov.UnmatchedSalaries),
			zap.Int("null_salaries", cov.NullSalaries),
		)
	}
}

func (p *Pipeline) coverage(st *state) map[domain.Role]temporal.Coverage {
	cov := make(map[domain.Role]temporal.Coverage, 2)
	if st.pitchers != nil {
		cov[domain.RolePitcher] = st.pitchers.Coverage
	}
	if st.batters != nil {
		cov[domain.RoleBatter] = st.batters.Coverage
	}
	return cov
}

func (p *Pipeline) regress(log *zap.Logger, st *state) error {
	fitter := regression.NewFitter(regression.Policy{MaxNullFraction: p.cfg.Analysis.NullFractionThreshold}).WithLogger(log)

	pitcherFits, err := regression.FitBySeason(fitter, domain.RolePitcher, st.pitchers.Rows,
		normalization.PitchingColumns, normalization.PitchingOpportunity)
	if err != nil {
		return err
	}
	batterFits, err := regression.FitBySeason(fitter, domain.RoleBatter, st.batters.Rows,
		normalization.BattingColumns, normalization.BattingOpportunity)
	if err != nil {
		return err
	}
	st.fits = append(pitcherFits, batterFits...)

	for _, f := range st.fits {
		outcome := "fitted"
		if f.Model == nil {
			outcome = "skipped"
		}
		p.metrics.Regressions.WithLabelValues(string(f.Role), outcome).Inc()
	}

	season := p.cfg.Analysis.CorrelationSeason
	pitchers := temporal.BySalaryYear(st.pitchers.Rows)[season]
	batters := temporal.BySalaryYear(st.batters.Rows)[season]
	if len(pitchers) == 0 && len(batters) == 0 {
		log.Warn("no joined rows for correlation season", zap.Int("season", season))
		return nil
	}
	if len(pitchers) > 0 {
		d, err := regression.PitcherDesign(pitchers)
		if err != nil {
			return err
		}
		st.corrs = append(st.corrs, regression.CorrelateWithSalary(d, string(domain.RolePitcher), regression.PitcherCorrelationColumns)...)
	}
	if len(batters) > 0 {
		d, err := regression.BatterDesign(batters)
		if err != nil {
			return err
		}
		st.corrs = append(st.corrs, regression.CorrelateWithSalary(d, string(domain.RoleBatter), regression.BatterCorrelationColumns)...)
	}
	return nil
}

// writeOutputs renders the report and every export into the output directory.
func (p *Pipeline) writeOutputs(log *zap.Logger, paths loader.Paths, st *state, res *Result) error {
	version, err := idhash.ComputeDataVersion(paths.Players, paths.Batting, paths.Pitching, paths.Salaries, paths.Factors)
	if err != nil {
		return err
	}

	coverage := p.coverage(st)
	report := p.reportGen.Generate(reporting.Inputs{
		RunID:             p.runID,
		Dataset:           st.ds,
		Clean:             st.clean,
		WOBA:              st.woba,
		WOBAMinAB:         p.cfg.Analysis.WOBAMinAB,
		Coverage:          coverage,
		Fits:              st.fits,
		Salaries:          st.salaries,
		CorrelationSeason: p.cfg.Analysis.CorrelationSeason,
		Correlations:      st.corrs,
		Checks:            CheckDataQuality(st.clean, st.woba, coverage, st.fits),
		DataVersion:       version,
		GitCommit:         p.gitCommit(),
	})
	res.Report = report

	dir := p.cfg.Output.Dir
	write := func(name, content string) error {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return err
		}
		res.Files = append(res.Files, path)
		return nil
	}

	files := []struct {
		name    string
		content string
	}{
		{ReportFile, reporting.RenderMarkdown(report)},
		{WOBAFile, reporting.RenderWOBACSV(st.woba.Rows)},
		{SalaryStatsFile, reporting.RenderSalaryStatsCSV(st.salaries.SeasonStats)},
		{TeamBudgetsFile, reporting.RenderTeamBudgetsCSV(st.salaries.Budgets)},
		{TopSalariesFile, reporting.RenderTopSalariesCSV(st.salaries.TopSalaries)},
		{CorrelationsFile, reporting.RenderCorrelationsCSV(st.corrs)},
	}
	for _, f := range files {
		if err := write(f.name, f.content); err != nil {
			return err
		}
	}

	summaries := map[domain.Role]string{
		domain.RolePitcher: PitcherSummaryFile,
		domain.RoleBatter:  BatterSummaryFile,
	}
	for _, role := range domain.Roles {
		path := filepath.Join(dir, summaries[role])
		if err := reporting.WriteSummaries(path, fitsFor(st.fits, role)); err != nil {
			return err
		}
		res.Files = append(res.Files, path)
	}

	if p.cfg.Output.Workbook {
		path := filepath.Join(dir, WorkbookFile)
		if err := reporting.WriteWorkbook(path, st.salaries, st.corrs); err != nil {
			return err
		}
		res.Files = append(res.Files, path)
	}

	log.Info("outputs written",
		zap.String("dir", dir),
		zap.String("data_version", version),
		zap.Int("fits", regression.Fitted(st.fits)),
		zap.Int("seasons", len(st.fits)),
	)
	return nil
}

func fitsFor(fits []regression.SeasonFit, role domain.Role) []regression.SeasonFit {
	var out []regression.SeasonFit
	for _, f := range fits {
		if f.Role == role {
			out = append(out, f)
		}
	}
	return out
}

// getGitCommitHash returns current git commit hash or "unknown" if not in git repo.
func getGitCommitHash() string {
	cmd := exec.Command("git", "rev-parse", "--short", "HEAD")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "unknown"
	}
	return strings.TrimSpace(out.String())
}
