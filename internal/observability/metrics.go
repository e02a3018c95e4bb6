// Package observability provides Prometheus metrics for a pipeline run.
// Metrics live in a per-run registry and are written as a textfile;
// nothing listens on the network.
package observability

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "salary_lab"

// Metrics holds all Prometheus metrics for one run.
type Metrics struct {
	registry *prometheus.Registry

	// Load metrics
	RowsLoaded *prometheus.GaugeVec

	// Stage metrics
	RowsDropped   *prometheus.CounterVec
	DataIssues    *prometheus.CounterVec
	MetricStatus  *prometheus.CounterVec
	RowsJoined    *prometheus.GaugeVec
	RowsUnjoined  *prometheus.GaugeVec
	Regressions   *prometheus.CounterVec
	StageDuration *prometheus.HistogramVec

	// Run metrics
	RunsTotal         *prometheus.CounterVec
	LastSuccessfulRun prometheus.Gauge
}

// NewMetrics creates a Metrics instance registered in a fresh registry.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		RowsLoaded: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "loader",
			Name:      "rows",
			Help:      "Number of rows loaded per source table",
		}, []string{"table"}),

		RowsDropped: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cleaning",
			Name:      "rows_dropped_total",
			Help:      "Batting lines removed by the cleaning stage, by reason",
		}, []string{"reason"}),
		DataIssues: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cleaning",
			Name:      "data_issues_total",
			Help:      "Data quality findings by kind",
		}, []string{"kind"}),
		MetricStatus: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "woba",
			Name:      "metrics_total",
			Help:      "Computed wOBA values by status",
		}, []string{"status"}),
		RowsJoined: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "temporal",
			Name:      "rows_joined",
			Help:      "Performance rows joined to next-season salary, by role",
		}, []string{"role"}),
		RowsUnjoined: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "temporal",
			Name:      "rows_unjoined",
			Help:      "Rows without a join partner, by role and side",
		}, []string{"role", "side"}),
		Regressions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "regression",
			Name:      "fits_total",
			Help:      "Per-season regressions by role and outcome",
		}, []string{"role", "outcome"}),
		StageDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "stage_duration_seconds",
			Help:      "Stage execution duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		}, []string{"stage"}),

		RunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "runs_total",
			Help:      "Pipeline runs by status",
		}, []string{"status"}),
		LastSuccessfulRun: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "health",
			Name:      "last_successful_run_timestamp",
			Help:      "Unix timestamp of the last successful run",
		}),
	}
}

// ObserveStage records the duration of a stage that started at start.
func (m *Metrics) ObserveStage(stage string, start time.Time) {
	m.StageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}

// RecordRun records the final status of a run.
func (m *Metrics) RecordRun(status string, at time.Time) {
	m.RunsTotal.WithLabelValues(status).Inc()
	if status == StatusSuccess {
		m.LastSuccessfulRun.Set(float64(at.Unix()))
	}
}

// Run statuses.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// WriteTextfile writes every metric to path in the text exposition format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}
	return nil
}
