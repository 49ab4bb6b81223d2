// Package metrics records run results as Prometheus metrics and writes them
// to a node_exporter textfile.
package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"verity/internal/domain"
	"verity/pkg/unit"
)

const (
	MetricsNamespace = "verity"
)

// Recorder observes a run and keeps its metrics in a private registry, so
// several recorders can live in one process.
type Recorder struct {
	registry *prometheus.Registry

	stepsTotal   *prometheus.CounterVec
	suitesTotal  *prometheus.CounterVec
	runResults   *prometheus.GaugeVec
	runDuration  prometheus.Gauge
	lastRunStart prometheus.Gauge
}

func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		stepsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Name:      "steps_total",
			Help:      "Count of finished cases and fixture steps",
		}, []string{
			"suite",
			"kind",
			"result",
		}),
		suitesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Name:      "suites_total",
			Help:      "Count of started suites",
		}, []string{
			"suite",
		}),
		runResults: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: MetricsNamespace,
			Name:      "run_results",
			Help:      "Totals of the last run",
		}, []string{
			"result",
		}),
		runDuration: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: MetricsNamespace,
			Name:      "run_duration_seconds",
			Help:      "Duration of the last run",
		}),
		lastRunStart: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: MetricsNamespace,
			Name:      "run_start_timestamp_seconds",
			Help:      "Start time of the last run as a unix timestamp",
		}),
	}
}

// resultLabel turns a step outcome into a label value, keeping expected
// failures apart from plain passes.
func resultLabel(o unit.Outcome) string {
	if o.ExpectedFailure {
		return "expected_failure"
	}
	return strings.ReplaceAll(o.State.String(), " ", "_")
}

func (r *Recorder) SuiteStarted(suite string) {
	r.suitesTotal.WithLabelValues(domain.SuiteLabel(suite)).Inc()
}

func (r *Recorder) StepFinished(step unit.StepResult) {
	r.stepsTotal.WithLabelValues(domain.SuiteLabel(step.Suite), step.Kind.String(), resultLabel(step.Outcome)).Inc()
}

// RecordRun stores the totals of a finished run.
func (r *Recorder) RecordRun(report *unit.Report) {
	r.runResults.WithLabelValues("passed").Set(float64(report.Passed))
	r.runResults.WithLabelValues("failed").Set(float64(report.Failed))
	r.runResults.WithLabelValues("missed").Set(float64(report.Missed))
	r.runDuration.Set(report.Duration.Seconds())
	r.lastRunStart.Set(float64(report.StartedAt.Unix()))
}

// WriteTextfile writes every metric to path in the text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create metrics dir: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

// Registry exposes the underlying registry, e.g. for tests.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
