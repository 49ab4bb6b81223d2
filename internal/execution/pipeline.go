package execution

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"verity/internal/config"
	"verity/internal/discovery"
	"verity/internal/domain"
	"verity/internal/metrics"
	"verity/internal/storage"
	"verity/pkg/unit"
)

// Pipeline selects cases, runs them and exports the report to the
// configured sinks.
type Pipeline struct {
	config   *config.Config
	filter   *discovery.Filter
	storage  storage.Storage
	recorder *metrics.Recorder
	log      *zap.Logger
}

var _ Executor = (*Pipeline)(nil)

// NewPipeline creates a new Pipeline
func NewPipeline(cfg *config.Config, filter *discovery.Filter, st storage.Storage, recorder *metrics.Recorder, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{
		config:   cfg,
		filter:   filter,
		storage:  st,
		recorder: recorder,
		log:      log,
	}
}

// Select returns the cases of reg matching the configured filter and suite
func (p *Pipeline) Select(reg *unit.Registry) *unit.Registry {
	return p.filter.Select(reg, p.config.Filter, p.config.Suite)
}

// Execute runs the selected cases of reg, writing the text report to out.
// The report is returned even when the run stops early; export errors are
// joined with the run error.
func (p *Pipeline) Execute(reg *unit.Registry, out io.Writer, observers ...unit.Observer) (*unit.Report, error) {
	opts := []unit.Option{
		unit.WithOutput(out),
		unit.WithLogger(p.log),
	}
	if p.recorder != nil {
		opts = append(opts, unit.WithObserver(p.recorder))
	}
	for _, o := range observers {
		opts = append(opts, unit.WithObserver(o))
	}

	report, runErr := unit.NewRunner(reg, opts...).Run()
	if runErr != nil {
		p.log.Error("run stopped", zap.Error(runErr))
	}

	return report, errors.Join(runErr, p.export(report))
}

func (p *Pipeline) export(report *unit.Report) error {
	var errs []error

	if p.config.JSONReport && p.storage != nil {
		output := domain.FromReport(report)
		if err := p.storage.Save(&output); err != nil {
			errs = append(errs, fmt.Errorf("failed to save run report: %w", err))
		} else {
			p.log.Debug("saved run report", zap.String("path", p.config.GetOutputPath()))
		}
	}

	if p.config.MetricsTextfile != "" && p.recorder != nil {
		p.recorder.RecordRun(report)
		if err := p.recorder.WriteTextfile(p.config.MetricsTextfile); err != nil {
			errs = append(errs, err)
		} else {
			p.log.Debug("wrote metrics", zap.String("path", p.config.MetricsTextfile))
		}
	}

	return errors.Join(errs...)
}
