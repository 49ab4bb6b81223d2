package commands

import (
	"errors"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"verity/internal/cli"
	"verity/internal/config"
	"verity/internal/discovery"
	"verity/internal/domain"
	"verity/internal/execution"
	"verity/internal/logging"
	"verity/internal/metrics"
	"verity/internal/storage"
	"verity/internal/ui"
	"verity/pkg/unit"
)

// RunCommand handles the run command
type RunCommand struct {
	config   *config.Config
	registry *unit.Registry
	filter   *discovery.Filter
	storage  storage.Storage
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	reg *unit.Registry,
	filter *discovery.Filter,
	st storage.Storage,
) *RunCommand {
	return &RunCommand{
		config:   cfg,
		registry: reg,
		filter:   filter,
		storage:  st,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	log, err := logging.New(rc.config.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	pipeline := execution.NewPipeline(rc.config, rc.filter, rc.storage, metrics.NewRecorder(), log)
	selected := pipeline.Select(rc.registry)

	stdout := cmd.OutOrStdout()
	if selected.Len() == 0 {
		color.New(color.FgYellow).Fprintln(stdout, "No tests to execute")
		return nil
	}

	// The progress bar replaces the streaming report
	out := stdout
	var observers []unit.Observer
	var progressBar *ui.ProgressBar
	if rc.config.Progress {
		out = io.Discard
		progressBar = ui.NewProgressBarTo(selected.Len(), cmd.ErrOrStderr())
		observers = append(observers, progressBar)
	}

	report, err := pipeline.Execute(selected, out, observers...)
	if progressBar != nil {
		progressBar.Finish()
	}
	if err != nil && !errors.Is(err, unit.ErrSuiteNotFound) {
		return err
	}

	output := domain.FromReport(report)
	if rc.config.Summary || rc.config.Progress {
		ui.NewFormatter(rc.config, stdout).PrintSummary(&output)
	}

	if rc.config.Flags.View && len(output.Details) > 0 {
		// Resolved marks are only kept when there is a report to keep them in
		var st storage.Storage
		if rc.config.JSONReport {
			st = rc.storage
		}
		if err := ui.NewFailureViewer(st).View(&output); err != nil {
			log.Warn("failures viewer closed with error", zap.Error(err))
		}
	}

	if code := report.ExitCode(); code != 0 {
		return &cli.ExitError{Code: code}
	}
	return nil
}
