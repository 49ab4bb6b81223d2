package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"verity/internal/config"
	"verity/internal/storage"
	"verity/internal/ui"
)

// FailuresCommand handles the failures command
type FailuresCommand struct {
	config  *config.Config
	storage storage.Storage
	viewer  ui.Viewer
}

// NewFailuresCommand creates a new FailuresCommand
func NewFailuresCommand(cfg *config.Config, st storage.Storage) *FailuresCommand {
	return &FailuresCommand{
		config:  cfg,
		storage: st,
		viewer:  ui.NewFailureViewer(st),
	}
}

// Execute runs the command
func (fc *FailuresCommand) Execute(cmd *cobra.Command, args []string) error {
	results, err := fc.storage.Load()
	if err != nil {
		return err
	}

	if len(results.Details) == 0 {
		color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "✓ No failures in the last run")
		return nil
	}

	return fc.viewer.View(results)
}
