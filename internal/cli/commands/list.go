package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"verity/internal/config"
	"verity/internal/discovery"
	"verity/internal/ui"
	"verity/pkg/unit"
)

// ListCommand handles the list command
type ListCommand struct {
	config   *config.Config
	registry *unit.Registry
	filter   *discovery.Filter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	reg *unit.Registry,
	filter *discovery.Filter,
) *ListCommand {
	return &ListCommand{
		config:   cfg,
		registry: reg,
		filter:   filter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	selected := lc.filter.Select(lc.registry, lc.config.Filter, lc.config.Suite)

	if selected.Len() == 0 {
		color.New(color.FgYellow).Fprintln(cmd.OutOrStdout(), "No tests found")
		return nil
	}

	ui.NewFormatter(lc.config, cmd.OutOrStdout()).PrintCaseList(selected)
	return nil
}
