package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"verity/internal/config"
	"verity/internal/discovery"
	"verity/pkg/bench"
)

// BenchCommand handles the bench command
type BenchCommand struct {
	config *config.Config
	suite  *bench.Suite
	filter *discovery.Filter
}

// NewBenchCommand creates a new BenchCommand
func NewBenchCommand(cfg *config.Config, suite *bench.Suite, filter *discovery.Filter) *BenchCommand {
	return &BenchCommand{config: cfg, suite: suite, filter: filter}
}

// Execute runs the command
func (bc *BenchCommand) Execute(cmd *cobra.Command, args []string) error {
	if bc.suite == nil || bc.suite.Len() == 0 {
		color.New(color.FgYellow).Fprintln(cmd.OutOrStdout(), "No benchmarks registered")
		return nil
	}

	suite := bc.suite
	if bc.config.Filter != "" {
		suite = suite.Only(bc.filter.FilterByName(suite.Names(), bc.config.Filter))
	}
	if suite.Len() == 0 {
		color.New(color.FgYellow).Fprintln(cmd.OutOrStdout(), "No benchmarks match the filter")
		return nil
	}

	suite.Run(cmd.OutOrStdout())
	return nil
}
