package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"verity/internal/cli"
	"verity/internal/cli/commands"
	"verity/internal/config"
	"verity/internal/selftest"
	"verity/pkg/bench"
	"verity/pkg/unit"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "verity",
		Short:         "Lightweight unit-test runner",
		Long:          `Run registered test suites in order: suite setup, every case, suite teardown. Prints a plain-text report and can export the run as JSON and Prometheus metrics.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Register the built-in suites and benchmarks
	reg := unit.NewRegistry()
	selftest.Register(reg)
	benches := bench.NewSuite()
	if err := selftest.RegisterBenchmarks(benches); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg, reg, benches)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
