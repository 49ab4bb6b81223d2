package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"verity/internal/cli"
	"verity/internal/config"
	"verity/internal/discovery"
	"verity/internal/storage"
	"verity/pkg/bench"
	"verity/pkg/unit"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Failures *FailuresCommand
	Bench    *BenchCommand
}

// NewCommands creates all commands with dependencies. reg and benches hold
// what the binary registered at startup.
func NewCommands(cfg *config.Config, reg *unit.Registry, benches *bench.Suite) *Commands {
	filter := discovery.NewFilter()
	jsonStorage := storage.NewJSONStorage(cfg)

	return &Commands{
		Run:      NewRunCommand(cfg, reg, filter, jsonStorage),
		List:     NewListCommand(cfg, reg, filter),
		Failures: NewFailuresCommand(cfg, jsonStorage),
		Bench:    NewBenchCommand(cfg, benches, filter),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	loadConfig := func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(flags.ToConfigFlags())
		if err != nil {
			return err
		}
		*cfg = *loaded
		if cfg.NoColor {
			color.NoColor = true
		}
		return nil
	}

	rootCmd.PersistentFlags().StringVar(&flags.ConfigFile, "config", "", "Path to the config file (default: verity.yaml in the project)")
	rootCmd.PersistentFlags().StringVar(&flags.ProjectPath, "project-path", "", "Directory holding verity.yaml, .env and the report dir")
	rootCmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", "", "Log level for diagnostics on stderr (debug, info, warn, error, off)")
	rootCmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")

	// Run command
	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Run the registered test suites",
		Long:    "Run every registered suite in order, printing the text report and exporting the results",
		RunE:    c.Run.Execute,
		PreRunE: loadConfig,
	}
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter cases by name pattern (supports wildcards, e.g., 'Test *confirm*' or '*float*')")
	runCmd.Flags().StringVarP(&flags.Suite, "suite", "s", "", "Run only the named suite ('Single Tests' for ungrouped cases)")
	runCmd.Flags().BoolVar(&flags.JSON, "json", false, "Write the JSON report to the output dir")
	runCmd.Flags().StringVar(&flags.OutputDir, "output-dir", "", "Directory for the JSON report, relative to the project")
	runCmd.Flags().StringVar(&flags.MetricsTextfile, "metrics-textfile", "", "Write Prometheus metrics of the run to this file")
	runCmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar instead of the streaming report")
	runCmd.Flags().BoolVar(&flags.Summary, "summary", false, "Print a per-suite summary table after the run")
	runCmd.Flags().BoolVar(&flags.View, "view", false, "Open the failures viewer when the run has failures")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List registered test cases",
		Long:    "List the registered suites and their cases without running them",
		RunE:    c.List.Execute,
		PreRunE: loadConfig,
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter cases by name pattern (supports wildcards, e.g., 'Test *confirm*' or '*float*')")
	listCmd.Flags().StringVarP(&flags.Suite, "suite", "s", "", "List only the named suite ('Single Tests' for ungrouped cases)")
	rootCmd.AddCommand(listCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:     "failures",
		Short:   "View failures of the last run interactively",
		Long:    "Display failures from the last JSON report in an interactive viewer",
		RunE:    c.Failures.Execute,
		PreRunE: loadConfig,
	}
	failuresCmd.Flags().StringVar(&flags.OutputDir, "output-dir", "", "Directory holding the JSON report, relative to the project")
	rootCmd.AddCommand(failuresCmd)

	// Bench command
	benchCmd := &cobra.Command{
		Use:     "bench",
		Short:   "Run the registered benchmarks",
		Long:    "Time every registered benchmark once and print the results",
		RunE:    c.Bench.Execute,
		PreRunE: loadConfig,
	}
	benchCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Run only benchmarks whose name matches the pattern (supports wildcards)")
	rootCmd.AddCommand(benchCmd)
}
