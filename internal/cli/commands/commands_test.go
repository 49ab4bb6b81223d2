package commands

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"verity/internal/cli"
	"verity/internal/config"
	"verity/pkg/bench"
	"verity/pkg/confirm"
	"verity/pkg/unit"
)

func newRoot(t *testing.T, reg *unit.Registry, benches *bench.Suite, args ...string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	rootCmd := &cobra.Command{Use: "verity", SilenceUsage: true, SilenceErrors: true}
	cfg := config.New()
	var flags cli.Flags
	NewCommands(cfg, reg, benches).Register(rootCmd, &flags, cfg)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--project-path", t.TempDir(), "--no-color"))
	return rootCmd, &out
}

func passingRegistry() *unit.Registry {
	reg := unit.NewRegistry()
	reg.Test("Test int confirm", func(*unit.T) { confirm.Equal(4, 2+2) })
	reg.Test("Test bool confirm", func(*unit.T) { confirm.True(true) })
	return reg
}

func TestRunCommand_Passes(t *testing.T) {
	rootCmd, out := newRoot(t, passingRegistry(), nil, "run")

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "------- Test: Test int confirm\nPassed\n")
	assert.Contains(t, out.String(), "Tests passed: 2\nTests failed: 0\n")
}

func TestRunCommand_FailuresBecomeExitCode(t *testing.T) {
	reg := passingRegistry()
	reg.Test("Test broken", func(*unit.T) { confirm.False(true) })

	rootCmd, out := newRoot(t, reg, nil, "run", "--summary")
	err := rootCmd.Execute()

	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 1, exitErr.Code)
	assert.Contains(t, out.String(), "Tests failed: 1\n")
	assert.Contains(t, out.String(), "Test broken")
	assert.Contains(t, out.String(), "TOTAL")
}

func TestRunCommand_Filter(t *testing.T) {
	rootCmd, out := newRoot(t, passingRegistry(), nil, "run", "--filter", "*bool*")

	require.NoError(t, rootCmd.Execute())
	assert.NotContains(t, out.String(), "Test int confirm")
	assert.Contains(t, out.String(), "Tests passed: 1\n")
}

func TestRunCommand_NothingSelected(t *testing.T) {
	rootCmd, out := newRoot(t, passingRegistry(), nil, "run", "--filter", "nothing matches")

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "No tests to execute")
}

func TestRunCommand_SuiteNotFound(t *testing.T) {
	reg := unit.NewRegistry()
	reg.Test("orphan", func(*unit.T) {}, unit.InSuite("Missing"))

	rootCmd, out := newRoot(t, reg, nil, "run")
	err := rootCmd.Execute()

	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 1, exitErr.Code)
	assert.Contains(t, out.String(), "Test suite is not found. Exiting test application. \n")
}

func TestRunCommand_WritesJSONReport(t *testing.T) {
	dir := t.TempDir()
	rootCmd, _ := newRoot(t, passingRegistry(), nil)
	rootCmd.SetArgs([]string{"run", "--json", "--no-color", "--project-path", dir})

	require.NoError(t, rootCmd.Execute())
	_, err := os.Stat(filepath.Join(dir, config.DefaultOutputJSONDir, config.DefaultOutputJSONFile))
	assert.NoError(t, err)
}

func TestListCommand(t *testing.T) {
	reg := passingRegistry()
	reg.Fixture("Table", "Suite 1", func() {}, func() {})
	reg.Test("Grouped", func(*unit.T) {}, unit.InSuite("Suite 1"))

	rootCmd, out := newRoot(t, reg, nil, "list")

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Found 3 test case(s) in 2 suite(s):")
	assert.Contains(t, out.String(), "Single Tests")
	assert.Contains(t, out.String(), "Suite 1")
}

func TestListCommand_Suite(t *testing.T) {
	reg := passingRegistry()
	reg.Fixture("Table", "Suite 1", func() {}, func() {})
	reg.Test("Grouped", func(*unit.T) {}, unit.InSuite("Suite 1"))

	rootCmd, out := newRoot(t, reg, nil, "list", "--suite", "Single Tests")

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Found 2 test case(s) in 1 suite(s):")
	assert.NotContains(t, out.String(), "Grouped")
}

func TestFailuresCommand_MissingReport(t *testing.T) {
	rootCmd, _ := newRoot(t, passingRegistry(), nil, "failures")

	assert.Error(t, rootCmd.Execute())
}

func TestBenchCommand(t *testing.T) {
	benches := bench.NewSuite()
	require.NoError(t, benches.Add("noop", func() {}))

	rootCmd, out := newRoot(t, unit.NewRegistry(), benches, "bench")

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Benchmark")
	assert.Contains(t, out.String(), "noop")
}

func TestBenchCommand_Empty(t *testing.T) {
	rootCmd, out := newRoot(t, unit.NewRegistry(), nil, "bench")

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "No benchmarks registered")
}

func TestBenchCommand_Filter(t *testing.T) {
	benches := bench.NewSuite()
	require.NoError(t, benches.Add("String creation", func() {}))
	require.NoError(t, benches.Add("Vector push", func() {}))

	rootCmd, out := newRoot(t, unit.NewRegistry(), benches, "bench", "--filter", "*push*")

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Vector push")
	assert.NotContains(t, out.String(), "String creation")
}

func TestBenchCommand_FilterMatchesNothing(t *testing.T) {
	benches := bench.NewSuite()
	require.NoError(t, benches.Add("noop", func() {}))

	rootCmd, out := newRoot(t, unit.NewRegistry(), benches, "bench", "-f", "missing")

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "No benchmarks match the filter")
	assert.NotContains(t, out.String(), "noop")
}
