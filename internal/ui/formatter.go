package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"verity/internal/config"
	"verity/internal/domain"
	"verity/pkg/unit"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
	out    io.Writer
}

// NewFormatter creates a new Formatter writing to out
func NewFormatter(cfg *config.Config, out io.Writer) *Formatter {
	if cfg.NoColor {
		color.NoColor = true
	}
	return &Formatter{
		config: cfg,
		out:    out,
	}
}

// PrintSummary prints the per-suite table of a run followed by a status
// line and, if anything failed, the failure tree.
func (f *Formatter) PrintSummary(output *domain.RunOutput) {
	meta := output.Meta

	t := table.NewWriter()
	t.SetOutputMirror(f.out)
	t.SetTitle(fmt.Sprintf("Verity Results (%.2fs)", meta.DurationSeconds))

	t.AppendHeader(table.Row{"Suite", "Passed", "Failed", "Missed", "Status"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Suite", WidthMax: 50},
		{Name: "Passed", Align: text.AlignRight},
		{Name: "Failed", Align: text.AlignRight},
		{Name: "Missed", Align: text.AlignRight},
	})

	for _, suite := range output.Suites {
		t.AppendRow(table.Row{
			domain.SuiteLabel(suite.Name),
			suite.Passed,
			suite.Failed,
			suite.Missed,
			suiteStatus(suite),
		})
	}

	t.AppendFooter(table.Row{"TOTAL", meta.Passed, meta.Failed, meta.Missed, runStatus(meta)})

	if f.config.NoColor {
		t.SetStyle(table.StyleLight)
	} else if meta.Failed == 0 && meta.Missed == 0 {
		t.SetStyle(table.StyleColoredBlackOnGreenWhite)
	} else if meta.Failed == 0 {
		t.SetStyle(table.StyleColoredBlackOnYellowWhite)
	} else {
		t.SetStyle(table.StyleColoredBlackOnRedWhite)
	}
	t.Render()

	// Print summary line
	fmt.Fprintln(f.out)
	switch {
	case meta.Failed == 0 && meta.Missed == 0:
		color.New(color.FgGreen).Fprintln(f.out, "✓ All tests passed!")
	case meta.Failed == 0:
		color.New(color.FgYellow).Fprintf(f.out, "! %d expected failure(s) missed\n", meta.Missed)
	default:
		color.New(color.FgRed).Fprintf(f.out, "✗ %d failure(s) in %d suite(s)\n", meta.Failed, meta.FailedSuites)
	}
	if meta.Aborted {
		color.New(color.FgRed).Fprintln(f.out, "✗ Run aborted: a suite has no setup or teardown registered")
	}

	if len(output.Details) > 0 {
		fmt.Fprintln(f.out)
		f.printFailureTree(output.Details)
	}
}

func suiteStatus(s domain.SuiteSummary) string {
	switch {
	case s.NotFound:
		return "NOT FOUND"
	case s.SetupFailed:
		return "SETUP FAILED"
	case s.TeardownFailed:
		return "TEARDOWN FAILED"
	case s.Failed > 0:
		return "FAIL"
	case s.Missed > 0:
		return "MISSED"
	default:
		return "PASS"
	}
}

func runStatus(meta domain.RunMeta) string {
	switch {
	case meta.Aborted:
		return "ABORTED"
	case meta.Failed > 0:
		return "FAIL"
	case meta.Missed > 0:
		return "MISSED"
	default:
		return "PASS"
	}
}

// printFailureTree prints failures grouped by suite in run order
func (f *Formatter) printFailureTree(failures []domain.CaseFailure) {
	var suites []string
	bySuite := make(map[string][]domain.CaseFailure)
	for _, failure := range failures {
		label := failure.SuiteLabel()
		if _, ok := bySuite[label]; !ok {
			suites = append(suites, label)
		}
		bySuite[label] = append(bySuite[label], failure)
	}

	cyan := color.New(color.FgCyan)
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)

	for i, suite := range suites {
		isLastSuite := i == len(suites)-1
		connector, childPrefix := "├── ", "│   "
		if isLastSuite {
			connector, childPrefix = "└── ", "    "
		}
		cyan.Fprintf(f.out, "%s%s\n", connector, suite)

		for j, failure := range bySuite[suite] {
			isLastCase := j == len(bySuite[suite])-1
			caseConnector, reasonPrefix := "├── ", "│   "
			if isLastCase {
				caseConnector, reasonPrefix = "└── ", "    "
			}

			name := failure.Name
			if failure.Kind != unit.StepCase.String() {
				name = fmt.Sprintf("%s (%s)", failure.Name, failure.Kind)
			}
			if failure.State == unit.Missed.String() {
				yellow.Fprintf(f.out, "%s%s%s\n", childPrefix, caseConnector, name)
			} else {
				red.Fprintf(f.out, "%s%s%s\n", childPrefix, caseConnector, name)
			}

			for _, line := range strings.Split(describeFailure(failure), "\n") {
				fmt.Fprintf(f.out, "%s%s    %s\n", childPrefix, reasonPrefix, strings.TrimLeft(line, "\t"))
			}
		}
	}
}

func describeFailure(failure domain.CaseFailure) string {
	if failure.Line > 0 {
		return fmt.Sprintf("line %d\n%s", failure.Line, failure.Message)
	}
	return failure.Message
}

// PrintCaseList prints the suites of reg and their cases as a tree
func (f *Formatter) PrintCaseList(reg *unit.Registry) {
	suites := reg.Suites()
	color.New(color.FgGreen).Fprintf(f.out, "Found %d test case(s) in %d suite(s):\n\n", reg.Len(), len(suites))

	cyan := color.New(color.FgCyan)
	for i, suite := range suites {
		isLastSuite := i == len(suites)-1
		if isLastSuite {
			cyan.Fprintf(f.out, "└── %s\n", domain.SuiteLabel(suite))
		} else {
			cyan.Fprintf(f.out, "├── %s\n", domain.SuiteLabel(suite))
		}

		cases := reg.Cases(suite)
		for j, c := range cases {
			isLastCase := j == len(cases)-1

			var prefix string
			if isLastSuite {
				if isLastCase {
					prefix = "    └── "
				} else {
					prefix = "    ├── "
				}
			} else {
				if isLastCase {
					prefix = "│   └── "
				} else {
					prefix = "│   ├── "
				}
			}
			fmt.Fprintf(f.out, "%s%s%s\n", prefix, color.YellowString(c.Name), caseMarker(c))
		}
	}
}

func caseMarker(c *unit.Case) string {
	switch {
	case c.Expects != nil:
		return " " + color.MagentaString("[panics %s]", c.Expects)
	case c.ExpectedFailure != "":
		return " " + color.MagentaString("[expected failure]")
	default:
		return ""
	}
}
