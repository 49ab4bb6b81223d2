package unit

import "time"

// StepKind tells a case apart from a fixture step.
type StepKind int

const (
	StepCase StepKind = iota
	StepSetup
	StepTeardown
)

func (k StepKind) String() string {
	switch k {
	case StepSetup:
		return "setup"
	case StepTeardown:
		return "teardown"
	default:
		return "test"
	}
}

// StepResult is the outcome of one case or fixture step.
type StepResult struct {
	Kind     StepKind
	Suite    string
	Name     string
	Outcome  Outcome
	Duration time.Duration
}

// SuiteResult groups the steps that ran for one suite.
type SuiteResult struct {
	Name           string
	SetupFailed    bool
	TeardownFailed bool
	// NotFound is set when the suite had cases but no fixtures.
	NotFound bool
	Steps    []StepResult
}

// Counts returns the passed, failed and missed steps of the suite.
func (s SuiteResult) Counts() (passed, failed, missed int) {
	for _, step := range s.Steps {
		switch step.Outcome.State {
		case Passed:
			passed++
		case Failed:
			failed++
		case Missed:
			missed++
		}
	}
	return passed, failed, missed
}

// Report is the result of a run. Passed and Failed count fixture steps as
// well as cases.
type Report struct {
	RunID     string
	StartedAt time.Time
	Duration  time.Duration
	Suites    int
	Passed    int
	Failed    int
	Missed    int
	// Aborted is set when the run stopped at a suite that was not found.
	Aborted bool
	Results []SuiteResult
}

// ExitCode is the failed count, capped to fit a process exit status.
func (r *Report) ExitCode() int {
	if r.Failed > 255 {
		return 255
	}
	return r.Failed
}

// Failures returns the failed and missed steps in run order.
func (r *Report) Failures() []StepResult {
	var failures []StepResult
	for _, suite := range r.Results {
		for _, step := range suite.Steps {
			if step.Outcome.State == Failed || step.Outcome.State == Missed {
				failures = append(failures, step)
			}
		}
	}
	return failures
}

func (r *Report) tally(o Outcome) {
	switch o.State {
	case Passed:
		r.Passed++
	case Failed:
		r.Failed++
	case Missed:
		r.Missed++
	}
}
