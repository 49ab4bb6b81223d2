package unit

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Observer is notified while a run progresses. Calls happen on the goroutine
// that called Run.
type Observer interface {
	SuiteStarted(suite string)
	StepFinished(step StepResult)
}

// Runner runs every suite of a registry and prints the plain-text report.
type Runner struct {
	registry  *Registry
	out       io.Writer
	log       *zap.Logger
	observers []Observer
}

type Option func(*Runner)

// WithOutput sets where the text report is written. It defaults to
// io.Discard.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.out = w
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(r *Runner) {
		r.log = log
	}
}

func WithObserver(o Observer) Option {
	return func(r *Runner) {
		r.observers = append(r.observers, o)
	}
}

func NewRunner(registry *Registry, opts ...Option) *Runner {
	r := &Runner{
		registry: registry,
		out:      io.Discard,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run seals the registry and runs its suites in order. The returned report
// is complete even when an error is returned; the only error is
// ErrSuiteNotFound, after which the remaining suites are not run.
func (r *Runner) Run() (*Report, error) {
	plans := r.registry.plan()
	report := &Report{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
		Suites:    len(plans),
	}
	log := r.log.With(zap.String("run_id", report.RunID))
	log.Debug("starting run", zap.Int("suites", len(plans)))

	var err error
	fmt.Fprintf(r.out, "Running %d test suites\n", len(plans))
	for _, plan := range plans {
		result, ok := r.runSuite(plan, report, log)
		report.Results = append(report.Results, result)
		if !ok {
			report.Aborted = true
			err = fmt.Errorf("%w: %q", ErrSuiteNotFound, plan.name)
			break
		}
	}

	fmt.Fprint(r.out, "-----------------------------------\n")
	fmt.Fprintf(r.out, "Tests passed: %d\n", report.Passed)
	fmt.Fprintf(r.out, "Tests failed: %d\n", report.Failed)
	if report.Missed != 0 {
		fmt.Fprintf(r.out, "Tests failures missed: %d", report.Missed)
	}
	fmt.Fprint(r.out, "\n")

	report.Duration = time.Since(report.StartedAt)
	log.Info("run finished",
		zap.Int("passed", report.Passed),
		zap.Int("failed", report.Failed),
		zap.Int("missed", report.Missed),
		zap.Duration("duration", report.Duration),
	)
	return report, err
}

// runSuite returns false when the suite was not found and the run must stop.
func (r *Runner) runSuite(plan suitePlan, report *Report, log *zap.Logger) (SuiteResult, bool) {
	result := SuiteResult{Name: plan.name}
	log = log.With(zap.String("suite", plan.name))

	display := plan.name
	if display == "" {
		display = "Single Tests"
	}
	fmt.Fprintf(r.out, "--------------- Suite: %s\n", display)
	for _, o := range r.observers {
		o.SuiteStarted(plan.name)
	}

	named := plan.name != ""
	if named {
		if len(plan.fixtures) == 0 {
			fmt.Fprint(r.out, "Test suite is not found. Exiting test application. \n")
			report.Failed++
			result.NotFound = true
			log.Error("suite has no fixtures")
			return result, false
		}
		if !r.runFixtures(plan.fixtures, StepSetup, report, &result) {
			fmt.Fprint(r.out, "Test suite setup failed. Skipping tests in suite.\n")
			result.SetupFailed = true
			log.Warn("suite setup failed, skipping cases", zap.Int("cases", len(plan.cases)))
			return result, true
		}
	}

	for _, c := range plan.cases {
		r.runCase(c, report, &result)
	}

	if named && !r.runFixtures(plan.fixtures, StepTeardown, report, &result) {
		fmt.Fprint(r.out, "Test suite teardown failed.\n")
		result.TeardownFailed = true
		log.Warn("suite teardown failed")
	}
	return result, true
}

func (r *Runner) runCase(c *Case, report *Report, result *SuiteResult) {
	fmt.Fprintf(r.out, "------- Test: %s\n", c.Name)

	start := time.Now()
	o := c.run()
	step := StepResult{Kind: StepCase, Suite: c.Suite, Name: c.Name, Outcome: o, Duration: time.Since(start)}

	switch {
	case o.State == Missed:
		fmt.Fprint(r.out, "Missed expected failure\n")
		fmt.Fprintf(r.out, "%s\n", o.Reason)
	case o.State == Passed && o.ExpectedFailure:
		fmt.Fprint(r.out, "Expected failure\n")
		fmt.Fprintf(r.out, "%s\n", o.Reason)
	case o.State == Passed:
		fmt.Fprint(r.out, "Passed\n")
	default:
		r.printFailure(o)
	}

	r.log.Debug("case finished",
		zap.String("suite", c.Suite),
		zap.String("case", c.Name),
		zap.Stringer("state", o.State),
		zap.Duration("duration", step.Duration),
	)
	r.record(step, report, result)
}

// runFixtures runs one step of every fixture. Setup stops at the first
// failure; teardown runs them all. It reports whether every step passed.
func (r *Runner) runFixtures(fixtures []*Fixture, kind StepKind, report *Report, result *SuiteResult) bool {
	ok := true
	for _, f := range fixtures {
		if kind == StepSetup {
			fmt.Fprintf(r.out, "------- Setup: %s\n", f.Name)
		} else {
			fmt.Fprintf(r.out, "------- Teardown: %s\n", f.Name)
		}

		start := time.Now()
		var o Outcome
		if kind == StepSetup {
			o = f.setup()
		} else {
			o = f.teardown()
		}
		step := StepResult{Kind: kind, Suite: f.Suite, Name: f.Name, Outcome: o, Duration: time.Since(start)}

		if o.State == Passed {
			fmt.Fprint(r.out, "Passed\n")
		} else {
			r.printFailure(o)
			ok = false
		}
		r.record(step, report, result)

		if !ok && kind == StepSetup {
			return false
		}
	}
	return ok
}

func (r *Runner) printFailure(o Outcome) {
	if o.Line != 0 {
		fmt.Fprintf(r.out, "Failed confirm on line %d\n", o.Line)
	} else {
		fmt.Fprint(r.out, "Failed\n")
	}
	fmt.Fprintf(r.out, "%s\n", o.Reason)
}

func (r *Runner) record(step StepResult, report *Report, result *SuiteResult) {
	report.tally(step.Outcome)
	result.Steps = append(result.Steps, step)
	for _, o := range r.observers {
		o.StepFinished(step)
	}
}
