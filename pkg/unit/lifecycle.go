package unit

import (
	"errors"
	"fmt"

	"verity/pkg/confirm"
)

// State is where a case or fixture is in its lifecycle.
type State int

const (
	NotRun State = iota
	Running
	Passed
	Failed
	// Missed means the body completed although a failure was expected.
	Missed
)

func (s State) String() string {
	switch s {
	case NotRun:
		return "not run"
	case Running:
		return "running"
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	case Missed:
		return "missed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Outcome is the result of one case or fixture step.
type Outcome struct {
	State State
	// Reason is the failure reason. For a case that passed because it failed
	// as expected it holds the matched reason.
	Reason string
	// Line is the source line of the failed assertion, 0 when unknown.
	Line int
	// ExpectedFailure is set when the case passed by failing with its
	// expected reason.
	ExpectedFailure bool
}

const (
	unexpectedPanicReason = "Unexpected exception thrown."
	missedReason          = "Test passed but was expected to fail."
)

// MissingPanic is raised when a case that expects a panic of some kind
// completes without one.
type MissingPanic struct {
	Kind string
}

func (e *MissingPanic) Error() string {
	return fmt.Sprintf("Expected exception type %s was not thrown.", e.Kind)
}

// UnexpectedPanic wraps any panic value that is neither an assertion
// failure nor an expected panic.
type UnexpectedPanic struct {
	Value any
}

func (e *UnexpectedPanic) Error() string {
	return unexpectedPanicReason
}

func classify(r any) error {
	switch v := r.(type) {
	case *confirm.Failure:
		return v
	case *MissingPanic:
		return v
	default:
		return &UnexpectedPanic{Value: r}
	}
}

func reasonOf(err error) (string, int) {
	var f *confirm.Failure
	if errors.As(err, &f) {
		return f.Reason, f.Line
	}
	var missing *MissingPanic
	if errors.As(err, &missing) {
		return missing.Error(), 0
	}
	return unexpectedPanicReason, 0
}

// resolve turns what a case body did into its final outcome. expected is
// the declared failure reason, empty when none is expected.
func resolve(expected string, err error) Outcome {
	if err == nil {
		if expected != "" {
			return Outcome{State: Missed, Reason: missedReason}
		}
		return Outcome{State: Passed}
	}

	reason, line := reasonOf(err)
	if expected != "" && reason == expected {
		return Outcome{State: Passed, Reason: reason, Line: line, ExpectedFailure: true}
	}
	return Outcome{State: Failed, Reason: reason, Line: line}
}

// settle resolves a fixture step, which has no expected failure.
func settle(err error) Outcome {
	return resolve("", err)
}
