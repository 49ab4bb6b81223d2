package unit

import (
	"reflect"

	"verity/pkg/confirm"
)

// PanicKind identifies the kind of panic value a case expects.
type PanicKind struct {
	name  string
	match func(v any) bool
}

// KindOf returns the panic kind for values of type K. When K is an
// interface, any value implementing it matches.
func KindOf[K any]() PanicKind {
	return PanicKind{
		name: reflect.TypeOf((*K)(nil)).Elem().String(),
		match: func(v any) bool {
			_, ok := v.(K)
			return ok
		},
	}
}

func (k PanicKind) String() string {
	return k.name
}

// Case is a single registered test case.
type Case struct {
	Name string
	// Suite is empty for cases that belong to no suite.
	Suite string
	Body  func(t *T)
	// ExpectedFailure, when set, is the exact reason the case must fail
	// with to pass.
	ExpectedFailure string
	// Expects, when set, makes a panic of that kind count as completion.
	Expects *PanicKind

	outcome Outcome
}

// Outcome returns the result of the last run.
func (c *Case) Outcome() Outcome {
	return c.outcome
}

// T is handed to case bodies.
type T struct {
	c        *Case
	expected string
}

func (t *T) Name() string {
	return t.c.Name
}

func (t *T) Suite() string {
	return t.c.Suite
}

// ExpectFailure declares that the case passes only if it fails with
// exactly this reason. It overrides any reason given at registration.
func (t *T) ExpectFailure(reason string) {
	t.expected = reason
}

// CaseOption configures a case at registration.
type CaseOption func(*Case)

// InSuite places the case in a named suite.
func InSuite(suite string) CaseOption {
	return func(c *Case) {
		c.Suite = suite
	}
}

// ExpectingPanic makes a panic of the given kind count as completion. If
// the body completes without one the case fails with
// "Expected exception type K was not thrown.".
func ExpectingPanic(kind PanicKind) CaseOption {
	return func(c *Case) {
		c.Expects = &kind
	}
}

// ExpectingFailure declares the reason the case is expected to fail with.
func ExpectingFailure(reason string) CaseOption {
	return func(c *Case) {
		c.ExpectedFailure = reason
	}
}

// run executes the case and records its outcome.
func (c *Case) run() Outcome {
	t := &T{c: c, expected: c.ExpectedFailure}
	c.outcome = Outcome{State: Running}
	err := t.invoke()
	c.outcome = resolve(t.expected, err)
	return c.outcome
}

func (t *T) invoke() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = classify(r)
		}
	}()

	if t.c.Expects == nil {
		t.c.Body(t)
		return nil
	}
	return t.invokeExpecting(*t.c.Expects)
}

func (t *T) invokeExpecting(kind PanicKind) (err error) {
	completed := false
	defer func() {
		if completed {
			return
		}
		r := recover()
		if r == nil {
			return
		}
		if _, assertion := r.(*confirm.Failure); !assertion && kind.match(r) {
			err = nil
			return
		}
		panic(r)
	}()

	t.c.Body(t)
	completed = true
	return &MissingPanic{Kind: kind.String()}
}

// call runs a fixture step and reports what it raised.
func call(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = classify(r)
		}
	}()
	fn()
	return nil
}
