package unit

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"verity/pkg/confirm"
)

type tableError struct{}

func (tableError) Error() string { return "table missing" }

func TestCaseRun(t *testing.T) {
	tests := []struct {
		name    string
		c       *Case
		outcome Outcome
	}{
		{
			name:    "plain body",
			c:       &Case{Name: "plain", Body: func(*T) {}},
			outcome: Outcome{State: Passed},
		},
		{
			name:    "expected panic kind",
			c:       &Case{Name: "throws", Body: func(*T) { panic(1) }, Expects: ptr(KindOf[int]())},
			outcome: Outcome{State: Passed},
		},
		{
			name:    "missing panic",
			c:       &Case{Name: "quiet", Body: func(*T) {}, Expects: ptr(KindOf[int]())},
			outcome: Outcome{State: Failed, Reason: "Expected exception type int was not thrown."},
		},
		{
			name:    "wrong panic kind",
			c:       &Case{Name: "wrong", Body: func(*T) { panic("text") }, Expects: ptr(KindOf[int]())},
			outcome: Outcome{State: Failed, Reason: "Unexpected exception thrown."},
		},
		{
			name:    "interface kind",
			c:       &Case{Name: "error", Body: func(*T) { panic(tableError{}) }, Expects: ptr(KindOf[error]())},
			outcome: Outcome{State: Passed},
		},
		{
			name: "assertion failure is not swallowed by an error kind",
			c: &Case{Name: "assert", Body: func(*T) {
				panic(&confirm.Failure{Reason: "\tExpected: true", Line: 4})
			}, Expects: ptr(KindOf[error]())},
			outcome: Outcome{State: Failed, Reason: "\tExpected: true", Line: 4},
		},
		{
			name: "declared expected failure",
			c: &Case{Name: "declared", Body: func(*T) { panic("boom") },
				ExpectedFailure: "Unexpected exception thrown."},
			outcome: Outcome{State: Passed, Reason: "Unexpected exception thrown.", ExpectedFailure: true},
		},
		{
			name: "body overrides expected failure",
			c: &Case{Name: "override", Body: func(t *T) {
				t.ExpectFailure("\tExpected: false")
				panic(&confirm.Failure{Reason: "\tExpected: false", Line: 9})
			}, ExpectedFailure: "something else"},
			outcome: Outcome{State: Passed, Reason: "\tExpected: false", Line: 9, ExpectedFailure: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.outcome, tt.c.run())
			assert.Equal(t, tt.outcome, tt.c.Outcome())
		})
	}
}

func TestCaseRunHonorsExpectationDeclaredInBody(t *testing.T) {
	c := &Case{Name: "declared in body", Body: func(t *T) {
		t.ExpectFailure("boom")
		confirm.Fail("boom")
	}}

	out := c.run()
	assert.Equal(t, Passed, out.State)
	assert.True(t, out.ExpectedFailure)
	assert.Equal(t, "boom", out.Reason)
}

func TestCaseRunDoesNotKeepBodyExpectation(t *testing.T) {
	first := true
	c := &Case{Name: "flip", Body: func(t *T) {
		if first {
			t.ExpectFailure("never")
		}
	}}

	assert.Equal(t, Missed, c.run().State)
	first = false
	assert.Equal(t, Passed, c.run().State)
}

func TestKindOfNames(t *testing.T) {
	assert.Equal(t, "int", KindOf[int]().String())
	assert.Equal(t, "string", KindOf[string]().String())
	assert.Equal(t, "error", KindOf[error]().String())
	assert.Equal(t, "unit.tableError", KindOf[tableError]().String())
}

func TestCall(t *testing.T) {
	assert.NoError(t, call(func() {}))

	var f *confirm.Failure
	assert.True(t, errors.As(call(func() { confirm.True(false) }), &f))

	var unexpected *UnexpectedPanic
	err := call(func() { panic(fmt.Errorf("boom")) })
	assert.True(t, errors.As(err, &unexpected))
	assert.Equal(t, "Unexpected exception thrown.", err.Error())
}

func ptr[V any](v V) *V {
	return &v
}
