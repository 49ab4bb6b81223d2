// Package confirm holds the assertions used inside test bodies.
//
// A failed assertion stops the current body by panicking with a *Failure.
// The unit runner recovers it and turns it into the case outcome. Code
// running in other goroutines must use a Capture so the failure reaches
// the goroutine that runs the body.
package confirm

import (
	"fmt"
	"runtime"

	"verity/pkg/match"
)

// Failure is a failed assertion. Line is 0 when the source line is unknown.
type Failure struct {
	Reason string
	File   string
	Line   int
}

func (f *Failure) Error() string {
	if f.Line == 0 {
		return f.Reason
	}
	return fmt.Sprintf("confirm failed on line %d:\n%s", f.Line, f.Reason)
}

// raise must be called directly by the exported assertion so that the
// caller two frames up is the test body.
func raise(reason string) {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file, line = "", 0
	}
	panic(&Failure{Reason: reason, File: file, Line: line})
}

func expectedActual(expected, actual string) string {
	return "\tExpected: " + expected + "\n\tActual: " + actual
}

// Bool fails unless actual is expected. The reason only names the expected
// literal.
func Bool(expected, actual bool) {
	if expected != actual {
		raise("\tExpected: " + match.Format(expected))
	}
}

// True fails unless actual is true.
func True(actual bool) {
	if !actual {
		raise("\tExpected: true")
	}
}

// False fails unless actual is false.
func False(actual bool) {
	if actual {
		raise("\tExpected: false")
	}
}

// Equal compares exactly, except for floating-point values which go
// through match.ApproxEqual.
func Equal[T comparable](expected, actual T) {
	if !match.Equals(expected).Match(actual) {
		raise(expectedActual(match.Format(expected), match.Format(actual)))
	}
}

// Float asserts that actual is approximately equal to expected.
func Float[T match.Float](expected, actual T) {
	if !match.ApproxEqual(actual, expected) {
		raise(expectedActual(match.Format(expected), match.Format(actual)))
	}
}

// Extended is Float for extended-precision values.
func Extended(expected, actual match.Extended) {
	if !match.ApproxEqualExtended(actual, expected) {
		raise(expectedActual(expected.String(), actual.String()))
	}
}

// Text compares two pieces of text by content.
func Text[E, A match.Text](expected E, actual A) {
	if string(expected) != string(actual) {
		raise(expectedActual(string(expected), string(actual)))
	}
}

// That fails unless m matches actual. The reason shows m's description as
// the expected value.
func That[T any](actual T, m match.Matcher[T]) {
	if !m.Match(actual) {
		raise(expectedActual(m.Describe(), match.Format(actual)))
	}
}

// Fail stops the body with the given reason.
func Fail(reason string) {
	raise(reason)
}

// Check runs fn and returns the failure it raised, or nil. Panics other
// than *Failure are propagated.
func Check(fn func()) (failure *Failure) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		f, ok := r.(*Failure)
		if !ok {
			panic(r)
		}
		failure = f
	}()
	fn()
	return nil
}
