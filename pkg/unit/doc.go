// Package unit registers test cases and fixtures and runs them.
//
// Cases are grouped into suites. Named suites get their fixtures set up
// before their first case and torn down after their last one; cases outside
// any suite run under "Single Tests". A Runner walks the suites in
// registration order and writes a plain-text report:
//
//	reg := unit.NewRegistry()
//	reg.Test("adds", func(t *unit.T) {
//		confirm.Equal(4, 2+2)
//	})
//	report, err := unit.NewRunner(reg, unit.WithOutput(os.Stdout)).Run()
package unit
