// Package selftest registers the suites the verity binary runs on itself.
// Several cases are meant to fail and declare the reason they expect, so a
// healthy run reports no failures and a single missed expected failure.
package selftest

import (
	"verity/pkg/bench"
	"verity/pkg/unit"
)

// Register adds every self-test case and fixture to reg.
func Register(reg *unit.Registry) {
	registerCreation(reg)
	registerConfirm(reg)
	registerMatchers(reg)
	registerSetup(reg)
	registerGoroutines(reg)
}

// RegisterBenchmarks adds the self benchmarks to s.
func RegisterBenchmarks(s *bench.Suite) error {
	for _, b := range benchmarks() {
		if err := s.Add(b.Name, b.Task); err != nil {
			return err
		}
	}
	return nil
}
