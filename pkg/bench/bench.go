// Package bench times registered tasks and prints how long each one took.
package bench

import (
	"errors"
	"fmt"
	"io"
	"time"
)

var ErrDuplicate = errors.New("benchmark already registered")

// Benchmark is a named task timed as a single run.
type Benchmark struct {
	Name string
	Task func()
}

// Result is the elapsed wall time of one benchmark.
type Result struct {
	Name    string
	Elapsed time.Duration
}

// Nanoseconds returns the elapsed time as fractional nanoseconds.
func (r Result) Nanoseconds() float64 {
	return float64(r.Elapsed) / float64(time.Nanosecond)
}

// Suite holds benchmarks in registration order.
type Suite struct {
	benchmarks []Benchmark
	names      map[string]struct{}
	clock      func() time.Time
}

func NewSuite() *Suite {
	return &Suite{
		names: make(map[string]struct{}),
		clock: time.Now,
	}
}

// Add registers a benchmark. Names must be unique.
func (s *Suite) Add(name string, task func()) error {
	if _, ok := s.names[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicate, name)
	}
	s.names[name] = struct{}{}
	s.benchmarks = append(s.benchmarks, Benchmark{Name: name, Task: task})
	return nil
}

func (s *Suite) Len() int {
	return len(s.benchmarks)
}

// Names returns the benchmark names in registration order.
func (s *Suite) Names() []string {
	names := make([]string, 0, len(s.benchmarks))
	for _, b := range s.benchmarks {
		names = append(names, b.Name)
	}
	return names
}

// Only returns a suite holding the benchmarks whose names are listed,
// still in registration order. Unknown names are ignored.
func (s *Suite) Only(names []string) *Suite {
	keep := make(map[string]struct{}, len(names))
	for _, n := range names {
		keep[n] = struct{}{}
	}

	out := &Suite{names: make(map[string]struct{}), clock: s.clock}
	for _, b := range s.benchmarks {
		if _, ok := keep[b.Name]; ok {
			out.names[b.Name] = struct{}{}
			out.benchmarks = append(out.benchmarks, b)
		}
	}
	return out
}

// Run runs every benchmark once, in order, and writes one line per
// benchmark under a header.
func (s *Suite) Run(w io.Writer) []Result {
	const rule = "------------------------------------------------------\n"

	fmt.Fprint(w, rule)
	fmt.Fprintf(w, "%-21s%-17s\n", "Benchmark", "Time")
	fmt.Fprint(w, rule)

	results := make([]Result, 0, len(s.benchmarks))
	for _, b := range s.benchmarks {
		start := s.clock()
		b.Task()
		r := Result{Name: b.Name, Elapsed: s.clock().Sub(start)}
		results = append(results, r)
		fmt.Fprintf(w, "%-21s%.2f ns\n", r.Name, r.Nanoseconds())
	}
	return results
}
