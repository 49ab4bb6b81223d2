package unit

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrRegistrySealed is returned when registering after a run started.
	ErrRegistrySealed = errors.New("registry is sealed")
	// ErrSuiteNotFound is returned by Run when a suite has cases but no
	// fixtures.
	ErrSuiteNotFound = errors.New("test suite is not found")
	// ErrInvalidCase is returned for cases without a name or body.
	ErrInvalidCase = errors.New("invalid test case")
)

// Registry collects cases and fixtures grouped by suite. Suites keep the
// order in which their first case was registered. A registry is sealed by
// its first run or selection and rejects further registration.
type Registry struct {
	mu       sync.Mutex
	order    []string
	cases    map[string][]*Case
	fixtures map[string][]*Fixture
	sealed   bool
}

func NewRegistry() *Registry {
	return &Registry{
		cases:    make(map[string][]*Case),
		fixtures: make(map[string][]*Fixture),
	}
}

// Add registers c under its suite.
func (r *Registry) Add(c *Case) error {
	if c.Name == "" || c.Body == nil {
		return fmt.Errorf("%w: name and body are required", ErrInvalidCase)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return fmt.Errorf("%w: cannot add case %q", ErrRegistrySealed, c.Name)
	}
	if _, ok := r.cases[c.Suite]; !ok {
		r.order = append(r.order, c.Suite)
	}
	r.cases[c.Suite] = append(r.cases[c.Suite], c)
	return nil
}

// AddFixture registers f under its suite. Fixtures do not create suites;
// a suite runs only when it has at least one case.
func (r *Registry) AddFixture(f *Fixture) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return fmt.Errorf("%w: cannot add fixture %q", ErrRegistrySealed, f.Name)
	}
	r.fixtures[f.Suite] = append(r.fixtures[f.Suite], f)
	return nil
}

// Test registers a case and returns it. It panics if the registry is
// sealed, since that is a programming error in the registration code.
func (r *Registry) Test(name string, body func(t *T), opts ...CaseOption) *Case {
	c := &Case{Name: name, Body: body}
	for _, opt := range opts {
		opt(c)
	}
	if err := r.Add(c); err != nil {
		panic(err)
	}
	return c
}

// Fixture registers a setup and teardown pair for suite and returns it.
// Like Test it panics if the registry is sealed.
func (r *Registry) Fixture(name, suite string, setup, teardown func()) *Fixture {
	f := &Fixture{Name: name, Suite: suite, Setup: setup, Teardown: teardown}
	if err := r.AddFixture(f); err != nil {
		panic(err)
	}
	return f
}

// Suites returns the names of suites with cases in run order. The
// ungrouped suite is the empty string.
func (r *Registry) Suites() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.order...)
}

// Cases returns the cases of suite in registration order.
func (r *Registry) Cases(suite string) []*Case {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*Case(nil), r.cases[suite]...)
}

// Fixtures returns the fixtures of suite in registration order.
func (r *Registry) Fixtures(suite string) []*Fixture {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*Fixture(nil), r.fixtures[suite]...)
}

// Len returns the number of registered cases.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, cases := range r.cases {
		n += len(cases)
	}
	return n
}

// Seal stops further registration.
func (r *Registry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed = true
}

func (r *Registry) Sealed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sealed
}

// Select seals r and returns a new registry holding the cases keep accepts,
// together with the fixtures of every suite that still has a case.
func (r *Registry) Select(keep func(c *Case) bool) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed = true

	selected := NewRegistry()
	for _, suite := range r.order {
		var cases []*Case
		for _, c := range r.cases[suite] {
			if keep(c) {
				cases = append(cases, c)
			}
		}
		if len(cases) == 0 {
			continue
		}
		selected.order = append(selected.order, suite)
		selected.cases[suite] = cases
		if fixtures, ok := r.fixtures[suite]; ok {
			selected.fixtures[suite] = append([]*Fixture(nil), fixtures...)
		}
	}
	return selected
}

type suitePlan struct {
	name     string
	cases    []*Case
	fixtures []*Fixture
}

// plan seals r, clears the outcomes of the previous run and returns the
// suites to run.
func (r *Registry) plan() []suitePlan {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed = true

	plans := make([]suitePlan, 0, len(r.order))
	for _, suite := range r.order {
		for _, c := range r.cases[suite] {
			c.outcome = Outcome{}
		}
		for _, f := range r.fixtures[suite] {
			f.outcome = Outcome{}
		}
		plans = append(plans, suitePlan{
			name:     suite,
			cases:    r.cases[suite],
			fixtures: r.fixtures[suite],
		})
	}
	return plans
}
