package unit

// Fixture is a setup and teardown pair attached to a named suite. Setup
// runs before the suite's first case and teardown after its last one.
// Either function may be nil.
type Fixture struct {
	Name     string
	Suite    string
	Setup    func()
	Teardown func()

	outcome Outcome
}

// Outcome returns the result of the last run. A teardown failure replaces a
// passed setup.
func (f *Fixture) Outcome() Outcome {
	return f.outcome
}

func (f *Fixture) setup() Outcome {
	f.outcome = Outcome{State: Running}
	f.outcome = settle(call(orNoop(f.Setup)))
	return f.outcome
}

func (f *Fixture) teardown() Outcome {
	o := settle(call(orNoop(f.Teardown)))
	if o.State == Failed {
		f.outcome = o
	}
	return o
}

func orNoop(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	return fn
}

// Provider is a value that can prepare and release some state.
type Provider interface {
	Setup()
	Teardown()
}

// Provide registers p as a fixture of suite and returns it, so cases of the
// suite can read the state it prepares.
func Provide[P Provider](r *Registry, name, suite string, p P) P {
	r.Fixture(name, suite, p.Setup, p.Teardown)
	return p
}

// Use sets p up for the rest of a case body and returns its teardown:
//
//	defer unit.Use(&entry)()
func Use(p Provider) func() {
	p.Setup()
	return p.Teardown
}
