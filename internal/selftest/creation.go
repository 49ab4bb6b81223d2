package selftest

import "verity/pkg/unit"

func registerCreation(reg *unit.Registry) {
	reg.Test("Test created", func(t *unit.T) {})

	// Fails with an unexpected panic, which is what it declares.
	reg.Test("Test that throws unexpectedly created", func(t *unit.T) {
		t.ExpectFailure("Unexpected exception thrown.")
		panic("Unexpected")
	})

	// Declares a failure that never happens, so the run reports it as
	// missed.
	reg.Test("Test that should throw unexpectedly created", func(t *unit.T) {
		t.ExpectFailure("Unexpected exception thrown.")
	})

	reg.Test("Test with throw can be created", func(t *unit.T) {
		panic(1)
	}, unit.ExpectingPanic(unit.KindOf[int]()))

	reg.Test("Test that never throws created", func(t *unit.T) {
		t.ExpectFailure("Expected exception type int was not thrown.")
	}, unit.ExpectingPanic(unit.KindOf[int]()))

	reg.Test("Test that throws wrong type created", func(t *unit.T) {
		t.ExpectFailure("Unexpected exception thrown.")
		panic("Wrong type")
	}, unit.ExpectingPanic(unit.KindOf[int]()))
}
