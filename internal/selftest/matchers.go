package selftest

import (
	"verity/pkg/confirm"
	"verity/pkg/match"
	"verity/pkg/unit"
)

func fraction[T match.Float](input T) T {
	return input / 10
}

// accumulateError adds ten tenths and takes one away, which should give
// input back but leaves rounding error behind.
func accumulateError[T match.Float](input T) T {
	tenth := T(0.1)
	for i := 0; i < 10; i++ {
		input += tenth
	}
	return input - 1
}

func countMatches[T match.Float](total int) int {
	passed := 0
	for i := 0; i < total; i++ {
		expected := fraction(T(i))
		if match.Equals(expected).Match(accumulateError(expected)) {
			passed++
		}
	}
	return passed
}

func countExtendedMatches(total int) int {
	ten, one, tenth := match.NewExtended(10), match.NewExtended(1), match.NewExtended(0.1)
	passed := 0
	for i := 0; i < total; i++ {
		expected := match.NewExtended(float64(i)).Quo(ten)
		actual := expected
		for j := 0; j < 10; j++ {
			actual = actual.Add(tenth)
		}
		actual = actual.Sub(one)
		if match.Equals(expected).Match(actual) {
			passed++
		}
	}
	return passed
}

func mustParseExtended(s string) match.Extended {
	e, err := match.ParseExtended(s)
	if err != nil {
		panic(err)
	}
	return e
}

func registerMatchers(reg *unit.Registry) {
	reg.Test("Test can use matcher style confirm", func(t *unit.T) {
		ten := 10
		confirm.That(ten, match.Equals(10))
	})

	reg.Test("Test matcher style confirm failure", func(t *unit.T) {
		t.ExpectFailure("\tExpected: 9\n\tActual: 10")
		ten := 10
		confirm.That(ten, match.Equals(9))
	})

	reg.Test("Test other matcher style integer confirms", func(t *unit.T) {
		c1, c2 := 'A', 'A'
		confirm.That(c1, match.Equals(c2))
		confirm.That(c1, match.Equals('A'))

		var s1, s2 int16 = 10, 10
		confirm.That(s1, match.Equals(s2))
		confirm.That(s1, match.Equals[int16](10))

		var u1, u2 uint32 = 3_000_000_000, 3_000_000_000
		confirm.That(u1, match.Equals(u2))
		confirm.That(u1, match.Equals[uint32](3_000_000_000))

		var l1, l2 int64 = 5_000_000_000_000, 5_000_000_000_000
		confirm.That(l1, match.Equals(l2))
		confirm.That(l1, match.Equals[int64](5_000_000_000_000))
	})

	reg.Test("Test matcher style bool confirms", func(t *unit.T) {
		b1, b2 := true, true
		confirm.That(b1, match.Equals(b2))
		confirm.That(b1, match.Equals(true))
		confirm.True(b1)
	})

	reg.Test("Test matcher style string confirms", func(t *unit.T) {
		s1, s2 := "abc", "abc"
		confirm.That(s1, match.Equals(s2))
		confirm.That(s1, match.Equals("abc"))
		confirm.That("abc", match.Equals(s1))

		s3 := "def"
		confirm.That(s1, match.NotEquals(s3))
		confirm.That(s1, match.NotEquals("def"))
		confirm.That("def", match.NotEquals(s1))
	})

	reg.Test("Test matcher style byte slice confirms", func(t *unit.T) {
		b1 := []byte("abc")
		s1 := "abc"
		confirm.That(b1, match.EqualsText[[]byte]([]byte("abc")))
		confirm.That(b1, match.EqualsText[[]byte]("abc"))
		confirm.That(s1, match.EqualsText[string](b1))

		b3 := []byte("def")
		confirm.That(b1, match.NotEqualsText[[]byte](b3))
		confirm.That(b1, match.NotEqualsText[[]byte]("def"))
		confirm.That("def", match.NotEqualsText[string](b1))
	})

	reg.Test("Test many float32 comparisons", func(t *unit.T) {
		total := 1_000
		confirm.That(countMatches[float32](total), match.Equals(total))
	})

	reg.Test("Test many float64 comparisons", func(t *unit.T) {
		total := 1_000
		confirm.That(countMatches[float64](total), match.Equals(total))
	})

	reg.Test("Test many extended comparisons", func(t *unit.T) {
		total := 1_000
		confirm.That(countExtendedMatches(total), match.Equals(total))
	})

	reg.Test("Test small float32 values", func(t *unit.T) {
		confirm.That(float32(0.000001), match.NotEquals(float32(0.000002)))
	})

	reg.Test("Test large float32 values", func(t *unit.T) {
		confirm.That(float32(9_999.0), match.Equals(float32(9_999.001)))
	})

	reg.Test("Test small float64 values", func(t *unit.T) {
		confirm.That(0.000000000000001, match.NotEquals(0.000000000000002))
	})

	reg.Test("Test large float64 values", func(t *unit.T) {
		confirm.That(1_500_000_000_000.0, match.Equals(1_500_000_000_000.0003))
	})

	reg.Test("Test small extended values", func(t *unit.T) {
		small := mustParseExtended("0.000000000000001")
		confirm.That(small, match.NotEquals(mustParseExtended("0.000000000000002")))
	})

	reg.Test("Test large extended values", func(t *unit.T) {
		large := mustParseExtended("1500000000000.0")
		confirm.That(large, match.Equals(mustParseExtended("1500000000000.0003")))
	})

	reg.Test("Test even integral value", func(t *unit.T) {
		confirm.That(10, match.IsEven[int]())
	})

	reg.Test("Test even integral value confirm failure", func(t *unit.T) {
		t.ExpectFailure("\tExpected: is even\n\tActual: 11")
		confirm.That(11, match.IsEven[int]())
	})
}
