package selftest

import (
	"verity/pkg/confirm"
	"verity/pkg/match"
	"verity/pkg/unit"
)

func isPassingGrade(grade int) bool {
	return grade >= 60
}

func double[T int | int32 | int64](v T) T {
	return v * 2
}

func registerConfirm(reg *unit.Registry) {
	reg.Test("Test will pass without any confirms", func(t *unit.T) {})

	reg.Test("Test passing grades", func(t *unit.T) {
		confirm.False(isPassingGrade(0))
		confirm.True(isPassingGrade(100))
	})

	reg.Test("Test bool confirm failure", func(t *unit.T) {
		t.ExpectFailure("\tExpected: true")
		confirm.True(isPassingGrade(0))
	})

	reg.Test("Test int confirms", func(t *unit.T) {
		confirm.Equal(0, double(0))
		confirm.Equal(2, double(1))
		confirm.Equal(-2, double(-1))
	})

	reg.Test("Test int confirm failure", func(t *unit.T) {
		t.ExpectFailure("\tExpected: 0\n\tActual: 2")
		confirm.Equal(0, double(1))
	})

	reg.Test("Test int32 confirms", func(t *unit.T) {
		confirm.Equal(int32(0), double(int32(0)))
		confirm.Equal(int32(2), double(int32(1)))
		confirm.Equal(int32(-2), double(int32(-1)))
	})

	reg.Test("Test int32 confirm failure", func(t *unit.T) {
		t.ExpectFailure("\tExpected: 0\n\tActual: 2")
		confirm.Equal(int32(0), double(int32(1)))
	})

	reg.Test("Test int64 confirms", func(t *unit.T) {
		confirm.Equal(int64(0), double(int64(0)))
		confirm.Equal(int64(20_000_000_000), double(int64(10_000_000_000)))
		confirm.Equal(int64(-20_000_000_000), double(int64(-10_000_000_000)))
	})

	reg.Test("Test int64 confirm failure", func(t *unit.T) {
		t.ExpectFailure("\tExpected: 10000000000\n\tActual: 20000000000")
		confirm.Equal(int64(10_000_000_000), double(int64(10_000_000_000)))
	})

	reg.Test("Test string confirms", func(t *unit.T) {
		result := "abc"
		confirm.Equal("abc", result)
	})

	reg.Test("Test string confirm failure", func(t *unit.T) {
		t.ExpectFailure("\tExpected: def\n\tActual: abc")
		result := "abc"
		confirm.Equal("def", result)
	})

	reg.Test("Test bool pointer dereference confirms", func(t *unit.T) {
		result1, result2 := true, false
		ptr1, ptr2 := &result1, &result2
		confirm.True(*ptr1)
		confirm.False(*ptr2)
	})

	reg.Test("Test string and byte slice confirms", func(t *unit.T) {
		result := []byte("abc")
		confirm.Text("abc", result)
	})

	reg.Test("Test float32 confirms", func(t *unit.T) {
		var f1, f2 float32 = 0.1, 0.2
		confirm.Float(float32(0.3), f1+f2)
	})

	reg.Test("Test float64 confirms", func(t *unit.T) {
		d1, d2 := 0.1, 0.2
		confirm.Float(0.3, d1+d2)
		confirm.Equal(0.3, d1+d2)
	})

	reg.Test("Test extended confirms", func(t *unit.T) {
		sum := match.NewExtended(0.1).Add(match.NewExtended(0.2))
		confirm.Extended(match.NewExtended(0.3), sum)
	})
}
