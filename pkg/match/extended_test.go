package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) Extended {
	t.Helper()
	e, err := ParseExtended(s)
	require.NoError(t, err)
	return e
}

func TestExtendedArithmetic(t *testing.T) {
	sum := NewExtended(0.1).Add(NewExtended(0.2))
	assert.True(t, ApproxEqualExtended(sum, NewExtended(0.3)))
	assert.Equal(t, "0.300000", sum.String())

	assert.Equal(t, 0, NewExtended(6).Quo(NewExtended(3)).Cmp(NewExtended(2)))
	assert.Equal(t, 0, NewExtended(-2).Abs().Cmp(NewExtended(2)))
	assert.Equal(t, 0, NewExtended(2).Neg().Cmp(NewExtended(-2)))
	assert.Equal(t, 0, NewExtended(3).Mul(NewExtended(4)).Cmp(NewExtended(12)))
	assert.Equal(t, 1.5, NewExtended(1.5).Float64())
}

func TestExtendedZeroValue(t *testing.T) {
	var zero Extended
	assert.Equal(t, "0.000000", zero.String())
	assert.Equal(t, 0, zero.Cmp(NewExtended(0)))
	assert.Equal(t, 0, zero.Add(NewExtended(1)).Cmp(NewExtended(1)))
}

func TestExtendedKeepsExtraPrecision(t *testing.T) {
	// 2^60 + 1 needs 61 bits, more than a float64 mantissa holds.
	big := mustParse(t, "1152921504606846977")
	assert.NotEqual(t, 0, big.Cmp(NewExtended(0x1p60)))
}

func TestApproxEqualExtended(t *testing.T) {
	assert.True(t, ApproxEqualExtended(
		mustParse(t, "1500000000000.0"),
		mustParse(t, "1500000000000.0003"),
	))
	assert.False(t, ApproxEqualExtended(
		mustParse(t, "0.000000000000001"),
		mustParse(t, "0.000000000000002"),
	))
	assert.True(t, ApproxEqualExtended(NewExtended(0), NewExtended(0)))
}

func TestApproxEqualExtendedUsesDoubleEpsilon(t *testing.T) {
	// A gap of 2^-52 is accepted, 2^-50 is not.
	one := NewExtended(1)
	assert.True(t, ApproxEqualExtended(one.Add(NewExtended(0x1p-52)), one))
	assert.False(t, ApproxEqualExtended(one.Add(NewExtended(0x1p-50)), one))
}

func TestApproxEqualExtendedAbsorbsAccumulatedError(t *testing.T) {
	ten := NewExtended(10)
	part := NewExtended(0.1)
	passed := 0
	for i := 0; i < 1000; i++ {
		expected := NewExtended(float64(i)).Quo(ten)
		actual := expected
		for j := 0; j < 10; j++ {
			actual = actual.Add(part)
		}
		actual = actual.Sub(NewExtended(1))
		if ApproxEqualExtended(actual, expected) {
			passed++
		}
	}
	assert.Equal(t, 1000, passed)
}

func TestEqualsExtended(t *testing.T) {
	sum := NewExtended(0.1).Add(NewExtended(0.2))
	assert.True(t, Equals(NewExtended(0.3)).Match(sum))
	assert.True(t, NotEquals(NewExtended(0.4)).Match(sum))
	assert.Equal(t, "0.300000", Equals(NewExtended(0.3)).Describe())
}

func TestFormat(t *testing.T) {
	type celsius float64
	type label string

	tests := []struct {
		value    any
		expected string
	}{
		{10, "10"},
		{int64(20_000_000_000), "20000000000"},
		{"abc", "abc"},
		{[]byte("abc"), "abc"},
		{true, "true"},
		{float32(1.5), "1.500000"},
		{0.1, "0.100000"},
		{celsius(21.5), "21.500000"},
		{label("x"), "x"},
		{nil, "nil"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Format(tt.value))
	}
}
