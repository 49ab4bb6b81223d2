package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEquals(t *testing.T) {
	assert.True(t, Equals(10).Match(10))
	assert.False(t, Equals(9).Match(10))
	assert.True(t, Equals(int16(10)).Match(10))
	assert.True(t, Equals(uint32(3_000_000_000)).Match(3_000_000_000))
	assert.True(t, Equals(int64(5_000_000_000_000)).Match(5_000_000_000_000))
	assert.True(t, Equals(byte('A')).Match('A'))
	assert.True(t, Equals(true).Match(true))
	assert.True(t, Equals("abc").Match("abc"))
	assert.False(t, Equals("abc").Match("def"))
}

func TestEqualsUsesApproximateFloatComparison(t *testing.T) {
	assert.True(t, Equals(float32(9_999.001)).Match(9_999.0))
	assert.True(t, Equals(1_500_000_000_000.0003).Match(1_500_000_000_000.0))
	assert.False(t, Equals(0.000000000000002).Match(0.000000000000001))
	assert.False(t, Equals(float32(0.000002)).Match(0.000001))
}

func TestEqualsWithInterfaceType(t *testing.T) {
	m := Equals[any](1.0)
	assert.True(t, m.Match(1.0+1e-17))
	assert.False(t, m.Match("1"))
	assert.False(t, m.Match(nil))
}

func TestEqualsText(t *testing.T) {
	s1 := "abc"
	b1 := []byte("abc")

	assert.True(t, EqualsText[string](s1).Match("abc"))
	assert.True(t, EqualsText[[]byte](s1).Match(b1))
	assert.True(t, EqualsText[string](b1).Match(s1))
	assert.True(t, EqualsText[[]byte](b1).Match([]byte("abc")))
	assert.False(t, EqualsText[string]("def").Match(s1))
}

func TestNotEquals(t *testing.T) {
	tests := []struct {
		name     string
		matcher  Matcher[string]
		actual   string
		expected bool
	}{
		{"different", NotEquals("def"), "abc", true},
		{"same", NotEquals("abc"), "abc", false},
		{"text different", NotEqualsText[string]([]byte("def")), "abc", true},
		{"text same", NotEqualsText[string]([]byte("abc")), "abc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.matcher.Match(tt.actual))
		})
	}
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "9", Equals(9).Describe())
	assert.Equal(t, "abc", Equals("abc").Describe())
	assert.Equal(t, "0.100000", Equals(0.1).Describe())
	assert.Equal(t, "not def", NotEquals("def").Describe())
	assert.Equal(t, "not abc", NotEqualsText[[]byte]("abc").Describe())
	assert.Equal(t, "not not 1", Not(NotEquals(1)).Describe())
	assert.Equal(t, "is even", IsEven[int]().Describe())
}

func TestIsEven(t *testing.T) {
	assert.True(t, IsEven[int]().Match(10))
	assert.True(t, IsEven[int]().Match(0))
	assert.True(t, IsEven[int8]().Match(-4))
	assert.False(t, IsEven[int]().Match(11))
	assert.False(t, IsEven[uint64]().Match(3))
}
