package match

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fraction[T Float](input T) T {
	var denominator T = 10
	return input / denominator
}

// accumulateError adds 0.1 ten times and takes 1 away again, which lands
// near input but rarely on it.
func accumulateError[T Float](input T) T {
	var part T = 0.1
	for i := 0; i < 10; i++ {
		input += part
	}
	var whole T = 1
	return input - whole
}

func countApproxEqual[T Float](total int) int {
	passed := 0
	for i := 0; i < total; i++ {
		expected := fraction(T(i))
		if ApproxEqual(accumulateError(expected), expected) {
			passed++
		}
	}
	return passed
}

func TestApproxEqualAbsorbsAccumulatedError(t *testing.T) {
	assert.Equal(t, 1000, countApproxEqual[float32](1000))
	assert.Equal(t, 1000, countApproxEqual[float64](1000))
}

func TestApproxEqual(t *testing.T) {
	tests := []struct {
		name     string
		actual   float64
		expected float64
		equal    bool
	}{
		{"identical", 1.5, 1.5, true},
		{"signed zeros", 0, math.Copysign(0, -1), true},
		{"small distinct", 0.000000000000001, 0.000000000000002, false},
		{"large close", 1_500_000_000_000.0, 1_500_000_000_000.0003, true},
		{"large apart", 1_500_000_000_000.0, 1_500_000_000_000.01, false},
		{"within absolute floor", 0.1 + 0.2, 0.3, true},
		{"subnormal difference", 0x1p-1070, 0x1p-1060, true},
		{"infinities", math.Inf(1), math.Inf(1), true},
		// +Inf - -Inf is +Inf, which the scaled margin also reaches.
		{"opposite infinities", math.Inf(1), math.Inf(-1), true},
		{"nan against number", math.NaN(), 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, ApproxEqual(tt.actual, tt.expected))
		})
	}
}

func TestApproxEqualFloat32(t *testing.T) {
	assert.True(t, ApproxEqual[float32](9_999.0, 9_999.001))
	assert.False(t, ApproxEqual[float32](0.000001, 0.000002))
	assert.True(t, ApproxEqual[float32](0.1+0.2, 0.3))
}

func TestApproxEqualBoundary(t *testing.T) {
	// Below magnitude 1 the tolerance is exactly the margin.
	margin := Margin[float64]()
	assert.True(t, ApproxEqual(0.5+margin, 0.5))
	assert.False(t, ApproxEqual(0.5+2*margin, 0.5))

	// Above magnitude 1 it scales with the larger operand.
	assert.True(t, ApproxEqual(1024+1024*margin, 1024))
	assert.False(t, ApproxEqual(1024+4096*margin, 1024))
}

func TestApproxEqualNaNBits(t *testing.T) {
	nan := math.NaN()
	assert.True(t, ApproxEqual(nan, nan))
	assert.False(t, ApproxEqual(nan, math.Float64frombits(math.Float64bits(nan)^1)))
}

func TestMarginAndSmallestNormal(t *testing.T) {
	require.Equal(t, float32(4*0x1p-23), Margin[float32]())
	require.Equal(t, 4*0x1p-52, Margin[float64]())
	assert.Equal(t, float32(0x1p-126), SmallestNormal[float32]())
	assert.Equal(t, 0x1p-1022, SmallestNormal[float64]())
}

type celsius float32

func TestMarginFollowsUnderlyingType(t *testing.T) {
	assert.Equal(t, celsius(4*0x1p-23), Margin[celsius]())
	assert.Equal(t, celsius(0x1p-126), SmallestNormal[celsius]())
}
