package match

import (
	"math/big"
)

// ExtendedPrecision is the mantissa width of Extended in bits, matching the
// x87 80-bit extended format.
const ExtendedPrecision = 64

var (
	// One double epsilon, not four extended ones.
	extendedMargin = new(big.Float).SetPrec(ExtendedPrecision).SetFloat64(float64Epsilon)

	extendedSmallestNormal = new(big.Float).SetPrec(ExtendedPrecision).SetMantExp(big.NewFloat(1), -16382)

	extendedOne = new(big.Float).SetPrec(ExtendedPrecision).SetInt64(1)
)

// Extended is an extended-precision floating-point value. Every operation
// rounds its result to ExtendedPrecision bits. The zero value is 0.
//
// Extended values are immutable; arithmetic returns a new value.
type Extended struct {
	v *big.Float
}

// NewExtended returns x widened to extended precision. It panics if x is NaN.
func NewExtended(x float64) Extended {
	return Extended{v: newExtendedFloat().SetFloat64(x)}
}

// ParseExtended parses a decimal number rounded to extended precision.
func ParseExtended(s string) (Extended, error) {
	f, _, err := big.ParseFloat(s, 10, ExtendedPrecision, big.ToNearestEven)
	if err != nil {
		return Extended{}, err
	}
	return Extended{v: f}, nil
}

func newExtendedFloat() *big.Float {
	return new(big.Float).SetPrec(ExtendedPrecision)
}

func (e Extended) val() *big.Float {
	if e.v == nil {
		return newExtendedFloat()
	}
	return e.v
}

func (e Extended) Add(o Extended) Extended {
	return Extended{v: newExtendedFloat().Add(e.val(), o.val())}
}

func (e Extended) Sub(o Extended) Extended {
	return Extended{v: newExtendedFloat().Sub(e.val(), o.val())}
}

func (e Extended) Mul(o Extended) Extended {
	return Extended{v: newExtendedFloat().Mul(e.val(), o.val())}
}

// Quo panics when both operands are zero or both are infinite.
func (e Extended) Quo(o Extended) Extended {
	return Extended{v: newExtendedFloat().Quo(e.val(), o.val())}
}

func (e Extended) Abs() Extended {
	return Extended{v: newExtendedFloat().Abs(e.val())}
}

func (e Extended) Neg() Extended {
	return Extended{v: newExtendedFloat().Neg(e.val())}
}

// Cmp compares e and o and returns -1, 0 or +1.
func (e Extended) Cmp(o Extended) int {
	return e.val().Cmp(o.val())
}

// Float64 returns the nearest float64 value.
func (e Extended) Float64() float64 {
	f, _ := e.val().Float64()
	return f
}

// String formats e with six decimal places.
func (e Extended) String() string {
	return e.val().Text('f', 6)
}

// ApproxEqualExtended is ApproxEqual computed in extended precision. The
// relative tolerance is the double epsilon, 2^-52.
func ApproxEqualExtended(actual, expected Extended) bool {
	if actual.Cmp(expected) == 0 {
		return true
	}

	diff := actual.Sub(expected).Abs()
	if diff.val().Cmp(extendedSmallestNormal) <= 0 {
		return true
	}

	larger := actual.Abs()
	if e := expected.Abs(); e.Cmp(larger) > 0 {
		larger = e
	}
	if larger.val().Cmp(extendedOne) < 0 {
		larger = Extended{v: extendedOne}
	}

	bound := newExtendedFloat().Mul(extendedMargin, larger.val())
	return diff.val().Cmp(bound) <= 0
}
