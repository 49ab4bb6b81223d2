package match

import (
	"math"
	"reflect"
)

const (
	float32Epsilon = 0x1p-23
	float64Epsilon = 0x1p-52

	float32SmallestNormal = 0x1p-126
	float64SmallestNormal = 0x1p-1022
)

// Margin is the relative tolerance used by ApproxEqual: four machine
// epsilons of T.
func Margin[T Float]() T {
	if is32[T]() {
		m := float32(4 * float32Epsilon)
		return T(m)
	}
	m := float64(4 * float64Epsilon)
	return T(m)
}

// SmallestNormal is the smallest positive normal value of T.
func SmallestNormal[T Float]() T {
	if is32[T]() {
		n := float32(float32SmallestNormal)
		return T(n)
	}
	n := float64(float64SmallestNormal)
	return T(n)
}

func is32[T Float]() bool {
	var zero T
	return reflect.TypeOf(zero).Kind() == reflect.Float32
}

// ApproxEqual reports whether actual and expected are close enough to be
// treated as equal. Values that are bit-identical, or whose difference is
// no larger than the smallest normal value of T, are equal. Otherwise the
// difference may not exceed Margin scaled by the larger magnitude of the
// two, where magnitudes below 1 count as 1. All arithmetic is done in T.
func ApproxEqual[T Float](actual, expected T) bool {
	if actual == expected || sameBits(actual, expected) {
		return true
	}

	diff := abs(actual - expected)
	if diff <= SmallestNormal[T]() {
		return true
	}

	larger := max(abs(actual), abs(expected))
	if larger < 1 {
		larger = 1
	}
	return diff <= Margin[T]()*larger
}

func sameBits[T Float](a, b T) bool {
	if is32[T]() {
		return math.Float32bits(float32(a)) == math.Float32bits(float32(b))
	}
	return math.Float64bits(float64(a)) == math.Float64bits(float64(b))
}

func abs[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
