// Package match provides the matchers used by confirm.That.
//
// A matcher checks an actual value and can describe what it expects, so a
// failed check can report "Expected: <description>" next to the actual value.
package match

import "reflect"

// Matcher checks a single actual value of type T.
type Matcher[T any] interface {
	Match(actual T) bool
	Describe() string
}

// Float is the set of binary floating-point types compared approximately.
type Float interface {
	~float32 | ~float64
}

// Integer is the set of types IsEven accepts.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Text is the set of types compared by their text content.
type Text interface {
	~string | ~[]byte
}

type equals[T comparable] struct {
	expected T
}

// Equals matches values equal to expected. Floating-point and Extended
// values are compared with ApproxEqual and ApproxEqualExtended.
func Equals[T comparable](expected T) Matcher[T] {
	return equals[T]{expected: expected}
}

func (m equals[T]) Match(actual T) bool {
	return equal(m.expected, actual)
}

func (m equals[T]) Describe() string {
	return Format(m.expected)
}

func equal[T comparable](expected, actual T) bool {
	if e, ok := any(expected).(Extended); ok {
		a, _ := any(actual).(Extended)
		return ApproxEqualExtended(a, e)
	}

	ev, av := reflect.ValueOf(expected), reflect.ValueOf(actual)
	if ev.IsValid() && av.IsValid() && ev.Kind() == av.Kind() {
		switch ev.Kind() {
		case reflect.Float32:
			return ApproxEqual(float32(av.Float()), float32(ev.Float()))
		case reflect.Float64:
			return ApproxEqual(av.Float(), ev.Float())
		}
	}
	return actual == expected
}

type equalsText[A, E Text] struct {
	expected E
}

// EqualsText matches text of type A against expected text of type E by
// content, so a []byte can be checked against a string and the other way
// round.
func EqualsText[A, E Text](expected E) Matcher[A] {
	return equalsText[A, E]{expected: expected}
}

func (m equalsText[A, E]) Match(actual A) bool {
	return string(actual) == string(m.expected)
}

func (m equalsText[A, E]) Describe() string {
	return string(m.expected)
}

type not[T any] struct {
	inner Matcher[T]
}

// Not inverts m. Its description is "not " followed by m's description.
func Not[T any](m Matcher[T]) Matcher[T] {
	return not[T]{inner: m}
}

func (m not[T]) Match(actual T) bool {
	return !m.inner.Match(actual)
}

func (m not[T]) Describe() string {
	return "not " + m.inner.Describe()
}

// NotEquals matches values that Equals(expected) would reject.
func NotEquals[T comparable](expected T) Matcher[T] {
	return Not(Equals(expected))
}

// NotEqualsText matches text that EqualsText(expected) would reject.
func NotEqualsText[A, E Text](expected E) Matcher[A] {
	return Not(EqualsText[A](expected))
}

type isEven[T Integer] struct{}

// IsEven matches even integers.
func IsEven[T Integer]() Matcher[T] {
	return isEven[T]{}
}

func (isEven[T]) Match(actual T) bool {
	return actual%2 == 0
}

func (isEven[T]) Describe() string {
	return "is even"
}
