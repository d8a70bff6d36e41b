// Package xmath provides the scalar abstraction that the rest of geodesic is
// built on. Geometry, acceleration structures and ray queries are all
// generic over a single real-number type so that callers can choose
// float32 for memory-bound scenes or float64 for precision-sensitive ones.
package xmath

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Real is the scalar type every geodesic component is parameterised over.
// Only float32 and float64 satisfy it.
type Real interface {
	constraints.Float
}

// Sqrt returns the square root of x.
func Sqrt[T Real](x T) T {
	return T(math.Sqrt(float64(x)))
}

// Abs returns the absolute value of x.
func Abs[T Real](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of a and b.
func Min[T Real](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T Real](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Inf returns positive infinity, or negative infinity when sign < 0.
func Inf[T Real](sign int) T {
	return T(math.Inf(sign))
}

// Epsilon returns the self-intersection guard used by primitive intersection
// routines: 1e-4 for float32, 1e-8 for float64.
func Epsilon[T Real]() T {
	var zero T
	if _, is32 := any(zero).(float32); is32 {
		return T(1e-4)
	}
	return T(1e-8)
}

// NormalTolerance returns the unit-length tolerance normals are checked
// against: 1e-5 for float32, 1e-10 for float64.
func NormalTolerance[T Real]() T {
	var zero T
	if _, is32 := any(zero).(float32); is32 {
		return T(1e-5)
	}
	return T(1e-10)
}
