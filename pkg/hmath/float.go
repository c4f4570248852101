// Package hmath provides the scripting-side value types used to talk to the engine:
// 2D/3D/4D vectors and an RGBA color.
//
// All types are plain values. Operations never allocate and, apart from indexed
// access and hex parsing, never fail: division and normalization fall back to the
// zero value when the divisor is near zero.
package hmath

import "math"

// Epsilon is the tolerance used by every near-zero and near-equal test in this package.
const Epsilon float32 = 1e-6

// IsNearlyZero reports whether |v| < Epsilon.
func IsNearlyZero(v float32) bool {
	return float32(math.Abs(float64(v))) < Epsilon
}

// IsNearlyEqual reports whether |a-b| < Epsilon.
func IsNearlyEqual(a, b float32) bool {
	return IsNearlyZero(a - b)
}

func isNearlyZero64(v float64) bool {
	return math.Abs(v) < float64(Epsilon)
}

func isNearlyEqual64(a, b float64) bool {
	return isNearlyZero64(a - b)
}

// Clamp restricts v to [lo, hi].
func Clamp[T ~float32 | ~float64 | ~int](v, lo, hi T) T {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// safeDiv returns a/b, or 0 when b is near zero.
func safeDiv(a, b float32) float32 {
	if IsNearlyZero(b) {
		return 0
	}
	return a / b
}

func sqrt32(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}
