// Package geom provides the immutable 2D primitives used by the collision engine:
// points, velocities, line segments and axis-aligned rectangles.
//
// Floating point values are never compared directly. Every equality and ordering
// test goes through Eq and GreaterOrEqual, which absorb rounding noise with a
// single tolerance.
package geom

import "math"

// Epsilon is the tolerance used for every float comparison in the engine.
const Epsilon = 1e-6

// Eq reports whether a and b differ by at most Epsilon.
func Eq(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// GreaterOrEqual reports whether a >= b within Epsilon.
func GreaterOrEqual(a, b float64) bool {
	return a-b >= -Epsilon
}

// InRange reports whether lo <= v <= hi within Epsilon.
func InRange(v, lo, hi float64) bool {
	return GreaterOrEqual(v, lo) && GreaterOrEqual(hi, v)
}
