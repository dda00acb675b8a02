package geom

import (
	"fmt"
	"math"
)

// Point is a position in playfield coordinates. Y grows downwards.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Distance returns the Euclidean distance to other.
func (p Point) Distance(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Equal reports whether both coordinates match within Epsilon.
func (p Point) Equal(other Point) bool {
	return Eq(p.X, other.X) && Eq(p.Y, other.Y)
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("(%.3f, %.3f)", p.X, p.Y)
}
