package geom

import (
	"math"
	"math/rand/v2"
)

// Velocity is the per-tick displacement of a moving object.
type Velocity struct {
	DX, DY float64
}

// FromAngleAndSpeed builds a velocity from a heading in degrees and a speed.
// Zero degrees points up the screen and angles grow clockwise.
func FromAngleAndSpeed(angle, speed float64) Velocity {
	rad := (angle - 90) * math.Pi / 180
	return Velocity{
		DX: speed * math.Cos(rad),
		DY: speed * math.Sin(rad),
	}
}

// RandomVelocity returns a velocity with a whole-degree heading drawn from rng.
func RandomVelocity(rng *rand.Rand, speed float64) Velocity {
	return FromAngleAndSpeed(float64(rng.IntN(360)), speed)
}

// Apply returns p moved by one tick of this velocity.
func (v Velocity) Apply(p Point) Point {
	return Point{X: p.X + v.DX, Y: p.Y + v.DY}
}

// Speed returns the magnitude of the velocity.
func (v Velocity) Speed() float64 {
	return math.Hypot(v.DX, v.DY)
}

// FlipX returns the velocity with its horizontal component negated.
func (v Velocity) FlipX() Velocity {
	return Velocity{DX: -v.DX, DY: v.DY}
}

// FlipY returns the velocity with its vertical component negated.
func (v Velocity) FlipY() Velocity {
	return Velocity{DX: v.DX, DY: -v.DY}
}

// Equal reports whether both components match within Epsilon.
func (v Velocity) Equal(other Velocity) bool {
	return Eq(v.DX, other.DX) && Eq(v.DY, other.DY)
}
