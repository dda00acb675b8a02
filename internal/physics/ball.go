package physics

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/geom"
)

// ErrNoFreeSpace is returned when a ball cannot be placed clear of every obstacle.
var ErrNoFreeSpace = errors.New("physics: no free space for ball")

// maxPlacementAttempts bounds the rejection sampling in RandomBall.
const maxPlacementAttempts = 1000

// Ball is a circle moving through an Environment inside a rectangular field.
type Ball struct {
	center   geom.Point
	radius   float64
	color    core.Color
	velocity geom.Velocity
	env      *Environment
	field    geom.Rect
}

// NewBall creates a ball. The radius is clamped so the ball fits in field.
func NewBall(center geom.Point, radius float64, color core.Color, env *Environment, field geom.Rect) *Ball {
	return &Ball{
		center: center,
		radius: fitRadius(radius, field),
		color:  color,
		env:    env,
		field:  field,
	}
}

func fitRadius(radius float64, field geom.Rect) float64 {
	limit := math.Min(field.Width, field.Height) / 2
	return core.ClampF(radius, 0, limit)
}

// RandomBall places a ball at a random point of field that keeps radius
// clearance from the field edges and does not overlap any obstacle in env.
// The heading is a random whole degree at the given speed.
func RandomBall(rng *rand.Rand, radius, speed float64, color core.Color, env *Environment, field geom.Rect) (*Ball, error) {
	b := NewBall(geom.Point{}, radius, color, env, field)
	r := b.radius

	for range maxPlacementAttempts {
		center := geom.Point{
			X: field.LowX() + r + rng.Float64()*(field.Width-2*r),
			Y: field.LowY() + r + rng.Float64()*(field.Height-2*r),
		}
		if b.overlapsObstacle(center) {
			continue
		}
		b.center = center
		b.velocity = geom.RandomVelocity(rng, speed)
		return b, nil
	}

	return nil, ErrNoFreeSpace
}

func (b *Ball) overlapsObstacle(center geom.Point) bool {
	if b.env == nil {
		return false
	}
	for _, c := range b.env.collidables {
		if c.CollisionRect().OverlapsCircle(center, b.radius) {
			return true
		}
	}
	return false
}

// Center returns the ball's position.
func (b *Ball) Center() geom.Point { return b.center }

// Radius returns the ball's radius.
func (b *Ball) Radius() float64 { return b.radius }

// Color returns the ball's color.
func (b *Ball) Color() core.Color { return b.color }

// SetColor changes the ball's color.
func (b *Ball) SetColor(c core.Color) { b.color = c }

// Velocity returns the ball's per-tick displacement.
func (b *Ball) Velocity() geom.Velocity { return b.velocity }

// SetVelocity replaces the ball's velocity.
func (b *Ball) SetVelocity(v geom.Velocity) { b.velocity = v }

// Trajectory returns the segment the ball would travel this tick.
func (b *Ball) Trajectory() geom.Line {
	return geom.Line{Start: b.center, End: b.velocity.Apply(b.center)}
}

// Step advances the ball by one tick.
//
// If the trajectory meets an obstacle, the ball is moved to the impact point
// pushed out by its radius, the obstacle decides the new velocity, and the
// ball then advances only if the full move keeps it inside the field.
// A Hit error does not stop the move; it is returned once the ball has
// finished the tick.
func (b *Ball) Step() error {
	var hitErr error
	if b.env != nil {
		if info, ok := b.env.ClosestCollision(b.Trajectory()); ok {
			b.center = b.correct(info)
			v, err := info.Object.Hit(b, info.Point, b.velocity)
			b.velocity = v
			if err != nil {
				hitErr = fmt.Errorf("physics: hit at %v: %w", info.Point, err)
			}
		}
	}

	next := b.velocity.Apply(b.center)
	if b.fits(next) {
		b.center = next
	}
	return hitErr
}

// correct moves the impact point off the obstacle by the radius along the
// sides it lies on, then clamps it into the field.
func (b *Ball) correct(info CollisionInfo) geom.Point {
	p := info.Point
	sides := info.Object.CollisionRect().SidesAt(p)

	switch {
	case sides.Has(geom.SideLeft):
		p.X -= b.radius
	case sides.Has(geom.SideRight):
		p.X += b.radius
	}
	switch {
	case sides.Has(geom.SideTop):
		p.Y -= b.radius
	case sides.Has(geom.SideBottom):
		p.Y += b.radius
	}

	p.X = core.ClampF(p.X, b.field.LowX()+b.radius, b.field.HighX()-b.radius)
	p.Y = core.ClampF(p.Y, b.field.LowY()+b.radius, b.field.HighY()-b.radius)
	return p
}

// fits reports whether a ball centered at p stays inside the field.
func (b *Ball) fits(p geom.Point) bool {
	return geom.InRange(p.X, b.field.LowX()+b.radius, b.field.HighX()-b.radius) &&
		geom.InRange(p.Y, b.field.LowY()+b.radius, b.field.HighY()-b.radius)
}

// HitEvent makes a ball adopt the color of a block it struck.
// Registered on blocks, it ignores hits by other balls.
func (b *Ball) HitEvent(beingHit *Block, hitter *Ball) error {
	if hitter == b {
		b.color = beingHit.Color()
	}
	return nil
}
