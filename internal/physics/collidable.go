// Package physics implements the collision engine: a broad-phase registry of
// obstacles, the ball's per-tick motion and correction rules, the velocity
// responses of blocks and the paddle, and the hit notification protocol that
// lets game logic react to impacts.
//
// Everything here is single-threaded. A game owns one Environment and drives
// it from its tick loop; listeners may mutate the registry during dispatch.
package physics

import "github.com/vovakirdan/tui-arkanoid/internal/geom"

// Collidable is an obstacle a moving ball can hit.
type Collidable interface {
	// CollisionRect returns the obstacle's current bounds.
	CollisionRect() geom.Rect

	// Hit is called when hitter reaches p moving with v.
	// It returns the velocity the ball should continue with. A non-nil error
	// reports listener failures; the returned velocity is still valid.
	Hit(hitter *Ball, p geom.Point, v geom.Velocity) (geom.Velocity, error)
}

// CollisionInfo describes the nearest impact along a trajectory.
type CollisionInfo struct {
	Point  geom.Point
	Object Collidable
}
