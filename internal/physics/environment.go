package physics

import (
	"slices"

	"github.com/vovakirdan/tui-arkanoid/internal/geom"
)

// Environment is the ordered set of obstacles balls collide with.
// Duplicates are allowed; order decides ties between equally close obstacles.
type Environment struct {
	collidables []Collidable
}

// NewEnvironment creates an empty environment.
func NewEnvironment() *Environment {
	return &Environment{}
}

// Add registers c at the end of the collection. Nil is ignored.
func (e *Environment) Add(c Collidable) {
	if c == nil {
		return
	}
	e.collidables = append(e.collidables, c)
}

// Remove drops the first entry identical to c.
// It reports whether anything was removed.
func (e *Environment) Remove(c Collidable) bool {
	i := slices.Index(e.collidables, c)
	if i < 0 {
		return false
	}
	e.collidables = slices.Delete(e.collidables, i, i+1)
	return true
}

// Len returns the number of registered obstacles.
func (e *Environment) Len() int {
	return len(e.collidables)
}

// Collidables returns a copy of the registered obstacles in insertion order.
func (e *Environment) Collidables() []Collidable {
	return slices.Clone(e.collidables)
}

// ClosestCollision finds the obstacle whose nearest intersection with
// trajectory is closest to its start. The first registered obstacle wins ties,
// including distances that differ only by rounding.
func (e *Environment) ClosestCollision(trajectory geom.Line) (CollisionInfo, bool) {
	var (
		info  CollisionInfo
		best  float64
		found bool
	)

	for _, c := range e.collidables {
		p, ok := trajectory.ClosestIntersectionToStart(c.CollisionRect())
		if !ok {
			continue
		}
		d := trajectory.Start.Distance(p)
		if !found || !geom.GreaterOrEqual(d, best) {
			info = CollisionInfo{Point: p, Object: c}
			best = d
			found = true
		}
	}

	return info, found
}
