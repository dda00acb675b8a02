package arkanoid

import (
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/physics"
)

// AutopilotInput returns the input a simple bot would give this tick: chase
// the lowest descending ball with the paddle, or the lowest ball if none is
// falling. It is used by headless simulations.
func (g *Game) AutopilotInput() core.InputFrame {
	in := core.NewInputFrame()
	if g.over || g.paddle == nil {
		return in
	}

	target := g.targetBall()
	if target == nil {
		return in
	}

	paddle := g.paddle.CollisionRect()
	x := target.Center().X
	step := g.cfg.Paddle.Step
	switch center := paddle.Center().X; {
	case x < center-step:
		in.Set(core.ActionLeft)
	case x > center+step:
		in.Set(core.ActionRight)
	}
	return in
}

func (g *Game) targetBall() *physics.Ball {
	var lowest, falling *physics.Ball
	for _, b := range g.balls {
		if lowest == nil || b.Center().Y > lowest.Center().Y {
			lowest = b
		}
		if b.Velocity().DY > 0 && (falling == nil || b.Center().Y > falling.Center().Y) {
			falling = b
		}
	}
	if falling != nil {
		return falling
	}
	return lowest
}
