package arkanoid

import (
	"fmt"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/physics"
)

// BlockRemover takes a destructible block out of the game the first time
// a differently colored ball hits it.
type BlockRemover struct {
	game      *Game
	remaining *core.Counter
}

// NewBlockRemover creates a remover that counts down remaining.
func NewBlockRemover(g *Game, remaining *core.Counter) *BlockRemover {
	return &BlockRemover{game: g, remaining: remaining}
}

// HitEvent implements physics.HitListener.
func (r *BlockRemover) HitEvent(beingHit *physics.Block, _ *physics.Ball) error {
	if err := r.remaining.Decrease(1); err != nil {
		return fmt.Errorf("arkanoid: remove block: %w", err)
	}
	beingHit.RemoveHitListener(r)
	r.game.RemoveBlock(beingHit)
	return nil
}

// BallRemover takes a ball out of play when it reaches the death region.
type BallRemover struct {
	game      *Game
	remaining *core.Counter
}

// NewBallRemover creates a remover that counts down remaining.
func NewBallRemover(g *Game, remaining *core.Counter) *BallRemover {
	return &BallRemover{game: g, remaining: remaining}
}

// HitEvent implements physics.HitListener.
func (r *BallRemover) HitEvent(_ *physics.Block, hitter *physics.Ball) error {
	if err := r.remaining.Decrease(1); err != nil {
		return fmt.Errorf("arkanoid: remove ball: %w", err)
	}
	r.game.RemoveBall(hitter)
	return nil
}

// ScoreTracker awards points for every block hit it hears about.
type ScoreTracker struct {
	score  *core.Counter
	points int
}

// NewScoreTracker creates a tracker adding points to score per hit.
func NewScoreTracker(score *core.Counter, points int) *ScoreTracker {
	return &ScoreTracker{score: score, points: points}
}

// HitEvent implements physics.HitListener.
func (t *ScoreTracker) HitEvent(_ *physics.Block, _ *physics.Ball) error {
	if err := t.score.Increase(t.points); err != nil {
		return fmt.Errorf("arkanoid: score: %w", err)
	}
	return nil
}
