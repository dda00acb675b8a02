package arkanoid

import "math"

// BallState is the observable state of one ball.
type BallState struct {
	X, Y   float64
	DX, DY float64
	Color  int
}

// Snapshot captures the observable game state after a tick.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick       uint64
	Score      int
	BallsLeft  int
	BlocksLeft int
	Over       bool
	Won        bool

	PaddleX float64
	PaddleY float64

	Balls []BallState

	// Remaining blocks, each as 4 floats: X, Y, Width, Height
	BlockData []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	balls := make([]BallState, len(g.balls))
	for i, b := range g.balls {
		c, v := b.Center(), b.Velocity()
		balls[i] = BallState{X: c.X, Y: c.Y, DX: v.DX, DY: v.DY, Color: int(b.Color())}
	}

	blockData := make([]float64, 0, len(g.blocks)*4)
	for _, b := range g.blocks {
		r := b.CollisionRect()
		blockData = append(blockData, r.LowX(), r.LowY(), r.Width, r.Height)
	}

	paddle := g.paddle.CollisionRect()
	return Snapshot{
		Tick:       uint64(g.tick), //#nosec G115 -- tick count is always positive
		Score:      g.score.Value(),
		BallsLeft:  g.ballsLeft.Value(),
		BlocksLeft: g.blocksLeft.Value(),
		Over:       g.over,
		Won:        g.won,
		PaddleX:    paddle.LowX(),
		PaddleY:    paddle.LowY(),
		Balls:      balls,
		BlockData:  blockData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallsLeft)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BlocksLeft) //#nosec G115 -- hash computation
	h = h*31 + flag(snap.Over)
	h = h*31 + flag(snap.Won)
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.PaddleY)

	for _, b := range snap.Balls {
		h = h*31 + math.Float64bits(b.X)
		h = h*31 + math.Float64bits(b.Y)
		h = h*31 + math.Float64bits(b.DX)
		h = h*31 + math.Float64bits(b.DY)
		h = h*31 + uint64(b.Color) //#nosec G115 -- hash computation
	}

	for _, v := range snap.BlockData {
		h = h*31 + math.Float64bits(v)
	}

	return h
}

func flag(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
