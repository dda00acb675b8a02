// Package arkanoid assembles the collision engine into a playable game:
// borders, a score bar, a death region, a layout of destructible blocks, the
// paddle and a handful of balls, all wired together with hit listeners.
package arkanoid

import (
	"fmt"
	"io"
	"math/rand/v2"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/geom"
	"github.com/vovakirdan/tui-arkanoid/internal/physics"
	"github.com/vovakirdan/tui-arkanoid/internal/registry"
)

// Minimum terminal size the game renders at.
const (
	MinScreenW = 40
	MinScreenH = 15
)

// Option customizes a Game.
type Option func(*Game)

// WithLogger sets the logger for game events. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithLayout overrides the layout named in the config.
func WithLayout(l registry.Layout) Option {
	return func(g *Game) { g.layout = l }
}

// Game implements registry.Game for one layout.
type Game struct {
	cfg     config.ArkanoidConfig
	layout  registry.Layout
	logger  *log.Logger
	runtime core.RuntimeConfig

	field   geom.Rect
	rng     *rand.Rand
	env     *physics.Environment
	sprites SpriteCollection
	paddle  *physics.Paddle
	balls   []*physics.Ball
	blocks  []*physics.Block

	ballSprites  map[*physics.Ball]Sprite
	blockSprites map[*physics.Block]Sprite

	score      *core.Counter
	ballsLeft  *core.Counter
	blocksLeft *core.Counter
	difficulty *config.DifficultyManager

	tick           int
	paused         bool
	over           bool
	won            bool
	screenTooSmall bool
}

// New creates a game from cfg. The layout is looked up by cfg.Layout unless
// WithLayout is given. Call Reset before stepping.
func New(cfg config.ArkanoidConfig, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}

	if g.layout == nil {
		l, err := registry.Get(cfg.Layout)
		if err != nil {
			return nil, fmt.Errorf("arkanoid: %w", err)
		}
		g.layout = l
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	return g, nil
}

// ID returns the layout ID, which keys stored runs.
func (g *Game) ID() string {
	return g.layout.ID()
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Arkanoid: " + g.layout.Title()
}

// Reset builds a fresh scene. All randomness comes from runtime.Seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.screenTooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH

	seed := uint64(runtime.Seed) //#nosec G115 -- any bit pattern is a valid seed
	g.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	f := g.cfg.Field
	g.field = geom.NewRect(0, 0, f.Width, f.Height)
	g.env = physics.NewEnvironment()
	g.sprites = SpriteCollection{}
	g.balls = nil
	g.blocks = nil
	g.ballSprites = make(map[*physics.Ball]Sprite)
	g.blockSprites = make(map[*physics.Block]Sprite)

	g.score = core.NewCounter(0)
	g.ballsLeft = core.NewCounter(0)
	g.blocksLeft = core.NewCounter(0)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.tick = 0
	g.paused = false
	g.over = false
	g.won = false

	g.buildBounds()
	g.buildBlocks()
	g.buildPaddle()
	g.buildBalls()

	g.logger.Debug("scene ready",
		"layout", g.layout.ID(),
		"seed", runtime.Seed,
		"blocks", g.blocksLeft.Value(),
		"balls", g.ballsLeft.Value(),
		"difficulty", g.difficulty.IsEnabled(),
	)
	g.checkEnd()
}

// Resize records a new terminal size. The playfield keeps its units, so the
// scene is untouched; only the view and the size check change.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW, g.runtime.ScreenH = width, height
	g.screenTooSmall = width < MinScreenW || height < MinScreenH
}

// buildBounds adds the top border, the death region, the side borders and
// the score bar, in that order.
func (g *Game) buildBounds() {
	f := g.cfg.Field
	gray := core.ColorGray

	g.addBorder(physics.NewBlock(geom.NewRect(0, 0, f.Width, f.ScoreBarHeight+f.BorderThickness), gray))

	death := physics.NewBlock(geom.NewRect(0, f.DeathRegionTop, f.Width, f.Height-f.DeathRegionTop), gray)
	g.listen(death, NewBallRemover(g, g.ballsLeft))
	g.env.Add(death)

	g.addBorder(physics.NewBlock(geom.NewRect(f.Width-f.BorderThickness, 0, f.BorderThickness, f.Height), gray))
	g.addBorder(physics.NewBlock(geom.NewRect(0, 0, f.BorderThickness, f.Height), gray))

	bar := physics.NewBlock(geom.NewRect(0, 0, f.Width, f.ScoreBarHeight), core.ColorWhite)
	g.env.Add(bar)
	g.sprites.Add(&scoreIndicator{block: bar, game: g})
}

func (g *Game) addBorder(b *physics.Block) {
	g.env.Add(b)
	g.sprites.Add(&blockSprite{block: b, glyph: BorderChar})
}

func (g *Game) buildBlocks() {
	remover := NewBlockRemover(g, g.blocksLeft)
	tracker := NewScoreTracker(g.score, g.cfg.Scoring.BlockPoints)

	for _, spec := range g.layout.Blocks(g.cfg.Blocks, g.rng) {
		b := physics.NewBlock(spec.Rect, spec.Color)
		s := &blockSprite{block: b, glyph: BlockChar}
		g.env.Add(b)
		g.sprites.Add(s)
		g.blocks = append(g.blocks, b)
		g.blockSprites[b] = s
		g.increase(g.blocksLeft)
		g.listen(b, remover, tracker)
	}
}

func (g *Game) buildPaddle() {
	p := g.cfg.Paddle
	g.paddle = physics.NewPaddle(
		geom.NewRect(p.X, p.Y, p.Width, p.Height),
		randomColor(g.rng),
		p.Step,
		p.BounceSpeed,
		g.field,
	)
	g.env.Add(g.paddle)
	g.sprites.Add(&paddleSprite{paddle: g.paddle})
}

func (g *Game) buildBalls() {
	color, err := core.ParseColor(g.cfg.Ball.Color)
	if err != nil {
		g.logger.Warn("bad ball color, using red", "err", err)
		color = core.ColorRed
	}

	for range g.cfg.Ball.Count {
		ball, err := physics.RandomBall(g.rng, g.cfg.Ball.Radius, g.cfg.Ball.Speed, color, g.env, g.field)
		if err != nil {
			g.logger.Error("cannot place ball", "placed", len(g.balls), "err", err)
			return
		}

		s := &ballSprite{ball: ball}
		g.sprites.Add(s)
		g.balls = append(g.balls, ball)
		g.ballSprites[ball] = s
		g.increase(g.ballsLeft)
		for _, b := range g.blocks {
			g.listen(b, ball)
		}
	}
}

func (g *Game) listen(b *physics.Block, listeners ...physics.HitListener) {
	for _, l := range listeners {
		if err := b.AddHitListener(l); err != nil {
			g.logger.Error("cannot register hit listener", "err", err)
		}
	}
}

func (g *Game) increase(c *core.Counter) {
	if err := c.Increase(1); err != nil {
		g.logger.Error("counter", "err", err)
	}
}

// RemoveBlock takes b out of the environment and stops drawing it.
func (g *Game) RemoveBlock(b *physics.Block) {
	g.env.Remove(b)
	if s, ok := g.blockSprites[b]; ok {
		g.sprites.Remove(s)
		delete(g.blockSprites, b)
	}
	if i := slices.Index(g.blocks, b); i >= 0 {
		g.blocks = slices.Delete(g.blocks, i, i+1)
	}
	g.logger.Debug("block removed", "tick", g.tick, "left", g.blocksLeft.Value())
}

// RemoveBall stops advancing and drawing ball.
func (g *Game) RemoveBall(ball *physics.Ball) {
	if s, ok := g.ballSprites[ball]; ok {
		g.sprites.Remove(s)
		delete(g.ballSprites, ball)
	}
	if i := slices.Index(g.balls, ball); i >= 0 {
		g.balls = slices.Delete(g.balls, i, i+1)
	}
	g.logger.Debug("ball lost", "tick", g.tick, "left", g.ballsLeft.Value())
}

// Step advances the game by one tick. Hit errors are logged and reported in
// the result; the remaining sprites still get their turn.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.over {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.over {
		g.paused = !g.paused
	}
	if g.paused || g.over {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.paddle.SetSpeed(g.difficulty.Speed(g.cfg.Paddle.BounceSpeed, g.score.Value(), g.tick))

	errs := g.sprites.NotifyAllTimePassed(in)
	for _, err := range errs {
		g.logger.Warn("hit handling failed", "tick", g.tick, "err", err)
	}

	g.checkEnd()
	return core.StepResult{State: g.State(), Errs: errs}
}

func (g *Game) checkEnd() {
	if g.over {
		return
	}

	switch {
	case g.blocksLeft.Value() == 0:
		if err := g.score.Increase(g.cfg.Scoring.ClearBonus); err != nil {
			g.logger.Error("clear bonus", "err", err)
		}
		g.over, g.won = true, true
		g.logger.Info("layout cleared", "layout", g.layout.ID(), "score", g.score.Value(), "ticks", g.tick)
	case g.ballsLeft.Value() == 0:
		g.over = true
		g.logger.Info("all balls lost", "layout", g.layout.ID(), "score", g.score.Value(), "ticks", g.tick)
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	g.sprites.DrawAll(dst, NewViewport(g.field, dst.Width(), dst.Height()))
	g.renderOverlay(dst)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.over && g.won:
		g.drawCenteredBox(dst, "CLEARED!", fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score.Value()))
	case g.over:
		g.drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score.Value()))
	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:      g.score.Value(),
		BallsLeft:  g.ballsLeft.Value(),
		BlocksLeft: g.blocksLeft.Value(),
		GameOver:   g.over,
		Won:        g.won,
		Paused:     g.paused,
	}
}

// Tick returns the number of simulated ticks since Reset.
func (g *Game) Tick() int { return g.tick }

// Environment returns the collision environment.
func (g *Game) Environment() *physics.Environment { return g.env }

// Paddle returns the player's paddle.
func (g *Game) Paddle() *physics.Paddle { return g.paddle }

// Balls returns the balls still in play.
func (g *Game) Balls() []*physics.Ball { return slices.Clone(g.balls) }

// Blocks returns the destructible blocks still standing.
func (g *Game) Blocks() []*physics.Block { return slices.Clone(g.blocks) }
