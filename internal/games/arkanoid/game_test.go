package arkanoid

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/geom"
	"github.com/vovakirdan/tui-arkanoid/internal/physics"
	"github.com/vovakirdan/tui-arkanoid/internal/registry"
)

var testRuntime = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  24,
	TickRate: 60,
	Seed:     12345,
}

// singleBlock places one blue block in the middle of the field.
type singleBlock struct{}

func (singleBlock) ID() string    { return "single" }
func (singleBlock) Title() string { return "Single" }
func (singleBlock) Blocks(config.BlocksConfig, *rand.Rand) []registry.BlockSpec {
	return []registry.BlockSpec{{Rect: geom.NewRect(400, 300, 50, 15), Color: core.ColorBlue}}
}

func newGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	g, err := New(config.DefaultArkanoidConfig(), opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	g.Reset(testRuntime)
	return g
}

func deathRegion(t *testing.T, g *Game) *physics.Block {
	t.Helper()
	for _, c := range g.Environment().Collidables() {
		if b, ok := c.(*physics.Block); ok && b.CollisionRect().LowY() == 595 {
			return b
		}
	}
	t.Fatal("no death region in the environment")
	return nil
}

func TestNewUnknownLayout(t *testing.T) {
	cfg := config.DefaultArkanoidConfig()
	cfg.Layout = "spiral"

	_, err := New(cfg)
	if !errors.Is(err, registry.ErrUnknownLayout) {
		t.Errorf("New() error = %v, want ErrUnknownLayout", err)
	}
}

func TestNewInvalidConfig(t *testing.T) {
	cfg := config.DefaultArkanoidConfig()
	cfg.Ball.Radius = 0

	_, err := New(cfg)
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("New() error = %v, want ErrInvalidConfig", err)
	}
}

func TestResetBuildsClassicScene(t *testing.T) {
	g := newGame(t)

	state := g.State()
	if state.BlocksLeft != 57 {
		t.Errorf("BlocksLeft = %d, want 57", state.BlocksLeft)
	}
	if state.BallsLeft != 3 {
		t.Errorf("BallsLeft = %d, want 3", state.BallsLeft)
	}
	if state.Score != 0 || state.GameOver || state.Paused {
		t.Errorf("unexpected fresh state %+v", state)
	}

	// top border, death region, right, left, score bar, blocks, paddle
	collidables := g.Environment().Collidables()
	if len(collidables) != 5+57+1 {
		t.Fatalf("environment has %d collidables, want 63", len(collidables))
	}

	wantBounds := []geom.Rect{
		geom.NewRect(0, 0, 800, 25),
		geom.NewRect(0, 595, 800, 5),
		geom.NewRect(795, 0, 5, 600),
		geom.NewRect(0, 0, 5, 600),
		geom.NewRect(0, 0, 800, 20),
	}
	for i, want := range wantBounds {
		if got := collidables[i].CollisionRect(); got != want {
			t.Errorf("collidable %d = %+v, want %+v", i, got, want)
		}
	}
	if collidables[len(collidables)-1] != physics.Collidable(g.Paddle()) {
		t.Error("paddle should be registered last")
	}

	first := g.Blocks()[0].CollisionRect()
	if first.LowX() != 745 || first.LowY() != 150 {
		t.Errorf("first block at (%v, %v), want (745, 150)", first.LowX(), first.LowY())
	}

	for _, b := range g.Blocks() {
		// remover, score tracker, one per ball
		if n := b.ListenerCount(); n != 5 {
			t.Fatalf("block %+v has %d listeners, want 5", b.CollisionRect(), n)
		}
	}

	for _, ball := range g.Balls() {
		if ball.Color() != core.ColorRed {
			t.Errorf("ball color = %v, want red", ball.Color())
		}
		if ball.Velocity().Speed() == 0 {
			t.Error("ball should start moving")
		}
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newGame(t)
		for range 600 {
			if g.Step(g.AutopilotInput()).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", snap1.Tick, snap2.Tick)
	}
}

func TestSeedChangesScene(t *testing.T) {
	g1 := newGame(t)

	g2, err := New(config.DefaultArkanoidConfig())
	if err != nil {
		t.Fatal(err)
	}
	rt := testRuntime
	rt.Seed = 54321
	g2.Reset(rt)

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Hash() == s2.Hash() {
		t.Error("different seeds produced identical scenes")
	}
}

func TestClearingLastBlockWins(t *testing.T) {
	g := newGame(t, WithLayout(singleBlock{}))
	if g.State().BlocksLeft != 1 {
		t.Fatalf("BlocksLeft = %d, want 1", g.State().BlocksLeft)
	}

	block := g.Blocks()[0]
	hitter := g.Balls()[0]
	if _, err := block.Hit(hitter, block.CollisionRect().Center(), hitter.Velocity()); err != nil {
		t.Fatalf("Hit() error = %v", err)
	}

	if len(g.Blocks()) != 0 {
		t.Error("block should be removed from the game")
	}
	if g.Environment().Len() != 5+1 {
		t.Errorf("environment has %d collidables, want 6", g.Environment().Len())
	}
	if hitter.Color() != core.ColorBlue {
		t.Errorf("hitter color = %v, want blue", hitter.Color())
	}
	if other := g.Balls()[1]; other.Color() != core.ColorRed {
		t.Errorf("bystander ball changed color to %v", other.Color())
	}

	result := g.Step(core.NewInputFrame())
	if !result.State.GameOver || !result.State.Won {
		t.Fatalf("state = %+v, want won", result.State)
	}
	if result.State.Score != 5+100 {
		t.Errorf("Score = %d, want 105", result.State.Score)
	}
	if result.State.Outcome() != "cleared" {
		t.Errorf("Outcome() = %q", result.State.Outcome())
	}

	tick := g.Tick()
	g.Step(core.NewInputFrame())
	if g.Tick() != tick {
		t.Error("finished game should not advance")
	}
}

func TestLosingAllBallsEndsGame(t *testing.T) {
	g := newGame(t, WithLayout(singleBlock{}))
	death := deathRegion(t, g)

	for _, ball := range g.Balls() {
		if _, err := death.Hit(ball, geom.Pt(ball.Center().X, 595), ball.Velocity()); err != nil {
			t.Fatalf("Hit() error = %v", err)
		}
	}
	if n := len(g.Balls()); n != 0 {
		t.Fatalf("%d balls still in play", n)
	}

	result := g.Step(core.NewInputFrame())
	if !result.State.GameOver || result.State.Won {
		t.Fatalf("state = %+v, want lost", result.State)
	}
	if result.State.Outcome() != "lost" {
		t.Errorf("Outcome() = %q", result.State.Outcome())
	}

	restart := core.NewInputFrame(core.ActionRestart)
	g.Step(restart)
	state := g.State()
	if state.GameOver || state.BallsLeft != 3 || state.BlocksLeft != 1 {
		t.Errorf("restart state = %+v", state)
	}
}

func TestRemoverUnderflowIsReported(t *testing.T) {
	g := newGame(t, WithLayout(singleBlock{}))
	block := g.Blocks()[0]

	r := NewBlockRemover(g, core.NewCounter(0))
	err := r.HitEvent(block, nil)
	if !errors.Is(err, core.ErrCounterUnderflow) {
		t.Errorf("HitEvent() error = %v, want ErrCounterUnderflow", err)
	}
	if len(g.Blocks()) != 1 {
		t.Error("block should stay when the counter refuses")
	}
}

func TestPauseToggle(t *testing.T) {
	g := newGame(t)

	g.Step(core.NewInputFrame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}
	if g.Tick() != 0 {
		t.Errorf("Tick() = %d while paused", g.Tick())
	}

	g.Step(core.NewInputFrame())
	if g.Tick() != 0 {
		t.Error("paused game advanced")
	}

	g.Step(core.NewInputFrame(core.ActionPause))
	if g.State().Paused || g.Tick() != 1 {
		t.Errorf("after unpause: paused=%v tick=%d", g.State().Paused, g.Tick())
	}
}

func TestPaddleFollowsInput(t *testing.T) {
	g := newGame(t)
	start := g.Paddle().CollisionRect().LowX()

	g.Step(core.NewInputFrame(core.ActionLeft))
	if got := g.Paddle().CollisionRect().LowX(); got != start-5 {
		t.Errorf("paddle x after left = %v, want %v", got, start-5)
	}

	g.Step(core.NewInputFrame(core.ActionRight))
	g.Step(core.NewInputFrame(core.ActionRight))
	if got := g.Paddle().CollisionRect().LowX(); got != start+5 {
		t.Errorf("paddle x after right = %v, want %v", got, start+5)
	}
}

func TestScreenTooSmall(t *testing.T) {
	g, err := New(config.DefaultArkanoidConfig())
	if err != nil {
		t.Fatal(err)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, Seed: 1})

	g.Step(core.NewInputFrame())
	if g.Tick() != 0 {
		t.Error("game should not advance on a small screen")
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("missing size warning:\n%s", screen.String())
	}
}

func TestRender(t *testing.T) {
	g := newGame(t)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Score: 0") {
		t.Errorf("score bar missing:\n%s", out)
	}
	if !strings.Contains(out, "Balls: 3  Blocks: 57") {
		t.Errorf("counters missing:\n%s", out)
	}
	if !strings.ContainsRune(out, BallChar) {
		t.Error("no ball drawn")
	}
	if !strings.ContainsRune(out, BlockChar) {
		t.Error("no block drawn")
	}
	if screen.GetCell(0, 12).Rune != BorderChar {
		t.Errorf("left border cell = %q", screen.GetCell(0, 12).Rune)
	}

	g.Step(core.NewInputFrame(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause overlay missing")
	}
}

func TestAutopilotNeverPressesBoth(t *testing.T) {
	g := newGame(t)
	for range 300 {
		in := g.AutopilotInput()
		if in.Has(core.ActionLeft) && in.Has(core.ActionRight) {
			t.Fatal("autopilot pressed left and right together")
		}
		if g.Step(in).State.GameOver {
			break
		}
	}
	if g.State().GameOver && len(g.AutopilotInput().Actions) != 0 {
		t.Error("autopilot should idle once the game is over")
	}
}

func TestResizeKeepsScene(t *testing.T) {
	g := newGame(t)
	g.Step(core.NewInputFrame())
	before := g.Snapshot()

	g.Resize(30, 10)
	g.Step(core.NewInputFrame())
	if g.Tick() != 1 {
		t.Error("game should hold while the window is too small")
	}

	g.Resize(120, 40)
	after := g.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("resize changed the scene")
	}
	g.Step(core.NewInputFrame())
	if g.Tick() != 2 {
		t.Errorf("Tick() = %d after growing the window", g.Tick())
	}
}
