package arkanoid

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/physics"
)

// Glyphs used when drawing.
const (
	BallChar   = '●'
	BlockChar  = '█'
	BorderChar = '▒'
	PaddleChar = '▀'
)

// Sprite is anything drawn every frame and advanced every tick.
type Sprite interface {
	Draw(dst *core.Screen, vp Viewport)
	TimePassed(in core.InputFrame) error
}

// SpriteCollection is the ordered set of sprites in a game.
type SpriteCollection struct {
	sprites []Sprite
}

// Add appends s.
func (c *SpriteCollection) Add(s Sprite) {
	c.sprites = append(c.sprites, s)
}

// Remove drops the first occurrence of s.
func (c *SpriteCollection) Remove(s Sprite) {
	if i := slices.Index(c.sprites, s); i >= 0 {
		c.sprites = slices.Delete(c.sprites, i, i+1)
	}
}

// Len returns the number of sprites.
func (c *SpriteCollection) Len() int {
	return len(c.sprites)
}

// NotifyAllTimePassed advances every sprite present when it was called, in
// order. Sprites removed meanwhile still get this tick. Errors do not stop
// the loop; they are collected and returned.
func (c *SpriteCollection) NotifyAllTimePassed(in core.InputFrame) []error {
	var errs []error
	for _, s := range slices.Clone(c.sprites) {
		if err := s.TimePassed(in); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// DrawAll draws every sprite in order, later ones on top.
func (c *SpriteCollection) DrawAll(dst *core.Screen, vp Viewport) {
	for _, s := range c.sprites {
		s.Draw(dst, vp)
	}
}

type ballSprite struct {
	ball *physics.Ball
}

func (s *ballSprite) Draw(dst *core.Screen, vp Viewport) {
	x, y := vp.Cell(s.ball.Center())
	dst.SetCell(x, y, core.Cell{Rune: BallChar, Color: s.ball.Color()})
}

func (s *ballSprite) TimePassed(core.InputFrame) error {
	return s.ball.Step()
}

type blockSprite struct {
	block *physics.Block
	glyph rune
}

func (s *blockSprite) Draw(dst *core.Screen, vp Viewport) {
	dst.FillRect(vp.Rect(s.block.CollisionRect()), core.Cell{Rune: s.glyph, Color: s.block.Color()})
}

func (s *blockSprite) TimePassed(core.InputFrame) error { return nil }

type paddleSprite struct {
	paddle *physics.Paddle
}

func (s *paddleSprite) Draw(dst *core.Screen, vp Viewport) {
	dst.FillRect(vp.Rect(s.paddle.CollisionRect()), core.Cell{Rune: PaddleChar, Color: s.paddle.Color()})
}

func (s *paddleSprite) TimePassed(in core.InputFrame) error {
	if in.Has(core.ActionLeft) {
		s.paddle.MoveLeft()
	}
	if in.Has(core.ActionRight) {
		s.paddle.MoveRight()
	}
	return nil
}

// scoreIndicator is the bar at the top of the field showing the score.
// It is also a collidable block.
type scoreIndicator struct {
	block *physics.Block
	game  *Game
}

func (s *scoreIndicator) Draw(dst *core.Screen, vp Viewport) {
	r := vp.Rect(s.block.CollisionRect())
	dst.FillRect(r, core.Cell{Rune: ' '})

	left := fmt.Sprintf("Score: %d", s.game.score.Value())
	right := fmt.Sprintf("Balls: %d  Blocks: %d", s.game.ballsLeft.Value(), s.game.blocksLeft.Value())
	leftRect := core.NewRect(r.X+1, r.Y, len(left)+1, 1)
	rightRect := core.NewRect(r.Right()-len(right)-1, r.Y, len(right), 1)

	dst.DrawColoredText(leftRect.X, leftRect.Y, left, s.block.Color())
	// narrow screens only get the score
	if !leftRect.Intersects(rightRect) {
		dst.DrawColoredText(rightRect.X, rightRect.Y, right, s.block.Color())
	}
}

func (s *scoreIndicator) TimePassed(core.InputFrame) error { return nil }
