package physics

import (
	"errors"
	"slices"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/geom"
)

// ErrNilListener is returned when registering a nil HitListener.
var ErrNilListener = errors.New("physics: nil hit listener")

// HitListener is notified when a ball strikes a Block.
type HitListener interface {
	HitEvent(beingHit *Block, hitter *Ball) error
}

// HitNotifier manages a set of hit listeners.
type HitNotifier interface {
	AddHitListener(l HitListener) error
	RemoveHitListener(l HitListener)
}

// Block is a static rectangular obstacle. Borders, the death region and
// destructible bricks are all blocks.
type Block struct {
	rect      geom.Rect
	color     core.Color
	listeners []HitListener
}

// NewBlock creates a block with no listeners.
func NewBlock(rect geom.Rect, color core.Color) *Block {
	return &Block{rect: rect, color: color}
}

// CollisionRect implements Collidable.
func (b *Block) CollisionRect() geom.Rect { return b.rect }

// Color returns the block's color.
func (b *Block) Color() core.Color { return b.color }

// ColorMatches reports whether ball has the same color as the block.
func (b *Block) ColorMatches(ball *Ball) bool {
	return ball != nil && ball.Color() == b.color
}

// Hit reflects v off the sides of the block that p lies on: horizontal
// motion flips on the left and right edges, vertical motion on the top and
// bottom, both at a corner. Listeners are notified unless the hitter has the
// block's color.
func (b *Block) Hit(hitter *Ball, p geom.Point, v geom.Velocity) (geom.Velocity, error) {
	sides := b.rect.SidesAt(p)
	if sides.Vertical() {
		v = v.FlipX()
	}
	if sides.Horizontal() {
		v = v.FlipY()
	}

	if hitter == nil || b.ColorMatches(hitter) {
		return v, nil
	}
	return v, b.notifyHit(hitter)
}

// AddHitListener appends l. Adding the same listener twice delivers twice.
func (b *Block) AddHitListener(l HitListener) error {
	if l == nil {
		return ErrNilListener
	}
	b.listeners = append(b.listeners, l)
	return nil
}

// RemoveHitListener drops the first registration of l, if any.
func (b *Block) RemoveHitListener(l HitListener) {
	if i := slices.Index(b.listeners, l); i >= 0 {
		b.listeners = slices.Delete(b.listeners, i, i+1)
	}
}

// ListenerCount returns the number of registered listeners.
func (b *Block) ListenerCount() int {
	return len(b.listeners)
}

// notifyHit delivers the event to the listeners registered when it started,
// so listeners may add or remove themselves while it runs.
func (b *Block) notifyHit(hitter *Ball) error {
	var errs []error
	for _, l := range slices.Clone(b.listeners) {
		if err := l.HitEvent(b, hitter); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
