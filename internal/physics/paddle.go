package physics

import (
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/geom"
)

// zoneResponse is how one fifth of the paddle's top edge answers a hit.
type zoneResponse struct {
	angle   float64
	reflect bool
}

// paddleZones lists the responses from left to right. Outer zones send the
// ball away at a steep angle, the middle one mirrors it.
var paddleZones = [...]zoneResponse{
	{angle: 300},
	{angle: 330},
	{reflect: true},
	{angle: 30},
	{angle: 60},
}

// Paddle is the player-controlled obstacle. It wraps around the field
// horizontally when moved past either side.
type Paddle struct {
	rect  geom.Rect
	color core.Color
	step  float64
	speed float64
	field geom.Rect
}

// NewPaddle creates a paddle. step is the distance of one move and speed is
// the ball speed after bouncing off an angled zone.
func NewPaddle(rect geom.Rect, color core.Color, step, speed float64, field geom.Rect) *Paddle {
	return &Paddle{rect: rect, color: color, step: step, speed: speed, field: field}
}

// CollisionRect implements Collidable.
func (p *Paddle) CollisionRect() geom.Rect { return p.rect }

// Color returns the paddle's color.
func (p *Paddle) Color() core.Color { return p.color }

// SetColor changes the paddle's color.
func (p *Paddle) SetColor(c core.Color) { p.color = c }

// SetSpeed changes the ball speed used by the angled zones.
func (p *Paddle) SetSpeed(speed float64) { p.speed = speed }

// Hit implements Collidable. Hits on the top edge use the zone table, where a
// point on a zone boundary belongs to the zone on its left. Hits on the side
// edges flip horizontal motion. Anything else keeps v.
func (p *Paddle) Hit(_ *Ball, at geom.Point, v geom.Velocity) (geom.Velocity, error) {
	if zone, ok := p.zoneAt(at); ok {
		resp := paddleZones[zone]
		if resp.reflect {
			return v.FlipY(), nil
		}
		return geom.FromAngleAndSpeed(resp.angle, p.speed), nil
	}

	if p.rect.SidesAt(at).Vertical() {
		return v.FlipX(), nil
	}
	return v, nil
}

func (p *Paddle) zoneAt(at geom.Point) (int, bool) {
	top := p.rect.TopEdge()
	if !top.ContainsHorizontal(at) {
		return 0, false
	}

	width := p.rect.Width / float64(len(paddleZones))
	for i := range paddleZones {
		lo := p.rect.LowX() + float64(i)*width
		if geom.InRange(at.X, lo, lo+width) {
			return i, true
		}
	}
	return 0, false
}

// MoveLeft shifts the paddle one step left. Once it has left the field
// entirely it re-enters from the right side.
func (p *Paddle) MoveLeft() {
	x := p.rect.LowX() - p.step
	if right := p.rect.HighX(); !geom.GreaterOrEqual(right, p.field.LowX()) {
		x = p.field.HighX() + (right - p.field.LowX()) - p.step
	}
	p.rect = p.rect.MoveTo(geom.Point{X: x, Y: p.rect.LowY()})
}

// MoveRight shifts the paddle one step right. Once it has left the field
// entirely it re-enters from the left side.
func (p *Paddle) MoveRight() {
	left := p.rect.LowX()
	x := left + p.step
	if !geom.GreaterOrEqual(p.field.HighX(), left) {
		x = p.field.LowX() + (left - p.field.HighX()) - p.rect.Width + p.step
	}
	p.rect = p.rect.MoveTo(geom.Point{X: x, Y: p.rect.LowY()})
}
