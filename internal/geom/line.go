package geom

import "math"

// axis selects which coordinate a collinear overlap is measured on.
type axis int

const (
	axisX axis = iota
	axisY
)

// Line is a segment between two points.
type Line struct {
	Start, End Point
}

// NewLine creates a segment from (x1, y1) to (x2, y2).
func NewLine(x1, y1, x2, y2 float64) Line {
	return Line{Start: Point{X: x1, Y: y1}, End: Point{X: x2, Y: y2}}
}

// Length returns the distance between the endpoints.
func (l Line) Length() float64 {
	return l.Start.Distance(l.End)
}

// IsVertical reports whether both endpoints share an x coordinate.
// A degenerate point-line is vertical.
func (l Line) IsVertical() bool {
	return Eq(l.Start.X, l.End.X)
}

// IsHorizontal reports whether the segment has zero gradient.
func (l Line) IsHorizontal() bool {
	return !l.IsVertical() && Eq(l.Gradient(), 0)
}

// IsPoint reports whether the segment collapses to a single point.
func (l Line) IsPoint() bool {
	return l.Start.Equal(l.End)
}

// Gradient returns the slope of the segment, or +Inf when it is vertical.
// The vertical case is checked before dividing.
func (l Line) Gradient() float64 {
	if l.IsVertical() {
		return math.Inf(1)
	}
	return (l.End.Y - l.Start.Y) / (l.End.X - l.Start.X)
}

// intercept returns b in y = mx + b. Vertical lines encode -x instead; the
// value only serves to tell vertical lines apart and is never a y-intercept.
func (l Line) intercept() float64 {
	if l.IsVertical() {
		return -l.Start.X
	}
	return l.Start.Y - l.Gradient()*l.Start.X
}

// yAt evaluates the line equation at x. Only valid for non-vertical lines.
func (l Line) yAt(x float64) float64 {
	return l.Gradient()*x + l.intercept()
}

// Equal reports whether both segments have the same endpoints, in either order.
func (l Line) Equal(other Line) bool {
	same := l.Start.Equal(other.Start) && l.End.Equal(other.End)
	swapped := l.Start.Equal(other.End) && l.End.Equal(other.Start)
	return same || swapped
}

func (l Line) span(a axis) (lo, hi float64) {
	if a == axisX {
		return math.Min(l.Start.X, l.End.X), math.Max(l.Start.X, l.End.X)
	}
	return math.Min(l.Start.Y, l.End.Y), math.Max(l.Start.Y, l.End.Y)
}

// Contains reports whether p lies inside the segment's bounding box.
// Callers use it for points already known to be on the infinite line.
func (l Line) Contains(p Point) bool {
	minX, maxX := l.span(axisX)
	minY, maxY := l.span(axisY)
	return InRange(p.X, minX, maxX) && InRange(p.Y, minY, maxY)
}

// ContainsVertical reports whether p sits on the segment's x and within its y-span.
func (l Line) ContainsVertical(p Point) bool {
	minX, _ := l.span(axisX)
	minY, maxY := l.span(axisY)
	return Eq(p.X, minX) && InRange(p.Y, minY, maxY)
}

// ContainsHorizontal reports whether p sits on the segment's y and within its x-span.
func (l Line) ContainsHorizontal(p Point) bool {
	minX, maxX := l.span(axisX)
	minY, _ := l.span(axisY)
	return Eq(p.Y, minY) && InRange(p.X, minX, maxX)
}

// overlaps reports whether the projections of both segments on a share a point,
// which is the same as an endpoint of either one lying in the other's span.
func (l Line) overlaps(other Line, a axis) bool {
	lo1, hi1 := l.span(a)
	lo2, hi2 := other.span(a)
	return GreaterOrEqual(math.Min(hi1, hi2), math.Max(lo1, lo2))
}

// sharedEndpoint resolves two collinear, overlapping segments. They meet in a
// single point only when the overlap has zero length; longer overlaps have
// infinitely many common points and report false.
func (l Line) sharedEndpoint(other Line, a axis) (Point, bool) {
	lo1, hi1 := l.span(a)
	lo2, hi2 := other.span(a)
	lo, hi := math.Max(lo1, lo2), math.Min(hi1, hi2)
	if !Eq(lo, hi) {
		return Point{}, false
	}
	for _, p := range [2]Point{l.Start, l.End} {
		c := p.X
		if a == axisY {
			c = p.Y
		}
		if Eq(c, lo) {
			return p, true
		}
	}
	return Point{}, false
}

// solve returns the crossing point of two non-parallel, non-vertical lines.
func (l Line) solve(other Line) Point {
	m1, b1 := l.Gradient(), l.intercept()
	m2, b2 := other.Gradient(), other.intercept()
	x := (b2 - b1) / (m1 - m2)
	return Point{X: x, Y: m1*x + b1}
}

// IsIntersecting reports whether the two segments share at least one point.
func (l Line) IsIntersecting(other Line) bool {
	switch {
	case l.IsHorizontal() && other.IsHorizontal():
		return Eq(l.Start.Y, other.Start.Y) && l.overlaps(other, axisX)
	case l.IsVertical() && other.IsVertical():
		return Eq(l.Start.X, other.Start.X) && l.overlaps(other, axisY)
	case l.IsVertical():
		p := Point{X: l.Start.X, Y: other.yAt(l.Start.X)}
		return l.ContainsVertical(p) && other.Contains(p)
	case other.IsVertical():
		p := Point{X: other.Start.X, Y: l.yAt(other.Start.X)}
		return l.Contains(p) && other.ContainsVertical(p)
	}

	if Eq(l.Gradient(), other.Gradient()) {
		// coincident lines meet where their spans overlap, parallel ones never
		return Eq(l.intercept(), other.intercept()) && l.overlaps(other, axisX)
	}

	p := l.solve(other)
	return l.Contains(p) && other.Contains(p)
}

// IntersectionWith returns the single point the two segments share.
// It reports false when they do not touch or overlap along a stretch.
func (l Line) IntersectionWith(other Line) (Point, bool) {
	if !l.IsIntersecting(other) {
		return Point{}, false
	}

	switch {
	case l.IsPoint():
		return l.Start, true
	case other.IsPoint():
		return other.Start, true
	case l.IsHorizontal() && other.IsHorizontal():
		return l.sharedEndpoint(other, axisX)
	case l.IsVertical() && other.IsVertical():
		return l.sharedEndpoint(other, axisY)
	case l.IsVertical():
		return Point{X: l.Start.X, Y: other.yAt(l.Start.X)}, true
	case other.IsVertical():
		return Point{X: other.Start.X, Y: l.yAt(other.Start.X)}, true
	}

	if Eq(l.Gradient(), other.Gradient()) {
		return l.sharedEndpoint(other, axisX)
	}
	return l.solve(other), true
}

// ClosestIntersectionToStart returns the intersection with r's edges nearest to
// the segment's start. Ties within Epsilon keep the earlier edge in Edges order.
func (l Line) ClosestIntersectionToStart(r Rect) (Point, bool) {
	points := r.IntersectionPoints(l)
	if len(points) == 0 {
		return Point{}, false
	}

	closest := points[0]
	best := l.Start.Distance(closest)
	for _, p := range points[1:] {
		if d := l.Start.Distance(p); !GreaterOrEqual(d, best) {
			closest, best = p, d
		}
	}
	return closest, true
}
