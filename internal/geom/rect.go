package geom

// Side is a bit set naming the rectangle edges a point lies on.
type Side uint8

const (
	SideLeft Side = 1 << iota
	SideRight
	SideTop
	SideBottom

	SideNone Side = 0
)

// Has reports whether s includes every side in other.
func (s Side) Has(other Side) bool {
	return s&other == other && other != SideNone
}

// Vertical reports whether s includes the left or right edge.
func (s Side) Vertical() bool {
	return s&(SideLeft|SideRight) != 0
}

// Horizontal reports whether s includes the top or bottom edge.
func (s Side) Horizontal() bool {
	return s&(SideTop|SideBottom) != 0
}

// Rect is an axis-aligned rectangle anchored at its upper-left corner.
type Rect struct {
	UpperLeft     Point
	Width, Height float64
}

// NewRect creates a rectangle. Negative dimensions are treated as zero.
func NewRect(x, y, w, h float64) Rect {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{UpperLeft: Point{X: x, Y: y}, Width: w, Height: h}
}

// LowX returns the left bound.
func (r Rect) LowX() float64 { return r.UpperLeft.X }

// HighX returns the right bound.
func (r Rect) HighX() float64 { return r.UpperLeft.X + r.Width }

// LowY returns the top bound.
func (r Rect) LowY() float64 { return r.UpperLeft.Y }

// HighY returns the bottom bound.
func (r Rect) HighY() float64 { return r.UpperLeft.Y + r.Height }

// UpperRight returns the upper-right corner.
func (r Rect) UpperRight() Point { return Point{X: r.HighX(), Y: r.LowY()} }

// LowerLeft returns the lower-left corner.
func (r Rect) LowerLeft() Point { return Point{X: r.LowX(), Y: r.HighY()} }

// LowerRight returns the lower-right corner.
func (r Rect) LowerRight() Point { return Point{X: r.HighX(), Y: r.HighY()} }

// Center returns the middle of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.UpperLeft.X + r.Width/2, Y: r.UpperLeft.Y + r.Height/2}
}

// MoveTo returns the same rectangle anchored at upperLeft.
func (r Rect) MoveTo(upperLeft Point) Rect {
	return Rect{UpperLeft: upperLeft, Width: r.Width, Height: r.Height}
}

// LeftEdge returns the left side, top to bottom.
func (r Rect) LeftEdge() Line { return Line{Start: r.UpperLeft, End: r.LowerLeft()} }

// RightEdge returns the right side, top to bottom.
func (r Rect) RightEdge() Line { return Line{Start: r.UpperRight(), End: r.LowerRight()} }

// TopEdge returns the top side, left to right.
func (r Rect) TopEdge() Line { return Line{Start: r.UpperLeft, End: r.UpperRight()} }

// BottomEdge returns the bottom side, left to right.
func (r Rect) BottomEdge() Line { return Line{Start: r.LowerLeft(), End: r.LowerRight()} }

// Edges returns the four sides in left, right, top, bottom order.
func (r Rect) Edges() [4]Line {
	return [4]Line{r.LeftEdge(), r.RightEdge(), r.TopEdge(), r.BottomEdge()}
}

// SidesAt classifies p against the four edges. Corners report two sides and
// points off the outline report SideNone.
func (r Rect) SidesAt(p Point) Side {
	s := SideNone
	if r.LeftEdge().ContainsVertical(p) {
		s |= SideLeft
	}
	if r.RightEdge().ContainsVertical(p) {
		s |= SideRight
	}
	if r.TopEdge().ContainsHorizontal(p) {
		s |= SideTop
	}
	if r.BottomEdge().ContainsHorizontal(p) {
		s |= SideBottom
	}
	return s
}

// Contains reports whether p lies inside or on the rectangle.
func (r Rect) Contains(p Point) bool {
	return InRange(p.X, r.LowX(), r.HighX()) && InRange(p.Y, r.LowY(), r.HighY())
}

// OverlapsCircle reports whether the bounding square of a circle touches the
// rectangle. It is a placement check, not an exact circle test.
func (r Rect) OverlapsCircle(center Point, radius float64) bool {
	return center.X+radius >= r.LowX() && center.X-radius <= r.HighX() &&
		center.Y+radius >= r.LowY() && center.Y-radius <= r.HighY()
}

// IntersectionPoints returns every single-point intersection between l and
// the rectangle's edges, in Edges order. Edges that l runs along are skipped.
func (r Rect) IntersectionPoints(l Line) []Point {
	var points []Point
	for _, edge := range r.Edges() {
		if p, ok := l.IntersectionWith(edge); ok {
			points = append(points, p)
		}
	}
	return points
}
