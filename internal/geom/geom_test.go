package geom

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEpsilonComparisons(t *testing.T) {
	tests := []struct {
		name   string
		a, b   float64
		eq, ge bool
	}{
		{"identical", 1.5, 1.5, true, true},
		{"within epsilon above", 1 + 5e-7, 1, true, true},
		{"within epsilon below", 1 - 5e-7, 1, true, true},
		{"clearly larger", 2, 1, false, true},
		{"clearly smaller", 1, 2, false, false},
		{"just beyond epsilon", 1 - 2e-6, 1, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.eq, Eq(tc.a, tc.b), "Eq(%v, %v)", tc.a, tc.b)
			assert.Equal(t, tc.eq, Eq(tc.b, tc.a), "Eq should be symmetric")
			assert.Equal(t, tc.ge, GreaterOrEqual(tc.a, tc.b), "GreaterOrEqual(%v, %v)", tc.a, tc.b)
			assert.True(t, Eq(tc.a, tc.a), "Eq should be reflexive")
		})
	}
}

func TestPointEqualAndDistance(t *testing.T) {
	assert.True(t, Pt(1, 2).Equal(Pt(1+1e-7, 2-1e-7)))
	assert.False(t, Pt(1, 2).Equal(Pt(1.001, 2)))
	assert.InDelta(t, 5.0, Pt(0, 0).Distance(Pt(3, 4)), 1e-12)
}

func TestFromAngleAndSpeed(t *testing.T) {
	tests := []struct {
		angle  float64
		dx, dy float64
	}{
		{0, 0, -5},
		{90, 5, 0},
		{180, 0, 5},
		{270, -5, 0},
	}

	for _, tc := range tests {
		v := FromAngleAndSpeed(tc.angle, 5)
		assert.InDelta(t, tc.dx, v.DX, 1e-9, "angle %v dx", tc.angle)
		assert.InDelta(t, tc.dy, v.DY, 1e-9, "angle %v dy", tc.angle)
		assert.InDelta(t, 5.0, v.Speed(), 1e-9)
	}
}

func TestVelocityApplyAndFlip(t *testing.T) {
	v := Velocity{DX: 3, DY: -4}
	assert.Equal(t, Pt(4, -2), v.Apply(Pt(1, 2)))
	assert.Equal(t, Velocity{DX: -3, DY: -4}, v.FlipX())
	assert.Equal(t, Velocity{DX: 3, DY: 4}, v.FlipY())
	assert.InDelta(t, v.Speed(), v.FlipX().FlipY().Speed(), 1e-12)
}

func TestRandomVelocityIsSeeded(t *testing.T) {
	a := RandomVelocity(rand.New(rand.NewPCG(7, 7)), 5)
	b := RandomVelocity(rand.New(rand.NewPCG(7, 7)), 5)
	assert.Equal(t, a, b)
	assert.InDelta(t, 5.0, a.Speed(), 1e-9)
}

func TestLineGradient(t *testing.T) {
	assert.InDelta(t, 1.0, NewLine(0, 0, 2, 2).Gradient(), 1e-12)
	assert.True(t, NewLine(3, 0, 3, 9).IsVertical())
	assert.True(t, math.IsInf(NewLine(3, 0, 3, 9).Gradient(), 1))
	assert.True(t, NewLine(0, 4, 9, 4).IsHorizontal())
	assert.True(t, NewLine(2, 2, 2, 2).IsPoint())
	assert.False(t, NewLine(2, 2, 2, 2).IsHorizontal())
}

func TestLineEqual(t *testing.T) {
	a := NewLine(0, 0, 10, 10)
	assert.True(t, a.Equal(NewLine(10, 10, 0, 0)))
	assert.True(t, a.Equal(NewLine(0, 1e-7, 10, 10)))
	assert.False(t, a.Equal(NewLine(0, 0, 10, 11)))
}

func TestLineIntersection(t *testing.T) {
	tests := []struct {
		name       string
		a, b       Line
		intersects bool
		single     bool
		point      Point
	}{
		{"crossing diagonals", NewLine(0, 0, 10, 10), NewLine(0, 10, 10, 0), true, true, Pt(5, 5)},
		{"parallel disjoint", NewLine(0, 0, 10, 10), NewLine(0, 1, 10, 11), false, false, Point{}},
		{"coincident overlapping", NewLine(0, 0, 10, 10), NewLine(5, 5, 15, 15), true, false, Point{}},
		{"coincident touching", NewLine(0, 0, 5, 5), NewLine(5, 5, 10, 10), true, true, Pt(5, 5)},
		{"coincident apart", NewLine(0, 0, 1, 1), NewLine(5, 5, 6, 6), false, false, Point{}},
		{"equal reversed", NewLine(0, 0, 10, 10), NewLine(10, 10, 0, 0), true, false, Point{}},
		{"horizontal overlapping", NewLine(0, 0, 10, 0), NewLine(5, 0, 15, 0), true, false, Point{}},
		{"horizontal contained", NewLine(0, 0, 10, 0), NewLine(2, 0, 3, 0), true, false, Point{}},
		{"horizontal touching", NewLine(0, 0, 5, 0), NewLine(5, 0, 9, 0), true, true, Pt(5, 0)},
		{"horizontal different y", NewLine(0, 0, 10, 0), NewLine(0, 1, 10, 1), false, false, Point{}},
		{"vertical overlapping", NewLine(0, 0, 0, 10), NewLine(0, 5, 0, 15), true, false, Point{}},
		{"vertical touching", NewLine(0, 0, 0, 5), NewLine(0, 5, 0, 9), true, true, Pt(0, 5)},
		{"vertical different x", NewLine(0, 0, 0, 5), NewLine(1, 0, 1, 5), false, false, Point{}},
		{"vertical crosses horizontal", NewLine(5, 0, 5, 10), NewLine(0, 5, 10, 5), true, true, Pt(5, 5)},
		{"vertical misses diagonal", NewLine(5, 0, 5, 2), NewLine(0, 5, 10, 15), false, false, Point{}},
		{"T junction", NewLine(0, 0, 10, 0), NewLine(5, 0, 5, 10), true, true, Pt(5, 0)},
		{"crossing beyond segment end", NewLine(0, 0, 1, 1), NewLine(0, 10, 10, 0), false, false, Point{}},
		{"point on segment", NewLine(5, 5, 5, 5), NewLine(0, 0, 10, 10), true, true, Pt(5, 5)},
		{"point off segment", NewLine(5, 6, 5, 6), NewLine(0, 0, 10, 10), false, false, Point{}},
		{"point on horizontal", NewLine(3, 0, 3, 0), NewLine(0, 0, 10, 0), true, true, Pt(3, 0)},
		{"same point", NewLine(3, 3, 3, 3), NewLine(3, 3, 3, 3), true, true, Pt(3, 3)},
		{"different points", NewLine(3, 3, 3, 3), NewLine(4, 3, 4, 3), false, false, Point{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.intersects, tc.a.IsIntersecting(tc.b), "a.IsIntersecting(b)")
			assert.Equal(t, tc.intersects, tc.b.IsIntersecting(tc.a), "b.IsIntersecting(a)")

			p, ok := tc.a.IntersectionWith(tc.b)
			q, okRev := tc.b.IntersectionWith(tc.a)
			require.Equal(t, tc.single, ok, "a.IntersectionWith(b) found")
			require.Equal(t, tc.single, okRev, "b.IntersectionWith(a) found")
			if tc.single {
				assert.True(t, p.Equal(tc.point), "IntersectionWith() = %v, expected %v", p, tc.point)
				assert.True(t, q.Equal(tc.point), "reverse IntersectionWith() = %v, expected %v", q, tc.point)
			}
		})
	}
}

func TestLineIntersectionSymmetry(t *testing.T) {
	// small integer grid so vertical, horizontal, point and collinear cases show up often
	rng := rand.New(rand.NewPCG(1, 2))
	coord := func() float64 { return float64(rng.IntN(6)) }

	for range 5000 {
		a := NewLine(coord(), coord(), coord(), coord())
		b := NewLine(coord(), coord(), coord(), coord())

		require.Equal(t, a.IsIntersecting(b), b.IsIntersecting(a), "IsIntersecting asymmetric for %v and %v", a, b)

		p, ok := a.IntersectionWith(b)
		q, okRev := b.IntersectionWith(a)
		require.Equal(t, ok, okRev, "IntersectionWith asymmetric for %v and %v", a, b)
		if ok {
			assert.True(t, p.Equal(q), "IntersectionWith(%v, %v) = %v vs %v", a, b, p, q)
			assert.True(t, a.Contains(p) && b.Contains(p), "intersection %v outside segments", p)
		}
	}
}

func TestRectBoundsAndEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	assert.Equal(t, 5.0, r.LowX())
	assert.Equal(t, 25.0, r.HighX())
	assert.Equal(t, 10.0, r.LowY())
	assert.Equal(t, 25.0, r.HighY())
	assert.Equal(t, Pt(15, 17.5), r.Center())

	edges := r.Edges()
	assert.True(t, edges[0].Equal(NewLine(5, 10, 5, 25)), "left edge")
	assert.True(t, edges[1].Equal(NewLine(25, 10, 25, 25)), "right edge")
	assert.True(t, edges[2].Equal(NewLine(5, 10, 25, 10)), "top edge")
	assert.True(t, edges[3].Equal(NewLine(5, 25, 25, 25)), "bottom edge")

	assert.Equal(t, 0.0, NewRect(0, 0, -3, 4).Width, "negative width clamps to zero")
}

func TestRectIntersectionPoints(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	t.Run("clean crossing", func(t *testing.T) {
		points := r.IntersectionPoints(NewLine(-5, 5, 15, 5))
		require.Len(t, points, 2)
		assert.True(t, points[0].Equal(Pt(0, 5)))
		assert.True(t, points[1].Equal(Pt(10, 5)))
	})

	t.Run("diagonal crossing", func(t *testing.T) {
		assert.Len(t, r.IntersectionPoints(NewLine(-5, 2, 15, 8)), 2)
	})

	t.Run("outside", func(t *testing.T) {
		assert.Empty(t, r.IntersectionPoints(NewLine(-5, -5, -1, 20)))
	})

	t.Run("through corner", func(t *testing.T) {
		points := r.IntersectionPoints(NewLine(-5, 5, 5, -5))
		require.Len(t, points, 2)
		assert.True(t, points[0].Equal(Pt(0, 0)))
		assert.True(t, points[1].Equal(Pt(0, 0)))
	})

	t.Run("along an edge", func(t *testing.T) {
		// runs along the top edge: infinitely many points there, corners from the sides
		points := r.IntersectionPoints(NewLine(-5, 0, 15, 0))
		assert.Len(t, points, 2)
	})
}

func TestClosestIntersectionToStart(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	p, ok := NewLine(-5, 5, 15, 5).ClosestIntersectionToStart(r)
	require.True(t, ok)
	assert.True(t, p.Equal(Pt(0, 5)), "got %v", p)

	p, ok = NewLine(15, 5, -5, 5).ClosestIntersectionToStart(r)
	require.True(t, ok)
	assert.True(t, p.Equal(Pt(10, 5)), "got %v", p)

	_, ok = NewLine(20, 20, 30, 30).ClosestIntersectionToStart(r)
	assert.False(t, ok)
}

func TestClosestIntersectionToStartCornerTie(t *testing.T) {
	r := NewRect(10, 10, 10, 10)

	// Each segment ends inside r after crossing the top-left corner, where the
	// left and top edges yield the same point through different solves.
	for i := 1; i <= 9; i++ {
		a, b := 0.7*float64(i), 9.3-0.9*float64(i)
		l := NewLine(10-a, 10-b, 10+a, 10+b)

		want, ok := l.IntersectionWith(r.LeftEdge())
		require.True(t, ok)

		got, ok := l.ClosestIntersectionToStart(r)
		require.True(t, ok)
		assert.Equal(t, want, got, "segment %v should keep the left edge point", l)
		assert.True(t, got.Equal(Pt(10, 10)), "got %v", got)
	}
}

func TestRectSidesAt(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	tests := []struct {
		name string
		p    Point
		want Side
	}{
		{"left", Pt(0, 5), SideLeft},
		{"right", Pt(10, 5), SideRight},
		{"top", Pt(5, 0), SideTop},
		{"bottom", Pt(5, 10), SideBottom},
		{"top-left corner", Pt(0, 0), SideLeft | SideTop},
		{"bottom-right corner", Pt(10, 10), SideRight | SideBottom},
		{"interior", Pt(5, 5), SideNone},
		{"outside", Pt(20, 5), SideNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.SidesAt(tc.p))
		})
	}

	assert.True(t, (SideLeft | SideTop).Vertical())
	assert.True(t, (SideLeft | SideTop).Horizontal())
	assert.False(t, SideNone.Has(SideNone))
}

func TestRectOverlapsCircle(t *testing.T) {
	r := NewRect(10, 10, 10, 10)

	assert.True(t, r.OverlapsCircle(Pt(15, 15), 1))
	assert.True(t, r.OverlapsCircle(Pt(7, 15), 3), "touching the left side")
	assert.False(t, r.OverlapsCircle(Pt(5, 15), 3))
	assert.True(t, r.Contains(Pt(20, 20)))
	assert.False(t, r.Contains(Pt(20.1, 20)))
}
