package aoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectionTurns(t *testing.T) {
	tests := []struct {
		d                Direction
		left, right, rev Direction
	}{
		{Up, Left, Right, Down},
		{Right, Up, Down, Left},
		{Down, Right, Left, Up},
		{Left, Down, Up, Right},
	}
	for _, tt := range tests {
		if got := tt.d.TurnLeft(); got != tt.left {
			t.Errorf("%v.TurnLeft() = %v, want %v", tt.d, got, tt.left)
		}
		if got := tt.d.TurnRight(); got != tt.right {
			t.Errorf("%v.TurnRight() = %v, want %v", tt.d, got, tt.right)
		}
		if got := tt.d.Reverse(); got != tt.rev {
			t.Errorf("%v.Reverse() = %v, want %v", tt.d, got, tt.rev)
		}
		if got := tt.d.Turn(true).Turn(false); got != tt.d {
			t.Errorf("%v right then left = %v", tt.d, got)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		got, err := ParseDirection(rune(d.String()[0]))
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	_, err := ParseDirection('x')
	assert.Error(t, err)
}

func TestNeighbor(t *testing.T) {
	p := Pt{Row: 0, Col: 2}
	tests := []struct {
		d    Direction
		want Pt
		ok   bool
	}{
		{Up, Pt{}, false},
		{Right, Pt{Row: 0, Col: 3}, false},
		{Down, Pt{Row: 1, Col: 2}, true},
		{Left, Pt{Row: 0, Col: 1}, true},
	}
	for _, tt := range tests {
		got, ok := p.Neighbor(tt.d, 3)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("Neighbor(%v, 3) = %v, %v; want %v, %v", tt.d, got, ok, tt.want, tt.ok)
		}
		if u := p.UnboundNeighbor(tt.d); tt.ok && u != tt.want {
			t.Errorf("UnboundNeighbor(%v) = %v, want %v", tt.d, u, tt.want)
		}
	}
	assert.Equal(t, Pt{Row: -1, Col: 2}, p.UnboundNeighbor(Up))
}

func TestNeighborWithinRectangle(t *testing.T) {
	bound := Pt{Row: 2, Col: 5}
	p := Pt{Row: 1, Col: 3}

	n, ok := p.NeighborWithin(Right, bound)
	require.True(t, ok)
	assert.Equal(t, Pt{Row: 1, Col: 4}, n)

	_, ok = p.NeighborWithin(Down, bound)
	assert.False(t, ok)

	// A square bound of the row count would wrongly reject column 4.
	_, ok = p.Neighbor(Right, 2)
	assert.False(t, ok)
}

func TestInBounds(t *testing.T) {
	tests := []struct {
		p    Pt
		want bool
	}{
		{Pt{}, true},
		{Pt{Row: 2, Col: 2}, true},
		{Pt{Row: 3, Col: 0}, false},
		{Pt{Row: 0, Col: 3}, false},
		{Pt{Row: -1, Col: 1}, false},
	}
	for _, tt := range tests {
		if got := tt.p.InBounds(3); got != tt.want {
			t.Errorf("%v.InBounds(3) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestPtCompare(t *testing.T) {
	a := Pt{Row: 1, Col: 5}
	b := Pt{Row: 2, Col: 0}
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, -1, a.Compare(Pt{Row: 1, Col: 6}))
}

func TestDistances(t *testing.T) {
	a := Pt{Row: 1, Col: 1}
	assert.Equal(t, 4, a.StraightDist(Pt{Row: 1, Col: 5}))
	assert.Equal(t, 3, a.StraightDist(Pt{Row: -2, Col: 1}))
	assert.Equal(t, 5, a.MDist(Pt{Row: 3, Col: 4}))
	assert.Equal(t, Pt{Row: 2, Col: 0}, a.Toward(Pt{Row: 9, Col: -9}))
}

func TestGrid(t *testing.T) {
	g := MakeGrid[int](2, 3)
	assert.Equal(t, Pt{Row: 2, Col: 3}, g.Size())
	g.Set(Pt{Row: 1, Col: 2}, 7)
	assert.Equal(t, 7, g.At(Pt{Row: 1, Col: 2}))
	v, ok := g.AtOk(Pt{Row: 1, Col: 2})
	assert.True(t, ok)
	assert.Equal(t, 7, v)
	_, ok = g.AtOk(Pt{Row: 2, Col: 0})
	assert.False(t, ok)

	var n int
	g.ForPoints(func(Pt, int) bool {
		n++
		return n < 4
	})
	assert.Equal(t, 4, n)
	assert.Equal(t, Pt{}, Grid[int](nil).Size())
}
