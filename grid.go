package aoc

import (
	"cmp"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Row][p.Col]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Row][p.Col] = v
}

// AtOk returns the value at p, or false if p is outside the grid.
func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if !p.Within(g.Size()) {
		var zero T
		return zero, false
	}
	return g[p.Row][p.Col], true
}

func MakeGrid[T any](rows, cols int) Grid[T] {
	out := make(Grid[T], rows)
	for i := range out {
		out[i] = make([]T, cols)
	}
	return out
}

// Size returns the number of rows and columns as a point. It is the
// exclusive bound for Pt.Within.
func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{Row: len(g), Col: len(g[0])}
}

// ForPoints calls f for every point of the grid in row-major order.
func (g Grid[T]) ForPoints(f func(Pt, T) (keepGoing bool)) {
	for r, row := range g {
		for c, v := range row {
			if !f(Pt{Row: r, Col: c}, v) {
				return
			}
		}
	}
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every direction in the order neighbours are visited.
var Directions = [4]Direction{Up, Right, Down, Left}

// ParseDirection parses one of ^ > v <.
func ParseDirection(r rune) (Direction, error) {
	switch r {
	case '^':
		return Up, nil
	case '>':
		return Right, nil
	case 'v':
		return Down, nil
	case '<':
		return Left, nil
	}
	return 0, errors.Errorf("not a direction: %q", r)
}

func (d Direction) Turn(right bool) Direction {
	if right {
		return d.TurnRight()
	}
	return d.TurnLeft()
}

func (d Direction) TurnRight() Direction {
	return (d + 1) % 4
}

func (d Direction) TurnLeft() Direction {
	return (d + 3) % 4
}

func (d Direction) Reverse() Direction {
	return (d + 2) % 4
}

// delta returns the row and column offset of a single step in d.
func (d Direction) delta() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Right:
		return 0, 1
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	}
	panic("bad direction")
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

type Pt = Pt2[int]

// Pt2 is a grid coordinate. Row grows downwards, Col grows to the right.
type Pt2[T constraints.Signed] struct {
	Row, Col T
}

// UnboundNeighbor returns the point one step away in d. The result may lie
// outside any grid; callers validate it themselves.
func (p Pt2[T]) UnboundNeighbor(d Direction) Pt2[T] {
	dr, dc := d.delta()
	return Pt2[T]{p.Row + T(dr), p.Col + T(dc)}
}

// Neighbor returns the point one step away in d if it lies inside the
// square [0, size) x [0, size).
func (p Pt2[T]) Neighbor(d Direction, size T) (Pt2[T], bool) {
	n := p.UnboundNeighbor(d)
	if !n.InBounds(size) {
		return Pt2[T]{}, false
	}
	return n, true
}

// NeighborWithin is Neighbor for a rectangular bound of bound.Row rows and
// bound.Col columns.
func (p Pt2[T]) NeighborWithin(d Direction, bound Pt2[T]) (Pt2[T], bool) {
	n := p.UnboundNeighbor(d)
	if !n.Within(bound) {
		return Pt2[T]{}, false
	}
	return n, true
}

// InBounds reports whether p lies in the square [0, size) x [0, size).
func (p Pt2[T]) InBounds(size T) bool {
	return p.Within(Pt2[T]{size, size})
}

// Within reports whether 0 <= p.Row < bound.Row and 0 <= p.Col < bound.Col.
func (p Pt2[T]) Within(bound Pt2[T]) bool {
	return p.Row >= 0 && p.Col >= 0 && p.Row < bound.Row && p.Col < bound.Col
}

// Compare orders points by row, then column.
func (p Pt2[T]) Compare(b Pt2[T]) int {
	if c := cmp.Compare(p.Row, b.Row); c != 0 {
		return c
	}
	return cmp.Compare(p.Col, b.Col)
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff[T](a.Row, b.Row) + AbsDiff[T](a.Col, b.Col)
}

// StraightDist returns the number of steps between two points on the same
// row or column. For other pairs it is the Chebyshev distance.
func (a Pt2[T]) StraightDist(b Pt2[T]) T {
	return max(AbsDiff[T](a.Row, b.Row), AbsDiff[T](a.Col, b.Col))
}

// Toward returns a point moving from p to b in max 1 step along each axis.
func (p Pt2[T]) Toward(b Pt2[T]) Pt2[T] {
	p1 := p
	if b.Row < p.Row {
		p1.Row--
	} else if b.Row > p.Row {
		p1.Row++
	}
	if b.Col < p.Col {
		p1.Col--
	} else if b.Col > p.Col {
		p1.Col++
	}
	return p1
}
