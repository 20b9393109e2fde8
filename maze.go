package aoc

import (
	"fmt"
	"strings"

	"github.com/vyevs/ansi"
)

// Cell is the label of one maze square.
type Cell byte

const (
	Open  Cell = '.'
	Wall  Cell = '#'
	Start Cell = 'S'
	End   Cell = 'E'
)

// Maze is a walled grid with a start and an end.
type Maze struct {
	Grid  Grid[Cell]
	Start Pt
	End   Pt
}

// ParseMaze parses rows of . # S E. Exactly one S and one E are required.
func ParseMaze(lines []string) (*Maze, error) {
	for len(lines) > 0 && isBlank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, &ParseError{Err: ErrEmptyInput}
	}
	cols := len(lines[0])
	m := &Maze{Grid: MakeGrid[Cell](len(lines), cols)}
	var haveStart, haveEnd bool
	for r, line := range lines {
		if len(line) != cols {
			return nil, &ParseError{
				Line: r + 1,
				Msg:  fmt.Sprintf("row has %d columns, want %d", len(line), cols),
				Err:  ErrRagged,
			}
		}
		for c := 0; c < len(line); c++ {
			p := Pt{Row: r, Col: c}
			cell := Cell(line[c])
			switch cell {
			case Open, Wall:
			case Start:
				if haveStart {
					return nil, &ParseError{Line: r + 1, Col: c + 1, Msg: "second start", Err: ErrDuplicate}
				}
				haveStart = true
				m.Start = p
			case End:
				if haveEnd {
					return nil, &ParseError{Line: r + 1, Col: c + 1, Msg: "second end", Err: ErrDuplicate}
				}
				haveEnd = true
				m.End = p
			default:
				return nil, &ParseError{Line: r + 1, Col: c + 1, Msg: fmt.Sprintf("unexpected %q", line[c]), Err: ErrBadCell}
			}
			m.Grid.Set(p, cell)
		}
	}
	if !haveStart {
		return nil, &ParseError{Err: ErrNoStart}
	}
	if !haveEnd {
		return nil, &ParseError{Err: ErrNoEnd}
	}
	return m, nil
}

// NewWallMaze builds an open maze of the given size with walls at the given
// points. Walls outside the maze are an error.
func NewWallMaze(size Pt, walls []Pt, start, end Pt) (*Maze, error) {
	if size.Row <= 0 || size.Col <= 0 {
		return nil, &ParseError{Err: ErrEmptyInput}
	}
	m := &Maze{Grid: MakeGrid[Cell](size.Row, size.Col), Start: start, End: end}
	m.Grid.ForPoints(func(p Pt, _ Cell) bool {
		m.Grid.Set(p, Open)
		return true
	})
	for i, w := range walls {
		if !w.Within(size) {
			return nil, &ParseError{
				Line: i + 1,
				Msg:  fmt.Sprintf("%d,%d outside %dx%d", w.Col, w.Row, size.Col, size.Row),
				Err:  ErrBadCoord,
			}
		}
		m.Grid.Set(w, Wall)
	}
	for _, p := range []Pt{start, end} {
		if !p.Within(size) {
			return nil, &ParseError{Msg: fmt.Sprintf("%d,%d outside %dx%d", p.Col, p.Row, size.Col, size.Row), Err: ErrBadCoord}
		}
	}
	return m, nil
}

// IsWall reports whether p is a wall. Points outside the maze are walls.
func (m *Maze) IsWall(p Pt) bool {
	c, ok := m.Grid.AtOk(p)
	return !ok || c == Wall
}

// Forward steps one cell ahead.
func (m *Maze) Forward(s State) (State, int, bool) {
	n := s.Pt.UnboundNeighbor(s.Dir)
	if m.IsWall(n) {
		return State{}, 0, false
	}
	return State{Pt: n, Dir: s.Dir}, 1, true
}

// openNeighbors returns the directions of the open cells around p.
func (m *Maze) openNeighbors(p Pt) []Direction {
	var out []Direction
	for _, d := range Directions {
		if !m.IsWall(p.UnboundNeighbor(d)) {
			out = append(out, d)
		}
	}
	return out
}

// Render draws the maze, colouring the cells for which highlight returns
// true. highlight may be nil.
func (m *Maze) Render(highlight func(Pt) bool) string {
	var b strings.Builder
	size := m.Grid.Size()
	b.Grow(size.Row * (size.Col + 1) * 2)
	colored := false
	for r, row := range m.Grid {
		for c, cell := range row {
			p := Pt{Row: r, Col: c}
			on := highlight != nil && cell != Wall && highlight(p)
			switch {
			case on && !colored:
				b.WriteString(ansi.FGColorName("green"))
				colored = true
			case !on && colored:
				b.WriteString(ansi.Clear)
				colored = false
			}
			if on && cell == Open {
				b.WriteByte('O')
			} else {
				b.WriteByte(byte(cell))
			}
		}
		if colored {
			b.WriteString(ansi.Clear)
			colored = false
		}
		b.WriteByte('\n')
	}
	return b.String()
}
