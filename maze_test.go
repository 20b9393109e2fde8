package aoc

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMaze(t *testing.T) {
	m, err := ParseMaze([]string{"#####", "#S.E#", "#####", ""})
	require.NoError(t, err)
	assert.Equal(t, Pt{Row: 1, Col: 1}, m.Start)
	assert.Equal(t, Pt{Row: 1, Col: 3}, m.End)
	assert.Equal(t, Pt{Row: 3, Col: 5}, m.Grid.Size())
	assert.Equal(t, Start, m.Grid.At(m.Start))
	assert.Equal(t, End, m.Grid.At(m.End))
	assert.False(t, m.IsWall(m.Start))
	assert.True(t, m.IsWall(Pt{Row: 0, Col: 0}))
	assert.True(t, m.IsWall(Pt{Row: -1, Col: 2}), "outside is a wall")
	assert.True(t, m.IsWall(Pt{Row: 1, Col: 5}), "outside is a wall")
}

func TestParseMazeErrors(t *testing.T) {
	tests := []struct {
		name      string
		rows      []string
		err       error
		line, col int
	}{
		{"empty", nil, ErrEmptyInput, 0, 0},
		{"blank", []string{"", ""}, ErrEmptyInput, 0, 0},
		{"ragged", []string{"S..", "..", "..E"}, ErrRagged, 2, 0},
		{"bad-cell", []string{"S.", ".x", ".E"}, ErrBadCell, 2, 2},
		{"two-starts", []string{"S.S", "..E"}, ErrDuplicate, 1, 3},
		{"two-ends", []string{"SE", "E."}, ErrDuplicate, 2, 1},
		{"no-start", []string{"..", ".E"}, ErrNoStart, 0, 0},
		{"no-end", []string{"S.", ".."}, ErrNoEnd, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMaze(tt.rows)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.err), "got %v, want %v", err, tt.err)
			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.line, pe.Line)
			assert.Equal(t, tt.col, pe.Col)
		})
	}
}

func TestIsHallway(t *testing.T) {
	m := mustMaze(t,
		"#####",
		"#S..#",
		"#.#E#",
		"#####",
	)
	assert.True(t, IsHallway(m, Pt{Row: 1, Col: 2}, Right))
	assert.True(t, IsHallway(m, Pt{Row: 1, Col: 2}, Left))
	assert.False(t, IsHallway(m, Pt{Row: 1, Col: 2}, Up))
	assert.False(t, IsHallway(m, Pt{Row: 1, Col: 1}, Right), "opening below")
	assert.True(t, IsHallway(m, Pt{Row: 2, Col: 1}, Down))
}

func TestForward(t *testing.T) {
	m := mustMaze(t, "S.#E")
	next, steps, ok := m.Forward(State{Pt: m.Start, Dir: Right})
	require.True(t, ok)
	assert.Equal(t, State{Pt: Pt{Row: 0, Col: 1}, Dir: Right}, next)
	assert.Equal(t, 1, steps)

	_, _, ok = m.Forward(next)
	assert.False(t, ok)
	_, _, ok = m.Forward(State{Pt: m.Start, Dir: Up})
	assert.False(t, ok)
}

func TestNewWallMaze(t *testing.T) {
	walls := []Pt{{Row: 0, Col: 1}, {Row: 1, Col: 1}}
	m, err := NewWallMaze(Pt{Row: 3, Col: 3}, walls, Pt{}, Pt{Row: 2, Col: 2})
	require.NoError(t, err)
	assert.Equal(t, ".#.\n.#.\n...\n", m.Render(nil))
	assert.True(t, m.IsWall(Pt{Row: 1, Col: 1}))
	assert.False(t, m.IsWall(Pt{Row: 2, Col: 1}))

	_, err = NewWallMaze(Pt{Row: 3, Col: 3}, []Pt{{Row: 0, Col: 1}, {Row: 3, Col: 0}}, Pt{}, Pt{Row: 2, Col: 2})
	assert.True(t, errors.Is(err, ErrBadCoord))
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Line)

	_, err = NewWallMaze(Pt{Row: 3, Col: 3}, nil, Pt{}, Pt{Row: 3, Col: 3})
	assert.True(t, errors.Is(err, ErrBadCoord))

	_, err = NewWallMaze(Pt{}, nil, Pt{}, Pt{})
	assert.True(t, errors.Is(err, ErrEmptyInput))
}

func TestRender(t *testing.T) {
	rows := []string{"#####", "#S.E#", "#####"}
	m := mustMaze(t, rows...)
	assert.Equal(t, strings.Join(rows, "\n")+"\n", m.Render(nil))

	out := m.Render(func(p Pt) bool { return p.Row == 1 })
	assert.Contains(t, out, "SOE")
	assert.Equal(t, 3, strings.Count(out, "\n"))
}
