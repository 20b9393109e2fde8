package main

import (
	"fmt"
	"sort"

	aoc "github.com/maisem/aoc2024"
	"github.com/pkg/errors"
)

// memorySpace describes the falling bytes puzzle: a size x size square, of
// which the first fallen bytes count for part 1.
type memorySpace struct {
	size   int
	fallen int
}

func (s solver) memorySpace() memorySpace {
	if s.SampleMode {
		return memorySpace{size: 7, fallen: 12}
	}
	return memorySpace{size: 71, fallen: 1024}
}

// steps returns the shortest walk from the top left to the bottom right
// corner with walls at bytes.
func (ms memorySpace) steps(bytes []aoc.Pt) (int, error) {
	size := aoc.Pt{Row: ms.size, Col: ms.size}
	start, end := aoc.Pt{}, aoc.Pt{Row: ms.size - 1, Col: ms.size - 1}
	m, err := aoc.NewWallMaze(size, bytes, start, end)
	if err != nil {
		return 0, err
	}
	return aoc.MinCost(m, aoc.SearchConfig{
		Start:    start,
		Facing:   aoc.Right,
		Goal:     end,
		MoveCost: 1,
	})
}

// firstBlocker returns the first byte after which the exit can no longer
// be reached. Every byte must lie on the grid.
func (ms memorySpace) firstBlocker(bytes []aoc.Pt) (aoc.Pt, bool, error) {
	for i, b := range bytes {
		if !b.InBounds(ms.size) {
			return aoc.Pt{}, false, &aoc.ParseError{
				Line: i + 1,
				Msg:  fmt.Sprintf("%d,%d outside %dx%d", b.Col, b.Row, ms.size, ms.size),
				Err:  aoc.ErrBadCoord,
			}
		}
	}
	var serr error
	blocked := func(n int) bool {
		_, err := ms.steps(bytes[:n])
		switch {
		case err == nil:
			return false
		case errors.Is(err, aoc.ErrNoPath), errors.Is(err, aoc.ErrBlocked):
			return true
		}
		serr = err
		return true
	}
	n := sort.Search(len(bytes)+1, blocked)
	if serr != nil {
		return aoc.Pt{}, false, serr
	}
	if n == 0 || n > len(bytes) {
		return aoc.Pt{}, false, nil
	}
	return bytes[n-1], true, nil
}

/*
want=22

5,4
4,2
4,5
3,0
2,1
6,3
2,4
1,5
0,6
3,3
2,6
5,1
1,2
5,5
2,5
6,5
1,4
0,4
6,4
1,1
6,1
1,0
0,5
1,6
2,0
*/
func (s solver) D18p1() any {
	bytes := aoc.MustGet(aoc.ParseCoords(s.Lines()))
	ms := s.memorySpace()
	return aoc.MustGet(ms.steps(bytes[:min(ms.fallen, len(bytes))]))
}

// want=6,1
func (s solver) D18p2() any {
	bytes := aoc.MustGet(aoc.ParseCoords(s.Lines()))
	p, ok, err := s.memorySpace().firstBlocker(bytes)
	aoc.MustDo(err)
	if !ok {
		return "none"
	}
	return fmt.Sprintf("%d,%d", p.Col, p.Row)
}
