package main

import (
	"slices"

	aoc "github.com/maisem/aoc2024"
)

// reindeer is the search for a reindeer that starts facing east, moves
// for 1 point and turns for 1000.
func reindeer(m *aoc.Maze) aoc.SearchConfig {
	return aoc.SearchConfig{
		Start:            m.Start,
		Facing:           aoc.Right,
		Goal:             m.End,
		MoveCost:         1,
		TurnCost:         1000,
		SkipHallwayTurns: true,
	}
}

func bestScore(lines []string) (int, error) {
	m, err := aoc.ParseMaze(lines)
	if err != nil {
		return 0, err
	}
	return aoc.MinCost(aoc.Compact(m), reindeer(m))
}

func bestSeats(lines []string) (*aoc.Maze, *aoc.Result, error) {
	m, err := aoc.ParseMaze(lines)
	if err != nil {
		return nil, nil, err
	}
	res, err := aoc.OptimalCells(aoc.Compact(m), reindeer(m))
	if err != nil {
		return nil, nil, err
	}
	return m, res, nil
}

/*
want=7036

###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############
*/
func (s solver) D16p1() any {
	return aoc.MustGet(bestScore(s.Lines()))
}

// want=45
func (s solver) D16p2() any {
	m, res, err := bestSeats(s.Lines())
	aoc.MustDo(err)
	s.Debugf("cost %d, %d states expanded\n%s", res.Cost, res.Expanded, m.Render(func(p aoc.Pt) bool {
		_, found := slices.BinarySearchFunc(res.Cells, p, aoc.Pt.Compare)
		return found
	}))
	return len(res.Cells)
}
