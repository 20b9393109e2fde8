package aoc

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/pkg/errors"
)

var (
	// ErrNoPath is returned when the goal cannot be reached.
	ErrNoPath = errors.New("aoc: no path")
	// ErrNegativeCost is returned for a negative move or turn cost.
	ErrNegativeCost = errors.New("aoc: negative cost")
	// ErrBlocked is returned when the search starts on a wall.
	ErrBlocked = errors.New("aoc: start is a wall")
	// ErrBadDirection is returned for a facing outside Up..Left.
	ErrBadDirection = errors.New("aoc: bad direction")
)

// State is a position plus the direction being faced. The same position
// with a different facing is a different state.
type State struct {
	Pt  Pt
	Dir Direction
}

func (s State) String() string {
	return fmt.Sprintf("(%d,%d)%v", s.Pt.Row, s.Pt.Col, s.Dir)
}

// Space is what the search walks over.
type Space interface {
	// IsWall reports whether p cannot be entered.
	IsWall(p Pt) bool
	// Forward moves straight ahead from s. steps is the number of cells
	// travelled. ok is false if there is nowhere to go.
	Forward(s State) (next State, steps int, ok bool)
}

// SearchConfig describes one search.
type SearchConfig struct {
	Start  Pt
	Facing Direction
	Goal   Pt

	// MoveCost is paid per cell moved, TurnCost per 90 degree turn.
	MoveCost int
	TurnCost int

	// SkipHallwayTurns does not generate turns in cells whose two
	// perpendicular neighbours are walls. The start cell is exempt. It
	// never changes the result.
	SkipHallwayTurns bool
}

// Validate checks the config against space.
func (c SearchConfig) Validate(space Space) error {
	if c.MoveCost < 0 || c.TurnCost < 0 {
		return errors.Wrapf(ErrNegativeCost, "move=%d turn=%d", c.MoveCost, c.TurnCost)
	}
	if c.Facing < Up || c.Facing > Left {
		return errors.Wrapf(ErrBadDirection, "%d", int(c.Facing))
	}
	if space.IsWall(c.Start) {
		return errors.Wrapf(ErrBlocked, "start %v", c.Start)
	}
	if ec, ok := space.(EndpointChecker); ok {
		if err := ec.CheckEndpoint(c.Start); err != nil {
			return errors.Wrap(err, "start")
		}
		if err := ec.CheckEndpoint(c.Goal); err != nil {
			return errors.Wrap(err, "goal")
		}
	}
	return nil
}

// EndpointChecker is implemented by spaces on which only some open points
// can start or finish a search.
type EndpointChecker interface {
	// CheckEndpoint returns an error if a search cannot start or finish
	// at p. Walls are left to the search.
	CheckEndpoint(p Pt) error
}

// Result is the outcome of OptimalCells.
type Result struct {
	// Cost is the minimum total cost.
	Cost int
	// Cells are the cells on at least one minimum cost path, sorted by row
	// then column.
	Cells []Pt
	// Expanded is the number of states taken off the frontier.
	Expanded int
}

// MinCost returns the minimum cost from cfg.Start to any state at cfg.Goal.
// It returns ErrNoPath if the goal is unreachable.
func MinCost(space Space, cfg SearchConfig) (int, error) {
	s, err := newSearcher(space, cfg, false)
	if err != nil {
		return -1, err
	}
	if !s.run() {
		return -1, ErrNoPath
	}
	return s.goalCost, nil
}

// OptimalCells returns the minimum cost and every cell that lies on some
// path of that cost.
func OptimalCells(space Space, cfg SearchConfig) (*Result, error) {
	s, err := newSearcher(space, cfg, true)
	if err != nil {
		return nil, err
	}
	if !s.run() {
		return nil, ErrNoPath
	}
	return &Result{
		Cost:     s.goalCost,
		Cells:    s.cells(),
		Expanded: s.expanded,
	}, nil
}

// step is how a state was reached.
type step struct {
	from State
	turn bool
}

// searcher holds the state of one search run.
type searcher struct {
	space Space
	cfg   SearchConfig
	// all keeps equal-cost predecessors so every optimal path can be
	// recovered.
	all bool

	best     map[State]int
	done     map[State]bool
	prev     map[State][]step
	frontier *PQ[State]

	goals    []State
	goalCost int
	expanded int
}

func newSearcher(space Space, cfg SearchConfig, all bool) (*searcher, error) {
	if err := cfg.Validate(space); err != nil {
		return nil, err
	}
	s := &searcher{
		space:    space,
		cfg:      cfg,
		all:      all,
		best:     make(map[State]int),
		done:     make(map[State]bool),
		frontier: MinQueue[State](),
		goalCost: -1,
	}
	if all {
		s.prev = make(map[State][]step)
	}
	return s, nil
}

// run searches until the frontier is empty or every remaining entry costs
// more than the goal. It reports whether the goal was reached.
func (s *searcher) run() bool {
	if s.space.IsWall(s.cfg.Goal) {
		return false
	}
	start := State{Pt: s.cfg.Start, Dir: s.cfg.Facing}
	s.best[start] = 0
	s.frontier.PushValue(start, 0)

	for s.frontier.Len() > 0 {
		it := s.frontier.Pop()
		cur, cost := it.V, it.P
		if s.goalCost >= 0 && cost > s.goalCost {
			break
		}
		if s.done[cur] || cost > s.best[cur] {
			continue // stale
		}
		s.done[cur] = true
		s.expanded++

		if cur.Pt == s.cfg.Goal {
			if s.goalCost < 0 {
				s.goalCost = cost
			}
			s.goals = append(s.goals, cur)
			if !s.all {
				break
			}
			continue
		}
		s.expand(cur, cost)
	}
	return s.goalCost >= 0
}

func (s *searcher) expand(cur State, cost int) {
	if next, steps, ok := s.space.Forward(cur); ok {
		s.relax(cur, next, cost+steps*s.cfg.MoveCost, false)
	}
	if s.cfg.SkipHallwayTurns && cur.Pt != s.cfg.Start && IsHallway(s.space, cur.Pt, cur.Dir) {
		return
	}
	for _, right := range []bool{false, true} {
		s.relax(cur, State{Pt: cur.Pt, Dir: cur.Dir.Turn(right)}, cost+s.cfg.TurnCost, true)
	}
}

// IsHallway reports whether the cells to the left and right of facing at
// p are both walls in space.
func IsHallway(space Space, p Pt, facing Direction) bool {
	return space.IsWall(p.UnboundNeighbor(facing.TurnLeft())) &&
		space.IsWall(p.UnboundNeighbor(facing.TurnRight()))
}

// relax records cost as a way to reach to from from. A strictly cheaper
// cost replaces what is known about to; in all mode an equal cost adds
// another predecessor.
func (s *searcher) relax(from, to State, cost int, turn bool) {
	old, seen := s.best[to]
	switch {
	case !seen || cost < old:
		s.best[to] = cost
		if s.all {
			s.prev[to] = append(s.prev[to][:0], step{from: from, turn: turn})
		}
		s.frontier.PushValue(to, cost)
	case s.all && cost == old:
		s.prev[to] = append(s.prev[to], step{from: from, turn: turn})
	}
}

// cells walks the predecessor graph back from the goal states.
func (s *searcher) cells() []Pt {
	set := treeset.NewWith(func(a, b any) int {
		return a.(Pt).Compare(b.(Pt))
	})
	visited := make(map[State]bool)
	q := NewQueue(s.goals...)
	q.While(func(st State) bool {
		if visited[st] {
			return true
		}
		visited[st] = true
		set.Add(st.Pt)
		for _, p := range s.prev[st] {
			if !p.turn {
				for c := p.from.Pt; c != st.Pt; c = c.UnboundNeighbor(p.from.Dir) {
					set.Add(c)
				}
			}
			q.Push(p.from)
		}
		return true
	})
	out := make([]Pt, 0, set.Size())
	for _, v := range set.Values() {
		out = append(out, v.(Pt))
	}
	return out
}
