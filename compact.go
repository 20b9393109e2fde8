package aoc

import (
	"slices"

	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
)

// Edge is a straight run from one graph node to the next.
type Edge struct {
	To   Pt
	Cost int
}

// CompactGraph is a maze reduced to its decision points: junctions, corners
// and dead ends, joined by straight edges. It is a Space, so searches over
// it give the same costs as over the maze.
type CompactGraph struct {
	maze  *Maze
	Nodes map[Pt]bool
	Edges map[State]Edge
}

// Compact builds the compact graph of m, keeping m.Start and m.End as nodes.
func Compact(m *Maze) *CompactGraph {
	return CompactWith(m, m.Start, m.End)
}

// ErrNotNode is returned when a search over a CompactGraph starts or ends
// on an open cell that is not a node.
var ErrNotNode = errors.New("aoc: not a graph node")

// CompactWith is Compact with extra points forced to be nodes. A search
// over the graph can only start and finish on nodes.
func CompactWith(m *Maze, keep ...Pt) *CompactGraph {
	g := &CompactGraph{
		maze:  m,
		Nodes: make(map[Pt]bool),
		Edges: make(map[State]Edge),
	}
	m.Grid.ForPoints(func(p Pt, c Cell) bool {
		if c != Wall && !isCorridor(m.openNeighbors(p)) {
			g.Nodes[p] = true
		}
		return true
	})
	for _, p := range keep {
		if !m.IsWall(p) {
			g.Nodes[p] = true
		}
	}

	for n := range g.Nodes {
		for _, d := range Directions {
			p := n.UnboundNeighbor(d)
			for !m.IsWall(p) && !g.Nodes[p] {
				p = p.UnboundNeighbor(d)
			}
			if m.IsWall(p) {
				continue
			}
			g.Edges[State{Pt: n, Dir: d}] = Edge{To: p, Cost: n.StraightDist(p)}
		}
	}
	return g
}

// isCorridor reports whether the open neighbours make a straight
// corridor cell.
func isCorridor(open []Direction) bool {
	return len(open) == 2 && open[0].Reverse() == open[1]
}

// IsWall implements Space.
func (g *CompactGraph) IsWall(p Pt) bool {
	return g.maze.IsWall(p)
}

// CheckEndpoint implements EndpointChecker. Open cells inside a corridor
// are ErrNotNode; use CompactWith to make them nodes.
func (g *CompactGraph) CheckEndpoint(p Pt) error {
	if g.maze.IsWall(p) || g.Nodes[p] {
		return nil
	}
	return errors.Wrapf(ErrNotNode, "%v", p)
}

// Forward implements Space by following the edge leaving s.
func (g *CompactGraph) Forward(s State) (State, int, bool) {
	e, ok := g.Edges[s]
	if !ok {
		return State{}, 0, false
	}
	return State{Pt: e.To, Dir: s.Dir}, e.Cost, true
}

// Edge returns the edge leaving s.
func (g *CompactGraph) Edge(s State) (Edge, bool) {
	e, ok := g.Edges[s]
	return e, ok
}

// SortedNodes returns the nodes ordered by row then column.
func (g *CompactGraph) SortedNodes() []Pt {
	nodes := maps.Keys(g.Nodes)
	slices.SortFunc(nodes, Pt.Compare)
	return nodes
}

// Len returns the number of nodes.
func (g *CompactGraph) Len() int {
	return len(g.Nodes)
}
