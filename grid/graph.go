package grid

import (
	"fmt"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// ToGraph converts the passage structure into a gonum undirected graph.
// Every cell becomes a node whose ID is its row-major Index; every removed wall
// pair becomes an edge. Intact walls contribute nothing.
// Complexity: O(size²) time and memory.
func (g *Grid) ToGraph() *simple.UndirectedGraph {
	ug := simple.NewUndirectedGraph()
	for i := 0; i < g.Len(); i++ {
		ug.AddNode(simple.Node(int64(i)))
	}
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			at := Coord{Row: r, Col: c}
			// Down and Right only: each undirected pair is set once.
			for _, d := range [2]Direction{Down, Right} {
				if !g.Passable(at, d) {
					continue
				}
				n := at.Step(d)
				ug.SetEdge(simple.Edge{
					F: simple.Node(int64(g.Index(at))),
					T: simple.Node(int64(g.Index(n))),
				})
			}
		}
	}

	return ug
}

// Verify reports whether the grid is a perfect maze: walls are pairwise
// consistent, every cell is reachable and there are exactly size²-1 passages.
// Returns nil on success, otherwise one of ErrWallMismatch, ErrDisconnected or ErrCycle.
// Complexity: O(size²).
func (g *Grid) Verify() error {
	if err := g.CheckWalls(); err != nil {
		return err
	}
	comps := topo.ConnectedComponents(g.ToGraph())
	if len(comps) != 1 {
		return fmt.Errorf("%w: %d components", ErrDisconnected, len(comps))
	}
	// A connected graph on V nodes with more than V-1 edges has a cycle.
	if open := g.OpenPassages(); open != g.Len()-1 {
		return fmt.Errorf("%w: %d passages for %d cells", ErrCycle, open, g.Len())
	}
	return nil
}
