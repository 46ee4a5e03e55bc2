package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/lvmaze/grid"
)

// serpentine carves a boustrophedon path through g: every row fully open left to
// right, rows joined at alternating ends. The result is a spanning tree.
func serpentine(t *testing.T, g *grid.Grid) {
	t.Helper()
	n := g.Size()
	for r := 0; r < n; r++ {
		for c := 0; c+1 < n; c++ {
			require.NoError(t, g.RemoveWall(grid.Coord{Row: r, Col: c}, grid.Right))
		}
		if r+1 == n {
			break
		}
		col := n - 1
		if r%2 == 1 {
			col = 0
		}
		require.NoError(t, g.RemoveWall(grid.Coord{Row: r, Col: col}, grid.Down))
	}
}

func TestVerify_Serpentine(t *testing.T) {
	g, err := grid.New(5)
	require.NoError(t, err)
	serpentine(t, g)
	require.NoError(t, g.Verify())
	require.Equal(t, 24, g.OpenPassages())
}

func TestVerify_SingleCell(t *testing.T) {
	g, err := grid.New(1)
	require.NoError(t, err)
	require.NoError(t, g.Verify(), "a lone cell is a trivial spanning tree")
}

func TestVerify_Disconnected(t *testing.T) {
	g, err := grid.New(3)
	require.NoError(t, err)
	require.NoError(t, g.RemoveWall(grid.Coord{Row: 0, Col: 0}, grid.Right))
	require.True(t, errors.Is(g.Verify(), grid.ErrDisconnected))
}

func TestVerify_Cycle(t *testing.T) {
	g, err := grid.New(3)
	require.NoError(t, err)
	serpentine(t, g)
	// One extra passage closes a loop.
	require.NoError(t, g.RemoveWall(grid.Coord{Row: 0, Col: 0}, grid.Down))
	require.True(t, errors.Is(g.Verify(), grid.ErrCycle))
}

func TestVerify_WallMismatch(t *testing.T) {
	g, err := grid.New(2)
	require.NoError(t, err)
	serpentine(t, g)
	g.At(1, 0).Walls.Top = false // (0,0).Bottom stays intact
	require.True(t, errors.Is(g.Verify(), grid.ErrWallMismatch))
}

// TestToGraph checks node and edge counts and that gonum sees one component.
func TestToGraph(t *testing.T) {
	g, err := grid.New(4)
	require.NoError(t, err)
	serpentine(t, g)

	ug := g.ToGraph()
	require.Equal(t, 16, ug.Nodes().Len())
	require.Equal(t, 15, ug.Edges().Len())
	require.Len(t, topo.ConnectedComponents(ug), 1)

	a := g.Index(grid.Coord{Row: 0, Col: 0})
	b := g.Index(grid.Coord{Row: 0, Col: 1})
	c := g.Index(grid.Coord{Row: 1, Col: 0})
	require.True(t, ug.HasEdgeBetween(int64(a), int64(b)))
	require.False(t, ug.HasEdgeBetween(int64(a), int64(c)), "wall between (0,0) and (1,0) is intact")
}
