package grid

import (
	"fmt"
)

// Grid is a size×size board of cells stored row-major as cells[row][col].
// The grid owns its cells; callers mutate them only through At or RemoveWall.
type Grid struct {
	size  int
	cells [][]Cell
}

// New allocates a size×size grid with every wall intact and every cell unvisited.
// Returns ErrInvalidSize if size ≤ 0, ErrSizeTooLarge if size > MaxSize.
// Complexity: O(size²) time and memory.
func New(size int) (*Grid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	if size > MaxSize {
		return nil, fmt.Errorf("%w: got %d, max %d", ErrSizeTooLarge, size, MaxSize)
	}
	// One backing array keeps rows contiguous.
	backing := make([]Cell, size*size)
	cells := make([][]Cell, size)
	for r := 0; r < size; r++ {
		cells[r] = backing[r*size : (r+1)*size : (r+1)*size]
		for c := 0; c < size; c++ {
			cells[r][c] = Cell{
				Row:   r,
				Col:   c,
				Walls: Walls{Top: true, Bottom: true, Left: true, Right: true},
			}
		}
	}

	return &Grid{size: size, cells: cells}, nil
}

// Size returns the side length.
func (g *Grid) Size() int {
	return g.size
}

// Len returns the number of cells (size²).
func (g *Grid) Len() int {
	return g.size * g.size
}

// InBounds reports whether (row,col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// Contains reports whether c lies within the grid.
func (g *Grid) Contains(c Coord) bool {
	return g.InBounds(c.Row, c.Col)
}

// At returns the cell at (row,col) for in-place mutation.
// Callers must check InBounds first; an out-of-range coordinate panics.
func (g *Grid) At(row, col int) *Cell {
	if !g.InBounds(row, col) {
		panic(fmt.Errorf("%w: (%d,%d) in %d×%d grid", ErrOutOfBounds, row, col, g.size, g.size))
	}
	return &g.cells[row][col]
}

// CellAt returns a copy of the cell at c. Same precondition as At.
func (g *Grid) CellAt(c Coord) Cell {
	return *g.At(c.Row, c.Col)
}

// Neighbor returns the coordinate next to c in direction d and whether it is in bounds.
func (g *Grid) Neighbor(c Coord, d Direction) (Coord, bool) {
	n := c.Step(d)
	return n, g.Contains(n)
}

// RemoveWall removes the wall between c and its neighbour in direction d on both
// sides. Returns ErrOutOfBounds if either cell is outside the grid; the grid is
// left untouched in that case.
// Complexity: O(1).
func (g *Grid) RemoveWall(c Coord, d Direction) error {
	if !g.Contains(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	n, ok := g.Neighbor(c, d)
	if !ok {
		return fmt.Errorf("%w: %v has no neighbour %s", ErrOutOfBounds, c, d)
	}
	g.cells[c.Row][c.Col].Walls.clear(d)
	g.cells[n.Row][n.Col].Walls.clear(d.Opposite())

	return nil
}

// Passable reports whether one can move from c in direction d: the neighbour
// must be in bounds and both facing walls must be removed.
// Complexity: O(1).
func (g *Grid) Passable(c Coord, d Direction) bool {
	if !g.Contains(c) {
		return false
	}
	n, ok := g.Neighbor(c, d)
	if !ok {
		return false
	}
	return !g.cells[c.Row][c.Col].Walls.Has(d) && !g.cells[n.Row][n.Col].Walls.Has(d.Opposite())
}

// OpenPassages counts removed wall pairs. Only Down and Right are inspected so
// each pair is counted once.
// Complexity: O(size²).
func (g *Grid) OpenPassages() int {
	n := 0
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			at := Coord{Row: r, Col: c}
			if g.Passable(at, Down) {
				n++
			}
			if g.Passable(at, Right) {
				n++
			}
		}
	}
	return n
}

// VisitedCount returns how many cells are marked visited.
func (g *Grid) VisitedCount() int {
	n := 0
	for r := range g.cells {
		for c := range g.cells[r] {
			if g.cells[r][c].Visited {
				n++
			}
		}
	}
	return n
}

// CheckWalls returns ErrWallMismatch for the first wall pair that is open on one
// side only. Border walls are not inspected.
// Complexity: O(size²).
func (g *Grid) CheckWalls() error {
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			at := Coord{Row: r, Col: c}
			for _, d := range [2]Direction{Down, Right} {
				n, ok := g.Neighbor(at, d)
				if !ok {
					continue
				}
				if g.cells[r][c].Walls.Has(d) != g.cells[n.Row][n.Col].Walls.Has(d.Opposite()) {
					return fmt.Errorf("%w: between %v and %v", ErrWallMismatch, at, n)
				}
			}
		}
	}
	return nil
}

// Each calls fn for every cell in row-major order. fn must not retain the pointer
// beyond the lifetime of the grid.
func (g *Grid) Each(fn func(c *Cell)) {
	for r := range g.cells {
		for c := range g.cells[r] {
			fn(&g.cells[r][c])
		}
	}
}

// Index maps c to its row-major index.
// Complexity: O(1).
func (g *Grid) Index(c Coord) int {
	return c.Row*g.size + c.Col
}

// Coordinate converts a row-major index back to a coordinate.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.size, Col: idx % g.size}
}
