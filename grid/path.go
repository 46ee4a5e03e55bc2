package grid

import "fmt"

// Path is an ordered sequence of cells from start to end, inclusive.
type Path []Coord

// Len returns the number of cells on the path.
func (p Path) Len() int {
	return len(p)
}

// Start returns the first cell. The path must be non-empty.
func (p Path) Start() Coord {
	return p[0]
}

// End returns the last cell. The path must be non-empty.
func (p Path) End() Coord {
	return p[len(p)-1]
}

// Contains reports whether c lies on the path.
func (p Path) Contains(c Coord) bool {
	for _, at := range p {
		if at == c {
			return true
		}
	}
	return false
}

// Validate checks that p is non-empty, lies inside g, never repeats a cell and
// only steps between orthogonal neighbours joined by a passage.
// Complexity: O(len(p)).
func (p Path) Validate(g *Grid) error {
	if len(p) == 0 {
		return ErrPathEmpty
	}
	seen := make(map[Coord]struct{}, len(p))
	for i, c := range p {
		if !g.Contains(c) {
			return fmt.Errorf("%w: path[%d]=%v", ErrOutOfBounds, i, c)
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("%w: %v at index %d", ErrPathRepeat, c, i)
		}
		seen[c] = struct{}{}
		if i == 0 {
			continue
		}
		d, ok := between(p[i-1], c)
		if !ok || !g.Passable(p[i-1], d) {
			return fmt.Errorf("%w: %v -> %v", ErrPathBroken, p[i-1], c)
		}
	}
	return nil
}

// between returns the direction leading from a to b when they are orthogonal neighbours.
func between(a, b Coord) (Direction, bool) {
	for _, d := range directions {
		if a.Step(d) == b {
			return d, true
		}
	}
	return 0, false
}
