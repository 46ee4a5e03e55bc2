package grid

import "strings"

// String draws the grid in ASCII without a path.
func (g *Grid) String() string {
	return g.Render(nil)
}

// Render draws the grid in ASCII, marking cells on p with '*':
//
//	+---+---+
//	| * |   |
//	+   +---+
//	| *   * |
//	+---+---+
//
// It is a debugging aid, not a storage format.
// Complexity: O(size²).
func (g *Grid) Render(p Path) string {
	onPath := make(map[Coord]struct{}, len(p))
	for _, c := range p {
		onPath[c] = struct{}{}
	}

	var sb strings.Builder
	sb.Grow((g.size*4 + 2) * (g.size*2 + 1))

	// Top boundary follows each cell's own Top wall.
	sb.WriteByte('+')
	for c := 0; c < g.size; c++ {
		if g.cells[0][c].Walls.Top {
			sb.WriteString("---+")
		} else {
			sb.WriteString("   +")
		}
	}
	sb.WriteByte('\n')

	for r := 0; r < g.size; r++ {
		if g.cells[r][0].Walls.Left {
			sb.WriteByte('|')
		} else {
			sb.WriteByte(' ')
		}
		for c := 0; c < g.size; c++ {
			if _, ok := onPath[Coord{Row: r, Col: c}]; ok {
				sb.WriteString(" * ")
			} else {
				sb.WriteString("   ")
			}
			if g.cells[r][c].Walls.Right {
				sb.WriteByte('|')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')

		sb.WriteByte('+')
		for c := 0; c < g.size; c++ {
			if g.cells[r][c].Walls.Bottom {
				sb.WriteString("---+")
			} else {
				sb.WriteString("   +")
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
