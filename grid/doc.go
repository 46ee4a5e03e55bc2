// Package grid models a square maze board: a size×size matrix of cells, each
// carrying a visited flag and four wall segments.
//
// What:
//
//   - Grid owns size×size Cells in row-major order; size is fixed at construction.
//   - Every wall starts intact. The only mutation that touches walls is RemoveWall,
//     which clears the wall pair shared by two adjacent cells in one call, so a
//     wall is never open on one side only.
//   - Passable reports whether both facing walls between two cells are removed.
//   - Path is an ordered run of coordinates produced by solvers and consumed by
//     renderers; Validate checks it against a grid.
//   - Verify checks that the removed walls form a spanning tree (a perfect maze).
//   - ToGraph exports the passage graph as a gonum *simple.UndirectedGraph, so any
//     gonum graph algorithm can be run over a carved maze.
//
// Why:
//
//   - Generators and solvers share a single cell/wall representation.
//   - Renderers need read-only access to walls and to the solution path.
//
// Complexity:
//
//   - New:          O(n²) time and memory.
//   - InBounds, At, Neighbor, RemoveWall, Passable: O(1).
//   - OpenPassages, CheckWalls, VisitedCount: O(n²).
//   - Verify, ToGraph: O(n²).
//
// Errors:
//
//   - ErrInvalidSize:   size ≤ 0.
//   - ErrSizeTooLarge:  size > MaxSize.
//   - ErrOutOfBounds:   coordinate outside [0, size). At panics with it; RemoveWall returns it.
//   - ErrWallMismatch:  a wall pair is open on one side only.
//   - ErrDisconnected:  the passage graph has more than one component.
//   - ErrCycle:         the passage graph contains a cycle.
//   - ErrPathEmpty, ErrPathRepeat, ErrPathBroken: Path.Validate failures.
package grid
