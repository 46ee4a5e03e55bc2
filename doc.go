// Package lvmaze generates perfect mazes on square grids and finds the shortest
// way through them.
//
// 🚀 What is lvmaze?
//
//	A small, deterministic maze toolkit:
//		• Grid model: square grid of cells, four walls each, symmetric wall removal
//		• Generation: randomized depth-first carving with an explicit stack,
//		  step-by-step driving, cancellation and injectable randomness
//		• Solving: breadth-first shortest path that only crosses walls open on both sides
//		• Host loop: paced carving, rendering hooks, resize and elapsed time
//
// ✨ Why choose lvmaze?
//
//   - Reproducible - same seed, same maze, same path
//   - Observable - drive the generator one Step at a time or hook OnStep/OnDequeue
//   - Verifiable - every grid exports to a gonum graph and checks itself as a tree
//   - Cancellable - context.Context everywhere a loop can run long
//
// Packages:
//
//	grid/      Grid, Cell, Walls, Coord, Direction, Path, ASCII rendering, tree checks
//	generate/  recursive-backtracker generator, Step/Result, seeded RNG helpers
//	solve/     BFS solver returning the start-to-end Path
//	session/   reference host loop with logrus logging and uuid run IDs
//
// Quick ASCII example (2×2, path marked):
//
//	+---+---+
//	| *   * |
//	+---+   +
//	| *   * |
//	+---+---+
//
// A perfect maze on n×n cells always has exactly n²-1 open passages and one
// path between any two cells.
//
//	go get github.com/katalvlaran/lvmaze
package lvmaze
