// Package generate carves a perfect maze into a grid.Grid using randomized,
// iterative depth-first backtracking.
//
// What:
//
//   - Generator keeps an explicit frontier stack of coordinates, so recursion
//     depth never grows with the grid.
//   - Each Step is one of two atomic transitions:
//   - Advance: the cell on top of the frontier has unvisited neighbours; one is
//     chosen uniformly at random, the wall pair between them is removed and the
//     neighbour is pushed.
//   - Backtrack: no unvisited neighbour remains; the top cell is popped.
//   - When the frontier empties every cell is visited and the removed walls form a
//     spanning tree: exactly size²-1 passages and no cycles.
//   - Generate runs a Generator to completion (or cancellation) in one call.
//
// Why:
//
//   - Step-wise carving lets any host pace generation (timers, animation frames,
//     tests) without timing logic inside the algorithm.
//   - A partially carved grid is always valid: no step leaves a wall open on one
//     side only.
//
// Randomness:
//
//	Candidates are collected in the fixed order Up, Down, Left, Right and then
//	Fisher–Yates shuffled with a *rand.Rand; the first survivor wins. Inject a
//	generator with WithRand, or a seed with WithSeed. Seed 0 selects a fixed
//	default seed, so runs are reproducible unless the caller opts into entropy.
//	A *rand.Rand is not goroutine-safe: one per run.
//
// Cancellation:
//
//	WithContext(ctx) is polled at the top of every step. A cancelled run stops
//	early and reports Result.Cancelled; it is not an error.
//
// Complexity (n = size):
//
//   - Time:   O(n²) steps in total (2n²-1 for a full run), O(1) per step.
//   - Memory: O(n²) worst-case frontier.
//
// Errors:
//
//   - ErrGridNil:           grid pointer is nil.
//   - ErrStartOutOfBounds:  start coordinate outside the grid.
package generate
