// Package solve finds a shortest path between two cells of a carved grid.Grid
// using breadth-first search.
//
// What
//
//   - Edges are implicit: A and B are joined iff they are orthogonal neighbours
//     and the walls on both sides are removed (grid.Passable). A one-sided
//     opening is treated as a wall.
//   - The FIFO queue is seeded with the start cell. A cell is marked visited when
//     it is dequeued, not when it is enqueued; the first dequeue of the end cell
//     yields a path with the minimum number of edges.
//   - Paths are rebuilt from parent links recorded at visit time, so memory stays
//     O(cells) instead of copying a path into every queue entry.
//   - Neighbours are enumerated Up, Down, Left, Right.
//   - Solver exposes the search one dequeue at a time; Solve runs it to the end.
//
// Results
//
//   - start == end → single-cell path [start].
//   - unreachable end → no path, found == false, nil error.
//   - cancelled run  → no path, Result.Cancelled, nil error.
//
// Complexity (N = size²)
//
//   - Time:   O(N) dequeues, O(1) work each.
//   - Memory: O(N) for the queue, visited set and parent links.
//
// Options
//
//   - WithContext(ctx):   cancellation, polled once per dequeue.
//   - WithOnEnqueue(fn):  hook when a neighbour is queued.
//   - WithOnDequeue(fn):  hook when a cell is visited for the first time.
//
// Errors
//
//   - ErrGridNil            if the grid pointer is nil.
//   - ErrStartOutOfBounds   if start lies outside the grid.
//   - ErrEndOutOfBounds     if end lies outside the grid.
package solve
