package solve

import (
	"context"
	"fmt"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/lvmaze/grid"
)

// queueItem pairs a cell with its depth and the trail index of the cell it was
// reached from (-1 for the start).
type queueItem struct {
	at    grid.Coord
	depth int
	from  int
}

// Solver encapsulates mutable BFS state. The grid is only read.
type Solver struct {
	grid    *grid.Grid
	opts    Options
	ctx     context.Context
	end     grid.Coord
	queue   *queue.Queue[queueItem]
	visited mapset.Set[grid.Coord]
	trail   []grid.Coord // visited cells in visit order
	parent  []int        // parent[i] is the trail index trail[i] was reached from
	done    bool
	res     Result
}

// New validates the endpoints and seeds the queue with start.
// Returns ErrGridNil, ErrStartOutOfBounds or ErrEndOutOfBounds for invalid input.
func New(g *grid.Grid, start, end grid.Coord, opts ...Option) (*Solver, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if !g.Contains(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}
	if !g.Contains(end) {
		return nil, fmt.Errorf("%w: %v", ErrEndOutOfBounds, end)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Solver{
		grid:    g,
		opts:    o,
		ctx:     o.Ctx,
		end:     end,
		queue:   queue.New[queueItem](),
		visited: mapset.New[grid.Coord](),
		trail:   make([]grid.Coord, 0, g.Len()),
		parent:  make([]int, 0, g.Len()),
	}
	s.queue.Enqueue(queueItem{at: start, depth: 0, from: -1})

	return s, nil
}

// Solve returns the shortest path from start to end over g's passages.
// found is false, with a nil error, when end is unreachable or ctx was cancelled.
func Solve(g *grid.Grid, start, end grid.Coord, opts ...Option) (path grid.Path, found bool, err error) {
	s, err := New(g, start, end, opts...)
	if err != nil {
		return nil, false, err
	}
	res := s.Run()
	return res.Path, res.Found, nil
}

// Run steps until the search finishes and returns the result.
func (s *Solver) Run() Result {
	for s.Step() {
	}
	return s.res
}

// Step performs one dequeue. It returns false once the search is over: end
// found, queue exhausted or context done.
func (s *Solver) Step() bool {
	if s.done {
		return false
	}
	// cancellation check (once per dequeue)
	select {
	case <-s.ctx.Done():
		s.res.Cancelled = true
		s.done = true
		return false
	default:
	}
	if s.queue.Empty() {
		s.done = true
		return false
	}

	item := s.queue.Dequeue()
	s.res.Steps++
	if s.visited.Has(item.at) {
		return true
	}
	idx := s.visit(item)
	if item.at == s.end {
		s.res.Path = s.pathTo(idx)
		s.res.Found = true
		s.done = true
		return false
	}
	s.enqueueNeighbors(item, idx)

	return true
}

// visit marks item.at visited, records its parent link and fires OnDequeue.
// Returns the trail index assigned to the cell.
func (s *Solver) visit(item queueItem) int {
	s.visited.Put(item.at)
	s.trail = append(s.trail, item.at)
	s.parent = append(s.parent, item.from)
	s.res.Explored++
	s.opts.OnDequeue(item.at, item.depth)
	return len(s.trail) - 1
}

// enqueueNeighbors queues every unvisited neighbour reachable through a removed
// wall pair.
func (s *Solver) enqueueNeighbors(item queueItem, idx int) {
	for _, d := range grid.Directions() {
		// Passable checks both facing walls.
		if !s.grid.Passable(item.at, d) {
			continue
		}
		n := item.at.Step(d)
		if s.visited.Has(n) {
			continue
		}
		s.opts.OnEnqueue(n, item.depth+1)
		s.queue.Enqueue(queueItem{at: n, depth: item.depth + 1, from: idx})
	}
}

// pathTo rebuilds start..trail[idx] from parent links.
func (s *Solver) pathTo(idx int) grid.Path {
	var p grid.Path
	for i := idx; i >= 0; i = s.parent[i] {
		p = append(p, s.trail[i])
	}
	// reverse to get start → end
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
	return p
}

// Done reports whether the search has finished.
func (s *Solver) Done() bool {
	return s.done
}

// Result returns the outcome so far.
func (s *Solver) Result() Result {
	return s.res
}
