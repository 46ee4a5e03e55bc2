package generate

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/stack"

	"github.com/katalvlaran/lvmaze/grid"
)

// candidate is an unvisited neighbour and the direction leading to it.
type candidate struct {
	at  grid.Coord
	dir grid.Direction
}

// Generator holds the mutable state of one carving run over a grid.
// It is driven by Step; it must not be used from more than one goroutine, and no
// other writer may touch the grid while it runs.
type Generator struct {
	grid     *grid.Grid
	opts     Options
	ctx      context.Context
	rng      *rand.Rand
	frontier *stack.Stack[grid.Coord]
	cands    []candidate // reused between steps
	res      Result
}

// New prepares a run that will carve g starting at start. The start cell is
// pushed but not yet marked; the first Step marks it.
// Returns ErrGridNil or ErrStartOutOfBounds for invalid input.
func New(g *grid.Grid, start grid.Coord, opts ...Option) (*Generator, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if !g.Contains(start) {
		return nil, fmt.Errorf("%w: %v in %d×%d grid", ErrStartOutOfBounds, start, g.Size(), g.Size())
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r := o.Rand
	if r == nil {
		r = NewRand(o.Seed)
	}

	gen := &Generator{
		grid:     g,
		opts:     o,
		ctx:      o.Ctx,
		rng:      r,
		frontier: stack.New[grid.Coord](),
		cands:    make([]candidate, 0, 4),
	}
	gen.frontier.Push(start)

	return gen, nil
}

// Generate carves a complete maze into g from (startRow, startCol), or stops
// early when the context in opts is cancelled.
func Generate(g *grid.Grid, startRow, startCol int, opts ...Option) (Result, error) {
	gen, err := New(g, grid.Coord{Row: startRow, Col: startCol}, opts...)
	if err != nil {
		return Result{}, err
	}
	return gen.Run(), nil
}

// Run steps until the frontier is empty or the run is cancelled.
func (gen *Generator) Run() Result {
	for {
		if _, ok := gen.Step(); !ok {
			return gen.res
		}
	}
}

// Step performs one Advance or Backtrack. It returns false, without touching the
// grid, once the run has completed or its context is done.
func (gen *Generator) Step() (Step, bool) {
	if gen.Done() {
		return Step{}, false
	}
	// cancellation check (once per step)
	select {
	case <-gen.ctx.Done():
		gen.res.Cancelled = true
		return Step{}, false
	default:
	}

	cur := gen.frontier.Peek()
	cell := gen.grid.At(cur.Row, cur.Col)
	if !cell.Visited {
		cell.Visited = true
		gen.res.Visited++
	}

	var st Step
	if c, ok := gen.choose(cur); ok {
		// c came from grid.Neighbor, so RemoveWall cannot fail.
		_ = gen.grid.RemoveWall(cur, c.dir)
		gen.frontier.Push(c.at)
		gen.res.Carved++
		st = Step{Kind: Advance, Current: cur, Next: c.at, Dir: c.dir}
	} else {
		gen.frontier.Pop()
		next := cur
		if gen.frontier.Size() > 0 {
			next = gen.frontier.Peek()
		}
		st = Step{Kind: Backtrack, Current: cur, Next: next}
	}
	st.Depth = gen.frontier.Size()

	gen.res.Steps++
	if gen.frontier.Size() == 0 {
		gen.res.Completed = true
	}
	gen.opts.OnStep(st)

	return st, true
}

// choose collects the in-bounds unvisited neighbours of cur in fixed direction
// order, shuffles them and returns the first.
func (gen *Generator) choose(cur grid.Coord) (candidate, bool) {
	gen.cands = gen.cands[:0]
	for _, d := range grid.Directions() {
		n, ok := gen.grid.Neighbor(cur, d)
		if !ok || gen.grid.At(n.Row, n.Col).Visited {
			continue
		}
		gen.cands = append(gen.cands, candidate{at: n, dir: d})
	}
	if len(gen.cands) == 0 {
		return candidate{}, false
	}
	Shuffle(gen.cands, gen.rng)
	return gen.cands[0], true
}

// Done reports whether the run has completed or been cancelled.
func (gen *Generator) Done() bool {
	return gen.res.Completed || gen.res.Cancelled
}

// Current returns the cell on top of the frontier, if any.
func (gen *Generator) Current() (grid.Coord, bool) {
	if gen.frontier.Size() == 0 {
		return grid.Coord{}, false
	}
	return gen.frontier.Peek(), true
}

// Frontier returns the number of cells on the frontier stack.
func (gen *Generator) Frontier() int {
	return gen.frontier.Size()
}

// Result returns the counters accumulated so far.
func (gen *Generator) Result() Result {
	return gen.res
}
