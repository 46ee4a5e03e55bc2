// Package solve provides tunable options and error definitions for the
// breadth-first maze solver.
package solve

import (
	"context"
	"errors"

	"github.com/katalvlaran/lvmaze/grid"
)

// Sentinel errors for solver input validation.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("solve: grid is nil")

	// ErrStartOutOfBounds is returned when the start cell lies outside the grid.
	ErrStartOutOfBounds = errors.New("solve: start cell out of bounds")

	// ErrEndOutOfBounds is returned when the end cell lies outside the grid.
	ErrEndOutOfBounds = errors.New("solve: end cell out of bounds")
)

// Option configures the solver via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a neighbour is queued, with its distance from start.
	OnEnqueue func(c grid.Coord, depth int)

	// OnDequeue is called when a cell is visited (dequeued for the first time).
	OnDequeue func(c grid.Coord, depth int)
}

// DefaultOptions returns Options with a background context and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(grid.Coord, int) {},
		OnDequeue: func(grid.Coord, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(c grid.Coord, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run when a cell is visited.
func WithOnDequeue(fn func(c grid.Coord, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// Result holds the outcome of a search.
type Result struct {
	// Path is the shortest path start..end; nil unless Found.
	Path grid.Path
	// Found is true when end was reached.
	Found bool
	// Cancelled is true when the context stopped the search early.
	Cancelled bool
	// Explored counts visited cells.
	Explored int
	// Steps counts dequeues, including stale entries for already visited cells.
	Steps int
}
