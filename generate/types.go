// Package generate defines options, step records, results and sentinel errors
// for maze generation.
package generate

import (
	"context"
	"errors"
	"math/rand"

	"github.com/katalvlaran/lvmaze/grid"
)

// Sentinel errors for generation.
var (
	// ErrGridNil is returned when a nil grid is passed.
	ErrGridNil = errors.New("generate: grid is nil")

	// ErrStartOutOfBounds is returned when the start cell lies outside the grid.
	ErrStartOutOfBounds = errors.New("generate: start cell out of bounds")
)

// StepKind distinguishes the two generator transitions.
type StepKind int

const (
	// Advance carved a passage and pushed a new cell.
	Advance StepKind = iota
	// Backtrack popped a dead-end cell.
	Backtrack
)

// String returns "advance" or "backtrack".
func (k StepKind) String() string {
	if k == Advance {
		return "advance"
	}
	return "backtrack"
}

// Step records one completed generator transition.
//
// For Advance, Current is the cell that was on top of the frontier, Next the
// neighbour that was carved into and pushed, Dir the direction from Current to Next.
// For Backtrack, Current is the popped cell and Next the new top of the frontier
// (equal to Current when the frontier became empty).
// Depth is the frontier size after the step.
type Step struct {
	Kind    StepKind
	Current grid.Coord
	Next    grid.Coord
	Dir     grid.Direction
	Depth   int
}

// Option configures generation via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for a generation run.
type Options struct {
	// Ctx allows cancellation; polled once per step.
	Ctx context.Context

	// Rand is the randomness source. If nil, one is built from Seed.
	Rand *rand.Rand

	// Seed seeds Rand when Rand is nil. 0 selects defaultSeed.
	Seed int64

	// OnStep is called after every completed step, before Step returns.
	OnStep func(Step)
}

// DefaultOptions returns Options with a background context, seed 0 and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Rand:   nil,
		Seed:   0,
		OnStep: func(Step) {},
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithRand injects the randomness source. It must not be shared with another
// goroutine while the run is in progress.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		o.Rand = r
	}
}

// WithSeed sets the seed used when no Rand is injected.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithOnStep registers a hook observing every step.
func WithOnStep(fn func(Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// Result summarizes a generation run.
type Result struct {
	// Steps is the number of completed transitions.
	Steps int
	// Visited is the number of cells this run marked visited.
	Visited int
	// Carved is the number of wall pairs removed (one per Advance).
	Carved int
	// Completed is true once the frontier emptied.
	Completed bool
	// Cancelled is true if the context stopped the run before completion.
	Cancelled bool
}
