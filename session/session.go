package session

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmaze/generate"
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/solve"
)

// Session hosts one maze at a time. All methods are safe for concurrent use.
type Session struct {
	mu   sync.Mutex
	opts Options
	log  logrus.FieldLogger

	base *rand.Rand // session stream; every grid derives its own from it
	runs uint64     // grids built so far, used as the derive stream

	grid  *grid.Grid
	runID uuid.UUID
	dirty bool // grid was generated or solved and must be rebuilt before the next Generate

	token   uint64             // identifies the in-flight generation
	running bool               // a generation owns the current grid
	cancel  context.CancelFunc // cancels the in-flight generation

	started time.Time
	stopped time.Time
}

// New builds a Session with a fresh grid of Options.Size.
func New(opts ...Option) (*Session, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	seed := o.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		opts: o,
		log:  o.Logger,
		base: generate.NewRand(seed),
	}
	if err := s.reset(o.Size); err != nil {
		return nil, err
	}

	return s, nil
}

// reset swaps in a fresh grid of the given size. Caller holds mu.
func (s *Session) reset(size int) error {
	g, err := grid.New(size)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	s.grid = g
	s.runID = uuid.New()
	s.runs++
	s.dirty = false
	s.started, s.stopped = time.Time{}, time.Time{}

	return nil
}

// Grid returns the current grid. Read it only while no generation is running.
func (s *Session) Grid() *grid.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid
}

// Size returns the current side length.
func (s *Session) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Size()
}

// RunID identifies the current grid in logs.
func (s *Session) RunID() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runID
}

// Running reports whether a generation currently owns the grid.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Generate carves the current grid from a random start cell, rendering every
// step and pausing StepDelay between steps. A grid that was already generated or
// solved is replaced first. Cancellation via ctx, Cancel or Resize is reported in
// Result.Cancelled, not as an error.
func (s *Session) Generate(ctx context.Context) (generate.Result, error) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return generate.Result{}, ErrBusy
	}
	if s.dirty {
		if err := s.reset(s.grid.Size()); err != nil {
			s.mu.Unlock()
			return generate.Result{}, err
		}
	}
	g, runID := s.grid, s.runID
	rng := generate.DeriveRand(s.base, s.runs)
	start := grid.Coord{Row: rng.Intn(g.Size()), Col: rng.Intn(g.Size())}

	runCtx, cancel := context.WithCancel(ctx)
	s.token++
	token := s.token
	s.running, s.cancel, s.dirty = true, cancel, true
	s.started, s.stopped = s.opts.Now(), time.Time{}
	s.mu.Unlock()

	defer s.finish(token, cancel)

	log := s.log.WithFields(logrus.Fields{
		"run_id": runID.String(),
		"size":   g.Size(),
		"start":  start.String(),
	})

	gen, err := generate.New(g, start, generate.WithContext(runCtx), generate.WithRand(rng))
	if err != nil {
		return generate.Result{}, err
	}
	log.Info("maze generation started")

	for {
		step, ok := gen.Step()
		if !ok {
			break
		}
		s.opts.Renderer.RenderStep(g, step)
		// an interrupted pause is observed by the next Step
		pause(runCtx, s.opts.StepDelay)
	}

	res := gen.Result()
	log = log.WithFields(logrus.Fields{
		"steps":   res.Steps,
		"visited": res.Visited,
		"carved":  res.Carved,
	})
	if res.Cancelled {
		s.stop(token)
		log.Warn("maze generation cancelled")
	} else {
		log.Info("maze generation finished")
	}

	return res, nil
}

// finish releases ownership of the grid if token is still the in-flight run.
func (s *Session) finish(token uint64, cancel context.CancelFunc) {
	s.mu.Lock()
	if s.token == token && s.running {
		s.running = false
		s.cancel = nil
	}
	s.mu.Unlock()
	cancel()
}

// stop freezes the elapsed clock if token is still the current run.
func (s *Session) stop(token uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == token && s.stopped.IsZero() && !s.started.IsZero() {
		s.stopped = s.opts.Now()
	}
}

// Solve finds the shortest path from the top-left to the bottom-right corner of
// the current grid and renders it. Unreachable is (nil, false, nil).
func (s *Session) Solve(ctx context.Context) (grid.Path, bool, error) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil, false, ErrBusy
	}
	g, runID := s.grid, s.runID
	s.dirty = true
	s.mu.Unlock()

	n := g.Size()
	solver, err := solve.New(g, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: n - 1, Col: n - 1}, solve.WithContext(ctx))
	if err != nil {
		return nil, false, err
	}
	out := solver.Run()

	log := s.log.WithFields(logrus.Fields{
		"run_id":   runID.String(),
		"size":     n,
		"explored": out.Explored,
	})
	switch {
	case out.Cancelled:
		log.Warn("maze solve cancelled")
	case !out.Found:
		log.Warn("maze has no path between corners")
	default:
		log.WithField("length", out.Path.Len()).Info("maze solved")
		s.opts.Renderer.RenderPath(g, out.Path)
	}

	return out.Path, out.Found, nil
}

// Navigate walks p one cell per StepDelay, calling fn with the position index and
// cell. It returns the number of cells visited; fewer than len(p) means ctx was
// cancelled. A full walk stops the elapsed clock.
func (s *Session) Navigate(ctx context.Context, p grid.Path, fn func(i int, c grid.Coord)) int {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()

	for i, c := range p {
		if ctx.Err() != nil {
			return i
		}
		if fn != nil {
			fn(i, c)
		}
		if i < len(p)-1 && !pause(ctx, s.opts.StepDelay) {
			return i + 1
		}
	}
	s.stop(token)

	return len(p)
}

// Resize cancels any in-flight generation and replaces the grid with a fresh one
// of the given size. The cancelled run finishes on its old grid.
func (s *Session) Resize(size int) error {
	if _, err := grid.New(size); err != nil {
		return fmt.Errorf("session: %w", err)
	}

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	// detach the old run; its finish no longer matches the token
	s.token++
	s.running, s.cancel = false, nil
	err := s.reset(size)
	runID := s.runID
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"run_id": runID.String(),
		"size":   size,
	}).Info("maze resized")

	return nil
}

// Cancel stops the in-flight generation, if any.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
}

// Elapsed is the time since the current maze started generating, frozen once it
// is cancelled or fully navigated. Zero before the first Generate.
func (s *Session) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.started.IsZero():
		return 0
	case !s.stopped.IsZero():
		return s.stopped.Sub(s.started)
	default:
		return s.opts.Now().Sub(s.started)
	}
}

// pause sleeps d or until ctx is done; false means ctx is done.
func pause(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
